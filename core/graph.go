// SPDX-License-Identifier: MIT
// Package: lvtree/core
//
// graph.go - one-shot construction and shape classification.
//
// Contract:
//   - Ids are assigned to deduplicated labels in first-seen order.
//   - Arcs are appended per edge in input order; multi-edges and
//     self-loops are kept.
//   - Categories are computed once and never recomputed.

package core

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/lvtree/adjacency"
	"github.com/katalvlaran/lvtree/bfs"
	"github.com/katalvlaran/lvtree/dfs"
	"github.com/katalvlaran/lvtree/unionfind"
)

// NewDirected builds a directed graph: one arc per edge.
// Sets DAG when no directed cycle exists.
// Complexity: O(V+E).
func NewDirected[N comparable, W any](nodes []N, edges []Edge[N, W], opts ...GraphOption) (*Graph[N, W], error) {
	return build(true, nodes, edges, opts)
}

// NewUndirected builds an undirected graph: two arcs per edge, same weight.
// Sets Bidirectional plus whichever of Tree, Connected, Forest hold.
// Complexity: O(V+E·α(V)).
func NewUndirected[N comparable, W any](nodes []N, edges []Edge[N, W], opts ...GraphOption) (*Graph[N, W], error) {
	return build(false, nodes, edges, opts)
}

func build[N comparable, W any](directed bool, nodes []N, edges []Edge[N, W], opts []GraphOption) (*Graph[N, W], error) {
	// 1. Ambient collaborators
	s := settings{logger: slog.Default(), tracer: otel.Tracer(instrumentationName)}
	for _, opt := range opts {
		opt(&s)
	}

	// 2. Index Map in first-seen order
	g := &Graph[N, W]{
		directed: directed,
		ids:      make(map[N]int, len(nodes)),
		labels:   make([]N, 0, len(nodes)),
		logger:   s.logger,
		tracer:   s.tracer,
	}
	for _, label := range nodes {
		if _, seen := g.ids[label]; seen {
			continue
		}
		g.ids[label] = len(g.labels)
		g.labels = append(g.labels, label)
	}

	// 3. Adjacency Store in edge order
	g.store = adjacency.NewStore[W](len(g.labels))
	for i, e := range edges {
		from, err := g.id(e.From)
		if err != nil {
			return nil, fmt.Errorf("core: edge %d: %w", i, err)
		}
		to, err := g.id(e.To)
		if err != nil {
			return nil, fmt.Errorf("core: edge %d: %w", i, err)
		}
		if directed {
			err = g.store.AddArc(from, to, e.Weight)
		} else {
			err = g.store.AddEdge(from, to, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("core: edge %d: %w", i, err)
		}
	}

	// 4. Classify once
	g.cats = g.classify()
	g.logger.Debug("graph built",
		slog.Bool("directed", directed),
		slog.Int("nodes", len(g.labels)),
		slog.Int("arcs", g.store.ArcCount()),
		slog.String("categories", g.cats.String()),
	)

	return g, nil
}

// classify computes the category bitmask.
//
// Directed: DAG iff the coloring DFS finds no back edge.
// Undirected: Bidirectional; Connected iff the BFS sweep from id 0 reaches
// every id; Tree iff connected with exactly 2(n-1) arcs (which implies
// Forest); otherwise Forest iff union-find finds no cycle.
func (g *Graph[N, W]) classify() Category {
	if g.directed {
		if dfs.HasCycle[W](g.store) {
			return 0
		}

		return DAG
	}

	cats := Bidirectional
	n := g.store.Len()
	if n > 0 {
		reached, err := bfs.Walk[W, struct{}](g.store, 0, struct{}{}, func(struct{}, W) struct{} { return struct{}{} })
		if err == nil && reached.Count() == n {
			cats |= Connected
			if g.store.ArcCount() == 2*(n-1) {
				return cats | Tree | Forest
			}
		}
	}
	if !unionfind.HasCycle[W](g.store) {
		cats |= Forest
	}

	return cats
}

// id translates a label to its dense id.
func (g *Graph[N, W]) id(label N) (int, error) {
	id, ok := g.ids[label]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownNode, label)
	}

	return id, nil
}
