// SPDX-License-Identifier: MIT
// Package: lvtree/core
//
// api.go - read-only accessors, neighbor iteration and hop distances.
// Nothing here touches the tree index, so no locking is needed.

package core

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvtree/bfs"
	"github.com/katalvlaran/lvtree/dfs"
)

// Directed reports whether the graph was built with NewDirected.
func (g *Graph[N, W]) Directed() bool { return g != nil && g.directed }

// NodeCount returns the number of distinct labels.
func (g *Graph[N, W]) NodeCount() int {
	if g == nil {
		return 0
	}

	return len(g.labels)
}

// ArcCount returns the number of stored arcs; an undirected edge counts twice.
func (g *Graph[N, W]) ArcCount() int {
	if g == nil {
		return 0
	}

	return g.store.ArcCount()
}

// Nodes returns the labels in id order (first-seen order).
func (g *Graph[N, W]) Nodes() []N {
	if g == nil {
		return nil
	}

	return slices.Clone(g.labels)
}

// HasNode reports whether label was among the construction nodes.
func (g *Graph[N, W]) HasNode(label N) bool {
	if g == nil {
		return false
	}
	_, ok := g.ids[label]

	return ok
}

// Categories returns the classification bitmask.
func (g *Graph[N, W]) Categories() Category {
	if g == nil {
		return 0
	}

	return g.cats
}

// IsBidirectional reports the Bidirectional bit.
func (g *Graph[N, W]) IsBidirectional() bool { return g.Categories().Has(Bidirectional) }

// IsTree reports the Tree bit.
func (g *Graph[N, W]) IsTree() bool { return g.Categories().Has(Tree) }

// IsConnected reports the Connected bit.
func (g *Graph[N, W]) IsConnected() bool { return g.Categories().Has(Connected) }

// IsForest reports the Forest bit.
func (g *Graph[N, W]) IsForest() bool { return g.Categories().Has(Forest) }

// IsDAG reports the DAG bit.
func (g *Graph[N, W]) IsDAG() bool { return g.Categories().Has(DAG) }

// Neighbors returns a lazy, restartable sequence of (neighbor, weight) in
// adjacency order. An undirected self-loop yields its label twice.
func (g *Graph[N, W]) Neighbors(node N) (iter.Seq2[N, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	id, err := g.id(node)
	if err != nil {
		return nil, err
	}
	out := g.store.Out(id)

	return func(yield func(N, W) bool) {
		for _, arc := range out {
			if !yield(g.labels[arc.To], arc.Weight) {
				return
			}
		}
	}, nil
}

// HopDistances returns the BFS hop count from source to every reachable
// label. Weights are ignored; unreachable labels are absent.
// Complexity: O(V+E).
func (g *Graph[N, W]) HopDistances(source N) (map[N]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	id, err := g.id(source)
	if err != nil {
		return nil, err
	}

	hops, err := bfs.Walk[W, int](g.store, id, 0, func(parent int, _ W) int { return parent + 1 })
	if err != nil {
		return nil, fmt.Errorf("core: HopDistances: %w", err)
	}
	out := make(map[N]int, hops.Count())
	for i, label := range g.labels {
		if d, ok := hops.Get(i); ok {
			out[label] = d
		}
	}

	return out, nil
}

// TopologicalOrder returns the labels of a DAG so that every arc points
// forward. Requires DAG.
// Complexity: O(V+E).
func (g *Graph[N, W]) TopologicalOrder() ([]N, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.require("TopologicalOrder", DAG); err != nil {
		return nil, err
	}

	order, err := dfs.TopologicalSort[W](g.store)
	if err != nil {
		return nil, fmt.Errorf("core: TopologicalOrder: %w", err)
	}
	out := make([]N, len(order))
	for i, id := range order {
		out[i] = g.labels[id]
	}

	return out, nil
}
