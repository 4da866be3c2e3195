// SPDX-License-Identifier: MIT
// Package: lvtree/core
//
// index.go - building and swapping the rooted-tree index.

package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvtree/rtree"
)

// IndexRootedTree indexes the graph as a tree rooted at root, replacing any
// previous index. Requires Bidirectional|Connected.
//
// On failure the previous index, if any, stays in place.
//
// Complexity: O(V+E), plus O(V log V) with WithAncestorTable.
func (g *Graph[N, W]) IndexRootedTree(ctx context.Context, root N, opts ...IndexOption) (err error) {
	if g == nil {
		return ErrNilGraph
	}
	var cfg indexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := g.tracer.Start(ctx, "lvtree.IndexRootedTree",
		trace.WithAttributes(
			attribute.Int("graph.node_count", len(g.labels)),
			attribute.Int("graph.arc_count", g.store.ArcCount()),
			attribute.Bool("tree.ancestor_table", cfg.ancestors),
		),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		recordIndexMetrics(ctx, time.Since(start), cfg.ancestors, err == nil)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if err = ctx.Err(); err != nil {
		return err
	}
	if err = g.require("IndexRootedTree", Bidirectional|Connected); err != nil {
		return err
	}
	id, err := g.id(root)
	if err != nil {
		return err
	}

	var ropts []rtree.Option
	if cfg.ancestors {
		ropts = append(ropts, rtree.WithAncestorTable())
	}
	ix, err := rtree.Build[W](g.store, id, ropts...)
	if err != nil {
		return fmt.Errorf("core: IndexRootedTree: %w", err)
	}

	g.mu.Lock()
	g.tree = ix
	g.mu.Unlock()

	span.AddEvent("index.swapped", trace.WithAttributes(attribute.Int("tree.root_id", id)))
	g.logger.DebugContext(ctx, "rooted tree indexed",
		slog.Any("root", root),
		slog.Int("nodes", ix.Len()),
		slog.Bool("ancestor_table", cfg.ancestors),
		slog.Duration("took", time.Since(start)),
	)

	return nil
}

// Indexed reports whether a rooted-tree index is present.
func (g *Graph[N, W]) Indexed() bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.tree != nil
}

// snapshot returns the current index. An rtree.Index is immutable, so the
// pointer stays valid after the read lock is released even if a concurrent
// IndexRootedTree swaps in a new one.
func (g *Graph[N, W]) snapshot() (*rtree.Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.tree == nil {
		return nil, ErrNotIndexed
	}

	return g.tree, nil
}
