// SPDX-License-Identifier: MIT
// Package: lvtree/core
//
// queries.go - label-level ancestor, LCA and bridge queries.
//
// Every query reads one index snapshot, so a query never mixes records of
// two indexing calls.

package core

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtree/rtree"
)

// minBatchChunk is the smallest slice of pairs handed to one worker.
const minBatchChunk = 256

// IsAncestor reports whether a is an ancestor of b in the rooted tree.
// Every node is its own ancestor.
func (g *Graph[N, W]) IsAncestor(a, b N) (bool, error) {
	ix, ia, ib, err := g.pair(a, b)
	if err != nil {
		return false, err
	}

	return ix.IsAncestor(ia, ib)
}

// CommonAncestor returns the lowest common ancestor of a and b.
// Requires WithAncestorTable at indexing time.
func (g *Graph[N, W]) CommonAncestor(a, b N) (N, error) {
	var zero N
	ix, ia, ib, err := g.pair(a, b)
	if err != nil {
		return zero, err
	}
	id, err := ix.CommonAncestor(ia, ib)
	if err != nil {
		return zero, err
	}

	return g.labels[id], nil
}

// CommonAncestors answers a batch of LCA queries against one index
// snapshot, fanning the pairs out over GOMAXPROCS workers. out[i] answers
// pairs[i]. The first failing pair cancels the batch.
func (g *Graph[N, W]) CommonAncestors(ctx context.Context, pairs []Pair[N]) (out []N, err error) {
	ix, err := g.snapshot()
	if err != nil {
		return nil, err
	}
	if !ix.HasAncestorTable() {
		return nil, ErrNoAncestorTable
	}

	ctx, span := g.tracer.Start(ctx, "lvtree.CommonAncestors",
		trace.WithAttributes(attribute.Int("query.pair_count", len(pairs))),
	)
	defer span.End()
	start := time.Now()
	defer func() {
		recordQueryMetrics(ctx, "common_ancestors", time.Since(start), len(out))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	// 1. Split into contiguous chunks, one goroutine each
	workers := runtime.GOMAXPROCS(0)
	chunk := max(minBatchChunk, (len(pairs)+workers-1)/workers)
	res := make([]N, len(pairs))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	for lo := 0; lo < len(pairs); lo += chunk {
		hi := min(lo+chunk, len(pairs))
		grp.Go(func() error {
			// 2. Resolve each pair; ctx is checked once per chunk
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				ia, err := g.id(pairs[i].A)
				if err != nil {
					return fmt.Errorf("core: pair %d: %w", i, err)
				}
				ib, err := g.id(pairs[i].B)
				if err != nil {
					return fmt.Errorf("core: pair %d: %w", i, err)
				}
				id, err := ix.CommonAncestor(ia, ib)
				if err != nil {
					return fmt.Errorf("core: pair %d: %w", i, err)
				}
				res[i] = g.labels[id]
			}

			return nil
		})
	}

	// 3. Join
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// KthAncestor returns the ancestor k edges above node; k = 0 returns node.
// Requires WithAncestorTable at indexing time.
func (g *Graph[N, W]) KthAncestor(node N, k int) (N, error) {
	var zero N
	ix, id, _, err := g.pair(node, node)
	if err != nil {
		return zero, err
	}
	anc, err := ix.KthAncestor(id, k)
	if err != nil {
		return zero, err
	}

	return g.labels[anc], nil
}

// Distance returns the number of tree edges between a and b.
// Requires WithAncestorTable at indexing time.
func (g *Graph[N, W]) Distance(a, b N) (int, error) {
	ix, ia, ib, err := g.pair(a, b)
	if err != nil {
		return 0, err
	}

	return ix.Distance(ia, ib)
}

// Depth returns the number of tree edges between the root and node.
func (g *Graph[N, W]) Depth(node N) (int, error) {
	ix, id, _, err := g.pair(node, node)
	if err != nil {
		return 0, err
	}

	return ix.Depth(id)
}

// Root returns the root label of the current index.
func (g *Graph[N, W]) Root() (N, error) {
	var zero N
	ix, err := g.snapshot()
	if err != nil {
		return zero, err
	}

	return g.labels[ix.Root()], nil
}

// TreeNode returns a label-level snapshot of node's rooted-tree record.
func (g *Graph[N, W]) TreeNode(node N) (TreeNode[N], error) {
	ix, id, _, err := g.pair(node, node)
	if err != nil {
		return TreeNode[N]{}, err
	}
	nd, err := ix.Node(id)
	if err != nil {
		return TreeNode[N]{}, err
	}

	tn := TreeNode[N]{
		Label:   node,
		Parent:  g.labels[nd.Parent],
		Enter:   nd.Enter,
		Exit:    nd.Exit,
		Depth:   nd.Depth,
		Size:    nd.Size,
		UpCount: nd.UpCount,
	}
	for _, up := range nd.Up {
		tn.Ancestors = append(tn.Ancestors, g.labels[up])
	}

	return tn, nil
}

// Bridges returns every cut edge as (child, parent), ordered by child id.
// On a tree every edge is reported.
func (g *Graph[N, W]) Bridges() ([]Bridge[N], error) {
	ix, err := g.snapshot()
	if err != nil {
		return nil, err
	}
	start := time.Now()

	raw := ix.Bridges()
	out := make([]Bridge[N], len(raw))
	for i, b := range raw {
		out[i] = Bridge[N]{Child: g.labels[b.Child], Parent: g.labels[b.Parent]}
	}
	recordQueryMetrics(context.Background(), "bridges", time.Since(start), len(out))

	return out, nil
}

// pair resolves two labels against one index snapshot.
func (g *Graph[N, W]) pair(a, b N) (*rtree.Index, int, int, error) {
	ix, err := g.snapshot()
	if err != nil {
		return nil, 0, 0, err
	}
	ia, err := g.id(a)
	if err != nil {
		return nil, 0, 0, err
	}
	ib, err := g.id(b)
	if err != nil {
		return nil, 0, 0, err
	}

	return ix, ia, ib, nil
}
