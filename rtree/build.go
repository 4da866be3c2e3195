// SPDX-License-Identifier: MIT
// Package: lvtree/rtree
//
// build.go - one-pass rooted-tree indexing on top of dfs.Walk.
//
// Contract:
//   - The view is undirected: every edge is a mirrored pair of arcs.
//   - The root reaches every id, else ErrUnreachable.
//   - The Euler clock is owned by the indexer value of one Build call;
//     every enter and every exit consumes one tick, root enters at 0.
//   - A Build never mutates a previous Index.

package rtree

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lvtree/adjacency"
	"github.com/katalvlaran/lvtree/dfs"
)

// indexer holds the per-call state threaded through the DFS hooks.
type indexer[W any] struct {
	clock     int    // next Euler timestamp
	ancestors bool   // build Node.Up
	claimed   []bool // child already folded into its parent
}

// Build indexes view as a tree rooted at root.
//
// Steps:
//  1. Validate root and options.
//  2. Seed the root record (parent = root, depth 0, enter = 0).
//  3. dfs.Walk with enter/exit hooks of a fresh indexer.
//  4. Reject views the root does not fully reach.
//
// Complexity: O(V+E) time; O(V log V) extra with the ancestor table.
func Build[W any](view adjacency.View[W], root int, opts ...Option) (*Index, error) {
	// 1. Validate root and options
	n := view.Len()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: root=%d, len=%d", ErrNodeOutOfRange, root, n)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Seed the root record
	ix := &indexer[W]{ancestors: cfg.ancestors, claimed: make([]bool, n)}
	seed := Node{Parent: root, Enter: ix.tick(), Exit: -1, Depth: 0, Size: 1}

	// 3. Walk
	res, err := dfs.Walk(view, root, seed, dfs.Hooks[W, Node]{Enter: ix.enter, Exit: ix.exit})
	if err != nil {
		return nil, fmt.Errorf("rtree: Build: %w", err)
	}

	// 4. Collect records, rejecting unreached ids
	nodes := make([]Node, n)
	for id := range nodes {
		nd, ok := res.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: id %d not reached from %d", ErrUnreachable, id, root)
		}
		nodes[id] = nd
	}

	return &Index{nodes: nodes, root: root, ancestors: cfg.ancestors}, nil
}

func (ix *indexer[W]) tick() int {
	t := ix.clock
	ix.clock++

	return t
}

// enter opens node below parent: timestamp, depth and ancestor table.
func (ix *indexer[W]) enter(_ adjacency.View[W], node, parent int, acc *adjacency.Slots[Node]) Node {
	p := acc.Ptr(parent)
	nd := Node{
		Parent: parent,
		Enter:  ix.tick(),
		Exit:   -1,
		Depth:  p.Depth + 1,
		Size:   1,
	}
	if ix.ancestors {
		nd.Up = lift(parent, nd.Depth, acc)
	}

	return nd
}

// lift builds the binary-lifting table of a node at depth whose parent is
// parent: Up[0] = parent, Up[k] = Up[k-1].Up[k-1], stopping at the first
// offset the intermediate ancestor has no entry for.
func lift(parent, depth int, acc *adjacency.Slots[Node]) []int {
	up := make([]int, 1, bits.Len(uint(depth)))
	up[0] = parent
	for k := 1; ; k++ {
		mid := acc.Ptr(up[k-1]).Up
		if k-1 >= len(mid) {
			break
		}
		up = append(up, mid[k-1])
	}

	return up
}

// exit closes node and folds its neighbors into Size and UpCount.
//
// The first arc back to parent is the tree edge and is skipped; self-loops
// are skipped. Every other neighbor is already reached at this point:
//   - still open:                    an ancestor via a back edge, +1
//   - finished child, first arc:     tree child, add its Size and UpCount
//   - any other finished neighbor:   back edge from below ending here, -1
func (ix *indexer[W]) exit(view adjacency.View[W], node, parent int, acc *adjacency.Slots[Node]) Node {
	nd := *acc.Ptr(node)
	skipParent := node != parent

	for _, arc := range view.Out(node) {
		w := arc.To
		if w == node {
			continue
		}
		if skipParent && w == parent {
			skipParent = false
			continue
		}

		other := acc.Ptr(w)
		switch {
		case !other.Closed():
			nd.UpCount++
		case other.Parent == node && !ix.claimed[w]:
			ix.claimed[w] = true
			nd.Size += other.Size
			nd.UpCount += other.UpCount
		default:
			nd.UpCount--
		}
	}
	nd.Exit = ix.tick()

	return nd
}
