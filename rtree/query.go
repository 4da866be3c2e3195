// SPDX-License-Identifier: MIT
// Package: lvtree/rtree

package rtree

import (
	"fmt"
	"math/bits"
)

// IsAncestor reports whether a is an ancestor of b. Every node is its own
// ancestor.
// Complexity: O(1).
func (ix *Index) IsAncestor(a, b int) (bool, error) {
	if err := ix.check(a, b); err != nil {
		return false, err
	}

	return ix.isAncestor(a, b), nil
}

func (ix *Index) isAncestor(a, b int) bool {
	na, nb := &ix.nodes[a], &ix.nodes[b]

	return na.Enter <= nb.Enter && nb.Exit <= na.Exit
}

// CommonAncestor returns the lowest common ancestor of a and b.
// Requires the ancestor table.
//
// Steps:
//  1. Order the pair so a is not deeper than b.
//  2. If a is an ancestor of b, a is the answer.
//  3. Otherwise lift a by decreasing powers of two while the landing node is
//     still not an ancestor of b; the answer is the parent of where a stops.
//
// Complexity: O(log depth).
func (ix *Index) CommonAncestor(a, b int) (int, error) {
	if !ix.ancestors {
		return 0, ErrNoAncestorTable
	}
	if err := ix.check(a, b); err != nil {
		return 0, err
	}

	return ix.commonAncestor(a, b), nil
}

func (ix *Index) commonAncestor(a, b int) int {
	// 1. a is the shallower endpoint
	if ix.nodes[a].Depth > ix.nodes[b].Depth {
		a, b = b, a
	}

	// 2. ancestor short-circuit
	if ix.isAncestor(a, b) {
		return a
	}

	// 3. lift a; the table shrinks as a climbs, so bound k by the current one
	for k := len(ix.nodes[a].Up) - 1; k >= 0; k-- {
		up := ix.nodes[a].Up
		if k >= len(up) {
			continue
		}
		if next := up[k]; !ix.isAncestor(next, b) {
			a = next
		}
	}

	return ix.nodes[a].Parent
}

// KthAncestor returns the ancestor k edges above v (k = 0 returns v).
// Requires the ancestor table.
// Complexity: O(log k).
func (ix *Index) KthAncestor(v, k int) (int, error) {
	if !ix.ancestors {
		return 0, ErrNoAncestorTable
	}
	if err := ix.check(v); err != nil {
		return 0, err
	}
	if k < 0 || k > ix.nodes[v].Depth {
		return 0, fmt.Errorf("%w: k=%d, depth=%d", ErrAncestorOutOfRange, k, ix.nodes[v].Depth)
	}

	for k > 0 {
		bit := bits.TrailingZeros(uint(k))
		v = ix.nodes[v].Up[bit]
		k &^= 1 << bit
	}

	return v, nil
}

// Distance returns the number of tree edges between a and b.
// Requires the ancestor table.
func (ix *Index) Distance(a, b int) (int, error) {
	lca, err := ix.CommonAncestor(a, b)
	if err != nil {
		return 0, err
	}

	return ix.nodes[a].Depth + ix.nodes[b].Depth - 2*ix.nodes[lca].Depth, nil
}

// Depth returns the depth of v (root = 0).
func (ix *Index) Depth(v int) (int, error) {
	if err := ix.check(v); err != nil {
		return 0, err
	}

	return ix.nodes[v].Depth, nil
}
