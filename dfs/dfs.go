// SPDX-License-Identifier: MIT
// Package: lvtree/dfs

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvtree/adjacency"
)

// Walk performs an iterative depth-first traversal of view from start.
//
// The start id is seeded with init. Sibling order follows adjacency order.
// Every arc of a reached node is inspected exactly once; arcs into already
// reached nodes are skipped. Enter and Exit each fire exactly once per node
// they apply to.
//
// Returns the accumulators of all reached ids; unreached ids stay unset.
func Walk[W, A any](view adjacency.View[W], start int, init A, hooks Hooks[W, A]) (*adjacency.Slots[A], error) {
	// 1. Validate start
	n := view.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, len=%d", ErrStartOutOfRange, start, n)
	}

	// 2. Seed result and stack
	res := adjacency.NewSlots[A](n)
	res.Set(start, init)
	stack := make([]frame, 0, n)
	stack = append(stack, frame{node: start, parent: start})

	// 3. Expand the top frame one arc at a time
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		out := view.Out(top.node)

		if top.cursor < len(out) {
			arc := out[top.cursor]
			top.cursor++
			if res.Has(arc.To) {
				continue
			}

			// pre-order: discover arc.To from top.node
			var acc A
			if hooks.Enter != nil {
				acc = hooks.Enter(view, arc.To, top.node, res)
			} else {
				acc, _ = res.Get(top.node)
			}
			res.Set(arc.To, acc)
			stack = append(stack, frame{node: arc.To, parent: top.node})

			continue
		}

		// post-order: every child of top.node has completed
		if hooks.Exit != nil {
			res.Set(top.node, hooks.Exit(view, top.node, top.parent, res))
		}
		stack = stack[:len(stack)-1]
	}

	return res, nil
}
