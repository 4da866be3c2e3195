// SPDX-License-Identifier: MIT
// Package: lvtree/dfs
//
// cycle.go - directed cycle detection and topological ordering.
//
// Both run one colored, iterative DFS forest over every id in ascending
// order. A Gray→Gray arc is a back edge and therefore a cycle; a self-loop
// is the shortest such arc.

package dfs

import "github.com/katalvlaran/lvtree/adjacency"

// HasCycle reports whether the directed view contains a cycle.
// Complexity: O(V+E) time, O(V) memory.
func HasCycle[W any](view adjacency.View[W]) bool {
	_, cyclic := postOrder(view)

	return cyclic
}

// TopologicalSort returns the ids of view such that for every arc u→v, u
// appears before v. Returns ErrCycleDetected if the view has a cycle.
// Ties are broken by ascending id of the DFS roots and by adjacency order.
func TopologicalSort[W any](view adjacency.View[W]) ([]int, error) {
	order, cyclic := postOrder(view)
	if cyclic {
		return nil, ErrCycleDetected
	}
	// reverse post-order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// postOrder colors the whole view and returns the finish order. It stops at
// the first back edge and reports cyclic=true.
func postOrder[W any](view adjacency.View[W]) (order []int, cyclic bool) {
	n := view.Len()
	state := make([]uint8, n)
	order = make([]int, 0, n)
	stack := make([]frame, 0, n)

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], frame{node: root, parent: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := view.Out(top.node)
			if top.cursor < len(out) {
				to := out[top.cursor].To
				top.cursor++
				switch state[to] {
				case White:
					state[to] = Gray
					stack = append(stack, frame{node: to, parent: top.node})
				case Gray:
					return nil, true
				}

				continue
			}
			state[top.node] = Black
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	return order, false
}
