// Package dfs implements a generic, iterative depth-first walk over an
// adjacency.View, plus directed cycle detection and topological ordering
// built on the same White/Gray/Black coloring.
//
// What:
//
//   - Walk: single-source DFS threading a caller-defined accumulator.
//     Hooks.Enter fires when a non-start node is first discovered
//     (pre-order); Hooks.Exit fires after all of a node's children have
//     completed (post-order), including the start node.
//   - HasCycle: reports whether a directed view contains a cycle
//     (self-loops included) using vertex coloring and back-edge detection.
//   - TopologicalSort: reverse post-order of a directed acyclic view,
//     or ErrCycleDetected.
//
// Why iterative:
//
//	Each frame on the explicit stack is (node, parent, cursor), so the
//	depth of the walk is bounded by memory, not by the goroutine stack.
//	A 10^6-node path is as safe as a 10-node one.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Hooks[W, A]: Enter / Exit callbacks, each receiving the view explicitly
//
// Complexity:
//
//   - Walk:            Time O(V+E), Memory O(V)
//   - HasCycle:        Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrStartOutOfRange   start id not in view
//   - ErrCycleDetected     cycle found by TopologicalSort
package dfs
