// SPDX-License-Identifier: MIT
// Package: lvtree/dfs

package dfs

import (
	"errors"

	"github.com/katalvlaran/lvtree/adjacency"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrStartOutOfRange indicates that the start id is not a valid id of the view.
	ErrStartOutOfRange = errors.New("dfs: start id out of range")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// EnterFunc computes the accumulator of node when it is first discovered from
// parent. acc holds every accumulator assigned so far; node itself is unset.
type EnterFunc[W, A any] func(view adjacency.View[W], node, parent int, acc *adjacency.Slots[A]) A

// ExitFunc computes the final accumulator of node once all of its children
// have completed. parent equals node for the start of the walk.
type ExitFunc[W, A any] func(view adjacency.View[W], node, parent int, acc *adjacency.Slots[A]) A

// Hooks bundles the callbacks threaded through Walk.
//
// A nil Enter copies the parent's accumulator; a nil Exit keeps the value
// assigned at discovery.
type Hooks[W, A any] struct {
	// Enter fires once per non-start node, pre-order.
	Enter EnterFunc[W, A]

	// Exit fires once per reached node, post-order.
	Exit ExitFunc[W, A]
}

// frame is one entry of the explicit DFS stack.
type frame struct {
	node   int // node being expanded
	parent int // node it was discovered from (itself for the start)
	cursor int // index of the next arc of node to inspect
}
