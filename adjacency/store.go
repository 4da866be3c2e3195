// SPDX-License-Identifier: MIT
// Package: lvtree/adjacency
//
// store.go - dense, id-indexed adjacency lists.
//
// Contract:
//   - Ids are dense integers 0..Len()-1 assigned by the owner (core.Graph).
//   - AddArc appends exactly one arc; AddEdge appends the mirrored pair.
//   - Arc order per id equals insertion order; no dedup (multi-edges kept).
//   - Out(id) exposes the backing slice; callers treat it as read-only.

package adjacency

import "fmt"

// Arc is one outgoing entry of an adjacency list: the neighbor id and the
// weight of the edge that produced it.
type Arc[W any] struct {
	To     int
	Weight W
}

// View is the read-only surface traversal engines consume.
// Implementations must return the same slice contents for the lifetime of a walk.
type View[W any] interface {
	// Len returns the number of ids (nodes).
	Len() int

	// Out returns the arcs leaving id in insertion order.
	Out(id int) []Arc[W]
}

// Store is an append-only adjacency store indexed by dense ids.
// Mutation happens only during construction; afterward it is read-only.
type Store[W any] struct {
	lists [][]Arc[W]
	arcs  int
}

// NewStore allocates an empty store for n ids.
// Complexity: O(n).
func NewStore[W any](n int) *Store[W] {
	if n < 0 {
		n = 0
	}

	return &Store[W]{lists: make([][]Arc[W], n)}
}

// Len returns the number of ids in the store.
func (s *Store[W]) Len() int { return len(s.lists) }

// ArcCount returns the total number of stored arcs. An undirected edge
// contributes two arcs.
func (s *Store[W]) ArcCount() int { return s.arcs }

// Out returns the arcs leaving id. Out of range ids yield nil.
func (s *Store[W]) Out(id int) []Arc[W] {
	if id < 0 || id >= len(s.lists) {
		return nil
	}

	return s.lists[id]
}

// AddArc appends the single arc from→to.
// Returns an error if either endpoint is outside 0..Len()-1.
func (s *Store[W]) AddArc(from, to int, w W) error {
	if err := s.check(from, to); err != nil {
		return err
	}
	s.lists[from] = append(s.lists[from], Arc[W]{To: to, Weight: w})
	s.arcs++

	return nil
}

// AddEdge appends both from→to and to→from with the same weight.
// A self-loop therefore stores two arcs on the same list.
func (s *Store[W]) AddEdge(from, to int, w W) error {
	if err := s.check(from, to); err != nil {
		return err
	}
	s.lists[from] = append(s.lists[from], Arc[W]{To: to, Weight: w})
	s.lists[to] = append(s.lists[to], Arc[W]{To: from, Weight: w})
	s.arcs += 2

	return nil
}

func (s *Store[W]) check(from, to int) error {
	n := len(s.lists)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d, len=%d", ErrIDOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to=%d, len=%d", ErrIDOutOfRange, to, n)
	}

	return nil
}
