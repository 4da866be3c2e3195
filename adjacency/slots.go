// SPDX-License-Identifier: MIT
// Package: lvtree/adjacency
//
// slots.go - per-id optional values produced by traversal engines.

package adjacency

// Slots holds one optional value per id. A traversal returns Slots where an
// id is set iff the walk reached it.
//
// Slots is a plain value table: it is not safe for concurrent mutation, but
// once a walk returns it can be read from many goroutines.
type Slots[A any] struct {
	values []A
	set    []bool
}

// NewSlots allocates n empty slots.
func NewSlots[A any](n int) *Slots[A] {
	if n < 0 {
		n = 0
	}

	return &Slots[A]{values: make([]A, n), set: make([]bool, n)}
}

// Len returns the number of slots (set or not).
func (s *Slots[A]) Len() int { return len(s.values) }

// Get returns the value stored for id and whether it was set.
// Out of range ids report (zero, false).
func (s *Slots[A]) Get(id int) (A, bool) {
	var zero A
	if id < 0 || id >= len(s.values) || !s.set[id] {
		return zero, false
	}

	return s.values[id], true
}

// Has reports whether id holds a value.
func (s *Slots[A]) Has(id int) bool {
	return id >= 0 && id < len(s.set) && s.set[id]
}

// Set stores v for id. Out of range ids are ignored.
func (s *Slots[A]) Set(id int, v A) {
	if id < 0 || id >= len(s.values) {
		return
	}
	s.values[id] = v
	s.set[id] = true
}

// Ptr returns a pointer to the stored value for in-place updates, or nil if
// id is unset. The pointer is valid until the Slots is discarded.
func (s *Slots[A]) Ptr(id int) *A {
	if !s.Has(id) {
		return nil
	}

	return &s.values[id]
}

// Count returns the number of set slots.
// Complexity: O(n).
func (s *Slots[A]) Count() int {
	c := 0
	for _, ok := range s.set {
		if ok {
			c++
		}
	}

	return c
}
