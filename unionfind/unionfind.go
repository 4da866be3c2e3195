// SPDX-License-Identifier: MIT
// Package: lvtree/unionfind

// Package unionfind provides a disjoint-set forest over dense ids with path
// compression and union by rank, and an undirected cycle check built on it.
package unionfind

import "github.com/katalvlaran/lvtree/adjacency"

// DSU is a disjoint-set forest over ids 0..n-1.
type DSU struct {
	parent []int
	rank   []uint8
	sets   int
}

// New returns a DSU where every id is its own singleton set.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{parent: make([]int, n), rank: make([]uint8, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of id's set.
// Iterative with path halving to avoid deep recursion.
func (d *DSU) Find(id int) int {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets of u and v and reports whether they were distinct.
func (d *DSU) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	// attach smaller-rank tree under larger-rank root
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}
	d.sets--

	return true
}

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// HasCycle reports whether the undirected view contains a cycle.
//
// The view must store every undirected edge as a mirrored pair of arcs.
// Each edge is processed once, from its lower endpoint (u <= v); for a
// self-loop both mirrored arcs sit on the same list, and the first one is
// already a cycle. A parallel edge shows up as a second union of the same
// pair and is reported as a cycle too.
//
// Complexity: O(E·α(V)) time, O(V) memory.
func HasCycle[W any](view adjacency.View[W]) bool {
	n := view.Len()
	d := New(n)
	for u := 0; u < n; u++ {
		for _, arc := range view.Out(u) {
			v := arc.To
			if v < u {
				continue
			}
			if v == u || !d.Union(u, v) {
				return true
			}
		}
	}

	return false
}
