// SPDX-License-Identifier: MIT
// Package: lvtree/bfs

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/adjacency"
)

// ErrStartOutOfRange is returned when the start id is not in the view.
var ErrStartOutOfRange = errors.New("bfs: start id out of range")

// StepFunc derives a child's accumulator from its discoverer's accumulator
// and the weight of the arc that discovered it. It must be pure.
type StepFunc[W, A any] func(parent A, weight W) A

// walker encapsulates mutable BFS state.
type walker[W, A any] struct {
	view  adjacency.View[W]
	step  StepFunc[W, A]
	queue []int
	res   *adjacency.Slots[A]
}

// Walk runs breadth-first search on view from start and returns the
// accumulator of every reached id.
//
// Each id is enqueued at most once; an id is marked reached when it is
// enqueued, so later arcs into it are skipped.
//
// Complexity: O(V + E) time, O(V) memory.
func Walk[W, A any](view adjacency.View[W], start int, init A, step StepFunc[W, A]) (*adjacency.Slots[A], error) {
	n := view.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, len=%d", ErrStartOutOfRange, start, n)
	}

	w := &walker[W, A]{
		view:  view,
		step:  step,
		queue: make([]int, 0, n),
		res:   adjacency.NewSlots[A](n),
	}

	// Seed queue with start id
	w.res.Set(start, init)
	w.queue = append(w.queue, start)
	w.loop()

	return w.res, nil
}

// loop drains the queue, enqueueing each unseen neighbor once.
func (w *walker[W, A]) loop() {
	for head := 0; head < len(w.queue); head++ {
		id := w.queue[head]
		acc, _ := w.res.Get(id)
		for _, arc := range w.view.Out(id) {
			if w.res.Has(arc.To) {
				continue
			}
			w.res.Set(arc.To, w.step(acc, arc.Weight))
			w.queue = append(w.queue, arc.To)
		}
	}
}
