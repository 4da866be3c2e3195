// Package bfs provides a generic breadth-first walk over an adjacency.View,
// threading a caller-defined accumulator from each node to the nodes it
// discovers.
//
// What
//
//   - Walk(view, start, init, step) explores ids in FIFO order from start.
//   - The start id holds init; every other reached id holds
//     step(accumulator of its discoverer, weight of the discovering arc).
//   - Ids never reached stay unset in the returned Slots.
//
// Semantics
//
//	This is unweighted, shortest-hop BFS, not Dijkstra: an id's accumulator
//	comes from whichever neighbor first discovers it, which is not
//	necessarily the cheapest path by weight. Arcs are scanned in adjacency
//	order, so the result is fully deterministic.
//
// Complexity (V = ids, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the result table.
//
// Usage
//
//	// reachability
//	seen, err := bfs.Walk(store, 0, true, func(bool, int64) bool { return true })
//
//	// hop count
//	hops, err := bfs.Walk(store, 0, 0, func(d int, _ int64) int { return d + 1 })
//
// Errors
//
//   - ErrStartOutOfRange  start is not a valid id of view.
package bfs
