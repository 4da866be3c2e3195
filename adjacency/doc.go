// Package adjacency provides the dense, id-indexed adjacency store shared by
// the traversal engines and the rooted-tree indexer, plus Slots, the per-id
// optional value table those engines return.
//
// What:
//
//   - Store[W]: [][]Arc[W] with append-only construction (AddArc / AddEdge).
//   - View[W]:  read-only interface (Len, Out) accepted by bfs, dfs, rtree.
//   - Slots[A]: "optional A per id"; unset means "never reached".
//
// Complexity:
//
//   - AddArc / AddEdge: O(1) amortized.
//   - Out:              O(1).
//
// Errors:
//
//   - ErrIDOutOfRange   an endpoint id is not in 0..Len()-1.
package adjacency

import "errors"

// ErrIDOutOfRange indicates an arc endpoint outside the store's id range.
var ErrIDOutOfRange = errors.New("adjacency: id out of range")
