// Package rtree builds a rooted-tree index over an undirected adjacency.View
// and answers ancestor, lowest-common-ancestor and bridge queries on dense ids.
//
// What:
//
//   - Build runs one iterative DFS (package dfs) from a root and records, per
//     node: parent, Euler-tour enter/exit timestamps, depth, subtree size,
//     up-node count and, on request, a binary-lifting ancestor table.
//   - IsAncestor: Euler-interval containment, O(1).
//   - CommonAncestor: binary lifting, O(log depth).
//   - KthAncestor, Distance: binary lifting on top of CommonAncestor.
//   - Bridges: every non-root v with UpCount(v) == 0 hangs from a cut edge.
//
// Up-node count:
//
//	UpCount(v) is the net number of edges leaving v's subtree toward a strict
//	ancestor of v. It is folded bottom-up at exit time: a still-open
//	neighbor is an ancestor reached by a back edge (+1), a finished tree
//	child contributes its own count, and any other finished neighbor is a
//	descendant whose back edge ends at v itself (-1). On a tree every
//	count is zero and every edge is a bridge; on a general connected graph
//	the same fold finds exactly the cut edges.
//
// Complexity:
//
//   - Build:          Time O(V+E) or O(V log V + E) with the ancestor table.
//   - IsAncestor:     O(1)
//   - CommonAncestor: O(log depth)
//   - Bridges:        O(V)
//
// Errors:
//
//   - ErrNodeOutOfRange      id not in 0..Len()-1
//   - ErrUnreachable         the view has ids the root cannot reach
//   - ErrNoAncestorTable     lifting query on an index built without the table
//   - ErrAncestorOutOfRange  KthAncestor with k < 0 or k > depth
package rtree
