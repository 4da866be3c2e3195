// Package lvtree is an in-memory graph analysis engine over arbitrary
// comparable labels: it classifies a graph's shape once at construction
// and, for connected undirected graphs, builds a rooted-tree index that
// answers ancestor, lowest-common-ancestor and bridge queries.
//
// What is inside:
//
//	adjacency/ - dense id-indexed adjacency store, View and Slots
//	bfs/       - generic breadth-first walk with a caller accumulator
//	dfs/       - generic iterative depth-first walk with enter/exit hooks,
//	             directed cycle check, topological sort
//	unionfind/ - disjoint-set forest, undirected cycle check
//	rtree/     - rooted-tree indexer: Euler timestamps, binary lifting,
//	             subtree size, up-node counts, bridges
//	core/      - Graph[N, W]: labels, categories, queries, telemetry
//	builder/   - deterministic topology generators (path, star, trees, ...)
//	cmd/lvtree - command-line front end
//
// Quick ASCII example:
//
//	AAA ─── BBB
//	 │
//	CCC ─┬─ DDD
//	     ├─ EEE
//	     └─ FFF
//
//	is a Tree; rooted at AAA, lca(DDD, FFF) = CCC and every edge is a bridge.
//
//	go get github.com/katalvlaran/lvtree
package lvtree
