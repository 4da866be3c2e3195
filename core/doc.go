// Package core provides Graph[N, W], an immutable in-memory graph over
// arbitrary comparable labels that classifies its own shape at construction
// and, when eligible, carries a rooted-tree index for ancestor, LCA and
// bridge queries.
//
// The Graph G = (V,E) is built once:
//
//   - NewDirected / NewUndirected assign dense ids to labels in first-seen
//     order (the Index Map) and append one arc per directed edge, two per
//     undirected edge (the Adjacency Store, package adjacency).
//   - Classification runs once and sets a Category bitmask:
//     Bidirectional, Tree, Connected, Forest, DAG.
//   - Operations gated on categories fail with *CategoryError naming the
//     missing bits; it matches ErrCategory under errors.Is.
//
// Rooted-tree index:
//
//	IndexRootedTree(ctx, root, WithAncestorTable())
//	    requires Bidirectional|Connected. Trees qualify, and so do connected
//	    undirected graphs with cycles: the DFS spanning tree is indexed and
//	    back edges feed the up-node counts used by Bridges.
//
//	IsAncestor(a, b)              O(1)
//	CommonAncestor(a, b)          O(log depth), needs the ancestor table
//	CommonAncestors(ctx, pairs)   batch LCA, fanned out with errgroup
//	KthAncestor / Distance / Depth / TreeNode / Root
//	Bridges()                     O(V)
//
// Concurrency:
//
//	Construction is one-shot. The tree index sits behind a sync.RWMutex:
//	IndexRootedTree takes the write lock and replaces the whole index;
//	queries take read locks and run concurrently with each other.
//
// Observability:
//
//	WithLogger(*slog.Logger) and WithTracer(trace.Tracer) override the
//	defaults (slog.Default() and otel tracer "lvtree/core"). Indexing and
//	batch queries record otel metrics on meter "lvtree/core".
//
// Errors:
//
//	ErrUnknownNode      label never seen at construction
//	ErrCategory         category gate failed (see CategoryError)
//	ErrNotIndexed       query before IndexRootedTree
//	ErrNoAncestorTable  lifting query on an index built without the table
//	ErrNilGraph         method called on a nil *Graph
package core
