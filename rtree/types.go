// SPDX-License-Identifier: MIT
// Package: lvtree/rtree

package rtree

import "errors"

// Sentinel errors for rooted-tree indexing and queries.
var (
	// ErrNodeOutOfRange indicates an id outside the indexed range.
	ErrNodeOutOfRange = errors.New("rtree: node id out of range")

	// ErrUnreachable indicates that the root does not reach every id.
	ErrUnreachable = errors.New("rtree: view is not connected from root")

	// ErrNoAncestorTable indicates a lifting query on an index built without WithAncestorTable.
	ErrNoAncestorTable = errors.New("rtree: ancestor table was not built")

	// ErrAncestorOutOfRange indicates a k-th ancestor request beyond the root.
	ErrAncestorOutOfRange = errors.New("rtree: ancestor distance out of range")
)

// Node is the per-node record of a rooted-tree index.
type Node struct {
	// Parent is the id of the DFS parent; the root is its own parent.
	Parent int

	// Enter is the Euler-tour timestamp taken on discovery.
	Enter int

	// Exit is the Euler-tour timestamp taken after all children finished;
	// -1 while the node is still open during Build.
	Exit int

	// Depth is the number of tree edges from the root (root = 0).
	Depth int

	// Up[k] is the 2^k-th ancestor. Populated only with WithAncestorTable;
	// len(Up) == floor(log2(Depth))+1, empty for the root.
	Up []int

	// Size is the number of nodes in the subtree rooted here.
	Size int

	// UpCount is the net number of edges from this subtree to strict
	// ancestors of this node.
	UpCount int
}

// Closed reports whether the exit timestamp has been assigned.
func (n Node) Closed() bool { return n.Exit >= 0 }

// Bridge is a cut edge reported as (child, parent) ids of the DFS tree.
type Bridge struct {
	Child  int
	Parent int
}

// Option configures Build.
type Option func(*config)

type config struct {
	ancestors bool
}

// WithAncestorTable makes Build populate Node.Up, enabling CommonAncestor,
// KthAncestor and Distance.
func WithAncestorTable() Option {
	return func(c *config) { c.ancestors = true }
}

// Index is an immutable rooted-tree index. It is safe for concurrent reads.
type Index struct {
	nodes     []Node
	root      int
	ancestors bool
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return len(ix.nodes) }

// Root returns the root id.
func (ix *Index) Root() int { return ix.root }

// HasAncestorTable reports whether the index was built WithAncestorTable.
func (ix *Index) HasAncestorTable() bool { return ix.ancestors }

// Node returns a copy of the record for id.
func (ix *Index) Node(id int) (Node, error) {
	if err := ix.check(id); err != nil {
		return Node{}, err
	}
	nd := ix.nodes[id]
	nd.Up = append([]int(nil), nd.Up...)

	return nd, nil
}

func (ix *Index) check(ids ...int) error {
	for _, id := range ids {
		if id < 0 || id >= len(ix.nodes) {
			return ErrNodeOutOfRange
		}
	}

	return nil
}
