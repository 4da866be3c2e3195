// SPDX-License-Identifier: MIT
// Package: lvtree/rtree

package rtree

// Bridges returns every cut edge of the indexed graph as (child, parent),
// ordered by child id. A non-root node hangs from a bridge iff no edge
// leaves its subtree toward a strict ancestor, i.e. UpCount == 0.
// Complexity: O(V).
func (ix *Index) Bridges() []Bridge {
	var out []Bridge
	for id, nd := range ix.nodes {
		if id == ix.root || nd.UpCount != 0 {
			continue
		}
		out = append(out, Bridge{Child: id, Parent: nd.Parent})
	}

	return out
}

// IsBridge reports whether the tree edge above child is a cut edge.
// The root has no tree edge above it and reports false.
func (ix *Index) IsBridge(child int) (bool, error) {
	if err := ix.check(child); err != nil {
		return false, err
	}

	return child != ix.root && ix.nodes[child].UpCount == 0, nil
}
