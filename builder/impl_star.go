// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub has the fixed label CenterVertexID; leaves are idFn(1..n-1).
//   - Spokes Center→leaf in increasing leaf order. Directed blueprints also
//     get leaf→Center so the star stays symmetric.
//
// Complexity: O(n).

package builder

import "fmt"

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		b.addNode(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			b.addNode(leaf)

			w := cfg.weight()
			b.addEdge(CenterVertexID, leaf, w)
			if b.Directed {
				b.addEdge(leaf, CenterVertexID, w)
			}
		}

		return nil
	}
}
