// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair i<j, row-major.
//   - Directed: both i→j and j→i per pair, same weight.
//
// Complexity: O(n²).

package builder

import "fmt"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		b.addNodes(n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.weight()
				b.addEdge(u, v, w)
				if b.Directed {
					b.addEdge(v, u, w)
				}
			}
		}

		return nil
	}
}
