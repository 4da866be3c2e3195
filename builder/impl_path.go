// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1); edges (i-1)→i for i = 1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		b.addNodes(n, cfg)
		for i := 1; i < n; i++ {
			b.addEdge(cfg.idFn(i-1), cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}
