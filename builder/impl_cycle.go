// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_cycle.go - Cycle(n) and Wheel(n) constructors.
//
// Contract:
//   - Cycle: n ≥ 3; nodes idFn(0..n-1); edges i→(i+1) mod n.
//   - Wheel: n ≥ 4; W_n = C_{n-1} plus hub CenterVertexID with spokes to
//     every rim node in index order (mirrored when directed).
//
// Complexity: O(n).

package builder

import "fmt"

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		b.addNodes(n, cfg)
		for i := 0; i < n; i++ {
			b.addEdge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight())
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		b.addNode(CenterVertexID)
		for i := 0; i < n-1; i++ {
			rim := cfg.idFn(i)
			w := cfg.weight()
			b.addEdge(CenterVertexID, rim, w)
			if b.Directed {
				b.addEdge(rim, CenterVertexID, w)
			}
		}

		return nil
	}
}
