// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_tree.go - rooted-tree shapes: BinaryTree(n) and RandomTree(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); node idFn(0) is the natural root.
//   - Edges are emitted parent→child in increasing child index, so a
//     directed blueprint is an out-tree and an undirected one is a Tree.
//   - RandomTree requires an RNG (ErrNeedRandSource): child i attaches to a
//     uniformly drawn parent in [0, i).
//
// Complexity: O(n).

package builder

import "fmt"

// BinaryTree returns a Constructor that builds the complete binary tree on n
// nodes in heap order: the parent of i is (i-1)/2.
func BinaryTree(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodBinaryTree, n, MinTreeNodes, ErrTooFewVertices)
		}

		b.addNodes(n, cfg)
		for i := 1; i < n; i++ {
			b.addEdge(cfg.idFn((i-1)/2), cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// RandomTree returns a Constructor that builds a random recursive tree.
func RandomTree(n int) Constructor {
	return func(b *Blueprint, cfg builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTree, n, MinTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}

		b.addNodes(n, cfg)
		for i := 1; i < n; i++ {
			parent := cfg.rng.Intn(i)
			b.addEdge(cfg.idFn(parent), cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}
