package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvtree/adjacency"
	"github.com/katalvlaran/lvtree/bfs"
)

// BenchmarkWalk_Chain measures BFS on a linear chain of N+1 ids.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	s := adjacency.NewStore[int](N + 1)
	for i := 0; i < N; i++ {
		_ = s.AddEdge(i, i+1, 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(s, 0, 0, hops)
	}
}

// BenchmarkWalk_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 ids).
func BenchmarkWalk_BinaryTree(b *testing.B) {
	const depth = 10
	n := (1 << depth) - 1
	s := adjacency.NewStore[int](n)
	for i := 1; i < n; i++ {
		_ = s.AddEdge((i-1)/2, i, 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Walk(s, 0, 0, hops)
	}
}
