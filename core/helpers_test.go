package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

// sampleNodes and sampleEdges describe the AAA..FFF tree:
//
//	AAA ─ BBB
//	 └─ CCC ─ DDD, EEE, FFF
var sampleNodes = []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF"}

var sampleEdges = []core.Edge[string, int]{
	{From: "AAA", To: "BBB", Weight: 1},
	{From: "AAA", To: "CCC", Weight: 2},
	{From: "CCC", To: "DDD", Weight: 2},
	{From: "CCC", To: "EEE", Weight: 2},
	{From: "CCC", To: "FFF", Weight: 2},
}

func sampleTree(t testing.TB, opts ...core.GraphOption) *core.Graph[string, int] {
	t.Helper()
	g, err := core.NewUndirected(sampleNodes, sampleEdges, opts...)
	require.NoError(t, err)

	return g
}

// intEdges converts id pairs to unit-weight edges.
func intEdges(pairs ...[2]int) []core.Edge[int, int] {
	out := make([]core.Edge[int, int], len(pairs))
	for i, p := range pairs {
		out[i] = core.Edge[int, int]{From: p[0], To: p[1], Weight: 1}
	}

	return out
}

func intNodes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// collect drains a Neighbors sequence.
func collect[N comparable, W any](t testing.TB, g *core.Graph[N, W], node N) ([]N, []W) {
	t.Helper()
	seq, err := g.Neighbors(node)
	require.NoError(t, err)
	var ns []N
	var ws []W
	for n, w := range seq {
		ns = append(ns, n)
		ws = append(ws, w)
	}

	return ns, ws
}
