package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/core"
)

func TestNew_IndexMapFirstSeen(t *testing.T) {
	g, err := core.NewUndirected([]string{"b", "a", "b", "c", "a"}, []core.Edge[string, int]{{From: "a", To: "c"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, g.Nodes())
	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasNode("c"))
	assert.False(t, g.HasNode("z"))
}

func TestNew_UnknownNode(t *testing.T) {
	_, err := core.NewDirected([]string{"a"}, []core.Edge[string, int]{{From: "a", To: "ghost"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	assert.Contains(t, err.Error(), "ghost")
}

func TestNew_UndirectedMirrorsArcs(t *testing.T) {
	g := sampleTree(t)
	assert.Equal(t, 10, g.ArcCount())
	assert.False(t, g.Directed())

	for _, e := range sampleEdges {
		ns, ws := collect(t, g, e.From)
		assert.Contains(t, ns, e.To)
		ns, ws2 := collect(t, g, e.To)
		assert.Contains(t, ns, e.From)
		assert.Contains(t, ws, e.Weight)
		assert.Contains(t, ws2, e.Weight)
	}

	ns, ws := collect(t, g, "CCC")
	assert.Equal(t, []string{"AAA", "DDD", "EEE", "FFF"}, ns, "adjacency order")
	assert.Equal(t, []int{2, 2, 2, 2}, ws)
}

func TestNew_DirectedStoresForwardOnly(t *testing.T) {
	g, err := core.NewDirected([]string{"x", "y"}, []core.Edge[string, float64]{{From: "x", To: "y", Weight: 0.5}})
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, 1, g.ArcCount())
	ns, ws := collect(t, g, "x")
	assert.Equal(t, []string{"y"}, ns)
	assert.Equal(t, []float64{0.5}, ws)
	ns, _ = collect(t, g, "y")
	assert.Empty(t, ns)
}

func TestNeighbors_RestartableAndEarlyStop(t *testing.T) {
	g := sampleTree(t)
	seq, err := g.Neighbors("CCC")
	require.NoError(t, err)

	var first []string
	for n := range seq {
		first = append(first, n)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"AAA", "DDD"}, first)

	count := 0
	for range seq {
		count++
	}
	assert.Equal(t, 4, count, "a second range starts over")

	_, err = g.Neighbors("nope")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		directed bool
		n        int
		edges    [][2]int
		want     core.Category
	}{
		{"EmptyUndirected", false, 0, nil, core.Bidirectional | core.Forest},
		{"EmptyDirected", true, 0, nil, core.DAG},
		{"SingleNode", false, 1, nil, core.Bidirectional | core.Tree | core.Connected | core.Forest},
		{"Path", false, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, core.Bidirectional | core.Tree | core.Connected | core.Forest},
		{"PathPlusEdge", false, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, core.Bidirectional | core.Connected},
		{"TwoComponents", false, 4, [][2]int{{0, 1}, {2, 3}}, core.Bidirectional | core.Forest},
		{"DisconnectedCycle", false, 5, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}}, core.Bidirectional},
		{"LoopOnly", false, 1, [][2]int{{0, 0}}, core.Bidirectional | core.Connected},
		{"ParallelPair", false, 2, [][2]int{{0, 1}, {0, 1}}, core.Bidirectional | core.Connected},
		{"NEdgesNotConnected", false, 4, [][2]int{{0, 1}, {1, 2}, {2, 0}}, core.Bidirectional},
		{"DirectedChain", true, 3, [][2]int{{0, 1}, {1, 2}}, core.DAG},
		{"DirectedDiamond", true, 4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, core.DAG},
		{"DirectedCycle", true, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}, 0},
		{"DirectedSelfLoop", true, 1, [][2]int{{0, 0}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				g   *core.Graph[int, int]
				err error
			)
			if tc.directed {
				g, err = core.NewDirected(intNodes(tc.n), intEdges(tc.edges...))
			} else {
				g, err = core.NewUndirected(intNodes(tc.n), intEdges(tc.edges...))
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.Categories(), "got %s", g.Categories())

			if g.IsTree() {
				assert.True(t, g.IsConnected() && g.IsForest(), "Tree implies Connected and Forest")
			}
		})
	}
}

func TestCategory_StringAndError(t *testing.T) {
	assert.Equal(t, "None", core.Category(0).String())
	assert.Equal(t, "Bidirectional|Tree", (core.Bidirectional | core.Tree).String())

	g, err := core.NewDirected(intNodes(2), intEdges([2]int{0, 1}))
	require.NoError(t, err)

	err = g.IndexRootedTree(t.Context(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrCategory)

	var ce *core.CategoryError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, core.Bidirectional|core.Connected, ce.Missing)
	assert.Contains(t, err.Error(), "core: graph lacks required categories: Bidirectional, Connected")
}

func TestHopDistances(t *testing.T) {
	g := sampleTree(t)
	got, err := g.HopDistances("BBB")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"BBB": 0, "AAA": 1, "CCC": 2, "DDD": 3, "EEE": 3, "FFF": 3}, got)

	d, err := core.NewDirected(intNodes(3), intEdges([2]int{0, 1}))
	require.NoError(t, err)
	hops, err := d.HopDistances(1)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 0}, hops, "arcs are followed forward only")

	_, err = g.HopDistances("ZZZ")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestTopologicalOrder(t *testing.T) {
	g, err := core.NewDirected([]string{"shirt", "tie", "jacket", "belt", "pants"}, []core.Edge[string, struct{}]{
		{From: "shirt", To: "tie"},
		{From: "tie", To: "jacket"},
		{From: "pants", To: "belt"},
		{From: "belt", To: "jacket"},
	})
	require.NoError(t, err)

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, 5)
	pos := map[string]int{}
	for i, l := range order {
		pos[l] = i
	}
	assert.Less(t, pos["shirt"], pos["tie"])
	assert.Less(t, pos["tie"], pos["jacket"])
	assert.Less(t, pos["pants"], pos["belt"])
	assert.Less(t, pos["belt"], pos["jacket"])

	_, err = sampleTree(t).TopologicalOrder()
	assert.ErrorIs(t, err, core.ErrCategory, "undirected graphs never carry DAG")
}

func TestNilGraph(t *testing.T) {
	var g *core.Graph[string, int]
	assert.Equal(t, 0, g.NodeCount())
	assert.False(t, g.IsTree())
	assert.Nil(t, g.Nodes())
	assert.False(t, g.Indexed())

	assert.ErrorIs(t, g.IndexRootedTree(t.Context(), "a"), core.ErrNilGraph)
	_, err := g.Bridges()
	assert.ErrorIs(t, err, core.ErrNilGraph)
	_, err = g.Neighbors("a")
	assert.ErrorIs(t, err, core.ErrNilGraph)
}
