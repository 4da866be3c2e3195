package core_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// ExampleGraph_IndexRootedTree builds the six-node sample tree, roots it at
// AAA and queries ancestors and bridges.
func ExampleGraph_IndexRootedTree() {
	nodes := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF"}
	edges := []core.Edge[string, int]{
		{From: "AAA", To: "BBB", Weight: 1},
		{From: "AAA", To: "CCC", Weight: 2},
		{From: "CCC", To: "DDD", Weight: 2},
		{From: "CCC", To: "EEE", Weight: 2},
		{From: "CCC", To: "FFF", Weight: 2},
	}
	g, err := core.NewUndirected(nodes, edges)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Categories())

	if err := g.IndexRootedTree(context.Background(), "AAA", core.WithAncestorTable()); err != nil {
		fmt.Println(err)
		return
	}
	lca, _ := g.CommonAncestor("DDD", "FFF")
	fmt.Println("lca(DDD,FFF) =", lca)
	lca, _ = g.CommonAncestor("EEE", "BBB")
	fmt.Println("lca(EEE,BBB) =", lca)

	bridges, _ := g.Bridges()
	for _, b := range bridges {
		fmt.Printf("%s-%s\n", b.Child, b.Parent)
	}
	// Output:
	// Bidirectional|Tree|Connected|Forest
	// lca(DDD,FFF) = CCC
	// lca(EEE,BBB) = AAA
	// BBB-AAA
	// CCC-AAA
	// DDD-CCC
	// EEE-CCC
	// FFF-CCC
}

// ExampleGraph_Neighbors ranges over the adjacency of one node.
func ExampleGraph_Neighbors() {
	g, _ := core.NewDirected([]string{"a", "b", "c"}, []core.Edge[string, float64]{
		{From: "a", To: "b", Weight: 0.5},
		{From: "a", To: "c", Weight: 1.5},
	})
	seq, _ := g.Neighbors("a")
	for n, w := range seq {
		fmt.Println(n, w)
	}
	fmt.Println(g.IsDAG())
	// Output:
	// b 0.5
	// c 1.5
	// true
}

// ExampleGraph_Bridges finds the single cut edge between two triangles.
func ExampleGraph_Bridges() {
	g, _ := core.NewUndirected([]string{"a", "b", "c", "x", "y", "z"}, []core.Edge[string, int]{
		{From: "a", To: "b"}, {From: "b", To: "c"}, {From: "c", To: "a"},
		{From: "c", To: "x"},
		{From: "x", To: "y"}, {From: "y", To: "z"}, {From: "z", To: "x"},
	})
	_ = g.IndexRootedTree(context.Background(), "a")
	bridges, _ := g.Bridges()
	fmt.Println(bridges)
	// Output:
	// [{x c}]
}
