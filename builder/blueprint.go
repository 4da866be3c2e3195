// SPDX-License-Identifier: MIT
// Package: lvtree/builder

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/core"
)

// Blueprint is a construction-ready graph description: labels in first-seen
// order plus weighted edges in emission order. Its YAML form is the graph
// document read and written by cmd/lvtree.
type Blueprint struct {
	Directed bool                         `yaml:"directed"`
	Nodes    []string                     `yaml:"nodes"`
	Edges    []core.Edge[string, float64] `yaml:"edges"`

	seen map[string]struct{}
}

// Graph builds a core.Graph from the blueprint.
func (b *Blueprint) Graph(opts ...core.GraphOption) (*core.Graph[string, float64], error) {
	if b == nil {
		return nil, fmt.Errorf("Blueprint.Graph: nil blueprint: %w", ErrConstructFailed)
	}
	if b.Directed {
		return core.NewDirected(b.Nodes, b.Edges, opts...)
	}

	return core.NewUndirected(b.Nodes, b.Edges, opts...)
}

// addNode appends id unless it is already present.
func (b *Blueprint) addNode(id string) {
	if b.seen == nil {
		b.seen = make(map[string]struct{}, len(b.Nodes))
		for _, n := range b.Nodes {
			b.seen[n] = struct{}{}
		}
	}
	if _, ok := b.seen[id]; ok {
		return
	}
	b.seen[id] = struct{}{}
	b.Nodes = append(b.Nodes, id)
}

// addEdge appends from→to with weight w; core mirrors it when undirected.
func (b *Blueprint) addEdge(from, to string, w float64) {
	b.Edges = append(b.Edges, core.Edge[string, float64]{From: from, To: to, Weight: w})
}

// addNodes appends idFn(0..n-1).
func (b *Blueprint) addNodes(n int, cfg builderConfig) {
	for i := 0; i < n; i++ {
		b.addNode(cfg.idFn(i))
	}
}
