// SPDX-License-Identifier: MIT
// Package: lvtree/core

package core

import (
	"errors"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvtree/adjacency"
	"github.com/katalvlaran/lvtree/rtree"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates a label that was not among the construction nodes.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNotIndexed indicates a tree query before IndexRootedTree succeeded.
	ErrNotIndexed = errors.New("core: rooted-tree index not built")

	// ErrNoAncestorTable indicates a lifting query on an index built without WithAncestorTable.
	ErrNoAncestorTable = rtree.ErrNoAncestorTable

	// ErrAncestorOutOfRange indicates KthAncestor with k < 0 or k beyond the root.
	ErrAncestorOutOfRange = rtree.ErrAncestorOutOfRange

	// ErrNilGraph indicates a method call on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is one construction input: an edge between two labels with a weight.
type Edge[N comparable, W any] struct {
	From   N
	To     N
	Weight W
}

// Bridge is a cut edge reported as (child, parent) of the rooted tree.
type Bridge[N comparable] struct {
	Child  N
	Parent N
}

// Pair is one (a, b) request of a batch ancestor query.
type Pair[N comparable] struct {
	A N
	B N
}

// TreeNode is a label-level snapshot of one rooted-tree record.
type TreeNode[N comparable] struct {
	Label   N
	Parent  N // the root is its own parent
	Enter   int
	Exit    int
	Depth   int
	Size    int
	UpCount int

	// Ancestors[k] is the 2^k-th ancestor; empty without the ancestor table.
	Ancestors []N
}

// Graph is an immutable labelled graph with an optional rooted-tree index.
//
// labels/ids form the Index Map: ids[labels[i]] == i for every i.
// mu guards tree only; everything else is fixed at construction.
type Graph[N comparable, W any] struct {
	directed bool
	ids      map[N]int
	labels   []N
	store    *adjacency.Store[W]
	cats     Category

	logger *slog.Logger
	tracer trace.Tracer

	mu   sync.RWMutex
	tree *rtree.Index
}

// GraphOption configures ambient collaborators of a Graph.
type GraphOption func(*settings)

type settings struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) GraphOption {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the otel tracer; nil keeps the global "lvtree/core" tracer.
func WithTracer(t trace.Tracer) GraphOption {
	return func(s *settings) {
		if t != nil {
			s.tracer = t
		}
	}
}

// IndexOption configures IndexRootedTree.
type IndexOption func(*indexConfig)

type indexConfig struct {
	ancestors bool
}

// WithAncestorTable builds the binary-lifting table, enabling
// CommonAncestor, CommonAncestors, KthAncestor and Distance.
func WithAncestorTable() IndexOption {
	return func(c *indexConfig) { c.ancestors = true }
}
