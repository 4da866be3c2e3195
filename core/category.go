// SPDX-License-Identifier: MIT
// Package: lvtree/core

package core

import (
	"errors"
	"strings"
)

// Category is a bitmask of structural facts computed once at construction.
type Category uint8

const (
	// Bidirectional is set for undirected graphs.
	Bidirectional Category = 1 << iota

	// Tree is set for connected undirected graphs with exactly n-1 edges.
	Tree

	// Connected is set when one sweep from the first node reaches every node.
	Connected

	// Forest is set for undirected graphs without cycles.
	Forest

	// DAG is set for directed graphs without cycles.
	DAG
)

var categoryNames = [...]struct {
	bit  Category
	name string
}{
	{Bidirectional, "Bidirectional"},
	{Tree, "Tree"},
	{Connected, "Connected"},
	{Forest, "Forest"},
	{DAG, "DAG"},
}

// Has reports whether every bit of want is set in c.
func (c Category) Has(want Category) bool { return c&want == want }

// String joins the set category names with "|", or "None".
func (c Category) String() string {
	var names []string
	for _, cn := range categoryNames {
		if c&cn.bit != 0 {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}

	return strings.Join(names, "|")
}

// ErrCategory is matched by every *CategoryError.
var ErrCategory = errors.New("core: graph lacks required categories")

// CategoryError reports the categories an operation needed but the graph lacks.
type CategoryError struct {
	Op      string
	Missing Category
}

func (e *CategoryError) Error() string {
	msg := ErrCategory.Error() + ": " + strings.ReplaceAll(e.Missing.String(), "|", ", ")
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}

	return msg
}

// Is makes errors.Is(err, ErrCategory) hold.
func (e *CategoryError) Is(target error) bool { return target == ErrCategory }

// require fails with *CategoryError when any bit of need is missing.
func (g *Graph[N, W]) require(op string, need Category) error {
	if g.cats.Has(need) {
		return nil
	}

	return &CategoryError{Op: op, Missing: need &^ g.cats}
}
