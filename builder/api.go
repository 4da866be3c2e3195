// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// api.go - public entry points for the builder package.
//
// Contract:
//   - One orchestrator: Build(directed, bopts, cons...) resolves cfg once and
//     runs cons in order against one Blueprint.
//   - Factories are declared in impl_*.go; ByKind maps CLI names onto them.
//   - Determinism: same inputs, options and seed give identical blueprints.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtree/core"
)

// Constructor appends one topology to a Blueprint using the resolved
// builderConfig. Constructors validate parameters first and return wrapped
// sentinels; they never panic.
type Constructor func(b *Blueprint, cfg builderConfig) error

// Build creates a Blueprint and applies cons in order.
// Any constructor error is wrapped with "Build: %w" and returned immediately.
func Build(directed bool, bopts []BuilderOption, cons ...Constructor) (*Blueprint, error) {
	cfg := newBuilderConfig(bopts...)
	b := &Blueprint{Directed: directed}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return b, nil
}

// BuildGraph is Build followed by Blueprint.Graph.
func BuildGraph(directed bool, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string, float64], error) {
	b, err := Build(directed, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return b.Graph(gopts...)
}

var kinds = map[string]func(n int) Constructor{
	KindPath:     Path,
	KindStar:     Star,
	KindCycle:    Cycle,
	KindWheel:    Wheel,
	KindComplete: Complete,
	KindBinary:   BinaryTree,
	KindRandom:   RandomTree,
}

// ByKind returns the constructor registered under kind for size n.
func ByKind(kind string, n int) (Constructor, error) {
	factory, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownKind, kind, Kinds())
	}

	return factory(n), nil
}

// Kinds lists the names accepted by ByKind in sorted order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
