// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn      ("0","1","2",...)
//   - rng      = nil              (deterministic unless seeded)
//   - weightFn = DefaultWeightFn  (DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order (later overrides earlier) on top of
// the deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
