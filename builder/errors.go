// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w: "<Method>: <detail>: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownKind indicates that ByKind received an unsupported topology name.
var ErrUnknownKind = errors.New("builder: unknown topology kind")

// ErrConstructFailed indicates a construction that cannot proceed, such as a
// nil constructor in Build.
var ErrConstructFailed = errors.New("builder: construction failed")
