// Package builder contains unit tests for builderConfig and BuilderOption
// application order.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options apply in order and
// that a nil scheme is a no-op.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
	if got := newBuilderConfig(WithIDScheme(nil)).idFn(5); got != "5" {
		t.Errorf("WithIDScheme(nil): expected default \"5\", got %q", got)
	}
}

// TestRNGOptions verifies rng defaults, seeding reproducibility and that
// WithRand(nil) is ignored.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Error("default rng: expected nil")
	}

	a := newBuilderConfig(WithSeed(11)).rng.Int63()
	b := newBuilderConfig(WithSeed(11)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected identical draws, got %d and %d", a, b)
	}

	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Error("WithRand: rng not attached")
	}
	if cfg := newBuilderConfig(WithSeed(3), WithRand(nil)); cfg.rng == nil {
		t.Error("WithRand(nil): expected previous rng to survive")
	}
}

// TestWeightOption verifies the weight policy reaches cfg.weight.
func TestWeightOption(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().weight(); got != DefaultEdgeWeight {
		t.Errorf("default weight = %g", got)
	}
	if got := newBuilderConfig(WithConstantWeight(2.5)).weight(); got != 2.5 {
		t.Errorf("WithConstantWeight(2.5) = %g", got)
	}
}
