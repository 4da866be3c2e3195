package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtree/builder"
)

// TestWeightFns checks constant, uniform and default weight policies.
func TestWeightFns(t *testing.T) {
	t.Parallel()

	if got := builder.DefaultWeightFn(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn = %g; want %g", got, builder.DefaultEdgeWeight)
	}
	if got := builder.ConstantWeightFn(3.5)(nil); got != 3.5 {
		t.Errorf("ConstantWeightFn(3.5) = %g", got)
	}

	u := builder.UniformWeightFn(2, 4)
	if got := u(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn without rng = %g; want default", got)
	}
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		if w := u(rng); w < 2 || w >= 4 {
			t.Fatalf("UniformWeightFn(2,4) drew %g", w)
		}
	}
	if got := builder.UniformWeightFn(5, 5)(rng); got != 5 {
		t.Errorf("degenerate interval = %g; want 5", got)
	}

	assertPanics(t, func() { builder.ConstantWeightFn(-1) }, "ConstantWeightFn(-1)")
	assertPanics(t, func() { builder.UniformWeightFn(3, 1) }, "UniformWeightFn(3,1)")
	assertPanics(t, func() { builder.WithWeightFn(nil) }, "WithWeightFn(nil)")
}
