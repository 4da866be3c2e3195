package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtree/adjacency"
	"github.com/katalvlaran/lvtree/unionfind"
)

func undirected(n int, pairs ...[2]int) *adjacency.Store[int] {
	s := adjacency.NewStore[int](n)
	for _, p := range pairs {
		_ = s.AddEdge(p[0], p[1], 0)
	}

	return s
}

func TestDSU(t *testing.T) {
	d := unionfind.New(5)
	assert.Equal(t, 5, d.Sets())

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(2, 3))
	assert.False(t, d.Union(1, 0), "already merged")
	assert.True(t, d.Union(1, 3))

	assert.Equal(t, d.Find(0), d.Find(3))
	assert.NotEqual(t, d.Find(0), d.Find(4))
	assert.Equal(t, 2, d.Sets())
}

func TestHasCycle(t *testing.T) {
	cases := []struct {
		name string
		view *adjacency.Store[int]
		want bool
	}{
		{"Empty", undirected(0), false},
		{"Isolated", undirected(3), false},
		{"Path", undirected(3, [2]int{0, 1}, [2]int{1, 2}), false},
		{"Forest", undirected(4, [2]int{0, 1}, [2]int{2, 3}), false},
		{"Triangle", undirected(3, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}), true},
		{"SelfLoop", undirected(2, [2]int{0, 1}, [2]int{1, 1}), true},
		{"ParallelEdge", undirected(2, [2]int{0, 1}, [2]int{1, 0}), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, unionfind.HasCycle[int](tc.view))
		})
	}
}
