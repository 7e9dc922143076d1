// SPDX-License-Identifier: MIT
package builder_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/graph"
)

func directed[W graph.Weight]() graph.Options[W] {
	opts := graph.DefaultOptions[W]()
	opts.Directed = true

	return opts
}

func degrees[W graph.Weight](t *testing.T, g *graph.Graph[int, W]) []int {
	t.Helper()
	out := make([]int, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		arcs, err := g.Neighbors(n)
		require.NoError(t, err)
		out = append(out, len(arcs))
	}

	return out
}

func TestBuild_Topologies(t *testing.T) {
	tests := []struct {
		name    string
		con     builder.Constructor[int]
		nodes   int
		arcs    int
		degrees []int
	}{
		{"Path5", builder.Path[int](5), 5, 8, []int{1, 2, 2, 2, 1}},
		{"Cycle4", builder.Cycle[int](4), 4, 8, []int{2, 2, 2, 2}},
		{"Complete4", builder.Complete[int](4), 4, 12, []int{3, 3, 3, 3}},
		{"Grid2x3", builder.Grid[int](2, 3), 6, 14, []int{2, 3, 2, 2, 3, 2}},
		{"RandomSparseFull", builder.RandomSparse[int](4, 1), 4, 12, []int{3, 3, 3, 3}},
		{"RandomSparseEmpty", builder.RandomSparse[int](3, 0), 3, 0, []int{0, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(graph.DefaultOptions[int](), nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.arcs, g.EdgeCount())
			assert.Equal(t, tc.degrees, degrees(t, g))
		})
	}
}

func TestBuild_DirectedComplete(t *testing.T) {
	g, err := builder.Build(directed[float64](), nil, builder.Complete[float64](3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	arcs, err := g.Neighbors(2)
	require.NoError(t, err)
	want := []graph.Edge[int, float64]{{To: 0, Weight: 1}, {To: 1, Weight: 1}}
	if diff := cmp.Diff(want, arcs); diff != "" {
		t.Fatalf("Neighbors(2) (-want +got):\n%s", diff)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor[float64]
		opts []builder.Option
		want error
	}{
		{"PathTooSmall", builder.Path[float64](1), nil, builder.ErrTooFewVertices},
		{"CycleTooSmall", builder.Cycle[float64](2), nil, builder.ErrTooFewVertices},
		{"CompleteTooSmall", builder.Complete[float64](0), nil, builder.ErrTooFewVertices},
		{"GridTooSmall", builder.Grid[float64](0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparseTooSmall", builder.RandomSparse[float64](0, 0.5), []builder.Option{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomSparseBadP", builder.RandomSparse[float64](5, 1.5), []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparseNoRNG", builder.RandomSparse[float64](5, 0.5), nil, builder.ErrNeedRandSource},
		{"NilConstructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(graph.DefaultOptions[float64](), tc.opts, tc.con)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *graph.Graph[int, float64] {
		g, err := builder.Build(directed[float64](),
			[]builder.Option{builder.WithSeed(99), builder.WithUniformWeight(-2, 10)},
			builder.RandomSparse[float64](30, 0.2),
		)
		require.NoError(t, err)

		return g
	}
	a, b := build(), build()
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, n := range a.Nodes() {
		x, _ := a.Neighbors(n)
		y, _ := b.Neighbors(n)
		if diff := cmp.Diff(x, y); diff != "" {
			t.Fatalf("node %d differs between identical builds:\n%s", n, diff)
		}
		for _, e := range x {
			assert.NotEqual(t, n, e.To, "no self-loops")
			assert.GreaterOrEqual(t, e.Weight, -2.0)
			assert.Less(t, e.Weight, 10.0)
		}
	}
}

func TestWeights(t *testing.T) {
	g, err := builder.Build(graph.DefaultOptions[int](),
		[]builder.Option{builder.WithConstantWeight(2.9)},
		builder.Path[int](3),
	)
	require.NoError(t, err)
	arcs, _ := g.Neighbors(0)
	assert.Equal(t, 2, arcs[0].Weight, "integer weights truncate")

	rng := rand.New(rand.NewSource(3))
	fn := builder.UniformWeightFn(4, 4)
	assert.Equal(t, 4.0, fn(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(0, 5)(nil))
	assert.Equal(t, -1.5, builder.ConstantWeightFn(-1.5)(rng))
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.WithUniformWeight(0, math.Inf(1)) })
	assert.Panics(t, func() { builder.ConstantWeightFn(math.NaN()) })
}
