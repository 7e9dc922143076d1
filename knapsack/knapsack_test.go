// SPDX-License-Identifier: MIT
package knapsack_test

import (
	"errors"
	"sort"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/knapsack"
)

// pairs are (value, cost) with one fractional cost.
var pairs = []knapsack.Pair[uint, float32]{
	{Value: 3, Cost: 1.0},
	{Value: 2, Cost: 2.0},
	{Value: 5, Cost: 7.5},
	{Value: 8, Cost: 5.0},
}

var scenario = []struct {
	capacity int
	want     uint
}{
	{7, 11},
	{8, 13},
	{10, 13},
}

func TestSolvePairs_Scenario(t *testing.T) {
	for _, sc := range scenario {
		got, err := knapsack.SolvePairs(pairs, sc.capacity)
		require.NoError(t, err)
		assert.Equal(t, sc.want, got, "capacity %d", sc.capacity)
	}
}

func TestSolve_TupleAccessor(t *testing.T) {
	items := []knapsack.Tuple[float64]{{3, 1.0}, {2, 2.0}, {5, 7.5}, {8, 5.0}}
	for _, sc := range scenario {
		got, err := knapsack.Solve[knapsack.Tuple[float64], float64, float64](items, sc.capacity, knapsack.TupleAccessor[float64]{})
		require.NoError(t, err)
		assert.InDelta(t, float64(sc.want), got, 1e-9, "capacity %d", sc.capacity)
	}
}

type crate struct {
	Label  string
	Price  int
	Weight int
}

func TestSolve_FuncsAccessor(t *testing.T) {
	acc := knapsack.Funcs[crate, int, int]{
		ValueOf: func(c crate) int { return c.Price },
		CostOf:  func(c crate) int { return c.Weight },
	}
	items := []crate{
		{"a", 60, 10},
		{"b", 100, 20},
		{"c", 120, 30},
	}
	got, err := knapsack.Solve[crate, int, int](items, 50, acc)
	require.NoError(t, err)
	assert.Equal(t, 220, got)

	best, picked, err := knapsack.Choose[crate, int, int](items, 50, acc)
	require.NoError(t, err)
	assert.Equal(t, 220, best)
	assert.Equal(t, []int{1, 2}, picked)
}

func TestChoose_Scenario(t *testing.T) {
	acc := knapsack.PairAccessor[uint, float32]{}
	best, picked, err := knapsack.Choose[knapsack.Pair[uint, float32], uint, float32](pairs, 8, acc)
	require.NoError(t, err)
	assert.Equal(t, uint(13), best)
	assert.Equal(t, []int{0, 1, 3}, picked)

	best, picked, err = knapsack.Choose[knapsack.Pair[uint, float32], uint, float32](pairs, 0, acc)
	require.NoError(t, err)
	assert.Zero(t, best)
	assert.Empty(t, picked)
}

// TestSolve_FractionalCostsTruncateRemainder pins the fractional-cost
// behavior: each remainder is truncated, so the answer is feasible but can
// miss the optimum that the same items scaled to integers reach.
func TestSolve_FractionalCostsTruncateRemainder(t *testing.T) {
	halves := []knapsack.Pair[int, float64]{{Value: 1, Cost: 2.5}, {Value: 1, Cost: 2.5}}
	got, err := knapsack.SolvePairs(halves, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, got, "5-2.5 leaves column 2, too small for the second item")

	scaled := []knapsack.Pair[int, int]{{Value: 1, Cost: 25}, {Value: 1, Cost: 25}}
	got, err = knapsack.SolvePairs(scaled, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	kg := []knapsack.Pair[int, float64]{
		{Value: 40, Cost: 2.5},
		{Value: 65, Cost: 4},
		{Value: 30, Cost: 1.5},
		{Value: 90, Cost: 6},
		{Value: 25, Cost: 3},
	}
	best, picked, err := knapsack.Choose[knapsack.Pair[int, float64], int, float64](kg, 10, knapsack.PairAccessor[int, float64]{})
	require.NoError(t, err)
	assert.Equal(t, 155, best)
	var value int
	var cost float64
	for _, i := range picked {
		value += kg[i].Value
		cost += kg[i].Cost
	}
	assert.Equal(t, best, value)
	assert.LessOrEqual(t, cost, 10.0)

	grams := make([]knapsack.Pair[int, int], len(kg))
	for i, it := range kg {
		grams[i] = knapsack.Pair[int, int]{Value: it.Value, Cost: int(it.Cost * 1000)}
	}
	best, picked, err = knapsack.Choose[knapsack.Pair[int, int], int, int](grams, 10000, knapsack.PairAccessor[int, int]{})
	require.NoError(t, err)
	assert.Equal(t, 160, best)
	assert.Equal(t, []int{0, 2, 3}, picked)
}

func TestSolve_EdgeCases(t *testing.T) {
	got, err := knapsack.SolvePairs([]knapsack.Pair[int, int]{}, 5)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = knapsack.SolvePairs([]knapsack.Pair[int, int]{{Value: 4, Cost: 0}}, 0)
	require.NoError(t, err)
	assert.Zero(t, got, "column 0 stays zero even for free items")

	_, err = knapsack.SolvePairs([]knapsack.Pair[int, int]{{Value: 1, Cost: 1}}, -1)
	assert.True(t, errors.Is(err, knapsack.ErrNegativeCapacity))

	_, err = knapsack.SolvePairs([]knapsack.Pair[int, int]{{Value: 1, Cost: -2}}, 3)
	assert.True(t, errors.Is(err, knapsack.ErrNegativeCost))
}

// item is the gofuzz-friendly form of a knapsack entry.
type item struct {
	Value uint8
	Cost  uint8
}

// TestSolve_MonotonicInCapacity checks solve(c1) <= solve(c2) for c1 <= c2
// and that Choose returns a selection that fits and sums to the optimum.
func TestSolve_MonotonicInCapacity(t *testing.T) {
	f := fuzz.NewWithSeed(77).NilChance(0).NumElements(0, 12)
	acc := knapsack.Funcs[item, int, int]{
		ValueOf: func(it item) int { return int(it.Value) },
		CostOf:  func(it item) int { return int(it.Cost % 40) },
	}

	for iter := 0; iter < 100; iter++ {
		var items []item
		var caps [3]uint8
		f.Fuzz(&items)
		f.Fuzz(&caps)
		cs := []int{int(caps[0] % 100), int(caps[1] % 100), int(caps[2] % 100)}
		sort.Ints(cs)

		prev := -1
		for _, c := range cs {
			got, err := knapsack.Solve[item, int, int](items, c, acc)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got, prev, "iter %d capacity %d", iter, c)
			prev = got

			best, picked, err := knapsack.Choose[item, int, int](items, c, acc)
			require.NoError(t, err)
			require.Equal(t, got, best)
			var value, cost int
			for _, i := range picked {
				value += acc.Value(items[i])
				cost += acc.Cost(items[i])
			}
			require.Equal(t, best, value, "iter %d capacity %d", iter, c)
			require.LessOrEqual(t, cost, c, "iter %d capacity %d", iter, c)
		}
	}
}
