// SPDX-License-Identifier: MIT
package knapsack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/matrix"
)

var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be >= 0")

	// ErrNegativeCost indicates an item whose cost is below zero.
	ErrNegativeCost = errors.New("knapsack: item cost must be >= 0")
)

// Solve returns the best total value of items fitting into capacity.
// With integral costs the value is optimal. With fractional costs it is the
// value of a feasible selection and may fall short of the optimum, since the
// leftover capacity after each item is truncated to a whole column.
func Solve[I any, V, C Number](items []I, capacity int, acc Accessor[I, V, C]) (V, error) {
	table, err := fill(items, capacity, acc)
	if err != nil {
		return 0, err
	}

	return table.Get(len(items), capacity), nil
}

// SolvePairs is Solve over Pair items.
func SolvePairs[V, C Number](items []Pair[V, C], capacity int) (V, error) {
	return Solve[Pair[V, C], V, C](items, capacity, PairAccessor[V, C]{})
}

// Choose returns the best total value together with the indices of one
// selection reaching it, in ascending order. The selection always fits; it is
// optimal only for integral costs (see Solve).
func Choose[I any, V, C Number](items []I, capacity int, acc Accessor[I, V, C]) (V, []int, error) {
	table, err := fill(items, capacity, acc)
	if err != nil {
		return 0, nil, err
	}

	var picked []int
	c := capacity
	for k := len(items); k >= 1; k-- {
		if table.Get(k, c) == table.Get(k-1, c) {
			continue
		}
		picked = append(picked, k-1)
		c = remaining(c, acc.Cost(items[k-1]))
	}
	for i, j := 0, len(picked)-1; i < j; i, j = i+1, j-1 {
		picked[i], picked[j] = picked[j], picked[i]
	}

	return table.Get(len(items), capacity), picked, nil
}

// fill validates the input and builds the DP table.
func fill[I any, V, C Number](items []I, capacity int, acc Accessor[I, V, C]) (*matrix.Dense[V], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrNegativeCapacity)
	}
	for i, it := range items {
		if acc.Cost(it) < 0 {
			return nil, fmt.Errorf("item %d cost %v: %w", i, acc.Cost(it), ErrNegativeCost)
		}
	}

	table := matrix.NewDense[V](len(items)+1, capacity+1, 0)
	for k := 1; k <= len(items); k++ {
		v := acc.Value(items[k-1])
		w := acc.Cost(items[k-1])
		for c := 1; c <= capacity; c++ {
			skip := table.Get(k-1, c)
			if !fits(w, c) {
				table.Set(k, c, skip)
				continue
			}
			take := table.Get(k-1, remaining(c, w)) + v
			table.Set(k, c, max(take, skip))
		}
	}

	return table, nil
}

// fits reports whether cost fits into column c.
func fits[C Number](cost C, c int) bool {
	return float64(cost) <= float64(c)
}

// remaining is the column left after paying cost out of c, truncated.
func remaining[C Number](c int, cost C) int {
	return int(float64(c) - float64(cost))
}
