// SPDX-License-Identifier: MIT

// Package knapsack solves the 0/1 knapsack problem: pick a subset of items,
// each at most once, maximizing total value with total cost ≤ capacity.
//
// Items can be any type. An Accessor extracts value and cost, so the solver
// never assumes an item shape. Three accessors are provided:
//
//	PairAccessor[V, C]   for Pair[V, C]{Value, Cost}
//	TupleAccessor[T]     for Tuple[T] ([2]T: index 0 value, index 1 cost)
//	Funcs[I, V, C]       for any record, from two plain functions
//
// Table:
//
//	A (n+1)×(capacity+1) dense table; row 0 and column 0 are zero.
//	table[k][c] = max(table[k-1][c], table[k-1][c-cost]+value) when cost ≤ c,
//	otherwise table[k-1][c]. The answer is table[n][capacity].
//
// Costs may be fractional. An item fits a column c when cost ≤ c, and the
// remaining column is c-cost truncated toward zero. So an item of cost 7.5
// fits capacity 8 and leaves column 0.
//
// The truncation never overfills the knapsack, but it can lose capacity: two
// items of cost 2.5 do not both fit capacity 5, because the first one leaves
// column 2. For non-integral costs the result is therefore a feasible lower
// bound on the optimum. Scale costs to integers (grams instead of kilograms)
// when the exact optimum matters.
//
// Complexity: Time O(n·capacity), Space O(n·capacity).
//
// Errors:
//
//	ErrNegativeCapacity - capacity < 0.
//	ErrNegativeCost     - some item reports a negative cost.
package knapsack
