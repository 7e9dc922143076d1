// SPDX-License-Identifier: MIT
package knapsack

import "golang.org/x/exp/constraints"

// Number is the set of numeric kinds usable as values and costs.
type Number interface {
	constraints.Integer | constraints.Float
}

// Accessor extracts the value and cost of an item.
type Accessor[I any, V, C Number] interface {
	Value(item I) V
	Cost(item I) C
}

// Pair is a two-field item.
type Pair[V, C Number] struct {
	Value V
	Cost  C
}

// PairAccessor reads Pair items.
type PairAccessor[V, C Number] struct{}

// Value returns p.Value.
func (PairAccessor[V, C]) Value(p Pair[V, C]) V { return p.Value }

// Cost returns p.Cost.
func (PairAccessor[V, C]) Cost(p Pair[V, C]) C { return p.Cost }

// Tuple is a positional item: index 0 is the value, index 1 the cost.
type Tuple[T Number] [2]T

// TupleAccessor reads Tuple items.
type TupleAccessor[T Number] struct{}

// Value returns t[0].
func (TupleAccessor[T]) Value(t Tuple[T]) T { return t[0] }

// Cost returns t[1].
func (TupleAccessor[T]) Cost(t Tuple[T]) T { return t[1] }

// Funcs adapts two functions into an Accessor.
type Funcs[I any, V, C Number] struct {
	ValueOf func(I) V
	CostOf  func(I) C
}

// Value calls f.ValueOf.
func (f Funcs[I, V, C]) Value(item I) V { return f.ValueOf(item) }

// Cost calls f.CostOf.
func (f Funcs[I, V, C]) Cost(item I) C { return f.CostOf(item) }
