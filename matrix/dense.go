// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major or column-major) & accessors.
//
// Purpose:
//   - Keep every cell in one contiguous slice with an explicit index formula.
//   - Let the layout be picked at construction; values never depend on it.
//   - Fail fast on contract violations (bad shape, bad index).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) fill; Get/Set/Entry: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

const kindDense = "Dense"

// Dense is a fully materialized matrix.
//   - r, c hold the dimensions.
//   - data holds r*c cells; Offset gives the position of (row, col).
//   - def is the value every cell held at construction.
type Dense[T comparable] struct {
	r, c  int
	order Order
	def   T
	data  []T
}

// Compile-time assertions.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates a rows x cols row-major matrix with every cell set to def.
// Panics with ErrInvalidDimensions when rows or cols is negative.
// Complexity: O(rows*cols).
func NewDense[T comparable](rows, cols int, def T) *Dense[T] {
	return NewDenseOrder(rows, cols, def, DefaultOrder)
}

// NewDenseOrder is NewDense with an explicit layout.
// Panics with ErrUnknownOrder for an order outside {RowMajor, ColMajor}.
func NewDenseOrder[T comparable](rows, cols int, def T, order Order) *Dense[T] {
	checkShape(rows, cols)
	if order != RowMajor && order != ColMajor {
		panic(fmt.Errorf("NewDenseOrder(%v): %w", order, ErrUnknownOrder))
	}

	data := make([]T, rows*cols)
	// make() zero-fills; only a non-zero default needs an explicit pass.
	var zero T
	if def != zero {
		for i := range data {
			data[i] = def
		}
	}

	return &Dense[T]{r: rows, c: cols, order: order, def: def, data: data}
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// DefaultValue returns the construction-time default.
func (m *Dense[T]) DefaultValue() T { return m.def }

// Order reports the memory layout.
func (m *Dense[T]) Order() Order { return m.order }

// Storage reports DenseStorage.
func (m *Dense[T]) Storage() Storage { return DenseStorage }

// Offset returns the position of (row, col) in the backing slice:
// row*cols + col for RowMajor, col*rows + row for ColMajor.
// Panics with ErrOutOfRange on invalid coordinates.
func (m *Dense[T]) Offset(row, col int) int {
	checkIndex(kindDense, "Offset", m.r, m.c, row, col)

	return m.offset(row, col)
}

// offset is the unchecked index formula.
func (m *Dense[T]) offset(row, col int) int {
	if m.order == ColMajor {
		return col*m.r + row
	}

	return row*m.c + col
}

// Get returns the value stored at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Get(row, col int) T {
	checkIndex(kindDense, ctxGet, m.r, m.c, row, col)

	return m.data[m.offset(row, col)]
}

// Set stores v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) {
	checkIndex(kindDense, ctxSet, m.r, m.c, row, col)
	m.data[m.offset(row, col)] = v
}

// Entry returns a pointer into the backing slice. The pointer stays valid for
// the lifetime of m (the slice is never reallocated).
func (m *Dense[T]) Entry(row, col int) *T {
	checkIndex(kindDense, ctxEntry, m.r, m.c, row, col)

	return &m.data[m.offset(row, col)]
}

// Clone returns a deep copy with the same layout.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	return m.clone()
}

func (m *Dense[T]) clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, order: m.order, def: m.def, data: data}
}

// ToSparse converts m into a Sparse matrix holding only the cells that
// differ from the default. Traversal is row by row.
// Complexity: O(r*c).
func (m *Dense[T]) ToSparse() *Sparse[T] {
	out := NewSparse(m.r, m.c, m.def)
	var i, j int
	var v T
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[m.offset(i, j)]
			if !same(v, m.def) {
				out.Set(i, j, v)
			}
		}
	}

	return out
}

// ToDense converts m into a Dense matrix with the requested layout. Asking
// for the current layout returns a clone without scanning cell by cell.
func (m *Dense[T]) ToDense(order Order) *Dense[T] {
	if order == m.order {
		return m.clone()
	}

	out := NewDenseOrder(m.r, m.c, m.def, order)
	var i, j int
	var v T
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[m.offset(i, j)]
			if !same(v, m.def) {
				out.data[out.offset(i, j)] = v
			}
		}
	}

	return out
}

// String renders the matrix one bracketed row per line.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.data[m.offset(i, j)])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
