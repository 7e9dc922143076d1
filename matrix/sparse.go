// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage keyed by coordinate.
//
// Purpose:
//   - Store only the cells that were written (Set or Entry).
//   - Answer every other coordinate with the default value, without inserting.
//
// Get is the side-effect-free peek; Entry is the materializing accessor.
// Keeping them apart makes the allocation visible at the call site.

package matrix

import "fmt"

const kindSparse = "Sparse"

// point is a (row, col) map key.
type point struct {
	row int
	col int
}

// Sparse is a matrix backed by a map from coordinate to cell.
// Cells are heap-allocated so Entry can hand out stable pointers.
type Sparse[T comparable] struct {
	r, c int
	def  T
	data map[point]*T
}

var _ Matrix[float64] = (*Sparse[float64])(nil)

// NewSparse creates an empty rows x cols sparse matrix whose unset cells read
// as def. Panics with ErrInvalidDimensions when rows or cols is negative.
// Complexity: O(1).
func NewSparse[T comparable](rows, cols int, def T) *Sparse[T] {
	checkShape(rows, cols)

	return &Sparse[T]{r: rows, c: cols, def: def, data: make(map[point]*T)}
}

// Rows returns the number of rows.
func (m *Sparse[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Sparse[T]) Cols() int { return m.c }

// DefaultValue returns the construction-time default.
func (m *Sparse[T]) DefaultValue() T { return m.def }

// Storage reports SparseStorage.
func (m *Sparse[T]) Storage() Storage { return SparseStorage }

// Len returns the number of materialized cells.
func (m *Sparse[T]) Len() int { return len(m.data) }

// Get returns the stored value at (row, col), or the default when the cell
// was never materialized. The map is not modified.
func (m *Sparse[T]) Get(row, col int) T {
	checkIndex(kindSparse, ctxGet, m.r, m.c, row, col)
	if cell, ok := m.data[point{row: row, col: col}]; ok {
		return *cell
	}

	return m.def
}

// Has reports whether (row, col) is materialized.
func (m *Sparse[T]) Has(row, col int) bool {
	checkIndex(kindSparse, "Has", m.r, m.c, row, col)
	_, ok := m.data[point{row: row, col: col}]

	return ok
}

// Set materializes (row, col) with v. Writing the default still stores the
// cell; use Delete to drop it.
func (m *Sparse[T]) Set(row, col int, v T) {
	checkIndex(kindSparse, ctxSet, m.r, m.c, row, col)
	p := point{row: row, col: col}
	if cell, ok := m.data[p]; ok {
		*cell = v
		return
	}
	m.data[p] = &v
}

// Delete drops (row, col) so it reads as the default again.
func (m *Sparse[T]) Delete(row, col int) {
	checkIndex(kindSparse, "Delete", m.r, m.c, row, col)
	delete(m.data, point{row: row, col: col})
}

// Entry returns a pointer to the cell at (row, col). If the cell is unset it
// is allocated and initialized to the default first, so Len grows by one.
//
// The pointer stays bound to the cell until Delete drops it.
func (m *Sparse[T]) Entry(row, col int) *T {
	checkIndex(kindSparse, ctxEntry, m.r, m.c, row, col)
	p := point{row: row, col: col}
	if cell, ok := m.data[p]; ok {
		return cell
	}
	cell := new(T)
	*cell = m.def
	m.data[p] = cell

	return cell
}

// Clone returns an independent copy of the stored cells.
// Complexity: O(k) for k materialized cells.
func (m *Sparse[T]) Clone() Matrix[T] {
	return m.clone()
}

func (m *Sparse[T]) clone() *Sparse[T] {
	data := make(map[point]*T, len(m.data))
	for p, cell := range m.data {
		v := *cell
		data[p] = &v
	}

	return &Sparse[T]{r: m.r, c: m.c, def: m.def, data: data}
}

// ToSparse returns a clone: the conversion is the identity.
func (m *Sparse[T]) ToSparse() *Sparse[T] {
	return m.clone()
}

// ToDense converts m into a Dense matrix with the requested layout, copying
// the stored cells that differ from the default.
// Complexity: O(r*c) for the allocation plus O(k) for the copy.
func (m *Sparse[T]) ToDense(order Order) *Dense[T] {
	out := NewDenseOrder(m.r, m.c, m.def, order)
	for p, cell := range m.data {
		if !same(*cell, m.def) {
			out.data[out.offset(p.row, p.col)] = *cell
		}
	}

	return out
}

// String renders the dimensions and the number of stored cells.
func (m *Sparse[T]) String() string {
	return fmt.Sprintf("Sparse(%dx%d, stored=%d, default=%v)", m.r, m.c, len(m.data), m.def)
}
