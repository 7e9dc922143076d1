// SPDX-License-Identifier: MIT

// Package matrix: storage selectors and the Matrix interface.
// Errors live in errors.go; implementations live in dense.go and sparse.go.
package matrix

import "fmt"

// Order selects the memory layout of a Dense matrix. It affects only which
// cells sit next to each other in memory, never the values observed.
type Order int

const (
	// RowMajor stores (r, c) at r*cols + c.
	RowMajor Order = iota + 1
	// ColMajor stores (r, c) at c*rows + r.
	ColMajor

	// DefaultOrder is the layout used when none is requested.
	DefaultOrder = RowMajor
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Storage selects a Matrix implementation.
type Storage int

const (
	// DenseStorage selects Dense: every cell materialized up front.
	DenseStorage Storage = iota
	// SparseStorage selects Sparse: only assigned cells are stored.
	SparseStorage
)

// String implements fmt.Stringer.
func (s Storage) String() string {
	switch s {
	case DenseStorage:
		return "dense"
	case SparseStorage:
		return "sparse"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// Matrix is a rows x cols grid of T with a default value.
//
// Cells that were never written read back as DefaultValue(). Rows and Cols
// are fixed for the lifetime of the value. Every index-taking method panics
// with an error wrapping ErrOutOfRange when the coordinates are outside
// [0,Rows()) x [0,Cols()).
type Matrix[T comparable] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// DefaultValue returns the sentinel every unset cell reads as.
	DefaultValue() T

	// Get returns a copy of the cell at (row, col). It never allocates and
	// never materializes storage.
	Get(row, col int) T

	// Set assigns v to the cell at (row, col).
	Set(row, col int, v T)

	// Entry returns a pointer to the cell at (row, col). On sparse storage an
	// unset cell is materialized with the default value first.
	Entry(row, col int) *T

	// Clone returns an independent copy with the same storage and layout.
	Clone() Matrix[T]

	// Storage reports which implementation backs the matrix.
	Storage() Storage
}

// New builds an empty rows x cols matrix of the requested storage. The order
// is used only for DenseStorage.
// Panics with ErrUnknownStorage for a storage kind outside the declared set.
func New[T comparable](storage Storage, order Order, rows, cols int, def T) Matrix[T] {
	switch storage {
	case DenseStorage:
		return NewDenseOrder(rows, cols, def, order)
	case SparseStorage:
		return NewSparse(rows, cols, def)
	default:
		panic(fmt.Errorf("New(%v): %w", storage, ErrUnknownStorage))
	}
}
