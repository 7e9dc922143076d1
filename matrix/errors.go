// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Matrix misuse is a contract violation, so these sentinels travel inside
// panics rather than return values. They are still exported so callers and
// tests can recover and match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a requested shape has a negative extent.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index lies outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownStorage indicates a Storage value outside the declared set.
	ErrUnknownStorage = errors.New("matrix: unknown storage kind")

	// ErrUnknownOrder indicates an Order value outside the declared set.
	ErrUnknownOrder = errors.New("matrix: unknown dense order")
)

// Method tags used in panic messages.
const (
	ctxGet   = "Get"
	ctxSet   = "Set"
	ctxEntry = "Entry"
)

// indexErrorf wraps err with the receiver kind, method and coordinates.
func indexErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}

// checkShape panics unless rows and cols are both non-negative.
func checkShape(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("shape %dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
}

// checkIndex panics when (row, col) falls outside a rows x cols grid.
func checkIndex(kind, method string, rows, cols, row, col int) {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(indexErrorf(kind, method, row, col, ErrOutOfRange))
	}
}
