// SPDX-License-Identifier: MIT

// Package matrix provides the two-dimensional storage shared by every solver
// in lvsearch.
//
// Two interchangeable implementations satisfy the Matrix interface:
//
//   - Dense: a flat slice holding rows*cols cells, laid out row-major or
//     column-major (chosen at construction). Every cell is materialized.
//   - Sparse: a hash map keyed by (row, col). Only assigned cells are stored;
//     every other coordinate reads back as the default value.
//
// Both carry a default ("sentinel") value. A freshly built matrix reads the
// default everywhere, and conversions copy only the cells that differ from it.
//
// Reads and writes:
//
//   - Get never allocates. On Sparse it peeks at the map and returns the
//     default for an absent cell without inserting it.
//   - Set assigns a cell (Sparse materializes it).
//   - Entry returns a pointer to the cell. Reading a mutable reference to an
//     unset sparse cell allocates it: the cell is created holding the default
//     value before the pointer is returned.
//
// Conversions (ToDense, ToSparse, Convert) keep dimensions and default value.
// A conversion to the same storage and layout short-circuits to Clone.
// For any matrix m, ToDense(ToSparse(m)) and ToSparse(ToDense(m)) are equal
// to m cell by cell (see Equal).
//
// Contract violations (negative dimensions, out-of-range indices) panic with
// an error wrapping ErrInvalidDimensions or ErrOutOfRange. They are
// programmer errors, not recoverable conditions.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); NewSparse: O(1).
//   - Get/Set/Entry: O(1) (Sparse: amortized O(1)).
//   - Clone: Dense O(r*c), Sparse O(k) for k stored cells.
//   - ToSparse from Dense: O(r*c); ToDense from Sparse: O(r*c + k).
package matrix
