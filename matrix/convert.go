// SPDX-License-Identifier: MIT

// Package matrix - conversions between storage kinds.
//
// Contract:
//   - The target keeps rows, cols and the default value of the source.
//   - Only cells whose value differs from the default are copied.
//   - Same storage and same layout short-circuits to Clone (no scan).

package matrix

import "fmt"

// ToDense converts any Matrix to a Dense with the given layout.
// A *Dense already in that layout is cloned without scanning.
// Complexity: O(r*c).
func ToDense[T comparable](m Matrix[T], order Order) *Dense[T] {
	switch src := m.(type) {
	case *Dense[T]:
		return src.ToDense(order)
	case *Sparse[T]:
		return src.ToDense(order)
	}

	// Foreign implementation: scan through the interface.
	out := NewDenseOrder(m.Rows(), m.Cols(), m.DefaultValue(), order)
	copyNonDefault[T](out, m)

	return out
}

// ToSparse converts any Matrix to a Sparse. A *Sparse is cloned.
// Complexity: O(r*c) for dense sources, O(k) for sparse ones.
func ToSparse[T comparable](m Matrix[T]) *Sparse[T] {
	switch src := m.(type) {
	case *Dense[T]:
		return src.ToSparse()
	case *Sparse[T]:
		return src.ToSparse()
	}

	out := NewSparse(m.Rows(), m.Cols(), m.DefaultValue())
	copyNonDefault[T](out, m)

	return out
}

// Convert converts m to the requested storage. order applies to DenseStorage.
// Panics with ErrUnknownStorage for a storage kind outside the declared set.
func Convert[T comparable](m Matrix[T], storage Storage, order Order) Matrix[T] {
	switch storage {
	case DenseStorage:
		return ToDense(m, order)
	case SparseStorage:
		return ToSparse(m)
	default:
		panic(fmt.Errorf("Convert(%v): %w", storage, ErrUnknownStorage))
	}
}

// Equal reports whether a and b have the same shape, the same default value
// and the same effective value in every cell. Storage kind and layout are
// ignored. A NaN cell equals a NaN cell.
// Complexity: O(r*c).
func Equal[T comparable](a, b Matrix[T]) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if !same(a.DefaultValue(), b.DefaultValue()) {
		return false
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if !same(a.Get(i, j), b.Get(i, j)) {
				return false
			}
		}
	}

	return true
}

// copyNonDefault writes every non-default cell of src into dst.
func copyNonDefault[T comparable](dst, src Matrix[T]) {
	def := src.DefaultValue()
	var i, j int
	var v T
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			v = src.Get(i, j)
			if !same(v, def) {
				dst.Set(i, j, v)
			}
		}
	}
}

// same is == except that NaN matches NaN. NaN is the only value of a
// comparable type that is unequal to itself.
func same[T comparable](a, b T) bool {
	return a == b || (a != a && b != b)
}
