// SPDX-License-Identifier: MIT

// Package shortest holds the result container shared by every shortest-path
// solver, plus the functional options those solvers accept.
//
// A Solution owns a node map and a distance matrix:
//
//   - SingleSource: a 1×n matrix; cell (0, index(v)) is the distance from the
//     source to v.
//   - AllPairs: an n×n matrix; cell (index(u), index(v)) is the distance u→v.
//
// Cells a solver never reached hold the graph's sentinel. Reachable compares
// against that sentinel, so it works for +Inf and for integer maxima alike.
//
// Options:
//
//	WithStorage(matrix.DenseStorage | matrix.SparseStorage)  result storage (default dense)
//	WithOrder(matrix.RowMajor | matrix.ColMajor)             dense layout (default row-major)
//	WithLogger(*zap.Logger)                                  solver diagnostics (default no-op)
//
// Sparse storage suits all-pairs solves over graphs with many unreachable
// pairs: only reached cells are stored.
//
// Errors:
//
//	ErrModeMismatch     - single-source query on an all-pairs solution, or vice versa.
//	graph.ErrUnknownNode - the queried node is not in the solution's node map.
package shortest
