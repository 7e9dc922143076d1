// SPDX-License-Identifier: MIT

// Package floydwarshall computes all-pairs shortest paths with the
// Floyd-Warshall dynamic program.
//
// Initialization:
//
//	M[i][j] = the minimum weight over all arcs i→j, or the sentinel when
//	there is none. The diagonal follows the same rule: without a self-loop
//	M[i][i] stays at the sentinel, because a node only "reaches itself" when
//	some cycle brings it back.
//
// Closure:
//
//	For k = 0..n-1 in node-map order, for every (i, j): when M[i][k] and
//	M[k][j] are both reached and their sum beats M[i][j] (or M[i][j] is
//	unreached), store the sum. All k passes always run; stopping after a
//	pass without change would miss paths through later intermediates.
//
// Negative cycles are not rejected. A negative value on the diagonal marks
// a node on one; the solver logs a warning and returns the matrix as is.
//
// Complexity:
//
//	Time  O(V³ + E)
//	Space O(V²) dense, O(reached pairs) sparse
//
// Errors:
//
//	graph.ErrNilGraph - g is nil.
package floydwarshall
