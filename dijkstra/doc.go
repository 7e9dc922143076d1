// SPDX-License-Identifier: MIT

// Package dijkstra computes shortest paths on graphs with non-negative edge
// weights, from one source (Solve) or from every node (SolveAllPairs).
//
// Overview:
//
//   - A min-heap keyed by tentative distance always expands the closest
//     unsettled node. Improvements push a fresh heap entry instead of
//     decreasing a key; stale entries are skipped when popped.
//   - Results land in a shortest.Solution whose storage (dense or sparse)
//     and logger come from shortest options.
//   - SolveAllPairs runs the single-source loop once per node, writing row
//     index(u). Each run starts with distance(u, u) = 0, so the diagonal of an
//     all-pairs solution is always 0.
//
// Precondition:
//
//	Edge weights must be non-negative. This is not checked: with a negative
//	arc the result is unspecified. Use bellmanford for such graphs.
//
// Complexity:
//
//   - Solve:         Time O((V + E) log V), Space O(V + E)
//   - SolveAllPairs: Time O(V (V + E) log V), Space O(V²) dense, O(reached) sparse
//
// Errors:
//
//	graph.ErrNilGraph    - g is nil.
//	graph.ErrUnknownNode - the source is not in g.
//
// Example:
//
//	sol, err := dijkstra.Solve(g, "A", shortest.WithStorage(matrix.SparseStorage))
//	if err != nil {
//	    return err
//	}
//	d, _ := sol.Distance("C")
package dijkstra
