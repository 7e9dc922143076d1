// SPDX-License-Identifier: MIT

// Package bellmanford computes single-source shortest paths with the
// Bellman-Ford algorithm, which tolerates negative edge weights and detects
// negative-weight cycles reachable from the source.
//
// Algorithm:
//
//  1. distance[start] = 0; every other cell holds the graph sentinel.
//  2. Up to n-1 passes: for every arc u→v (nodes visited in node-map order,
//     arcs in insertion order), if u is reached and distance[u]+w improves
//     distance[v], write it. A pass that changes nothing ends the loop early.
//  3. One more scan over every arc: any arc that still relaxes proves a
//     negative cycle reachable from start, and Solve returns
//     ErrNegativeWeightCycle instead of a solution.
//
// An unreached destination always counts as improvable, whatever numeric
// value the sentinel has.
//
// Undirected graphs store every edge in both directions, so one negative
// undirected edge is already a negative cycle (u→v→u).
//
// Complexity:
//
//	Time  O(V·E)
//	Space O(V) for the result row (dense) or O(reached) (sparse)
//
// Errors:
//
//	graph.ErrNilGraph       - g is nil.
//	graph.ErrUnknownNode    - start is not in g.
//	ErrNegativeWeightCycle  - a negative cycle is reachable from start.
package bellmanford
