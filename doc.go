// SPDX-License-Identifier: MIT

// Package lvsearch is a small library of classical search algorithms over
// generic graphs and item lists, writing their results into pluggable matrix
// storage.
//
// What is inside:
//
//	matrix/         Dense (flat slice) and Sparse (hash map) matrices behind one
//	                interface, with exact dense<->sparse conversion.
//	graph/          Neighbor-list graph over any comparable node type and any
//	                numeric weight, plus the node map used to index results.
//	shortest/       Solution container and the options every solver accepts
//	                (result storage, dense layout, zap logger).
//	bellmanford/    Single-source shortest paths with negative-cycle detection.
//	dijkstra/       Single-source and all-pairs shortest paths, non-negative weights.
//	floydwarshall/  All-pairs shortest paths by dynamic programming.
//	knapsack/       0/1 knapsack with pluggable item accessors.
//	builder/        Deterministic graph fixtures (paths, cycles, grids, random).
//
// Quick start:
//
//	g := graph.NewUndirected[string, float64]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//
//	sol, err := dijkstra.Solve(g, "A", shortest.WithStorage(matrix.SparseStorage))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := sol.Distance("C") // 3
//
// Every solver is a pure function of its inputs: it reads the graph, builds a
// fresh Solution, and hands ownership to the caller. Nothing is locked
// internally; share a graph between goroutines only for reading.
package lvsearch
