// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph fixtures for the
// shortest-path solvers: paths, cycles, complete graphs, grids and
// Erdős–Rényi-like random graphs.
//
// Build creates a graph.Graph[int, W] from graph options, resolves the
// builder options once, and runs every Constructor in order:
//
//	g, err := builder.Build(graph.DefaultOptions[float64](),
//	    []builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Nodes are the ints 0..n-1 (Grid uses r*cols+c). Constructors composed in
// one Build share that ID space, so a second constructor overlays the first.
//
// Weights come from the configured WeightFn (default: constant 1) and are
// converted to W, which truncates fractions for integer weights.
//
// Determinism: the same options, seed and constructor order always yield the
// same graph, arc for arc.
//
// Errors:
//
//	ErrTooFewVertices     - size parameter below the constructor minimum.
//	ErrInvalidProbability - RandomSparse p outside [0, 1].
//	ErrNeedRandSource     - RandomSparse with 0 < p < 1 and no WithSeed/WithRand.
//	ErrConstructFailed    - nil constructor passed to Build.
package builder
