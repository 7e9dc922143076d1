// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples each admissible edge independently with probability p.
//
// Undirected graphs try unordered pairs i<j; directed graphs try ordered
// pairs i≠j. Trials run with i ascending, then j ascending, and never emit
// self-loops or parallel edges. A weight is drawn only for kept edges.
//
// An RNG is required when 0 < p < 1; p=0 and p=1 are deterministic.
func RandomSparse[W graph.Weight](n int, p float64) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addNodes(g, n)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep(cfg, p) {
					continue
				}
				g.AddEdge(i, j, weight[W](cfg))
			}
		}

		return nil
	}
}

// keep runs one Bernoulli trial. Float64 is in [0,1), so p=1 always keeps.
func keep(cfg config, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
