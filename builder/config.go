// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvsearch/graph"
)

// config aggregates the knobs constructors read. It is passed by value.
type config struct {
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
}

// newConfig applies opts in order over the defaults (no RNG, constant weight 1).
func newConfig(opts ...Option) config {
	cfg := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight and converts it to W.
func weight[W graph.Weight](cfg config) W {
	return W(cfg.weightFn(cfg.rng))
}
