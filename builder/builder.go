// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

// Constructor mutates g using the resolved configuration. Constructors
// validate their parameters up front and never panic.
type Constructor[W graph.Weight] func(g *graph.Graph[int, W], cfg config) error

// Build creates a graph with gopts, resolves bopts, and applies cons in order.
// The first constructor error is returned wrapped; the partial graph is dropped.
func Build[W graph.Weight](gopts graph.Options[W], bopts []Option, cons ...Constructor[W]) (*graph.Graph[int, W], error) {
	g := graph.New[int](gopts)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// addNodes registers 0..n-1 in ascending order.
func addNodes[W graph.Weight](g *graph.Graph[int, W], n int) {
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
}
