// SPDX-License-Identifier: MIT
package graph

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Weight is the set of numeric kinds usable as edge weights and distances.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Infinity returns the default "unreached" sentinel for W: +Inf for float
// kinds and the maximum representable value for integer kinds.
func Infinity[W Weight]() W {
	half := 0.5
	if W(half) != 0 {
		inf := math.Inf(1)
		return W(inf)
	}

	// Integer kind: grow an all-ones bit pattern until it stops increasing.
	// For signed kinds the step that sets the sign bit wraps negative.
	var x W
	for {
		next := x*2 + 1
		if next <= x {
			return x
		}
		x = next
	}
}

// Edge is one stored arc: the destination node and the arc weight.
type Edge[N comparable, W Weight] struct {
	To     N
	Weight W
}

// Options configures a Graph at construction.
type Options[W Weight] struct {
	// Directed stores each edge only in the direction it was added.
	Directed bool

	// Sentinel is the "unreached" marker solvers use for this graph.
	Sentinel W
}

// DefaultOptions returns an undirected configuration with the Infinity sentinel.
func DefaultOptions[W Weight]() Options[W] {
	return Options[W]{Directed: false, Sentinel: Infinity[W]()}
}
