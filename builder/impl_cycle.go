// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds C_n: the path 0..n-1 closed by the edge (n-1)-0.
func Cycle[W graph.Weight](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addNodes(g, n)
		for i := 0; i < n; i++ {
			g.AddEdge(i, (i+1)%n, weight[W](cfg))
		}

		return nil
	}
}
