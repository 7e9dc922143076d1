// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: edges 0-1, 1-2, ..., (n-2)-(n-1) in that order.
func Path[W graph.Weight](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(g, n)
		for i := 1; i < n; i++ {
			g.AddEdge(i-1, i, weight[W](cfg))
		}

		return nil
	}
}
