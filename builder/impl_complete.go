// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n. Undirected graphs get one edge per pair i<j;
// directed graphs get both arcs i→j and j→i, emitted as ordered pairs.
func Complete[W graph.Weight](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addNodes(g, n)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				g.AddEdge(i, j, weight[W](cfg))
			}
		}

		return nil
	}
}
