// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-neighborhood grid. Cell (r, c) is node r*cols+c;
// each cell links to its right, then its lower neighbor, in row-major order.
func Grid[W graph.Weight](rows, cols int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		addNodes(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					g.AddEdge(u, u+1, weight[W](cfg))
				}
				if r+1 < rows {
					g.AddEdge(u, u+cols, weight[W](cfg))
				}
			}
		}

		return nil
	}
}
