// SPDX-License-Identifier: MIT
package floydwarshall_test

import (
	"math"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvsearch/graph"
)

// toGonum mirrors g into a gonum weighted graph. g must have no parallel
// edges and no self-loops; builder fixtures satisfy both.
func toGonum(g *graph.Graph[int, float64]) gonum.Graph {
	type setter interface {
		gonum.Graph
		AddNode(gonum.Node)
		SetWeightedEdge(gonum.WeightedEdge)
	}
	var out setter
	if g.Directed() {
		out = simple.NewWeightedDirectedGraph(0, math.Inf(1))
	} else {
		out = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	}
	for _, n := range g.Nodes() {
		out.AddNode(simple.Node(n))
	}
	for _, n := range g.Nodes() {
		arcs, _ := g.Neighbors(n)
		for _, e := range arcs {
			out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(n), T: simple.Node(e.To), W: e.Weight})
		}
	}

	return out
}
