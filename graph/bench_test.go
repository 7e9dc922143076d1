// SPDX-License-Identifier: MIT
package graph_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/graph"
)

func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	g := graph.NewUndirected[int, float64]()
	for i := 0; i < b.N; i++ {
		g.AddEdge(i%1024, (i*7+3)%1024, 1)
	}
}

func BenchmarkBuildNodeMap(b *testing.B) {
	g := graph.NewDirected[int, int]()
	for i := 0; i < 4096; i++ {
		g.AddEdge(i, (i+1)%4096, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.BuildNodeMap()
	}
}
