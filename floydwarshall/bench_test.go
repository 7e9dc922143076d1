// SPDX-License-Identifier: MIT
package floydwarshall_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/floydwarshall"
	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/matrix"
	"github.com/katalvlaran/lvsearch/shortest"
)

// BenchmarkSolveComplete runs the worst case for the closure: every cell of
// the table is reached before the first pass.
func BenchmarkSolveComplete(b *testing.B) {
	for _, n := range []int{16, 64} {
		g, err := builder.Build(graph.DefaultOptions[float64](),
			[]builder.Option{builder.WithSeed(int64(n)), builder.WithUniformWeight(1, 50)},
			builder.Complete[float64](n),
		)
		if err != nil {
			b.Fatal(err)
		}
		for _, st := range []matrix.Storage{matrix.DenseStorage, matrix.SparseStorage} {
			b.Run(fmt.Sprintf("%v/n=%d", st, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := floydwarshall.Solve(g, shortest.WithStorage(st)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
