// SPDX-License-Identifier: MIT
package floydwarshall

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/matrix"
	"github.com/katalvlaran/lvsearch/shortest"
)

// Solve returns the all-pairs distance table of g.
func Solve[N comparable, W graph.Weight](g *graph.Graph[N, W], opts ...shortest.Option) (*shortest.Solution[N, W], error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	cfg := shortest.NewOptions(opts...)

	nodes := g.BuildNodeMap()
	sentinel := g.DefaultValue()
	sol := shortest.NewAllPairs(nodes, sentinel, cfg)
	m := sol.Matrix()

	initDistances(g, nodes, m, sentinel)
	updates := closure(m, nodes.Len(), sentinel)

	cfg.Logger.Debug("floydwarshall done",
		zap.Int("nodes", nodes.Len()),
		zap.Int("arcs", g.EdgeCount()),
		zap.Int("updates", updates),
	)
	for i := 0; i < nodes.Len(); i++ {
		if d := m.Get(i, i); d != sentinel && d < 0 {
			cfg.Logger.Warn("floydwarshall negative cycle",
				zap.Any("node", nodes.Node(i)),
				zap.Any("distance", d),
			)
		}
	}

	return sol, nil
}

// initDistances writes the cheapest direct arc for every connected pair.
func initDistances[N comparable, W graph.Weight](g *graph.Graph[N, W], nodes *graph.NodeMap[N], m matrix.Matrix[W], sentinel W) {
	for i := 0; i < nodes.Len(); i++ {
		arcs, _ := g.Neighbors(nodes.Node(i)) // every mapped node exists in g
		for _, e := range arcs {
			j, _ := nodes.Index(e.To)
			if cur := m.Get(i, j); cur == sentinel || e.Weight < cur {
				m.Set(i, j, e.Weight)
			}
		}
	}
}

// closure runs the k → i → j triple loop in place and returns the number of
// improved cells.
func closure[W graph.Weight](m matrix.Matrix[W], n int, sentinel W) int {
	var (
		k, i, j       int
		dik, dkj, dij W
		cand          W
		updates       int
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			dik = m.Get(i, k)
			if dik == sentinel {
				continue
			}
			for j = 0; j < n; j++ {
				dkj = m.Get(k, j)
				if dkj == sentinel {
					continue
				}
				cand = dik + dkj
				dij = m.Get(i, j)
				if dij != sentinel && cand >= dij {
					continue
				}
				m.Set(i, j, cand)
				updates++
			}
		}
	}

	return updates
}
