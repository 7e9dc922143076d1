// SPDX-License-Identifier: MIT
package bellmanford

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/shortest"
)

// ErrNegativeWeightCycle indicates a negative-weight cycle reachable from the source.
var ErrNegativeWeightCycle = errors.New("bellmanford: negative weight cycle detected")

// Solve returns the distances from start to every node of g.
//
// The graph is only read. Storage and logging follow opts
// (see shortest.WithStorage, shortest.WithLogger).
func Solve[N comparable, W graph.Weight](g *graph.Graph[N, W], start N, opts ...shortest.Option) (*shortest.Solution[N, W], error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("bellmanford: start %v: %w", start, graph.ErrUnknownNode)
	}
	cfg := shortest.NewOptions(opts...)

	nodes := g.BuildNodeMap()
	sol := shortest.NewSingleSource(nodes, start, g.DefaultValue(), cfg)
	r := &runner[N, W]{
		adj:      make([][]graph.Edge[N, W], nodes.Len()),
		nodes:    nodes,
		sol:      sol,
		sentinel: g.DefaultValue(),
	}
	for i := range r.adj {
		r.adj[i], _ = g.Neighbors(nodes.Node(i)) // every mapped node exists in g
	}
	s, _ := nodes.Index(start)
	sol.Matrix().Set(0, s, 0)

	n := nodes.Len()
	passes := 0
	for passes < n-1 {
		passes++
		if !r.pass(true) {
			break
		}
	}
	cfg.Logger.Debug("bellmanford relaxation done",
		zap.Int("nodes", n),
		zap.Int("arcs", g.EdgeCount()),
		zap.Int("passes", passes),
	)

	if r.pass(false) {
		cfg.Logger.Debug("bellmanford negative cycle", zap.Any("start", start))
		return nil, fmt.Errorf("from %v: %w", start, ErrNegativeWeightCycle)
	}

	return sol, nil
}

// runner holds the state of one solve.
type runner[N comparable, W graph.Weight] struct {
	adj      [][]graph.Edge[N, W] // outgoing arcs by node index
	nodes    *graph.NodeMap[N]
	sol      *shortest.Solution[N, W]
	sentinel W
}

// pass scans every arc once and reports whether any arc relaxes.
// With write=false it stops at the first relaxable arc without writing.
func (r *runner[N, W]) pass(write bool) bool {
	dist := r.sol.Matrix()
	changed := false
	for i := 0; i < r.nodes.Len(); i++ {
		du := dist.Get(0, i)
		if du == r.sentinel {
			continue
		}
		for _, e := range r.adj[i] {
			j, _ := r.nodes.Index(e.To)
			cand := du + e.Weight
			dv := dist.Get(0, j)
			if dv != r.sentinel && cand >= dv {
				continue
			}
			if !write {
				return true
			}
			dist.Set(0, j, cand)
			changed = true
			if j == i {
				du = cand // self-loop
			}
		}
	}

	return changed
}
