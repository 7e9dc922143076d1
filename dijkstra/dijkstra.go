// SPDX-License-Identifier: MIT
package dijkstra

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/matrix"
	"github.com/katalvlaran/lvsearch/shortest"
)

// Solve returns the distances from start to every node of g.
// Unreached nodes keep the graph sentinel.
func Solve[N comparable, W graph.Weight](g *graph.Graph[N, W], start N, opts ...shortest.Option) (*shortest.Solution[N, W], error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("dijkstra: start %v: %w", start, graph.ErrUnknownNode)
	}
	cfg := shortest.NewOptions(opts...)

	nodes := g.BuildNodeMap()
	sol := shortest.NewSingleSource(nodes, start, g.DefaultValue(), cfg)
	r := newRunner(g, nodes, sol.Matrix())
	s, _ := nodes.Index(start)
	r.run(s, 0)

	cfg.Logger.Debug("dijkstra single-source done",
		zap.Int("nodes", nodes.Len()),
		zap.Int("settled", r.settled),
		zap.Int("pushes", r.pushes),
	)

	return sol, nil
}

// SolveAllPairs runs the single-source search from every node of g and
// returns the square distance matrix. distance(u, u) is always 0.
func SolveAllPairs[N comparable, W graph.Weight](g *graph.Graph[N, W], opts ...shortest.Option) (*shortest.Solution[N, W], error) {
	if g == nil {
		return nil, graph.ErrNilGraph
	}
	cfg := shortest.NewOptions(opts...)

	nodes := g.BuildNodeMap()
	sol := shortest.NewAllPairs(nodes, g.DefaultValue(), cfg)
	r := newRunner(g, nodes, sol.Matrix())
	for i := 0; i < nodes.Len(); i++ {
		r.run(i, i)
	}

	cfg.Logger.Debug("dijkstra all-pairs done",
		zap.Int("nodes", nodes.Len()),
		zap.Int("settled", r.settled),
		zap.Int("pushes", r.pushes),
	)

	return sol, nil
}

// runner holds the state reused across single-source runs.
type runner[N comparable, W graph.Weight] struct {
	g        *graph.Graph[N, W]
	nodes    *graph.NodeMap[N]
	dist     matrix.Matrix[W]
	sentinel W
	visited  []bool
	pq       nodePQ[W]

	settled int // nodes popped and expanded, all runs
	pushes  int // heap pushes, all runs
}

func newRunner[N comparable, W graph.Weight](g *graph.Graph[N, W], nodes *graph.NodeMap[N], dist matrix.Matrix[W]) *runner[N, W] {
	return &runner[N, W]{
		g:        g,
		nodes:    nodes,
		dist:     dist,
		sentinel: g.DefaultValue(),
		visited:  make([]bool, nodes.Len()),
		pq:       make(nodePQ[W], 0, nodes.Len()),
	}
}

// run settles every node reachable from source, writing distances into the
// given matrix row.
func (r *runner[N, W]) run(source, row int) {
	for i := range r.visited {
		r.visited[i] = false
	}
	r.pq = r.pq[:0]

	r.dist.Set(row, source, 0)
	heap.Push(&r.pq, nodeItem[W]{idx: source, dist: 0})
	r.pushes++

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[W])
		u := item.idx
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		r.settled++
		r.relax(row, u, item.dist)
	}
}

// relax tries to improve every neighbor of the settled node u.
func (r *runner[N, W]) relax(row, u int, du W) {
	arcs, _ := r.g.Neighbors(r.nodes.Node(u)) // every mapped node exists in g
	for _, e := range arcs {
		v, _ := r.nodes.Index(e.To)
		if r.visited[v] {
			continue
		}
		cand := du + e.Weight
		if dv := r.dist.Get(row, v); dv != r.sentinel && cand >= dv {
			continue
		}
		r.dist.Set(row, v, cand)
		heap.Push(&r.pq, nodeItem[W]{idx: v, dist: cand})
		r.pushes++
	}
}
