// SPDX-License-Identifier: MIT
package graph

import "fmt"

// Graph is a neighbor-list graph over nodes of type N with weights of type W.
//
// The zero value is not usable; construct with New, NewUndirected or NewDirected.
type Graph[N comparable, W Weight] struct {
	directed bool
	sentinel W

	order []N                // node insertion order
	adj   map[N][]Edge[N, W] // outgoing arcs per node, in insertion order
	arcs  int                // stored arcs (undirected edges count twice)
}

// New creates an empty graph with the given options.
func New[N comparable, W Weight](opts Options[W]) *Graph[N, W] {
	return &Graph[N, W]{
		directed: opts.Directed,
		sentinel: opts.Sentinel,
		adj:      make(map[N][]Edge[N, W]),
	}
}

// NewUndirected creates an empty undirected graph with the Infinity sentinel.
func NewUndirected[N comparable, W Weight]() *Graph[N, W] {
	return New[N](DefaultOptions[W]())
}

// NewDirected creates an empty directed graph with the Infinity sentinel.
func NewDirected[N comparable, W Weight]() *Graph[N, W] {
	opts := DefaultOptions[W]()
	opts.Directed = true

	return New[N](opts)
}

// AddNode registers n with no arcs. Adding an existing node is a no-op.
func (g *Graph[N, W]) AddNode(n N) {
	if _, ok := g.adj[n]; ok {
		return
	}
	g.adj[n] = nil
	g.order = append(g.order, n)
}

// AddEdge appends the arc from→to with weight w, creating missing endpoints
// (from first). On an undirected graph the reverse arc to→from is appended too,
// so a self-loop on an undirected graph is stored twice. Parallel edges are
// never merged.
func (g *Graph[N, W]) AddEdge(from, to N, w W) {
	g.AddNode(from)
	g.AddNode(to)

	g.adj[from] = append(g.adj[from], Edge[N, W]{To: to, Weight: w})
	g.arcs++
	if !g.directed {
		g.adj[to] = append(g.adj[to], Edge[N, W]{To: from, Weight: w})
		g.arcs++
	}
}

// Neighbors returns a copy of the outgoing arcs of n in insertion order.
func (g *Graph[N, W]) Neighbors(n N) ([]Edge[N, W], error) {
	arcs, ok := g.adj[n]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", n, ErrUnknownNode)
	}
	out := make([]Edge[N, W], len(arcs))
	copy(out, arcs)

	return out, nil
}

// HasNode reports whether n was added explicitly or as an edge endpoint.
func (g *Graph[N, W]) HasNode(n N) bool {
	_, ok := g.adj[n]

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph[N, W]) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of stored arcs. Each undirected edge counts twice.
func (g *Graph[N, W]) EdgeCount() int { return g.arcs }

// Nodes returns a copy of the nodes in insertion order.
func (g *Graph[N, W]) Nodes() []N {
	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Directed reports whether edges are stored one-way.
func (g *Graph[N, W]) Directed() bool { return g.directed }

// DefaultValue returns the sentinel solvers use for unreached cells.
func (g *Graph[N, W]) DefaultValue() W { return g.sentinel }

// BuildNodeMap returns a fresh node map over the current nodes, indexed in
// insertion order.
func (g *Graph[N, W]) BuildNodeMap() *NodeMap[N] {
	return NewNodeMap(g.order)
}
