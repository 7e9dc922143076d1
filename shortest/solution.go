// SPDX-License-Identifier: MIT
package shortest

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/graph"
	"github.com/katalvlaran/lvsearch/matrix"
)

// Mode tells how a Solution's matrix is indexed.
type Mode int

const (
	// SingleSource solutions have one row: distances from Source().
	SingleSource Mode = iota
	// AllPairs solutions are square: row = origin, column = destination.
	AllPairs
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case SingleSource:
		return "single-source"
	case AllPairs:
		return "all-pairs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Solution is the output of a shortest-path solve.
// Every cell starts at the sentinel; solvers overwrite the cells they reach.
type Solution[N comparable, W graph.Weight] struct {
	mode     Mode
	source   N
	sentinel W
	nodes    *graph.NodeMap[N]
	dist     matrix.Matrix[W]
}

// NewSingleSource allocates a 1×n solution for distances from source.
// The caller is responsible for source belonging to nodes.
func NewSingleSource[N comparable, W graph.Weight](nodes *graph.NodeMap[N], source N, sentinel W, opts Options) *Solution[N, W] {
	return &Solution[N, W]{
		mode:     SingleSource,
		source:   source,
		sentinel: sentinel,
		nodes:    nodes,
		dist:     matrix.New(opts.Storage, opts.Order, 1, nodes.Len(), sentinel),
	}
}

// NewAllPairs allocates an n×n solution.
func NewAllPairs[N comparable, W graph.Weight](nodes *graph.NodeMap[N], sentinel W, opts Options) *Solution[N, W] {
	n := nodes.Len()

	return &Solution[N, W]{
		mode:     AllPairs,
		sentinel: sentinel,
		nodes:    nodes,
		dist:     matrix.New(opts.Storage, opts.Order, n, n, sentinel),
	}
}

// Distance returns the distance from the source to node.
// Unreached nodes yield the sentinel.
func (s *Solution[N, W]) Distance(node N) (W, error) {
	if s.mode != SingleSource {
		return s.sentinel, fmt.Errorf("Distance on %v solution: %w", s.mode, ErrModeMismatch)
	}
	j, ok := s.nodes.Index(node)
	if !ok {
		return s.sentinel, fmt.Errorf("Distance(%v): %w", node, graph.ErrUnknownNode)
	}

	return s.dist.Get(0, j), nil
}

// DistanceBetween returns the distance from → to in an all-pairs solution.
func (s *Solution[N, W]) DistanceBetween(from, to N) (W, error) {
	if s.mode != AllPairs {
		return s.sentinel, fmt.Errorf("DistanceBetween on %v solution: %w", s.mode, ErrModeMismatch)
	}
	i, ok := s.nodes.Index(from)
	if !ok {
		return s.sentinel, fmt.Errorf("DistanceBetween(%v, _): %w", from, graph.ErrUnknownNode)
	}
	j, ok := s.nodes.Index(to)
	if !ok {
		return s.sentinel, fmt.Errorf("DistanceBetween(_, %v): %w", to, graph.ErrUnknownNode)
	}

	return s.dist.Get(i, j), nil
}

// Reachable reports whether the solver reached node from the source.
// Unknown nodes and mode mismatches report false.
func (s *Solution[N, W]) Reachable(node N) bool {
	d, err := s.Distance(node)

	return err == nil && d != s.sentinel
}

// ReachableBetween reports whether to was reached from from.
func (s *Solution[N, W]) ReachableBetween(from, to N) bool {
	d, err := s.DistanceBetween(from, to)

	return err == nil && d != s.sentinel
}

// Distances returns every reached node of a single-source solution with its
// distance. It returns nil for all-pairs solutions.
func (s *Solution[N, W]) Distances() map[N]W {
	if s.mode != SingleSource {
		return nil
	}
	out := make(map[N]W, s.nodes.Len())
	for j := 0; j < s.nodes.Len(); j++ {
		if d := s.dist.Get(0, j); d != s.sentinel {
			out[s.nodes.Node(j)] = d
		}
	}

	return out
}

// Source returns the origin of a single-source solution (zero value otherwise).
func (s *Solution[N, W]) Source() N { return s.source }

// Mode returns how the matrix is indexed.
func (s *Solution[N, W]) Mode() Mode { return s.mode }

// Nodes returns the node map shared by rows and columns.
func (s *Solution[N, W]) Nodes() *graph.NodeMap[N] { return s.nodes }

// Matrix returns the underlying distance matrix. Solvers write through it;
// callers should treat it as read-only.
func (s *Solution[N, W]) Matrix() matrix.Matrix[W] { return s.dist }

// Sentinel returns the "unreached" marker.
func (s *Solution[N, W]) Sentinel() W { return s.sentinel }
