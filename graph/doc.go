// SPDX-License-Identifier: MIT

// Package graph provides the neighbor-list graph consumed by the shortest-path
// solvers, together with the node map that assigns each node a dense index.
//
// A Graph[N, W] stores, for every node, the ordered list of outgoing arcs
// (to, weight). Nodes are any comparable type; weights are any integer or
// floating-point kind (see Weight).
//
// Directedness:
//   - Undirected graphs store each edge twice, (from→to) and (to→from), at
//     insertion time. Solvers never special-case direction.
//   - Directed graphs store only (from→to).
//
// Sentinel:
//
//	Every graph carries a sentinel weight that solvers write into their result
//	matrices for "unreached". The default is Infinity[W](): +Inf for float
//	kinds, the largest representable value for integer kinds. The sentinel is
//	compared by equality only, so any value the caller never uses as a real
//	distance works.
//
// Node map:
//
//	BuildNodeMap assigns indices 0..n-1 in node insertion order. The order is
//	stable for an unmodified graph, which makes solver output reproducible.
//
// Parallel edges are kept as separate arcs. Self-loops are legal. The package
// has no removal operations and no internal locking: build a graph, then hand
// it to solvers, which only read it.
//
// Complexity:
//
//	AddNode, AddEdge, HasNode   O(1) amortized
//	Neighbors                   O(1) (returns the internal slice)
//	Nodes, BuildNodeMap         O(V)
package graph
