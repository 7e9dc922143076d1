// SPDX-License-Identifier: MIT
package graph

// NodeMap is a bijection between nodes and dense indices [0, Len()).
// It is immutable after construction.
type NodeMap[N comparable] struct {
	index map[N]int
	nodes []N
}

// NewNodeMap indexes nodes in the given order. Duplicates keep their first index.
func NewNodeMap[N comparable](nodes []N) *NodeMap[N] {
	m := &NodeMap[N]{
		index: make(map[N]int, len(nodes)),
		nodes: make([]N, 0, len(nodes)),
	}
	for _, n := range nodes {
		if _, dup := m.index[n]; dup {
			continue
		}
		m.index[n] = len(m.nodes)
		m.nodes = append(m.nodes, n)
	}

	return m
}

// Index returns the dense index of n.
func (m *NodeMap[N]) Index(n N) (int, bool) {
	i, ok := m.index[n]

	return i, ok
}

// Node returns the node at index i. It panics if i is out of range.
func (m *NodeMap[N]) Node(i int) N { return m.nodes[i] }

// Len returns the number of indexed nodes.
func (m *NodeMap[N]) Len() int { return len(m.nodes) }

// Nodes returns a copy of the nodes ordered by index.
func (m *NodeMap[N]) Nodes() []N {
	out := make([]N, len(m.nodes))
	copy(out, m.nodes)

	return out
}
