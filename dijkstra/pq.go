// SPDX-License-Identifier: MIT
package dijkstra

import "github.com/katalvlaran/lvsearch/graph"

// nodeItem is a heap entry: a node index and its tentative distance.
type nodeItem[W graph.Weight] struct {
	idx  int
	dist W
}

// nodePQ is a min-heap of nodeItem ordered by dist. Duplicate entries for one
// node are allowed (lazy decrease-key); the runner skips settled nodes.
type nodePQ[W graph.Weight] []nodeItem[W]

// Len returns the number of items in the heap.
func (pq nodePQ[W]) Len() int { return len(pq) }

// Less orders by ascending distance.
func (pq nodePQ[W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem[W].
func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(nodeItem[W])) }

// Pop is called by heap.Pop.
func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
