// Package core: deterministic topological ordering.
//
// Kahn's algorithm with the ready frontier kept in a min-heap on node id:
// among all nodes whose predecessors have been emitted, the smallest id is
// emitted first. This makes the order — and everything derived from it, DP
// ranks and consensus tie-breaks included — reproducible run to run.

package core

import "container/heap"

// idHeap is a min-heap of node ids for the Kahn frontier.
type idHeap []int

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// TopologicalOrder returns all node ids in topological order, ties broken by
// ascending node id.
//
// Returns ErrCyclicGraph if not every node can be ordered — a contract
// violation, since the append-only insertion rules cannot create a cycle.
// Complexity: O((V + E) log V).
func (g *Graph) TopologicalOrder() ([]int, error) {
	indeg := make([]int, len(g.nodes))
	for _, n := range g.nodes {
		indeg[n.ID] = len(n.in)
	}

	frontier := &idHeap{}
	for _, n := range g.nodes {
		if indeg[n.ID] == 0 {
			heap.Push(frontier, n.ID)
		}
	}

	order := make([]int, 0, len(g.nodes))
	for frontier.Len() > 0 {
		id := heap.Pop(frontier).(int)
		order = append(order, id)
		for _, s := range g.nodes[id].out {
			indeg[s]--
			if indeg[s] == 0 {
				heap.Push(frontier, s)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, ErrCyclicGraph
	}

	return order, nil
}

// Validate checks the DAG invariant, returning ErrCyclicGraph if the graph
// has developed a cycle and nil otherwise.
// Complexity: O((V + E) log V).
func (g *Graph) Validate() error {
	_, err := g.TopologicalOrder()

	return err
}
