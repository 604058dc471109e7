// Package core: heaviest-path consensus extraction.
//
// The consensus is the path through the DAG maximizing the sum of traversed
// edge Support counts. It is computed as a longest-weighted-path dynamic
// program over the topological order and reconstructed backward from the
// best terminal node. Every tie breaks toward the smallest node id, so the
// result is deterministic for a given graph.

package core

// Consensus extracts the consensus sequence from the current graph state.
//
// Algorithm:
//  1. Topological order (Kahn, ties by ascending id).
//  2. For each node in order, cumulative weight = max over incoming edges of
//     predecessor weight + edge Support; ties prefer the smallest
//     predecessor id. Nodes without predecessors start at weight 0.
//  3. The path starts at the terminal node (no successors) with the largest
//     cumulative weight, ties broken by smallest id, and is reconstructed
//     backward via the stored best predecessors, then reversed.
//
// Pure read operation: the graph is never mutated. An empty graph yields an
// empty consensus.
//
// Returns ErrCyclicGraph if the DAG invariant is broken (contract violation).
// Complexity: O((V + E) log V) time, O(V) space.
func (g *Graph) Consensus() ([]byte, error) {
	if len(g.nodes) == 0 {
		return []byte{}, nil
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	weight := make([]int64, len(g.nodes))
	pred := make([]int, len(g.nodes))
	for i := range pred {
		pred[i] = None
	}

	// Longest weighted path. Predecessor lists are ascending, so keeping the
	// first maximum seen prefers the smallest predecessor id on ties.
	for _, id := range order {
		for _, p := range g.nodes[id].in {
			w := weight[p] + int64(g.edges[[2]int{p, id}].Support)
			if pred[id] == None || w > weight[id] {
				weight[id] = w
				pred[id] = p
			}
		}
	}

	// Best terminal: ascending id scan with a strict improvement test keeps
	// the smallest id on ties.
	start := None
	for _, n := range g.nodes {
		if len(n.out) != 0 {
			continue
		}
		if start == None || weight[n.ID] > weight[start] {
			start = n.ID
		}
	}

	// Backward reconstruction, then reverse.
	var path []int
	for id := start; id != None; id = pred[id] {
		path = append(path, id)
	}
	cns := make([]byte, len(path))
	for i, id := range path {
		cns[len(path)-1-i] = g.nodes[id].Symbol
	}

	return cns, nil
}
