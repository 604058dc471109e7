// Package core: mutating graph operations.
//
// This file implements the two ways a sequence enters the graph:
// AddSequence (a fresh chain, used for the very first sequence) and
// AddAlignment (threading a sequence along an alignment trace). Both are
// append-only: node ids already assigned are never renumbered and nothing
// is ever removed, so every insertion preserves the DAG invariant — edges
// always point from an earlier-contributed node to a later one within each
// threaded sequence.

package core

import (
	"fmt"
	"sort"
)

// AddSequence inserts seq as a simple chain of new nodes and returns the id
// of the first node in the chain. This seeds an empty graph with its first
// sequence; AddAlignment uses the same chaining internally for the unaligned
// head and tail of a query.
//
// Returns ErrEmptySequence if seq is empty.
// Complexity: O(len(seq)).
func (g *Graph) AddSequence(seq []byte) (int, error) {
	if len(seq) == 0 {
		return None, ErrEmptySequence
	}

	seqID := g.seqCount
	first, prev := None, None
	for _, sym := range seq {
		id := g.addNode(sym)
		if first == None {
			first = id
		}
		prev = g.link(prev, id, seqID)
	}
	g.seqCount++

	return first, nil
}

// AddAlignment threads seq into the graph along the alignment trace a.
//
// Pair semantics:
//   - both sides present, symbols equal → the existing node is reused;
//   - both sides present, symbols differ → an aligned sibling holding the
//     query symbol is reused if the column already has one, otherwise a new
//     node is created and registered in the column (a substitution branch);
//   - query side only → a new node is created (an insertion branch);
//   - graph side only → nothing is added; the next contributed node links
//     through, realizing a deletion.
//
// Query positions before the first and after the last aligned position are
// chain-inserted and linked, so the whole sequence is always threaded.
// Every consecutive pair of contributed nodes gets its edge created if
// absent, its Support incremented and the sequence index appended to Labels.
//
// An empty trace with a non-empty seq threads seq as a fresh chain (the
// local-mode "nothing aligned" case).
//
// Returns ErrEmptySequence for an empty seq, ErrUnknownNode or
// ErrInvalidTrace for a malformed trace (contract violations, see package doc).
// Complexity: O(len(a) + len(seq)).
func (g *Graph) AddAlignment(a Alignment, seq []byte) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	if err := g.checkTrace(a, len(seq)); err != nil {
		return err
	}

	// Locate the aligned query span [begin, end]; empty span if the trace
	// consumed no query positions.
	begin, end := len(seq), len(seq)-1
	for _, p := range a {
		if p.Query != None {
			if begin == len(seq) {
				begin = p.Query
			}
			end = p.Query
		}
	}

	seqID := g.seqCount
	prev := None

	// Unaligned head: chain-insert seq[:begin].
	for qi := 0; qi < begin; qi++ {
		prev = g.link(prev, g.addNode(seq[qi]), seqID)
	}

	// Aligned body.
	for _, p := range a {
		if p.Query == None {
			continue // deletion: link through
		}
		sym := seq[p.Query]
		var id int
		switch {
		case p.Node == None:
			id = g.addNode(sym) // insertion
		case g.nodes[p.Node].Symbol == sym:
			id = p.Node // merge
		default:
			id = g.columnNode(p.Node, sym) // substitution branch
		}
		prev = g.link(prev, id, seqID)
	}

	// Unaligned tail: chain-insert seq[end+1:].
	for qi := end + 1; qi < len(seq); qi++ {
		prev = g.link(prev, g.addNode(seq[qi]), seqID)
	}

	g.seqCount++

	return nil
}

// checkTrace validates an alignment trace against the current arena and a
// query of length m: node ids must exist, query indices must form one
// contiguous ascending run within [0, m), and no pair may be empty on both
// sides. These are contract violations when they fail, never user errors.
func (g *Graph) checkTrace(a Alignment, m int) error {
	prevQ := None
	for i, p := range a {
		if p.Node == None && p.Query == None {
			return fmt.Errorf("%w: pair %d has neither side", ErrInvalidTrace, i)
		}
		if p.Node != None && (p.Node < 0 || p.Node >= len(g.nodes)) {
			return fmt.Errorf("%w: id %d (arena size %d)", ErrUnknownNode, p.Node, len(g.nodes))
		}
		if p.Query != None {
			if p.Query < 0 || p.Query >= m {
				return fmt.Errorf("%w: query index %d out of range [0,%d)", ErrInvalidTrace, p.Query, m)
			}
			if prevQ != None && p.Query != prevQ+1 {
				return fmt.Errorf("%w: query index %d after %d", ErrInvalidTrace, p.Query, prevQ)
			}
			prevQ = p.Query
		}
	}

	return nil
}

// addNode appends a fresh node holding sym and returns its id.
func (g *Graph) addNode(sym byte) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, &Node{ID: id, Symbol: sym})

	return id
}

// link records that seqID traversed from→to and returns to.
// A from of None (start of a threaded sequence) records nothing.
func (g *Graph) link(from, to, seqID int) int {
	if from == None {
		return to
	}
	key := [2]int{from, to}
	e, ok := g.edges[key]
	if !ok {
		e = &Edge{From: from, To: to}
		g.edges[key] = e
		g.nodes[from].out = insertSorted(g.nodes[from].out, to)
		g.nodes[to].in = insertSorted(g.nodes[to].in, from)
	}
	e.Support++
	e.Labels = append(e.Labels, seqID)

	return to
}

// columnNode resolves a substitution at the column of node id: if any node
// aligned to id already holds sym it is reused, otherwise a new node is
// created and registered as aligned to every node in the column. Reuse is
// what lets repeated disagreements accumulate support on one branch instead
// of forking a new branch per sequence.
func (g *Graph) columnNode(id int, sym byte) int {
	n := g.nodes[id]
	for _, aid := range n.aligned {
		if g.nodes[aid].Symbol == sym {
			return aid
		}
	}

	// The column consists of id and everything already aligned to it.
	column := make([]int, 0, len(n.aligned)+1)
	column = append(column, n.aligned...)
	column = insertSorted(column, id)

	fresh := g.addNode(sym)
	for _, cid := range column {
		// fresh has the largest id so far, so append keeps the slices sorted.
		g.nodes[cid].aligned = append(g.nodes[cid].aligned, fresh)
	}
	g.nodes[fresh].aligned = column

	return fresh
}

// insertSorted inserts v into ascending slice s, keeping it sorted and
// duplicate-free.
func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}
