// Package core defines the partial-order alignment graph: the Node and Edge
// types, the append-only Graph arena, and the Alignment trace format that
// connects the graph to the alignment engine.
//
// The graph is a DAG accumulating every inserted sequence. Nodes hold one
// symbol each and are addressed by dense integer ids assigned monotonically
// and never renumbered. Edges record how many sequences traversed them
// (Support) and which ones (Labels). The graph only ever grows: AddSequence
// and AddAlignment append nodes and edges, nothing removes them.
//
// Errors (sentinel):
//
//	– ErrEmptySequence if an empty sequence is inserted.
//	– ErrUnknownNode   if an alignment trace references a node id outside the arena.
//	– ErrInvalidTrace  if an alignment trace is malformed (bad or non-contiguous query indices).
//	– ErrCyclicGraph   if a cycle is detected during topological ordering.
//
// ErrUnknownNode, ErrInvalidTrace and ErrCyclicGraph are invariant guards:
// a correct alignment engine never produces a trace that triggers them, and
// the append-only insertion rules cannot create a cycle. Observing one of
// these errors indicates an implementation bug, not bad user input.
package core

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptySequence indicates that an empty sequence was passed to
	// AddSequence or AddAlignment.
	ErrEmptySequence = errors.New("core: sequence must be non-empty")

	// ErrUnknownNode indicates that an alignment trace referenced a node id
	// that does not exist in the graph. Contract violation, see package doc.
	ErrUnknownNode = errors.New("core: alignment references unknown node")

	// ErrInvalidTrace indicates a malformed alignment trace: a query index out
	// of range, a non-contiguous run of query indices, or a pair with neither
	// side present. Contract violation, see package doc.
	ErrInvalidTrace = errors.New("core: malformed alignment trace")

	// ErrCyclicGraph indicates that the graph is no longer acyclic.
	// Contract violation, see package doc.
	ErrCyclicGraph = errors.New("core: graph contains a cycle")
)

// None marks the absent side of an alignment Pair: a Pair with Node == None
// is an insertion (query symbol with no graph counterpart), a Pair with
// Query == None is a deletion (graph node skipped by the query).
const None = -1

// Pair is one column of an alignment trace: a graph node id (or None) matched
// against a query position (or None). At least one side is always present.
type Pair struct {
	// Node is the graph node id, or None for a gap on the graph side.
	Node int

	// Query is the 0-based query position, or None for a gap on the query side.
	Query int
}

// Alignment is an ordered alignment trace, produced by the alignment engine
// and consumed by Graph.AddAlignment. Query positions of its pairs form one
// contiguous ascending run; pairs with Query == None may appear anywhere.
type Alignment []Pair

// Node is a single symbol occurrence in the alignment graph.
//
// Adjacency (predecessors, successors, aligned siblings) is held in
// unexported ascending id slices; use the Graph accessors to read it.
type Node struct {
	// ID is the dense arena index of this node, assigned monotonically.
	ID int

	// Symbol is the byte this node contributes to any path through it.
	Symbol byte

	in      []int // predecessor node ids, ascending
	out     []int // successor node ids, ascending
	aligned []int // ids of nodes occupying the same alignment column, ascending
}

// Edge is a directed connection between two nodes.
type Edge struct {
	// From is the source node id.
	From int

	// To is the destination node id.
	To int

	// Support counts the inserted sequences that traversed this edge.
	Support int

	// Labels lists the originating sequence indices, one per traversal,
	// in insertion order.
	Labels []int
}

// Graph is the partial-order alignment graph: an arena of Nodes indexed by
// id, plus the edges between them.
//
// Graph is not safe for concurrent use. The intended model is one Graph per
// consensus run; independent runs share nothing and parallelize freely.
type Graph struct {
	nodes    []*Node          // arena; index == Node.ID
	edges    map[[2]int]*Edge // (from, to) → edge
	seqCount int              // number of sequences inserted so far
}

// NewGraph creates an empty alignment graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		edges: make(map[[2]int]*Edge),
	}
}

// NodeCount returns the number of nodes in the arena.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// SequenceCount returns the number of sequences inserted so far.
// Complexity: O(1).
func (g *Graph) SequenceCount() int { return g.seqCount }

// Symbol returns the symbol stored at node id.
// The id must be a valid arena index.
// Complexity: O(1).
func (g *Graph) Symbol(id int) byte { return g.nodes[id].Symbol }

// Predecessors returns the predecessor ids of node id in ascending order.
// The returned slice is owned by the graph; callers must not mutate it.
// Complexity: O(1).
func (g *Graph) Predecessors(id int) []int { return g.nodes[id].in }

// Successors returns the successor ids of node id in ascending order.
// The returned slice is owned by the graph; callers must not mutate it.
// Complexity: O(1).
func (g *Graph) Successors(id int) []int { return g.nodes[id].out }

// AlignedTo returns the ids of nodes occupying the same alignment column as
// node id, in ascending order. The returned slice is owned by the graph;
// callers must not mutate it.
// Complexity: O(1).
func (g *Graph) AlignedTo(id int) []int { return g.nodes[id].aligned }

// EdgeSupport returns the support count of the edge from→to,
// or 0 if no such edge exists.
// Complexity: O(1).
func (g *Graph) EdgeSupport(from, to int) int {
	if e, ok := g.edges[[2]int{from, to}]; ok {
		return e.Support
	}

	return 0
}

// EdgeLabels returns the originating sequence indices of the edge from→to,
// or nil if no such edge exists. The returned slice is owned by the graph;
// callers must not mutate it.
// Complexity: O(1).
func (g *Graph) EdgeLabels(from, to int) []int {
	if e, ok := g.edges[[2]int{from, to}]; ok {
		return e.Labels
	}

	return nil
}
