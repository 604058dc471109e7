// Package align computes optimal alignments of linear sequences against a
// partial-order alignment graph, with affine gaps and three alignment modes.
//
// 🚀 What is the alignment engine?
//
//	The DAG generalization of classic pairwise alignment: where linear
//	alignment looks at one fixed upper/diagonal neighbor per cell, a graph
//	node may have several predecessors, and every diagonal and vertical
//	transition maximizes over all of them.  It’s the workhorse behind:
//	  • Threading a noisy read into a growing consensus graph
//	  • Substitution/insertion/deletion detection against a branched reference
//	  • Any sequence-vs-DAG scoring under an affine gap model
//
// ✨ Key features:
//   - three score layers per cell (match/mismatch, query gap, graph gap)
//   - affine gaps: gap-open on the first step, gap-extend on each further one
//   - Local, Global and SemiGlobal modes, resolved once at construction
//   - deterministic traceback: layer preference M > query-gap > graph-gap,
//     smallest node id among equally good predecessors
//   - int64 accumulation — one-byte scores can never overflow
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/poa/align"
//
//	eng, err := align.NewEngine(align.Global, align.DefaultScoring())
//	if err != nil {
//	  // handle ErrBadMode or ErrScoreRange
//	}
//	score, trace, err := eng.Align(query, graph)
//	// feed trace to graph.AddAlignment(trace, query)
//
// Performance:
//
//   - Time:   O(|query| · (V + E))
//   - Memory: O(|query| · V)
//
// An Engine is immutable after construction and may be shared across
// independent consensus runs.
//
// See examples in example_test.go.
package align
