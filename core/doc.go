// Package core implements the partial-order alignment graph: an append-only
// DAG accumulating aligned sequences, with heaviest-path consensus extraction.
//
// 🚀 What is an alignment graph?
//
//	Instead of a fixed-width alignment matrix, POA keeps the evolving
//	multiple-sequence alignment as a graph: each node holds one symbol,
//	agreeing sequences share nodes, disagreeing ones branch.  It’s used in:
//	  • Consensus calling from noisy long reads
//	  • Error correction of sequencing data
//	  • Any incremental multi-sequence merge over a byte alphabet
//
// ✨ Key features:
//   - arena storage: nodes addressed by dense, stable integer ids
//   - append-only mutation: AddSequence / AddAlignment only ever add
//   - aligned-column tracking: substitutions of the same symbol share a branch
//   - deterministic topological order (Kahn, min-heap on node id)
//   - heaviest-path consensus over edge support, smallest-id tie-breaks
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/poa/core"
//
//	g := core.NewGraph()
//	g.AddSequence([]byte("AATGCCCGTT"))   // seed with the first sequence
//	g.AddAlignment(trace, next)           // thread each aligned sequence
//	cns, err := g.Consensus()             // heaviest path through the DAG
//
// Performance:
//
//   - AddSequence / AddAlignment: O(len(sequence) + len(trace))
//   - Consensus / TopologicalOrder: O((V+E) log V)
//
// One Graph per consensus run; the type holds no locks. Independent runs
// share nothing and may proceed concurrently.
//
// See examples in example_test.go.
package core
