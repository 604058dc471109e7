// Package consensus turns a set of noisy sequences into a single consensus
// via partial-order alignment.
//
// 🚀 What is the consensus pipeline?
//
//	Seed an alignment graph with the first sequence, align and thread in
//	every further sequence one at a time, then extract the heaviest path.
//	Each alignment sees the graph left by all previous insertions, so the
//	result is order-sensitive — incremental POA, not a globally optimal MSA.
//
// ✨ Key features:
//   - one-call boundary: Consensus(seqs, opts) — build, thread, extract
//   - incremental Builder for callers that stream sequences in
//   - explicit truncation policy at the boundary (Options.MaxLength),
//     the core algorithm never deals with buffer capacities
//   - zero sequences short-circuit to an empty consensus, no graph built
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/poa/consensus"
//
//	reads := [][]byte{
//	  []byte("ATTGCCCGTT"),
//	  []byte("AATGCCGTT"),
//	  []byte("AATGCCCGAT"),
//	}
//	cns, err := consensus.Consensus(reads, nil) // Global mode, default scoring
//
// Concurrency: one Builder (graph + engine) per run, nothing shared;
// independent runs parallelize freely with no synchronization.
//
// See examples in example_test.go.
package consensus
