// Package poa is an in-memory partial-order alignment (POA) toolkit for
// computing a consensus sequence from a set of noisy reads — DNA, protein,
// or any other byte alphabet.
//
// 🚀 What is poa?
//
//	A pure-Go library implementing the POA pipeline end to end:
//		• Alignment graph: an append-only DAG accumulating every inserted sequence
//		• Alignment engine: affine-gap dynamic programming of a sequence against the DAG
//		• Three alignment modes: Local, Global, SemiGlobal
//		• Consensus extraction: deterministic heaviest-path search over edge support
//
// ✨ Why choose poa?
//
//   - Deterministic – every tie in DP and consensus extraction breaks by smallest node id
//   - Rock-solid guarantees – append-only graph, invariant checks, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-friendly – one graph per run, nothing shared, independent runs parallelize freely
//
// Under the hood, everything is organized under three subpackages:
//
//	core/      — alignment graph: Node/Edge arena, AddAlignment, heaviest-path consensus
//	align/     — DP engine: Mode, Scoring, Engine.Align producing an alignment trace
//	consensus/ — orchestration: Builder and the one-call Consensus boundary
//
// Quick ASCII example:
//
//	    A──A──T──G──C──C──C──G──T──T
//	        │                 │
//	        G (branch)        A (branch)
//
//	a graph after aligning noisy reads against "AATGCCCGTT"; the heaviest
//	path through the most-supported edges recovers the consensus.
//
// Sequences are inserted one at a time: each alignment sees the graph left by
// all previous insertions, so input order shapes the final topology. That is a
// documented property of POA, not a defect.
//
//	go get github.com/katalvlaran/poa
package poa
