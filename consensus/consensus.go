// Package consensus orchestrates the partial-order alignment pipeline and
// exposes the one-call consensus boundary.
//
// Pipeline: seed the graph with the first sequence, then for each further
// sequence align it against the graph as it currently stands and thread it
// in; finally extract the heaviest-path consensus. Sequence order is
// caller-determined and shapes the graph topology — and thus, on ties, the
// consensus. That is a documented property of POA, not a defect.
//
// Errors (sentinel):
//
//	– ErrBadMaxLength if Options.MaxLength is negative.
//
// Construction and alignment errors from the align package (ErrBadMode,
// ErrScoreRange) propagate unchanged.
package consensus

import (
	"errors"

	"github.com/katalvlaran/poa/align"
	"github.com/katalvlaran/poa/core"
)

// ErrBadMaxLength indicates a negative Options.MaxLength.
var ErrBadMaxLength = errors.New("consensus: MaxLength must be non-negative")

// Options configures one consensus computation.
//
// Mode      – alignment mode, fixed for the whole run.
// Scoring   – alignment scores, fixed for the whole run.
// MaxLength – upper bound on the returned consensus length; a longer natural
//
//	consensus is silently truncated to its first MaxLength symbols.
//	0 means unbounded. Truncation is applied once, at this boundary;
//	the underlying graph and engine never see it.
type Options struct {
	Mode      align.Mode
	Scoring   align.Scoring
	MaxLength int
}

// DefaultOptions returns the conventional configuration: Global mode,
// DefaultScoring, no length bound.
func DefaultOptions() Options {
	return Options{
		Mode:      align.Global,
		Scoring:   align.DefaultScoring(),
		MaxLength: 0,
	}
}

// Builder accumulates sequences into an alignment graph one at a time.
//
// A Builder owns its graph and engine and is not safe for concurrent use;
// independent Builders share nothing and may run in parallel.
type Builder struct {
	graph  *core.Graph
	engine *align.Engine
}

// NewBuilder creates a Builder for the given mode and scoring.
// Returns align.ErrBadMode or align.ErrScoreRange on invalid configuration.
// Complexity: O(1).
func NewBuilder(mode align.Mode, sc align.Scoring) (*Builder, error) {
	eng, err := align.NewEngine(mode, sc)
	if err != nil {
		return nil, err
	}

	return &Builder{graph: core.NewGraph(), engine: eng}, nil
}

// Add threads one sequence into the graph: the first sequence seeds it as a
// simple chain, every later one is aligned against the graph as it stands
// and merged along the resulting trace. Empty sequences are skipped — the
// consensus of the remaining inputs is unaffected by them.
// Complexity: O(len(seq) · (V + E)) for the alignment.
func (b *Builder) Add(seq []byte) error {
	if len(seq) == 0 {
		return nil
	}
	if b.graph.NodeCount() == 0 {
		_, err := b.graph.AddSequence(seq)

		return err
	}

	_, trace, err := b.engine.Align(seq, b.graph)
	if err != nil {
		return err
	}

	return b.graph.AddAlignment(trace, seq)
}

// Consensus extracts the heaviest-path consensus from the current graph
// state. Pure read: the Builder stays usable for further Add calls, and the
// result is recomputed on demand after each mutation.
// Complexity: O((V + E) log V).
func (b *Builder) Consensus() ([]byte, error) {
	return b.graph.Consensus()
}

// Graph exposes the underlying alignment graph for inspection.
func (b *Builder) Graph() *core.Graph { return b.graph }

// Consensus computes the consensus of seqs in one call.
//
// Zero sequences yield an empty consensus without constructing a graph.
// Otherwise the sequences are threaded in the given order and the consensus
// is extracted, truncated to opts.MaxLength if a bound is set. A nil opts
// means DefaultOptions().
//
// Deterministic: identical sequences, order, mode and scoring always yield
// byte-identical output.
func Consensus(seqs [][]byte, opts *Options) ([]byte, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.MaxLength < 0 {
		return nil, ErrBadMaxLength
	}
	if len(seqs) == 0 {
		return []byte{}, nil
	}

	b, err := NewBuilder(cfg.Mode, cfg.Scoring)
	if err != nil {
		return nil, err
	}
	for _, s := range seqs {
		if err = b.Add(s); err != nil {
			return nil, err
		}
	}

	cns, err := b.Consensus()
	if err != nil {
		return nil, err
	}
	if cfg.MaxLength > 0 && len(cns) > cfg.MaxLength {
		cns = cns[:cfg.MaxLength]
	}

	return cns, nil
}
