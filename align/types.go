// Package align defines the configuration types and sentinel errors for the
// partial-order alignment engine.
//
// The engine aligns one linear query sequence against the current alignment
// graph under an affine gap model, in one of three modes:
//
//	– Local      (0): best-scoring region anywhere, classic Smith–Waterman semantics.
//	– Global     (1): end-to-end over both query and graph, Needleman–Wunsch semantics.
//	– SemiGlobal (2): query end-to-end, graph overhangs free on both sides.
//
// The mode ordinals are part of the public contract and must not be
// reordered.
//
// Errors (sentinel):
//
//	– ErrBadMode    if the mode ordinal is not one of Local, Global, SemiGlobal.
//	– ErrScoreRange if any score lies outside the one-byte range −128…127.
//	– ErrNilGraph   if a nil graph is passed to Align.
package align

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by engine construction and alignment.
var (
	// ErrBadMode indicates an unknown alignment mode ordinal.
	ErrBadMode = errors.New("align: unknown alignment mode")

	// ErrScoreRange indicates a scoring parameter outside the representable
	// one-byte range −128…127. Detected at engine construction; scores are
	// never silently wrapped.
	ErrScoreRange = errors.New("align: score outside one-byte range")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Align.
	ErrNilGraph = errors.New("align: graph is nil")
)

// Mode selects the alignment semantics. Fixed for the lifetime of an Engine.
type Mode int

const (
	// Local finds the best-scoring region anywhere in query and graph;
	// the traceback stops at the first non-positive score.
	Local Mode = iota

	// Global aligns the full query against a full source-to-sink path of
	// the graph; leading and trailing gaps are charged on both axes.
	Global

	// SemiGlobal aligns the full query while graph prefix and suffix
	// overhangs stay free: the query must land inside the graph without
	// paying for the graph it does not cover.
	SemiGlobal
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case Local:
		return "Local"
	case Global:
		return "Global"
	case SemiGlobal:
		return "SemiGlobal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Scoring holds the four alignment scores. Match is awarded per equal symbol
// pair, Mismatch per unequal pair; GapOpen is charged on the first step of a
// gap run and GapExtend on every further step in the same direction.
//
// Every score must lie within −128…127 (one signed byte). The engine
// accumulates in int64 internally, so long gap runs and match stretches
// cannot overflow.
type Scoring struct {
	Match     int // score for an equal symbol pair
	Mismatch  int // score for an unequal symbol pair
	GapOpen   int // score for the first step of a gap run
	GapExtend int // score for each further step of a gap run
}

// DefaultScoring returns the conventional POA consensus scoring:
// match 5, mismatch −4, gap-open −3, gap-extend −1.
func DefaultScoring() Scoring {
	return Scoring{Match: 5, Mismatch: -4, GapOpen: -3, GapExtend: -1}
}

// validate rejects scores outside the one-byte range.
func (s Scoring) validate() error {
	for _, v := range [4]int{s.Match, s.Mismatch, s.GapOpen, s.GapExtend} {
		if v < -128 || v > 127 {
			return fmt.Errorf("%w: %d", ErrScoreRange, v)
		}
	}

	return nil
}

// Engine aligns linear queries against an alignment graph. It is immutable
// after construction and holds no per-call state, so a single Engine may be
// shared by concurrent independent runs; a call itself is strictly
// sequential.
type Engine struct {
	mode    Mode
	scoring Scoring
	policy  modePolicy // mode-specific boundary/optimum/termination strategy
}

// NewEngine constructs an alignment engine for the given mode and scoring.
//
// Returns ErrBadMode for an unknown mode ordinal and ErrScoreRange if any
// score lies outside −128…127.
// Complexity: O(1).
func NewEngine(mode Mode, sc Scoring) (*Engine, error) {
	if mode < Local || mode > SemiGlobal {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(mode))
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &Engine{mode: mode, scoring: sc, policy: policyFor(mode)}, nil
}

// Mode returns the engine's alignment mode.
func (e *Engine) Mode() Mode { return e.mode }

// Scoring returns the engine's scoring configuration.
func (e *Engine) Scoring() Scoring { return e.scoring }
