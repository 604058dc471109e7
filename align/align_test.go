// Package align_test contains unit tests for the alignment engine: engine
// construction guards, trace shapes for matches, substitutions and indels,
// affine gap accounting, the three mode semantics, degenerate inputs, and
// the monotonic gap-cost property.
package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poa/align"
	"github.com/katalvlaran/poa/core"
)

// seeded returns a graph holding seq as its seed chain.
func seeded(t *testing.T, seq string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddSequence([]byte(seq))
	require.NoError(t, err)

	return g
}

// mustEngine builds an engine or fails the test.
func mustEngine(t *testing.T, mode align.Mode, sc align.Scoring) *align.Engine {
	t.Helper()
	e, err := align.NewEngine(mode, sc)
	require.NoError(t, err)

	return e
}

// ------------------------------------------------------------------------
// 1. Construction guards.
// ------------------------------------------------------------------------

func TestNewEngine_BadMode(t *testing.T) {
	_, err := align.NewEngine(align.Mode(3), align.DefaultScoring())
	assert.ErrorIs(t, err, align.ErrBadMode)

	_, err = align.NewEngine(align.Mode(-1), align.DefaultScoring())
	assert.ErrorIs(t, err, align.ErrBadMode)
}

func TestNewEngine_ScoreRange(t *testing.T) {
	sc := align.DefaultScoring()
	sc.Match = 200 // outside one-byte range
	_, err := align.NewEngine(align.Global, sc)
	assert.ErrorIs(t, err, align.ErrScoreRange)

	sc = align.DefaultScoring()
	sc.GapExtend = -129
	_, err = align.NewEngine(align.Global, sc)
	assert.ErrorIs(t, err, align.ErrScoreRange)
}

func TestAlign_NilGraph(t *testing.T) {
	e := mustEngine(t, align.Global, align.DefaultScoring())
	_, _, err := e.Align([]byte("ACGT"), nil)
	assert.ErrorIs(t, err, align.ErrNilGraph)
}

func TestAlign_EmptyGraph(t *testing.T) {
	e := mustEngine(t, align.Global, align.DefaultScoring())
	score, trace, err := e.Align([]byte("ACGT"), core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Nil(t, trace, "empty graph is the first-sequence special case")
}

// ------------------------------------------------------------------------
// 2. Global mode: trace shapes and affine accounting.
// ------------------------------------------------------------------------

func TestAlign_Global_Identity(t *testing.T) {
	g := seeded(t, "ACGT")
	e := mustEngine(t, align.Global, align.DefaultScoring())

	score, trace, err := e.Align([]byte("ACGT"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(20), score, "4 matches at +5")

	want := core.Alignment{{Node: 0, Query: 0}, {Node: 1, Query: 1}, {Node: 2, Query: 2}, {Node: 3, Query: 3}}
	assert.Equal(t, want, trace)
}

func TestAlign_Global_Substitution(t *testing.T) {
	g := seeded(t, "ACGT")
	e := mustEngine(t, align.Global, align.DefaultScoring())

	score, trace, err := e.Align([]byte("AGGT"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(11), score, "3 matches and 1 mismatch")

	// A substitution stays a diagonal step: both sides present.
	want := core.Alignment{{Node: 0, Query: 0}, {Node: 1, Query: 1}, {Node: 2, Query: 2}, {Node: 3, Query: 3}}
	assert.Equal(t, want, trace)
}

func TestAlign_Global_Deletion(t *testing.T) {
	g := seeded(t, "ACGT")
	e := mustEngine(t, align.Global, align.DefaultScoring())

	score, trace, err := e.Align([]byte("ACT"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(12), score, "3 matches minus one gap-open")

	want := core.Alignment{
		{Node: 0, Query: 0},
		{Node: 1, Query: 1},
		{Node: 2, Query: core.None},
		{Node: 3, Query: 2},
	}
	assert.Equal(t, want, trace)
}

func TestAlign_Global_Insertion(t *testing.T) {
	g := seeded(t, "ACT")
	e := mustEngine(t, align.Global, align.DefaultScoring())

	score, trace, err := e.Align([]byte("ACGT"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(12), score)

	want := core.Alignment{
		{Node: 0, Query: 0},
		{Node: 1, Query: 1},
		{Node: core.None, Query: 2},
		{Node: 2, Query: 3},
	}
	assert.Equal(t, want, trace)
}

func TestAlign_Global_AffineGapRun(t *testing.T) {
	g := seeded(t, "ACGT")
	e := mustEngine(t, align.Global, align.DefaultScoring())

	// Deleting C and G is one run: open once, extend once.
	score, trace, err := e.Align([]byte("AT"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(6), score, "10 - 3 (open) - 1 (extend)")

	want := core.Alignment{
		{Node: 0, Query: 0},
		{Node: 1, Query: core.None},
		{Node: 2, Query: core.None},
		{Node: 3, Query: 1},
	}
	assert.Equal(t, want, trace)
}

func TestAlign_Global_BranchedGraphTakesBestPath(t *testing.T) {
	// Build A→{C,G}→T and align AGT: the diagonal must route through the
	// G branch, maximizing over both predecessors of T.
	g := seeded(t, "ACT")
	sub := core.Alignment{{Node: 0, Query: 0}, {Node: 1, Query: 1}, {Node: 2, Query: 2}}
	require.NoError(t, g.AddAlignment(sub, []byte("AGT")))

	e := mustEngine(t, align.Global, align.DefaultScoring())
	score, trace, err := e.Align([]byte("AGT"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(15), score, "all three match through the branch")

	want := core.Alignment{{Node: 0, Query: 0}, {Node: 3, Query: 1}, {Node: 2, Query: 2}}
	assert.Equal(t, want, trace)
}

// ------------------------------------------------------------------------
// 3. Local and SemiGlobal semantics.
// ------------------------------------------------------------------------

func TestAlign_Local_BestRegionOnly(t *testing.T) {
	g := seeded(t, "TTACGTT")
	e := mustEngine(t, align.Local, align.DefaultScoring())

	score, trace, err := e.Align([]byte("ACG"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(15), score)

	want := core.Alignment{{Node: 2, Query: 0}, {Node: 3, Query: 1}, {Node: 4, Query: 2}}
	assert.Equal(t, want, trace)
}

func TestAlign_Local_NothingAligns(t *testing.T) {
	g := seeded(t, "AAAA")
	e := mustEngine(t, align.Local, align.DefaultScoring())

	score, trace, err := e.Align([]byte("TTTT"), g)
	require.NoError(t, err)
	assert.Zero(t, score, "all-mismatch input has no positive region")
	assert.Empty(t, trace)
}

func TestAlign_SemiGlobal_FreeGraphOverhangs(t *testing.T) {
	g := seeded(t, "TTACGTT")

	semi := mustEngine(t, align.SemiGlobal, align.DefaultScoring())
	score, trace, err := semi.Align([]byte("ACG"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(15), score, "graph overhangs are free")

	want := core.Alignment{{Node: 2, Query: 0}, {Node: 3, Query: 1}, {Node: 4, Query: 2}}
	assert.Equal(t, want, trace)

	// Global must charge both overhangs as gap runs.
	global := mustEngine(t, align.Global, align.DefaultScoring())
	gScore, _, err := global.Align([]byte("ACG"), g)
	require.NoError(t, err)
	assert.Equal(t, int64(7), gScore, "15 - 4 (leading run) - 4 (trailing run)")
}

// ------------------------------------------------------------------------
// 4. Degenerate inputs.
// ------------------------------------------------------------------------

func TestAlign_EmptyQuery_Global(t *testing.T) {
	g := seeded(t, "ACG")
	e := mustEngine(t, align.Global, align.DefaultScoring())

	score, trace, err := e.Align(nil, g)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), score, "one deletion run over three nodes")

	want := core.Alignment{
		{Node: 0, Query: core.None},
		{Node: 1, Query: core.None},
		{Node: 2, Query: core.None},
	}
	assert.Equal(t, want, trace)
}

func TestAlign_EmptyQuery_Local(t *testing.T) {
	g := seeded(t, "ACG")
	e := mustEngine(t, align.Local, align.DefaultScoring())

	score, trace, err := e.Align(nil, g)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Empty(t, trace)
}

func TestAlign_EmptyQuery_SemiGlobal(t *testing.T) {
	g := seeded(t, "ACG")
	e := mustEngine(t, align.SemiGlobal, align.DefaultScoring())

	score, trace, err := e.Align(nil, g)
	require.NoError(t, err)
	assert.Zero(t, score, "the whole graph is a free overhang")
	assert.Empty(t, trace)
}

// ------------------------------------------------------------------------
// 5. Properties.
// ------------------------------------------------------------------------

// TestAlign_MonotonicGapCost verifies that making gap-open or gap-extend
// more negative never increases the optimal score of a fixed alignment.
func TestAlign_MonotonicGapCost(t *testing.T) {
	g := seeded(t, "AATGCCCGTT")
	query := []byte("AATGCCGTT") // forces at least one gap

	prev := int64(1 << 30)
	for open := -1; open >= -16; open-- {
		sc := align.Scoring{Match: 5, Mismatch: -4, GapOpen: open, GapExtend: -1}
		e := mustEngine(t, align.Global, sc)
		score, _, err := e.Align(query, g)
		require.NoError(t, err)
		assert.LessOrEqual(t, score, prev, "gap-open %d", open)
		prev = score
	}

	prev = int64(1 << 30)
	for ext := -1; ext >= -16; ext-- {
		sc := align.Scoring{Match: 5, Mismatch: -4, GapOpen: -3, GapExtend: ext}
		e := mustEngine(t, align.Global, sc)
		score, _, err := e.Align(query, g)
		require.NoError(t, err)
		assert.LessOrEqual(t, score, prev, "gap-extend %d", ext)
		prev = score
	}
}

// TestAlign_Deterministic verifies byte-identical traces across repeats.
func TestAlign_Deterministic(t *testing.T) {
	g := seeded(t, "AATGCCCGTT")
	e := mustEngine(t, align.Global, align.DefaultScoring())

	score1, trace1, err := e.Align([]byte("AATGCTCGTT"), g)
	require.NoError(t, err)
	score2, trace2, err := e.Align([]byte("AATGCTCGTT"), g)
	require.NoError(t, err)

	assert.Equal(t, score1, score2)
	assert.Equal(t, trace1, trace2)
}

// TestAlign_LongRunNoOverflow exercises int64 accumulation on a long
// uniform input: the score is exact, far beyond one-byte range.
func TestAlign_LongRunNoOverflow(t *testing.T) {
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'A'
	}
	g := core.NewGraph()
	_, err := g.AddSequence(long)
	require.NoError(t, err)

	e := mustEngine(t, align.Global, align.Scoring{Match: 127, Mismatch: -128, GapOpen: -128, GapExtend: -128})
	score, _, err := e.Align(long, g)
	require.NoError(t, err)
	assert.Equal(t, int64(1000*127), score)
}
