// Package align: the DAG dynamic-programming alignment engine.
//
// This file holds the score matrix and the fill recurrence. The matrix is a
// DAG generalization of the classic affine-gap alignment recurrence: rows
// are graph nodes in topological order (row 0 is the virtual "before any
// node" boundary), columns are query positions (column 0 the "before any
// symbol" boundary). Because a node may have several predecessors, the
// diagonal and vertical transitions take the maximum over all of them
// instead of a single fixed neighbor.
//
// Three layers per cell support affine gaps:
//
//	M  — best score ending in a match/mismatch at (node, query position)
//	Iq — best score ending in a gap that consumed a query symbol (insertion)
//	Ig — best score ending in a gap that consumed a graph node (deletion)
//
// Gap-open is charged on the first step of a run, gap-extend on every
// further step in the same direction. All accumulation is int64 so that
// one-byte scores can never overflow, however long the run.
//
// Determinism: predecessors are visited in ascending node-id order and only
// a strictly better score displaces the incumbent, so ties resolve to the
// smallest node id; among equal layers the preference is M > Iq > Ig.

package align

import "github.com/katalvlaran/poa/core"

// Score layers, in tie-break preference order.
const (
	layerM  uint8 = iota // match/mismatch
	layerIq              // gap consuming a query symbol
	layerIg              // gap consuming a graph node
)

// negInf is the unreachable-cell score. Far enough below any attainable
// score to never win a max, far enough above MinInt64 that adding a gap
// score cannot underflow.
const negInf = int64(-1) << 40

// matrix is the DP state for one Align call.
type matrix struct {
	g     *core.Graph
	query []byte
	sc    Scoring

	order []int     // topological node order; 1-based rank r holds order[r-1]
	rank  []int     // node id → 1-based rank
	preds [][]int32 // per rank: predecessor ranks in ascending node-id order; {0} if none

	rows, cols int // rows = len(order)+1, cols = len(query)+1

	m, iq, ig []int64 // layer scores, rows×cols, row-major

	mPred  []int32 // predecessor rank chosen by the M layer
	igPred []int32 // predecessor rank chosen by the Ig layer
	mFrom  []uint8 // source layer of the M transition
	iqFrom []uint8 // source layer of the Iq transition (M = open, Iq = extend)
	igFrom []uint8 // source layer of the Ig transition (M = open, Ig = extend)
}

// Align computes the optimal alignment of query against g under the engine's
// mode and scoring, returning the optimal score and the alignment trace
// (score first, path second).
//
// The graph is read-only for the duration of the call. An empty graph yields
// (0, nil, nil): the caller seeds it with the sequence instead. An empty
// query is degenerate but legal — Global produces an all-graph-gap trace
// along the cheapest full path, Local an empty trace.
//
// Returns ErrNilGraph for a nil graph; propagates core.ErrCyclicGraph if the
// graph's DAG invariant is broken.
// Complexity: O(|query| · (V + E)) time and O(|query| · V) space.
func (e *Engine) Align(query []byte, g *core.Graph) (int64, core.Alignment, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	if g.NodeCount() == 0 {
		return 0, nil, nil
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return 0, nil, err
	}

	x := newMatrix(g, order, query, e.scoring)
	e.policy.init(x)
	x.fill(e.policy.clampStart)

	r, j, layer, score := e.policy.start(x)
	trace := x.traceback(e.policy, r, j, layer)

	return score, trace, nil
}

// newMatrix allocates the DP state with every layer at negInf and the
// origin cell (0,0) at 0.
func newMatrix(g *core.Graph, order []int, query []byte, sc Scoring) *matrix {
	rows, cols := len(order)+1, len(query)+1
	x := &matrix{
		g:     g,
		query: query,
		sc:    sc,
		order: order,
		rank:  make([]int, g.NodeCount()),
		preds: make([][]int32, rows),
		rows:  rows,
		cols:  cols,

		m:  make([]int64, rows*cols),
		iq: make([]int64, rows*cols),
		ig: make([]int64, rows*cols),

		mPred:  make([]int32, rows*cols),
		igPred: make([]int32, rows*cols),
		mFrom:  make([]uint8, rows*cols),
		iqFrom: make([]uint8, rows*cols),
		igFrom: make([]uint8, rows*cols),
	}
	for i := range x.m {
		x.m[i], x.iq[i], x.ig[i] = negInf, negInf, negInf
	}
	x.m[0] = 0 // origin

	for r := 1; r < rows; r++ {
		x.rank[order[r-1]] = r
	}
	boundary := []int32{0}
	for r := 1; r < rows; r++ {
		in := g.Predecessors(order[r-1]) // ascending node ids
		if len(in) == 0 {
			x.preds[r] = boundary
			continue
		}
		pr := make([]int32, len(in))
		for i, id := range in {
			pr[i] = int32(x.rank[id])
		}
		x.preds[r] = pr
	}

	return x
}

// at returns the flat index of cell (rank r, query column j).
func (x *matrix) at(r, j int) int { return r*x.cols + j }

// bestLayer returns the best score at cell (r, j) and the layer attaining
// it, preferring M over Iq over Ig on ties.
func (x *matrix) bestLayer(r, j int) (int64, uint8) {
	c := x.at(r, j)
	v, l := x.m[c], layerM
	if x.iq[c] > v {
		v, l = x.iq[c], layerIq
	}
	if x.ig[c] > v {
		v, l = x.ig[c], layerIg
	}

	return v, l
}

// layerValue returns the score of one specific layer at cell (r, j).
func (x *matrix) layerValue(r, j int, layer uint8) int64 {
	c := x.at(r, j)
	switch layer {
	case layerM:
		return x.m[c]
	case layerIq:
		return x.iq[c]
	default:
		return x.ig[c]
	}
}

// fill runs the main recurrence over all cells, rows in topological order.
// clampStart floors the M source at zero (Local mode: an alignment may
// start fresh at any cell).
func (x *matrix) fill(clampStart bool) {
	open, ext := int64(x.sc.GapOpen), int64(x.sc.GapExtend)

	for r := 1; r < x.rows; r++ {
		sym := x.g.Symbol(x.order[r-1])
		preds := x.preds[r]
		for j := 1; j < x.cols; j++ {
			c := x.at(r, j)

			sub := int64(x.sc.Mismatch)
			if x.query[j-1] == sym {
				sub = int64(x.sc.Match)
			}

			// M: diagonal over all predecessors.
			srcV, srcP, srcL := negInf, preds[0], layerM
			for _, p := range preds {
				v, l := x.bestLayer(int(p), j-1)
				if v > srcV {
					srcV, srcP, srcL = v, p, l
				}
			}
			if clampStart && srcV < 0 {
				srcV, srcL = 0, layerM
			}
			x.m[c] = srcV + sub
			x.mPred[c], x.mFrom[c] = srcP, srcL

			// Iq: horizontal, same row.
			left := x.at(r, j-1)
			if openV, extV := x.m[left]+open, x.iq[left]+ext; openV >= extV {
				x.iq[c], x.iqFrom[c] = openV, layerM
			} else {
				x.iq[c], x.iqFrom[c] = extV, layerIq
			}

			// Ig: vertical over all predecessors.
			gapV, gapP, gapL := negInf, preds[0], layerM
			for _, p := range preds {
				up := x.at(int(p), j)
				v, l := x.m[up]+open, layerM
				if extV := x.ig[up] + ext; extV > v {
					v, l = extV, layerIg
				}
				if v > gapV {
					gapV, gapP, gapL = v, p, l
				}
			}
			x.ig[c] = gapV
			x.igPred[c], x.igFrom[c] = gapP, gapL
		}
	}
}

// initRowQueryGap charges the boundary row (before any node) with an affine
// query-gap run: consuming leading query symbols before entering the graph.
func (x *matrix) initRowQueryGap() {
	open, ext := int64(x.sc.GapOpen), int64(x.sc.GapExtend)
	for j := 1; j < x.cols; j++ {
		c := x.at(0, j)
		if j == 1 {
			x.iq[c], x.iqFrom[c] = open, layerM
			continue
		}
		x.iq[c], x.iqFrom[c] = x.iq[c-1]+ext, layerIq
	}
}

// initColGraphGap charges the boundary column (before any query symbol) with
// an affine graph-gap run: deleting graph nodes before the first match. Same
// recurrence as the Ig layer, evaluated at column 0.
func (x *matrix) initColGraphGap() {
	open, ext := int64(x.sc.GapOpen), int64(x.sc.GapExtend)
	for r := 1; r < x.rows; r++ {
		c := x.at(r, 0)
		gapV, gapP, gapL := negInf, x.preds[r][0], layerM
		for _, p := range x.preds[r] {
			up := x.at(int(p), 0)
			v, l := x.m[up]+open, layerM
			if extV := x.ig[up] + ext; extV > v {
				v, l = extV, layerIg
			}
			if v > gapV {
				gapV, gapP, gapL = v, p, l
			}
		}
		x.ig[c] = gapV
		x.igPred[c], x.igFrom[c] = gapP, gapL
	}
}

// initColFree zeroes the M layer of the boundary column at every node:
// skipping any graph prefix costs nothing (SemiGlobal).
func (x *matrix) initColFree() {
	for r := 1; r < x.rows; r++ {
		x.m[x.at(r, 0)] = 0
	}
}
