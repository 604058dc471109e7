// Package align: mode policies and traceback.
//
// The three alignment modes differ only in boundary initialization, where
// the optimum is read from, and when the backward walk stops. Each is
// resolved once at engine construction into a modePolicy of pure functions;
// the fill loop itself is mode-agnostic apart from the Local start clamp.

package align

import "github.com/katalvlaran/poa/core"

// modePolicy bundles the mode-specific strategies injected into Align.
type modePolicy struct {
	// init sets the boundary row and column layer values.
	init func(x *matrix)

	// start locates the optimum cell and its layer; the returned score is
	// the optimal alignment score reported by Align.
	start func(x *matrix) (r, j int, layer uint8, score int64)

	// done reports whether the backward walk stops at (r, j, layer).
	done func(x *matrix, r, j int, layer uint8) bool

	// clampStart floors M sources at zero during fill (Local mode).
	clampStart bool
}

// policyFor resolves the policy for a validated mode.
func policyFor(mode Mode) modePolicy {
	switch mode {
	case Global:
		return modePolicy{
			init: func(x *matrix) {
				x.initRowQueryGap()
				x.initColGraphGap()
			},
			start: startGlobal,
			done: func(_ *matrix, r, j int, _ uint8) bool {
				return r == 0 && j == 0
			},
		}
	case SemiGlobal:
		return modePolicy{
			init: func(x *matrix) {
				x.initRowQueryGap()
				x.initColFree()
			},
			start: startSemiGlobal,
			done: func(_ *matrix, _, j int, _ uint8) bool {
				return j == 0
			},
		}
	default: // Local
		return modePolicy{
			init:  func(*matrix) {},
			start: startLocal,
			done: func(x *matrix, r, j int, layer uint8) bool {
				return r == 0 || j == 0 || x.layerValue(r, j, layer) <= 0
			},
			clampStart: true,
		}
	}
}

// startGlobal picks the true optimum among terminal cells: last query
// column, nodes without successors. Ascending-id scan with a strict
// improvement test keeps the smallest node id on ties.
func startGlobal(x *matrix) (int, int, uint8, int64) {
	j := x.cols - 1
	bestR, bestLayer, bestScore, found := 0, layerM, negInf, false
	for id := 0; id < x.g.NodeCount(); id++ {
		if len(x.g.Successors(id)) != 0 {
			continue
		}
		r := x.rank[id]
		if v, l := x.bestLayer(r, j); !found || v > bestScore {
			bestR, bestLayer, bestScore, found = r, l, v, true
		}
	}

	return bestR, j, bestLayer, bestScore
}

// startSemiGlobal picks the optimum over the last query column at any node:
// the query is fully consumed, the remaining graph suffix stays free.
func startSemiGlobal(x *matrix) (int, int, uint8, int64) {
	j := x.cols - 1
	bestR, bestLayer, bestScore, found := 0, layerM, negInf, false
	for id := 0; id < x.g.NodeCount(); id++ {
		r := x.rank[id]
		if v, l := x.bestLayer(r, j); !found || v > bestScore {
			bestR, bestLayer, bestScore, found = r, l, v, true
		}
	}

	return bestR, j, bestLayer, bestScore
}

// startLocal picks the single maximum cell anywhere in the matrix, ties
// broken by smallest node id, then smallest query position. A non-positive
// maximum means nothing aligns: the walk starts at the origin and stops
// immediately, yielding an empty trace and score 0.
func startLocal(x *matrix) (int, int, uint8, int64) {
	bestR, bestJ, bestLayer, bestScore := 0, 0, layerM, int64(0)
	for id := 0; id < x.g.NodeCount(); id++ {
		r := x.rank[id]
		for j := 1; j < x.cols; j++ {
			if v, l := x.bestLayer(r, j); v > bestScore {
				bestR, bestJ, bestLayer, bestScore = r, j, l, v
			}
		}
	}

	return bestR, bestJ, bestLayer, bestScore
}

// traceback walks backward from the chosen optimum, emitting one Pair per
// step, and returns the accumulated pairs in forward order.
//
// Steps:
//
//	M  — emit (node, query position), move diagonally to the recorded
//	     predecessor rank and source layer;
//	Iq — emit (None, query position), stay on the row, move one column left;
//	Ig — emit (node, None), move to the recorded predecessor rank.
func (x *matrix) traceback(p modePolicy, r, j int, layer uint8) core.Alignment {
	var rev core.Alignment
	for !p.done(x, r, j, layer) {
		c := x.at(r, j)
		switch layer {
		case layerM:
			rev = append(rev, core.Pair{Node: x.order[r-1], Query: j - 1})
			r, j, layer = int(x.mPred[c]), j-1, x.mFrom[c]
		case layerIq:
			rev = append(rev, core.Pair{Node: core.None, Query: j - 1})
			j, layer = j-1, x.iqFrom[c]
		default: // layerIg
			rev = append(rev, core.Pair{Node: x.order[r-1], Query: core.None})
			r, layer = int(x.igPred[c]), x.igFrom[c]
		}
	}

	for l, rr := 0, len(rev)-1; l < rr; l, rr = l+1, rr-1 {
		rev[l], rev[rr] = rev[rr], rev[l]
	}

	return rev
}
