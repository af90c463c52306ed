// Package eval implements Component H: the static position evaluator used
// to score beam-search nodes. It is a single linear formula over board
// shape features and the clear/b2b counters accumulated along a search
// path — intentionally simple, with all tuning concentrated in the weight
// constants below.
package eval

import (
	"math/bits"

	"github.com/iitalics/botris-battle-bluefin/internal/clearstate"
	"github.com/iitalics/botris-battle-bluefin/internal/matrix"
)

// Weight constants for the evaluation formula below. Tuning lives entirely
// here; the formula itself does not change.
const (
	Base = 1024

	Single = -200
	Double = -100
	Triple = 400
	Quad   = 1024 // reference point; do not retune casually

	SpinSingle = 512
	SpinDouble = 1200
	SpinTriple = 1600

	B2B = 200

	Height           = -50
	RowTransitions   = -200
	BlocksFromTarget = -20
)

// Evaluate scores mat under clear state st. Higher is better for the side
// to move.
func Evaluate(mat matrix.Matrix, st clearstate.State) int32 {
	var height, rowTrans, blockCount int32
	prev := matrix.Full
	for _, row := range mat.Rows() {
		rowTrans += int32(bits.OnesCount16(row ^ prev))
		blockCount += int32(bits.OnesCount16(row))
		height++
		prev = row
	}
	rowTrans += int32(bits.OnesCount16(prev)) - 16
	blockCount -= height * 6
	blocksFromTarget := abs32(blockCount - 36)

	return Base +
		int32(st.SingleClears)*Single +
		int32(st.DoubleClears)*Double +
		int32(st.TripleClears)*Triple +
		int32(st.QuadClears)*Quad +
		int32(st.SpinSingleClears)*SpinSingle +
		int32(st.SpinDoubleClears)*SpinDouble +
		int32(st.SpinTripleClears)*SpinTriple +
		int32(st.B2BClears)*B2B +
		height*Height +
		rowTrans*RowTransitions +
		blocksFromTarget*BlocksFromTarget
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}
