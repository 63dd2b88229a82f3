// SPDX-License-Identifier: MIT

package aggregate

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlabel/confusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomBits returns a packed vector of n random decisions and its bool view.
func randomBits(r *rand.Rand, n int) (bitvec, []bool) {
	v := make(bitvec, wordsFor(n))
	b := make([]bool, n)
	for i := 0; i < n; i++ {
		if r.Intn(2) == 1 {
			v.set(i)
			b[i] = true
		}
	}
	return v, b
}

// naiveScore counts a confusion matrix decision by decision.
func naiveScore(pred, act []bool) confusion.Matrix {
	var m confusion.Matrix
	for i := range act {
		switch {
		case pred[i] && act[i]:
			m.TP++
		case pred[i]:
			m.FP++
		case act[i]:
			m.FN++
		default:
			m.TN++
		}
	}
	return m
}

// TestBitvec_SetGet checks bit addressing across word boundaries.
func TestBitvec_SetGet(t *testing.T) {
	v := make(bitvec, wordsFor(130))
	require.Len(t, v, 3)
	for _, i := range []int{0, 63, 64, 129} {
		v.set(i)
	}
	for i := 0; i < 130; i++ {
		want := i == 0 || i == 63 || i == 64 || i == 129
		assert.Equal(t, want, v.get(i), "bit %d", i)
	}
}

// TestScore_MatchesNaive compares word-level scoring with a per-decision count,
// including lengths that leave padding bits in the last word.
func TestScore_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{1, 63, 64, 65, 200} {
		act, actB := randomBits(r, n)
		l, lB := randomBits(r, n)
		rv, rB := randomBits(r, n)

		assert.Equal(t, naiveScore(lB, actB), scoreVec(l, act, n), "n=%d", n)

		for _, op := range combinators {
			combined := make([]bool, n)
			for i := range combined {
				combined[i] = op.Eval(lB[i], rB[i])
			}
			want := naiveScore(combined, actB)

			assert.Equal(t, want, scoreCombined(op, l, rv, act, n), "op=%s n=%d", op, n)

			dst := make(bitvec, len(act))
			combineInto(dst, l, rv, op)
			assert.Equal(t, want, scoreVec(dst, act, n), "op=%s n=%d", op, n)
			assert.Equal(t, n, want.Total())
		}
	}
}

// TestEvalWord_PanicsOnLeaf documents the programmer-error path.
func TestEvalWord_PanicsOnLeaf(t *testing.T) {
	assert.Panics(t, func() { OpLeaf.evalWord(1, 1) })
}
