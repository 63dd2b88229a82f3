// SPDX-License-Identifier: MIT

package aggregate

import (
	"math/bits"

	"github.com/katalvlaran/lvlabel/confusion"
)

// bitvec packs one OK/KO decision per gold label, bit i set means OK.
// Bits past the last gold label are always zero.
type bitvec []uint64

// wordsFor returns the number of 64-bit words needed for n decisions.
func wordsFor(n int) int {
	return (n + 63) >> 6
}

// set marks decision i as OK.
func (v bitvec) set(i int) {
	v[i>>6] |= 1 << (uint(i) & 63)
}

// get reports whether decision i is OK.
func (v bitvec) get(i int) bool {
	return v[i>>6]&(1<<(uint(i)&63)) != 0
}

// combineInto writes op(l, r) into dst word by word.
func combineInto(dst, l, r bitvec, op Op) {
	for i := range dst {
		dst[i] = op.evalWord(l[i], r[i])
	}
}

// scoreVec counts the confusion matrix of predicted against actual over n decisions.
//
// Complexity: O(n/64).
func scoreVec(predicted, actual bitvec, n int) confusion.Matrix {
	var tp, fp, fn int
	for i, a := range actual {
		p := predicted[i]
		tp += bits.OnesCount64(p & a)
		fp += bits.OnesCount64(p &^ a)
		fn += bits.OnesCount64(a &^ p)
	}
	return confusion.FromCounts(tp, fp, n-tp-fp-fn, fn)
}

// scoreCombined scores op(l, r) against actual without materializing the vector.
//
// Complexity: O(n/64), no allocation.
func scoreCombined(op Op, l, r, actual bitvec, n int) confusion.Matrix {
	var tp, fp, fn int
	for i, a := range actual {
		p := op.evalWord(l[i], r[i])
		tp += bits.OnesCount64(p & a)
		fp += bits.OnesCount64(p &^ a)
		fn += bits.OnesCount64(a &^ p)
	}
	return confusion.FromCounts(tp, fp, n-tp-fp-fn, fn)
}
