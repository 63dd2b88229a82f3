// SPDX-License-Identifier: MIT

package confusion

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlabel/label"
)

var (
	// ErrLengthMismatch is returned when actual and predicted differ in length.
	ErrLengthMismatch = errors.New("confusion: actual and predicted lengths differ")

	// ErrUnexpectedLabel is returned when an actual value is neither ok nor ko,
	// or a predicted value is neither ok, ko nor Abstain.
	ErrUnexpectedLabel = errors.New("confusion: unexpected label value")
)

// Matrix holds the four counters of a binary confusion matrix.
// The zero value is an empty matrix ready to use.
type Matrix struct {
	TP int // actual ok, predicted ok
	FP int // actual ko, predicted ok
	TN int // actual ko, predicted ko (or abstain)
	FN int // actual ok, predicted ko (or abstain)
}

// FromCounts builds a Matrix from precomputed counters.
func FromCounts(tp, fp, tn, fn int) Matrix {
	return Matrix{TP: tp, FP: fp, TN: tn, FN: fn}
}

// Add records one (actual, predicted) pair.
// Predicted Abstain counts as ko.
func (m *Matrix) Add(actual, predicted, ok, ko label.Label) error {
	if actual != ok && actual != ko {
		return fmt.Errorf("actual %s: %w", actual, ErrUnexpectedLabel)
	}
	if predicted != ok && predicted != ko && predicted != label.Abstain {
		return fmt.Errorf("predicted %s: %w", predicted, ErrUnexpectedLabel)
	}

	positive := predicted == ok
	switch {
	case actual == ok && positive:
		m.TP++
	case actual == ok:
		m.FN++
	case positive:
		m.FP++
	default:
		m.TN++
	}
	return nil
}

// AddAll records every aligned pair of actual and predicted.
// On error the matrix is left unchanged.
//
// Complexity: O(n).
func (m *Matrix) AddAll(actual, predicted []label.Label, ok, ko label.Label) error {
	if len(actual) != len(predicted) {
		return fmt.Errorf("%d vs %d: %w", len(actual), len(predicted), ErrLengthMismatch)
	}

	// Accumulate into a scratch copy so a bad pair half-way through leaves m intact.
	acc := *m
	for i := range actual {
		if err := acc.Add(actual[i], predicted[i], ok, ko); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	*m = acc
	return nil
}

// Merge adds the counters of other into m.
func (m *Matrix) Merge(other Matrix) {
	m.TP += other.TP
	m.FP += other.FP
	m.TN += other.TN
	m.FN += other.FN
}

// Total returns TP+FP+TN+FN.
func (m Matrix) Total() int {
	return m.TP + m.FP + m.TN + m.FN
}

// Accuracy returns (TP+TN)/Total, NaN for an empty matrix.
func (m Matrix) Accuracy() float64 {
	return ratio(m.TP+m.TN, m.Total())
}

// Precision returns TP/(TP+FP), NaN when nothing was predicted positive.
func (m Matrix) Precision() float64 {
	return ratio(m.TP, m.TP+m.FP)
}

// Recall returns TP/(TP+FN), NaN when there is no actual positive.
func (m Matrix) Recall() float64 {
	return ratio(m.TP, m.TP+m.FN)
}

// Specificity returns TN/(TN+FP), NaN when there is no actual negative.
func (m Matrix) Specificity() float64 {
	return ratio(m.TN, m.TN+m.FP)
}

// F1 returns the harmonic mean of precision and recall, 2TP/(2TP+FP+FN).
func (m Matrix) F1() float64 {
	return ratio(2*m.TP, 2*m.TP+m.FP+m.FN)
}

// MCC returns the Matthews Correlation Coefficient in [-1,1].
// It is NaN whenever one of the four marginal sums is zero.
func (m Matrix) MCC() float64 {
	var (
		tp = float64(m.TP)
		fp = float64(m.FP)
		tn = float64(m.TN)
		fn = float64(m.FN)
	)
	den := (tp + fp) * (tp + fn) * (tn + fp) * (tn + fn)
	if den == 0 {
		return math.NaN()
	}
	return (tp*tn - fp*fn) / math.Sqrt(den)
}

// String renders the counters and the main metrics.
func (m Matrix) String() string {
	return fmt.Sprintf("TP=%d FP=%d TN=%d FN=%d accuracy=%.4f mcc=%.4f",
		m.TP, m.FP, m.TN, m.FN, m.Accuracy(), m.MCC())
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ratio returns num/den, NaN when den is zero.
func ratio(num, den int) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}
