// SPDX-License-Identifier: MIT

package summary

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/lvlabel/label"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Metric selects the pairwise correlation measure.
type Metric int

const (
	// Pearson is the linear correlation of the raw votes (-1, 0, 1).
	Pearson Metric = iota
	// Spearman is Pearson over average ranks, robust to the vote encoding.
	Spearman
	// Kendall is Kendall's tau-a over the votes.
	Kendall
)

// String returns the lower-case metric name.
func (m Metric) String() string {
	switch m {
	case Pearson:
		return "pearson"
	case Spearman:
		return "spearman"
	case Kendall:
		return "kendall"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool { return m >= Pearson && m <= Kendall }

// ParseMetric maps a case-insensitive name to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pearson":
		return Pearson, nil
	case "spearman":
		return Spearman, nil
	case "kendall":
		return Kendall, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMetric)
}

// Table is a symmetric LF × LF correlation table.
type Table struct {
	Metric Metric
	Names  []string
	Values [][]float64 // Values[i][j] correlates Names[i] with Names[j]

	index map[string]int
}

// Get returns the correlation between the labeling functions named a and b.
func (t *Table) Get(a, b string) (float64, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownName)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownName)
	}
	return t.Values[i][j], nil
}

// Correlations correlates the vote vectors of every pair of labeling functions
// over golds.
//
// Behavior highlights:
//   - Symmetric: only the upper triangle is computed and mirrored.
//   - Diagonal is exactly 1.
//   - A pair involving a constant vote vector, or any NaN result, reports 0.
//     Kendall counts ties as concordant, so the constant case is checked
//     explicitly rather than left to the metric.
//
// Errors: label validation sentinels, ErrUnknownMetric.
//
// Complexity: O(|lfs|²·|golds|) for Pearson, O(|lfs|²·|golds|·log|golds|) for
// Spearman, O(|lfs|²·|golds|²) for Kendall.
func Correlations[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T], metric Metric) (*Table, error) {
	// Stage 1 (Validate).
	if err := validate(lfs, golds); err != nil {
		return nil, err
	}
	corr, err := correlator(metric)
	if err != nil {
		return nil, err
	}

	// Stage 2 (Encode votes as float series; ranks for Spearman).
	votes := Votes(lfs, golds)
	series := make([][]float64, len(lfs))
	for i, row := range votes {
		x := make([]float64, len(row))
		for j, v := range row {
			x[j] = float64(v)
		}
		if metric == Spearman {
			x = ranks(x)
		}
		series[i] = x
	}

	// Stage 3 (Fill the upper triangle, mirror).
	t := &Table{
		Metric: metric,
		Names:  label.Names(lfs),
		Values: make([][]float64, len(lfs)),
		index:  make(map[string]int, len(lfs)),
	}
	for i, name := range t.Names {
		t.index[name] = i
		t.Values[i] = make([]float64, len(lfs))
	}
	for i := range series {
		t.Values[i][i] = 1
		for j := i + 1; j < len(series); j++ {
			var r float64
			if !isConstant(series[i]) && !isConstant(series[j]) {
				r = corr(series[i], series[j])
			}
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = 0
			}
			t.Values[i][j], t.Values[j][i] = r, r
		}
	}
	return t, nil
}

// correlator returns the pairwise function for metric.
func correlator(metric Metric) (func(x, y []float64) float64, error) {
	switch metric {
	case Pearson:
		return func(x, y []float64) float64 {
			r, err := stats.Pearson(x, y)
			if err != nil {
				return 0
			}
			return r
		}, nil
	case Spearman:
		// Inputs are already ranks.
		return func(x, y []float64) float64 { return stat.Correlation(x, y, nil) }, nil
	case Kendall:
		return func(x, y []float64) float64 { return stat.Kendall(x, y, nil) }, nil
	}
	return nil, fmt.Errorf("%d: %w", int(metric), ErrUnknownMetric)
}

// isConstant reports whether every element of x is equal.
func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

// ranks returns 1-based ranks of x, ties sharing their average rank.
func ranks(x []float64) []float64 {
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(x[a], x[b]) })

	out := make([]float64, len(x))
	for lo := 0; lo < len(order); {
		hi := lo + 1
		for hi < len(order) && x[order[hi]] == x[order[lo]] {
			hi++
		}
		// Positions lo..hi-1 hold equal values: ranks lo+1..hi average to (lo+hi+1)/2.
		avg := float64(lo+hi+1) / 2
		for k := lo; k < hi; k++ {
			out[order[k]] = avg
		}
		lo = hi
	}
	return out
}
