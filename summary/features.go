// SPDX-License-Identifier: MIT

package summary

import (
	"github.com/katalvlaran/lvlabel/label"
	"gonum.org/v1/gonum/mat"
)

// Matrix encodes the votes of lfs on data as a len(data)×len(lfs) gonum matrix,
// one row per data point, values in {-1, 0, 1}.
//
// Errors: label validation sentinels for lfs, ErrNoData for empty data.
func Matrix[T any](lfs []label.LabelingFunction[T], data []T) (*mat.Dense, error) {
	if err := label.ValidateLabelingFunctions(lfs); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}

	x := mat.NewDense(len(data), len(lfs), nil)
	for r, d := range data {
		for c, lf := range lfs {
			x.Set(r, c, float64(lf.Apply(d)))
		}
	}
	return x, nil
}

// Features returns the vote matrix of lfs over golds together with the derived
// gold classes (0 for KO, 1 for OK): the training input of an external
// classifier backend.
func Features[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T]) (*mat.Dense, []float64, error) {
	if err := validate(lfs, golds); err != nil {
		return nil, nil, err
	}

	data := make([]T, len(golds))
	y := make([]float64, len(golds))
	for i, g := range golds {
		data[i] = g.Data
		y[i] = float64(g.Class())
	}
	x, err := Matrix(lfs, data)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
