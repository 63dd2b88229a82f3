// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/label"
	"github.com/katalvlaran/lvlabel/summary"
	"gonum.org/v1/gonum/mat"
)

// Backend is an external classifier trained on labeling-function votes.
// Rows of features are data points; columns are labeling functions in model
// order with votes encoded as -1, 0, 1. Labels are 0 (KO) or 1 (OK).
type Backend interface {
	Train(features *mat.Dense, labels []float64) error
	Predict(features []float64) (label.Label, error)
}

// TrainingSet encodes data as backend input: the votes of every labeling
// function as features and the fitted tree's decisions as labels. This is how
// a fitted tree labels unlabeled data for a downstream classifier.
func (m *TreeLabelModel[T]) TrainingSet(data []T) (*mat.Dense, []float64, error) {
	tree, _, err := m.fitted()
	if err != nil {
		return nil, nil, err
	}
	x, err := summary.Matrix(m.lfs, data)
	if err != nil {
		return nil, nil, err
	}
	y := make([]float64, len(data))
	for i, d := range data {
		y[i] = float64(tree.Apply(d))
	}
	return x, y, nil
}

// TrainBackend builds the training set of data and hands it to b.
func (m *TreeLabelModel[T]) TrainBackend(b Backend, data []T) error {
	if b == nil {
		return ErrNilBackend
	}
	x, y, err := m.TrainingSet(data)
	if err != nil {
		return err
	}
	if err := b.Train(x, y); err != nil {
		return fmt.Errorf("backend train: %w", err)
	}
	return nil
}

// Features returns the vote vector of one data point in backend encoding,
// suitable for Backend.Predict.
func (m *TreeLabelModel[T]) Features(data T) []float64 {
	out := make([]float64, len(m.lfs))
	for i, lf := range m.lfs {
		out[i] = float64(lf.Apply(data))
	}
	return out
}
