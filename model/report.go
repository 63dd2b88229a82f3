// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/lvlabel/confusion"
	"github.com/katalvlaran/lvlabel/label"
	"github.com/katalvlaran/lvlabel/summary"
)

// Report bundles the diagnostics of a fitted model on one gold-label list.
type Report struct {
	Category     string
	Tree         string
	Matrix       confusion.Matrix
	Summaries    []summary.Summary
	Correlations *summary.Table
}

// Diagnose scores the tree and runs every labeling-function diagnostic on
// golds, correlating with the metric configured by WithMetric.
func (m *TreeLabelModel[T]) Diagnose(golds []label.GoldLabel[T]) (*Report, error) {
	tree, err := m.checkGolds(golds)
	if err != nil {
		return nil, err
	}
	cm, err := m.ConfusionMatrix(golds)
	if err != nil {
		return nil, err
	}
	sums, err := summary.Summarize(m.lfs, golds)
	if err != nil {
		return nil, err
	}
	tbl, err := summary.Correlations(m.lfs, golds, m.cfg.metric)
	if err != nil {
		return nil, err
	}
	return &Report{
		Category:     golds[0].Category,
		Tree:         tree.String(),
		Matrix:       cm,
		Summaries:    sums,
		Correlations: tbl,
	}, nil
}
