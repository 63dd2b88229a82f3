// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/lvlabel/aggregate"
	"github.com/katalvlaran/lvlabel/confusion"
	"github.com/katalvlaran/lvlabel/label"
	"github.com/katalvlaran/lvlabel/summary"
	"go.uber.org/zap"
)

// TreeLabelModel fits and serves a combinator tree over a fixed list of
// labeling functions.
type TreeLabelModel[T any] struct {
	mu  sync.RWMutex
	lfs []label.LabelingFunction[T]
	cfg config
	log *zap.Logger

	// Set together by a successful Fit.
	result    *aggregate.Result[T]
	category  string
	summaries []summary.Summary
}

// New returns an unfitted model over lfs.
//
// Errors: label validation sentinels for lfs, aggregate.ErrInvalidOptions,
// summary.ErrUnknownMetric.
func New[T any](lfs []label.LabelingFunction[T], opts ...Option) (*TreeLabelModel[T], error) {
	if err := label.ValidateLabelingFunctions(lfs); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	if err := cfg.search.Validate(); err != nil {
		return nil, err
	}
	if !cfg.metric.Valid() {
		return nil, fmt.Errorf("%d: %w", int(cfg.metric), summary.ErrUnknownMetric)
	}

	return &TreeLabelModel[T]{
		lfs: slices.Clone(lfs),
		cfg: cfg,
		log: cfg.logger(),
	}, nil
}

// Fit searches the best combinator tree against golds and summarizes every
// labeling function on them. On error the model keeps its previous state.
func (m *TreeLabelModel[T]) Fit(golds []label.GoldLabel[T]) error {
	category, err := label.ValidateGoldLabels(golds)
	if err != nil {
		return err
	}
	res, err := aggregate.Fit(m.lfs, golds, m.cfg.search)
	if err != nil {
		return fmt.Errorf("fit %q: %w", category, err)
	}
	sums, err := summary.Summarize(m.lfs, golds)
	if err != nil {
		return fmt.Errorf("summarize %q: %w", category, err)
	}

	m.mu.Lock()
	m.result, m.category, m.summaries = res, category, sums
	m.mu.Unlock()

	m.log.Info("model: fitted",
		zap.String("category", category),
		zap.Int("gold_labels", len(golds)),
		zap.String("tree", res.Tree.String()),
		zap.Float64("mcc", res.Tree.MCC()),
		zap.String("baseline", res.BaselineName),
		zap.Bool("degenerate", res.Degenerate))
	return nil
}

// Fitted reports whether Fit has succeeded at least once.
func (m *TreeLabelModel[T]) Fitted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result != nil
}

// Tree returns the fitted tree, or nil before Fit.
func (m *TreeLabelModel[T]) Tree() *aggregate.Tree[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.result == nil {
		return nil
	}
	return m.result.Tree
}

// Result returns the full search outcome, or nil before Fit.
func (m *TreeLabelModel[T]) Result() *aggregate.Result[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.result
}

// Category returns the fitted gold-label category, "" before Fit.
func (m *TreeLabelModel[T]) Category() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.category
}

// Summaries returns a copy of the per-LF summaries computed by Fit.
func (m *TreeLabelModel[T]) Summaries() []summary.Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.summaries)
}

// LabelingFunctions returns a copy of the model's labeling functions.
func (m *TreeLabelModel[T]) LabelingFunctions() []label.LabelingFunction[T] {
	return slices.Clone(m.lfs)
}

// fitted returns the tree under a shared lock, or ErrNotFitted.
func (m *TreeLabelModel[T]) fitted() (*aggregate.Tree[T], string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.result == nil {
		return nil, "", ErrNotFitted
	}
	return m.result.Tree, m.category, nil
}

// checkGolds requires a fitted model and golds of the fitted category.
func (m *TreeLabelModel[T]) checkGolds(golds []label.GoldLabel[T]) (*aggregate.Tree[T], error) {
	tree, fittedCategory, err := m.fitted()
	if err != nil {
		return nil, err
	}
	category, err := label.ValidateGoldLabels(golds)
	if err != nil {
		return nil, err
	}
	if category != fittedCategory {
		return nil, fmt.Errorf("got %q, fitted %q: %w", category, fittedCategory, ErrCategoryMismatch)
	}
	return tree, nil
}

// Predict returns label.OK or label.KO for one data point.
func (m *TreeLabelModel[T]) Predict(data T) (label.Label, error) {
	tree, _, err := m.fitted()
	if err != nil {
		return label.Abstain, err
	}
	return tree.Apply(data), nil
}

// PredictData predicts every data point, in order.
func (m *TreeLabelModel[T]) PredictData(data []T) ([]label.Label, error) {
	tree, _, err := m.fitted()
	if err != nil {
		return nil, err
	}
	out := make([]label.Label, len(data))
	for i, d := range data {
		out[i] = tree.Apply(d)
	}
	return out, nil
}

// PredictAll predicts the data of every gold label, in order.
func (m *TreeLabelModel[T]) PredictAll(golds []label.GoldLabel[T]) ([]label.Label, error) {
	tree, err := m.checkGolds(golds)
	if err != nil {
		return nil, err
	}
	out := make([]label.Label, len(golds))
	for i := range golds {
		out[i] = tree.Apply(golds[i].Data)
	}
	return out, nil
}

// ConfusionMatrix scores the fitted tree against golds.
func (m *TreeLabelModel[T]) ConfusionMatrix(golds []label.GoldLabel[T]) (confusion.Matrix, error) {
	predicted, err := m.PredictAll(golds)
	if err != nil {
		return confusion.Matrix{}, err
	}
	var cm confusion.Matrix
	if err := cm.AddAll(label.Classes(golds), predicted, label.OK, label.KO); err != nil {
		return confusion.Matrix{}, err
	}
	return cm, nil
}

// Summarize computes per-LF summaries against golds.
func (m *TreeLabelModel[T]) Summarize(golds []label.GoldLabel[T]) ([]summary.Summary, error) {
	if _, err := m.checkGolds(golds); err != nil {
		return nil, err
	}
	return summary.Summarize(m.lfs, golds)
}

// LabelingFunctionsCorrelations correlates every pair of labeling functions on golds.
func (m *TreeLabelModel[T]) LabelingFunctionsCorrelations(golds []label.GoldLabel[T], metric summary.Metric) (*summary.Table, error) {
	if _, err := m.checkGolds(golds); err != nil {
		return nil, err
	}
	return summary.Correlations(m.lfs, golds, metric)
}

// Explore partitions golds per labeling function into CORRECT and INCORRECT.
func (m *TreeLabelModel[T]) Explore(golds []label.GoldLabel[T]) (summary.Exploration[T], error) {
	if _, err := m.checkGolds(golds); err != nil {
		return nil, err
	}
	return summary.Explore(m.lfs, golds)
}
