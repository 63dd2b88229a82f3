// SPDX-License-Identifier: MIT

package model_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvlabel/aggregate"
	"github.com/katalvlaran/lvlabel/confusion"
	"github.com/katalvlaran/lvlabel/label"
	"github.com/katalvlaran/lvlabel/model"
	"github.com/katalvlaran/lvlabel/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

func divisibleBy(k int) label.LabelingFunction[int] {
	return label.NewFunc(fmt.Sprintf("isDivisibleBy%d", k), func(n int) label.Label {
		if n%k == 0 {
			return label.OK
		}
		return label.KO
	})
}

func divisibilityLFs() []label.LabelingFunction[int] {
	return []label.LabelingFunction[int]{divisibleBy(2), divisibleBy(3), divisibleBy(6)}
}

// multiplesOf labels 1..12 under category name with OK exactly at multiples of k.
func multiplesOf(name string, k int) []label.GoldLabel[int] {
	golds := make([]label.GoldLabel[int], 0, 12)
	for n := 1; n <= 12; n++ {
		golds = append(golds, label.NewGoldLabel(name, n, n%k == 0))
	}
	return golds
}

func fitted(t *testing.T, opts ...model.Option) *model.TreeLabelModel[int] {
	t.Helper()
	m, err := model.New(divisibilityLFs(), opts...)
	require.NoError(t, err)
	require.NoError(t, m.Fit(multiplesOf("divisibleBy3", 3)))
	return m
}

// TestNew_Errors covers construction preconditions.
func TestNew_Errors(t *testing.T) {
	_, err := model.New[int](nil)
	assert.ErrorIs(t, err, label.ErrNoLabelingFunctions)

	_, err = model.New(divisibilityLFs(), model.WithWorkers(-1))
	assert.ErrorIs(t, err, aggregate.ErrInvalidOptions)

	_, err = model.New(divisibilityLFs(), model.WithMetric(summary.Metric(9)))
	assert.ErrorIs(t, err, summary.ErrUnknownMetric)
}

// TestModel_NotFitted checks that every serving method refuses before Fit.
func TestModel_NotFitted(t *testing.T) {
	m, err := model.New(divisibilityLFs())
	require.NoError(t, err)
	golds := multiplesOf("divisibleBy3", 3)

	assert.False(t, m.Fitted())
	assert.Nil(t, m.Tree())
	assert.Nil(t, m.Result())
	assert.Empty(t, m.Category())
	assert.Empty(t, m.Summaries())

	_, err = m.Predict(3)
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, err = m.PredictData([]int{3})
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, err = m.PredictAll(golds)
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, err = m.ConfusionMatrix(golds)
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, err = m.Summarize(golds)
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, err = m.LabelingFunctionsCorrelations(golds, summary.Pearson)
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, err = m.Explore(golds)
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, err = m.Diagnose(golds)
	assert.ErrorIs(t, err, model.ErrNotFitted)
	_, _, err = m.TrainingSet([]int{3})
	assert.ErrorIs(t, err, model.ErrNotFitted)
}

// TestModel_Divisibility runs the canonical scenario end to end.
func TestModel_Divisibility(t *testing.T) {
	m := fitted(t)
	golds := multiplesOf("divisibleBy3", 3)

	assert.True(t, m.Fitted())
	assert.Equal(t, "divisibleBy3", m.Category())
	assert.Equal(t, "AND(isDivisibleBy3, isDivisibleBy3)", m.Tree().String())

	got, err := m.PredictAll(golds)
	require.NoError(t, err)
	assert.Equal(t, []label.Label{0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1}, got)

	cm, err := m.ConfusionMatrix(golds)
	require.NoError(t, err)
	assert.Equal(t, confusion.FromCounts(4, 0, 8, 0), cm)
	assert.Equal(t, len(golds), cm.Total())
	assert.Equal(t, 1.0, cm.MCC())

	// Fresh data is evaluated through the labeling functions.
	y, err := m.Predict(15)
	require.NoError(t, err)
	assert.Equal(t, label.OK, y)
	ys, err := m.PredictData([]int{10, 21, 22})
	require.NoError(t, err)
	assert.Equal(t, []label.Label{label.KO, label.OK, label.KO}, ys)

	sums := m.Summaries()
	require.Len(t, sums, 3)
	assert.InDelta(t, 0.5, sums[0].Accuracy, 1e-12)
	assert.InDelta(t, 1.0, sums[1].Accuracy, 1e-12)
	assert.InDelta(t, 10.0/12.0, sums[2].Accuracy, 1e-12)
}

// TestModel_Diagnostics checks the delegated diagnostics.
func TestModel_Diagnostics(t *testing.T) {
	m := fitted(t, model.WithMetric(summary.Spearman))
	golds := multiplesOf("divisibleBy3", 3)

	sums, err := m.Summarize(golds)
	require.NoError(t, err)
	assert.Equal(t, m.Summaries(), sums)

	tbl, err := m.LabelingFunctionsCorrelations(golds, summary.Kendall)
	require.NoError(t, err)
	assert.Equal(t, summary.Kendall, tbl.Metric)
	r, err := tbl.Get("isDivisibleBy6", "isDivisibleBy6")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	ex, err := m.Explore(golds)
	require.NoError(t, err)
	assert.Len(t, ex["isDivisibleBy3"][summary.Correct], 12)

	rep, err := m.Diagnose(golds)
	require.NoError(t, err)
	assert.Equal(t, "divisibleBy3", rep.Category)
	assert.Equal(t, "AND(isDivisibleBy3, isDivisibleBy3)", rep.Tree)
	assert.Equal(t, summary.Spearman, rep.Correlations.Metric)
	assert.Equal(t, 1.0, rep.Matrix.MCC())
	assert.Len(t, rep.Summaries, 3)
}

// TestModel_CategoryMismatch rejects gold labels of another category.
func TestModel_CategoryMismatch(t *testing.T) {
	m := fitted(t)
	other := multiplesOf("divisibleBy2", 2)

	_, err := m.PredictAll(other)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)
	_, err = m.ConfusionMatrix(other)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)
	_, err = m.Summarize(other)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)
	_, err = m.LabelingFunctionsCorrelations(other, summary.Pearson)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)
	_, err = m.Explore(other)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)
	_, err = m.Diagnose(other)
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)

	_, err = m.PredictAll(nil)
	assert.ErrorIs(t, err, label.ErrNoGoldLabels)
}

// TestModel_FailedFitKeepsState checks that errors never clobber a fitted model.
func TestModel_FailedFitKeepsState(t *testing.T) {
	m := fitted(t)
	before := m.Tree()

	mixed := append(multiplesOf("divisibleBy3", 3), label.NewGoldLabel("other", 13, false))
	assert.ErrorIs(t, m.Fit(mixed), label.ErrMixedCategories)
	assert.ErrorIs(t, m.Fit(nil), label.ErrNoGoldLabels)

	assert.Same(t, before, m.Tree())
	assert.Equal(t, "divisibleBy3", m.Category())
}

// TestModel_Refit replaces tree and category.
func TestModel_Refit(t *testing.T) {
	m := fitted(t)
	require.NoError(t, m.Fit(multiplesOf("divisibleBy2", 2)))

	assert.Equal(t, "divisibleBy2", m.Category())
	assert.Equal(t, "AND(isDivisibleBy2, isDivisibleBy2)", m.Tree().String())
	assert.Equal(t, "isDivisibleBy2", m.Result().BaselineName)

	_, err := m.PredictAll(multiplesOf("divisibleBy3", 3))
	assert.ErrorIs(t, err, model.ErrCategoryMismatch)
}

// TestModel_LabelingFunctionsIsACopy guards the internal slice.
func TestModel_LabelingFunctionsIsACopy(t *testing.T) {
	m := fitted(t)
	lfs := m.LabelingFunctions()
	require.Len(t, lfs, 3)
	lfs[0] = nil
	assert.NotNil(t, m.LabelingFunctions()[0])
}

// TestModel_FitLogs checks the Info record emitted on success.
func TestModel_FitLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fitted(t, model.WithLogger(zap.New(core)))

	entries := logs.FilterMessage("model: fitted").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "divisibleBy3", fields["category"])
	assert.Equal(t, "isDivisibleBy3", fields["baseline"])
	assert.Equal(t, false, fields["degenerate"])
	assert.Equal(t, 1, logs.FilterMessage("aggregate: search converged").Len())
}

// TestModel_ConcurrentReads predicts from several goroutines while refitting.
func TestModel_ConcurrentReads(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := fitted(t, model.WithWorkers(2))
	golds := multiplesOf("divisibleBy3", 3)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 1; n <= 50; n++ {
				y, err := m.Predict(n)
				assert.NoError(t, err)
				assert.Contains(t, []label.Label{label.OK, label.KO}, y)
			}
		}()
	}
	for i := 0; i < 3; i++ {
		assert.NoError(t, m.Fit(golds))
	}
	wg.Wait()
}

// memoBackend memorizes vote rows and predicts by exact lookup.
type memoBackend struct {
	rows map[string]label.Label
	fail error
}

var _ model.Backend = (*memoBackend)(nil)

func key(row []float64) string { return fmt.Sprint(row) }

func (b *memoBackend) Train(x *mat.Dense, y []float64) error {
	if b.fail != nil {
		return b.fail
	}
	b.rows = make(map[string]label.Label)
	r, _ := x.Dims()
	for i := 0; i < r; i++ {
		b.rows[key(x.RawRowView(i))] = label.Label(y[i])
	}
	return nil
}

func (b *memoBackend) Predict(row []float64) (label.Label, error) {
	if v, ok := b.rows[key(row)]; ok {
		return v, nil
	}
	return label.KO, nil
}

// TestModel_TrainingSetAndBackend hands the tree's decisions to a backend.
func TestModel_TrainingSetAndBackend(t *testing.T) {
	m := fitted(t)

	x, y, err := m.TrainingSet([]int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{0, 0, 1, 0, 0, 1}, y)
	assert.Equal(t, []float64{1, 1, 1}, x.RawRowView(5))

	b := &memoBackend{}
	require.NoError(t, m.TrainBackend(b, []int{1, 2, 3, 4, 5, 6}))
	got, err := b.Predict(m.Features(12))
	require.NoError(t, err)
	assert.Equal(t, label.OK, got)

	assert.ErrorIs(t, m.TrainBackend(nil, []int{1}), model.ErrNilBackend)
	boom := errors.New("boom")
	assert.ErrorIs(t, m.TrainBackend(&memoBackend{fail: boom}, []int{1}), boom)
	_, _, err = m.TrainingSet(nil)
	assert.ErrorIs(t, err, summary.ErrNoData)
}
