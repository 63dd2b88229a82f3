// SPDX-License-Identifier: MIT

// Package model exposes TreeLabelModel, the public face of lvlabel: fit a
// boolean combinator tree of labeling functions against gold labels, then
// predict, score and explain.
//
// Lifecycle:
//
//	m, err := model.New(lfs, model.WithWorkers(4))
//	err = m.Fit(golds)            // runs aggregate.Fit, keeps tree and summaries
//	y, err := m.Predict(point)    // always label.OK or label.KO
//	cm, err := m.ConfusionMatrix(golds)
//
// Every prediction or diagnostic call made before a successful Fit returns
// ErrNotFitted. Gold labels passed after Fit must share the fitted category,
// otherwise ErrCategoryMismatch. A failed Fit leaves the model as it was.
//
// A TreeLabelModel is safe for concurrent use: Fit takes an exclusive lock,
// every other method a shared one.
package model
