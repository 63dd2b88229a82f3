// SPDX-License-Identifier: MIT

// Package lvlabel turns many cheap, noisy labeling functions into one binary
// classifier, validated against a small set of gold labels.
//
// 🚀 What is lvlabel?
//
//	A weak-supervision engine that searches boolean combinations of labeling
//	functions (AND, OR, AND_NOT) and keeps the tree with the best Matthews
//	Correlation Coefficient on the gold labels. Around the search it offers:
//		• label: the tri-state vote (OK, KO, ABSTAIN), LabelingFunction, GoldLabel
//		• confusion: confusion matrices, accuracy, precision, recall, F1, MCC
//		• aggregate: the combinator arena, expansion rounds and greedy hill-climb
//		• summary: coverage, overlaps, conflicts, correlations, exploration
//		• model: TreeLabelModel, fit once then predict and explain
//
// ✨ Why a combinator tree?
//
//   - Explainable: the fitted predictor prints as e.g. AND_NOT(OR(a, b), c).
//   - Cheap: candidates are scored on bit-packed vectors, 64 gold labels per word.
//   - Safe: the search never ends below the best single labeling function.
//   - Deterministic: ties are broken by enumeration order, parallel or not.
//
// Under the hood:
//
//	label/      vocabulary shared by every package
//	confusion/  metrics over TP/FP/TN/FN
//	aggregate/  Forest arena, Generation arenas, Expand, Fit, Tree
//	summary/    read-only diagnostics and gonum feature matrices
//	model/      TreeLabelModel orchestrator
//	examples/   runnable scenarios
//
// ⚙️ Quick start:
//
//	m, err := model.New(lfs)
//	err = m.Fit(golds)
//	fmt.Println(m.Tree()) // AND(isDivisibleBy3, isDivisibleBy3)
//	y, err := m.Predict(27)
package lvlabel
