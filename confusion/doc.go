// SPDX-License-Identifier: MIT

// Package confusion accumulates binary confusion matrices and derives the
// classification metrics the aggregation search ranks by.
//
// Semantics:
//   - Every compared (actual, predicted) pair increments exactly one of TP/FP/TN/FN,
//     so TP+FP+TN+FN always equals the number of compared pairs.
//   - A predicted ABSTAIN is treated as the negative value: indecision never opens
//     a third bucket.
//   - Undefined ratios (zero denominators) are reported as NaN, never as 0. Use
//     IsFinite before ranking by a metric.
//
// MCC (Matthews Correlation Coefficient):
//
//	MCC = (TP·TN − FP·FN) / sqrt((TP+FP)(TP+FN)(TN+FP)(TN+FN))
//
// It stays informative under heavy class imbalance, which is why the search in
// package aggregate optimizes it.
package confusion
