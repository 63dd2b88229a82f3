// SPDX-License-Identifier: MIT

// Package summary provides read-only diagnostics over a set of labeling
// functions evaluated against one fixed, ordered list of gold labels.
//
// None of these analyses touch the aggregation search; they explain it.
//
// 📊 What is offered:
//   - Votes: the LF × gold-label vote matrix every other analysis reads.
//   - Summarize: per-LF coverage, polarity, accuracy, overlaps and conflicts.
//   - Correlations: pairwise Pearson, Spearman or Kendall correlation of LF votes.
//   - Explore: gold labels partitioned into CORRECT / INCORRECT per LF, each with
//     the feature vector of all votes on that data point.
//   - Features: the same votes as a gonum matrix, ready for an external classifier.
//
// ✨ Conventions:
//   - A labeling function "fires" on a data point when it does not abstain.
//   - Two LFs overlap on a point when both fire with the same vote, and
//     conflict when both fire with different votes.
//   - Accuracy is measured over the points an LF fires on; ABSTAIN is neither
//     correct nor incorrect there. Explore, which must place every point,
//     files ABSTAIN under INCORRECT.
//   - Degenerate correlations (a constant vote vector) are reported as 0; the
//     diagonal is always exactly 1.
//
// ⚙️ Usage:
//
//	sums, err := summary.Summarize(lfs, golds)
//	tbl, err := summary.Correlations(lfs, golds, summary.Spearman)
//	rho, err := tbl.Get("isDivisibleBy2", "isDivisibleBy6")
package summary
