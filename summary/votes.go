// SPDX-License-Identifier: MIT

package summary

import "github.com/katalvlaran/lvlabel/label"

// Votes applies every labeling function to every gold label.
// The result is indexed [lf][gold], both in input order. No validation is done.
//
// Complexity: O(|lfs|·|golds|) Apply calls.
func Votes[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T]) [][]label.Label {
	out := make([][]label.Label, len(lfs))
	for i, lf := range lfs {
		row := make([]label.Label, len(golds))
		for j := range golds {
			row[j] = lf.Apply(golds[j].Data)
		}
		out[i] = row
	}
	return out
}

// validate runs the shared label preconditions.
func validate[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T]) error {
	if err := label.ValidateLabelingFunctions(lfs); err != nil {
		return err
	}
	_, err := label.ValidateGoldLabels(golds)
	return err
}

// fires reports whether v is a real vote.
func fires(v label.Label) bool { return v != label.Abstain }
