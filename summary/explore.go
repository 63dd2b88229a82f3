// SPDX-License-Identifier: MIT

package summary

import "github.com/katalvlaran/lvlabel/label"

// Status is the correctness bucket of one vote in an Exploration.
type Status string

const (
	// Correct holds the points where the LF voted the derived class.
	Correct Status = "CORRECT"
	// Incorrect holds the points where it voted otherwise or abstained.
	Incorrect Status = "INCORRECT"
)

// Example is one gold label as seen by Explore.
type Example[T any] struct {
	ID   string
	Data T

	// Features holds every labeling function's vote on Data, in LF order.
	Features []label.Label
}

// Exploration maps LF name → Status → gold labels, in gold order.
type Exploration[T any] map[string]map[Status][]Example[T]

// Explore partitions golds for every labeling function: a vote equal to the
// derived class is Correct, anything else (ABSTAIN included) Incorrect.
// Each Example carries the full vote vector of its data point; the vectors are
// shared between the partitions of different LFs and must not be mutated.
//
// Errors: label validation sentinels.
//
// Complexity: O(|lfs|·|golds|).
func Explore[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T]) (Exploration[T], error) {
	if err := validate(lfs, golds); err != nil {
		return nil, err
	}

	votes := Votes(lfs, golds)
	features := make([][]label.Label, len(golds))
	for j := range golds {
		f := make([]label.Label, len(lfs))
		for i := range lfs {
			f[i] = votes[i][j]
		}
		features[j] = f
	}

	out := make(Exploration[T], len(lfs))
	for i, lf := range lfs {
		parts := map[Status][]Example[T]{Correct: nil, Incorrect: nil}
		for j, g := range golds {
			status := Incorrect
			if votes[i][j] == g.Class() {
				status = Correct
			}
			parts[status] = append(parts[status], Example[T]{ID: g.ID, Data: g.Data, Features: features[j]})
		}
		out[lf.Name()] = parts
	}
	return out, nil
}
