// SPDX-License-Identifier: MIT

package summary

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvlabel/label"
)

// Summary describes one labeling function against a gold-label list.
type Summary struct {
	Name   string
	Weight float64

	// Polarity lists the distinct non-abstain values the LF emitted, ascending.
	Polarity []label.Label

	// Coverage is the fraction of gold labels the LF fires on.
	Coverage float64

	// Overlaps is the fraction of gold labels where the LF fires and at least
	// one other LF fires with the same vote.
	Overlaps float64

	// Conflicts is the fraction of gold labels where the LF fires and at least
	// one other LF fires with a different vote.
	Conflicts float64

	Correct   int // fired with the derived class
	Incorrect int // fired against the derived class
	Abstain   int // did not fire

	// Accuracy is Correct/(Correct+Incorrect); NaN when the LF never fires.
	Accuracy float64

	// OverlapsWith and ConflictsWith name the other LFs this one agreed or
	// disagreed with at least once, in LF order.
	OverlapsWith  []string
	ConflictsWith []string
}

// Summarize computes one Summary per labeling function, in LF order.
//
// Errors: label validation sentinels for empty/invalid inputs.
//
// Complexity: O(|lfs|²·|golds|).
func Summarize[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T]) ([]Summary, error) {
	if err := validate(lfs, golds); err != nil {
		return nil, err
	}

	var (
		votes   = Votes(lfs, golds)
		classes = label.Classes(golds)
		n       = float64(len(golds))
		out     = make([]Summary, len(lfs))
	)
	for i, lf := range lfs {
		s := Summary{Name: lf.Name(), Weight: label.WeightOf(lf)}

		var (
			fired, overlapped, conflicted int
			agreeWith                     = make([]bool, len(lfs))
			disagreeWith                  = make([]bool, len(lfs))
		)
		for j, v := range votes[i] {
			if !fires(v) {
				s.Abstain++
				continue
			}
			fired++
			if v == classes[j] {
				s.Correct++
			} else {
				s.Incorrect++
			}
			if !slices.Contains(s.Polarity, v) {
				s.Polarity = append(s.Polarity, v)
			}

			var agreed, disagreed bool
			for k := range lfs {
				w := votes[k][j]
				if k == i || !fires(w) {
					continue
				}
				if w == v {
					agreed, agreeWith[k] = true, true
				} else {
					disagreed, disagreeWith[k] = true, true
				}
			}
			if agreed {
				overlapped++
			}
			if disagreed {
				conflicted++
			}
		}

		slices.Sort(s.Polarity)
		s.Coverage = float64(fired) / n
		s.Overlaps = float64(overlapped) / n
		s.Conflicts = float64(conflicted) / n
		s.Accuracy = math.NaN()
		if fired > 0 {
			s.Accuracy = float64(s.Correct) / float64(fired)
		}
		for k := range lfs {
			if agreeWith[k] {
				s.OverlapsWith = append(s.OverlapsWith, lfs[k].Name())
			}
			if disagreeWith[k] {
				s.ConflictsWith = append(s.ConflictsWith, lfs[k].Name())
			}
		}
		out[i] = s
	}
	return out, nil
}
