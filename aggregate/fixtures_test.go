// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlabel/aggregate"
	"github.com/katalvlaran/lvlabel/label"
)

// randomPoolCap bounds plateau growth on random problems.
const randomPoolCap = 5000

// randomOptions returns options for random problems with the pool capped.
func randomOptions(opts ...aggregate.Option) aggregate.Options {
	return aggregate.NewOptions(append([]aggregate.Option{aggregate.WithMaxPool(randomPoolCap)}, opts...)...)
}

// divisibleBy returns a labeling function voting OK on multiples of k, KO otherwise.
func divisibleBy(k int) label.LabelingFunction[int] {
	return label.NewFunc(fmt.Sprintf("isDivisibleBy%d", k), func(n int) label.Label {
		if n%k == 0 {
			return label.OK
		}
		return label.KO
	})
}

// constant returns a labeling function always voting v.
func constant(name string, v label.Label) label.LabelingFunction[int] {
	return label.NewFunc(name, func(int) label.Label { return v })
}

// divisibilityLFs is the canonical trio isDivisibleBy2/3/6.
func divisibilityLFs() []label.LabelingFunction[int] {
	return []label.LabelingFunction[int]{divisibleBy(2), divisibleBy(3), divisibleBy(6)}
}

// divisibleBy3Golds labels 1..12 with OK exactly at multiples of 3.
func divisibleBy3Golds() []label.GoldLabel[int] {
	golds := make([]label.GoldLabel[int], 0, 12)
	for n := 1; n <= 12; n++ {
		golds = append(golds, label.NewGoldLabel("divisibleBy3", n, n%3 == 0))
	}
	return golds
}

// randomProblem builds nLF noisy labeling functions over data 0..nGold-1 and a
// random ground truth. Each LF agrees with the truth with its own probability and
// abstains on a share of the points. Deterministic for a given seed.
func randomProblem(seed int64, nLF, nGold int) ([]label.LabelingFunction[int], []label.GoldLabel[int]) {
	r := rand.New(rand.NewSource(seed))

	truth := make([]bool, nGold)
	golds := make([]label.GoldLabel[int], nGold)
	for i := range golds {
		truth[i] = r.Float64() < 0.3
		golds[i] = label.NewGoldLabel("random", i, truth[i])
	}

	lfs := make([]label.LabelingFunction[int], nLF)
	for k := range lfs {
		var (
			agree   = 0.55 + 0.4*r.Float64()
			abstain = 0.5 * r.Float64()
			votes   = make([]label.Label, nGold)
		)
		for i := range votes {
			switch {
			case r.Float64() < abstain:
				votes[i] = label.Abstain
			case (r.Float64() < agree) == truth[i]:
				votes[i] = label.OK
			default:
				votes[i] = label.KO
			}
		}
		lfs[k] = label.NewFunc(fmt.Sprintf("lf%d", k), func(i int) label.Label { return votes[i] })
	}
	return lfs, golds
}
