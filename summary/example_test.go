// SPDX-License-Identifier: MIT

// Package summary_test provides runnable examples of the diagnostics.
package summary_test

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/summary"
)

// ExampleSummarize prints coverage and accuracy of the divisibility trio.
func ExampleSummarize() {
	sums, err := summary.Summarize(divisibilityLFs(), divisibleBy3Golds())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range sums {
		fmt.Printf("%s coverage=%.2f accuracy=%.3f\n", s.Name, s.Coverage, s.Accuracy)
	}
	// Output:
	// isDivisibleBy2 coverage=1.00 accuracy=0.500
	// isDivisibleBy3 coverage=1.00 accuracy=1.000
	// isDivisibleBy6 coverage=1.00 accuracy=0.833
}

// ExampleCorrelations prints one Pearson coefficient.
func ExampleCorrelations() {
	tbl, err := summary.Correlations(divisibilityLFs(), divisibleBy3Golds(), summary.Pearson)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, _ := tbl.Get("isDivisibleBy3", "isDivisibleBy6")
	fmt.Printf("%s(isDivisibleBy3, isDivisibleBy6)=%.4f\n", tbl.Metric, r)
	// Output: pearson(isDivisibleBy3, isDivisibleBy6)=0.6325
}
