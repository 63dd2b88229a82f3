// SPDX-License-Identifier: MIT

package label

import (
	"fmt"

	"github.com/google/uuid"
)

// GoldLabel is a ground-truth record: a data point annotated for one category.
//
// The four flags follow the annotation workflow: a record marked as a true
// positive or a false negative belongs to the category (class OK); anything
// else does not (class KO).
type GoldLabel[T any] struct {
	ID       string
	Category string
	Data     T

	IsTruePositive  bool
	IsFalseNegative bool
	IsTrueNegative  bool
	IsFalsePositive bool
}

// NewGoldLabel returns a gold label for category with a fresh UUID identifier.
// ok=true flags the record as a true positive, ok=false as a true negative.
func NewGoldLabel[T any](category string, data T, ok bool) GoldLabel[T] {
	return GoldLabel[T]{
		ID:             uuid.NewString(),
		Category:       category,
		Data:           data,
		IsTruePositive: ok,
		IsTrueNegative: !ok,
	}
}

// Class returns the derived binary ground truth: OK iff IsTruePositive or
// IsFalseNegative, KO otherwise.
func (g GoldLabel[T]) Class() Label {
	if g.IsTruePositive || g.IsFalseNegative {
		return OK
	}
	return KO
}

// Classes returns the derived classes of golds in order.
func Classes[T any](golds []GoldLabel[T]) []Label {
	out := make([]Label, len(golds))
	for i := range golds {
		out[i] = golds[i].Class()
	}
	return out
}

// ValidateGoldLabels checks that golds is non-empty and that every record shares
// the category of the first one, which is returned.
//
// Complexity: O(len(golds)).
func ValidateGoldLabels[T any](golds []GoldLabel[T]) (string, error) {
	if len(golds) == 0 {
		return "", ErrNoGoldLabels
	}
	category := golds[0].Category
	for i := 1; i < len(golds); i++ {
		if golds[i].Category != category {
			return "", fmt.Errorf("%q at index 0, %q at index %d: %w",
				category, golds[i].Category, i, ErrMixedCategories)
		}
	}
	return category, nil
}
