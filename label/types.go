// SPDX-License-Identifier: MIT

package label

import (
	"errors"
	"strconv"
)

// Label is the vote of a labeling function or the decision of a model.
type Label int

const (
	// Abstain means the labeling function has no opinion on the data point.
	Abstain Label = -1

	// KO is the negative class.
	KO Label = 0

	// OK is the positive class.
	OK Label = 1
)

// Valid reports whether l is one of Abstain, KO, OK.
func (l Label) Valid() bool {
	return l == Abstain || l == KO || l == OK
}

// String returns "ABSTAIN", "KO", "OK" or "Label(n)" for foreign values.
func (l Label) String() string {
	switch l {
	case Abstain:
		return "ABSTAIN"
	case KO:
		return "KO"
	case OK:
		return "OK"
	default:
		return "Label(" + strconv.Itoa(int(l)) + ")"
	}
}

// Sentinel errors. All validation helpers return these (possibly wrapped with
// context via fmt.Errorf("%w")); callers match them with errors.Is.
var (
	// ErrNoGoldLabels is returned when an empty gold-label set is supplied.
	ErrNoGoldLabels = errors.New("label: no gold labels")

	// ErrMixedCategories is returned when gold labels span more than one category.
	ErrMixedCategories = errors.New("label: gold labels span more than one category")

	// ErrNoLabelingFunctions is returned when no labeling function is supplied.
	ErrNoLabelingFunctions = errors.New("label: no labeling functions")

	// ErrNilLabelingFunction is returned when the labeling function list holds a nil entry.
	ErrNilLabelingFunction = errors.New("label: nil labeling function")

	// ErrEmptyName is returned for a labeling function with an empty name.
	ErrEmptyName = errors.New("label: labeling function name is empty")

	// ErrDuplicateName is returned when two labeling functions share a name.
	ErrDuplicateName = errors.New("label: duplicate labeling function name")
)
