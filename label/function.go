// SPDX-License-Identifier: MIT

package label

import (
	"fmt"
	"reflect"
)

// LabelingFunction is a heuristic predictor voting OK, KO or Abstain on a data point.
//
// Contract:
//   - Name is unique within one model and always denotes the same function.
//   - Apply is deterministic and side-effect free for a fixed input.
type LabelingFunction[T any] interface {
	// Name returns the unique identifier of the labeling function.
	Name() string

	// Apply votes on data.
	Apply(data T) Label
}

// Matcher is implemented by labeling functions able to explain their vote by the
// substrings they matched. Used for inspection only, never for scoring.
type Matcher[T any] interface {
	Matches(data T) []string
}

// Weighted is implemented by labeling functions carrying an advisory weight in [0,1].
type Weighted interface {
	Weight() float64
}

// DefaultWeight is the weight reported for labeling functions not implementing Weighted.
const DefaultWeight = 1.0

// MatchesOf returns lf's matched substrings for data, or an empty slice when lf
// does not implement Matcher.
func MatchesOf[T any](lf LabelingFunction[T], data T) []string {
	if m, ok := lf.(Matcher[T]); ok {
		if out := m.Matches(data); out != nil {
			return out
		}
	}
	return []string{}
}

// WeightOf returns lf's weight, or DefaultWeight when lf does not implement Weighted.
func WeightOf[T any](lf LabelingFunction[T]) float64 {
	if w, ok := lf.(Weighted); ok {
		return w.Weight()
	}
	return DefaultWeight
}

// Func adapts a plain Go function into a LabelingFunction.
type Func[T any] struct {
	name    string
	fn      func(T) Label
	weight  float64
	matches func(T) []string
}

// Compile-time interface checks.
var (
	_ LabelingFunction[int] = (*Func[int])(nil)
	_ Matcher[int]          = (*Func[int])(nil)
	_ Weighted              = (*Func[int])(nil)
)

// FuncOption configures a Func at construction time.
type FuncOption[T any] func(*Func[T])

// WithWeight sets the advisory weight; values are clamped to [0,1].
func WithWeight[T any](w float64) FuncOption[T] {
	return func(f *Func[T]) {
		switch {
		case w < 0:
			f.weight = 0
		case w > 1:
			f.weight = 1
		default:
			f.weight = w
		}
	}
}

// WithMatcher attaches an explanation function returning matched substrings.
func WithMatcher[T any](matches func(T) []string) FuncOption[T] {
	return func(f *Func[T]) {
		f.matches = matches
	}
}

// NewFunc returns a labeling function named name delegating to fn.
// A nil fn always abstains.
func NewFunc[T any](name string, fn func(T) Label, opts ...FuncOption[T]) *Func[T] {
	f := &Func[T]{name: name, fn: fn, weight: DefaultWeight}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name implements LabelingFunction.
func (f *Func[T]) Name() string { return f.name }

// Apply implements LabelingFunction.
func (f *Func[T]) Apply(data T) Label {
	if f.fn == nil {
		return Abstain
	}
	return f.fn(data)
}

// Weight implements Weighted.
func (f *Func[T]) Weight() float64 { return f.weight }

// Matches implements Matcher.
func (f *Func[T]) Matches(data T) []string {
	if f.matches == nil {
		return []string{}
	}
	return f.matches(data)
}

// String returns the labeling function name.
func (f *Func[T]) String() string { return f.name }

// ValidateLabelingFunctions checks that lfs is non-empty, holds no nil entry and
// that names are non-empty and unique.
//
// Complexity: O(len(lfs)) time and space.
func ValidateLabelingFunctions[T any](lfs []LabelingFunction[T]) error {
	if len(lfs) == 0 {
		return ErrNoLabelingFunctions
	}

	seen := make(map[string]int, len(lfs))
	for i, lf := range lfs {
		if isNil(lf) {
			return fmt.Errorf("index %d: %w", i, ErrNilLabelingFunction)
		}
		name := lf.Name()
		if name == "" {
			return fmt.Errorf("index %d: %w", i, ErrEmptyName)
		}
		if j, dup := seen[name]; dup {
			return fmt.Errorf("%q at %d and %d: %w", name, j, i, ErrDuplicateName)
		}
		seen[name] = i
	}
	return nil
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// map, slice, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Names returns the labeling function names in order.
func Names[T any](lfs []LabelingFunction[T]) []string {
	out := make([]string, len(lfs))
	for i, lf := range lfs {
		out[i] = lf.Name()
	}
	return out
}
