// SPDX-License-Identifier: MIT

package aggregate

import (
	"fmt"

	"github.com/katalvlaran/lvlabel/confusion"
	"github.com/katalvlaran/lvlabel/label"
	"go.uber.org/zap"
)

// actual is the packed ground truth of one gold-label ordering.
// Generations built over the same actual can be combined.
type actual struct {
	n    int
	bits bitvec
}

// Space binds an ordered list of labeling functions to one fixed ordering of
// gold labels. Every candidate it produces is scored against the same actual
// vector, which is what makes any two of them combinable.
//
// A Space is not safe for concurrent use; Expand parallelizes internally when
// Options.Workers > 1.
type Space[T any] struct {
	lfs    []label.LabelingFunction[T]
	golds  []label.GoldLabel[T]
	actual *actual
	forest *Forest
	opts   Options
	log    *zap.Logger
	scored int
}

// NewSpace validates lfs and golds and packs the gold classes.
//
// Errors: label validation sentinels (ErrNoLabelingFunctions, ErrDuplicateName,
// ErrNoGoldLabels, ErrMixedCategories, ...) and ErrInvalidOptions.
func NewSpace[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T], opts Options) (*Space[T], error) {
	// Stage 1 (Validate): options, labeling functions, then gold labels.
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := label.ValidateLabelingFunctions(lfs); err != nil {
		return nil, err
	}
	if _, err := label.ValidateGoldLabels(golds); err != nil {
		return nil, err
	}

	// Stage 2 (Pack): one bit per gold label, set when the derived class is OK.
	n := len(golds)
	act := &actual{n: n, bits: make(bitvec, wordsFor(n))}
	for i := range golds {
		if golds[i].Class() == label.OK {
			act.bits.set(i)
		}
	}

	return &Space[T]{
		lfs:    lfs,
		golds:  golds,
		actual: act,
		forest: &Forest{},
		opts:   opts,
		log:    opts.logger(),
	}, nil
}

// Forest exposes the node arena.
func (s *Space[T]) Forest() *Forest { return s.forest }

// Actual returns the derived gold classes in space order.
func (s *Space[T]) Actual() []label.Label {
	return unpack(s.actual.bits, s.actual.n)
}

// Leaves builds generation 0: one leaf per labeling function, applied to every
// gold label in order. Leaves are kept regardless of their MCC since they anchor
// every later expansion.
//
// Complexity: O(|lfs|·|golds|) labeling-function calls.
func (s *Space[T]) Leaves() *Generation {
	var (
		n = s.actual.n
		w = wordsFor(n)
		g = s.newGeneration(len(s.lfs))
	)
	for i, lf := range s.lfs {
		votes := bitvec(g.arena[i*w : (i+1)*w : (i+1)*w])
		for j := range s.golds {
			// Leaf semantics: only an explicit OK is OK; ABSTAIN collapses to KO.
			if lf.Apply(s.golds[j].Data) == label.OK {
				votes.set(j)
			}
		}
		m := scoreVec(votes, s.actual.bits, n)
		g.ids = append(g.ids, s.forest.add(Node{Op: OpLeaf, LF: i, Left: noChild, Right: noChild, Matrix: m}))
	}
	s.log.Debug("aggregate: generation 0 built",
		zap.Int("leaves", len(s.lfs)),
		zap.Int("gold_labels", n))
	return g
}

// Combine builds op(a, b) as a single-candidate generation.
//
// Preconditions: a and b come from this space and their generations still hold
// vectors; op is a combinator.
func (s *Space[T]) Combine(op Op, a, b Candidate) (Candidate, error) {
	if !op.IsCombinator() {
		return Candidate{}, fmt.Errorf("%s: %w", op, ErrNotCombinator)
	}
	if err := s.owns(a.gen, b.gen); err != nil {
		return Candidate{}, err
	}
	l, err := a.vector()
	if err != nil {
		return Candidate{}, err
	}
	r, err := b.vector()
	if err != nil {
		return Candidate{}, err
	}

	g := s.newGeneration(1)
	dst := g.vec(0)
	combineInto(dst, l, r, op)
	m := scoreVec(dst, s.actual.bits, s.actual.n)
	g.ids = append(g.ids, s.forest.add(Node{Op: op, LF: -1, Left: a.ID(), Right: b.ID(), Matrix: m}))
	return g.At(0)
}

// Tree compacts the subtree of c into a standalone, vector-free Tree.
func (s *Space[T]) Tree(c Candidate) (*Tree[T], error) {
	if err := s.owns(c.gen); err != nil {
		return nil, err
	}
	nodes, root := s.forest.compact(c.ID())
	return &Tree[T]{lfs: s.lfs, nodes: nodes, root: root}, nil
}

// owns checks that every generation was produced by this space.
func (s *Space[T]) owns(gens ...*Generation) error {
	for _, g := range gens {
		if g == nil || g.origin != s.actual {
			return ErrActualMismatch
		}
	}
	return nil
}

// newGeneration allocates a generation arena for capacity candidates.
func (s *Space[T]) newGeneration(capacity int) *Generation {
	w := wordsFor(s.actual.n)
	return &Generation{
		origin: s.actual,
		forest: s.forest,
		words:  w,
		ids:    make([]int, 0, capacity),
		arena:  make([]uint64, capacity*w),
	}
}

// unpack decodes n packed decisions into OK/KO labels.
func unpack(v bitvec, n int) []label.Label {
	out := make([]label.Label, n)
	for i := 0; i < n; i++ {
		if v.get(i) {
			out[i] = label.OK
		} else {
			out[i] = label.KO
		}
	}
	return out
}

// Generation is a round-scoped arena: the candidates of one search round and
// their packed predicted vectors, stored contiguously. Release drops the arena;
// structure and confusion matrices stay in the forest.
type Generation struct {
	origin   *actual
	forest   *Forest
	words    int
	ids      []int
	arena    []uint64
	released bool
}

// Len returns the number of candidates in the generation.
func (g *Generation) Len() int { return len(g.ids) }

// Released reports whether the vectors have been dropped.
func (g *Generation) Released() bool { return g.released }

// Release drops the predicted vectors of every candidate in the generation.
func (g *Generation) Release() {
	g.arena = nil
	g.released = true
}

// At returns a handle on candidate i.
func (g *Generation) At(i int) (Candidate, error) {
	if i < 0 || i >= len(g.ids) {
		return Candidate{}, ErrOutOfRange
	}
	return Candidate{gen: g, idx: i}, nil
}

// vec returns the packed vector of candidate i; the generation must not be released.
func (g *Generation) vec(i int) bitvec {
	lo, hi := i*g.words, (i+1)*g.words
	return g.arena[lo:hi:hi]
}

// Candidate is a handle on one scored predictor inside a Generation.
// The zero value belongs to no space: ID is -1, Matrix is empty and every
// operation needing vectors or ownership fails with ErrActualMismatch.
type Candidate struct {
	gen *Generation
	idx int
}

// ID returns the candidate's forest index.
func (c Candidate) ID() int {
	if c.gen == nil {
		return noChild
	}
	return c.gen.ids[c.idx]
}

// Node returns the candidate's arena node.
func (c Candidate) Node() Node {
	if c.gen == nil {
		return Node{LF: noChild, Left: noChild, Right: noChild}
	}
	return c.gen.forest.nodes[c.ID()]
}

// Matrix returns the candidate's confusion matrix on the space's gold labels.
func (c Candidate) Matrix() confusion.Matrix { return c.Node().Matrix }

// MCC is shorthand for Matrix().MCC().
func (c Candidate) MCC() float64 { return c.Matrix().MCC() }

// Predicted decodes the candidate's predicted labels, aligned with the gold labels.
func (c Candidate) Predicted() ([]label.Label, error) {
	v, err := c.vector()
	if err != nil {
		return nil, err
	}
	return unpack(v, c.gen.origin.n), nil
}

// vector returns the packed predicted vector or ErrReleased.
func (c Candidate) vector() (bitvec, error) {
	if c.gen == nil {
		return nil, ErrActualMismatch
	}
	if c.gen.Released() {
		return nil, ErrReleased
	}
	return c.gen.vec(c.idx), nil
}
