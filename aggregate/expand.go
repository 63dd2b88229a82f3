// SPDX-License-Identifier: MIT

package aggregate

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/lvlabel/confusion"
	"golang.org/x/sync/errgroup"
)

// NoThreshold disables the MCC filter of Expand: every finite candidate is kept.
var NoThreshold = math.Inf(-1)

// scored is one candidate of an expansion before materialization.
type scored struct {
	left, right int // indices in the left and right generations
	op          Op
	m           confusion.Matrix
	mcc         float64
	keep        bool
}

// Expand combines every pair (a ∈ g1, b ∈ g2) with AND, OR and AND_NOT and
// returns the surviving candidates as a new generation ranked by MCC descending.
//
// Implementation:
//   - Stage 1: Validate ownership and liveness of both generations.
//   - Stage 2: Score all |g1|·|g2|·3 pairs without materializing vectors
//     (optionally in parallel, see Options.Workers).
//   - Stage 3: Keep candidates with a finite MCC ≥ minMCC (NoThreshold keeps all finite).
//   - Stage 4: Stable sort by MCC descending; ties keep enumeration order
//     (a index, b index, AND < OR < AND_NOT).
//   - Stage 5: Truncate to Options.MaxPool when set.
//   - Stage 6: Materialize survivor vectors into the new arena and append their
//     nodes to the forest.
//
// Errors: ErrActualMismatch, ErrReleased.
//
// Complexity: O(|g1|·|g2|·|golds|/64) time; O(|g1|·|g2|) scratch plus
// O(survivors·|golds|/64) for the new arena.
func (s *Space[T]) Expand(g1, g2 *Generation, minMCC float64) (*Generation, error) {
	// Stage 1 (Validate): both sides must share the actual vector and hold vectors.
	if err := s.owns(g1, g2); err != nil {
		return nil, err
	}
	if g1.Released() || g2.Released() {
		return nil, ErrReleased
	}

	// Stage 2 (Score).
	slots := s.score(g1, g2, minMCC)
	s.scored += len(slots)

	// Stage 3 (Filter): in place, preserving enumeration order.
	kept := slots[:0]
	for _, c := range slots {
		if c.keep {
			kept = append(kept, c)
		}
	}

	// Stage 4 (Rank): NaN was filtered out, so cmp.Compare is a total order here.
	slices.SortStableFunc(kept, func(a, b scored) int {
		return cmp.Compare(b.mcc, a.mcc)
	})

	// Stage 5 (Cap).
	if s.opts.MaxPool > 0 && len(kept) > s.opts.MaxPool {
		kept = kept[:s.opts.MaxPool]
	}

	// Stage 6 (Materialize).
	g := s.newGeneration(len(kept))
	for k, c := range kept {
		combineInto(g.vec(k), g1.vec(c.left), g2.vec(c.right), c.op)
		g.ids = append(g.ids, s.forest.add(Node{
			Op:     c.op,
			LF:     -1,
			Left:   g1.ids[c.left],
			Right:  g2.ids[c.right],
			Matrix: c.m,
		}))
	}
	return g, nil
}

// score evaluates every (a, b, op) triple. Slot positions are fixed by
// enumeration order, so the parallel path fills exactly the same slice as the
// sequential one.
func (s *Space[T]) score(g1, g2 *Generation, minMCC float64) []scored {
	var (
		nR    = g2.Len()
		nOps  = len(combinators)
		slots = make([]scored, g1.Len()*nR*nOps)
	)

	row := func(a int) {
		l := g1.vec(a)
		for b := 0; b < nR; b++ {
			r := g2.vec(b)
			for k, op := range combinators {
				m := scoreCombined(op, l, r, s.actual.bits, s.actual.n)
				mcc := m.MCC()
				slots[(a*nR+b)*nOps+k] = scored{
					left:  a,
					right: b,
					op:    op,
					m:     m,
					mcc:   mcc,
					keep:  confusion.IsFinite(mcc) && mcc >= minMCC,
				}
			}
		}
	}

	if s.opts.Workers <= 1 || g1.Len() < 2 {
		for a := 0; a < g1.Len(); a++ {
			row(a)
		}
		return slots
	}

	// Rows only read the two generations and write disjoint slots.
	var eg errgroup.Group
	eg.SetLimit(s.opts.Workers)
	for a := 0; a < g1.Len(); a++ {
		a := a
		eg.Go(func() error {
			row(a)
			return nil
		})
	}
	_ = eg.Wait() // rows never fail

	return slots
}

// Scored returns the number of candidates scored by Expand so far.
func (s *Space[T]) Scored() int { return s.scored }
