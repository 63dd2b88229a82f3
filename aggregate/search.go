// SPDX-License-Identifier: MIT

package aggregate

import (
	"github.com/katalvlaran/lvlabel/confusion"
	"github.com/katalvlaran/lvlabel/label"
	"go.uber.org/zap"
)

// Result is the outcome of Fit.
type Result[T any] struct {
	// Tree is the winning predictor, compacted and free of cached vectors.
	Tree *Tree[T]

	// Baseline is the best generation-0 leaf: highest finite MCC, or highest
	// accuracy when no leaf has a finite MCC. Tree.MCC() is never below it.
	Baseline Node

	// BaselineName is the labeling function behind Baseline.
	BaselineName string

	// Rounds counts hill-climb expansions after the initial G0×G0 one.
	Rounds int

	// Scored counts every candidate scored across all expansions.
	Scored int

	// Degenerate is true when no combinator had a finite MCC and the tree is
	// the baseline leaf.
	Degenerate bool
}

// Fit runs the greedy combinatorial search of lfs against golds.
//
// Algorithm:
//  1. Generation 0: one leaf per labeling function, applied to every gold label
//     in order and scored against the derived classes.
//  2. Initial expansion G0×G0 (AND/OR/AND_NOT, self-pairs included), non-finite
//     MCC discarded, ranked by MCC descending. Its top is the current best.
//  3. Hill-climb: expand (pool × G0) keeping MCC ≥ best; when the new top
//     strictly exceeds best, it becomes best and its generation the new pool;
//     otherwise stop. Superseded generations are released right away.
//  4. The best candidate is compacted into Result.Tree.
//
// Degenerate inputs (e.g. single-class gold labels, where every MCC is NaN)
// converge to the baseline leaf instead of failing.
//
// Errors: label validation sentinels and ErrInvalidOptions. Any error aborts
// the whole call; no partial result is returned.
//
// Complexity: O(R·|pool|·|lfs|·|golds|/64) where R is the number of rounds.
func Fit[T any](lfs []label.LabelingFunction[T], golds []label.GoldLabel[T], opts Options) (*Result[T], error) {
	// Stage 1 (Validate + pack ground truth).
	space, err := NewSpace(lfs, golds, opts)
	if err != nil {
		return nil, err
	}
	log := space.log

	// Stage 2 (Generation 0). It anchors every round and lives until the end.
	g0 := space.Leaves()
	defer g0.Release()

	baseline, err := bestLeaf(g0)
	if err != nil {
		return nil, err
	}
	res := &Result[T]{
		Baseline:     baseline.Node(),
		BaselineName: lfs[baseline.Node().LF].Name(),
	}

	// Stage 3 (Initial expansion G0×G0, no threshold).
	pool, err := space.Expand(g0, g0, NoThreshold)
	if err != nil {
		return nil, err
	}
	if pool.Len() == 0 {
		// Nothing is rankable: settle on the baseline leaf.
		log.Warn("aggregate: no candidate with a finite MCC, using baseline leaf",
			zap.String("leaf", res.BaselineName))
		pool.Release()
		return space.finish(res, baseline, true)
	}
	best, _ := pool.At(0)
	log.Debug("aggregate: initial expansion",
		zap.Int("pool", pool.Len()),
		zap.Float64("mcc", best.MCC()))

	// Stage 4 (Hill-climb anchored on G0).
	for opts.MaxRounds == 0 || res.Rounds < opts.MaxRounds {
		next, err := space.Expand(pool, g0, best.MCC())
		if err != nil {
			pool.Release()
			return nil, err
		}
		res.Rounds++

		top, topErr := next.At(0)
		if topErr != nil || !(top.MCC() > best.MCC()) {
			// Empty or no strict improvement: converged.
			next.Release()
			break
		}

		log.Debug("aggregate: round improved",
			zap.Int("round", res.Rounds),
			zap.Int("pool", next.Len()),
			zap.Float64("mcc", top.MCC()))

		// The previous pool is superseded; its nodes stay in the forest.
		pool.Release()
		pool, best = next, top
	}
	pool.Release()

	return space.finish(res, best, false)
}

// finish compacts c into the result tree and logs convergence.
func (s *Space[T]) finish(res *Result[T], c Candidate, degenerate bool) (*Result[T], error) {
	tree, err := s.Tree(c)
	if err != nil {
		return nil, err
	}
	res.Tree = tree
	res.Scored = s.scored
	res.Degenerate = degenerate

	s.log.Info("aggregate: search converged",
		zap.String("tree", tree.String()),
		zap.Float64("mcc", tree.MCC()),
		zap.Float64("accuracy", tree.Matrix().Accuracy()),
		zap.Int("rounds", res.Rounds),
		zap.Int("scored", res.Scored),
		zap.Int("forest", s.forest.Len()))
	return res, nil
}

// bestLeaf picks the generation-0 leaf with the highest finite MCC; when none is
// finite, the one with the highest accuracy. Ties go to the first leaf.
func bestLeaf(g0 *Generation) (Candidate, error) {
	var (
		best    Candidate
		bestKey float64
		found   bool
	)

	// Pass 1: rank by finite MCC.
	for i := 0; i < g0.Len(); i++ {
		c, _ := g0.At(i)
		mcc := c.MCC()
		if !confusion.IsFinite(mcc) {
			continue
		}
		if !found || mcc > bestKey {
			best, bestKey, found = c, mcc, true
		}
	}
	if found {
		return best, nil
	}

	// Pass 2: every MCC undefined, fall back to accuracy (always defined, golds non-empty).
	for i := 0; i < g0.Len(); i++ {
		c, _ := g0.At(i)
		acc := c.Matrix().Accuracy()
		if !found || acc > bestKey {
			best, bestKey, found = c, acc, true
		}
	}
	if !found {
		return Candidate{}, label.ErrNoLabelingFunctions
	}
	return best, nil
}
