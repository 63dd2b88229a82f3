// SPDX-License-Identifier: MIT

package aggregate

import "errors"

var (
	// ErrActualMismatch is returned when two generations or candidates were not
	// evaluated over the same gold-label sequence (they belong to different spaces).
	ErrActualMismatch = errors.New("aggregate: candidates evaluated over different gold labels")

	// ErrReleased is returned when a released generation is read for its vectors.
	ErrReleased = errors.New("aggregate: generation vectors already released")

	// ErrNotCombinator is returned when a leaf op is used where AND/OR/AND_NOT is required.
	ErrNotCombinator = errors.New("aggregate: op is not a combinator")

	// ErrInvalidOptions is returned by Options.Validate for negative limits.
	ErrInvalidOptions = errors.New("aggregate: invalid options")

	// ErrOutOfRange is returned for a candidate index outside a generation.
	ErrOutOfRange = errors.New("aggregate: candidate index out of range")
)
