// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrNotFitted is returned by prediction and diagnostic methods before Fit.
	ErrNotFitted = errors.New("model: not fitted")

	// ErrCategoryMismatch is returned for gold labels of another category than the fitted one.
	ErrCategoryMismatch = errors.New("model: gold label category differs from the fitted one")

	// ErrNilBackend is returned by TrainBackend for a nil backend.
	ErrNilBackend = errors.New("model: nil backend")
)
