// SPDX-License-Identifier: MIT

package summary

import "errors"

var (
	// ErrUnknownMetric is returned for a correlation metric outside Pearson/Spearman/Kendall.
	ErrUnknownMetric = errors.New("summary: unknown correlation metric")

	// ErrUnknownName is returned by Table.Get for a name absent from the table.
	ErrUnknownName = errors.New("summary: unknown labeling function name")

	// ErrNoData is returned when a feature matrix is requested for zero data points.
	ErrNoData = errors.New("summary: no data points")
)
