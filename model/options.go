// SPDX-License-Identifier: MIT

package model

import (
	"github.com/katalvlaran/lvlabel/aggregate"
	"github.com/katalvlaran/lvlabel/summary"
	"go.uber.org/zap"
)

// config gathers what New accepts.
type config struct {
	search aggregate.Options
	metric summary.Metric
}

// Option configures a TreeLabelModel.
type Option func(*config)

// WithOptions replaces the search options wholesale, e.g. with the result of
// aggregate.ParseOptions. Later options still apply on top.
func WithOptions(o aggregate.Options) Option {
	return func(c *config) { c.search = o }
}

// WithLogger sets the logger used by Fit and the search.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.search.Logger = l }
}

// WithWorkers sets the number of scoring goroutines per expansion.
func WithWorkers(n int) Option {
	return func(c *config) { c.search.Workers = n }
}

// WithMetric sets the correlation metric used by Diagnose (default Pearson).
func WithMetric(m summary.Metric) Option {
	return func(c *config) { c.metric = m }
}

func newConfig(opts []Option) config {
	c := config{search: aggregate.DefaultOptions(), metric: summary.Pearson}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) logger() *zap.Logger {
	if c.search.Logger == nil {
		return zap.NewNop()
	}
	return c.search.Logger
}
