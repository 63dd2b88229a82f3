// SPDX-License-Identifier: MIT

package aggregate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Options configures the search.
//
// Fields:
//   - Workers: goroutines scoring one expansion; 0 or 1 means sequential.
//     Rankings are identical for every value.
//   - MaxRounds: hill-climb rounds after the initial G0×G0 expansion; 0 means
//     run until the best MCC stops strictly improving.
//   - MaxPool: keep at most this many ranked candidates per round; 0 means
//     unbounded. Bounds memory on inputs with many equally-scoring candidates.
//   - Logger: receives one Debug record per round; nil means zap.NewNop().
//
// Example (YAML, see ParseOptions):
//
//	workers: 4
//	max_rounds: 0
//	max_pool: 5000
type Options struct {
	Workers   int         `yaml:"workers" json:"workers"`
	MaxRounds int         `yaml:"max_rounds" json:"max_rounds"`
	MaxPool   int         `yaml:"max_pool" json:"max_pool"`
	Logger    *zap.Logger `yaml:"-" json:"-"`
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets Options.Workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxRounds sets Options.MaxRounds.
func WithMaxRounds(n int) Option {
	return func(o *Options) { o.MaxRounds = n }
}

// WithMaxPool sets Options.MaxPool.
func WithMaxPool(n int) Option {
	return func(o *Options) { o.MaxPool = n }
}

// WithLogger sets Options.Logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns a sequential, unbounded search run to convergence
// with a silent logger.
func DefaultOptions() Options {
	return Options{
		Workers:   1,
		MaxRounds: 0,
		MaxPool:   0,
		Logger:    nil,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate rejects negative limits.
func (o Options) Validate() error {
	if o.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", o.Workers, ErrInvalidOptions)
	}
	if o.MaxRounds < 0 {
		return fmt.Errorf("max_rounds=%d: %w", o.MaxRounds, ErrInvalidOptions)
	}
	if o.MaxPool < 0 {
		return fmt.Errorf("max_pool=%d: %w", o.MaxPool, ErrInvalidOptions)
	}
	return nil
}

// ParseOptions decodes YAML (or JSON, a YAML subset) over DefaultOptions and validates
// the result. Unknown keys are rejected.
func ParseOptions(data []byte) (Options, error) {
	o := DefaultOptions()
	if err := decodeStrict(data, &o); err != nil {
		return DefaultOptions(), fmt.Errorf("parse options: %w", err)
	}
	if err := o.Validate(); err != nil {
		return DefaultOptions(), err
	}
	return o, nil
}

// logger returns the configured logger or a no-op one.
func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// decodeStrict decodes one YAML document into v, rejecting unknown fields.
// An empty document leaves v untouched.
func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
