// Package eval - sentinel errors, options and their YAML form.
package eval

import (
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors for evaluator configuration and limits.
var (
	// ErrBadOption indicates an invalid Options combination.
	ErrBadOption = errors.New("eval: invalid options")

	// ErrIterationLimit indicates a loop exceeded Options.MaxIterations.
	// It surfaces wrapped in a *diag.Error carrying the loop coordinate.
	ErrIterationLimit = errors.New("eval: iteration limit exceeded")
)

// Options configures one Interp.
//
//	MaxIterations  - hard cap on WHILE/PRODUCT iterations; 0 disables the
//	                 cap. The cap is a safety valve, not part of the
//	                 language contract: a runaway loop is the author's
//	                 responsibility.
//	RangeStep      - step used by RANGE nodes without an explicit step.
//	ProductOfRange - PRODUCT node semantics switch. The source language
//	                 implements \prod as a second \while: it iterates
//	                 while the condition holds and yields the last body
//	                 value. That is almost certainly a defect, but the
//	                 existing corpus depends on it, so false (the default)
//	                 preserves it bit for bit. True switches PRODUCT to
//	                 multiply the body values across iterations instead.
type Options struct {
	MaxIterations  int     `yaml:"max_iterations"`
	RangeStep      float64 `yaml:"range_step"`
	ProductOfRange bool    `yaml:"product_of_range"`

	// Logger receives per-statement trace events at debug level.
	// Disabled by default.
	Logger zerolog.Logger `yaml:"-"`
}

// DefaultOptions returns the safe defaults:
//
//	MaxIterations:  0     (no cap)
//	RangeStep:      0.1   (the language's implicit step)
//	ProductOfRange: false (preserve the source quirk)
//	Logger:         zerolog.Nop()
func DefaultOptions() Options {
	return Options{
		MaxIterations:  0,
		RangeStep:      0.1,
		ProductOfRange: false,
		Logger:         zerolog.Nop(),
	}
}

// Validate checks the option fields hold a usable combination. It returns
// ErrBadOption when MaxIterations is negative or RangeStep is not
// strictly positive.
func (o *Options) Validate() error {
	if o.MaxIterations < 0 {
		return ErrBadOption
	}
	if o.RangeStep <= 0 {
		return ErrBadOption
	}
	return nil
}

// Option mutates an Options instance.
type Option func(*Options)

// WithMaxIterations caps WHILE/PRODUCT loops at n iterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithRangeStep sets the implicit RANGE step.
func WithRangeStep(step float64) Option {
	return func(o *Options) { o.RangeStep = step }
}

// WithProductOfRange switches PRODUCT from the preserved while-loop quirk
// to true product-of-iterations semantics.
func WithProductOfRange(on bool) Option {
	return func(o *Options) { o.ProductOfRange = on }
}

// WithLogger attaches a trace logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
