// SPDX-License-Identifier: MIT

package dec

import "math"

// DefaultDegeneracyTolerance treats only exact zeros and negatives as degenerate.
const DefaultDegeneracyTolerance = 0.0

// ExactnessTolerance bounds |d1·d0| entries accepted by BuildAll.
const ExactnessTolerance = 1e-10

// Option configures the Hodge builders.
type Option func(*Options)

// Options holds resolved builder settings.
type Options struct {
	Tolerance float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultDegeneracyTolerance}
}

// WithDegeneracyTolerance sets the relative degeneracy threshold (see package doc).
// Panics with ErrBadTolerance on a negative, NaN or infinite eps.
func WithDegeneracyTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(ErrBadTolerance.Error())
	}

	return func(o *Options) { o.Tolerance = eps }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
