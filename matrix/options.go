// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options propagate only on creation; Clone preserves the source's policy.
package matrix

// DefaultValidateNaNInf is the creation-time NaN/Inf policy of NewSparse.
// It is off so that operator builders can store and then report faults themselves.
const DefaultValidateNaNInf = false

// Option mutates construction options.
type Option func(*Options)

// Options holds the resolved construction policy.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf makes Set/Add reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf stores any value, including NaN and ±Inf (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the documented defaults, last one wins.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
