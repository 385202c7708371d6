// SPDX-License-Identifier: MIT

package factor

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// DefaultSymmetryTolerance bounds |A[i,j] − A[j,i]| accepted before numeric factorization.
const DefaultSymmetryTolerance = 1e-10

// Option configures a Cache.
type Option func(*cacheConfig)

type cacheConfig struct {
	backend Backend
	log     logrus.FieldLogger
	symTol  float64
}

func defaultConfig() cacheConfig {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return cacheConfig{backend: NewNativeBackend(), log: l, symTol: DefaultSymmetryTolerance}
}

// WithBackend selects the numerical kernel. Panics on nil.
func WithBackend(b Backend) Option {
	if b == nil {
		panic("factor: WithBackend(nil)")
	}

	return func(c *cacheConfig) { c.backend = b }
}

// WithLogger routes state transitions to l (Debug) and failures to l (Warn). Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("factor: WithLogger(nil)")
	}

	return func(c *cacheConfig) { c.log = l }
}

// WithSymmetryTolerance sets the absolute symmetry tolerance. Panics unless tol ≥ 0 and finite.
func WithSymmetryTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic("factor: WithSymmetryTolerance requires a finite tol ≥ 0")
	}

	return func(c *cacheConfig) { c.symTol = tol }
}

// BackendByName resolves "native" or "dense".
func BackendByName(name string) (Backend, bool) {
	switch name {
	case nativeName:
		return NewNativeBackend(), true
	case denseName:
		return NewDenseBackend(), true
	default:
		return nil, false
	}
}
