// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// options.go — functional options for BuildMesh.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and BuildMesh never panic.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes BuildMesh by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for jitter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale multiplies every position by s. Panics unless s is finite and > 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale(s<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithJitter perturbs every coordinate by N(0, sigma²) after scaling.
// Panics unless sigma is finite and >= 0. A positive sigma needs WithSeed or WithRand.
func WithJitter(sigma float64) BuilderOption {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("builder: WithJitter(sigma<0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

// WithIsolatedVertex appends one vertex that no face references, producing a zero row
// in every vertex-indexed operator.
func WithIsolatedVertex() BuilderOption {
	return func(c *builderConfig) {
		c.isolated = true
	}
}
