// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil   (pure/deterministic unless seeded)
//   • scale    = 1.0
//   • jitter   = 0.0
//   • isolated = false

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by BuildMesh.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means “no randomness”
	scale    float64    // >0
	jitter   float64    // >=0, Gaussian sigma per coordinate
	isolated bool       // append one unreferenced vertex
}

const (
	defaultScale  = 1.0
	defaultJitter = 0.0
)

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale:  defaultScale,
		jitter: defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// meshDraft accumulates positions and faces. Each constructor appends a
// disconnected component, offsetting its local vertex indices.
type meshDraft struct {
	positions []r3.Vec
	faces     [][]int
}

// add appends one component given in local indices.
func (d *meshDraft) add(positions []r3.Vec, faces [][]int) {
	base := len(d.positions)
	d.positions = append(d.positions, positions...)
	for _, f := range faces {
		face := make([]int, len(f))
		for i, v := range f {
			face[i] = base + v
		}
		d.faces = append(d.faces, face)
	}
}
