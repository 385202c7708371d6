// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in order into
//     one draft, then post-processes positions (isolated vertex, scale, jitter).
//   - Constructors are declared below and implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/ddg/core"
	"github.com/katalvlaran/ddg/geometry"
)

const methodBuildMesh = "BuildMesh"

// Constructor appends one mesh component to the draft. Constructors MUST validate
// parameters early, return sentinel errors (no panics) and emit vertices and faces
// in a stable, documented order.
type Constructor func(d *meshDraft, cfg builderConfig) error

// BuildMesh resolves bopts, applies all constructors in order and binds the resulting
// positions to a new halfedge mesh. Several constructors produce a disjoint union;
// vertex indices follow constructor order.
//
// Post-processing order: isolated vertex, then scale, then jitter.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or an empty draft.
//   - ErrNeedRandSource when WithJitter(sigma > 0) has no RNG.
//   - Constructor sentinels and core/geometry errors, wrapped with "BuildMesh: %w".
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*geometry.Geometry, error) {
	cfg := newBuilderConfig(bopts...)

	d := &meshDraft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildMesh, i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildMesh, err)
		}
	}

	if cfg.isolated {
		d.positions = append(d.positions, isolatedPosition(d.positions))
	}
	if len(d.positions) == 0 {
		return nil, fmt.Errorf("%s: empty draft: %w", methodBuildMesh, ErrConstructFailed)
	}
	for i := range d.positions {
		d.positions[i] = r3.Scale(cfg.scale, d.positions[i])
	}
	if cfg.jitter > 0 {
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: jitter %g: %w", methodBuildMesh, cfg.jitter, ErrNeedRandSource)
		}
		for i, p := range d.positions {
			d.positions[i] = r3.Vec{
				X: p.X + cfg.jitter*cfg.rng.NormFloat64(),
				Y: p.Y + cfg.jitter*cfg.rng.NormFloat64(),
				Z: p.Z + cfg.jitter*cfg.rng.NormFloat64(),
			}
		}
	}

	mesh, err := core.NewMesh(len(d.positions), d.faces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildMesh, err)
	}
	g, err := geometry.New(mesh, d.positions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildMesh, err)
	}

	return g, nil
}

// isolatedPosition places the extra vertex one unit past the largest x so that it
// never coincides with a mesh vertex.
func isolatedPosition(positions []r3.Vec) r3.Vec {
	if len(positions) == 0 {
		return r3.Vec{}
	}
	maxX := positions[0].X
	for _, p := range positions[1:] {
		maxX = max(maxX, p.X)
	}

	return r3.Vec{X: maxX + 1}
}
