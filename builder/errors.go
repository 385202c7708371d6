// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; option constructors panic instead.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below the
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that jitter was requested without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a draft that could not be turned
// into a mesh.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid parameter value that surfaces at build time,
// such as an unknown Platonic solid.
var ErrOptionViolation = errors.New("builder: invalid option value")
