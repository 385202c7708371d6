// SPDX-License-Identifier: MIT

package dec

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the builders.
var (
	// ErrDegenerateGeometry indicates a zero or negative area, length or dual area.
	ErrDegenerateGeometry = errors.New("dec: degenerate geometry")

	// ErrNonFinite indicates an operator entry that evaluated to ±Inf or NaN.
	ErrNonFinite = errors.New("dec: non-finite operator entry")

	// ErrOrientation indicates connectivity whose orientation data cannot satisfy d1·d0 = 0.
	ErrOrientation = errors.New("dec: inconsistent orientation")

	// ErrNotTriangle indicates a non-triangular face fed to a cotangent-based builder.
	ErrNotTriangle = errors.New("dec: face is not a triangle")

	// ErrBadTolerance indicates a negative or non-finite degeneracy tolerance.
	ErrBadTolerance = errors.New("dec: degeneracy tolerance must be finite and >= 0")

	// ErrNilMesh indicates a nil connectivity or embedding.
	ErrNilMesh = errors.New("dec: mesh is nil")
)

// Element kinds reported by ElementError.
const (
	KindVertex   = "vertex"
	KindEdge     = "edge"
	KindFace     = "face"
	KindHalfedge = "halfedge"
)

// ElementError pinpoints the mesh element at which a builder failed.
type ElementError struct {
	Op    string  // builder name, e.g. "BuildHodge2"
	Kind  string  // KindVertex, KindEdge, KindFace or KindHalfedge
	Index int     // element index
	Value float64 // offending quantity (area, length, entry); NaN when not numeric
	Err   error   // sentinel cause
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s: %s %d (value %g): %v", e.Op, e.Kind, e.Index, e.Value, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ElementError) Unwrap() error { return e.Err }

func elementErr(op, kind string, index int, value float64, err error) error {
	return &ElementError{Op: op, Kind: kind, Index: index, Value: value, Err: err}
}
