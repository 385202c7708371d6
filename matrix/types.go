// SPDX-License-Identifier: MIT

// Package matrix: the scalar field constraint and its helpers.
//
// Builders are written once against Scalar and instantiated for float64 and
// complex128. Geometric quantities are always real; FromReal promotes them into the
// target field, so complex operators carry a zero imaginary part.
package matrix

import (
	"math"
	"math/cmplx"
)

// Scalar is the field of matrix entries.
type Scalar interface {
	float64 | complex128
}

// FromReal promotes a real value into T.
func FromReal[T Scalar](x float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}

	return z
}

// Abs returns |x| (modulus for complex values).
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}

	return 0
}

// IsFinite reports whether x has no NaN or infinite component.
func IsFinite[T Scalar](x T) bool {
	switch v := any(x).(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case complex128:
		return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
	}

	return false
}

// Key addresses one entry.
type Key struct {
	Row, Col int
}

// Entry is one stored (row, col, value) triple.
type Entry[T Scalar] struct {
	Row, Col int
	Val      T
}
