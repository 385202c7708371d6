// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrFactorization classifies every failure of Cache.Get (see FactorizationError).
	ErrFactorization = errors.New("factor: factorization failed")

	// ErrNotPositiveDefinite indicates a pivot ≤ 0 or NaN during Cholesky.
	ErrNotPositiveDefinite = errors.New("factor: matrix is not positive definite")

	// ErrNotSymmetric indicates values asymmetric beyond the symmetry tolerance.
	ErrNotSymmetric = errors.New("factor: matrix is not symmetric")

	// ErrPatternMismatch indicates a matrix whose pattern differs from the analyzed one.
	ErrPatternMismatch = errors.New("factor: nonzero pattern differs from symbolic analysis")

	// ErrBackendMismatch indicates a handle produced by a different backend.
	ErrBackendMismatch = errors.New("factor: handle belongs to another backend")

	// ErrReleased indicates use of a released handle.
	ErrReleased = errors.New("factor: handle has been released")

	// ErrClosed indicates use of a closed Cache.
	ErrClosed = errors.New("factor: cache is closed")

	// ErrNilMatrix indicates a nil matrix passed to New.
	ErrNilMatrix = errors.New("factor: matrix is nil")

	// ErrNonSquare indicates a non-square matrix passed to New.
	ErrNonSquare = errors.New("factor: matrix is not square")
)

// Stages reported by FactorizationError.
const (
	StageAnalyze   = "analyze"
	StageFactorize = "factorize"
)

// FactorizationError reports a failed Get. errors.Is matches both ErrFactorization
// and the underlying cause.
type FactorizationError struct {
	Stage   string // StageAnalyze or StageFactorize
	Backend string // Backend.Name()
	Err     error  // cause
}

func (e *FactorizationError) Error() string {
	return fmt.Sprintf("factor: %s (%s backend): %v", e.Stage, e.Backend, e.Err)
}

// Unwrap exposes ErrFactorization and the cause.
func (e *FactorizationError) Unwrap() []error { return []error{ErrFactorization, e.Err} }
