// SPDX-License-Identifier: MIT

// Package matrix: centralized validators.
//
// Every kernel validates through these helpers so that error priority is uniform:
// nil → shape → numeric policy → structural violation.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf tags validator failures for grep-ability.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix for a nil matrix.
func ValidateNotNil[T Scalar](m *Sparse[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrNonSquare unless Rows == Cols.
func ValidateSquare[T Scalar](m *Sparse[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%s: %w", describe(m), ErrNonSquare))
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have equal shapes.
func ValidateSameShape[T Scalar](a, b *Sparse[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%s vs %s: %w", describe(a), describe(b), ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible returns ErrDimensionMismatch unless a.Cols == b.Rows.
func ValidateMulCompatible[T Scalar](a, b *Sparse[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%s · %s: %w", describe(a), describe(b), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen returns ErrDimensionMismatch unless got == want.
func ValidateVecLen(got, want int) error {
	if got != want {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", got, want, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] − A[j,i]| ≤ tol over the union of both patterns.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(nnz).
func ValidateSymmetric[T Scalar](m *Sparse[T], tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)
	for k, v := range m.data {
		if k.Row >= k.Col {
			continue
		}
		w := m.data[Key{k.Col, k.Row}]
		if d := Abs(v - w); !(d <= tol) {
			return validatorErrorf("ValidateSymmetric",
				fmt.Errorf("(%d,%d) differs by %g: %w", k.Row, k.Col, d, ErrAsymmetry))
		}
	}
	// entries stored only below the diagonal
	for k, v := range m.data {
		if k.Row <= k.Col {
			continue
		}
		if _, ok := m.data[Key{k.Col, k.Row}]; ok {
			continue
		}
		if d := Abs(v); !(d <= tol) {
			return validatorErrorf("ValidateSymmetric",
				fmt.Errorf("(%d,%d) differs by %g: %w", k.Row, k.Col, d, ErrAsymmetry))
		}
	}

	return nil
}
