// SPDX-License-Identifier: MIT
//
// File: operators.go
// Role: combined assembly and the operators composed from the five primitives.

package dec

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ddg/matrix"
)

const (
	opBuildAll    = "BuildAll"
	opLaplacian   = "BuildLaplacian"
	opMassShifted = "BuildMassShifted"
)

// Operators bundles the five operators of one mesh snapshot.
type Operators[T matrix.Scalar] struct {
	Hodge0, Hodge1, Hodge2   *matrix.Sparse[T]
	Derivative0, Derivative1 *matrix.Sparse[T]
}

// BuildAll assembles all five operators concurrently and verifies d1·d0 = 0.
//
// The builders share g read-only. The first failure cancels the group and is returned;
// ctx cancellation before a builder starts is reported as ctx.Err().
func BuildAll[T matrix.Scalar](ctx context.Context, g Embedding, opts ...Option) (*Operators[T], error) {
	if isNil(g) {
		return nil, fmt.Errorf("%s: %w", opBuildAll, ErrNilMesh)
	}
	var ops Operators[T]
	eg, ctx := errgroup.WithContext(ctx)
	run := func(dst **matrix.Sparse[T], build func() (*matrix.Sparse[T], error)) {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := build()
			if err != nil {
				return err
			}
			*dst = m
			return nil
		})
	}
	run(&ops.Hodge0, func() (*matrix.Sparse[T], error) { return BuildHodge0[T](g, opts...) })
	run(&ops.Hodge1, func() (*matrix.Sparse[T], error) { return BuildHodge1[T](g, opts...) })
	run(&ops.Hodge2, func() (*matrix.Sparse[T], error) { return BuildHodge2[T](g, opts...) })
	run(&ops.Derivative0, func() (*matrix.Sparse[T], error) { return BuildDerivative0[T](g) })
	run(&ops.Derivative1, func() (*matrix.Sparse[T], error) { return BuildDerivative1[T](g) })
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildAll, err)
	}
	if err := CheckExactness(ops.Derivative0, ops.Derivative1, ExactnessTolerance); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildAll, err)
	}

	return &ops, nil
}

// BuildLaplacian returns the cotangent Laplacian L = d0ᵀ ⋆1 d0 (nV×nV, symmetric,
// positive semidefinite when all edge weights are non-negative).
func BuildLaplacian(g Embedding, opts ...Option) (*matrix.Sparse[float64], error) {
	d0, err := BuildDerivative0[float64](g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}
	h1, err := BuildHodge1[float64](g, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}

	return laplacian(d0, h1)
}

func laplacian(d0, h1 *matrix.Sparse[float64]) (*matrix.Sparse[float64], error) {
	weighted, err := matrix.Mul(h1, d0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}
	d0t, err := matrix.Transpose(d0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}
	l, err := matrix.Mul(d0t, weighted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}

	return l, nil
}

// BuildMassShifted returns ⋆0 + t·L, the system matrix of one implicit heat step.
// For t > 0 on a mesh without isolated vertices it is symmetric positive definite.
// An isolated vertex leaves an explicit zero on the diagonal.
//
// Errors: ErrNonFinite for a NaN or infinite t, plus any builder error.
func BuildMassShifted(g Embedding, t float64, opts ...Option) (*matrix.Sparse[float64], error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("%s: t=%g: %w", opMassShifted, t, ErrNonFinite)
	}
	h0, err := BuildHodge0[float64](g, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMassShifted, err)
	}
	l, err := BuildLaplacian(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMassShifted, err)
	}
	tl, err := matrix.Scale(l, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMassShifted, err)
	}
	m, err := matrix.AddTo(h0, tl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMassShifted, err)
	}

	return m, nil
}
