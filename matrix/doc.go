// SPDX-License-Identifier: MIT

// Package matrix provides the sparse containers the discrete operators are
// assembled into and the factorization backends read from.
//
// The package provides:
//
//   - Sparse[T]: a dictionary-of-keys matrix over a Scalar field (float64 or complex128)
//     with accumulate-on-Add semantics, so repeated (row, col) contributions sum.
//   - CSC[T]: an immutable compressed-sparse-column snapshot with sorted row indices,
//     the layout consumed by the Cholesky backends in package factor.
//   - Algebra on Sparse: Mul, Transpose, Scale, AddTo, MulVec, MaxAbs, IsZero.
//   - A gonum bridge: ToDense / FromDense for *mat.Dense.
//
// Determinism:
//
//	Every traversal (Entries, Do, CSC, String) visits entries in column-major order
//	(col asc, then row asc), never in map order.
//
// Numeric policy:
//
//	By default NaN/Inf values are stored as-is so that callers can surface numerical
//	faults explicitly. WithValidateNaNInf makes Set/Add reject them with ErrNaNInf.
package matrix
