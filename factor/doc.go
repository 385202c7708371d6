// SPDX-License-Identifier: MIT

// Package factor caches a sparse Cholesky factorization of one symmetric
// positive-definite matrix and stages its invalidation.
//
// State machine:
//
//	empty ──Get──▶ symbolic ──Get──▶ numeric ──Get──▶ numeric (hit)
//	  ▲               ▲                  │
//	  │               └─InvalidateNumeric┘
//	  └──────────── InvalidateStructural / failure / Close
//
// Symbolic analysis depends only on the nonzero pattern; numeric factorization on
// the values. Changing values needs InvalidateNumeric, changing the pattern needs
// InvalidateStructural.
//
// Caller contract:
//
//   - The Cache holds a non-owning pointer to its matrix. The matrix must outlive the
//     cache and is never mutated by it.
//   - The cache has no mutation detection. Mutating the matrix without the matching
//     invalidation call leaves the cached factorization stale; that is a contract
//     violation, not a checked error.
//   - A failed Get rolls back to empty, releasing everything it had built, so the
//     caller may repair the matrix and retry.
//
// Backends:
//
//	The numerical kernel is behind Backend {AnalyzePattern, FactorizeNumeric, Solve,
//	Release}. NewNativeBackend is a pure-Go up-looking sparse Cholesky; NewDenseBackend
//	wraps gonum's mat.Cholesky for reference and small systems.
//
// Concurrency:
//
//	One mutex per Cache serializes Get, both invalidations, Close and the package-level
//	Solve. Distinct caches are independent.
package factor
