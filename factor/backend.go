// SPDX-License-Identifier: MIT

package factor

import "github.com/katalvlaran/ddg/matrix"

// Symbolic is an opaque pattern analysis produced by a Backend.
type Symbolic interface {
	// Dim is the order of the analyzed matrix.
	Dim() int
}

// Numeric is an opaque numeric factorization produced by a Backend.
type Numeric interface {
	// Dim is the order of the factored matrix.
	Dim() int
}

// Backend is the numerical kernel behind a Cache.
//
// AnalyzePattern may only read a's pattern, FactorizeNumeric reads its values and must
// reuse s. Both read only the upper triangle (row ≤ col). Release frees either handle;
// nil handles are ignored and releasing twice is harmless.
type Backend interface {
	Name() string
	AnalyzePattern(a *matrix.CSC[float64]) (Symbolic, error)
	FactorizeNumeric(a *matrix.CSC[float64], s Symbolic) (Numeric, error)
	Solve(n Numeric, b []float64) ([]float64, error)
	Release(s Symbolic, n Numeric)
}
