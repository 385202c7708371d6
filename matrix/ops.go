// SPDX-License-Identifier: MIT
// Package matrix — sparse algebra kernels.
//
// Determinism & Policy:
//   - Every kernel walks its inputs in column-major order, so floating-point
//     accumulation order (and therefore the result bits) is reproducible.
//   - Results are freshly allocated; inputs are never mutated.
//   - Results inherit the numeric policy of the first operand.

package matrix

import "fmt"

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opAddTo     = "AddTo"
	opMulVec    = "MulVec"
)

// Mul returns a·b.
//
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: compress a to CSC; for every stored b[k,j] scatter b[k,j]·a[:,k] into column j.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(flops + nnz log nnz).
func Mul[T Scalar](a, b *Sparse[T]) (*Sparse[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ac := a.CSC()
	out := &Sparse[T]{r: a.r, c: b.c, data: make(map[Key]T), validateNaNInf: a.validateNaNInf}
	for _, e := range b.Entries() {
		for p := ac.ColPtr[e.Row]; p < ac.ColPtr[e.Row+1]; p++ {
			k := Key{ac.RowIdx[p], e.Col}
			out.data[k] += ac.Val[p] * e.Val
		}
	}

	return out, nil
}

// Transpose returns mᵀ (no conjugation).
func Transpose[T Scalar](m *Sparse[T]) (*Sparse[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out := &Sparse[T]{r: m.c, c: m.r, data: make(map[Key]T, len(m.data)), validateNaNInf: m.validateNaNInf}
	for k, v := range m.data {
		out.data[Key{k.Col, k.Row}] = v
	}

	return out, nil
}

// Scale returns α·m with the same pattern.
func Scale[T Scalar](m *Sparse[T], alpha T) (*Sparse[T], error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	out := m.Clone()
	for k, v := range out.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// AddTo returns a + b; the result pattern is the union of both patterns.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AddTo[T Scalar](a, b *Sparse[T]) (*Sparse[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAddTo, err)
	}
	out := a.Clone()
	for k, v := range b.data {
		out.data[k] += v
	}

	return out, nil
}

// MulVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MulVec[T Scalar](m *Sparse[T], x []T) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(len(x), m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return m.CSC().MulVec(x)
}

// MaxAbs returns the largest |entry| and its position ((-1,-1) when m stores nothing).
// NaN entries win over any finite magnitude so they cannot hide.
func MaxAbs[T Scalar](m *Sparse[T]) (value float64, row, col int) {
	row, col = -1, -1
	for _, e := range m.Entries() {
		a := Abs(e.Val)
		if row == -1 || a > value || (a != a && value == value) {
			value, row, col = a, e.Row, e.Col
		}
	}

	return value, row, col
}

// IsZero reports whether every stored entry satisfies |v| ≤ tol.
func IsZero[T Scalar](m *Sparse[T], tol float64) bool {
	for _, v := range m.data {
		if !(Abs(v) <= tol) {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether every stored entry lies on the main diagonal.
func IsDiagonal[T Scalar](m *Sparse[T]) bool {
	for k := range m.data {
		if k.Row != k.Col {
			return false
		}
	}

	return true
}

// Ones returns a length-n vector of ones in T.
func Ones[T Scalar](n int) []T {
	x := make([]T, n)
	one := FromReal[T](1)
	for i := range x {
		x[i] = one
	}

	return x
}

// describe is a compact shape tag for error messages.
func describe[T Scalar](m *Sparse[T]) string {
	if m == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%dx%d", m.r, m.c)
}
