// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse column snapshots.
//
// CSC is the exchange format between assembled operators and factorization
// backends: column j owns RowIdx[ColPtr[j]:ColPtr[j+1]] (strictly increasing) and
// the matching Val slice. A CSC never aliases the Sparse it was built from.

package matrix

import "fmt"

// CSC is an immutable compressed-sparse-column matrix.
type CSC[T Scalar] struct {
	Rows, Cols int
	ColPtr     []int // len Cols+1
	RowIdx     []int // len NNZ, sorted within each column
	Val        []T   // len NNZ
}

// CSC compresses m into column-major form. Explicitly stored zeros are kept.
// Complexity: O(nnz log nnz).
func (m *Sparse[T]) CSC() *CSC[T] {
	entries := m.Entries() // column-major, rows ascending within a column
	out := &CSC[T]{
		Rows:   m.r,
		Cols:   m.c,
		ColPtr: make([]int, m.c+1),
		RowIdx: make([]int, len(entries)),
		Val:    make([]T, len(entries)),
	}
	for _, e := range entries {
		out.ColPtr[e.Col+1]++
	}
	for j := 0; j < m.c; j++ {
		out.ColPtr[j+1] += out.ColPtr[j]
	}
	for p, e := range entries {
		out.RowIdx[p] = e.Row
		out.Val[p] = e.Val
	}

	return out
}

// NNZ returns the number of stored entries.
func (a *CSC[T]) NNZ() int { return len(a.RowIdx) }

// At returns A[i,j] by binary search within column j (zero when not stored).
func (a *CSC[T]) At(i, j int) T {
	lo, hi := a.ColPtr[j], a.ColPtr[j+1]
	for lo < hi {
		mid := (lo + hi) / 2
		switch r := a.RowIdx[mid]; {
		case r == i:
			return a.Val[mid]
		case r < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	var zero T

	return zero
}

// MulVec returns y = A·x.
// Errors: ErrDimensionMismatch when len(x) != Cols.
func (a *CSC[T]) MulVec(x []T) ([]T, error) {
	if len(x) != a.Cols {
		return nil, matrixErrorf("CSC.MulVec", fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), a.Cols, ErrDimensionMismatch))
	}
	y := make([]T, a.Rows)
	for j := 0; j < a.Cols; j++ {
		xj := x[j]
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			y[a.RowIdx[p]] += a.Val[p] * xj
		}
	}

	return y, nil
}

// SamePattern reports whether a and b have identical shape and stored positions.
func (a *CSC[T]) SamePattern(b *CSC[T]) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols || len(a.RowIdx) != len(b.RowIdx) {
		return false
	}
	for j := range a.ColPtr {
		if a.ColPtr[j] != b.ColPtr[j] {
			return false
		}
	}
	for p := range a.RowIdx {
		if a.RowIdx[p] != b.RowIdx[p] {
			return false
		}
	}

	return true
}

// ToSparse expands a back into a dictionary-of-keys matrix.
func (a *CSC[T]) ToSparse() *Sparse[T] {
	m := &Sparse[T]{r: a.Rows, c: a.Cols, data: make(map[Key]T, len(a.RowIdx))}
	for j := 0; j < a.Cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			m.data[Key{a.RowIdx[p], j}] = a.Val[p]
		}
	}

	return m
}
