// SPDX-License-Identifier: MIT

// File: native.go
// Role: pure-Go up-looking sparse Cholesky A = L·Lᵀ in natural ordering.
// Policy:
//   - Only the upper triangle of A (row ≤ col) is read; column k of it is row k of L's input.
//   - Symbolic: elimination tree, then column counts of L from one ereach per row.
//   - Numeric: row k of L is found by ereach, solved by a sparse triangular step,
//     and scattered into its columns. Diagonal of column j is stored first.
//   - A pivot ≤ 0 or NaN stops with ErrNotPositiveDefinite.

package factor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ddg/matrix"
)

const nativeName = "native"

type nativeBackend struct{}

// NewNativeBackend returns the pure-Go sparse Cholesky backend.
func NewNativeBackend() Backend { return nativeBackend{} }

func (nativeBackend) Name() string { return nativeName }

// nativeSymbolic is the pattern analysis: elimination tree and the column layout of L.
type nativeSymbolic struct {
	n        int
	parent   []int // elimination tree, -1 at roots
	colPtr   []int // column pointers of L, len n+1
	upPtr    []int // upper-triangle pattern of A, for reuse checks
	upRow    []int
	released bool
}

func (s *nativeSymbolic) Dim() int { return s.n }

// nativeNumeric is L in compressed column form.
type nativeNumeric struct {
	n        int
	colPtr   []int
	rowIdx   []int
	val      []float64
	released bool
}

func (f *nativeNumeric) Dim() int { return f.n }

// upperPattern extracts the row ≤ col pattern of a.
func upperPattern(a *matrix.CSC[float64]) (ptr, rows []int) {
	ptr = make([]int, a.Cols+1)
	rows = make([]int, 0, a.NNZ()/2+a.Cols)
	for j := 0; j < a.Cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			if a.RowIdx[p] <= j {
				rows = append(rows, a.RowIdx[p])
			}
		}
		ptr[j+1] = len(rows)
	}

	return ptr, rows
}

func checkCSC(op string, a *matrix.CSC[float64]) error {
	if a == nil {
		return fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	if a.Rows != a.Cols {
		return fmt.Errorf("%s: %dx%d: %w", op, a.Rows, a.Cols, ErrNonSquare)
	}

	return nil
}

// etree computes the elimination tree of the upper-triangle pattern (ptr, rows),
// using path compression through ancestor.
func etree(n int, ptr, rows []int) []int {
	parent := make([]int, n)
	ancestor := make([]int, n)
	for k := 0; k < n; k++ {
		parent[k], ancestor[k] = -1, -1
		for p := ptr[k]; p < ptr[k+1]; p++ {
			for i := rows[p]; i != -1 && i < k; {
				next := ancestor[i]
				ancestor[i] = k
				if next == -1 {
					parent[i] = k
				}
				i = next
			}
		}
	}

	return parent
}

// ereach writes the pattern of row k of L (columns < k) to stack[top:] and returns
// top. mark must hold values ≠ k on entry; visited nodes are stamped with k.
func ereach(k int, ptr, rows, parent, stack, mark []int) int {
	n := len(parent)
	top := n
	mark[k] = k
	for p := ptr[k]; p < ptr[k+1]; p++ {
		i := rows[p]
		if i > k {
			continue
		}
		length := 0
		for ; mark[i] != k; i = parent[i] {
			stack[length] = i
			length++
			mark[i] = k
		}
		for length > 0 {
			top--
			length--
			stack[top] = stack[length]
		}
	}

	return top
}

func newMarks(n int) []int {
	mark := make([]int, n)
	for i := range mark {
		mark[i] = -1
	}

	return mark
}

// AnalyzePattern builds the elimination tree and the column pointers of L.
// Complexity: O(|L|).
func (nativeBackend) AnalyzePattern(a *matrix.CSC[float64]) (Symbolic, error) {
	const op = "native.AnalyzePattern"
	if err := checkCSC(op, a); err != nil {
		return nil, err
	}
	n := a.Cols
	ptr, rows := upperPattern(a)
	parent := etree(n, ptr, rows)

	counts := make([]int, n)
	stack, mark := make([]int, n), newMarks(n)
	for k := 0; k < n; k++ {
		counts[k]++ // diagonal
		for top := ereach(k, ptr, rows, parent, stack, mark); top < n; top++ {
			counts[stack[top]]++
		}
	}
	colPtr := make([]int, n+1)
	for j := 0; j < n; j++ {
		colPtr[j+1] = colPtr[j] + counts[j]
	}

	return &nativeSymbolic{n: n, parent: parent, colPtr: colPtr, upPtr: ptr, upRow: rows}, nil
}

func samePattern(ptr, rows, wantPtr, wantRows []int) bool {
	if len(ptr) != len(wantPtr) || len(rows) != len(wantRows) {
		return false
	}
	for i := range ptr {
		if ptr[i] != wantPtr[i] {
			return false
		}
	}
	for i := range rows {
		if rows[i] != wantRows[i] {
			return false
		}
	}

	return true
}

// FactorizeNumeric computes L row by row.
// Errors: ErrBackendMismatch, ErrReleased, ErrPatternMismatch, ErrNotPositiveDefinite.
func (nativeBackend) FactorizeNumeric(a *matrix.CSC[float64], s Symbolic) (Numeric, error) {
	const op = "native.FactorizeNumeric"
	if err := checkCSC(op, a); err != nil {
		return nil, err
	}
	sym, ok := s.(*nativeSymbolic)
	if !ok || sym == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBackendMismatch)
	}
	if sym.released {
		return nil, fmt.Errorf("%s: %w", op, ErrReleased)
	}
	ptr, rows := upperPattern(a)
	if a.Cols != sym.n || !samePattern(ptr, rows, sym.upPtr, sym.upRow) {
		return nil, fmt.Errorf("%s: %w", op, ErrPatternMismatch)
	}

	n := sym.n
	lnz := sym.colPtr[n]
	f := &nativeNumeric{n: n, colPtr: sym.colPtr, rowIdx: make([]int, lnz), val: make([]float64, lnz)}
	next := make([]int, n) // next free slot per column
	copy(next, sym.colPtr[:n])
	x := make([]float64, n)
	stack, mark := make([]int, n), newMarks(n)

	for k := 0; k < n; k++ {
		top := ereach(k, sym.upPtr, sym.upRow, sym.parent, stack, mark)
		x[k] = 0
		for p := a.ColPtr[k]; p < a.ColPtr[k+1]; p++ {
			if i := a.RowIdx[p]; i <= k {
				x[i] = a.Val[p]
			}
		}
		d := x[k]
		x[k] = 0
		for ; top < n; top++ {
			i := stack[top]
			lki := x[i] / f.val[f.colPtr[i]]
			x[i] = 0
			for p := f.colPtr[i] + 1; p < next[i]; p++ {
				x[f.rowIdx[p]] -= f.val[p] * lki
			}
			d -= lki * lki
			p := next[i]
			next[i]++
			f.rowIdx[p], f.val[p] = k, lki
		}
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%s: pivot %g at column %d: %w", op, d, k, ErrNotPositiveDefinite)
		}
		p := next[k]
		next[k]++
		f.rowIdx[p], f.val[p] = k, math.Sqrt(d)
	}

	return f, nil
}

// Solve computes x = A⁻¹·b through L·y = b and Lᵀ·x = y.
func (nativeBackend) Solve(num Numeric, b []float64) ([]float64, error) {
	const op = "native.Solve"
	f, ok := num.(*nativeNumeric)
	if !ok || f == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBackendMismatch)
	}
	if f.released {
		return nil, fmt.Errorf("%s: %w", op, ErrReleased)
	}
	if err := matrix.ValidateVecLen(len(b), f.n); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	x := make([]float64, f.n)
	copy(x, b)
	for j := 0; j < f.n; j++ {
		x[j] /= f.val[f.colPtr[j]]
		for p := f.colPtr[j] + 1; p < f.colPtr[j+1]; p++ {
			x[f.rowIdx[p]] -= f.val[p] * x[j]
		}
	}
	for j := f.n - 1; j >= 0; j-- {
		for p := f.colPtr[j] + 1; p < f.colPtr[j+1]; p++ {
			x[j] -= f.val[p] * x[f.rowIdx[p]]
		}
		x[j] /= f.val[f.colPtr[j]]
	}

	return x, nil
}

// Release drops the factor arrays. Foreign handles are ignored.
func (nativeBackend) Release(s Symbolic, num Numeric) {
	if sym, ok := s.(*nativeSymbolic); ok && sym != nil {
		sym.released = true
		sym.parent, sym.colPtr, sym.upPtr, sym.upRow = nil, nil, nil, nil
	}
	if f, ok := num.(*nativeNumeric); ok && f != nil {
		f.released = true
		f.colPtr, f.rowIdx, f.val = nil, nil, nil
	}
}
