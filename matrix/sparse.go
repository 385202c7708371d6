// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (dictionary of keys) & safe accessors.
//
// Purpose:
//   - Accumulate assembly contributions with Add (duplicates sum).
//   - Guarantee safety at the public surface: At/Set/Add return errors instead of panicking.
//   - Keep traversal deterministic (column-major order, never map order).
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set/Add/Delete: O(1) expected; Entries/Do/CSC: O(nnz log nnz); Clone: O(nnz).

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAdd    = "Add"
	ctxNew    = "NewSparse"
	ctxDelete = "Delete"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a rows×cols matrix storing only explicitly written entries.
//
// An entry written with value zero stays stored: the nonzero pattern is what was
// written, not what is numerically nonzero. Factorization backends analyze exactly
// this pattern, so builders can keep a full diagonal even where values vanish.
type Sparse[T Scalar] struct {
	r, c           int
	data           map[Key]T
	validateNaNInf bool
}

// NewSparse creates an empty rows×cols matrix. Zero-sized shapes are legal
// (a mesh may have no faces); negative dimensions return ErrBadShape.
// Complexity: O(1).
func NewSparse[T Scalar](rows, cols int, opts ...Option) (*Sparse[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}
	o := gatherOptions(opts...)

	return &Sparse[T]{
		r:              rows,
		c:              cols,
		data:           make(map[Key]T),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDiagonal returns an n×n matrix with d on the diagonal. Every diagonal entry is
// stored, including zeros.
func NewDiagonal[T Scalar](d []T, opts ...Option) (*Sparse[T], error) {
	m, err := NewSparse[T](len(d), len(d), opts...)
	if err != nil {
		return nil, err
	}
	for i, v := range d {
		if err = m.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Sparse[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Sparse[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Sparse[T]) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *Sparse[T]) NNZ() int { return len(m.data) }

// check validates (row, col) against the shape.
func (m *Sparse[T]) check(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col); zero for positions not stored.
func (m *Sparse[T]) At(row, col int) (T, error) {
	if err := m.check(row, col); err != nil {
		var zero T
		return zero, sparseErrorf(ctxAt, row, col, err)
	}

	return m.data[Key{row, col}], nil
}

// Has reports whether (row, col) is part of the stored pattern.
func (m *Sparse[T]) Has(row, col int) bool {
	_, ok := m.data[Key{row, col}]

	return ok
}

// Set stores v at (row, col), replacing any previous value.
func (m *Sparse[T]) Set(row, col int, v T) error {
	if err := m.check(row, col); err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !IsFinite(v) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[Key{row, col}] = v

	return nil
}

// Add accumulates v into (row, col). The position joins the pattern even if the
// running sum is zero.
func (m *Sparse[T]) Add(row, col int, v T) error {
	if err := m.check(row, col); err != nil {
		return sparseErrorf(ctxAdd, row, col, err)
	}
	k := Key{row, col}
	sum := m.data[k] + v
	if m.validateNaNInf && !IsFinite(sum) {
		return sparseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[k] = sum

	return nil
}

// Delete removes (row, col) from the pattern. Deleting an absent entry is a no-op.
func (m *Sparse[T]) Delete(row, col int) error {
	if err := m.check(row, col); err != nil {
		return sparseErrorf(ctxDelete, row, col, err)
	}
	delete(m.data, Key{row, col})

	return nil
}

// Entries returns all stored entries in column-major order.
func (m *Sparse[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(m.data))
	for k, v := range m.data {
		out = append(out, Entry[T]{Row: k.Row, Col: k.Col, Val: v})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Col != out[b].Col {
			return out[a].Col < out[b].Col
		}
		return out[a].Row < out[b].Row
	})

	return out
}

// Do calls fn for every stored entry in column-major order; fn returns false to stop.
func (m *Sparse[T]) Do(fn func(i, j int, v T) bool) {
	for _, e := range m.Entries() {
		if !fn(e.Row, e.Col, e.Val) {
			return
		}
	}
}

// Diagonal returns the main diagonal (length min(r, c)).
func (m *Sparse[T]) Diagonal() []T {
	n := min(m.r, m.c)
	d := make([]T, n)
	for i := 0; i < n; i++ {
		d[i] = m.data[Key{i, i}]
	}

	return d
}

// Clone returns a deep copy with the same numeric policy.
func (m *Sparse[T]) Clone() *Sparse[T] {
	data := make(map[Key]T, len(m.data))
	for k, v := range m.data {
		data[k] = v
	}

	return &Sparse[T]{r: m.r, c: m.c, data: data, validateNaNInf: m.validateNaNInf}
}

// String renders "r×c nnz=N" followed by one "(i,j) v" line per entry.
func (m *Sparse[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d nnz=%d\n", m.r, m.c, len(m.data))
	for _, e := range m.Entries() {
		fmt.Fprintf(&sb, "(%d,%d) %v\n", e.Row, e.Col, e.Val)
	}

	return sb.String()
}
