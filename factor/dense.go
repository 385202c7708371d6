// SPDX-License-Identifier: MIT

package factor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ddg/matrix"
)

const denseName = "dense"

type denseBackend struct{}

// NewDenseBackend returns a backend that densifies the upper triangle and factors it
// with gonum's mat.Cholesky. Memory is O(n²); intended for small systems and as a
// reference for the native backend.
func NewDenseBackend() Backend { return denseBackend{} }

func (denseBackend) Name() string { return denseName }

type denseSymbolic struct {
	n        int
	released bool
}

func (s *denseSymbolic) Dim() int { return s.n }

type denseNumeric struct {
	n        int
	chol     *mat.Cholesky // nil when n == 0
	released bool
}

func (f *denseNumeric) Dim() int { return f.n }

// AnalyzePattern only records the order; the dense kernel has no symbolic phase.
func (denseBackend) AnalyzePattern(a *matrix.CSC[float64]) (Symbolic, error) {
	if err := checkCSC("dense.AnalyzePattern", a); err != nil {
		return nil, err
	}

	return &denseSymbolic{n: a.Cols}, nil
}

func (denseBackend) FactorizeNumeric(a *matrix.CSC[float64], s Symbolic) (Numeric, error) {
	const op = "dense.FactorizeNumeric"
	if err := checkCSC(op, a); err != nil {
		return nil, err
	}
	sym, ok := s.(*denseSymbolic)
	if !ok || sym == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBackendMismatch)
	}
	if sym.released {
		return nil, fmt.Errorf("%s: %w", op, ErrReleased)
	}
	if a.Cols != sym.n {
		return nil, fmt.Errorf("%s: %w", op, ErrPatternMismatch)
	}
	if sym.n == 0 {
		return &denseNumeric{}, nil
	}

	sd := mat.NewSymDense(sym.n, nil)
	for j := 0; j < a.Cols; j++ {
		for p := a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			if i := a.RowIdx[p]; i <= j {
				sd.SetSym(i, j, a.Val[p])
			}
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(sd); !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNotPositiveDefinite)
	}

	return &denseNumeric{n: sym.n, chol: &chol}, nil
}

func (denseBackend) Solve(num Numeric, b []float64) ([]float64, error) {
	const op = "dense.Solve"
	f, ok := num.(*denseNumeric)
	if !ok || f == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBackendMismatch)
	}
	if f.released {
		return nil, fmt.Errorf("%s: %w", op, ErrReleased)
	}
	if err := matrix.ValidateVecLen(len(b), f.n); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if f.n == 0 {
		return []float64{}, nil
	}

	rhs := make([]float64, f.n)
	copy(rhs, b)
	var x mat.VecDense
	// a Condition error is a warning only; the solution is still computed
	var cond mat.Condition
	if err := f.chol.SolveVecTo(&x, mat.NewVecDense(f.n, rhs)); err != nil && !errors.As(err, &cond) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out := make([]float64, f.n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}

func (denseBackend) Release(s Symbolic, num Numeric) {
	if sym, ok := s.(*denseSymbolic); ok && sym != nil {
		sym.released = true
	}
	if f, ok := num.(*denseNumeric); ok && f != nil {
		if f.chol != nil {
			f.chol.Reset()
		}
		f.released = true
		f.chol = nil
	}
}
