// SPDX-License-Identifier: MIT
package factor_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ddg/builder"
	"github.com/katalvlaran/ddg/dec"
	"github.com/katalvlaran/ddg/factor"
	"github.com/katalvlaran/ddg/matrix"
)

// sparseOf builds a square matrix from row-major dense values, storing nonzeros only.
func sparseOf(t *testing.T, n int, vals []float64) *matrix.Sparse[float64] {
	t.Helper()
	m, err := matrix.FromDense(mat.NewDense(n, n, vals))
	require.NoError(t, err)

	return m
}

func tridiagonal(t *testing.T) *matrix.Sparse[float64] {
	t.Helper()

	return sparseOf(t, 3, []float64{
		4, -1, 0,
		-1, 4, -1,
		0, -1, 4,
	})
}

func factorWith(t *testing.T, b factor.Backend, a *matrix.Sparse[float64]) (factor.Symbolic, factor.Numeric, error) {
	t.Helper()
	csc := a.CSC()
	s, err := b.AnalyzePattern(csc)
	require.NoError(t, err)
	n, err := b.FactorizeNumeric(csc, s)

	return s, n, err
}

func backends() map[string]factor.Backend {
	return map[string]factor.Backend{
		"native": factor.NewNativeBackend(),
		"dense":  factor.NewDenseBackend(),
	}
}

func TestNativeSymbolic_Layout(t *testing.T) {
	t.Parallel()

	b := factor.NewNativeBackend()
	s, err := b.AnalyzePattern(tridiagonal(t).CSC())
	require.NoError(t, err)
	parent, colPtr := factor.SymbolicLayout(s)
	require.Equal(t, []int{1, 2, -1}, parent)
	require.Equal(t, []int{0, 2, 4, 5}, colPtr)

	// arrow matrix with a dense first row fills L completely
	arrow := sparseOf(t, 4, []float64{
		8, 1, 1, 1,
		1, 8, 0, 0,
		1, 0, 8, 0,
		1, 0, 0, 8,
	})
	s, err = b.AnalyzePattern(arrow.CSC())
	require.NoError(t, err)
	parent, colPtr = factor.SymbolicLayout(s)
	require.Equal(t, []int{1, 2, 3, -1}, parent)
	require.Equal(t, []int{0, 4, 7, 9, 10}, colPtr)
	require.Equal(t, 4, s.Dim())
}

func TestBackends_SmallSolve(t *testing.T) {
	t.Parallel()

	for name, b := range backends() {
		b := b
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, n, err := factorWith(t, b, sparseOf(t, 2, []float64{4, 2, 2, 5}))
			require.NoError(t, err)
			x, err := b.Solve(n, []float64{2, 3})
			require.NoError(t, err)
			require.InDeltaSlice(t, []float64{0.25, 0.5}, x, 1e-14)
		})
	}
}

func TestBackends_AgreeOnMassShifted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []builder.BuilderOption
		cons builder.Constructor
		t    float64
	}{
		{"icosahedron", nil, builder.PlatonicSolid(builder.Icosahedron), 1},
		{"octahedron", nil, builder.PlatonicSolid(builder.Octahedron), 0.5},
		{"grid", nil, builder.Grid(4, 5), 1},
		{"jittered", []builder.BuilderOption{builder.WithJitter(0.02), builder.WithSeed(3)}, builder.Grid(4, 4), 0.1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildMesh(tc.opts, tc.cons)
			require.NoError(t, err)
			a, err := dec.BuildMassShifted(g, tc.t)
			require.NoError(t, err)

			rhs := make([]float64, g.NumVertices())
			for i := range rhs {
				rhs[i] = float64(i%3) - 0.5
			}
			sols := map[string][]float64{}
			for name, b := range backends() {
				_, n, err := factorWith(t, b, a)
				require.NoError(t, err, name)
				x, err := b.Solve(n, rhs)
				require.NoError(t, err, name)
				sols[name] = x

				ax, err := matrix.MulVec(a, x)
				require.NoError(t, err)
				require.InDeltaSlice(t, rhs, ax, 1e-9, name)
			}
			require.InDeltaSlice(t, sols["dense"], sols["native"], 1e-9)
		})
	}
}

func TestBackends_NotPositiveDefinite(t *testing.T) {
	t.Parallel()

	indefinite := sparseOf(t, 2, []float64{1, 2, 2, 1})
	noDiagonal := sparseOf(t, 2, []float64{0, 1, 1, 0})
	for name, b := range backends() {
		for _, a := range []*matrix.Sparse[float64]{indefinite, noDiagonal} {
			_, _, err := factorWith(t, b, a)
			require.ErrorIs(t, err, factor.ErrNotPositiveDefinite, name)
		}
	}
}

func TestBackends_EmptyMatrix(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewSparse[float64](0, 0)
	require.NoError(t, err)
	for name, b := range backends() {
		_, n, err := factorWith(t, b, empty)
		require.NoError(t, err, name)
		x, err := b.Solve(n, nil)
		require.NoError(t, err, name)
		require.Empty(t, x, name)
	}
}

func TestBackends_HandleErrors(t *testing.T) {
	t.Parallel()

	a := tridiagonal(t)
	native, dense := factor.NewNativeBackend(), factor.NewDenseBackend()

	ns, nn, err := factorWith(t, native, a)
	require.NoError(t, err)
	ds, dn, err := factorWith(t, dense, a)
	require.NoError(t, err)

	_, err = native.FactorizeNumeric(a.CSC(), ds)
	require.ErrorIs(t, err, factor.ErrBackendMismatch)
	_, err = dense.Solve(nn, []float64{1, 1, 1})
	require.ErrorIs(t, err, factor.ErrBackendMismatch)

	_, err = native.Solve(nn, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = native.AnalyzePattern(nil)
	require.ErrorIs(t, err, factor.ErrNilMatrix)
	rect, err := matrix.NewSparse[float64](2, 3)
	require.NoError(t, err)
	_, err = dense.AnalyzePattern(rect.CSC())
	require.ErrorIs(t, err, factor.ErrNonSquare)

	native.Release(ns, nn)
	native.Release(ns, nn)
	dense.Release(ds, dn)
	_, err = native.Solve(nn, []float64{1, 1, 1})
	require.ErrorIs(t, err, factor.ErrReleased)
	_, err = dense.Solve(dn, []float64{1, 1, 1})
	require.ErrorIs(t, err, factor.ErrReleased)
	_, err = native.FactorizeNumeric(a.CSC(), ns)
	require.ErrorIs(t, err, factor.ErrReleased)
}

func TestNative_PatternMismatch(t *testing.T) {
	t.Parallel()

	b := factor.NewNativeBackend()
	s, err := b.AnalyzePattern(tridiagonal(t).CSC())
	require.NoError(t, err)
	full := sparseOf(t, 3, []float64{
		4, 1, 1,
		1, 4, 1,
		1, 1, 4,
	})
	_, err = b.FactorizeNumeric(full.CSC(), s)
	require.ErrorIs(t, err, factor.ErrPatternMismatch)
}

func TestBackendByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"native", "dense"} {
		b, ok := factor.BackendByName(name)
		require.True(t, ok)
		require.Equal(t, name, b.Name())
	}
	_, ok := factor.BackendByName("cholmod")
	require.False(t, ok)
}
