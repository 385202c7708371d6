// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ddg/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewSparse_Shapes(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse[float64](0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.NNZ())

	_, err = matrix.NewSparse[float64](-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestSparse_AddAccumulates(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewSparse[float64](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Add(0, 1, 1.5))
	require.NoError(t, m.Add(0, 1, 2.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	// a sum that cancels still occupies the pattern
	require.NoError(t, m.Add(1, 0, 1))
	require.NoError(t, m.Add(1, 0, -1))
	require.True(t, m.Has(1, 0))
	require.Equal(t, 2, m.NNZ())
}

func TestSparse_ExplicitZeroStored(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDiagonal([]float64{1, 0, 3})
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	require.True(t, m.Has(1, 1))
	require.Equal(t, []float64{1, 0, 3}, m.Diagonal())
	require.True(t, matrix.IsDiagonal(m))
}

func TestSparse_OutOfRange(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewSparse[float64](2, 3)
	cases := []struct {
		name string
		i, j int
	}{
		{"NegRow", -1, 0},
		{"RowTooBig", 2, 0},
		{"NegCol", 0, -1},
		{"ColTooBig", 0, 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := m.At(tc.i, tc.j)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, m.Set(tc.i, tc.j, 1), matrix.ErrOutOfRange)
			require.ErrorIs(t, m.Add(tc.i, tc.j, 1), matrix.ErrOutOfRange)
			require.ErrorIs(t, m.Delete(tc.i, tc.j), matrix.ErrOutOfRange)
		})
	}
}

func TestSparse_NaNPolicy(t *testing.T) {
	t.Parallel()

	lax, _ := matrix.NewSparse[float64](1, 1)
	require.NoError(t, lax.Set(0, 0, math.NaN()))

	strict, _ := matrix.NewSparse[float64](1, 1, matrix.WithValidateNaNInf())
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Add(0, 0, math.NaN()), matrix.ErrNaNInf)

	// last option wins
	back, _ := matrix.NewSparse[float64](1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, back.Set(0, 0, math.Inf(-1)))

	c, _ := matrix.NewSparse[complex128](1, 1, matrix.WithValidateNaNInf())
	require.ErrorIs(t, c.Set(0, 0, complex(0, math.NaN())), matrix.ErrNaNInf)
}

func TestSparse_EntriesColumnMajor(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewSparse[float64](3, 3)
	require.NoError(t, m.Set(2, 0, 1))
	require.NoError(t, m.Set(0, 2, 2))
	require.NoError(t, m.Set(0, 0, 3))
	require.NoError(t, m.Set(1, 0, 4))

	got := m.Entries()
	want := []matrix.Entry[float64]{
		{Row: 0, Col: 0, Val: 3},
		{Row: 1, Col: 0, Val: 4},
		{Row: 2, Col: 0, Val: 1},
		{Row: 0, Col: 2, Val: 2},
	}
	require.Equal(t, want, got)

	var seen int
	m.Do(func(i, j int, v float64) bool {
		seen++
		return seen < 2
	})
	require.Equal(t, 2, seen)
}

func TestSparse_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewSparse[float64](2, 2)
	require.NoError(t, m.Set(0, 0, 1))
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	require.NoError(t, cp.Delete(0, 0))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, 1, m.NNZ())
}

func TestCSC_RoundTrip(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewSparse[float64](3, 2)
	require.NoError(t, m.Set(2, 0, 5))
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(1, 1, 0)) // explicit zero survives compression

	c := m.CSC()
	require.Equal(t, []int{0, 2, 3}, c.ColPtr)
	require.Equal(t, []int{0, 2, 1}, c.RowIdx)
	require.Equal(t, []float64{1, 5, 0}, c.Val)
	require.Equal(t, 3, c.NNZ())
	require.Equal(t, 5.0, c.At(2, 0))
	require.Equal(t, 0.0, c.At(1, 0))

	back := c.ToSparse()
	require.Equal(t, m.Entries(), back.Entries())
	require.True(t, c.SamePattern(back.CSC()))

	require.NoError(t, m.Set(2, 1, 1))
	require.False(t, c.SamePattern(m.CSC()))
}

func TestFromReal_Complex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2.5, matrix.FromReal[float64](2.5))
	require.Equal(t, complex(2.5, 0), matrix.FromReal[complex128](2.5))
	require.Equal(t, 5.0, matrix.Abs(complex(3, 4)))
	require.False(t, matrix.IsFinite(math.Inf(1)))
	require.True(t, matrix.IsFinite(complex(1, 1)))
}
