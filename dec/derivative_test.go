// SPDX-License-Identifier: MIT
package dec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ddg/builder"
	"github.com/katalvlaran/ddg/dec"
	"github.com/katalvlaran/ddg/matrix"
)

func TestDerivative0_UnitSquare(t *testing.T) {
	t.Parallel()

	g := mustMesh(t, nil, builder.UnitSquare())
	d0, err := dec.Derivative0Real(g)
	require.NoError(t, err)

	// edges 0–1, 1–2, 2–0, 2–3, 3–0 as directed by their owning halfedges
	want := mat.NewDense(5, 4, []float64{
		-1, 1, 0, 0,
		0, -1, 1, 0,
		1, 0, -1, 0,
		0, 0, -1, 1,
		1, 0, 0, -1,
	})
	require.True(t, mat.Equal(want, matrix.ToDense(d0)))
}

func TestDerivative1_UnitSquare(t *testing.T) {
	t.Parallel()

	g := mustMesh(t, nil, builder.UnitSquare())
	d1, err := dec.Derivative1Real(g)
	require.NoError(t, err)

	// face 1 traverses the diagonal against its owner
	want := mat.NewDense(2, 5, []float64{
		1, 1, 1, 0, 0,
		0, 0, -1, 1, 1,
	})
	require.True(t, mat.Equal(want, matrix.ToDense(d1)))
}

func TestDerivative0_RowsFollowOrientation(t *testing.T) {
	t.Parallel()

	for name, g := range fixtures(t) {
		d0, err := dec.Derivative0Real(g)
		require.NoError(t, err, name)
		require.Equal(t, 2*g.NumEdges(), d0.NNZ(), name)
		for e := 0; e < g.NumEdges(); e++ {
			tail, head := g.EdgeVertices(e)
			v, _ := d0.At(e, head)
			require.Equal(t, 1.0, v, name)
			v, _ = d0.At(e, tail)
			require.Equal(t, -1.0, v, name)
		}
	}
}

func TestDerivative0_ConstantFormIsClosed(t *testing.T) {
	t.Parallel()

	for name, g := range fixtures(t) {
		d0, err := dec.Derivative0Real(g)
		require.NoError(t, err, name)
		y, err := matrix.MulVec(d0, matrix.Ones[float64](g.NumVertices()))
		require.NoError(t, err, name)
		for _, v := range y {
			require.Zero(t, v, name)
		}
	}
}

func TestDerivative_ExactSequence(t *testing.T) {
	t.Parallel()

	meshes := fixtures(t)
	// polygons and several components are fine for the incidence operators
	meshes["cube"] = mustMesh(t, nil, builder.PlatonicSolid(builder.Cube))
	meshes["union"] = mustMesh(t, nil, builder.Fan(5), builder.PlatonicSolid(builder.Tetrahedron))

	for name, g := range meshes {
		d0, err := dec.Derivative0Real(g)
		require.NoError(t, err, name)
		d1, err := dec.Derivative1Real(g)
		require.NoError(t, err, name)
		require.NoError(t, dec.CheckExactness(d0, d1, dec.ExactnessTolerance), name)

		p, err := matrix.Mul(d1, d0)
		require.NoError(t, err, name)
		require.True(t, matrix.IsZero(p, 1e-10), name)

		c0, err := dec.Derivative0Complex(g)
		require.NoError(t, err, name)
		c1, err := dec.Derivative1Complex(g)
		require.NoError(t, err, name)
		require.NoError(t, dec.CheckExactness(c0, c1, 0), name)
	}
}

func TestDerivative1_FaceRowsHaveDegreeEntries(t *testing.T) {
	t.Parallel()

	g := mustMesh(t, nil, builder.PlatonicSolid(builder.Cube))
	d1, err := dec.Derivative1Real(g)
	require.NoError(t, err)
	perRow := make([]int, g.NumFaces())
	d1.Do(func(i, _ int, v float64) bool {
		require.Contains(t, []float64{-1, 1}, v)
		perRow[i]++
		return true
	})
	for f, n := range perRow {
		require.Equal(t, g.FaceDegree(f), n)
	}
}

func TestDerivative_FlippedOwnerStaysExact(t *testing.T) {
	t.Parallel()

	g := mustMesh(t, nil, builder.PlatonicSolid(builder.Octahedron))
	flip := flippedOwner{Mesh: g.Mesh, edge: 3}

	d0, err := dec.Derivative0Real(flip)
	require.NoError(t, err)
	d1, err := dec.Derivative1Real(flip)
	require.NoError(t, err)
	require.NoError(t, dec.CheckExactness(d0, d1, 0))

	// mixing conventions breaks the sequence
	d0Orig, err := dec.Derivative0Real(g)
	require.NoError(t, err)
	err = dec.CheckExactness(d0Orig, d1, dec.ExactnessTolerance)
	require.ErrorIs(t, err, dec.ErrOrientation)
	require.Contains(t, err.Error(), "CheckExactness")
}

func TestDerivative_OrientationFaults(t *testing.T) {
	t.Parallel()

	g := mustMesh(t, nil, builder.UnitSquare())

	_, err := dec.Derivative0Real(brokenOwner{Mesh: g.Mesh, edge: 1})
	require.ErrorIs(t, err, dec.ErrOrientation)
	var ee *dec.ElementError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, dec.KindEdge, ee.Kind)
	require.Equal(t, 1, ee.Index)

	_, err = dec.Derivative1Real(brokenOwner{Mesh: g.Mesh, edge: 1})
	require.ErrorIs(t, err, dec.ErrOrientation)

	// halfedge 0 (0→1) claims the edge 2–3 of the other face
	_, err = dec.Derivative1Real(foreignEdge{Mesh: g.Mesh, halfedge: 0, edge: 3})
	require.ErrorIs(t, err, dec.ErrOrientation)

	_, err = dec.Derivative1Real(foreignEdge{Mesh: g.Mesh, halfedge: 0, edge: 99})
	require.ErrorIs(t, err, dec.ErrOrientation)
}

func TestCheckExactness_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a, _ := matrix.NewSparse[float64](3, 2)
	b, _ := matrix.NewSparse[float64](2, 4)
	require.ErrorIs(t, dec.CheckExactness(a, b, 0), matrix.ErrDimensionMismatch)
}
