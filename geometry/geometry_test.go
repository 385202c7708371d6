// SPDX-License-Identifier: MIT
package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/ddg/core"
	"github.com/katalvlaran/ddg/geometry"
)

const eps = 1e-12

func unitSquare(t *testing.T) *geometry.Geometry {
	t.Helper()
	m, err := core.NewMesh(4, [][]int{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)
	g, err := geometry.NewPlanar(m, []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	return g
}

func tetrahedron(t *testing.T) *geometry.Geometry {
	t.Helper()
	m, err := core.NewMesh(4, [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}})
	require.NoError(t, err)
	g, err := geometry.New(m, []r3.Vec{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
	})
	require.NoError(t, err)

	return g
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	m, err := core.NewMesh(3, [][]int{{0, 1, 2}})
	require.NoError(t, err)

	_, err = geometry.New(nil, nil)
	require.ErrorIs(t, err, geometry.ErrNilMesh)

	_, err = geometry.New(m, []r3.Vec{{}, {}})
	require.ErrorIs(t, err, geometry.ErrPositionCount)

	_, err = geometry.New(m, []r3.Vec{{}, {X: math.NaN()}, {}})
	require.ErrorIs(t, err, geometry.ErrNonFinitePosition)
}

func TestNew_CopiesPositions(t *testing.T) {
	t.Parallel()

	m, _ := core.NewMesh(3, [][]int{{0, 1, 2}})
	pos := []r3.Vec{{}, {X: 1}, {Y: 1}}
	g, err := geometry.New(m, pos)
	require.NoError(t, err)
	pos[1].X = 42
	require.Equal(t, 1.0, g.Position(1).X)

	out := g.Positions()
	out[2].Y = -1
	require.Equal(t, 1.0, g.Position(2).Y)
}

func TestUnitSquare_Metrics(t *testing.T) {
	t.Parallel()
	g := unitSquare(t)

	require.InDelta(t, 0.5, g.FaceArea(0), eps)
	require.InDelta(t, 0.5, g.FaceArea(1), eps)
	require.InDelta(t, 1.0, g.TotalArea(), eps)

	for e := 0; e < g.NumEdges(); e++ {
		tail, head := g.EdgeVertices(e)
		want := 1.0
		if (tail == 0 && head == 2) || (tail == 2 && head == 0) {
			want = math.Sqrt2
			// right angles on both sides of the diagonal
			require.InDelta(t, 0, g.EdgeCotanWeight(e), eps)
		} else {
			require.InDelta(t, 0.5, g.EdgeCotanWeight(e), eps)
		}
		require.InDelta(t, want, g.EdgeLength(e), eps)
	}

	n := g.FaceNormal(0)
	require.InDelta(t, 1, n.Z, eps)
}

func TestCornerAngles_SumToPi(t *testing.T) {
	t.Parallel()
	g := tetrahedron(t)

	for f := 0; f < g.NumFaces(); f++ {
		sum := 0.0
		g.ForEachFaceHalfedge(f, func(h int) bool {
			sum += g.CornerAngle(h)
			return true
		})
		require.InDelta(t, math.Pi, sum, 1e-12)
	}
}

func TestVertexDualArea_SumsToTotalArea(t *testing.T) {
	t.Parallel()

	for name, g := range map[string]*geometry.Geometry{
		"square":      unitSquare(t),
		"tetrahedron": tetrahedron(t),
	} {
		duals := make([]float64, g.NumVertices())
		for v := range duals {
			duals[v] = g.VertexDualArea(v)
		}
		require.InDelta(t, g.TotalArea(), floats.Sum(duals), 1e-12, name)
	}

	sq := unitSquare(t)
	for v := 0; v < 4; v++ {
		require.InDelta(t, 0.25, sq.VertexDualArea(v), eps)
	}
}

func TestObtuseTriangle_NegativeCotan(t *testing.T) {
	t.Parallel()

	m, _ := core.NewMesh(3, [][]int{{0, 1, 2}})
	g, err := geometry.NewPlanar(m, []r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 0.5}})
	require.NoError(t, err)

	// the corner at vertex 2 is obtuse, so the cotangent opposite edge 0→1 is negative
	h := g.FaceHalfedge(0)
	require.Equal(t, 0, g.HalfedgeVertex(h))
	require.Less(t, g.HalfedgeCotan(h), 0.0)
	require.Greater(t, g.CornerAngle(h), math.Pi/2)

	duals := []float64{g.VertexDualArea(0), g.VertexDualArea(1), g.VertexDualArea(2)}
	require.InDelta(t, g.TotalArea(), floats.Sum(duals), 1e-12)
	// the long edge's negative weight pulls both of its endpoints below zero
	require.Less(t, duals[0], 0.0)
	require.Less(t, duals[1], 0.0)
	require.InDelta(t, 4.25, duals[2], 1e-12)
}

func TestDegenerateTriangle(t *testing.T) {
	t.Parallel()

	m, _ := core.NewMesh(3, [][]int{{0, 1, 2}})
	g, err := geometry.NewPlanar(m, []r2.Vec{{X: 0}, {X: 1}, {X: 2}})
	require.NoError(t, err)

	require.Equal(t, 0.0, g.FaceArea(0))
	// the corner at vertex 1 is a straight angle; the other two vanish
	h := g.FaceHalfedge(0)
	require.True(t, math.IsInf(g.HalfedgeCotan(h), 0))
	require.Equal(t, r3.Vec{}, g.FaceNormal(0))
}

func TestBoundaryHalfedge_ZeroCotan(t *testing.T) {
	t.Parallel()
	g := unitSquare(t)

	for h := 0; h < g.NumHalfedges(); h++ {
		if g.IsBoundaryHalfedge(h) {
			require.Equal(t, 0.0, g.HalfedgeCotan(h))
			require.Equal(t, 0.0, g.CornerAngle(h))
		}
	}
}

func TestPolygonFace(t *testing.T) {
	t.Parallel()

	m, err := core.NewMesh(4, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)
	g, err := geometry.NewPlanar(m, []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}, {X: 0, Y: 3}})
	require.NoError(t, err)

	require.InDelta(t, 6, g.FaceArea(0), eps)
	h := g.FaceHalfedge(0)
	require.True(t, math.IsNaN(g.HalfedgeCotan(h)))
	require.InDelta(t, 2.5, g.MeanEdgeLength(), eps)
}
