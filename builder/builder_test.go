// SPDX-License-Identifier: MIT
// Package builder_test checks fixture topology, geometry and option handling.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ddg/builder"
)

func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		wantF        int
		wantChi      int
		wantArea     float64
	}{
		{"Triangle", builder.Triangle(), 3, 3, 1, 1, 0.5},
		{"UnitSquare", builder.UnitSquare(), 4, 5, 2, 1, 1},
		{"SharedLeg", builder.SharedLeg(), 4, 5, 2, 1, 1},
		{"Fan(6)", builder.Fan(6), 7, 12, 6, 1, 6 * 0.5 * math.Sin(math.Pi/3)},
		{"Grid(2,3)", builder.Grid(2, 3), 12, 23, 12, 1, 6},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), 4, 6, 4, 2, 8 * math.Sqrt(3)},
		{"Cube", builder.PlatonicSolid(builder.Cube), 8, 12, 6, 2, 24},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron), 6, 12, 8, 2, 4 * math.Sqrt(3)},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron), 12, 30, 20, 2, 20 * math.Sqrt(3)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildMesh(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.NumVertices())
			require.Equal(t, tc.wantE, g.NumEdges())
			require.Equal(t, tc.wantF, g.NumFaces())
			require.Equal(t, tc.wantChi, g.EulerCharacteristic())
			require.InDelta(t, tc.wantArea, g.TotalArea(), 1e-9)
		})
	}
}

func TestBuilders_ClosedSolidsOutward(t *testing.T) {
	t.Parallel()

	for _, p := range []builder.PlatonicName{builder.Tetrahedron, builder.Cube, builder.Octahedron, builder.Icosahedron} {
		g, err := builder.BuildMesh(nil, builder.PlatonicSolid(p))
		require.NoError(t, err, p.String())
		require.Zero(t, g.NumBoundaryLoops(), p.String())
		for f := 0; f < g.NumFaces(); f++ {
			// solids are centred at the origin: outward normals point away from it
			h := g.FaceHalfedge(f)
			n := g.FaceNormal(f)
			x := g.Position(g.HalfedgeVertex(h))
			require.Positive(t, n.X*x.X+n.Y*x.Y+n.Z*x.Z, "%s face %d", p, f)
		}
	}
}

func TestBuildMesh_DisjointUnion(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMesh(nil, builder.Triangle(), builder.UnitSquare())
	require.NoError(t, err)
	require.Equal(t, 7, g.NumVertices())
	_, count := g.ConnectedComponents()
	require.Equal(t, 2, count)
	require.Equal(t, []int{3, 4, 5}, g.FaceVertices(1))
}

func TestBuildMesh_Options(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildMesh([]builder.BuilderOption{builder.WithScale(2)}, builder.UnitSquare())
	require.NoError(t, err)
	require.InDelta(t, 4, g.TotalArea(), 1e-12)

	g, err = builder.BuildMesh([]builder.BuilderOption{builder.WithIsolatedVertex()}, builder.UnitSquare())
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.True(t, g.IsIsolatedVertex(4))
	require.Equal(t, 2.0, g.Position(4).X)

	opts := []builder.BuilderOption{builder.WithJitter(0.01), builder.WithSeed(7)}
	a, err := builder.BuildMesh(opts, builder.Grid(2, 2))
	require.NoError(t, err)
	b, err := builder.BuildMesh([]builder.BuilderOption{builder.WithJitter(0.01), builder.WithSeed(7)}, builder.Grid(2, 2))
	require.NoError(t, err)
	require.Equal(t, a.Positions(), b.Positions())
	require.NotEqual(t, 1.0, a.Position(1).X)

	c, err := builder.BuildMesh([]builder.BuilderOption{builder.WithJitter(0.01), builder.WithRand(rand.New(rand.NewSource(7)))}, builder.Grid(2, 2))
	require.NoError(t, err)
	require.Equal(t, a.Positions(), c.Positions())
}

func TestBuildMesh_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		opts []builder.BuilderOption
		cons []builder.Constructor
		want error
	}{
		{"FanTooSmall", nil, []builder.Constructor{builder.Fan(2)}, builder.ErrTooFewVertices},
		{"GridTooSmall", nil, []builder.Constructor{builder.Grid(0, 3)}, builder.ErrTooFewVertices},
		{"UnknownSolid", nil, []builder.Constructor{builder.PlatonicSolid(builder.PlatonicName(99))}, builder.ErrOptionViolation},
		{"NilConstructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"Empty", nil, nil, builder.ErrConstructFailed},
		{"JitterNoRNG", []builder.BuilderOption{builder.WithJitter(0.1)}, []builder.Constructor{builder.Triangle()}, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildMesh(tc.opts, tc.cons...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithScale(0) })
	require.Panics(t, func() { builder.WithScale(math.Inf(1)) })
	require.Panics(t, func() { builder.WithJitter(-1) })
	require.Panics(t, func() { builder.WithJitter(math.NaN()) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestNamed(t *testing.T) {
	t.Parallel()

	for _, name := range builder.ShapeNames() {
		ctor, err := builder.Named(name)
		require.NoError(t, err, name)
		_, err = builder.BuildMesh(nil, ctor)
		require.NoError(t, err, name)
	}
	_, err := builder.Named("dodecahedron")
	require.ErrorIs(t, err, builder.ErrOptionViolation)

	p, ok := builder.ParsePlatonicName("octahedron")
	require.True(t, ok)
	require.Equal(t, builder.Octahedron, p)
}
