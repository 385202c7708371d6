// SPDX-License-Identifier: MIT
package dec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/ddg/builder"
	"github.com/katalvlaran/ddg/core"
	"github.com/katalvlaran/ddg/geometry"
)

// mustMesh builds a fixture or fails the test.
func mustMesh(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *geometry.Geometry {
	t.Helper()
	g, err := builder.BuildMesh(opts, cons...)
	require.NoError(t, err)

	return g
}

// planarTriangle embeds the single triangle (0,1,2) at the given points.
func planarTriangle(t *testing.T, p0, p1, p2 r2.Vec) *geometry.Geometry {
	t.Helper()
	m, err := core.NewMesh(3, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	g, err := geometry.NewPlanar(m, []r2.Vec{p0, p1, p2})
	require.NoError(t, err)

	return g
}

// edgeBetween returns the edge joining u and v, or -1.
func edgeBetween(g *geometry.Geometry, u, v int) int {
	for e := 0; e < g.NumEdges(); e++ {
		a, b := g.EdgeVertices(e)
		if (a == u && b == v) || (a == v && b == u) {
			return e
		}
	}

	return -1
}

// fixtures is the set of triangle meshes every structural property is checked on.
func fixtures(t *testing.T) map[string]*geometry.Geometry {
	t.Helper()

	return map[string]*geometry.Geometry{
		"triangle":    mustMesh(t, nil, builder.Triangle()),
		"square":      mustMesh(t, nil, builder.UnitSquare()),
		"sharedleg":   mustMesh(t, nil, builder.SharedLeg()),
		"fan":         mustMesh(t, nil, builder.Fan(7)),
		"grid":        mustMesh(t, nil, builder.Grid(3, 4)),
		"jittered":    mustMesh(t, []builder.BuilderOption{builder.WithJitter(0.02), builder.WithSeed(11)}, builder.Grid(3, 3)),
		"tetrahedron": mustMesh(t, nil, builder.PlatonicSolid(builder.Tetrahedron)),
		"octahedron":  mustMesh(t, nil, builder.PlatonicSolid(builder.Octahedron)),
		"icosahedron": mustMesh(t, []builder.BuilderOption{builder.WithScale(0.5)}, builder.PlatonicSolid(builder.Icosahedron)),
	}
}

// flippedOwner reports the twin as the owner of one edge, reversing its orientation.
type flippedOwner struct {
	*core.Mesh
	edge int
}

func (f flippedOwner) EdgeHalfedge(e int) int {
	h := f.Mesh.EdgeHalfedge(e)
	if e == f.edge {
		return f.Mesh.HalfedgeTwin(h)
	}

	return h
}

// brokenOwner reports an out-of-range owning halfedge for one edge.
type brokenOwner struct {
	*core.Mesh
	edge int
}

func (b brokenOwner) EdgeHalfedge(e int) int {
	if e == b.edge {
		return b.Mesh.NumHalfedges()
	}

	return b.Mesh.EdgeHalfedge(e)
}

// foreignEdge makes one halfedge claim an edge it does not bound.
type foreignEdge struct {
	*core.Mesh
	halfedge, edge int
}

func (f foreignEdge) HalfedgeEdge(h int) int {
	if h == f.halfedge {
		return f.edge
	}

	return f.Mesh.HalfedgeEdge(h)
}
