// SPDX-License-Identifier: MIT

// Package geometry binds vertex positions to a core.Mesh and derives the metric
// quantities the discrete operators need: edge lengths, face areas, corner angles,
// cotangents and circumcentric dual areas.
//
// Positions are gonum r3.Vec values. Planar meshes are lifted into z = 0 by
// NewPlanar, so every query works in three dimensions.
//
// Numeric policy:
//   - Nothing is clamped. A degenerate triangle yields a zero area and an infinite
//     cotangent; deciding whether that is an error belongs to the caller (see package dec).
//   - Positions must be finite at construction (ErrNonFinitePosition).
package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/ddg/core"
)

// Sentinel errors.
var (
	// ErrNilMesh indicates a nil *core.Mesh.
	ErrNilMesh = errors.New("geometry: mesh is nil")

	// ErrPositionCount indicates len(positions) != mesh.NumVertices().
	ErrPositionCount = errors.New("geometry: position count does not match vertex count")

	// ErrNonFinitePosition indicates a NaN or ±Inf coordinate.
	ErrNonFinitePosition = errors.New("geometry: non-finite vertex position")
)

// Geometry is an embedded halfedge mesh. It embeds *core.Mesh so connectivity queries
// are available directly. Immutable after construction and safe for concurrent reads.
type Geometry struct {
	*core.Mesh

	positions []r3.Vec
}

// New binds positions (one per vertex, copied) to mesh.
//
// Errors: ErrNilMesh, ErrPositionCount, ErrNonFinitePosition (wrapped with the vertex).
// Complexity: O(V).
func New(mesh *core.Mesh, positions []r3.Vec) (*Geometry, error) {
	if mesh == nil {
		return nil, fmt.Errorf("geometry.New: %w", ErrNilMesh)
	}
	if len(positions) != mesh.NumVertices() {
		return nil, fmt.Errorf("geometry.New: %d positions for %d vertices: %w",
			len(positions), mesh.NumVertices(), ErrPositionCount)
	}
	pos := make([]r3.Vec, len(positions))
	for v, p := range positions {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return nil, fmt.Errorf("geometry.New: vertex %d at %v: %w", v, p, ErrNonFinitePosition)
		}
		pos[v] = p
	}

	return &Geometry{Mesh: mesh, positions: pos}, nil
}

// NewPlanar binds 2D positions, embedding them in the z = 0 plane.
func NewPlanar(mesh *core.Mesh, positions []r2.Vec) (*Geometry, error) {
	lifted := make([]r3.Vec, len(positions))
	for i, p := range positions {
		lifted[i] = r3.Vec{X: p.X, Y: p.Y}
	}

	return New(mesh, lifted)
}

// Position returns the position of v.
func (g *Geometry) Position(v int) r3.Vec { return g.positions[v] }

// Positions returns a copy of all vertex positions.
func (g *Geometry) Positions() []r3.Vec {
	out := make([]r3.Vec, len(g.positions))
	copy(out, g.positions)

	return out
}

// HalfedgeVector returns head(h) − tail(h).
func (g *Geometry) HalfedgeVector(h int) r3.Vec {
	return r3.Sub(g.positions[g.HalfedgeHead(h)], g.positions[g.HalfedgeVertex(h)])
}

// EdgeLength returns the Euclidean length of e.
func (g *Geometry) EdgeLength(e int) float64 {
	return r3.Norm(g.HalfedgeVector(g.EdgeHalfedge(e)))
}

// MeanEdgeLength returns the average edge length (0 for a mesh without edges).
func (g *Geometry) MeanEdgeLength() float64 {
	n := g.NumEdges()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for e := 0; e < n; e++ {
		sum += g.EdgeLength(e)
	}

	return sum / float64(n)
}

// FaceVectorArea returns ½ Σ p_i × p_{i+1} over the corners of f. Its norm is the area
// of a planar polygon and its direction the face normal under the traversal order.
func (g *Geometry) FaceVectorArea(f int) r3.Vec {
	var sum r3.Vec
	g.ForEachFaceHalfedge(f, func(h int) bool {
		sum = r3.Add(sum, r3.Cross(g.positions[g.HalfedgeVertex(h)], g.positions[g.HalfedgeHead(h)]))
		return true
	})

	return r3.Scale(0.5, sum)
}

// FaceArea returns the area of f. Triangles use ½|a×b| on edge vectors; polygons
// use the norm of FaceVectorArea.
func (g *Geometry) FaceArea(f int) float64 {
	if g.FaceDegree(f) != 3 {
		return r3.Norm(g.FaceVectorArea(f))
	}
	h := g.FaceHalfedge(f)
	a := g.HalfedgeVector(h)
	b := r3.Scale(-1, g.HalfedgeVector(g.HalfedgeNext(g.HalfedgeNext(h))))

	return 0.5 * r3.Norm(r3.Cross(a, b))
}

// FaceNormal returns the unit normal of f (zero vector for a degenerate face).
func (g *Geometry) FaceNormal(f int) r3.Vec {
	n := g.FaceVectorArea(f)
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}

	return r3.Unit(n)
}

// TotalArea returns Σ FaceArea(f).
func (g *Geometry) TotalArea() float64 {
	sum := 0.0
	for f := 0; f < g.NumFaces(); f++ {
		sum += g.FaceArea(f)
	}

	return sum
}

// oppositeCorner returns the two vectors spanning the corner opposite h in its
// triangle: from the opposite vertex to tail(h) and to head(h).
func (g *Geometry) oppositeCorner(h int) (u, w r3.Vec) {
	opp := g.positions[g.HalfedgeVertex(g.HalfedgeNext(g.HalfedgeNext(h)))]
	u = r3.Sub(g.positions[g.HalfedgeVertex(h)], opp)
	w = r3.Sub(g.positions[g.HalfedgeHead(h)], opp)

	return u, w
}

// CornerAngle returns the interior angle opposite h in its triangle, in radians.
// Boundary halfedges return 0. Undefined (NaN) for non-triangular faces.
func (g *Geometry) CornerAngle(h int) float64 {
	if g.IsBoundaryHalfedge(h) {
		return 0
	}
	if g.FaceDegree(g.HalfedgeFace(h)) != 3 {
		return math.NaN()
	}
	u, w := g.oppositeCorner(h)

	return math.Atan2(r3.Norm(r3.Cross(u, w)), r3.Dot(u, w))
}

// HalfedgeCotan returns the cotangent of the angle opposite h in its triangle,
// computed as dot/|cross| (±Inf for a degenerate corner, NaN if both vanish).
// Boundary halfedges return 0; non-triangular faces return NaN.
func (g *Geometry) HalfedgeCotan(h int) float64 {
	if g.IsBoundaryHalfedge(h) {
		return 0
	}
	if g.FaceDegree(g.HalfedgeFace(h)) != 3 {
		return math.NaN()
	}
	u, w := g.oppositeCorner(h)

	return r3.Dot(u, w) / r3.Norm(r3.Cross(u, w))
}

// EdgeCotanWeight returns ½(cot α + cot β) over the angles opposite e.
func (g *Geometry) EdgeCotanWeight(e int) float64 {
	h := g.EdgeHalfedge(e)

	return 0.5 * (g.HalfedgeCotan(h) + g.HalfedgeCotan(g.HalfedgeTwin(h)))
}

// VertexDualArea returns the circumcentric dual area of v: for each incident triangle
// (i, j, k) at i the contribution (|e_ij|² cot θ_k + |e_ik|² cot θ_j)/8. Contributions
// can be negative for obtuse triangles; the total is returned unclamped.
// Isolated vertices return 0.
func (g *Geometry) VertexDualArea(v int) float64 {
	sum := 0.0
	g.ForEachVertexHalfedge(v, func(h int) bool {
		// outgoing h covers e_ij; the incoming side of the same face covers e_ik
		if !g.IsBoundaryHalfedge(h) {
			sum += r3.Norm2(g.HalfedgeVector(h)) * g.HalfedgeCotan(h) / 8
		}
		in := g.HalfedgeTwin(h)
		if !g.IsBoundaryHalfedge(in) {
			sum += r3.Norm2(g.HalfedgeVector(in)) * g.HalfedgeCotan(in) / 8
		}
		return true
	})

	return sum
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
