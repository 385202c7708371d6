// SPDX-License-Identifier: MIT

// Package core: domain types of the halfedge mesh, sentinel errors and options.
package core

import "errors"

// Sentinel errors for mesh construction.
var (
	// ErrNoVertices indicates that a mesh was requested with a non-positive vertex count.
	ErrNoVertices = errors.New("core: vertex count must be > 0")

	// ErrFaceTooSmall indicates a face with fewer than three corners.
	ErrFaceTooSmall = errors.New("core: face has fewer than 3 vertices")

	// ErrNotTriangle indicates a non-triangular face under WithTrianglesOnly.
	ErrNotTriangle = errors.New("core: face is not a triangle")

	// ErrVertexOutOfRange indicates a face referencing a vertex index outside [0, nVertices).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrRepeatedVertex indicates a face visiting the same vertex twice.
	ErrRepeatedVertex = errors.New("core: vertex repeated within a face")

	// ErrNonManifoldEdge indicates an edge shared by more than two faces, or two faces
	// traversing a shared edge in the same direction (inconsistent orientation).
	ErrNonManifoldEdge = errors.New("core: non-manifold or inconsistently oriented edge")

	// ErrNonManifoldVertex indicates a vertex where more than one boundary fan meets.
	ErrNonManifoldVertex = errors.New("core: non-manifold vertex on the boundary")
)

// NoFace marks the Face of a boundary halfedge.
const NoFace = -1

// NoHalfedge marks the absence of a halfedge (e.g. the VertexHalfedge of an isolated vertex).
const NoHalfedge = -1

// Halfedge is one directed side of an edge.
//
// Vertex is the tail; the head is Vertex of Twin (equivalently of Next).
// Face is NoFace for boundary halfedges.
type Halfedge struct {
	Vertex int // tail vertex
	Twin   int // oppositely oriented halfedge of the same edge
	Next   int // next halfedge around the same face or boundary loop
	Edge   int // undirected edge index
	Face   int // incident face or NoFace
}

// Stats is a snapshot of element counts.
type Stats struct {
	Vertices         int
	Edges            int
	Faces            int
	Halfedges        int
	BoundaryEdges    int
	BoundaryLoops    int
	IsolatedVertices int
}

// Mesh is an immutable halfedge mesh. The zero value is not usable; call NewMesh.
type Mesh struct {
	halfedges []Halfedge

	vertexHalfedge []int // outgoing halfedge per vertex, NoHalfedge if isolated
	edgeHalfedge   []int // owning (interior) halfedge per edge
	faceHalfedge   []int // first corner halfedge per face
	faceDegree     []int

	nInterior     int // interior halfedges occupy [0, nInterior)
	boundaryLoops int
}

// MeshOption configures mesh construction.
type MeshOption func(*meshConfig)

type meshConfig struct {
	trianglesOnly bool
}

// WithTrianglesOnly rejects any face whose degree is not 3 with ErrNotTriangle.
func WithTrianglesOnly() MeshOption {
	return func(c *meshConfig) { c.trianglesOnly = true }
}
