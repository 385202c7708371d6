// SPDX-License-Identifier: MIT

package dec

import "reflect"

// Connectivity is the halfedge adjacency the derivative builders read.
// *core.Mesh implements it.
//
// Boundary halfedges report a negative face. EdgeHalfedge(e) is the owning halfedge
// that fixes the orientation of e.
type Connectivity interface {
	NumVertices() int
	NumEdges() int
	NumFaces() int
	NumHalfedges() int

	HalfedgeVertex(h int) int // tail
	HalfedgeTwin(h int) int
	HalfedgeNext(h int) int
	HalfedgeEdge(h int) int
	HalfedgeFace(h int) int

	EdgeHalfedge(e int) int
	FaceHalfedge(f int) int
	FaceDegree(f int) int
}

// Embedding adds the metric queries the Hodge builders need.
// *geometry.Geometry implements it.
type Embedding interface {
	Connectivity

	EdgeLength(e int) float64
	FaceArea(f int) float64
	// HalfedgeCotan is the cotangent of the angle opposite h in its (triangular) face.
	HalfedgeCotan(h int) float64
}

func isBoundary(c Connectivity, h int) bool { return c.HalfedgeFace(h) < 0 }

// isNil also catches a typed nil pointer stored in the interface.
func isNil(c Connectivity) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
