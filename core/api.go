// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only element queries on an immutable Mesh.
// Policy:
//   - No hidden state and no locking: a Mesh never changes after NewMesh.
//   - Indices are trusted. Out-of-range arguments panic like a slice index would;
//     callers iterate [0, NumX()) and never need a checked variant.

package core

// NumVertices returns the vertex count (isolated vertices included).
func (m *Mesh) NumVertices() int { return len(m.vertexHalfedge) }

// NumEdges returns the undirected edge count.
func (m *Mesh) NumEdges() int { return len(m.edgeHalfedge) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.faceHalfedge) }

// NumHalfedges returns the halfedge count, always 2*NumEdges().
func (m *Mesh) NumHalfedges() int { return len(m.halfedges) }

// NumBoundaryLoops returns the number of boundary cycles (0 for a closed surface).
func (m *Mesh) NumBoundaryLoops() int { return m.boundaryLoops }

// Halfedge returns a copy of the halfedge record h.
func (m *Mesh) Halfedge(h int) Halfedge { return m.halfedges[h] }

// HalfedgeVertex returns the tail vertex of h.
func (m *Mesh) HalfedgeVertex(h int) int { return m.halfedges[h].Vertex }

// HalfedgeHead returns the head vertex of h.
func (m *Mesh) HalfedgeHead(h int) int { return m.halfedges[m.halfedges[h].Twin].Vertex }

// HalfedgeTwin returns the opposite halfedge of h.
func (m *Mesh) HalfedgeTwin(h int) int { return m.halfedges[h].Twin }

// HalfedgeNext returns the next halfedge around h's face or boundary loop.
func (m *Mesh) HalfedgeNext(h int) int { return m.halfedges[h].Next }

// HalfedgeEdge returns the undirected edge of h.
func (m *Mesh) HalfedgeEdge(h int) int { return m.halfedges[h].Edge }

// HalfedgeFace returns the face of h, or NoFace on the boundary.
func (m *Mesh) HalfedgeFace(h int) int { return m.halfedges[h].Face }

// IsBoundaryHalfedge reports whether h has no incident face.
func (m *Mesh) IsBoundaryHalfedge(h int) bool { return m.halfedges[h].Face == NoFace }

// EdgeHalfedge returns the owning halfedge of e. It is always interior and its
// direction is the canonical orientation of e.
func (m *Mesh) EdgeHalfedge(e int) int { return m.edgeHalfedge[e] }

// EdgeVertices returns (tail, head) of e under the canonical orientation.
func (m *Mesh) EdgeVertices(e int) (tail, head int) {
	h := m.edgeHalfedge[e]

	return m.halfedges[h].Vertex, m.HalfedgeHead(h)
}

// IsBoundaryEdge reports whether e has exactly one incident face.
func (m *Mesh) IsBoundaryEdge(e int) bool {
	return m.IsBoundaryHalfedge(m.halfedges[m.edgeHalfedge[e]].Twin)
}

// FaceHalfedge returns the first corner halfedge of f (tail = first input vertex).
func (m *Mesh) FaceHalfedge(f int) int { return m.faceHalfedge[f] }

// FaceDegree returns the number of corners of f.
func (m *Mesh) FaceDegree(f int) int { return m.faceDegree[f] }

// FaceVertices returns the vertices of f in traversal order (newly allocated).
func (m *Mesh) FaceVertices(f int) []int {
	out := make([]int, 0, m.faceDegree[f])
	m.ForEachFaceHalfedge(f, func(h int) bool {
		out = append(out, m.halfedges[h].Vertex)
		return true
	})

	return out
}

// VertexHalfedge returns an outgoing halfedge of v, or NoHalfedge if v is isolated.
// For boundary vertices it is the outgoing boundary halfedge.
func (m *Mesh) VertexHalfedge(v int) int { return m.vertexHalfedge[v] }

// IsIsolatedVertex reports whether v is referenced by no face.
func (m *Mesh) IsIsolatedVertex(v int) bool { return m.vertexHalfedge[v] == NoHalfedge }

// IsBoundaryVertex reports whether v lies on a boundary loop.
func (m *Mesh) IsBoundaryVertex(v int) bool {
	h := m.vertexHalfedge[v]

	return h != NoHalfedge && m.halfedges[h].Face == NoFace
}

// EulerCharacteristic returns V − E + F (isolated vertices count).
func (m *Mesh) EulerCharacteristic() int {
	return m.NumVertices() - m.NumEdges() + m.NumFaces()
}

// Stats returns a snapshot of element counts. Complexity: O(V + E).
func (m *Mesh) Stats() Stats {
	s := Stats{
		Vertices:      m.NumVertices(),
		Edges:         m.NumEdges(),
		Faces:         m.NumFaces(),
		Halfedges:     m.NumHalfedges(),
		BoundaryEdges: m.NumHalfedges() - m.nInterior,
		BoundaryLoops: m.boundaryLoops,
	}
	for _, h := range m.vertexHalfedge {
		if h == NoHalfedge {
			s.IsolatedVertices++
		}
	}

	return s
}
