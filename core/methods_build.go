// SPDX-License-Identifier: MIT
//
// File: methods_build.go
// Role: NewMesh — polygon soup → halfedge connectivity.
// Policy:
//   - Deterministic numbering (see doc.go); identical input ⇒ identical mesh.
//   - Validation failures return sentinels wrapped with the offending face/vertex.
//   - No repair: inconsistent orientation and non-manifold input are rejected, never fixed.

package core

import "fmt"

// dirKey is an ordered vertex pair identifying an interior halfedge tail→head.
type dirKey struct{ tail, head int }

// NewMesh builds the halfedge connectivity for nVertices vertices and the given faces.
//
// Implementation:
//   - Stage 1: validate every face (degree, index range, repeats).
//   - Stage 2: create interior halfedges face by face; pair each with an already
//     created reverse halfedge when one exists, otherwise open a new edge owned by it.
//   - Stage 3: give every unpaired halfedge a boundary twin and link boundary loops.
//   - Stage 4: pick one outgoing halfedge per vertex and count boundary loops.
//
// Errors:
//   - ErrNoVertices, ErrFaceTooSmall, ErrNotTriangle (WithTrianglesOnly),
//     ErrVertexOutOfRange, ErrRepeatedVertex, ErrNonManifoldEdge, ErrNonManifoldVertex.
//
// Complexity:
//   - Time O(nVertices + Σ deg(f)), Space O(nVertices + Σ deg(f)).
func NewMesh(nVertices int, faces [][]int, opts ...MeshOption) (*Mesh, error) {
	var cfg meshConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if nVertices <= 0 {
		return nil, fmt.Errorf("NewMesh: %d: %w", nVertices, ErrNoVertices)
	}

	// Stage 1: validation and corner count.
	corners := 0
	for f, face := range faces {
		if err := validateFace(f, face, nVertices, cfg); err != nil {
			return nil, fmt.Errorf("NewMesh: %w", err)
		}
		corners += len(face)
	}

	m := &Mesh{
		halfedges:    make([]Halfedge, 0, 2*corners),
		faceHalfedge: make([]int, len(faces)),
		faceDegree:   make([]int, len(faces)),
		edgeHalfedge: make([]int, 0, corners),
	}

	// Stage 2: interior halfedges.
	directed := make(map[dirKey]int, corners)
	for f, face := range faces {
		first := len(m.halfedges)
		deg := len(face)
		m.faceHalfedge[f] = first
		m.faceDegree[f] = deg
		for k := 0; k < deg; k++ {
			tail, head := face[k], face[(k+1)%deg]
			key := dirKey{tail, head}
			if _, dup := directed[key]; dup {
				return nil, fmt.Errorf("NewMesh: face %d edge (%d,%d): %w", f, tail, head, ErrNonManifoldEdge)
			}
			h := len(m.halfedges)
			directed[key] = h

			he := Halfedge{Vertex: tail, Twin: NoHalfedge, Next: first + (k+1)%deg, Face: f}
			if r, ok := directed[dirKey{head, tail}]; ok {
				// reverse side already exists: join its edge
				he.Twin = r
				he.Edge = m.halfedges[r].Edge
				m.halfedges[r].Twin = h
			} else {
				he.Edge = len(m.edgeHalfedge)
				m.edgeHalfedge = append(m.edgeHalfedge, h)
			}
			m.halfedges = append(m.halfedges, he)
		}
	}
	m.nInterior = len(m.halfedges)

	// Stage 3: boundary twins, one boundary halfedge leaving each boundary vertex.
	boundaryOut := make(map[int]int)
	for h := 0; h < m.nInterior; h++ {
		if m.halfedges[h].Twin != NoHalfedge {
			continue
		}
		head := m.halfedges[m.halfedges[h].Next].Vertex
		b := len(m.halfedges)
		if prev, taken := boundaryOut[head]; taken {
			return nil, fmt.Errorf("NewMesh: vertex %d (boundary halfedges %d and %d): %w",
				head, prev, b, ErrNonManifoldVertex)
		}
		boundaryOut[head] = b
		m.halfedges = append(m.halfedges, Halfedge{
			Vertex: head,
			Twin:   h,
			Next:   NoHalfedge,
			Edge:   m.halfedges[h].Edge,
			Face:   NoFace,
		})
		m.halfedges[h].Twin = b
	}
	for b := m.nInterior; b < len(m.halfedges); b++ {
		// b runs head(twin) → tail(twin); continue from the boundary halfedge leaving tail(twin).
		to := m.halfedges[m.halfedges[b].Twin].Vertex
		next, ok := boundaryOut[to]
		if !ok {
			return nil, fmt.Errorf("NewMesh: open boundary at vertex %d: %w", to, ErrNonManifoldVertex)
		}
		m.halfedges[b].Next = next
	}

	// Stage 4: vertex anchors and loop count.
	m.vertexHalfedge = make([]int, nVertices)
	for v := range m.vertexHalfedge {
		m.vertexHalfedge[v] = NoHalfedge
	}
	for h := range m.halfedges {
		v := m.halfedges[h].Vertex
		if m.vertexHalfedge[v] == NoHalfedge {
			m.vertexHalfedge[v] = h
		}
	}
	// Boundary vertices anchor on their boundary halfedge so rotations start at the gap.
	for v, b := range boundaryOut {
		m.vertexHalfedge[v] = b
	}
	// One rotation around each vertex must reach every outgoing halfedge; two closed
	// fans pinched at a vertex leave some unreached.
	outgoing := make([]int, nVertices)
	for h := range m.halfedges {
		outgoing[m.halfedges[h].Vertex]++
	}
	for v, start := range m.vertexHalfedge {
		if start == NoHalfedge {
			continue
		}
		n := 0
		for h := start; n <= outgoing[v]; {
			n++
			h = m.halfedges[m.halfedges[h].Twin].Next
			if h == start {
				break
			}
		}
		if n != outgoing[v] {
			return nil, fmt.Errorf("NewMesh: vertex %d rotation reaches %d of %d halfedges: %w",
				v, n, outgoing[v], ErrNonManifoldVertex)
		}
	}
	m.boundaryLoops = m.countBoundaryLoops()

	return m, nil
}

// validateFace checks one input face against the construction policy.
func validateFace(f int, face []int, nVertices int, cfg meshConfig) error {
	if len(face) < 3 {
		return fmt.Errorf("face %d has %d vertices: %w", f, len(face), ErrFaceTooSmall)
	}
	if cfg.trianglesOnly && len(face) != 3 {
		return fmt.Errorf("face %d has %d vertices: %w", f, len(face), ErrNotTriangle)
	}
	for k, v := range face {
		if v < 0 || v >= nVertices {
			return fmt.Errorf("face %d corner %d: vertex %d not in [0,%d): %w", f, k, v, nVertices, ErrVertexOutOfRange)
		}
		for j := 0; j < k; j++ {
			if face[j] == v {
				return fmt.Errorf("face %d: vertex %d: %w", f, v, ErrRepeatedVertex)
			}
		}
	}

	return nil
}

// countBoundaryLoops walks each boundary cycle once.
func (m *Mesh) countBoundaryLoops() int {
	seen := make([]bool, len(m.halfedges)-m.nInterior)
	loops := 0
	for b := m.nInterior; b < len(m.halfedges); b++ {
		if seen[b-m.nInterior] {
			continue
		}
		loops++
		for h := b; !seen[h-m.nInterior]; h = m.halfedges[h].Next {
			seen[h-m.nInterior] = true
		}
	}

	return loops
}
