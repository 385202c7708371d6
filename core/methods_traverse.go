// SPDX-License-Identifier: MIT
//
// File: methods_traverse.go
// Role: Local circulators (face, vertex) and global connected components.
// Policy:
//   - Callbacks return false to stop early, mirroring Dense.Do in package matrix.
//   - Components use a FIFO frontier over edge adjacency; labels are assigned in
//     increasing order of the smallest vertex index of each component.

package core

// ForEachFaceHalfedge calls fn for every halfedge of f in traversal order,
// starting at FaceHalfedge(f). Stops when fn returns false.
// Complexity: O(deg f).
func (m *Mesh) ForEachFaceHalfedge(f int, fn func(h int) bool) {
	start := m.faceHalfedge[f]
	h := start
	for {
		if !fn(h) {
			return
		}
		h = m.halfedges[h].Next
		if h == start {
			return
		}
	}
}

// ForEachVertexHalfedge calls fn for every outgoing halfedge of v (boundary ones
// included), rotating with Next(Twin(h)). Isolated vertices yield no calls.
// Complexity: O(deg v).
func (m *Mesh) ForEachVertexHalfedge(v int, fn func(h int) bool) {
	start := m.vertexHalfedge[v]
	if start == NoHalfedge {
		return
	}
	h := start
	for {
		if !fn(h) {
			return
		}
		h = m.halfedges[m.halfedges[h].Twin].Next
		if h == start {
			return
		}
	}
}

// VertexDegree returns the number of edges incident to v.
func (m *Mesh) VertexDegree(v int) int {
	deg := 0
	m.ForEachVertexHalfedge(v, func(int) bool {
		deg++
		return true
	})

	return deg
}

// ConnectedComponents labels every vertex with its component index and returns the
// labels together with the component count. Isolated vertices form singleton components.
//
// Implementation:
//   - Stage 1: scan vertices in index order; an unlabelled vertex seeds a new component.
//   - Stage 2: breadth-first expansion over outgoing halfedges (head of each one).
//
// Complexity: Time O(V + E), Space O(V).
func (m *Mesh) ConnectedComponents() (labels []int, count int) {
	n := m.NumVertices()
	labels = make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, n)
	for seed := 0; seed < n; seed++ {
		if labels[seed] != -1 {
			continue
		}
		labels[seed] = count
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			m.ForEachVertexHalfedge(v, func(h int) bool {
				w := m.HalfedgeHead(h)
				if labels[w] == -1 {
					labels[w] = count
					queue = append(queue, w)
				}
				return true
			})
		}
		count++
	}

	return labels, count
}
