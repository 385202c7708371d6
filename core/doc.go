// SPDX-License-Identifier: MIT

// Package core provides an immutable halfedge mesh: the connectivity layer every
// operator in ddg is indexed against.
//
// A Mesh M = (V, E, F) is built once from a polygon soup (faces given as cyclic
// lists of vertex indices) and never mutated afterwards, so it can be shared freely
// between goroutines without locks.
//
// Element indexing:
//
//   - Vertices  [0, NumVertices())  — exactly the indices used in the input faces.
//   - Faces     [0, NumFaces())     — input order.
//   - Edges     [0, NumEdges())     — order of first appearance while scanning faces
//     in input order and each face's corners in cyclic order.
//   - Halfedges [0, NumHalfedges()) — interior halfedges first (face order, corner
//     order), then boundary halfedges; NumHalfedges() == 2*NumEdges().
//
// Edge orientation:
//
//	Every edge has an owning halfedge, EdgeHalfedge(e): the first halfedge created for
//	it, which is always interior. The edge is oriented from the owner's tail to its
//	head. All signed operators (see package dec) read orientation from here and only
//	from here.
//
// Boundary:
//
//	Unmatched interior halfedges receive a boundary twin with Face == NoFace. Boundary
//	halfedges are linked by Next into boundary loops, so Next(Twin(h)) rotates around a
//	vertex through boundary gaps as well.
//
// Errors:
//
//	ErrNoVertices, ErrFaceTooSmall, ErrNotTriangle, ErrVertexOutOfRange,
//	ErrRepeatedVertex, ErrNonManifoldEdge, ErrNonManifoldVertex.
//
// Complexity:
//
//	NewMesh is O(Σ deg(f)) time and space (one hash lookup per halfedge).
//	All element queries are O(1); traversals are O(size of the visited neighbourhood).
package core
