// SPDX-License-Identifier: MIT
//
// File: hodge.go
// Role: diagonal Hodge stars ⋆0, ⋆1, ⋆2.
// Policy:
//   - Every diagonal position is stored, including zeros, so the pattern is the full diagonal.
//   - Faces are validated before any entry is assembled; the first bad element wins.
//   - Values are never clamped; faults are returned as *ElementError.

package dec

import (
	"math"

	"github.com/katalvlaran/ddg/matrix"
)

const (
	opHodge0 = "BuildHodge0"
	opHodge1 = "BuildHodge1"
	opHodge2 = "BuildHodge2"
)

// BuildHodge0 returns ⋆0: the nV×nV diagonal of circumcentric dual areas.
//
// Implementation:
//   - Stage 1: validate faces (triangles, area above the degeneracy threshold).
//   - Stage 2: every interior halfedge h adds ℓ(h)²·cot(h)/8 to both of its endpoints.
//   - Stage 3: reject negative/NaN totals (ErrDegenerateGeometry) and ±Inf (ErrNonFinite).
//
// Isolated vertices get an explicit 0. Summed over all vertices the entries equal the
// total surface area.
//
// Complexity: Time O(V + H), Space O(V).
func BuildHodge0[T matrix.Scalar](g Embedding, opts ...Option) (*matrix.Sparse[T], error) {
	if isNil(g) {
		return nil, elementErr(opHodge0, KindVertex, -1, math.NaN(), ErrNilMesh)
	}
	o := gatherOptions(opts)
	if err := checkFaces(opHodge0, g, o.Tolerance, true); err != nil {
		return nil, err
	}

	dual := make([]float64, g.NumVertices())
	for h := 0; h < g.NumHalfedges(); h++ {
		if isBoundary(g, h) {
			continue
		}
		l := g.EdgeLength(g.HalfedgeEdge(h))
		w := l * l * g.HalfedgeCotan(h) / 8
		dual[g.HalfedgeVertex(h)] += w
		dual[g.HalfedgeVertex(g.HalfedgeTwin(h))] += w
	}

	m, err := matrix.NewSparse[T](len(dual), len(dual))
	if err != nil {
		return nil, err
	}
	for v, a := range dual {
		switch {
		case math.IsInf(a, 0):
			return nil, elementErr(opHodge0, KindVertex, v, a, ErrNonFinite)
		case math.IsNaN(a) || a < 0:
			return nil, elementErr(opHodge0, KindVertex, v, a, ErrDegenerateGeometry)
		}
		if err = m.Set(v, v, matrix.FromReal[T](a)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// BuildHodge1 returns ⋆1: the nE×nE diagonal with entry ½(cot α + cot β) over the
// angles opposite e. A boundary edge has a single term. Negative entries (obtuse
// configurations) are legal; non-finite entries are not.
//
// Errors: ErrNotTriangle, ErrDegenerateGeometry (face area or edge length), ErrNonFinite.
// Complexity: Time O(E + F), Space O(E).
func BuildHodge1[T matrix.Scalar](g Embedding, opts ...Option) (*matrix.Sparse[T], error) {
	if isNil(g) {
		return nil, elementErr(opHodge1, KindEdge, -1, math.NaN(), ErrNilMesh)
	}
	o := gatherOptions(opts)
	if err := checkFaces(opHodge1, g, o.Tolerance, true); err != nil {
		return nil, err
	}

	nE := g.NumEdges()
	minLen := 0.0
	if o.Tolerance > 0 {
		minLen = o.Tolerance * meanEdgeLength(g)
	}
	m, err := matrix.NewSparse[T](nE, nE)
	if err != nil {
		return nil, err
	}
	for e := 0; e < nE; e++ {
		l := g.EdgeLength(e)
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, elementErr(opHodge1, KindEdge, e, l, ErrNonFinite)
		}
		if l <= minLen {
			return nil, elementErr(opHodge1, KindEdge, e, l, ErrDegenerateGeometry)
		}

		h := g.EdgeHalfedge(e)
		sum := 0.0
		for _, side := range [2]int{h, g.HalfedgeTwin(h)} {
			if !isBoundary(g, side) {
				sum += g.HalfedgeCotan(side)
			}
		}
		w := 0.5 * sum
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, elementErr(opHodge1, KindEdge, e, w, ErrNonFinite)
		}
		if err = m.Set(e, e, matrix.FromReal[T](w)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// BuildHodge2 returns ⋆2: the nF×nF diagonal with entry 1/area(f). Polygons are accepted.
// A face at or below the degeneracy threshold is an error; +Inf is never stored.
//
// Complexity: Time O(Σ deg f), Space O(F).
func BuildHodge2[T matrix.Scalar](g Embedding, opts ...Option) (*matrix.Sparse[T], error) {
	if isNil(g) {
		return nil, elementErr(opHodge2, KindFace, -1, math.NaN(), ErrNilMesh)
	}
	o := gatherOptions(opts)
	if err := checkFaces(opHodge2, g, o.Tolerance, false); err != nil {
		return nil, err
	}

	nF := g.NumFaces()
	m, err := matrix.NewSparse[T](nF, nF)
	if err != nil {
		return nil, err
	}
	for f := 0; f < nF; f++ {
		inv := 1 / g.FaceArea(f)
		if math.IsInf(inv, 0) || math.IsNaN(inv) {
			return nil, elementErr(opHodge2, KindFace, f, inv, ErrNonFinite)
		}
		if err = m.Set(f, f, matrix.FromReal[T](inv)); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// checkFaces validates every face: degree (when triangles are required), finiteness
// and area against tol·ℓ_max².
func checkFaces(op string, g Embedding, tol float64, triangles bool) error {
	for f := 0; f < g.NumFaces(); f++ {
		if deg := g.FaceDegree(f); triangles && deg != 3 {
			return elementErr(op, KindFace, f, float64(deg), ErrNotTriangle)
		}
		a := g.FaceArea(f)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return elementErr(op, KindFace, f, a, ErrNonFinite)
		}
		minArea := 0.0
		if tol > 0 {
			lmax := longestFaceEdge(g, f)
			minArea = tol * lmax * lmax
		}
		if a <= minArea {
			return elementErr(op, KindFace, f, a, ErrDegenerateGeometry)
		}
	}

	return nil
}

func longestFaceEdge(g Embedding, f int) float64 {
	lmax := 0.0
	h := g.FaceHalfedge(f)
	for k := 0; k < g.FaceDegree(f); k++ {
		lmax = math.Max(lmax, g.EdgeLength(g.HalfedgeEdge(h)))
		h = g.HalfedgeNext(h)
	}

	return lmax
}

func meanEdgeLength(g Embedding) float64 {
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
