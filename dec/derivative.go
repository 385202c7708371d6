// SPDX-License-Identifier: MIT
//
// File: derivative.go
// Role: signed incidence operators d0, d1 and the d1·d0 = 0 check.
// Policy:
//   - Connectivity is read, never repaired; inconsistencies surface as ErrOrientation.
//   - Entries are exact ±1 promoted into T.

package dec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ddg/matrix"
)

const (
	opDerivative0 = "BuildDerivative0"
	opDerivative1 = "BuildDerivative1"
	opExactness   = "CheckExactness"
)

// BuildDerivative0 returns d0: the nE×nV matrix whose row e holds +1 at the head and
// −1 at the tail of e's owning halfedge.
//
// Errors: ErrOrientation when the owning halfedge is out of range, does not belong to e,
// or is a loop (tail == head).
// Complexity: Time O(E), Space O(E).
func BuildDerivative0[T matrix.Scalar](c Connectivity) (*matrix.Sparse[T], error) {
	if isNil(c) {
		return nil, elementErr(opDerivative0, KindEdge, -1, math.NaN(), ErrNilMesh)
	}
	nE, nV, nH := c.NumEdges(), c.NumVertices(), c.NumHalfedges()
	m, err := matrix.NewSparse[T](nE, nV)
	if err != nil {
		return nil, err
	}
	plus, minus := matrix.FromReal[T](1), matrix.FromReal[T](-1)
	for e := 0; e < nE; e++ {
		h := c.EdgeHalfedge(e)
		if h < 0 || h >= nH || c.HalfedgeEdge(h) != e {
			return nil, elementErr(opDerivative0, KindEdge, e, float64(h), ErrOrientation)
		}
		tail, head := c.HalfedgeVertex(h), c.HalfedgeVertex(c.HalfedgeTwin(h))
		if tail == head {
			return nil, elementErr(opDerivative0, KindEdge, e, float64(tail), ErrOrientation)
		}
		if err = m.Set(e, head, plus); err != nil {
			return nil, err
		}
		if err = m.Set(e, tail, minus); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// BuildDerivative1 returns d1: the nF×nE matrix whose row f holds, for each halfedge h
// around f, +1 at Edge(h) when h owns the edge and −1 when its twin does. Contributions
// accumulate, so an edge traversed twice by the same face sums its signs.
//
// Implementation:
//   - Stage 1: walk Next from FaceHalfedge(f) for FaceDegree(f) steps; the walk must
//     close and stay in f.
//   - Stage 2: classify each halfedge against EdgeHalfedge(Edge(h)).
//
// Errors: ErrOrientation on an open or foreign face cycle, an out-of-range edge, or an
// owner that is neither h nor Twin(h).
// Complexity: Time O(Σ deg f), Space O(Σ deg f).
func BuildDerivative1[T matrix.Scalar](c Connectivity) (*matrix.Sparse[T], error) {
	if isNil(c) {
		return nil, elementErr(opDerivative1, KindFace, -1, math.NaN(), ErrNilMesh)
	}
	nF, nE := c.NumFaces(), c.NumEdges()
	m, err := matrix.NewSparse[T](nF, nE)
	if err != nil {
		return nil, err
	}
	plus, minus := matrix.FromReal[T](1), matrix.FromReal[T](-1)
	for f := 0; f < nF; f++ {
		start := c.FaceHalfedge(f)
		h := start
		for k := 0; k < c.FaceDegree(f); k++ {
			if c.HalfedgeFace(h) != f {
				return nil, elementErr(opDerivative1, KindHalfedge, h, float64(f), ErrOrientation)
			}
			e := c.HalfedgeEdge(h)
			if e < 0 || e >= nE {
				return nil, elementErr(opDerivative1, KindHalfedge, h, float64(e), ErrOrientation)
			}
			switch c.EdgeHalfedge(e) {
			case h:
				err = m.Add(f, e, plus)
			case c.HalfedgeTwin(h):
				err = m.Add(f, e, minus)
			default:
				return nil, elementErr(opDerivative1, KindEdge, e, float64(h), ErrOrientation)
			}
			if err != nil {
				return nil, err
			}
			h = c.HalfedgeNext(h)
		}
		if h != start {
			return nil, elementErr(opDerivative1, KindFace, f, float64(h), ErrOrientation)
		}
	}

	return m, nil
}

// CheckExactness verifies every entry of d1·d0 satisfies |v| ≤ tol.
// A failure wraps ErrOrientation with the worst (row, col, value).
func CheckExactness[T matrix.Scalar](d0, d1 *matrix.Sparse[T], tol float64) error {
	p, err := matrix.Mul(d1, d0)
	if err != nil {
		return fmt.Errorf("%s: %w", opExactness, err)
	}
	if v, i, j := matrix.MaxAbs(p); i >= 0 && !(v <= tol) {
		return fmt.Errorf("%s: d1·d0 (%d,%d) = %g: %w", opExactness, i, j, v, ErrOrientation)
	}

	return nil
}
