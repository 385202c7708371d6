// SPDX-License-Identifier: MIT

// Package dec assembles the operators of discrete exterior calculus on a halfedge
// mesh as sparse matrices.
//
// Operators:
//
//	– BuildHodge0       ⋆0, nV×nV diagonal of circumcentric dual areas.
//	– BuildHodge1       ⋆1, nE×nE diagonal of cotangent weights ½(cot α + cot β).
//	– BuildHodge2       ⋆2, nF×nF diagonal of reciprocal face areas.
//	– BuildDerivative0  d0, nE×nV signed vertex→edge incidence.
//	– BuildDerivative1  d1, nF×nE signed edge→face incidence.
//
// Row and column i of every operator is exactly the mesh's index i for that element;
// this is the only coupling between builders and consumers.
//
// Orientation:
//
//	Every edge is directed by its owning halfedge (Connectivity.EdgeHalfedge). d0 puts +1
//	on the head and −1 on the tail of that halfedge; d1 puts +1 where a face traverses the
//	edge along the owner and −1 where it traverses the twin. With this convention
//	d1·d0 = 0 holds on any mesh, which CheckExactness verifies.
//
// Scalars:
//
//	Builders are generic over matrix.Scalar. Geometric quantities are computed in float64
//	and promoted with matrix.FromReal, so complex operators carry zero imaginary parts.
//	Hodge0Real, Hodge0Complex, ... are the enumerated instantiations.
//
// Degeneracy policy:
//
//	Nothing is clamped. With the default tolerance of 0 only exact zeros and negatives
//	are degenerate: a face with area ≤ 0, an edge with length ≤ 0, a negative or NaN dual
//	area. WithDegeneracyTolerance(eps) widens this relatively: area ≤ eps·ℓ_max² (longest
//	edge of the face) and length ≤ eps·ℓ_mean (mean edge length of the mesh).
//	Violations come back as *ElementError wrapping ErrDegenerateGeometry or ErrNonFinite.
//
// Concurrency:
//
//	Builders are pure and reentrant. BuildAll runs the five builders concurrently on one
//	read-only mesh snapshot.
package dec
