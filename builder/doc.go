// Package builder provides deterministic mesh fixtures in the functional-options
// style: small embedded halfedge meshes whose operators have hand-checkable values.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMesh(opts, cons...): runs constructors into one draft (disjoint union),
//     applies the resolved options and returns a *geometry.Geometry.
//   - Constructors:
//     – Triangle:       one right triangle (0,0) (1,0) (0,1).
//     – UnitSquare:     two right triangles sharing the diagonal of [0,1]².
//     – SharedLeg:      two right isosceles triangles sharing a leg.
//     – Fan(n):         disk of n triangles around a centre vertex.
//     – Grid(r, c):     r×c unit cells, each split along its rising diagonal.
//     – PlatonicSolid:  Tetrahedron, Cube, Octahedron, Icosahedron (closed, outward oriented).
//   - Options:
//     – WithScale(s):         uniform scaling of every position.
//     – WithJitter(sigma):    Gaussian perturbation, requires WithSeed or WithRand.
//     – WithIsolatedVertex(): appends one vertex referenced by no face.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical meshes.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Runtime parameter errors are sentinels (ErrTooFewVertices, ErrOptionViolation,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
package builder
