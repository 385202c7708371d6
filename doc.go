// SPDX-License-Identifier: MIT

// Package ddg assembles discrete exterior calculus operators on triangle meshes
// and solves the sparse symmetric systems they produce.
//
// What is in the box?
//
//   - Halfedge connectivity with a fixed orientation per edge
//   - Hodge stars ⋆0, ⋆1, ⋆2 and exterior derivatives d0, d1 as sparse matrices
//   - Composed operators: cotan Laplacian L = d0ᵀ⋆1 d0 and ⋆0 + t·L
//   - A factorization cache with staged invalidation over a pure-Go sparse Cholesky
//   - Fixture meshes, a minimal OBJ reader and the ddg command
//
// Subpackages:
//
//	core/     — halfedge mesh snapshot built from a polygon soup
//	geometry/ — vertex positions and the metric quantities of a mesh
//	matrix/   — generic sparse container, CSC snapshots, kernels and validators
//	dec/      — Hodge star and exterior derivative builders
//	factor/   — Cholesky backends and the factorization cache
//	builder/  — deterministic fixture meshes
//	meshio/   — Wavefront OBJ reader and writer
//	cmd/ddg/  — command-line front end
//
// Quick example, one heat step on an icosahedron:
//
//	g, _ := builder.BuildMesh(nil, builder.PlatonicSolid(builder.Icosahedron))
//	m, _ := dec.BuildMassShifted(g, 0.1)
//	c, _ := factor.New(m)
//	defer c.Close()
//	u, _ := factor.Solve(c, delta)
//
// Sign convention: d1·d0 = 0 exactly; L is positive semi-definite on meshes
// without obtuse angles and L·1 = 0.
//
//	go get github.com/katalvlaran/ddg
package ddg
