// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Icosahedron}; anything else → ErrOptionViolation.
//   • Vertices and faces come from variants_platonic.go in their stored order.
//   • Faces are outward oriented; the Cube has quadrilateral faces.
//
// Complexity: O(V+F) for the chosen solid (V ≤ 12, F ≤ 20).

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor for the chosen closed solid centred at the origin.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(d *meshDraft, _ builderConfig) error {
		s, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		d.add(s.positions, s.faces)
		return nil
	}
}
