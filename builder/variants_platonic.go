// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// variants_platonic.go — canonical data for the Platonic solids.
//
// Design:
//   • Single source of truth for vertex positions and outward-oriented face lists.
//   • Datasets are immutable; extend by adding new enums and datasets only.

package builder

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the supported Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonicName maps a case-sensitive lower-case name ("icosahedron") to its enum.
func ParsePlatonicName(s string) (PlatonicName, bool) {
	for _, p := range []PlatonicName{Tetrahedron, Cube, Octahedron, Icosahedron} {
		if s == lowerName(p) {
			return p, true
		}
	}

	return 0, false
}

func lowerName(p PlatonicName) string { return strings.ToLower(p.String()) }

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  E=6,  F=4 triangles
	Cube                            // V=8,  E=12, F=6 quads
	Octahedron                      // V=6,  E=12, F=8 triangles
	Icosahedron                     // V=12, E=30, F=20 triangles
)

type solid struct {
	positions []r3.Vec
	faces     [][]int
}

var phi = (1 + math.Sqrt(5)) / 2

var platonicSolids = map[PlatonicName]solid{
	// Alternate corners of the cube [−1,1]³; edge length 2√2.
	Tetrahedron: {
		positions: []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		faces:     [][]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {0, 2, 3}},
	},

	// [−1,1]³: bottom 0..3 (z=−1), top 4..7 (z=+1), both counter-clockwise seen from +z.
	Cube: {
		positions: []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		faces: [][]int{{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4}, {2, 3, 7, 6}, {0, 4, 7, 3}, {1, 2, 6, 5}},
	},

	// ±x, ±y, ±z unit points: 0 +x, 1 −x, 2 +y, 3 −y, 4 +z, 5 −z.
	Octahedron: {
		positions: []r3.Vec{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}},
		faces: [][]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	},

	// Three orthogonal golden rectangles; edge length 2.
	Icosahedron: {
		positions: []r3.Vec{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		faces: [][]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}
