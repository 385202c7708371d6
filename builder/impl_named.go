// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// impl_named.go — lookup of fixtures by name for command-line use.

package builder

import (
	"fmt"
	"sort"
)

const methodNamed = "Named"

// Default sizes for the parameterised fixtures selected by name.
const (
	DefaultFanN     = 8
	DefaultGridRows = 4
	DefaultGridCols = 4
)

var namedShapes = map[string]func() Constructor{
	"triangle":  Triangle,
	"square":    UnitSquare,
	"sharedleg": SharedLeg,
	"fan":       func() Constructor { return Fan(DefaultFanN) },
	"grid":      func() Constructor { return Grid(DefaultGridRows, DefaultGridCols) },
}

// Named returns the Constructor registered under name: "triangle", "square",
// "sharedleg", "fan", "grid" or a lower-case Platonic solid ("icosahedron").
// Unknown names → ErrOptionViolation.
func Named(name string) (Constructor, error) {
	if mk, ok := namedShapes[name]; ok {
		return mk(), nil
	}
	if p, ok := ParsePlatonicName(name); ok {
		return PlatonicSolid(p), nil
	}

	return nil, fmt.Errorf("%s: unknown shape %q (known: %v): %w", methodNamed, name, ShapeNames(), ErrOptionViolation)
}

// ShapeNames lists every name accepted by Named, sorted.
func ShapeNames() []string {
	names := make([]string, 0, len(namedShapes)+4)
	for n := range namedShapes {
		names = append(names, n)
	}
	for _, p := range []PlatonicName{Tetrahedron, Cube, Octahedron, Icosahedron} {
		names = append(names, lowerName(p))
	}
	sort.Strings(names)

	return names
}
