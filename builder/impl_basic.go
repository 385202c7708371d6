// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// impl_basic.go — hand-checkable planar fixtures: Triangle, UnitSquare, SharedLeg.
//
// Every face is counter-clockwise in the z = 0 plane, so face normals point to +z.
//
// Reference values (cotangent weights ⋆1):
//   • Triangle:   legs 0.5·cot 45° = 0.5, hypotenuse 0.5·cot 90° = 0.
//   • UnitSquare: diagonal 0 (right angles on both sides), sides 0.5.
//   • SharedLeg:  shared leg ½(cot 45° + cot 45°) = 1.0, other edges as in Triangle.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// Triangle returns a Constructor for the right triangle (0,0) (1,0) (0,1).
func Triangle() Constructor {
	return func(d *meshDraft, _ builderConfig) error {
		d.add(
			[]r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
			[][]int{{0, 1, 2}},
		)
		return nil
	}
}

// UnitSquare returns a Constructor for [0,1]² split along the diagonal 0–2:
// vertices 0 (0,0), 1 (1,0), 2 (1,1), 3 (0,1); faces (0,1,2), (0,2,3).
func UnitSquare() Constructor {
	return func(d *meshDraft, _ builderConfig) error {
		d.add(
			[]r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			[][]int{{0, 1, 2}, {0, 2, 3}},
		)
		return nil
	}
}

// SharedLeg returns a Constructor for two right isosceles triangles sharing the leg
// 0–1: vertices 0 (0,0), 1 (0,1), 2 (1,0), 3 (−1,0); faces (0,2,1), (0,1,3).
// Both angles opposite the shared leg are 45°.
func SharedLeg() Constructor {
	return func(d *meshDraft, _ builderConfig) error {
		d.add(
			[]r3.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: -1, Y: 0}},
			[][]int{{0, 2, 1}, {0, 1, 3}},
		)
		return nil
	}
}
