// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// impl_fan.go — implementation of Fan(n) constructor.
//
// Canonical model:
//   • Centre vertex 0 at the origin; rim vertices 1..n on the unit circle at angles 2πk/n.
//   • Faces (0, k, k%n+1) for k = 1..n, counter-clockwise.
//
// Complexity: O(n) vertices and faces.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodFan = "Fan"
	minFanN   = 3
)

// Fan returns a Constructor for a regular n-gon disk triangulated from its centre (n ≥ 3).
func Fan(n int) Constructor {
	return func(d *meshDraft, _ builderConfig) error {
		if n < minFanN {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodFan, n, minFanN, ErrTooFewVertices)
		}
		pos := make([]r3.Vec, n+1)
		faces := make([][]int, n)
		for k := 1; k <= n; k++ {
			theta := 2 * math.Pi * float64(k-1) / float64(n)
			pos[k] = r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
			faces[k-1] = []int{0, k, k%n + 1}
		}
		d.add(pos, faces)
		return nil
	}
}
