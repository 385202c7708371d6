// SPDX-License-Identifier: MIT
// Package: ddg/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • (rows+1)×(cols+1) vertices on the integer lattice, row-major: index r*(cols+1)+c
//     sits at (c, r).
//   • Each unit cell (a, b, c, d) = ((r,c), (r,c+1), (r+1,c+1), (r+1,c)) is split along
//     its rising diagonal a–c into faces (a,b,c) and (a,c,d), counter-clockwise.
//   • All triangles are right isosceles, hence non-obtuse.
//
// Complexity: O(rows*cols) vertices and faces.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols triangulated grid of unit cells.
func Grid(rows, cols int) Constructor {
	return func(d *meshDraft, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		stride := cols + 1
		pos := make([]r3.Vec, 0, (rows+1)*stride)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				pos = append(pos, r3.Vec{X: float64(c), Y: float64(r)})
			}
		}
		faces := make([][]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a := r*stride + c
				b, cc, dd := a+1, a+stride+1, a+stride
				faces = append(faces, []int{a, b, cc}, []int{a, cc, dd})
			}
		}
		d.add(pos, faces)
		return nil
	}
}
