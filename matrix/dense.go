// SPDX-License-Identifier: MIT

// Package matrix: bridge to gonum dense matrices.
//
// Dense conversion is for inspection, small reference solves and tests; it costs
// O(r*c) memory and is never used on assembly paths.

package matrix

import "gonum.org/v1/gonum/mat"

// ToDense expands a real sparse matrix into a *mat.Dense.
// Zero-sized matrices have no gonum representation and return nil.
func ToDense(m *Sparse[float64]) *mat.Dense {
	if m == nil || m.r == 0 || m.c == 0 {
		return nil
	}
	d := mat.NewDense(m.r, m.c, nil)
	for k, v := range m.data {
		d.Set(k.Row, k.Col, v)
	}

	return d
}

// FromDense copies the nonzero entries of a gonum matrix into a Sparse.
func FromDense(d mat.Matrix, opts ...Option) (*Sparse[float64], error) {
	r, c := d.Dims()
	m, err := NewSparse[float64](r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := d.At(i, j); v != 0 {
				if err = m.Set(i, j, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}
