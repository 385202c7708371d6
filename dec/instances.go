// SPDX-License-Identifier: MIT

package dec

import "github.com/katalvlaran/ddg/matrix"

// Enumerated instantiations for the supported scalar fields.
var (
	Hodge0Real    = BuildHodge0[float64]
	Hodge0Complex = BuildHodge0[complex128]

	Hodge1Real    = BuildHodge1[float64]
	Hodge1Complex = BuildHodge1[complex128]

	Hodge2Real    = BuildHodge2[float64]
	Hodge2Complex = BuildHodge2[complex128]

	Derivative0Real    = BuildDerivative0[float64]
	Derivative0Complex = BuildDerivative0[complex128]

	Derivative1Real    = BuildDerivative1[float64]
	Derivative1Complex = BuildDerivative1[complex128]
)

// HodgeBuilder is the signature shared by the Hodge instantiations.
type HodgeBuilder[T matrix.Scalar] func(Embedding, ...Option) (*matrix.Sparse[T], error)

// DerivativeBuilder is the signature shared by the derivative instantiations.
type DerivativeBuilder[T matrix.Scalar] func(Connectivity) (*matrix.Sparse[T], error)

var (
	_ HodgeBuilder[float64]         = Hodge0Real
	_ HodgeBuilder[complex128]      = Hodge2Complex
	_ DerivativeBuilder[float64]    = Derivative0Real
	_ DerivativeBuilder[complex128] = Derivative1Complex
)
