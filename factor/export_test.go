// SPDX-License-Identifier: MIT

package factor

// SymbolicLayout exposes the elimination tree and L's column pointers of a native analysis.
func SymbolicLayout(s Symbolic) (parent, colPtr []int) {
	ns := s.(*nativeSymbolic)

	return ns.parent, ns.colPtr
}
