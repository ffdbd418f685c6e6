// SPDX-License-Identifier: MIT

package matrix

// Convert returns a new matrix with every element converted to U using Go's
// numeric conversion rules (truncation toward zero for float to integer).
// The target type is the first parameter so it can be named alone:
//
//	f := matrix.Convert[float64](ints)
func Convert[U, T Number](m *Matrix[T]) *Matrix[U] {
	return MapTo(m, func(v T) U { return U(v) })
}
