// SPDX-License-Identifier: MIT
// Package matrix: shared types and limits.

package matrix

import (
	"math"

	"github.com/katalvlaran/gridmat/arrays"
)

// Number is the element constraint for the arithmetic surface and the
// numeric factories; re-exported from arrays so callers need one import.
type Number = arrays.Number

// Point is an immutable (row, column) coordinate. It is a pure lookup key:
// a Point is never owned by a matrix and carries no bounds of its own.
type Point struct {
	Row int
	Col int
}

// Pt is a shorthand Point constructor.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// maxCells caps the element count of any single allocation. Dimension
// products are computed in 64-bit arithmetic and compared against this
// before allocating, so a product that would wrap a 32-bit count fails fast
// with ErrTooLarge instead of corrupting an allocation size.
const maxCells = math.MaxInt32

// checkAlloc validates an r×c allocation request.
func checkAlloc(r, c int) error {
	if r < 0 || c < 0 {
		return ErrBadShape
	}
	if int64(r)*int64(c) > maxCells {
		return ErrTooLarge
	}

	return nil
}

// newData allocates r freshly zeroed rows of c cells.
func newData[T any](r, c int) [][]T {
	data := make([][]T, r)
	for i := range data {
		data[i] = make([]T, c)
	}

	return data
}
