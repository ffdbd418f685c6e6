// SPDX-License-Identifier: MIT
// Package matrix: neighbor queries around a cell. Single-direction lookups
// use comma-ok returns because a missing neighbor at the border is an
// expected outcome, not a failure. The point variants return fixed-order
// slices with nil placeholders so callers can address directions by index.

package matrix

// UpOf returns the value directly above (i, j), or ok=false at the top
// border.
func (m *Matrix[T]) UpOf(i, j int) (T, bool) {
	if i <= 0 || !m.inBounds(i, j) {
		var zero T

		return zero, false
	}

	return m.data[i-1][j], true
}

// DownOf returns the value directly below (i, j), or ok=false at the bottom
// border.
func (m *Matrix[T]) DownOf(i, j int) (T, bool) {
	if i >= m.rows-1 || !m.inBounds(i, j) {
		var zero T

		return zero, false
	}

	return m.data[i+1][j], true
}

// LeftOf returns the value directly left of (i, j), or ok=false at the left
// border.
func (m *Matrix[T]) LeftOf(i, j int) (T, bool) {
	if j <= 0 || !m.inBounds(i, j) {
		var zero T

		return zero, false
	}

	return m.data[i][j-1], true
}

// RightOf returns the value directly right of (i, j), or ok=false at the
// right border.
func (m *Matrix[T]) RightOf(i, j int) (T, bool) {
	if j >= m.cols-1 || !m.inBounds(i, j) {
		var zero T

		return zero, false
	}

	return m.data[i][j+1], true
}

// Adjacent4Points returns the 4-neighborhood of (i, j) in the fixed order
// up, right, down, left. Out-of-bounds neighbors are nil.
func (m *Matrix[T]) Adjacent4Points(i, j int) []*Point {
	pts := make([]*Point, 4)
	if i > 0 {
		pts[0] = &Point{Row: i - 1, Col: j}
	}
	if j < m.cols-1 {
		pts[1] = &Point{Row: i, Col: j + 1}
	}
	if i < m.rows-1 {
		pts[2] = &Point{Row: i + 1, Col: j}
	}
	if j > 0 {
		pts[3] = &Point{Row: i, Col: j - 1}
	}

	return pts
}

// Adjacent8Points returns the 8-neighborhood of (i, j) in the fixed order
// left-up, up, right-up, right, right-down, down, left-down, left.
// Out-of-bounds neighbors are nil.
func (m *Matrix[T]) Adjacent8Points(i, j int) []*Point {
	pts := make([]*Point, 8)
	if i > 0 {
		if j > 0 {
			pts[0] = &Point{Row: i - 1, Col: j - 1}
		}
		pts[1] = &Point{Row: i - 1, Col: j}
		if j < m.cols-1 {
			pts[2] = &Point{Row: i - 1, Col: j + 1}
		}
	}
	if j < m.cols-1 {
		pts[3] = &Point{Row: i, Col: j + 1}
	}
	if i < m.rows-1 {
		if j < m.cols-1 {
			pts[4] = &Point{Row: i + 1, Col: j + 1}
		}
		pts[5] = &Point{Row: i + 1, Col: j}
		if j > 0 {
			pts[6] = &Point{Row: i + 1, Col: j - 1}
		}
	}
	if j > 0 {
		pts[7] = &Point{Row: i, Col: j - 1}
	}

	return pts
}
