// SPDX-License-Identifier: MIT
// Package matrix: structural transforms - operations that change the shape
// or arrangement of the data without per-cell computation.
//
// Determinism & Performance:
//   - Transpose and the quarter rotations pick the outer/inner loop order
//     from the rows <= cols comparison to favor row-major write locality in
//     the destination.
//   - Every transform that allocates a dimension product validates it in
//     64-bit arithmetic first and fails fast with ErrTooLarge.
//   - All results are built from freshly allocated rows; the receiver is
//     never aliased by a returned matrix.

package matrix

import "github.com/katalvlaran/gridmat/arrays"

// Transpose returns a new cols×rows matrix with out[i][j] = m[j][i].
// Complexity: O(rows*cols).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	c := newData[T](m.cols, m.rows)

	if m.rows <= m.cols {
		for j := 0; j < m.rows; j++ {
			for i := 0; i < m.cols; i++ {
				c[i][j] = m.data[j][i]
			}
		}
	} else {
		for i := 0; i < m.cols; i++ {
			for j := 0; j < m.rows; j++ {
				c[i][j] = m.data[j][i]
			}
		}
	}

	return &Matrix[T]{rows: m.cols, cols: m.rows, count: m.count, data: c}
}

// Rotate90 returns a new matrix rotated clockwise a quarter turn:
// out[i][j] = m[rows-j-1][i].
// Complexity: O(rows*cols).
func (m *Matrix[T]) Rotate90() *Matrix[T] {
	c := newData[T](m.cols, m.rows)

	if m.rows <= m.cols {
		for j := 0; j < m.rows; j++ {
			for i := 0; i < m.cols; i++ {
				c[i][j] = m.data[m.rows-j-1][i]
			}
		}
	} else {
		for i := 0; i < m.cols; i++ {
			for j := 0; j < m.rows; j++ {
				c[i][j] = m.data[m.rows-j-1][i]
			}
		}
	}

	return &Matrix[T]{rows: m.cols, cols: m.rows, count: m.count, data: c}
}

// Rotate180 returns a new matrix rotated a half turn: the row order is
// reversed and every row is reversed.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Rotate180() *Matrix[T] {
	c := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = make([]T, m.cols)
		arrays.Copy(m.data[m.rows-i-1], 0, c[i], 0, m.cols)
		arrays.Reverse(c[i])
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, count: m.count, data: c}
}

// Rotate270 returns a new matrix rotated counter-clockwise a quarter turn:
// out[i][j] = m[j][cols-i-1].
// Complexity: O(rows*cols).
func (m *Matrix[T]) Rotate270() *Matrix[T] {
	c := newData[T](m.cols, m.rows)

	if m.rows <= m.cols {
		for j := 0; j < m.rows; j++ {
			for i := 0; i < m.cols; i++ {
				c[i][j] = m.data[j][m.cols-i-1]
			}
		}
	} else {
		for i := 0; i < m.cols; i++ {
			for j := 0; j < m.rows; j++ {
				c[i][j] = m.data[j][m.cols-i-1]
			}
		}
	}

	return &Matrix[T]{rows: m.cols, cols: m.rows, count: m.count, data: c}
}

// ReverseH reverses every row in place (mirror across the vertical axis).
// Complexity: O(rows*cols).
func (m *Matrix[T]) ReverseH() {
	for i := range m.data {
		arrays.Reverse(m.data[i])
	}
}

// ReverseV reverses every column in place (mirror across the horizontal
// axis). Values are swapped cell by cell so the backing rows keep their
// identity for callers holding Row references.
// Complexity: O(rows*cols).
func (m *Matrix[T]) ReverseV() {
	for j := 0; j < m.cols; j++ {
		for l, h := 0, m.rows-1; l < h; l, h = l+1, h-1 {
			m.data[l][j], m.data[h][j] = m.data[h][j], m.data[l][j]
		}
	}
}

// FlipH returns a copy with every row reversed; the receiver is untouched.
func (m *Matrix[T]) FlipH() *Matrix[T] {
	c := m.Copy()
	c.ReverseH()

	return c
}

// FlipV returns a copy with every column reversed; the receiver is
// untouched.
func (m *Matrix[T]) FlipV() *Matrix[T] {
	c := m.Copy()
	c.ReverseV()

	return c
}

// Reshape reinterprets the row-major element sequence into newRows×newCols.
// The element at linear position k maps to (k/newCols, k%newCols). When the
// new shape holds fewer cells, trailing source elements are dropped; when it
// holds more, the extra destination cells stay at the element zero value.
// This ceiling policy is never an error.
// Returns ErrBadShape for negative dimensions, ErrTooLarge on overflow.
// Complexity: O(newRows*newCols).
func (m *Matrix[T]) Reshape(newRows, newCols int) (*Matrix[T], error) {
	if err := checkAlloc(newRows, newCols); err != nil {
		return nil, opErrorf("Reshape", err)
	}
	c := newData[T](newRows, newCols)
	out := &Matrix[T]{rows: newRows, cols: newCols, count: int64(newRows) * int64(newCols), data: c}
	if newRows == 0 || newCols == 0 || m.IsEmpty() {
		return out, nil
	}

	// Number of destination rows the source can feed (ceiling division).
	feed := m.count / int64(newCols)
	if m.count%int64(newCols) != 0 {
		feed++
	}
	if int64(newRows) < feed {
		feed = int64(newRows)
	}

	var cnt int64
	for i := int64(0); i < feed; i++ {
		avail := m.count - i*int64(newCols) // source elements left for this row
		col := int64(newCols)
		if avail < col {
			col = avail
		}
		for j := int64(0); j < col; j++ {
			c[i][j] = m.data[cnt/int64(m.cols)][cnt%int64(m.cols)]
			cnt++
		}
	}

	return out, nil
}

// ReshapeCols reinterprets the element sequence into newCols columns, with
// the row count derived by ceiling division of the element count.
func (m *Matrix[T]) ReshapeCols(newCols int) (*Matrix[T], error) {
	if newCols <= 0 {
		return nil, opErrorf("ReshapeCols", ErrBadShape)
	}
	newRows := m.count / int64(newCols)
	if m.count%int64(newCols) != 0 {
		newRows++
	}

	return m.Reshape(int(newRows), newCols)
}

// Extend returns a newRows×newCols matrix. When both dimensions shrink this
// is a plain sub-copy; otherwise the overlapping region is copied and only
// the newly introduced cells are filled with fill.
// Returns ErrBadShape for negative dimensions, ErrTooLarge on overflow.
// Complexity: O(newRows*newCols).
func (m *Matrix[T]) Extend(newRows, newCols int, fill T) (*Matrix[T], error) {
	if err := checkAlloc(newRows, newCols); err != nil {
		return nil, opErrorf("Extend", err)
	}

	if newRows <= m.rows && newCols <= m.cols {
		return m.CopyRegion(0, newRows, 0, newCols)
	}

	b := make([][]T, newRows)
	for i := 0; i < newRows; i++ {
		b[i] = make([]T, newCols)
		if i < m.rows {
			arrays.Copy(m.data[i], 0, b[i], 0, m.cols)
			if m.cols < newCols {
				_ = arrays.Fill(b[i], m.cols, newCols, fill) // only the new tail cells
			}
		} else {
			arrays.FillAll(b[i], fill)
		}
	}

	return &Matrix[T]{rows: newRows, cols: newCols, count: int64(newRows) * int64(newCols), data: b}, nil
}

// ExtendPad pads the matrix on all four sides, preserving the original at
// offset (toUp, toLeft) and filling every introduced cell with fill.
// Returns ErrBadShape for a negative pad, ErrTooLarge on overflow.
// Complexity: O(resulting cells).
func (m *Matrix[T]) ExtendPad(toUp, toDown, toLeft, toRight int, fill T) (*Matrix[T], error) {
	if toUp < 0 || toDown < 0 || toLeft < 0 || toRight < 0 {
		return nil, opErrorf("ExtendPad", ErrBadShape)
	}
	if toUp == 0 && toDown == 0 && toLeft == 0 && toRight == 0 {
		return m.Copy(), nil
	}
	newRows := toUp + m.rows + toDown
	newCols := toLeft + m.cols + toRight
	if err := checkAlloc(newRows, newCols); err != nil {
		return nil, opErrorf("ExtendPad", err)
	}

	b := make([][]T, newRows)
	for i := 0; i < newRows; i++ {
		b[i] = make([]T, newCols)
		if i < toUp || i >= toUp+m.rows {
			arrays.FillAll(b[i], fill) // fully padded row
			continue
		}
		_ = arrays.Fill(b[i], 0, toLeft, fill)
		arrays.Copy(m.data[i-toUp], 0, b[i], toLeft, m.cols)
		_ = arrays.Fill(b[i], toLeft+m.cols, newCols, fill)
	}

	return &Matrix[T]{rows: newRows, cols: newCols, count: int64(newRows) * int64(newCols), data: b}, nil
}

// Repelem turns every cell into a rowRepeats×colRepeats block of identical
// values (nearest-neighbor upsampling).
// Returns ErrBadRepeat for non-positive factors, ErrTooLarge on overflow.
// Complexity: O(resulting cells).
func (m *Matrix[T]) Repelem(rowRepeats, colRepeats int) (*Matrix[T], error) {
	if rowRepeats <= 0 || colRepeats <= 0 {
		return nil, opErrorf("Repelem", ErrBadRepeat)
	}
	if int64(m.rows)*int64(rowRepeats) > maxCells || int64(m.cols)*int64(colRepeats) > maxCells {
		return nil, opErrorf("Repelem", ErrTooLarge)
	}
	newRows := m.rows * rowRepeats
	newCols := m.cols * colRepeats
	if err := checkAlloc(newRows, newCols); err != nil {
		return nil, opErrorf("Repelem", err)
	}

	c := newData[T](newRows, newCols)
	for i := 0; i < m.rows; i++ {
		// Build the first row of the block band, then replicate it.
		fr := c[i*rowRepeats]
		for j := 0; j < m.cols; j++ {
			_ = arrays.Fill(fr, j*colRepeats, (j+1)*colRepeats, m.data[i][j])
		}
		for k := 1; k < rowRepeats; k++ {
			arrays.Copy(fr, 0, c[i*rowRepeats+k], 0, newCols)
		}
	}

	return &Matrix[T]{rows: newRows, cols: newCols, count: int64(newRows) * int64(newCols), data: c}, nil
}

// Repmat tiles the whole matrix rowRepeats×colRepeats times as a block
// pattern (periodic tiling).
// Returns ErrBadRepeat for non-positive factors, ErrTooLarge on overflow.
// Complexity: O(resulting cells).
func (m *Matrix[T]) Repmat(rowRepeats, colRepeats int) (*Matrix[T], error) {
	if rowRepeats <= 0 || colRepeats <= 0 {
		return nil, opErrorf("Repmat", ErrBadRepeat)
	}
	if int64(m.rows)*int64(rowRepeats) > maxCells || int64(m.cols)*int64(colRepeats) > maxCells {
		return nil, opErrorf("Repmat", ErrTooLarge)
	}
	newRows := m.rows * rowRepeats
	newCols := m.cols * colRepeats
	if err := checkAlloc(newRows, newCols); err != nil {
		return nil, opErrorf("Repmat", err)
	}

	c := newData[T](newRows, newCols)
	// First band: each source row tiled colRepeats times.
	for i := 0; i < m.rows; i++ {
		for j := 0; j < colRepeats; j++ {
			arrays.Copy(m.data[i], 0, c[i], j*m.cols, m.cols)
		}
	}
	// Remaining bands are copies of the first.
	for i := 1; i < rowRepeats; i++ {
		for j := 0; j < m.rows; j++ {
			arrays.Copy(c[j], 0, c[i*m.rows+j], 0, newCols)
		}
	}

	return &Matrix[T]{rows: newRows, cols: newCols, count: int64(newRows) * int64(newCols), data: c}, nil
}

// Vstack concatenates m and b along rows (b below m).
// Returns ErrDimensionMismatch unless the column counts match.
// Complexity: O(resulting cells).
func (m *Matrix[T]) Vstack(b *Matrix[T]) (*Matrix[T], error) {
	if m.cols != b.cols {
		return nil, opErrorf("Vstack", ErrDimensionMismatch)
	}
	c := make([][]T, m.rows+b.rows)
	n := 0
	for i := 0; i < m.rows; i++ {
		c[n] = make([]T, m.cols)
		arrays.Copy(m.data[i], 0, c[n], 0, m.cols)
		n++
	}
	for i := 0; i < b.rows; i++ {
		c[n] = make([]T, b.cols)
		arrays.Copy(b.data[i], 0, c[n], 0, b.cols)
		n++
	}

	return Of(c)
}

// Hstack concatenates m and b along columns (b to the right of m).
// Returns ErrDimensionMismatch unless the row counts match.
// Complexity: O(resulting cells).
func (m *Matrix[T]) Hstack(b *Matrix[T]) (*Matrix[T], error) {
	if m.rows != b.rows {
		return nil, opErrorf("Hstack", ErrDimensionMismatch)
	}
	c := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = make([]T, m.cols+b.cols)
		arrays.Copy(m.data[i], 0, c[i], 0, m.cols)
		arrays.Copy(b.data[i], 0, c[i], m.cols, b.cols)
	}

	return Of(c)
}

// Flatten returns the elements in row-major order as a fresh slice.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Flatten() []T {
	c := make([]T, m.count)
	for i := 0; i < m.rows; i++ {
		arrays.Copy(m.data[i], 0, c, i*m.cols, m.cols)
	}

	return c
}

// FlatOp flattens the matrix, applies op to the flat slice, then writes the
// (possibly mutated) values back in row-major order. Handy for whole-matrix
// slice operations such as sorting.
// Complexity: O(rows*cols) plus the cost of op.
func (m *Matrix[T]) FlatOp(op func([]T)) {
	flat := m.Flatten()
	op(flat)
	for i := 0; i < m.rows; i++ {
		arrays.Copy(flat, i*m.cols, m.data[i], 0, m.cols)
	}
}
