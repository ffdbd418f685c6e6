// SPDX-License-Identifier: MIT
// Package matrix: the Matrix[T] core - construction, accessors, row/column
// operations, fills and copies.
//
// Invariants maintained by every constructor and operation:
//   - rectangularity: every backing row has exactly cols elements;
//   - a 0-row matrix has cols == 0;
//   - count == rows*cols, computed in 64-bit arithmetic, never invalidated;
//   - size-changing operations return a new matrix and leave the receiver
//     untouched; in-place mutators are documented as such.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridmat/arrays"
)

// Matrix is a dense, row-major 2D matrix of T.
type Matrix[T any] struct {
	rows  int
	cols  int
	count int64 // rows*cols in 64-bit, so size decisions never wrap
	data  [][]T // row-major backing store, owned by the matrix
}

// New returns a zeroed rows×cols matrix.
// Returns ErrBadShape for negative dimensions and ErrTooLarge when the cell
// count would overflow the backing array limit.
// Complexity: O(rows*cols).
func New[T any](rows, cols int) (*Matrix[T], error) {
	if err := checkAlloc(rows, cols); err != nil {
		return nil, opErrorf("New", err)
	}
	if rows == 0 {
		cols = 0 // a 0-row matrix has no columns
	}

	return &Matrix[T]{rows: rows, cols: cols, count: int64(rows) * int64(cols), data: newData[T](rows, cols)}, nil
}

// Empty returns the 0×0 matrix of T.
func Empty[T any]() *Matrix[T] {
	return &Matrix[T]{data: [][]T{}}
}

// Of wraps existing rows directly, without a defensive copy: construction
// transfers effective ownership of the backing rows to the matrix. Callers
// that need an independent matrix should call Copy on the result.
// Returns ErrJagged unless every row has the same length. A nil or empty
// slice yields the empty matrix.
// Complexity: O(rows) validation, no data movement.
func Of[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return Empty[T](), nil
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, opErrorf("Of", ErrJagged)
		}
	}

	return &Matrix[T]{rows: len(rows), cols: cols, count: int64(len(rows)) * int64(cols), data: rows}, nil
}

// RepeatRow returns a 1×n matrix holding n copies of val.
func RepeatRow[T any](val T, n int) (*Matrix[T], error) {
	row, err := arrays.Repeat(val, n)
	if err != nil {
		return nil, opErrorf("RepeatRow", ErrBadShape)
	}

	return Of([][]T{row})
}

// RandomRow returns a 1×n matrix of pseudo-random values (see
// arrays.Random for the value policy per element type).
func RandomRow[T Number](n int) (*Matrix[T], error) {
	row, err := arrays.Random[T](n)
	if err != nil {
		return nil, opErrorf("RandomRow", ErrBadShape)
	}

	return Of([][]T{row})
}

// RangeRow returns a 1×n matrix holding start, start+step, ... below
// endExclusive.
func RangeRow[T Number](start, endExclusive, step T) (*Matrix[T], error) {
	row, err := arrays.Range(start, endExclusive, step)
	if err != nil {
		return nil, opErrorf("RangeRow", err)
	}

	return Of([][]T{row})
}

// RangeClosedRow returns a 1×n matrix holding start, start+step, ... up to
// and including endInclusive.
func RangeClosedRow[T Number](start, endInclusive, step T) (*Matrix[T], error) {
	row, err := arrays.RangeClosed(start, endInclusive, step)
	if err != nil {
		return nil, opErrorf("RangeClosedRow", err)
	}

	return Of([][]T{row})
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Count returns rows*cols as a 64-bit count.
func (m *Matrix[T]) Count() int64 { return m.count }

// IsEmpty reports whether the matrix holds no elements.
func (m *Matrix[T]) IsEmpty() bool { return m.count == 0 }

// Raw returns the live backing rows without copying. Mutating them mutates
// the matrix; this is the aliasing counterpart of Of.
func (m *Matrix[T]) Raw() [][]T { return m.data }

// SameShape reports whether m and x have identical dimensions.
func (m *Matrix[T]) SameShape(x *Matrix[T]) bool {
	return m.rows == x.rows && m.cols == x.cols
}

// inBounds reports whether (i, j) addresses a cell.
func (m *Matrix[T]) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// checkRowRange validates the half-open row range [from, to).
func (m *Matrix[T]) checkRowRange(from, to int) error {
	if from < 0 || to > m.rows || from > to {
		return ErrOutOfRange
	}

	return nil
}

// checkColRange validates the half-open column range [from, to).
func (m *Matrix[T]) checkColRange(from, to int) error {
	if from < 0 || to > m.cols || from > to {
		return ErrOutOfRange
	}

	return nil
}

// Get retrieves the element at (i, j).
// Returns ErrOutOfRange for an invalid index.
func (m *Matrix[T]) Get(i, j int) (T, error) {
	if !m.inBounds(i, j) {
		var zero T
		return zero, opErrorf("Get", ErrOutOfRange)
	}

	return m.data[i][j], nil
}

// GetAt retrieves the element at p.
func (m *Matrix[T]) GetAt(p Point) (T, error) {
	return m.Get(p.Row, p.Col)
}

// Set assigns val at (i, j).
// Returns ErrOutOfRange for an invalid index.
func (m *Matrix[T]) Set(i, j int, val T) error {
	if !m.inBounds(i, j) {
		return opErrorf("Set", ErrOutOfRange)
	}
	m.data[i][j] = val

	return nil
}

// SetAt assigns val at p.
func (m *Matrix[T]) SetAt(p Point, val T) error {
	return m.Set(p.Row, p.Col, val)
}

// Row returns the live backing slice of row i (no copy).
// Returns ErrOutOfRange for an invalid index.
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.rows {
		return nil, opErrorf("Row", ErrOutOfRange)
	}

	return m.data[i], nil
}

// Column returns a freshly allocated copy of column j.
// Returns ErrOutOfRange for an invalid index.
func (m *Matrix[T]) Column(j int) ([]T, error) {
	if j < 0 || j >= m.cols {
		return nil, opErrorf("Column", ErrOutOfRange)
	}
	col := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		col[i] = m.data[i][j]
	}

	return col, nil
}

// SetRow copies row into row i of the matrix.
// Returns ErrOutOfRange for an invalid index, ErrDimensionMismatch unless
// len(row) == Cols.
func (m *Matrix[T]) SetRow(i int, row []T) error {
	if i < 0 || i >= m.rows {
		return opErrorf("SetRow", ErrOutOfRange)
	}
	if len(row) != m.cols {
		return opErrorf("SetRow", ErrDimensionMismatch)
	}
	arrays.Copy(row, 0, m.data[i], 0, m.cols)

	return nil
}

// SetColumn copies col into column j of the matrix.
// Returns ErrOutOfRange for an invalid index, ErrDimensionMismatch unless
// len(col) == Rows.
func (m *Matrix[T]) SetColumn(j int, col []T) error {
	if j < 0 || j >= m.cols {
		return opErrorf("SetColumn", ErrOutOfRange)
	}
	if len(col) != m.rows {
		return opErrorf("SetColumn", ErrDimensionMismatch)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][j] = col[i]
	}

	return nil
}

// UpdateRow applies f to every element of row i, in place.
func (m *Matrix[T]) UpdateRow(i int, f func(T) T) error {
	if i < 0 || i >= m.rows {
		return opErrorf("UpdateRow", ErrOutOfRange)
	}
	row := m.data[i]
	for j := range row {
		row[j] = f(row[j])
	}

	return nil
}

// UpdateColumn applies f to every element of column j, in place.
func (m *Matrix[T]) UpdateColumn(j int, f func(T) T) error {
	if j < 0 || j >= m.cols {
		return opErrorf("UpdateColumn", ErrOutOfRange)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][j] = f(m.data[i][j])
	}

	return nil
}

// Fill assigns val to every cell, in place.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Fill(val T) {
	for i := range m.data {
		arrays.FillAll(m.data[i], val)
	}
}

// FillFrom copies the patch b into the matrix with its top-left corner at
// (fromRow, fromCol), clamping the patch to the matrix bounds: rows and
// columns of b that fall outside are silently dropped, cells not covered by
// b keep their values.
// Returns ErrOutOfRange when the corner itself is outside [0, rows]×[0, cols].
func (m *Matrix[T]) FillFrom(fromRow, fromCol int, b [][]T) error {
	if fromRow < 0 || fromRow > m.rows || fromCol < 0 || fromCol > m.cols {
		return opErrorf("FillFrom", ErrOutOfRange)
	}
	rows := len(b)
	if n := m.rows - fromRow; rows > n {
		rows = n
	}
	for i := 0; i < rows; i++ {
		arrays.Copy(b[i], 0, m.data[i+fromRow], fromCol, m.cols-fromCol)
	}

	return nil
}

// Copy returns a deep copy: fresh rows, independent of the receiver.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Copy() *Matrix[T] {
	c := make([][]T, m.rows)
	for i := range c {
		c[i] = make([]T, m.cols)
		arrays.Copy(m.data[i], 0, c[i], 0, m.cols)
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, count: m.count, data: c}
}

// CopyRows returns a deep copy of the row band [fromRow, toRow).
func (m *Matrix[T]) CopyRows(fromRow, toRow int) (*Matrix[T], error) {
	if err := m.checkRowRange(fromRow, toRow); err != nil {
		return nil, opErrorf("CopyRows", err)
	}
	c := make([][]T, toRow-fromRow)
	for i := fromRow; i < toRow; i++ {
		c[i-fromRow] = make([]T, m.cols)
		arrays.Copy(m.data[i], 0, c[i-fromRow], 0, m.cols)
	}

	return Of(c)
}

// CopyRegion returns a deep copy of the sub-rectangle
// [fromRow, toRow) × [fromCol, toCol).
func (m *Matrix[T]) CopyRegion(fromRow, toRow, fromCol, toCol int) (*Matrix[T], error) {
	if err := m.checkRowRange(fromRow, toRow); err != nil {
		return nil, opErrorf("CopyRegion", err)
	}
	if err := m.checkColRange(fromCol, toCol); err != nil {
		return nil, opErrorf("CopyRegion", err)
	}
	c := make([][]T, toRow-fromRow)
	for i := fromRow; i < toRow; i++ {
		c[i-fromRow] = make([]T, toCol-fromCol)
		arrays.Copy(m.data[i], fromCol, c[i-fromRow], 0, toCol-fromCol)
	}

	return Of(c)
}

// Equal reports deep equality of shape and contents.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if a.data[i][j] != b.data[i][j] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) string construction.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i][j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
