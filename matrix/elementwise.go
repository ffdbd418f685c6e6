// SPDX-License-Identifier: MIT
// Package matrix: elementwise operations - per-cell updates, maps and zips,
// all funneled through the parallel dispatcher. Whether a given call runs
// on one goroutine or several is decided by the element count against the
// dispatcher threshold (overridable via parallel.SetMode); the result is
// identical either way because every cell is touched exactly once and no
// two goroutines share a cell.

package matrix

import "github.com/katalvlaran/gridmat/parallel"

// UpdateAll replaces every element with f(element), in place.
// Complexity: O(rows*cols), parallel above the dispatcher threshold.
func (m *Matrix[T]) UpdateAll(f func(T) T) {
	cmd := func(i, j int) error {
		m.data[i][j] = f(m.data[i][j])

		return nil
	}
	_ = parallel.Run(m.rows, m.cols, cmd, parallel.Parallelizable(m.count))
}

// UpdateAllIndexed replaces every element with f(i, j), in place. The
// current value is not passed; read it through the receiver if needed.
func (m *Matrix[T]) UpdateAllIndexed(f func(i, j int) T) {
	cmd := func(i, j int) error {
		m.data[i][j] = f(i, j)

		return nil
	}
	_ = parallel.Run(m.rows, m.cols, cmd, parallel.Parallelizable(m.count))
}

// ReplaceIf overwrites every element satisfying pred with newValue, in
// place.
func (m *Matrix[T]) ReplaceIf(pred func(T) bool, newValue T) {
	cmd := func(i, j int) error {
		if pred(m.data[i][j]) {
			m.data[i][j] = newValue
		}

		return nil
	}
	_ = parallel.Run(m.rows, m.cols, cmd, parallel.Parallelizable(m.count))
}

// ReplaceIfIndexed overwrites every element whose position satisfies pred
// with newValue, in place.
func (m *Matrix[T]) ReplaceIfIndexed(pred func(i, j int) bool, newValue T) {
	cmd := func(i, j int) error {
		if pred(i, j) {
			m.data[i][j] = newValue
		}

		return nil
	}
	_ = parallel.Run(m.rows, m.cols, cmd, parallel.Parallelizable(m.count))
}

// Map returns a new same-shape matrix with out[i][j] = f(m[i][j]).
func (m *Matrix[T]) Map(f func(T) T) *Matrix[T] {
	c := newData[T](m.rows, m.cols)
	cmd := func(i, j int) error {
		c[i][j] = f(m.data[i][j])

		return nil
	}
	_ = parallel.Run(m.rows, m.cols, cmd, parallel.Parallelizable(m.count))

	return &Matrix[T]{rows: m.rows, cols: m.cols, count: m.count, data: c}
}

// MapTo returns a new same-shape matrix of a different element type with
// out[i][j] = f(m[i][j]).
func MapTo[U, T any](m *Matrix[T], f func(T) U) *Matrix[U] {
	c := newData[U](m.rows, m.cols)
	cmd := func(i, j int) error {
		c[i][j] = f(m.data[i][j])

		return nil
	}
	_ = parallel.Run(m.rows, m.cols, cmd, parallel.Parallelizable(m.count))

	return &Matrix[U]{rows: m.rows, cols: m.cols, count: m.count, data: c}
}

// ForEach visits every element in row-major order, sequentially. Use this
// for order-sensitive accumulation; use UpdateAll / Map for bulk transforms.
func (m *Matrix[T]) ForEach(f func(T)) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			f(m.data[i][j])
		}
	}
}

// ForEachRegion visits every element of the half-open rectangle
// [fromRow,toRow)×[fromCol,toCol) in row-major order, sequentially.
// Returns ErrOutOfRange for an invalid rectangle.
func (m *Matrix[T]) ForEachRegion(fromRow, toRow, fromCol, toCol int, f func(T)) error {
	if err := m.checkRowRange(fromRow, toRow); err != nil {
		return opErrorf("ForEachRegion", err)
	}
	if err := m.checkColRange(fromCol, toCol); err != nil {
		return opErrorf("ForEachRegion", err)
	}
	for i := fromRow; i < toRow; i++ {
		for j := fromCol; j < toCol; j++ {
			f(m.data[i][j])
		}
	}

	return nil
}

// ZipWith combines two same-shape matrices cell by cell:
// out[i][j] = f(a[i][j], b[i][j]).
// Returns ErrDimensionMismatch when the shapes differ.
func ZipWith[T any](a, b *Matrix[T], f func(T, T) T) (*Matrix[T], error) {
	if !a.SameShape(b) {
		return nil, opErrorf("ZipWith", ErrDimensionMismatch)
	}
	c := newData[T](a.rows, a.cols)
	cmd := func(i, j int) error {
		c[i][j] = f(a.data[i][j], b.data[i][j])

		return nil
	}
	_ = parallel.Run(a.rows, a.cols, cmd, parallel.Parallelizable(a.count))

	return &Matrix[T]{rows: a.rows, cols: a.cols, count: a.count, data: c}, nil
}

// ZipWith3 combines three same-shape matrices cell by cell:
// out[i][j] = f(a[i][j], b[i][j], cm[i][j]).
// Returns ErrDimensionMismatch when any shape differs.
func ZipWith3[T any](a, b, cm *Matrix[T], f func(T, T, T) T) (*Matrix[T], error) {
	if !a.SameShape(b) || !a.SameShape(cm) {
		return nil, opErrorf("ZipWith3", ErrDimensionMismatch)
	}
	c := newData[T](a.rows, a.cols)
	cmd := func(i, j int) error {
		c[i][j] = f(a.data[i][j], b.data[i][j], cm.data[i][j])

		return nil
	}
	_ = parallel.Run(a.rows, a.cols, cmd, parallel.Parallelizable(a.count))

	return &Matrix[T]{rows: a.rows, cols: a.cols, count: a.count, data: c}, nil
}
