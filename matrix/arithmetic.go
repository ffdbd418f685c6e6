// SPDX-License-Identifier: MIT
// Package matrix: numeric arithmetic. These are package-level functions
// constrained to Number element types; methods cannot introduce the
// constraint on a Matrix[T any] receiver. All three route their cell work
// through the parallel dispatcher.

package matrix

import "github.com/katalvlaran/gridmat/parallel"

// Add returns the elementwise sum a + b.
// Returns ErrDimensionMismatch when the shapes differ.
// Complexity: O(rows*cols), parallel above the dispatcher threshold.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if !a.SameShape(b) {
		return nil, opErrorf("Add", ErrDimensionMismatch)
	}
	c := newData[T](a.rows, a.cols)
	cmd := func(i, j int) error {
		c[i][j] = a.data[i][j] + b.data[i][j]

		return nil
	}
	_ = parallel.Run(a.rows, a.cols, cmd, parallel.Parallelizable(a.count))

	return &Matrix[T]{rows: a.rows, cols: a.cols, count: a.count, data: c}, nil
}

// Subtract returns the elementwise difference a - b.
// Returns ErrDimensionMismatch when the shapes differ.
// Complexity: O(rows*cols), parallel above the dispatcher threshold.
func Subtract[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if !a.SameShape(b) {
		return nil, opErrorf("Subtract", ErrDimensionMismatch)
	}
	c := newData[T](a.rows, a.cols)
	cmd := func(i, j int) error {
		c[i][j] = a.data[i][j] - b.data[i][j]

		return nil
	}
	_ = parallel.Run(a.rows, a.cols, cmd, parallel.Parallelizable(a.count))

	return &Matrix[T]{rows: a.rows, cols: a.cols, count: a.count, data: c}, nil
}

// Multiply returns the standard matrix product a × b with shape
// a.rows × b.cols.
// Returns ErrDimensionMismatch unless a.cols == b.rows.
// Complexity: O(a.rows * a.cols * b.cols); parallel when the total work
// a.count * b.cols crosses the dispatcher threshold.
func Multiply[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.cols != b.rows {
		return nil, opErrorf("Multiply", ErrDimensionMismatch)
	}
	c := newData[T](a.rows, b.cols)
	cmd := func(i, j, k int) {
		c[i][j] += a.data[i][k] * b.data[k][j]
	}
	parallel.Multiply(a.rows, a.cols, b.cols, cmd, parallel.ParallelizableScaled(a.count, b.cols))

	return &Matrix[T]{rows: a.rows, cols: b.cols, count: int64(a.rows) * int64(b.cols), data: c}, nil
}
