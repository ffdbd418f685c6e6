// SPDX-License-Identifier: MIT
// Package matrix: lazy streaming cursors over matrix traversal orders.
//
// A Stream pulls one value at a time and never materializes the traversal
// unless ToArray is called. Every flat cursor is backed by a linear index
// into the traversal order, so Advance and Count are O(1) regardless of
// how far the cursor jumps. Streams do not observe a snapshot: mutating
// the matrix mid-iteration changes what later pulls see.

package matrix

// Stream is a lazy, position-resumable cursor over a fixed traversal order.
// The zero value is not usable; obtain streams from the Stream* methods.
type Stream[T any] struct {
	next   func() (T, bool)
	skip   func(n int64) int64
	remain func() int64
}

// linearStream builds a cursor over n elements addressed by at(k) for
// linear positions k in [0, n). All cursor state is the single position,
// which makes Advance and Count constant time.
func linearStream[T any](n int64, at func(k int64) T) *Stream[T] {
	var pos int64

	return &Stream[T]{
		next: func() (T, bool) {
			if pos >= n {
				var zero T

				return zero, false
			}
			v := at(pos)
			pos++

			return v, true
		},
		skip: func(k int64) int64 {
			if left := n - pos; k > left {
				k = left
			}
			pos += k

			return k
		},
		remain: func() int64 { return n - pos },
	}
}

// emptyStream is the cursor over zero elements.
func emptyStream[T any]() *Stream[T] {
	return linearStream(0, func(int64) T { var zero T; return zero })
}

// HasNext reports whether another element can be pulled.
func (s *Stream[T]) HasNext() bool {
	return s.remain() > 0
}

// Next pulls the element at the cursor and advances by one.
// Returns ErrNoSuchElement when the stream is exhausted.
func (s *Stream[T]) Next() (T, error) {
	v, ok := s.next()
	if !ok {
		var zero T

		return zero, opErrorf("Stream.Next", ErrNoSuchElement)
	}

	return v, nil
}

// Advance skips up to n elements in O(1) and reports how many were
// actually skipped, which is less than n only when the stream runs out.
// Returns ErrNegativeCount for n < 0.
func (s *Stream[T]) Advance(n int64) (int64, error) {
	if n < 0 {
		return 0, opErrorf("Stream.Advance", ErrNegativeCount)
	}

	return s.skip(n), nil
}

// Count returns the number of elements left without consuming them.
func (s *Stream[T]) Count() int64 {
	return s.remain()
}

// ToArray drains the remaining elements into a fresh slice.
func (s *Stream[T]) ToArray() []T {
	out := make([]T, 0, s.remain())
	for {
		v, ok := s.next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// StreamH streams every element in row-major order.
func (m *Matrix[T]) StreamH() *Stream[T] {
	s, _ := m.StreamHRange(0, m.rows)

	return s
}

// StreamHRow streams a single row left to right.
// Returns ErrOutOfRange for an invalid row index.
func (m *Matrix[T]) StreamHRow(row int) (*Stream[T], error) {
	return m.StreamHRange(row, row+1)
}

// StreamHRange streams rows [fromRow, toRow) in row-major order.
// Returns ErrOutOfRange for an invalid range.
func (m *Matrix[T]) StreamHRange(fromRow, toRow int) (*Stream[T], error) {
	if err := m.checkRowRange(fromRow, toRow); err != nil {
		return nil, opErrorf("StreamHRange", err)
	}
	if m.IsEmpty() || fromRow == toRow {
		return emptyStream[T](), nil
	}
	cols := int64(m.cols)
	n := int64(toRow-fromRow) * cols

	return linearStream(n, func(k int64) T {
		return m.data[int64(fromRow)+k/cols][k%cols]
	}), nil
}

// StreamV streams every element in column-major order.
func (m *Matrix[T]) StreamV() *Stream[T] {
	s, _ := m.StreamVRange(0, m.cols)

	return s
}

// StreamVCol streams a single column top to bottom.
// Returns ErrOutOfRange for an invalid column index.
func (m *Matrix[T]) StreamVCol(col int) (*Stream[T], error) {
	return m.StreamVRange(col, col+1)
}

// StreamVRange streams columns [fromCol, toCol) in column-major order.
// Returns ErrOutOfRange for an invalid range.
func (m *Matrix[T]) StreamVRange(fromCol, toCol int) (*Stream[T], error) {
	if err := m.checkColRange(fromCol, toCol); err != nil {
		return nil, opErrorf("StreamVRange", err)
	}
	if m.IsEmpty() || fromCol == toCol {
		return emptyStream[T](), nil
	}
	rows := int64(m.rows)
	n := int64(toCol-fromCol) * rows

	return linearStream(n, func(k int64) T {
		return m.data[k%rows][int64(fromCol)+k/rows]
	}), nil
}

// StreamLU2RD streams the main diagonal top-left to bottom-right.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) StreamLU2RD() (*Stream[T], error) {
	if err := m.checkSquare(); err != nil {
		return nil, opErrorf("StreamLU2RD", err)
	}

	return linearStream(int64(m.rows), func(k int64) T {
		return m.data[k][k]
	}), nil
}

// StreamRU2LD streams the anti-diagonal top-right to bottom-left.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) StreamRU2LD() (*Stream[T], error) {
	if err := m.checkSquare(); err != nil {
		return nil, opErrorf("StreamRU2LD", err)
	}
	last := int64(m.cols - 1)

	return linearStream(int64(m.rows), func(k int64) T {
		return m.data[k][last-k]
	}), nil
}

// StreamR streams the rows themselves, each as a left-to-right stream.
func (m *Matrix[T]) StreamR() *Stream[*Stream[T]] {
	s, _ := m.StreamRRange(0, m.rows)

	return s
}

// StreamRRange streams rows [fromRow, toRow), each as a left-to-right
// stream.
// Returns ErrOutOfRange for an invalid range.
func (m *Matrix[T]) StreamRRange(fromRow, toRow int) (*Stream[*Stream[T]], error) {
	if err := m.checkRowRange(fromRow, toRow); err != nil {
		return nil, opErrorf("StreamRRange", err)
	}

	return linearStream(int64(toRow-fromRow), func(k int64) *Stream[T] {
		s, _ := m.StreamHRow(fromRow + int(k))

		return s
	}), nil
}

// StreamC streams the columns themselves, each as a top-to-bottom stream.
func (m *Matrix[T]) StreamC() *Stream[*Stream[T]] {
	s, _ := m.StreamCRange(0, m.cols)

	return s
}

// StreamCRange streams columns [fromCol, toCol), each as a top-to-bottom
// stream.
// Returns ErrOutOfRange for an invalid range.
func (m *Matrix[T]) StreamCRange(fromCol, toCol int) (*Stream[*Stream[T]], error) {
	if err := m.checkColRange(fromCol, toCol); err != nil {
		return nil, opErrorf("StreamCRange", err)
	}

	return linearStream(int64(toCol-fromCol), func(k int64) *Stream[T] {
		s, _ := m.StreamVCol(fromCol + int(k))

		return s
	}), nil
}

// PointsH streams every cell position in row-major order.
func (m *Matrix[T]) PointsH() *Stream[Point] {
	cols := int64(m.cols)
	if m.IsEmpty() {
		return emptyStream[Point]()
	}

	return linearStream(m.count, func(k int64) Point {
		return Point{Row: int(k / cols), Col: int(k % cols)}
	})
}

// PointsV streams every cell position in column-major order.
func (m *Matrix[T]) PointsV() *Stream[Point] {
	rows := int64(m.rows)
	if m.IsEmpty() {
		return emptyStream[Point]()
	}

	return linearStream(m.count, func(k int64) Point {
		return Point{Row: int(k % rows), Col: int(k / rows)}
	})
}

// PointsLU2RD streams the main-diagonal positions.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) PointsLU2RD() (*Stream[Point], error) {
	if err := m.checkSquare(); err != nil {
		return nil, opErrorf("PointsLU2RD", err)
	}

	return linearStream(int64(m.rows), func(k int64) Point {
		return Point{Row: int(k), Col: int(k)}
	}), nil
}

// PointsRU2LD streams the anti-diagonal positions.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) PointsRU2LD() (*Stream[Point], error) {
	if err := m.checkSquare(); err != nil {
		return nil, opErrorf("PointsRU2LD", err)
	}
	last := m.cols - 1

	return linearStream(int64(m.rows), func(k int64) Point {
		return Point{Row: int(k), Col: last - int(k)}
	}), nil
}

// PointsR streams the rows as position streams.
func (m *Matrix[T]) PointsR() *Stream[*Stream[Point]] {
	return linearStream(int64(m.rows), func(i int64) *Stream[Point] {
		return linearStream(int64(m.cols), func(j int64) Point {
			return Point{Row: int(i), Col: int(j)}
		})
	})
}

// PointsC streams the columns as position streams.
func (m *Matrix[T]) PointsC() *Stream[*Stream[Point]] {
	return linearStream(int64(m.cols), func(j int64) *Stream[Point] {
		return linearStream(int64(m.rows), func(i int64) Point {
			return Point{Row: int(i), Col: int(j)}
		})
	})
}
