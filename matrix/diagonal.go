// SPDX-License-Identifier: MIT
// Package matrix: diagonal access for square matrices. LU2RD is the main
// diagonal (left-up to right-down, i ↦ (i, i)); RU2LD is the anti-diagonal
// (right-up to left-down, i ↦ (i, cols-1-i)).

package matrix

// Diagonal builds a square matrix from one or both diagonals. Pass nil for
// a diagonal you do not want set; off-diagonal cells stay at the zero
// value. When both slices are given they must have equal length.
// Returns ErrDimensionMismatch on a length conflict.
func Diagonal[T any](lu2rd, ru2ld []T) (*Matrix[T], error) {
	if len(lu2rd) > 0 && len(ru2ld) > 0 && len(lu2rd) != len(ru2ld) {
		return nil, opErrorf("Diagonal", ErrDimensionMismatch)
	}
	n := len(lu2rd)
	if len(ru2ld) > n {
		n = len(ru2ld)
	}
	c := newData[T](n, n)
	for i := 0; i < len(lu2rd); i++ {
		c[i][i] = lu2rd[i]
	}
	for i := 0; i < len(ru2ld); i++ {
		c[i][n-1-i] = ru2ld[i]
	}

	return &Matrix[T]{rows: n, cols: n, count: int64(n) * int64(n), data: c}, nil
}

// DiagonalLU2RD builds a square matrix with the given main diagonal.
func DiagonalLU2RD[T any](diag []T) *Matrix[T] {
	m, _ := Diagonal(diag, nil)

	return m
}

// DiagonalRU2LD builds a square matrix with the given anti-diagonal.
func DiagonalRU2LD[T any](diag []T) *Matrix[T] {
	m, _ := Diagonal(nil, diag)

	return m
}

// checkSquare gates the diagonal accessors; only square matrices have a
// well-defined pair of full-length diagonals.
func (m *Matrix[T]) checkSquare() error {
	if m.rows != m.cols {
		return ErrNonSquare
	}

	return nil
}

// GetLU2RD returns a copy of the main diagonal.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) GetLU2RD() ([]T, error) {
	if err := m.checkSquare(); err != nil {
		return nil, opErrorf("GetLU2RD", err)
	}
	c := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = m.data[i][i]
	}

	return c, nil
}

// SetLU2RD overwrites the main diagonal from diag, which must hold at least
// rows elements; extras are ignored.
// Returns ErrNonSquare or ErrDimensionMismatch.
func (m *Matrix[T]) SetLU2RD(diag []T) error {
	if err := m.checkSquare(); err != nil {
		return opErrorf("SetLU2RD", err)
	}
	if len(diag) < m.rows {
		return opErrorf("SetLU2RD", ErrDimensionMismatch)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][i] = diag[i]
	}

	return nil
}

// UpdateLU2RD applies f to every main-diagonal element in place.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) UpdateLU2RD(f func(T) T) error {
	if err := m.checkSquare(); err != nil {
		return opErrorf("UpdateLU2RD", err)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][i] = f(m.data[i][i])
	}

	return nil
}

// GetRU2LD returns a copy of the anti-diagonal.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) GetRU2LD() ([]T, error) {
	if err := m.checkSquare(); err != nil {
		return nil, opErrorf("GetRU2LD", err)
	}
	c := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		c[i] = m.data[i][m.cols-1-i]
	}

	return c, nil
}

// SetRU2LD overwrites the anti-diagonal from diag, which must hold at least
// rows elements; extras are ignored.
// Returns ErrNonSquare or ErrDimensionMismatch.
func (m *Matrix[T]) SetRU2LD(diag []T) error {
	if err := m.checkSquare(); err != nil {
		return opErrorf("SetRU2LD", err)
	}
	if len(diag) < m.rows {
		return opErrorf("SetRU2LD", ErrDimensionMismatch)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][m.cols-1-i] = diag[i]
	}

	return nil
}

// UpdateRU2LD applies f to every anti-diagonal element in place.
// Returns ErrNonSquare for a non-square receiver.
func (m *Matrix[T]) UpdateRU2LD(f func(T) T) error {
	if err := m.checkSquare(); err != nil {
		return opErrorf("UpdateRU2LD", err)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][m.cols-1-i] = f(m.data[i][m.cols-1-i])
	}

	return nil
}
