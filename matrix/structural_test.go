// Package matrix_test contains unit tests for the structural transforms:
// transpose, rotations, flips, reshape, extend, tiling and stacking.
package matrix_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestTranspose verifies out[i][j] = in[j][i] for a rectangular matrix.
func TestTranspose(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	want := mustOf(t, [][]int{{1, 4}, {2, 5}, {3, 6}})
	require.True(t, matrix.Equal(m.Transpose(), want))
}

// TestTransposeInvolution verifies Transpose(Transpose(m)) == m.
func TestTransposeInvolution(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}})
	require.True(t, matrix.Equal(m.Transpose().Transpose(), m))
}

// TestRotate90 verifies the clockwise quarter turn on a rectangle.
func TestRotate90(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	want := mustOf(t, [][]int{{4, 1}, {5, 2}, {6, 3}})
	require.True(t, matrix.Equal(m.Rotate90(), want))
}

// TestRotate180 verifies the half turn.
func TestRotate180(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	want := mustOf(t, [][]int{{6, 5, 4}, {3, 2, 1}})
	require.True(t, matrix.Equal(m.Rotate180(), want))
}

// TestRotate270 verifies the counter-clockwise quarter turn.
func TestRotate270(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	want := mustOf(t, [][]int{{3, 6}, {2, 5}, {1, 4}})
	require.True(t, matrix.Equal(m.Rotate270(), want))
}

// TestRotationGroup verifies four quarter turns compose to the identity and
// two compose to the half turn.
func TestRotationGroup(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	require.True(t, matrix.Equal(m.Rotate90().Rotate90(), m.Rotate180()))
	require.True(t, matrix.Equal(m.Rotate90().Rotate90().Rotate90(), m.Rotate270()))
	require.True(t, matrix.Equal(m.Rotate90().Rotate270(), m))
	require.True(t, matrix.Equal(m.Rotate90().Rotate90().Rotate90().Rotate90(), m))
}

// TestReverseAndFlip verifies the in-place mirrors against their copying
// counterparts.
func TestReverseAndFlip(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}

	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	fh := m.FlipH()
	require.True(t, matrix.Equal(m, mustOf(t, src))) // FlipH left the receiver alone
	require.True(t, matrix.Equal(fh, mustOf(t, [][]int{{3, 2, 1}, {6, 5, 4}})))

	fv := m.FlipV()
	require.True(t, matrix.Equal(fv, mustOf(t, [][]int{{4, 5, 6}, {1, 2, 3}})))

	m.ReverseH() // in place
	require.True(t, matrix.Equal(m, fh))

	n := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	n.ReverseV() // in place
	require.True(t, matrix.Equal(n, fv))
}

// TestFlipInvolution verifies flipping twice restores the original.
func TestFlipInvolution(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.True(t, matrix.Equal(m.FlipH().FlipH(), m))
	require.True(t, matrix.Equal(m.FlipV().FlipV(), m))
}

// TestReshapeExact verifies the 2x3 to 3x2 reinterpretation keeps the
// row-major sequence.
func TestReshapeExact(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	r, err := m.Reshape(3, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(r, mustOf(t, [][]int{{1, 2}, {3, 4}, {5, 6}})))
}

// TestReshapeCeilingPolicy verifies shrink drops trailing elements and grow
// zero-fills the shortfall, never erroring.
func TestReshapeCeilingPolicy(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	small, err := m.Reshape(1, 4) // 6 elements into 4 cells
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, small.Flatten()) // 5 and 6 dropped

	big, err := m.Reshape(2, 4) // 6 elements into 8 cells
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 0, 0}, big.Flatten()) // tail zero-filled

	zero, err := m.Reshape(0, 5)
	require.NoError(t, err)
	require.True(t, zero.IsEmpty())

	_, err = m.Reshape(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestReshapeFlattenRoundTrip verifies count-preserving reshape keeps the
// flat sequence intact.
func TestReshapeFlattenRoundTrip(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}})

	r, err := m.Reshape(2, 6)
	require.NoError(t, err)
	require.Equal(t, m.Flatten(), r.Flatten())

	back, err := r.Reshape(3, 4)
	require.NoError(t, err)
	require.True(t, matrix.Equal(back, m))
}

// TestReshapeCols verifies the derived-row-count variant.
func TestReshapeCols(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	r, err := m.ReshapeCols(4) // ceil(6/4) = 2 rows
	require.NoError(t, err)
	require.Equal(t, 2, r.Rows())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 0, 0}, r.Flatten())

	_, err = m.ReshapeCols(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestExtendGrow verifies growth fills only the new cells with the given
// value.
func TestExtendGrow(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2}, {3, 4}})

	e, err := m.Extend(3, 3, 9)
	require.NoError(t, err)
	require.True(t, matrix.Equal(e, mustOf(t, [][]int{{1, 2, 9}, {3, 4, 9}, {9, 9, 9}})))
	require.True(t, matrix.Equal(m, mustOf(t, [][]int{{1, 2}, {3, 4}}))) // receiver untouched
}

// TestExtendShrink verifies shrink is a plain truncating copy.
func TestExtendShrink(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	e, err := m.Extend(2, 2, 0)
	require.NoError(t, err)
	require.True(t, matrix.Equal(e, mustOf(t, [][]int{{1, 2}, {4, 5}})))
}

// TestExtendMixed verifies one dimension growing while the other shrinks.
func TestExtendMixed(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	e, err := m.Extend(3, 2, 7) // fewer cols, more rows
	require.NoError(t, err)
	require.True(t, matrix.Equal(e, mustOf(t, [][]int{{1, 2}, {4, 5}, {7, 7}})))
}

// TestExtendPad verifies four-sided padding with the original preserved at
// the offset.
func TestExtendPad(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2}, {3, 4}})

	p, err := m.ExtendPad(1, 0, 1, 2, 0)
	require.NoError(t, err)
	require.True(t, matrix.Equal(p, mustOf(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 2, 0, 0},
		{0, 3, 4, 0, 0},
	})))

	_, err = m.ExtendPad(-1, 0, 0, 0, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRepelem verifies per-element block repetition.
func TestRepelem(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2}, {3, 4}})

	r, err := m.Repelem(2, 3)
	require.NoError(t, err)
	require.True(t, matrix.Equal(r, mustOf(t, [][]int{
		{1, 1, 1, 2, 2, 2},
		{1, 1, 1, 2, 2, 2},
		{3, 3, 3, 4, 4, 4},
		{3, 3, 3, 4, 4, 4},
	})))

	_, err = m.Repelem(0, 1)
	require.ErrorIs(t, err, matrix.ErrBadRepeat)
}

// TestRepmat verifies whole-matrix tiling.
func TestRepmat(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2}, {3, 4}})

	r, err := m.Repmat(2, 3)
	require.NoError(t, err)
	require.True(t, matrix.Equal(r, mustOf(t, [][]int{
		{1, 2, 1, 2, 1, 2},
		{3, 4, 3, 4, 3, 4},
		{1, 2, 1, 2, 1, 2},
		{3, 4, 3, 4, 3, 4},
	})))

	_, err = m.Repmat(1, -1)
	require.ErrorIs(t, err, matrix.ErrBadRepeat)
}

// TestVstackHstack verifies stacking and the dimension checks.
func TestVstackHstack(t *testing.T) {
	a := mustOf(t, [][]int{{1, 2}, {3, 4}})
	b := mustOf(t, [][]int{{5, 6}})

	v, err := a.Vstack(b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(v, mustOf(t, [][]int{{1, 2}, {3, 4}, {5, 6}})))

	c := mustOf(t, [][]int{{7}, {8}})
	h, err := a.Hstack(c)
	require.NoError(t, err)
	require.True(t, matrix.Equal(h, mustOf(t, [][]int{{1, 2, 7}, {3, 4, 8}})))

	_, err = a.Vstack(c)                                   // 2 cols vs 1 col
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Hstack(b)                                   // 2 rows vs 1 row
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFlattenIndependence verifies Flatten returns a detached slice.
func TestFlattenIndependence(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2}, {3, 4}})
	flat := m.Flatten()
	require.Equal(t, []int{1, 2, 3, 4}, flat)

	flat[0] = 99 // mutate the flat slice
	v, _ := m.Get(0, 0)
	require.Equal(t, 1, v) // matrix untouched
}

// TestFlatOp verifies a whole-matrix slice operation round trip.
func TestFlatOp(t *testing.T) {
	m := mustOf(t, [][]int{{4, 1}, {3, 2}})
	m.FlatOp(sort.Ints) // sort all elements in row-major order
	require.True(t, matrix.Equal(m, mustOf(t, [][]int{{1, 2}, {3, 4}})))
}
