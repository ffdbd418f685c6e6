// Package matrix_test contains unit tests for the neighbor queries.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestDirectionalNeighbors verifies the four comma-ok lookups in the
// interior and at the borders.
func TestDirectionalNeighbors(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	v, ok := m.UpOf(1, 1) // interior cell, all four exist
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = m.DownOf(1, 1)
	require.True(t, ok)
	require.Equal(t, 8, v)

	v, ok = m.LeftOf(1, 1)
	require.True(t, ok)
	require.Equal(t, 4, v)

	v, ok = m.RightOf(1, 1)
	require.True(t, ok)
	require.Equal(t, 6, v)

	_, ok = m.UpOf(0, 1) // top border
	require.False(t, ok)

	_, ok = m.DownOf(2, 1) // bottom border
	require.False(t, ok)

	_, ok = m.LeftOf(1, 0) // left border
	require.False(t, ok)

	_, ok = m.RightOf(1, 2) // right border
	require.False(t, ok)

	_, ok = m.UpOf(5, 5) // cell itself out of bounds
	require.False(t, ok)
}

// TestAdjacent4Points verifies the fixed up/right/down/left order with nil
// placeholders at borders.
func TestAdjacent4Points(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	pts := m.Adjacent4Points(1, 1) // interior: all four present
	require.Len(t, pts, 4)
	require.Equal(t, matrix.Pt(0, 1), *pts[0]) // up
	require.Equal(t, matrix.Pt(1, 2), *pts[1]) // right
	require.Equal(t, matrix.Pt(2, 1), *pts[2]) // down
	require.Equal(t, matrix.Pt(1, 0), *pts[3]) // left

	pts = m.Adjacent4Points(0, 0) // corner: up and left missing
	require.Nil(t, pts[0])
	require.Equal(t, matrix.Pt(0, 1), *pts[1])
	require.Equal(t, matrix.Pt(1, 0), *pts[2])
	require.Nil(t, pts[3])
}

// TestAdjacent8Points verifies the fixed eight-direction order with nil
// placeholders at borders.
func TestAdjacent8Points(t *testing.T) {
	m := mustOf(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	pts := m.Adjacent8Points(1, 1) // interior: all eight present
	require.Len(t, pts, 8)
	require.Equal(t, matrix.Pt(0, 0), *pts[0]) // left-up
	require.Equal(t, matrix.Pt(0, 1), *pts[1]) // up
	require.Equal(t, matrix.Pt(0, 2), *pts[2]) // right-up
	require.Equal(t, matrix.Pt(1, 2), *pts[3]) // right
	require.Equal(t, matrix.Pt(2, 2), *pts[4]) // right-down
	require.Equal(t, matrix.Pt(2, 1), *pts[5]) // down
	require.Equal(t, matrix.Pt(2, 0), *pts[6]) // left-down
	require.Equal(t, matrix.Pt(1, 0), *pts[7]) // left

	pts = m.Adjacent8Points(2, 2) // bottom-right corner
	require.Equal(t, matrix.Pt(1, 1), *pts[0])
	require.Equal(t, matrix.Pt(1, 2), *pts[1])
	require.Nil(t, pts[2])
	require.Nil(t, pts[3])
	require.Nil(t, pts[4])
	require.Nil(t, pts[5])
	require.Nil(t, pts[6])
	require.Equal(t, matrix.Pt(2, 1), *pts[7])
}
