// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gradestats/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)             // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewDense(5, -1)             // negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewDense(math.MaxInt/2, 3)  // element count overflows int
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape, not a panic
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -7))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, -7, val)

	val, err = m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, val, "fresh Dense must be zero-filled")
}

func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, []int{4, 5, 6}, m.Row(1))
	require.Nil(t, m.Row(2))

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromRows([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
}

// TestString renders one bracketed row per line.
func TestString(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, -2}, {30, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, -2]\n[30, 4]\n", m.String())
}

// TestRow_IsCopy checks that mutating a returned row leaves the matrix intact.
func TestRow_IsCopy(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	r := m.Row(0)
	r[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}
