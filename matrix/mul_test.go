// Package matrix_test contains unit tests for the multiplication kernel.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gradestats/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestMul(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b [][]int
		want [][]int
	}{
		{"2x2", [][]int{{1, 2}, {3, 4}}, [][]int{{5, 6}, {7, 8}}, [][]int{{19, 22}, {43, 50}}},
		{"2x3 by 3x1", [][]int{{1, 2, 3}, {4, 5, 6}}, [][]int{{1}, {0}, {-1}}, [][]int{{-2}, {-2}}},
		{"1x1", [][]int{{-3}}, [][]int{{7}}, [][]int{{-21}}},
		{"row by column", [][]int{{1, 2, 3}}, [][]int{{4}, {5}, {6}}, [][]int{{32}}},
		{"column by row", [][]int{{1}, {2}}, [][]int{{3, 4}}, [][]int{{3, 4}, {6, 8}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Mul(mustRows(t, tc.a), mustRows(t, tc.b))
			require.NoError(t, err)
			require.Equal(t, len(tc.want), got.Rows())
			require.Equal(t, len(tc.want[0]), got.Cols())
			for i := range tc.want {
				require.Equal(t, tc.want[i], got.Row(i), "row %d", i)
			}
		})
	}
}

// TestMul_DoesNotMutateInputs guards against aliasing in the kernel.
func TestMul_DoesNotMutateInputs(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustRows(t, [][]int{{5, 6}, {7, 8}})
	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", a.String())
	require.Equal(t, "[5, 6]\n[7, 8]\n", b.String())
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]int{{1, 2}, {3, 4}})

	got, err := matrix.Mul(a, b)
	require.Nil(t, got)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var ie *matrix.InputError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, "Matrix multiplication not possible. Columns of A (3) must equal rows of B (2).", ie.Msg)
}

func TestMul_Nil(t *testing.T) {
	b := mustRows(t, [][]int{{1}})
	_, err := matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(b, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"compatible", mustRows(t, [][]int{{1, 2}}), mustRows(t, [][]int{{1}, {2}}), nil},
		{"inner mismatch", mustRows(t, [][]int{{1, 2}}), mustRows(t, [][]int{{1, 2}}), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateMulCompatible(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
