// SPDX-License-Identifier: MIT
// Package matrix: multiplication kernel.

package matrix

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Fixed i→j→k triple loop, C[i][j] = Σ_k A[i][k]*B[k][j].
//
// Inputs:
//   - a: left matrix with shape (n × m).
//   - b: right matrix with shape (m × p).
//
// Returns:
//   - *Dense: new matrix C with shape (n × p).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch, as *InputError).
//
// Complexity:
//   - Time O(n*m*p), Space O(n*p).
//
// Notes:
//   - Products accumulate in int with no overflow detection.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, m, p := a.r, a.c, b.c
	res, err := NewDense(n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int // loop iterators
		rowA, rowR int // row offsets into a.data and res.data
		sum        int
	)
	for i = 0; i < n; i++ {
		rowA = i * m
		rowR = i * p
		for j = 0; j < p; j++ {
			sum = 0
			for k = 0; k < m; k++ {
				sum += a.data[rowA+k] * b.data[k*p+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res, nil
}
