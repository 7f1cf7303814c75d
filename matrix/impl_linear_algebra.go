// SPDX-License-Identifier: MIT
// Package matrix provides determinant kernels over any Matrix implementation.
// All functions perform strict fail-fast validation and return clear errors
// on nil or non-square input.
//
// Purpose:
//   - Closed-form cofactor expansions for 2×2 and 3×3 (the shapes used by
//     quadratic forms of plane curves).
//   - A generic Det for any n via LU elimination with partial pivoting.
//
// Notes:
//   - All kernels use central validators and wrap with matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for elimination and similar accumulations.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDet = "Det"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Det2x2 returns det([[a, b], [c, d]]) = a·d − b·c.
// Complexity: O(1).
func Det2x2(a, b, c, d float64) float64 {
	return a*d - b*c
}

// Det3x3 returns the determinant of the row-major 3×3 matrix
//
//	| m00 m01 m02 |
//	| m10 m11 m12 |
//	| m20 m21 m22 |
//
// by cofactor expansion along the first row.
// Complexity: O(1).
func Det3x3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) float64 {
	return m00*Det2x2(m11, m12, m21, m22) -
		m01*Det2x2(m10, m12, m20, m22) +
		m02*Det2x2(m10, m11, m20, m21)
}

// Det computes det(m) for a square matrix.
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: n ≤ 3 uses the closed forms (bitwise identical to Det2x2/Det3x3).
//   - Stage 3: n > 3 copies into a scratch buffer and runs Gaussian elimination
//     with partial pivoting; det = sign · Π U[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Determinism:
//   - Fixed pivot scan order (first max wins on ties).
//
// Complexity:
//   - Time O(n³) for n > 3, O(1) otherwise. Space O(n²).
//
// Notes:
//   - A singular matrix returns 0 with a nil error; singularity is a value here.
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a, err := flatten(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := m.Rows()
	switch n {
	case 1:
		return a[0], nil
	case 2:
		return Det2x2(a[0], a[1], a[2], a[3]), nil
	case 3:
		return Det3x3(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8]), nil
	}

	return detLU(a, n), nil
}

// flatten copies m into a fresh row-major slice (fast-path for *Dense).
func flatten(m Matrix) ([]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(out, d.data)

		return out, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// detLU reduces the n×n row-major buffer a in place and returns its determinant.
func detLU(a []float64, n int) float64 {
	det := 1.0
	var i, j, k, p int
	var pivot, f, best float64
	for k = 0; k < n; k++ {
		// Partial pivoting: pick the row with the largest |a[i,k]|.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return 0
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			det = -det
		}

		pivot = a[k*n+k]
		det *= pivot
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			if f == ZeroSum {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return det
}
