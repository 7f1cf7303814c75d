// SPDX-License-Identifier: MIT
// Package matrix - canonical builders for Dense matrices from literal rows.
//
// Purpose:
//   - Deterministic builders that copy caller-owned [][]float64 into a fresh Dense,
//     honoring Options (numeric policy, symmetry tolerance).
//
// Policy & Contracts:
//   - Rows must be non-empty and rectangular (ErrInvalidDimensions / ErrBadShape).
//   - Under ValidateNaNInf (default), NaN/±Inf cells are rejected with coordinates.
//   - NewSymmetric additionally requires |A[i,j]-A[j,i]| ≤ eps.

package matrix

import "fmt"

// Builder tags for error wrapping.
const (
	opFromRows  = "NewFromRows"
	opSymmetric = "NewSymmetric"
)

// NewFromRows copies rows into a new Dense of shape len(rows)×len(rows[0]).
// Implementation:
//   - Stage 1: resolve options; validate non-empty, rectangular input.
//   - Stage 2: allocate with the resolved numeric policy and Set each cell in i→j order.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrBadShape (ragged rows),
//     ErrNaNInf (non-finite cell under validation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(rows[i]), c, ErrBadShape))
		}
	}

	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// NewSymmetric builds a Dense from rows and verifies symmetry within eps
// (WithEpsilon, default DefaultEpsilon).
//
// Errors:
//   - everything NewFromRows returns, plus ErrDimensionMismatch (non-square)
//     and ErrAsymmetry.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewSymmetric(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := NewFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}
	if err = ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}

	return m, nil
}
