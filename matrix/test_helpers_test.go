// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for builders/kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/conic/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// Compare asserts that m equals want cell by cell (exact).
func Compare(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatal(err)
			}
		}
	}
}
