// Package matrix offers the small dense linear-algebra layer behind the conic
// classifier.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over two-dimensional float64 arrays,
//     and Dense, its row-major implementation with an optional NaN/Inf guard.
//   - Builders (NewFromRows, NewSymmetric) that copy literal rows and enforce
//     shape, finiteness and symmetry up front.
//   - Determinant kernels: Det2x2 and Det3x3 closed forms, and Det for any
//     square Matrix (LU with partial pivoting beyond 3×3).
//   - Principal/Induced submatrix extraction.
//
// All user-triggered failures are reported as sentinel errors (see errors.go)
// wrapped with an operation tag; match them with errors.Is.
//
// See the examples in this package and in conic for usage patterns.
package matrix
