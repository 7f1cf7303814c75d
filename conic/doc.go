// Package conic classifies planar conic sections given by the general
// second-degree equation
//
//	a·x² + b·xy + c·y² + d·x + e·y + f = 0
//
// and derives their center and eccentricity.
//
// 🚀 How does it work?
//
//	The coefficients form the symmetric quadratic-form matrix
//
//	  | a    b/2  d/2 |
//	  | b/2  c    e/2 |
//	  | d/2  e/2  f   |
//
//	Its determinant decides degenerate (|det| < eps) versus proper conics;
//	the determinant of the leading 2×2 block, a·c − (b/2)², then separates
//	  • proper:     Hyperbola (< 0), Parabola (≈ 0), Ellipse/Circle (> 0)
//	  • degenerate: IntersectingLines (< 0), ParallelLines (≈ 0), Point (> 0)
//
// ✨ Key features:
//   - Classification is a sealed sum type: Shape | DegenerateShape.
//   - Absolute tolerance eps (DefaultEpsilon = 0.001), configurable via WithEpsilon.
//   - Two boundary policies: BoundaryBanded (default) and BoundaryLegacy,
//     a first-match chain where every value below +eps falls into the
//     first branch.
//   - Center and eccentricity report undefined results as sentinel errors
//     instead of propagating Inf/NaN.
//
// ⚙️ Usage:
//
//	s := conic.New(2, -3, 4, 6, -3, -4)
//	switch cls := s.Classify().(type) {
//	case conic.Shape:
//	    fmt.Println("proper conic:", cls)
//	case conic.DegenerateShape:
//	    fmt.Println("degenerate:", cls)
//	}
//	center, err := s.Center()            // ErrCenterUndefined for parabolas
//	ecc, ok, err := s.Eccentricity()     // ok=false for degenerate conics
//
// Every operation is a pure function of the six coefficients; Section values
// may be classified concurrently without coordination.
package conic
