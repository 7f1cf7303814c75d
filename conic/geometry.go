// SPDX-License-Identifier: MIT

// Package conic: derived quantities (center, eccentricity).
package conic

import "math"

// Center returns the point where the gradient of the conic vanishes:
//
//	denom = 4ac − b²
//	x = (b·e − 2c·d) / denom
//	y = (b·d − 2a·e) / denom
//
// It fails with ErrCenterUndefined when denom/4 (the quadratic determinant) is
// within eps of zero, which covers every denominator within eps, or when the
// quotient is not finite. Parabolas and parallel lines therefore have no center.
func (s Section) Center() (Vec2, error) {
	denom := 4*s.A*s.C - s.B*s.B
	if math.Abs(denom) <= 4*s.options().eps {
		return Vec2{}, conicErrorf(opCenter, ErrCenterUndefined)
	}

	c := Vec2{
		X: (s.B*s.E - 2*s.C*s.D) / denom,
		Y: (s.B*s.D - 2*s.A*s.E) / denom,
	}
	if !isFinite(c.X) || !isFinite(c.Y) {
		return Vec2{}, conicErrorf(opCenter, ErrCenterUndefined)
	}

	return c, nil
}

// Eccentricity returns the eccentricity of a proper conic.
//
// Returns:
//   - (e, true, nil) for proper conics: Parabola ⇒ 1, Circle ⇒ 0, Ellipse ∈ (0,1),
//     Hyperbola > 1.
//   - (0, false, nil) for degenerate conics, where it is undefined.
//   - (0, false, ErrEccentricityDomain) when the ratio under the root is negative
//     or not finite, as for imaginary ellipses.
func (s Section) Eccentricity() (float64, bool, error) {
	cls, full := s.ClassifyWithDeterminant()
	shape, ok := cls.(Shape)
	if !ok {
		return 0, false, nil
	}

	e, err := s.eccentricityFor(shape, full)
	if err != nil {
		return 0, false, err
	}

	return e, true, nil
}

// eccentricityFor evaluates the closed form for an already classified shape.
//
//	n   = full > 0 ? −1 : 1
//	r   = sqrt((a−c)² + b²)
//	e   = sqrt(2r / (n·(a+c) + r))
//
// n selects the branch matching the sign convention of the equation.
func (s Section) eccentricityFor(shape Shape, full float64) (float64, error) {
	switch shape {
	case Parabola:
		return 1, nil
	case Circle:
		return 0, nil
	}

	n := 1.0
	if full > 0 {
		n = -1.0
	}
	r := math.Hypot(s.A-s.C, s.B)
	top := 2 * r
	bot := n*(s.A+s.C) + r
	if bot <= 0 {
		return 0, conicErrorf(opEccentricity, ErrEccentricityDomain)
	}
	ratio := top / bot
	if ratio < 0 || !isFinite(ratio) {
		return 0, conicErrorf(opEccentricity, ErrEccentricityDomain)
	}

	return math.Sqrt(ratio), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
