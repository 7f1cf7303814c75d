// SPDX-License-Identifier: MIT

// Package conic: the determinant-based decision procedure.
//
// Both branch chains below are ordered; the first matching test wins. That
// order decides which family a value sitting exactly on a tolerance boundary
// falls into, so the tests must not be reordered.
package conic

import "math"

// Classify returns the conic's type: a Shape for proper conics or a
// DegenerateShape otherwise.
//
// Algorithm:
//  1. q = a·c − (b/2)², full = det of the 3×3 quadratic-form matrix.
//  2. |full| < eps ⇒ degenerate: IntersectingLines, Point, ParallelLines.
//  3. otherwise: Hyperbola, Parabola, Circle (|a−c| < eps && |b| < eps), Ellipse.
//
// The exact comparisons in step 2 and 3 depend on the BoundaryPolicy.
// Complexity: O(1).
func (s Section) Classify() Classification {
	cls, _ := s.ClassifyWithDeterminant()

	return cls
}

// ClassifyWithDeterminant is Classify that also returns the full determinant,
// which Eccentricity needs to pick its branch.
func (s Section) ClassifyWithDeterminant() (Classification, float64) {
	q, full := s.Determinants()

	return s.classify(q, full), full
}

// classify dispatches on the full determinant.
func (s Section) classify(q, full float64) Classification {
	o := s.options()
	if math.Abs(full) < o.eps {
		return s.classifyDegenerate(q, o)
	}

	return s.classifyProper(q, o)
}

// classifyDegenerate bins q for |full| < eps.
func (s Section) classifyDegenerate(q float64, o Options) DegenerateShape {
	eps := o.eps
	if o.boundary == BoundaryLegacy {
		if q < eps {
			return IntersectingLines
		} else if q > eps {
			return Point
		}

		return ParallelLines
	}

	if q < -eps {
		return IntersectingLines
	} else if q > eps {
		return Point
	}

	return ParallelLines
}

// classifyProper bins q for |full| ≥ eps.
func (s Section) classifyProper(q float64, o Options) Shape {
	eps := o.eps
	if o.boundary == BoundaryLegacy {
		if q < eps {
			return Hyperbola
		} else if q > -eps && q < eps {
			return Parabola // unreachable under this policy
		}
	} else {
		if q < -eps {
			return Hyperbola
		} else if math.Abs(q) <= eps {
			return Parabola
		}
	}

	if math.Abs(s.A-s.C) < eps && math.Abs(s.B) < eps {
		return Circle
	}

	return Ellipse
}
