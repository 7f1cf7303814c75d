// SPDX-License-Identifier: MIT

// Package conic: classification outcome types.
package conic

import "fmt"

// Classification is the result of Section.Classify. It is implemented only by
// Shape (proper conics) and DegenerateShape; use a type switch to branch.
type Classification interface {
	fmt.Stringer

	// Degenerate reports whether the outcome belongs to the degenerate family.
	Degenerate() bool

	isClassification()
}

// Shape enumerates the non-degenerate conics.
type Shape uint8

const (
	// Hyperbola: quadratic determinant < 0.
	Hyperbola Shape = iota
	// Parabola: quadratic determinant ≈ 0.
	Parabola
	// Ellipse: quadratic determinant > 0, not a circle.
	Ellipse
	// Circle: ellipse with a ≈ c and b ≈ 0.
	Circle
)

// DegenerateShape enumerates the degenerate conics.
type DegenerateShape uint8

const (
	// IntersectingLines: a real pair of crossing lines.
	IntersectingLines DegenerateShape = iota
	// ParallelLines: a pair of parallel (possibly coincident or imaginary) lines.
	ParallelLines
	// Point: a single real point.
	Point
)

// Compile-time assertions: both families are Classifications.
var (
	_ Classification = Hyperbola
	_ Classification = IntersectingLines
)

func (Shape) isClassification()           {}
func (DegenerateShape) isClassification() {}

// Degenerate always reports false for proper conics.
func (Shape) Degenerate() bool { return false }

// Degenerate always reports true for degenerate conics.
func (DegenerateShape) Degenerate() bool { return true }

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case Hyperbola:
		return "hyperbola"
	case Parabola:
		return "parabola"
	case Ellipse:
		return "ellipse"
	case Circle:
		return "circle"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// String implements fmt.Stringer.
func (s DegenerateShape) String() string {
	switch s {
	case IntersectingLines:
		return "intersecting-lines"
	case ParallelLines:
		return "parallel-lines"
	case Point:
		return "point"
	default:
		return fmt.Sprintf("DegenerateShape(%d)", uint8(s))
	}
}

// Vec2 is a point in the plane. Center returns it.
type Vec2 struct {
	X, Y float64
}
