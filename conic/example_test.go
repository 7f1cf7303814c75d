package conic_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/conic/conic"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleSection_Classify
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	2x² − 3xy + 4y² + 6x − 3y − 4 = 0
//	q = 2·4 − (−3/2)² = 5.75 > 0 and full = −50 ⇒ a rotated ellipse.
func ExampleSection_Classify() {
	s := conic.New(2, -3, 4, 6, -3, -4)
	fmt.Println(s)
	fmt.Println(s.Classify())
	// Output:
	// 2x^2 - 3xy + 4y^2 + 6x - 3y - 4 = 0
	// ellipse
}

// ExampleSection_Center shows a defined center and the sentinel for parabolas.
func ExampleSection_Center() {
	c, err := conic.New(2, -3, 4, 6, -3, -4).Center()
	fmt.Printf("(%.4f, %.4f) %v\n", c.X, c.Y, err)

	_, err = conic.New(1, 0, 0, 0, -1, 0).Center()
	fmt.Println(errors.Is(err, conic.ErrCenterUndefined))
	// Output:
	// (-1.6957, -0.2609) <nil>
	// true
}

// ExampleSection_Eccentricity covers a value, an absent value and a parabola.
func ExampleSection_Eccentricity() {
	for _, s := range []conic.Section{
		conic.New(2, -3, 4, 6, -3, -4),
		conic.New(1, 0, -1, 0, 0, 0),
		conic.New(1, 0, 0, 0, -1, 0),
	} {
		e, ok, err := s.Eccentricity()
		fmt.Printf("%-18s e=%.4f ok=%t err=%v\n", s.Classify(), e, ok, err)
	}
	// Output:
	// ellipse            e=0.8664 ok=true err=<nil>
	// intersecting-lines e=0.0000 ok=false err=<nil>
	// parabola           e=1.0000 ok=true err=<nil>
}

// ExampleWithBoundaryPolicy contrasts the two boundary policies on y = x².
func ExampleWithBoundaryPolicy() {
	s := conic.New(1, 0, 0, 0, -1, 0)
	fmt.Println(s.Classify())
	fmt.Println(s.With(conic.WithBoundaryPolicy(conic.BoundaryLegacy)).Classify())
	// Output:
	// parabola
	// hyperbola
}
