// SPDX-License-Identifier: MIT
// Package conic: sentinel error set.
// Degenerate classifications and a missing eccentricity are values, not
// errors; the sentinels below cover numerically undefined quantities only.
// Callers match them with errors.Is.

package conic

import (
	"errors"
	"fmt"
)

var (
	// ErrCenterUndefined is returned by Center when 4ac − b² is within the
	// tolerance band of zero (parabolas, parallel lines) or the quotient is
	// not finite.
	ErrCenterUndefined = errors.New("conic: center undefined for this conic")

	// ErrEccentricityDomain is returned by Eccentricity when the ratio under
	// the final square root is negative or not finite (e.g. the imaginary
	// ellipse x² + 4y² + 4 = 0).
	ErrEccentricityDomain = errors.New("conic: eccentricity outside numeric domain")

	// ErrNonFinite is returned by Validate when a coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("conic: coefficient is NaN or Inf")

	// ErrUnknownBoundaryPolicy is returned by ParseBoundaryPolicy for unknown names.
	ErrUnknownBoundaryPolicy = errors.New("conic: unknown boundary policy")
)

// Operation tags for error wrapping.
const (
	opCenter       = "Center"
	opEccentricity = "Eccentricity"
	opMatrix       = "Matrix"
	opValidate     = "Validate"
)

// conicErrorf wraps err with an operation tag, preserving it for errors.Is.
func conicErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
