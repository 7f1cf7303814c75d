// SPDX-License-Identifier: MIT

// Package conic: functional configuration of the classifier.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package conic

import (
	"fmt"
	"math"
	"strings"
)

// DefaultEpsilon is the absolute tolerance used for every "≈ 0" decision.
// It is not scaled by the magnitude of the coefficients, so uniformly
// scaling a conic far enough down makes it look degenerate.
const DefaultEpsilon = 0.001

// BoundaryPolicy selects how quadratic-determinant values near zero are binned.
type BoundaryPolicy uint8

const (
	// BoundaryBanded bins q < −eps, |q| ≤ eps and q > eps. Parabola and
	// ParallelLines cover the whole band around zero.
	BoundaryBanded BoundaryPolicy = iota

	// BoundaryLegacy evaluates "q < eps" first. Parabola is unreachable and
	// ParallelLines only occurs at q == eps exactly.
	BoundaryLegacy
)

// DefaultBoundaryPolicy is BoundaryBanded.
const DefaultBoundaryPolicy = BoundaryBanded

const (
	panicEpsilonInvalid  = "conic: WithEpsilon: eps must be finite, non-negative"
	panicBoundaryInvalid = "conic: WithBoundaryPolicy: unknown policy"
)

// String implements fmt.Stringer.
func (p BoundaryPolicy) String() string {
	switch p {
	case BoundaryBanded:
		return "banded"
	case BoundaryLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("BoundaryPolicy(%d)", uint8(p))
	}
}

// ParseBoundaryPolicy maps "banded" or "legacy" (case-insensitive) to a policy.
func ParseBoundaryPolicy(name string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "banded", "":
		return BoundaryBanded, nil
	case "legacy":
		return BoundaryLegacy, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownBoundaryPolicy)
	}
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective classifier configuration.
type Options struct {
	eps      float64
	boundary BoundaryPolicy
	resolved bool // false for the zero value; see Section.options
}

// WithEpsilon sets the absolute tolerance. Panics when eps is negative or not finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithBoundaryPolicy selects the boundary policy. Panics on unknown values.
func WithBoundaryPolicy(p BoundaryPolicy) Option {
	if p != BoundaryBanded && p != BoundaryLegacy {
		panic(panicBoundaryInvalid)
	}

	return func(o *Options) { o.boundary = p }
}

// Epsilon reports the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Boundary reports the effective boundary policy.
func (o Options) Boundary() BoundaryPolicy { return o.boundary }

// gatherOptions applies setters over the documented defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		boundary: DefaultBoundaryPolicy,
		resolved: true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
