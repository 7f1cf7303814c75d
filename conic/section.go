// SPDX-License-Identifier: MIT

// Package conic: the Section value and its matrix representation.
package conic

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/conic/matrix"
)

// Section is an immutable conic a·x² + b·xy + c·y² + d·x + e·y + f = 0.
// Any real sextuple is accepted; a = b = c = 0 is handled without faults.
// A literal Section{...} uses the default options.
type Section struct {
	A, B, C, D, E, F float64

	opts Options
}

// New returns the Section for the given coefficients.
func New(a, b, c, d, e, f float64, opts ...Option) Section {
	return Section{A: a, B: b, C: c, D: d, E: e, F: f, opts: gatherOptions(opts...)}
}

// Options reports the classifier configuration the section was built with.
func (s Section) Options() Options { return s.options() }

// options resolves the configuration; a Section literal built without New
// classifies with the defaults.
func (s Section) options() Options {
	if !s.opts.resolved {
		return gatherOptions()
	}

	return s.opts
}

// With returns a copy of s with additional options applied on top of its own.
func (s Section) With(opts ...Option) Section {
	s.opts = s.options()
	for _, set := range opts {
		set(&s.opts)
	}

	return s
}

// Coefficients returns (a, b, c, d, e, f).
func (s Section) Coefficients() [6]float64 {
	return [6]float64{s.A, s.B, s.C, s.D, s.E, s.F}
}

// Scale returns the section with every coefficient multiplied by k.
// For k ≠ 0 it describes the same curve.
func (s Section) Scale(k float64) Section {
	s.A, s.B, s.C, s.D, s.E, s.F = k*s.A, k*s.B, k*s.C, k*s.D, k*s.E, k*s.F

	return s
}

// Validate reports ErrNonFinite when any coefficient is NaN or ±Inf.
func (s Section) Validate() error {
	for i, v := range s.Coefficients() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return conicErrorf(opValidate, &coefficientError{index: i, value: v})
		}
	}

	return nil
}

// coefficientError names the offending coefficient and unwraps to ErrNonFinite.
type coefficientError struct {
	index int
	value float64
}

func (e *coefficientError) Error() string {
	return "coefficient " + coefficientNames[e.index] + "=" +
		strconv.FormatFloat(e.value, 'g', -1, 64) + ": " + ErrNonFinite.Error()
}

func (e *coefficientError) Unwrap() error { return ErrNonFinite }

var coefficientNames = [6]string{"a", "b", "c", "d", "e", "f"}

// rows returns the quadratic-form matrix as literal rows.
func (s Section) rows() [][]float64 {
	return [][]float64{
		{s.A, s.B / 2, s.D / 2},
		{s.B / 2, s.C, s.E / 2},
		{s.D / 2, s.E / 2, s.F},
	}
}

// Matrix returns the symmetric 3×3 quadratic-form matrix
//
//	| a    b/2  d/2 |
//	| b/2  c    e/2 |
//	| d/2  e/2  f   |
//
// Errors: matrix.ErrNaNInf for non-finite coefficients.
func (s Section) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewSymmetric(s.rows())
	if err != nil {
		return nil, conicErrorf(opMatrix, err)
	}

	return m, nil
}

// QuadraticMatrix returns the leading 2×2 principal submatrix of Matrix,
// which carries the quadratic part a·x² + b·xy + c·y² only.
func (s Section) QuadraticMatrix() (*matrix.Dense, error) {
	m, err := s.Matrix()
	if err != nil {
		return nil, err
	}
	q, err := m.Principal(2)
	if err != nil {
		return nil, conicErrorf(opMatrix, err)
	}

	return q, nil
}

// Determinants returns quadratic = a·c − (b/2)² and full = det(Matrix()).
func (s Section) Determinants() (quadratic, full float64) {
	hb, hd, he := s.B/2, s.D/2, s.E/2
	quadratic = matrix.Det2x2(s.A, hb, hb, s.C)
	full = matrix.Det3x3(
		s.A, hb, hd,
		hb, s.C, he,
		hd, he, s.F,
	)

	return quadratic, full
}

// String renders the equation, e.g. "2x^2 - 3xy + 4y^2 + 6x - 3y - 4 = 0".
func (s Section) String() string {
	terms := [6]string{"x^2", "xy", "y^2", "x", "y", ""}
	var b strings.Builder
	for i, v := range s.Coefficients() {
		if v == 0 {
			continue
		}
		abs := math.Abs(v)
		switch {
		case b.Len() == 0 && v < 0:
			b.WriteString("-")
		case b.Len() > 0 && v < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if abs != 1 || terms[i] == "" {
			b.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
		}
		b.WriteString(terms[i])
	}
	if b.Len() == 0 {
		b.WriteString("0")
	}
	b.WriteString(" = 0")

	return b.String()
}
