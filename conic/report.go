// SPDX-License-Identifier: MIT

// Package conic: one-shot analysis combining every query.
package conic

// Report gathers everything known about one section.
// Center and Eccentricity are nil when undefined; the matching *Err field
// holds the reason when the quantity failed numerically.
type Report struct {
	Section        Section
	Classification Classification
	Quadratic      float64 // a·c − (b/2)²
	Full           float64 // det of the 3×3 quadratic-form matrix

	Center    *Vec2
	CenterErr error

	Eccentricity    *float64
	EccentricityErr error
}

// Analyze classifies s once and derives its center and eccentricity.
// Failures of the derived quantities are recorded, never returned.
func (s Section) Analyze() Report {
	q, full := s.Determinants()
	cls := s.classify(q, full)
	r := Report{
		Section:        s,
		Classification: cls,
		Quadratic:      q,
		Full:           full,
	}

	if c, err := s.Center(); err != nil {
		r.CenterErr = err
	} else {
		r.Center = &c
	}

	if shape, ok := cls.(Shape); ok {
		if e, err := s.eccentricityFor(shape, full); err != nil {
			r.EccentricityErr = err
		} else {
			r.Eccentricity = &e
		}
	}

	return r
}
