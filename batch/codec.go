// SPDX-License-Identifier: MIT

// Package batch: YAML input and output.
//
// Input is a sequence of items:
//
//	- name: reference
//	  a: 2
//	  b: -3
//	  c: 4
//	  d: 6
//	  e: -3
//	  f: -4
//
// Missing coefficients default to 0; unknown keys are rejected.
package batch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML sequence of items from r.
//
// Errors:
//   - ErrEmptyInput when the document is empty or the sequence has no items.
//   - ErrInvalidItem for NaN/±Inf coefficients (.nan, .inf in YAML).
//   - the decoder error, wrapped, for malformed documents.
func Decode(r io.Reader) ([]Item, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var items []Item
	if err := dec.Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, batchErrorf(opDecode, ErrEmptyInput)
		}

		return nil, batchErrorf(opDecode, err)
	}
	if len(items) == 0 {
		return nil, batchErrorf(opDecode, ErrEmptyInput)
	}
	for i, it := range items {
		if err := it.Section().Validate(); err != nil {
			return nil, batchErrorf(opDecode, itemError(i, it.Name, err))
		}
	}

	return items, nil
}

// Summary is the serialized form of one Result.
type Summary struct {
	Name              string   `yaml:"name,omitempty"`
	Equation          string   `yaml:"equation"`
	Class             string   `yaml:"class"`
	Degenerate        bool     `yaml:"degenerate"`
	Quadratic         float64  `yaml:"quadratic"`
	Full              float64  `yaml:"full"`
	Center            *Point2  `yaml:"center,omitempty"`
	CenterError       string   `yaml:"centerError,omitempty"`
	Eccentricity      *float64 `yaml:"eccentricity,omitempty"`
	EccentricityError string   `yaml:"eccentricityError,omitempty"`
}

// Point2 is the serialized center.
type Point2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Summarize flattens a Result into its serialized form.
func Summarize(res Result) Summary {
	rep := res.Report
	s := Summary{
		Name:         res.Name,
		Equation:     rep.Section.String(),
		Class:        fmt.Sprint(rep.Classification),
		Quadratic:    rep.Quadratic,
		Full:         rep.Full,
		Eccentricity: rep.Eccentricity,
	}
	if rep.Classification != nil {
		s.Degenerate = rep.Classification.Degenerate()
	}
	if rep.Center != nil {
		s.Center = &Point2{X: rep.Center.X, Y: rep.Center.Y}
	}
	if rep.CenterErr != nil {
		s.CenterError = rep.CenterErr.Error()
	}
	if rep.EccentricityErr != nil {
		s.EccentricityError = rep.EccentricityErr.Error()
	}

	return s
}

// Encode writes results to w as a YAML sequence of summaries.
func Encode(w io.Writer, results []Result) error {
	out := make([]Summary, len(results))
	for i, r := range results {
		out[i] = Summarize(r)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return batchErrorf(opEncode, err)
	}
	if err := enc.Close(); err != nil {
		return batchErrorf(opEncode, err)
	}

	return nil
}
