package conic_test

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/conic/conic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomSections draws n sections with integer coefficients in [−5, 5].
// Every determinant is then an exact multiple of 1/4, so no value lands
// inside a tolerance band by rounding.
func randomSections(seed int64, n int) []conic.Section {
	rng := rand.New(rand.NewSource(seed))
	out := make([]conic.Section, n)
	for i := range out {
		var c [6]float64
		for j := range c {
			c[j] = float64(rng.Intn(11) - 5)
		}
		out[i] = conic.New(c[0], c[1], c[2], c[3], c[4], c[5])
	}

	return out
}

// TestEccentricityRanges checks each shape lands in its eccentricity range.
func TestEccentricityRanges(t *testing.T) {
	for _, s := range randomSections(42, 2000) {
		cls := s.Classify()
		e, ok, err := s.Eccentricity()
		if cls.Degenerate() {
			assert.False(t, ok, s.String())
			assert.NoError(t, err, s.String())
			continue
		}

		switch cls {
		case conic.Circle:
			assert.Equal(t, 0.0, e, s.String())
		case conic.Parabola:
			assert.Equal(t, 1.0, e, s.String())
		case conic.Hyperbola:
			require.NoError(t, err, s.String())
			assert.Greater(t, e, 1.0, s.String())
		case conic.Ellipse:
			if errors.Is(err, conic.ErrEccentricityDomain) {
				continue // imaginary ellipse
			}
			require.NoError(t, err, s.String())
			assert.Greater(t, e, 0.0, s.String())
			assert.Less(t, e, 1.0, s.String())
		}
	}
}

// TestScaleInvariance multiplies every coefficient by k ≠ 0; the curve and
// therefore its classification and eccentricity are unchanged.
func TestScaleInvariance(t *testing.T) {
	sections := randomSections(7, 500)
	for _, k := range []float64{2, 10, 0.5, -3} {
		for _, s := range sections {
			scaled := s.Scale(k)
			require.Equal(t, s.Classify(), scaled.Classify(), "k=%v %s", k, s)

			e1, ok1, err1 := s.Eccentricity()
			e2, ok2, err2 := scaled.Eccentricity()
			assert.Equal(t, ok1, ok2, "k=%v %s", k, s)
			assert.Equal(t, err1 == nil, err2 == nil, "k=%v %s", k, s)
			assert.InDelta(t, e1, e2, 1e-9, "k=%v %s", k, s)
		}
	}
}

// TestScaleBelowTolerance documents the limit of the absolute tolerance:
// shrinking a proper ellipse by 100 pushes full below eps.
func TestScaleBelowTolerance(t *testing.T) {
	s := conic.New(2, -3, 4, 6, -3, -4)
	require.Equal(t, conic.Ellipse, s.Classify())

	tiny := s.Scale(0.01)
	assert.True(t, tiny.Classify().Degenerate())
	assert.Equal(t, conic.ParallelLines, tiny.Classify())

	assert.Equal(t, conic.Ellipse, tiny.With(conic.WithEpsilon(1e-9)).Classify())
}

// TestClassify_Concurrent runs the pure queries from many goroutines.
func TestClassify_Concurrent(t *testing.T) {
	sections := randomSections(99, 256)
	want := make([]conic.Classification, len(sections))
	for i, s := range sections {
		want[i] = s.Classify()
	}

	got := make([]conic.Classification, len(sections))
	var wg sync.WaitGroup
	for i := range sections {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = sections[i].Classify()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}
