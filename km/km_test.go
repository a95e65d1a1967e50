// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package km

import (
	"math"
	"testing"

	"cogentcore.org/spectral/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	assert.Equal(t, 0.25, ReflectanceToKS(0.5))
	assert.Equal(t, 0.5, KSToReflectance(0.25))

	assert.Equal(t, 0.0, ReflectanceToKS(1))
	assert.Equal(t, 0.0, ReflectanceToKS(1.3))
	assert.Equal(t, 1.0, KSToReflectance(0))
	assert.Equal(t, 1.0, KSToReflectance(-2))
	assert.Equal(t, 1.0, KSToReflectance(ReflectanceToKS(1)))

	assert.Equal(t, float64(Sentinel), ReflectanceToKS(0))
	assert.Equal(t, float64(Sentinel), ReflectanceToKS(-0.1))
	assert.Equal(t, float64(Sentinel), ReflectanceToKS(math.NaN()))
	assert.Equal(t, 1.0, KSToReflectance(math.NaN()))
	assert.GreaterOrEqual(t, ReflectanceToKS(0), 1e5)
	assert.Equal(t, 0.0, KSToReflectance(Sentinel))
	assert.Equal(t, 0.0, KSToReflectance(2*Sentinel))
	assert.InDelta(t, 0, KSToReflectance(Sentinel-1), 1e-6)
}

func TestRoundTrip(t *testing.T) {
	for r := 0.001; r < 1; r += 0.001 {
		assert.InDelta(t, r, KSToReflectance(ReflectanceToKS(r)), 1e-9, "R = %g", r)
	}
	for _, r := range []float64{1e-6, 1e-4, 0.999999} {
		assert.InDelta(t, r, KSToReflectance(ReflectanceToKS(r)), 1e-9, "R = %g", r)
	}
}

func TestMonotonic(t *testing.T) {
	prev := ReflectanceToKS(0.01)
	for r := 0.02; r < 1; r += 0.01 {
		ks := ReflectanceToKS(r)
		assert.Less(t, ks, prev)
		prev = ks
	}
}

var (
	yellow = spectrum.Curve{0.06, 0.07, 0.09, 0.2, 0.5, 0.8, 0.86}
	cyan   = spectrum.Curve{0.3, 0.5, 0.6, 0.55, 0.3, 0.1, 0.05}
)

func TestMixEmpty(t *testing.T) {
	m, err := Mix(31)
	require.NoError(t, err)
	assert.Equal(t, spectrum.Flat(31, 1), m)
}

func TestMixIdentity(t *testing.T) {
	for _, conc := range []float64{0.001, 0.5, 1, 37} {
		m, err := Mix(len(yellow), Component{yellow, conc})
		require.NoError(t, err)
		assert.InDeltaSlice(t, yellow, m, 1e-9)
	}
}

func TestMixSelf(t *testing.T) {
	for _, ratio := range [][2]float64{{1, 1}, {0.3, 0.7}, {5, 1}, {0, 2}, {1e308, 1e308}, {math.MaxFloat64, 1}, {5e-324, 5e-324}} {
		m, err := Mix(len(cyan), Component{cyan, ratio[0]}, Component{cyan, ratio[1]})
		require.NoError(t, err)
		assert.InDeltaSlice(t, cyan, m, 1e-9)
	}
}

func TestMixTwo(t *testing.T) {
	m, err := Mix(len(yellow), Component{yellow, 1}, Component{cyan, 1})
	require.NoError(t, err)
	require.Len(t, m, len(yellow))
	for i := range m {
		ks := (ReflectanceToKS(yellow[i]) + ReflectanceToKS(cyan[i])) / 2
		assert.InDelta(t, KSToReflectance(ks), m[i], 1e-12)
		assert.GreaterOrEqual(t, m[i], 0.0)
		assert.LessOrEqual(t, m[i], 1.0)
		// subtractive: never brighter than the brighter component
		assert.LessOrEqual(t, m[i], max(yellow[i], cyan[i]))
	}

	// concentrations are relative
	m2, err := Mix(len(yellow), Component{yellow, 0.5}, Component{cyan, 0.5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, m, m2, 1e-12)
}

func TestMixHugeConcentrations(t *testing.T) {
	white := spectrum.Flat(len(yellow), 0.9)
	m, err := Mix(len(yellow), Component{yellow, 1e308}, Component{white, 1e308})
	require.NoError(t, err)
	want, err := Mix(len(yellow), Component{yellow, 1}, Component{white, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, m, 1e-12)
	assert.NotEqual(t, spectrum.Flat(len(yellow), 1), m)
}

func TestMixNaNReflectance(t *testing.T) {
	c := spectrum.Curve{0.5, math.NaN(), 0.2}
	m, err := Mix(3, Component{c, 1}, Component{spectrum.Curve{0.5, 0.5, 0.5}, 1})
	require.NoError(t, err)
	for _, v := range m {
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.InDelta(t, 0.5, m[0], 1e-9)
}

func TestMixShortCurve(t *testing.T) {
	short := yellow[:4]
	m, err := Mix(len(yellow), Component{short, 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, short, m[:4], 1e-9)
	assert.Equal(t, spectrum.Curve{0, 0, 0}, m[4:])
}

func TestMixErrors(t *testing.T) {
	_, err := Mix(len(yellow), Component{yellow, 0}, Component{cyan, 0})
	assert.ErrorIs(t, err, ErrZeroConcentration)

	_, err = Mix(len(yellow), Component{yellow, -1}, Component{cyan, 2})
	assert.ErrorIs(t, err, ErrInvalidConcentration)

	_, err = Mix(3, Component{yellow, 1})
	assert.ErrorIs(t, err, spectrum.ErrCurveLength)
}
