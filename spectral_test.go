// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"math"
	"sync"
	"testing"

	"cogentcore.org/spectral/catalog"
	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/km"
	"cogentcore.org/spectral/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	assert.True(t, e.Grid().Equal(spectrum.DefaultGrid()))
	assert.Equal(t, cie.DefaultWeights, e.Weights())
	assert.Equal(t, "D65", e.Tables().Illuminant.Name)

	// the engine keeps its own copies
	g := e.Grid()
	g[0] = 0
	assert.Equal(t, 400.0, e.Grid()[0])
}

func TestNewOptions(t *testing.T) {
	g, err := spectrum.EvenGrid(400, 20, 16)
	require.NoError(t, err)
	e, err := New(WithGrid(g))
	require.NoError(t, err)
	assert.Len(t, e.Tables().Observer.Y, 16)

	xyz, err := e.ToXYZ(spectrum.Flat(16, 1))
	require.NoError(t, err)
	assert.InDelta(t, 100, xyz.Y, 1e-9)

	_, err = New(WithGrid(spectrum.Grid{400, 410, 430}))
	assert.ErrorIs(t, err, spectrum.ErrGrid)

	wide, err := spectrum.EvenGrid(380, 10, 40)
	require.NoError(t, err)
	_, err = New(WithGrid(wide))
	assert.ErrorIs(t, err, spectrum.ErrOutOfRange)

	// custom tables for a grid outside of the bundled range
	tb := spectrum.Tables{
		Observer:   spectrum.Observer{Name: "flat", X: spectrum.Flat(40, 1), Y: spectrum.Flat(40, 1), Z: spectrum.Flat(40, 1)},
		Illuminant: spectrum.Illuminant{Name: "E", SPD: spectrum.Flat(40, 1)},
	}
	e, err = New(WithGrid(wide), WithTables(tb))
	require.NoError(t, err)
	xyz, err = e.ToXYZ(spectrum.Flat(40, 0.25))
	require.NoError(t, err)
	assert.InDelta(t, 25, xyz.X, 1e-12)
	assert.InDelta(t, 25, xyz.Y, 1e-12)
	assert.InDelta(t, 25, xyz.Z, 1e-12)

	_, err = New(WithTables(tb))
	assert.ErrorIs(t, err, spectrum.ErrTableLength)

	_, err = New(WithWeights(cie.Weights{KL: 1, KC: 0, KH: 1}))
	assert.Error(t, err)
	e, err = New(WithWeights(cie.Weights{KL: 2, KC: 1, KH: 1}))
	require.NoError(t, err)
	assert.InDelta(t, 10, e.Difference(cie.LAB{L: 40, A: 0, B: 0}, cie.LAB{L: 60, A: 0, B: 0}), 1e-12)
}

func TestEngineTransforms(t *testing.T) {
	e := Default()
	assert.Equal(t, 0.0, e.ReflectanceToKS(1))
	assert.Equal(t, 1.0, e.KSToReflectance(0))
	assert.GreaterOrEqual(t, e.ReflectanceToKS(0), 1e5)
	assert.InDelta(t, 0, e.KSToReflectance(e.ReflectanceToKS(0)), 1e-12)
	for r := 0.01; r < 1; r += 0.01 {
		assert.InDelta(t, r, e.KSToReflectance(e.ReflectanceToKS(r)), 1e-9)
	}
	assert.Equal(t, "#ff0000", e.RGBToHex(cie.RGB{R: 255, G: 0, B: 0}))
	assert.Equal(t, "#000000", e.RGBToHex(cie.RGB{R: 0, G: 0, B: 0}))
}

func TestEngineMix(t *testing.T) {
	e := Default()
	m, err := e.Mix()
	require.NoError(t, err)
	assert.Equal(t, spectrum.Flat(31, 1), m)

	_, err = e.Mix(km.Component{Curve: spectrum.Flat(31, 0.5)})
	assert.ErrorIs(t, err, km.ErrZeroConcentration)

	_, err = e.Mix(km.Component{Curve: spectrum.Flat(32, 0.5), Concentration: 1})
	assert.ErrorIs(t, err, spectrum.ErrCurveLength)
}

func TestWhite(t *testing.T) {
	e := Default()
	c, err := e.Color(spectrum.Flat(31, 1))
	require.NoError(t, err)
	assert.InDelta(t, 100, c.XYZ.Y, 1e-6)
	assert.InDelta(t, 100, c.LAB.L, 1e-6)
	assert.Equal(t, "#ffffff", c.Hex)

	_, err = e.Color(spectrum.Flat(32, 1))
	assert.ErrorIs(t, err, spectrum.ErrCurveLength)
}

func TestYellowCyan(t *testing.T) {
	e := Default()
	cat := catalog.Default()
	yellow, err := cat.ByName("Primary Yellow")
	require.NoError(t, err)
	cyan, err := cat.ByName("Primary Cyan")
	require.NoError(t, err)

	yc, err := e.Color(yellow.Curve)
	require.NoError(t, err)
	cc, err := e.Color(cyan.Curve)
	require.NoError(t, err)
	mix, err := e.MixColor(yellow.Component(0.5), cyan.Component(0.5))
	require.NoError(t, err)

	assert.Greater(t, mix.XYZ.Y, cc.XYZ.Y)
	assert.Less(t, mix.XYZ.Y, yc.XYZ.Y)
	assert.InDelta(t, 24.2335, mix.XYZ.Y, 1e-3)

	// green, not the gray an RGB average of yellow and cyan gives
	assert.Greater(t, int(mix.RGB.G), int(mix.RGB.R))
	assert.Greater(t, int(mix.RGB.G), int(mix.RGB.B))
	assert.Equal(t, "#009d68", mix.Hex)
	assert.Less(t, mix.LAB.A, -40.0)

	for i, r := range mix.Curve {
		assert.LessOrEqual(t, r, max(yellow.Curve[i], cyan.Curve[i]))
	}
}

func TestSelfMixing(t *testing.T) {
	e := Default()
	for _, p := range catalog.Default().Paints {
		single, err := e.Mix(p.Component(3))
		require.NoError(t, err)
		assert.InDeltaSlice(t, p.Curve, single, 1e-9, p.Name)

		self, err := e.Mix(p.Component(0.2), p.Component(0.7))
		require.NoError(t, err)
		assert.InDeltaSlice(t, p.Curve, self, 1e-9, p.Name)
	}
}

func TestNearest(t *testing.T) {
	e := Default()
	cat := catalog.Default()
	labs := make([]cie.LAB, len(cat.Paints))
	for i, p := range cat.Paints {
		c, err := e.Color(p.Curve)
		require.NoError(t, err)
		labs[i] = c.LAB
	}
	for i := range labs {
		j, de := e.Nearest(labs[i], labs...)
		assert.Equal(t, i, j)
		assert.Equal(t, 0.0, de)
	}
	j, de := e.Nearest(cie.LAB{L: 50, A: 0, B: 0})
	assert.Equal(t, -1, j)
	assert.True(t, math.IsInf(de, 1))
}

func TestConcurrent(t *testing.T) {
	e := Default()
	cat := catalog.Default()
	want := make([]string, len(cat.Paints))
	for i, p := range cat.Paints {
		want[i] = p.Hex
	}
	var wg sync.WaitGroup
	for k := 0; k < 8; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, p := range cat.Paints {
				c, err := e.Color(p.Curve)
				if assert.NoError(t, err) {
					assert.Equal(t, want[i], c.Hex)
				}
			}
		}()
	}
	wg.Wait()
}
