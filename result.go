// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"math"

	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/km"
	"cogentcore.org/spectral/spectrum"
)

// Color is a reflectance curve together with all of its colorimetric
// representations under an [Engine].
type Color struct {
	Curve spectrum.Curve
	XYZ   cie.XYZ
	LAB   cie.LAB
	RGB   cie.RGB
	Hex   string
}

// Color returns the colorimetry of the given reflectance curve.
// The curve is stored as given, zero-filled to the grid if shorter.
func (e *Engine) Color(c spectrum.Curve) (Color, error) {
	c, err := c.Fit(e.grid.Len())
	if err != nil {
		return Color{}, err
	}
	xyz, err := e.ToXYZ(c)
	if err != nil {
		return Color{}, err
	}
	rgb := e.XYZToSRGB(xyz)
	return Color{
		Curve: c,
		XYZ:   xyz,
		LAB:   e.XYZToLAB(xyz),
		RGB:   rgb,
		Hex:   e.RGBToHex(rgb),
	}, nil
}

// MixColor mixes the given components with [Engine.Mix] and
// returns the colorimetry of the mixture.
func (e *Engine) MixColor(comps ...km.Component) (Color, error) {
	m, err := e.Mix(comps...)
	if err != nil {
		return Color{}, err
	}
	return e.Color(m)
}

// Nearest returns the index of the candidate color closest to the
// target by [Engine.Difference], along with that difference.
// It returns -1 and +Inf if there are no candidates.
func (e *Engine) Nearest(target cie.LAB, candidates ...cie.LAB) (int, float64) {
	best, bestDE := -1, math.Inf(1)
	for i, c := range candidates {
		if de := e.Difference(target, c); de < bestDE {
			best, bestDE = i, de
		}
	}
	return best, bestDE
}
