// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE colorimetry used to turn reflectance
// curves into colors: tristimulus integration against an observer and
// illuminant, conversion of XYZ to sRGB and CIELAB, and the CIEDE2000
// color difference.
package cie

import (
	"fmt"

	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/spectrum"
)

// XYZ is a CIE XYZ tristimulus value, scaled so that a perfect
// reflector under the reference illuminant has Y = 100.
type XYZ struct {
	X, Y, Z float64
}

func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%.4f, %.4f, %.4f)", c.X, c.Y, c.Z)
}

// LAB is a CIELAB (L*a*b*) color. L is lightness, nominally 0 to 100,
// and A and B are the unbounded green-red and blue-yellow axes.
type LAB struct {
	L, A, B float64
}

func (c LAB) String() string {
	return fmt.Sprintf("LAB(%.4f, %.4f, %.4f)", c.L, c.A, c.B)
}

// Integrate returns the tristimulus value of the given reflectance
// curve under the illuminant and observer of the given tables, all
// sampled on the same evenly spaced grid. It is the rectangle rule
// approximation of the tristimulus integral; the grid step cancels
// out of the normalization, which makes a perfect reflector Y = 100.
//
// A curve shorter than the tables is zero-filled, and a longer one is
// rejected with [spectrum.ErrCurveLength].
func Integrate(c spectrum.Curve, t spectrum.Tables) (XYZ, error) {
	n := len(t.Illuminant.SPD)
	if err := t.Validate(n); err != nil {
		return XYZ{}, err
	}
	c, err := c.Fit(n)
	if err != nil {
		return XYZ{}, err
	}
	var x, y, z, norm float64
	obs := t.Observer
	for i, s := range t.Illuminant.SPD {
		sr := s * c[i]
		x += sr * obs.X[i]
		y += sr * obs.Y[i]
		z += sr * obs.Z[i]
		norm += s * obs.Y[i]
	}
	if norm == 0 {
		return XYZ{}, grr.Wrap(ErrZeroNorm)
	}
	k := 100 / norm
	return XYZ{x * k, y * k, z * k}, nil
}
