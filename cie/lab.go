// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// WhiteD65 is the D65 reference white used for CIELAB, on the 0-100 scale.
var WhiteD65 = XYZ{95.047, 100.000, 108.883}

const (
	// labEpsilon is the ratio below which the CIELAB functions are linear.
	labEpsilon = 0.008856

	// labKappa is the slope of L* below labEpsilon.
	labKappa = 903.3
)

// LABCompress is the CIELAB compression function f(t):
// a cube root above a small threshold, and linear below it,
// which avoids the infinite slope of the cube root at zero.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// YToL returns the CIELAB lightness L* for the given
// luminance ratio Y / Yn. Below the threshold it uses the separate
// linear definition of the standard, rather than 116·f(Y)-16.
func YToL(yr float64) float64 {
	if yr > labEpsilon {
		return 116*math.Cbrt(yr) - 16
	}
	return labKappa * yr
}

// XYZToLAB converts tristimulus values (0-100 scale) to CIELAB
// relative to the [WhiteD65] reference white.
func XYZToLAB(c XYZ) LAB {
	xr := c.X / WhiteD65.X
	yr := c.Y / WhiteD65.Y
	zr := c.Z / WhiteD65.Z
	fx, fy, fz := LABCompress(xr), LABCompress(yr), LABCompress(zr)
	return LAB{
		L: YToL(yr),
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}
