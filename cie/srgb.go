// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/spectral/base/grr"
)

// RGB is an 8-bit gamma encoded sRGB color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the [color.Color] interface, as an opaque color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 255}.RGBA()
}

// Hex returns the color as a lowercase #rrggbb hex string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses a #rrggbb or #rgb hex color, with or without
// the leading #, in either case.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, grr.Errorf("%w: %q", ErrHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, grr.Errorf("%w: %q", ErrHex, s)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// SRGBFromLinearComp converts a linear sRGB component into its
// gamma encoded value, using the piecewise sRGB transfer function.
func SRGBFromLinearComp(lin float64) float64 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math.Pow(lin, 1/2.4) - 0.055
}

// SRGBToLinearComp converts a gamma encoded sRGB component into
// its linear value. It is the inverse of [SRGBFromLinearComp].
func SRGBToLinearComp(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// XYZToSRGBLin converts XYZ (0-1 scale) to linear sRGB
// using the IEC 61966-2-1 D65 matrix.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	rl = 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl = -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

// SRGBLinToXYZ converts linear sRGB to XYZ (0-1 scale),
// inverting [XYZToSRGBLin].
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl
	return
}

// XYZ returns the tristimulus values (0-100 scale) of the color.
func (c RGB) XYZ() XYZ {
	x, y, z := SRGBLinToXYZ(SRGBToLinearComp(float64(c.R)/255), SRGBToLinearComp(float64(c.G)/255), SRGBToLinearComp(float64(c.B)/255))
	return XYZ{x * 100, y * 100, z * 100}
}

// XYZToSRGB converts tristimulus values (0-100 scale) to 8-bit sRGB.
// Channels outside of the sRGB gamut are clamped to [0, 255].
func XYZToSRGB(c XYZ) RGB {
	rl, gl, bl := XYZToSRGBLin(c.X/100, c.Y/100, c.Z/100)
	return RGB{srgbByte(rl), srgbByte(gl), srgbByte(bl)}
}

// srgbByte gamma encodes the given linear component and
// rounds it to the nearest byte value, clamping out of range values.
func srgbByte(lin float64) uint8 {
	v := math.Round(SRGBFromLinearComp(lin) * 255)
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
