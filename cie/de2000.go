// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// Weights are the parametric weighting factors of CIEDE2000 for
// lightness, chroma and hue differences.
type Weights struct {
	KL, KC, KH float64
}

// DefaultWeights are the reference conditions, with all factors 1.
var DefaultWeights = Weights{1, 1, 1}

// pow25to7 is 25^7.
const pow25to7 = 6103515625.0

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// hueAngle returns atan2(b, a) in degrees in [0, 360).
func hueAngle(b, a float64) float64 {
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// DeltaE2000 returns the CIEDE2000 color difference between the two
// colors, with the [DefaultWeights].
func DeltaE2000(c1, c2 LAB) float64 {
	return DeltaE2000Weighted(c1, c2, DefaultWeights)
}

// DeltaE2000Weighted returns the CIEDE2000 color difference between
// the two colors, with the given parametric weights. The hue of a color
// with zero chroma is undefined: when either color is achromatic the
// hue difference is zero and the mean hue is the sum of the two hues.
func DeltaE2000Weighted(c1, c2 LAB, w Weights) float64 {
	// chroma correction of a*
	cab1 := math.Hypot(c1.A, c1.B)
	cab2 := math.Hypot(c2.A, c2.B)
	cab := (cab1 + cab2) / 2
	cab7 := math.Pow(cab, 7)
	g := 0.5 * (1 - math.Sqrt(cab7/(cab7+pow25to7)))
	a1 := (1 + g) * c1.A
	a2 := (1 + g) * c2.A
	cp1 := math.Hypot(a1, c1.B)
	cp2 := math.Hypot(a2, c2.B)
	hp1 := hueAngle(c1.B, a1)
	hp2 := hueAngle(c2.B, a2)

	// differences
	dL := c2.L - c1.L
	dC := cp2 - cp1
	cprod := cp1 * cp2
	dH := 0.0
	if cprod != 0 {
		dh := hp2 - hp1
		switch {
		case dh > 180:
			dh -= 360
		case dh < -180:
			dh += 360
		}
		dH = 2 * math.Sqrt(cprod) * math.Sin(deg2rad(dh/2))
	}

	// means
	lm := (c1.L + c2.L) / 2
	cm := (cp1 + cp2) / 2
	hm := hp1 + hp2
	if cprod != 0 {
		hm /= 2
		if math.Abs(hp1-hp2) > 180 {
			if hp1+hp2 < 360 {
				hm += 180
			} else {
				hm -= 180
			}
		}
	}

	// weighting functions
	t := 1 - 0.17*math.Cos(deg2rad(hm-30)) +
		0.24*math.Cos(deg2rad(2*hm)) +
		0.32*math.Cos(deg2rad(3*hm+6)) -
		0.20*math.Cos(deg2rad(4*hm-63))
	cm7 := math.Pow(cm, 7)
	dTheta := 60 * math.Exp(-math.Pow((hm-275)/25, 2))
	rt := -2 * math.Sqrt(cm7/(cm7+pow25to7)) * math.Sin(deg2rad(dTheta))
	l50 := (lm - 50) * (lm - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cm
	sh := 1 + 0.015*cm*t

	tl := dL / (w.KL * sl)
	tc := dC / (w.KC * sc)
	th := dH / (w.KH * sh)
	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}
