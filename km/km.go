// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package km implements the single-constant Kubelka-Munk model of
// colorant mixing: reflectance is converted to the ratio of absorption
// to scattering (K/S), which is additive across mixed colorants,
// and back.
package km

import "math"

// Sentinel is the K/S value standing in for total absorption
// (zero reflectance). It is finite so that weighted sums of K/S
// values stay finite.
const Sentinel = 1e6

// ReflectanceToKS returns the K/S ratio for the given reflectance.
// Reflectance at or below 0 (or NaN) is total absorption ([Sentinel]),
// and reflectance at or above 1 is a perfect reflector (0). The range is
// not validated: out of range values are clamped by these two rules.
func ReflectanceToKS(r float64) float64 {
	switch {
	case !(r > 0):
		return Sentinel
	case r >= 1:
		return 0
	}
	return (1 - r) * (1 - r) / (2 * r)
}

// KSToReflectance returns the reflectance for the given K/S ratio.
// It is the inverse of [ReflectanceToKS]: K/S at or below 0 (or NaN)
// gives 1, and K/S at or above [Sentinel] gives 0.
func KSToReflectance(ks float64) float64 {
	switch {
	case !(ks > 0):
		return 1
	case ks >= Sentinel:
		return 0
	}
	return 1 + ks - math.Sqrt(ks*(ks+2))
}
