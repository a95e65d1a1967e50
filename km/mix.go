// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package km

import (
	"errors"
	"math"

	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/spectrum"
)

var (
	// ErrZeroConcentration is returned when mixing components whose
	// concentrations sum to zero.
	ErrZeroConcentration = errors.New("km: total concentration is zero")

	// ErrInvalidConcentration is returned for a component with a
	// negative, infinite or NaN concentration.
	ErrInvalidConcentration = errors.New("km: invalid concentration")
)

// Component is one colorant in a mixture: its reflectance curve and
// its relative concentration. Concentrations are relative to the
// other components, and do not need to sum to 1.
type Component struct {
	Curve         spectrum.Curve
	Concentration float64
}

// Mix returns the reflectance curve of n samples predicted for the
// mixture of the given components. Concentrations are normalized by
// their sum (after scaling by the largest one, so huge values cannot
// overflow it), and at each wavelength the weighted K/S values of the
// components are added and converted back to reflectance.
//
// Mixing no components gives a perfect white curve of all 1 values.
// Component curves shorter than n are zero-filled (missing samples are
// total absorption); longer ones are rejected with
// [spectrum.ErrCurveLength]. Negative, infinite or NaN concentrations are
// rejected with [ErrInvalidConcentration], and a zero total with
// [ErrZeroConcentration].
func Mix(n int, comps ...Component) (spectrum.Curve, error) {
	if len(comps) == 0 {
		return spectrum.Flat(n, 1), nil
	}
	largest := 0.0
	curves := make([]spectrum.Curve, len(comps))
	for i, c := range comps {
		if !(c.Concentration >= 0) || math.IsInf(c.Concentration, 1) {
			return nil, grr.Errorf("%w: component %d has concentration %g", ErrInvalidConcentration, i, c.Concentration)
		}
		largest = max(largest, c.Concentration)
		f, err := c.Curve.Fit(n)
		if err != nil {
			return nil, grr.Errorf("component %d: %w", i, err)
		}
		curves[i] = f
	}
	if largest == 0 {
		return nil, grr.Errorf("%w: %d components", ErrZeroConcentration, len(comps))
	}
	// scaled weights are in [0, 1] and sum to at most len(comps)
	weights := make([]float64, len(comps))
	total := 0.0
	for i, c := range comps {
		weights[i] = c.Concentration / largest
		total += weights[i]
	}
	mix := make(spectrum.Curve, n)
	for w := range mix {
		ks := 0.0
		for i := range comps {
			ks += weights[i] / total * ReflectanceToKS(curves[i][w])
		}
		mix[w] = KSToReflectance(ks)
	}
	return mix, nil
}
