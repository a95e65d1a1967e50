// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"log/slog"
	"slices"

	"cogentcore.org/spectral/base/grr"
)

// Curve is a reflectance curve: the fraction of incident light
// reflected at each wavelength of a [Grid]. Values are nominally
// in [0, 1], but out of range values are tolerated by the
// Kubelka-Munk transforms, which clamp at the boundaries.
type Curve []float64

// Flat returns a curve of n samples that all have the given value.
func Flat(n int, v float64) Curve {
	c := make(Curve, n)
	for i := range c {
		c[i] = v
	}
	return c
}

// Clone returns a copy of the curve.
func (c Curve) Clone() Curve {
	return slices.Clone(c)
}

// Fit returns the curve aligned to a grid of n samples.
// A curve with fewer samples is a sparse measurement: the missing
// trailing samples are filled with zero reflectance in a new curve.
// A curve with more samples than the grid is a caller error,
// reported as [ErrCurveLength]. A curve of exactly n samples is
// returned as is, without copying.
func (c Curve) Fit(n int) (Curve, error) {
	switch {
	case len(c) == n:
		return c, nil
	case len(c) > n:
		return nil, grr.Errorf("%w: %d samples for a %d sample grid", ErrCurveLength, len(c), n)
	}
	slog.Debug("zero-filling short reflectance curve", "samples", len(c), "grid", n)
	f := make(Curve, n)
	copy(f, c)
	return f, nil
}
