// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"math"
	"slices"

	"cogentcore.org/spectral/base/grr"
)

const (
	// DefaultStart is the first wavelength of the default grid, in nm.
	DefaultStart = 400

	// DefaultStep is the spacing of the default grid, in nm.
	DefaultStep = 10

	// DefaultCount is the number of samples in the default grid.
	DefaultCount = 31

	// spacingTol is the relative tolerance on the spacing of an even grid.
	spacingTol = 1e-9
)

// Grid is an ordered sequence of wavelengths in nanometers.
// A valid grid has at least two samples, and is strictly
// increasing and evenly spaced; see [Grid.Validate].
type Grid []float64

// DefaultGrid returns the default grid of 31 samples
// from 400 to 700 nm in 10 nm steps.
func DefaultGrid() Grid {
	return grr.Must(EvenGrid(DefaultStart, DefaultStep, DefaultCount))
}

// EvenGrid returns a grid of count samples starting at start
// and spaced by step nanometers.
func EvenGrid(start, step float64, count int) (Grid, error) {
	if count < 2 || !(step > 0) || math.IsInf(step, 0) || math.IsNaN(start) || math.IsInf(start, 0) {
		return nil, grr.Errorf("%w: start %g, step %g, count %d", ErrGrid, start, step, count)
	}
	g := make(Grid, count)
	for i := range g {
		g[i] = start + float64(i)*step
	}
	return g, nil
}

// Len returns the number of samples in the grid.
func (g Grid) Len() int { return len(g) }

// Start returns the first wavelength of the grid.
func (g Grid) Start() float64 { return g[0] }

// End returns the last wavelength of the grid.
func (g Grid) End() float64 { return g[len(g)-1] }

// Step returns the spacing between samples, which is only
// meaningful for a valid grid.
func (g Grid) Step() float64 {
	return (g.End() - g.Start()) / float64(len(g)-1)
}

// Validate returns an error wrapping [ErrGrid] unless the grid has
// at least two samples and is strictly increasing and evenly spaced.
// Even spacing is required because tristimulus integration relies on
// the grid step canceling out of the normalization.
func (g Grid) Validate() error {
	if len(g) < 2 {
		return grr.Errorf("%w: %d samples", ErrGrid, len(g))
	}
	step := g.Step()
	if !(step > 0) {
		return grr.Errorf("%w: not increasing", ErrGrid)
	}
	for i := 1; i < len(g); i++ {
		d := g[i] - g[i-1]
		if !(d > 0) {
			return grr.Errorf("%w: not strictly increasing at %g nm", ErrGrid, g[i])
		}
		if math.Abs(d-step) > spacingTol*step {
			return grr.Errorf("%w: uneven spacing at %g nm (%g, expected %g)", ErrGrid, g[i], d, step)
		}
	}
	return nil
}

// Clone returns a copy of the grid.
func (g Grid) Clone() Grid {
	return slices.Clone(g)
}

// Equal returns whether the two grids have the same wavelengths.
func (g Grid) Equal(o Grid) bool {
	return slices.Equal(g, o)
}

// Index returns the index of the given wavelength in the grid,
// and false if it is not one of the samples.
func (g Grid) Index(nm float64) (int, bool) {
	return slices.BinarySearch(g, nm)
}
