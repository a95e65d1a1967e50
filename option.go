// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectral

import (
	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/spectrum"
)

// settings collects the options passed to [New].
type settings struct {
	grid    spectrum.Grid
	tables  *spectrum.Tables
	weights *cie.Weights
}

// Option configures an [Engine] in [New].
type Option func(s *settings)

// WithGrid sets the wavelength grid, which must be strictly increasing
// and evenly spaced. Unless [WithTables] is also given, the default
// tables are resampled onto it.
func WithGrid(g spectrum.Grid) Option {
	return func(s *settings) { s.grid = g }
}

// WithTables sets the observer and illuminant tables, which must have
// the same length as the grid.
func WithTables(t spectrum.Tables) Option {
	return func(s *settings) { s.tables = &t }
}

// WithWeights sets the CIEDE2000 parametric weights used by
// [Engine.Difference]. All of them must be positive.
func WithWeights(w cie.Weights) Option {
	return func(s *settings) { s.weights = &w }
}
