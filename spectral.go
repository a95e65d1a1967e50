// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectral predicts the color of colorant mixtures from their
// reflectance curves, using the Kubelka-Munk model, and converts the
// resulting curves to CIE XYZ, sRGB and CIELAB, with the CIEDE2000
// color difference to compare them.
//
// An [Engine] binds a wavelength grid to the observer and illuminant
// tables the curves are integrated against. It is immutable and safe
// for concurrent use, so several engines with different configurations
// can coexist.
package spectral

import (
	"log/slog"

	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/km"
	"cogentcore.org/spectral/spectrum"
)

// Engine computes colorant mixtures and colorimetry on a fixed
// wavelength grid. Create one with [New]; the zero value is not usable.
type Engine struct {
	grid    spectrum.Grid
	tables  spectrum.Tables
	weights cie.Weights
}

// New returns a new [Engine] configured by the given options.
// By default it uses the 31 sample 400-700 nm grid with the CIE 1931 2°
// observer under D65, and the reference CIEDE2000 weights.
// A custom grid without custom tables gets the default tables
// resampled onto it, which requires the grid to lie within 400-700 nm.
func New(opts ...Option) (*Engine, error) {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	grid := spectrum.DefaultGrid()
	if s.grid != nil {
		grid = s.grid.Clone()
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	var tables spectrum.Tables
	switch {
	case s.tables != nil:
		tables = s.tables.Clone()
		if err := tables.Validate(grid.Len()); err != nil {
			return nil, err
		}
	case s.grid != nil:
		rs, err := spectrum.Resample(spectrum.DefaultTables(), spectrum.DefaultGrid(), grid)
		if err != nil {
			return nil, grr.Errorf("default tables for custom grid: %w", err)
		}
		tables = rs
	default:
		tables = spectrum.DefaultTables()
	}
	weights := cie.DefaultWeights
	if s.weights != nil {
		weights = *s.weights
	}
	if !(weights.KL > 0 && weights.KC > 0 && weights.KH > 0) {
		return nil, grr.Errorf("spectral: weights must be positive: %+v", weights)
	}
	slog.Debug("new spectral engine", "samples", grid.Len(), "start", grid.Start(), "step", grid.Step(),
		"observer", tables.Observer.Name, "illuminant", tables.Illuminant.Name)
	return &Engine{grid: grid, tables: tables, weights: weights}, nil
}

// Default returns an [Engine] with the default configuration.
func Default() *Engine {
	return grr.Must(New())
}

// Grid returns a copy of the wavelength grid of the engine.
func (e *Engine) Grid() spectrum.Grid {
	return e.grid.Clone()
}

// Tables returns a copy of the observer and illuminant tables of the engine.
func (e *Engine) Tables() spectrum.Tables {
	return e.tables.Clone()
}

// Weights returns the CIEDE2000 weights of the engine.
func (e *Engine) Weights() cie.Weights {
	return e.weights
}

// ReflectanceToKS converts a single reflectance to its K/S ratio.
// See [km.ReflectanceToKS].
func (e *Engine) ReflectanceToKS(r float64) float64 {
	return km.ReflectanceToKS(r)
}

// KSToReflectance converts a K/S ratio back to reflectance.
// See [km.KSToReflectance].
func (e *Engine) KSToReflectance(ks float64) float64 {
	return km.KSToReflectance(ks)
}

// Mix returns the predicted reflectance curve of the mixture of the
// given components on the engine grid. See [km.Mix] for the handling
// of empty input, short curves and invalid concentrations.
func (e *Engine) Mix(comps ...km.Component) (spectrum.Curve, error) {
	return km.Mix(e.grid.Len(), comps...)
}

// ToXYZ integrates the given reflectance curve into tristimulus values
// under the engine illuminant and observer. See [cie.Integrate].
func (e *Engine) ToXYZ(c spectrum.Curve) (cie.XYZ, error) {
	return cie.Integrate(c, e.tables)
}

// XYZToSRGB converts tristimulus values to 8-bit sRGB.
// See [cie.XYZToSRGB].
func (e *Engine) XYZToSRGB(c cie.XYZ) cie.RGB {
	return cie.XYZToSRGB(c)
}

// RGBToHex formats the color as a lowercase #rrggbb string.
func (e *Engine) RGBToHex(c cie.RGB) string {
	return c.Hex()
}

// XYZToLAB converts tristimulus values to CIELAB. See [cie.XYZToLAB].
func (e *Engine) XYZToLAB(c cie.XYZ) cie.LAB {
	return cie.XYZToLAB(c)
}

// Difference returns the CIEDE2000 difference between the two colors
// with the engine weights.
func (e *Engine) Difference(c1, c2 cie.LAB) float64 {
	return cie.DeltaE2000Weighted(c1, c2, e.weights)
}
