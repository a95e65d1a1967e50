// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for spectral engines and the spectral tool.
package config

import (
	"cogentcore.org/spectral"
	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/base/iox/tomlx"
	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/spectrum"
)

// Config is the main config struct
// that contains all of the configuration
// options for a spectral engine and the spectral tool.
type Config struct {

	// the wavelength grid the engine computes on
	Grid Grid

	// the CIEDE2000 parametric weights
	Weights Weights

	// the number of goroutines used for batch conversions; 0 uses all CPUs
	Workers int `def:"0"`

	// a YAML paint catalog file to use instead of the bundled catalog
	Catalog string `toml:",omitempty"`
}

// Grid is an evenly spaced wavelength grid.
type Grid struct {

	// the first wavelength, in nm
	Start float64 `def:"400"`

	// the spacing between wavelengths, in nm
	Step float64 `def:"10"`

	// the number of wavelengths
	Count int `def:"31"`
}

// Weights are the parametric weighting factors of CIEDE2000.
type Weights struct {

	// the lightness weight
	KL float64 `def:"1"`

	// the chroma weight
	KC float64 `def:"1"`

	// the hue weight
	KH float64 `def:"1"`
}

// Default returns a new config with all fields
// set from their `def:` struct tag values.
func Default() *Config {
	c := &Config{}
	grr.Log(SetFromDefaults(c))
	return c
}

// Open returns the [Default] config, overridden by the
// values in the given TOML file, and validated.
func Open(filename string) (*Config, error) {
	c := Default()
	if err := tomlx.Open(c, filename); err != nil {
		return nil, grr.Errorf("config: %s: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the config to the given TOML file.
func (c *Config) Save(filename string) error {
	return grr.Wrap(tomlx.Save(c, filename))
}

// Validate returns an error if the grid or weights are invalid.
func (c *Config) Validate() error {
	if _, err := c.Grid.Spectrum(); err != nil {
		return err
	}
	if !(c.Weights.KL > 0 && c.Weights.KC > 0 && c.Weights.KH > 0) {
		return grr.Errorf("config: weights must be positive: %+v", c.Weights)
	}
	if c.Workers < 0 {
		return grr.Errorf("config: negative number of workers %d", c.Workers)
	}
	return nil
}

// Spectrum returns the grid as a [spectrum.Grid].
func (g Grid) Spectrum() (spectrum.Grid, error) {
	return spectrum.EvenGrid(g.Start, g.Step, g.Count)
}

// Engine returns a new [spectral.Engine] for the config.
func (c *Config) Engine() (*spectral.Engine, error) {
	g, err := c.Grid.Spectrum()
	if err != nil {
		return nil, err
	}
	w := cie.Weights{KL: c.Weights.KL, KC: c.Weights.KC, KH: c.Weights.KH}
	return spectral.New(spectral.WithGrid(g), spectral.WithWeights(w))
}
