// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides a catalog of paints with measured
// reflectance curves, to be mixed and converted to colors.
// None of the paint metadata affects the color computation.
package catalog

import (
	"embed"
	"errors"
	"io/fs"
	"strings"

	"cogentcore.org/spectral/base/grr"
	"cogentcore.org/spectral/base/iox/yamlx"
	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/km"
	"cogentcore.org/spectral/spectrum"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

//go:embed paints.yaml
var content embed.FS

var (
	// ErrNotFound is returned when looking up a paint that is not in the catalog.
	ErrNotFound = errors.New("catalog: paint not found")

	// ErrInvalid is returned for malformed catalog data.
	ErrInvalid = errors.New("catalog: invalid data")
)

// Paint is one paint of the catalog.
type Paint struct {

	// ID is the unique identifier of the paint.
	ID string `yaml:"id"`

	// Name is the display name of the paint.
	Name string `yaml:"name"`

	// Series is the price tier of the paint.
	Series Series `yaml:"series"`

	// Transparency is how much of the surface below a paint layer shows through.
	Transparency Transparency `yaml:"transparency"`

	// Hex is the display color of the paint, as #rrggbb.
	Hex string `yaml:"hex"`

	// Discontinued is whether the paint is no longer made.
	Discontinued bool `yaml:"discontinued,omitempty"`

	// Curve is the measured reflectance of the paint on the catalog grid.
	Curve spectrum.Curve `yaml:"curve,flow"`
}

// Component returns the paint as a mixing component
// with the given relative concentration.
func (p *Paint) Component(concentration float64) km.Component {
	return km.Component{Curve: p.Curve, Concentration: concentration}
}

// GridSpec describes the evenly spaced grid the curves are sampled on.
type GridSpec struct {
	Start float64 `yaml:"start"`
	Step  float64 `yaml:"step"`
	Count int     `yaml:"count"`
}

// Catalog is a set of paints sampled on a common wavelength grid.
type Catalog struct {
	GridSpec GridSpec `yaml:"grid"`
	Paints   []Paint  `yaml:"paints"`
}

// Default returns the bundled catalog.
func Default() *Catalog {
	return grr.Must(Load(content, "paints.yaml"))
}

// Load reads and validates a catalog from the given YAML file.
func Load(fsys fs.FS, filename string) (*Catalog, error) {
	c := &Catalog{}
	if err := yamlx.OpenFS(c, fsys, filename); err != nil {
		return nil, grr.Errorf("%w: %s: %w", ErrInvalid, filename, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the catalog to the given YAML file.
func (c *Catalog) Save(filename string) error {
	return grr.Wrap(yamlx.Save(c, filename))
}

// Grid returns the wavelength grid of the catalog curves.
func (c *Catalog) Grid() (spectrum.Grid, error) {
	return spectrum.EvenGrid(c.GridSpec.Start, c.GridSpec.Step, c.GridSpec.Count)
}

// Validate checks that the catalog has a valid grid, and that every
// paint has a unique ID and name, a valid series, transparency and
// hex color, and a curve with one sample per grid wavelength.
func (c *Catalog) Validate() error {
	g, err := c.Grid()
	if err != nil {
		return grr.Errorf("%w: %w", ErrInvalid, err)
	}
	ids := map[string]bool{}
	names := map[string]bool{}
	for i := range c.Paints {
		p := &c.Paints[i]
		switch {
		case p.ID == "" || p.Name == "":
			return grr.Errorf("%w: paint %d has no id or name", ErrInvalid, i)
		case ids[p.ID]:
			return grr.Errorf("%w: duplicate id %q", ErrInvalid, p.ID)
		case names[strings.ToLower(p.Name)]:
			return grr.Errorf("%w: duplicate name %q", ErrInvalid, p.Name)
		case !p.Series.IsValid():
			return grr.Errorf("%w: %s: series %d out of range", ErrInvalid, p.ID, int(p.Series))
		case !p.Transparency.IsValid():
			return grr.Errorf("%w: %s: invalid transparency", ErrInvalid, p.ID)
		case len(p.Curve) != g.Len():
			return grr.Errorf("%w: %s: %d curve samples for a %d sample grid", ErrInvalid, p.ID, len(p.Curve), g.Len())
		}
		if _, err := cie.ParseHex(p.Hex); err != nil {
			return grr.Errorf("%w: %s: %w", ErrInvalid, p.ID, err)
		}
		ids[p.ID] = true
		names[strings.ToLower(p.Name)] = true
	}
	return nil
}

// ByID returns the paint with the given ID.
func (c *Catalog) ByID(id string) (*Paint, error) {
	for i := range c.Paints {
		if c.Paints[i].ID == id {
			return &c.Paints[i], nil
		}
	}
	return nil, grr.Errorf("%w: id %q", ErrNotFound, id)
}

// ByName returns the paint with the given name, ignoring case.
func (c *Catalog) ByName(name string) (*Paint, error) {
	for i := range c.Paints {
		if strings.EqualFold(c.Paints[i].Name, strings.TrimSpace(name)) {
			return &c.Paints[i], nil
		}
	}
	return nil, grr.Errorf("%w: name %q", ErrNotFound, name)
}

// suggestThreshold is the minimum similarity for [Catalog.Find]
// to suggest a paint for an unknown key.
const suggestThreshold = 0.6

// Find returns the paint with the given ID or name.
// If there is none, the error suggests the most similar paint.
func (c *Catalog) Find(key string) (*Paint, error) {
	if p, err := c.ByID(key); err == nil {
		return p, nil
	}
	p, err := c.ByName(key)
	if err == nil {
		return p, nil
	}
	if s, sim := c.Suggest(key); sim >= suggestThreshold {
		return nil, grr.Errorf("%w: %q (did you mean %q?)", ErrNotFound, key, s.Name)
	}
	return nil, err
}

// Suggest returns the paint whose ID or name is most similar to the
// given key, ignoring case, along with the Levenshtein similarity in
// [0, 1]. It returns nil and 0 for an empty catalog.
func (c *Catalog) Suggest(key string) (*Paint, float64) {
	key = strings.ToLower(strings.TrimSpace(key))
	lev := metrics.NewLevenshtein()
	var best *Paint
	bestSim := 0.0
	for i := range c.Paints {
		p := &c.Paints[i]
		for _, s := range []string{p.ID, strings.ToLower(p.Name)} {
			if sim := strutil.Similarity(key, s, lev); best == nil || sim > bestSim {
				best, bestSim = p, sim
			}
		}
	}
	return best, bestSim
}

// Filter selects paints in [Catalog.Filter]. Zero fields match everything.
type Filter struct {

	// Series, if non-zero, only matches paints of this price tier.
	Series Series

	// Transparency, if non-nil, only matches paints with this transparency.
	Transparency *Transparency

	// Discontinued includes discontinued paints.
	Discontinued bool
}

// Filter returns the paints matching the given filter, in catalog order.
func (c *Catalog) Filter(f Filter) []*Paint {
	var ps []*Paint
	for i := range c.Paints {
		p := &c.Paints[i]
		if f.Series != 0 && p.Series != f.Series {
			continue
		}
		if f.Transparency != nil && p.Transparency != *f.Transparency {
			continue
		}
		if p.Discontinued && !f.Discontinued {
			continue
		}
		ps = append(ps, p)
	}
	return ps
}
