// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"slices"

	"cogentcore.org/spectral/base/grr"
)

// Observer is a standard observer: the X̄, Ȳ and Z̄ color matching
// functions sampled on a [Grid].
type Observer struct {
	Name    string
	X, Y, Z []float64
}

// Illuminant is the relative spectral power distribution of a light
// source sampled on a [Grid]. Its absolute scale does not matter, as
// tristimulus values are normalized against it.
type Illuminant struct {
	Name string
	SPD  []float64
}

// Tables are the reference tables tristimulus integration is computed
// against. They must all have the same length as the grid they are used with.
type Tables struct {
	Observer   Observer
	Illuminant Illuminant
}

// CIE1931 returns the CIE 1931 2° standard observer
// on the default grid (400 to 700 nm in 10 nm steps).
func CIE1931() Observer {
	return Observer{
		Name: "CIE 1931 2°",
		X:    slices.Clone(cie1931X[:]),
		Y:    slices.Clone(cie1931Y[:]),
		Z:    slices.Clone(cie1931Z[:]),
	}
}

// D65 returns the CIE standard illuminant D65
// on the default grid (400 to 700 nm in 10 nm steps),
// relative to 100 at 560 nm.
func D65() Illuminant {
	return Illuminant{Name: "D65", SPD: slices.Clone(d65[:])}
}

// DefaultTables returns the CIE 1931 2° observer under D65
// on the default grid.
func DefaultTables() Tables {
	return Tables{Observer: CIE1931(), Illuminant: D65()}
}

// Clone returns a deep copy of the tables.
func (t Tables) Clone() Tables {
	return Tables{
		Observer: Observer{
			Name: t.Observer.Name,
			X:    slices.Clone(t.Observer.X),
			Y:    slices.Clone(t.Observer.Y),
			Z:    slices.Clone(t.Observer.Z),
		},
		Illuminant: Illuminant{Name: t.Illuminant.Name, SPD: slices.Clone(t.Illuminant.SPD)},
	}
}

// Validate returns an error wrapping [ErrTableLength] unless
// every table has exactly n samples.
func (t Tables) Validate(n int) error {
	check := func(name string, v []float64) error {
		if len(v) != n {
			return grr.Errorf("%w: %s has %d samples for a %d sample grid", ErrTableLength, name, len(v), n)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v    []float64
	}{
		{"observer x̄", t.Observer.X},
		{"observer ȳ", t.Observer.Y},
		{"observer z̄", t.Observer.Z},
		{"illuminant", t.Illuminant.SPD},
	} {
		if err := check(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// Resample returns the given tables, sampled on the from grid,
// linearly interpolated onto the to grid. Every wavelength of the
// to grid must lie within the from grid, or [ErrOutOfRange] is returned.
func Resample(t Tables, from, to Grid) (Tables, error) {
	if err := from.Validate(); err != nil {
		return Tables{}, err
	}
	if err := to.Validate(); err != nil {
		return Tables{}, err
	}
	if err := t.Validate(from.Len()); err != nil {
		return Tables{}, err
	}
	if from.Equal(to) {
		return t.Clone(), nil
	}
	tol := spacingTol * from.Step()
	if to.Start() < from.Start()-tol || to.End() > from.End()+tol {
		return Tables{}, grr.Errorf("%w: %g-%g nm is outside %g-%g nm", ErrOutOfRange, to.Start(), to.End(), from.Start(), from.End())
	}
	interp := func(v []float64) []float64 {
		out := make([]float64, to.Len())
		for i, nm := range to {
			out[i] = interpolate(from, v, nm)
		}
		return out
	}
	return Tables{
		Observer: Observer{
			Name: t.Observer.Name,
			X:    interp(t.Observer.X),
			Y:    interp(t.Observer.Y),
			Z:    interp(t.Observer.Z),
		},
		Illuminant: Illuminant{Name: t.Illuminant.Name, SPD: interp(t.Illuminant.SPD)},
	}, nil
}

// interpolate returns the linear interpolation of v, sampled on the
// evenly spaced grid g, at the given wavelength, clamped to the grid ends.
func interpolate(g Grid, v []float64, nm float64) float64 {
	pos := (nm - g.Start()) / g.Step()
	switch {
	case pos <= 0:
		return v[0]
	case pos >= float64(len(v)-1):
		return v[len(v)-1]
	}
	i := int(pos)
	t := pos - float64(i)
	return v[i] + t*(v[i+1]-v[i])
}
