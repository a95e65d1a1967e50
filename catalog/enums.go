// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"strconv"
	"strings"

	"cogentcore.org/spectral/base/grr"
	"gopkg.in/yaml.v3"
)

// Series is the price tier of a paint, from 1 (least expensive)
// to 9 (most expensive).
type Series int

const (
	// SeriesMin is the least expensive price tier.
	SeriesMin Series = 1

	// SeriesMax is the most expensive price tier.
	SeriesMax Series = 9
)

// IsValid returns whether the series is one of the nine price tiers.
func (s Series) IsValid() bool {
	return s >= SeriesMin && s <= SeriesMax
}

func (s Series) String() string {
	return "Series " + strconv.Itoa(int(s))
}

// Transparency is how much of the underlying surface a paint
// layer lets through.
type Transparency int32

const (
	Transparent Transparency = iota
	SemiTransparent
	SemiOpaque
	Opaque

	// TransparencyN is the number of transparency values.
	TransparencyN
)

var transparencyNames = [TransparencyN]string{"Transparent", "Semi-transparent", "Semi-opaque", "Opaque"}

// TransparencyValues returns all possible values of [Transparency].
func TransparencyValues() []Transparency {
	return []Transparency{Transparent, SemiTransparent, SemiOpaque, Opaque}
}

// IsValid returns whether the value is a valid option for type [Transparency].
func (t Transparency) IsValid() bool {
	return t >= 0 && t < TransparencyN
}

// String returns the display name of the transparency, such as "Semi-opaque".
func (t Transparency) String() string {
	if !t.IsValid() {
		return strconv.Itoa(int(t))
	}
	return transparencyNames[t]
}

// SetString sets the transparency from its name, ignoring case,
// and treating spaces and dashes alike.
func (t *Transparency) SetString(s string) error {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	for i, n := range transparencyNames {
		if strings.ToLower(n) == key {
			*t = Transparency(i)
			return nil
		}
	}
	return grr.Errorf("%w: %q is not a valid value for type Transparency", ErrInvalid, s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t Transparency) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(t.String())), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *Transparency) UnmarshalText(text []byte) error {
	return t.SetString(string(text))
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (t *Transparency) UnmarshalYAML(n *yaml.Node) error {
	return t.SetString(n.Value)
}
