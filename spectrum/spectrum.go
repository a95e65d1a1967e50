// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectrum provides the wavelength grid, reflectance curves
// and the reference observer and illuminant tables that spectral
// colorimetry is computed against. Every per-wavelength sequence is
// aligned index-for-index with a [Grid].
package spectrum

import "errors"

var (
	// ErrGrid is returned for grids that are too short, not strictly
	// increasing, or not evenly spaced.
	ErrGrid = errors.New("spectrum: invalid wavelength grid")

	// ErrCurveLength is returned for curves with more samples than the grid.
	ErrCurveLength = errors.New("spectrum: curve longer than wavelength grid")

	// ErrTableLength is returned for observer or illuminant tables whose
	// length does not match the grid.
	ErrTableLength = errors.New("spectrum: table length does not match wavelength grid")

	// ErrOutOfRange is returned when resampling a table outside of the
	// wavelengths it was measured on.
	ErrOutOfRange = errors.New("spectrum: wavelength outside of table range")
)
