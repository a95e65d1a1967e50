// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "errors"

var (
	// ErrZeroNorm is returned by [Integrate] when the illuminant and
	// the ȳ function have no overlap, so no white point can be defined.
	ErrZeroNorm = errors.New("cie: illuminant has zero luminance")

	// ErrHex is returned by [ParseHex] for malformed hex colors.
	ErrHex = errors.New("cie: invalid hex color")
)
