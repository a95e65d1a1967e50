// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	require.NoError(t, g.Validate())
	assert.Equal(t, 31, g.Len())
	assert.Equal(t, 400.0, g.Start())
	assert.Equal(t, 700.0, g.End())
	assert.Equal(t, 10.0, g.Step())

	i, ok := g.Index(560)
	assert.True(t, ok)
	assert.Equal(t, 16, i)
	_, ok = g.Index(565)
	assert.False(t, ok)
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		ok   bool
	}{
		{"even", Grid{400, 420, 440}, true},
		{"single", Grid{400}, false},
		{"empty", nil, false},
		{"decreasing", Grid{440, 420, 400}, false},
		{"repeated", Grid{400, 400, 420}, false},
		{"uneven", Grid{400, 410, 430, 440}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrGrid)
			}
		})
	}

	_, err := EvenGrid(400, 0, 10)
	assert.ErrorIs(t, err, ErrGrid)
	_, err = EvenGrid(400, 10, 1)
	assert.ErrorIs(t, err, ErrGrid)
}

func TestCurveFit(t *testing.T) {
	c := Curve{0.5, 0.6}
	f, err := c.Fit(4)
	require.NoError(t, err)
	assert.Equal(t, Curve{0.5, 0.6, 0, 0}, f)
	assert.Equal(t, Curve{0.5, 0.6}, c, "original must not change")

	f, err = c.Fit(2)
	require.NoError(t, err)
	assert.Equal(t, c, f)

	_, err = c.Fit(1)
	assert.ErrorIs(t, err, ErrCurveLength)

	assert.Equal(t, Curve{1, 1, 1}, Flat(3, 1))
}

func TestDefaultTables(t *testing.T) {
	tb := DefaultTables()
	require.NoError(t, tb.Validate(DefaultCount))
	assert.Equal(t, 100.0, tb.Illuminant.SPD[16])

	// tables are copies, so changing one does not affect later calls
	tb.Observer.Y[0] = 42
	assert.Equal(t, 0.000396, CIE1931().Y[0])

	tb.Illuminant.SPD = tb.Illuminant.SPD[:10]
	assert.ErrorIs(t, tb.Validate(DefaultCount), ErrTableLength)
}

func TestResample(t *testing.T) {
	from := DefaultGrid()
	tb := DefaultTables()

	to, err := EvenGrid(400, 20, 16)
	require.NoError(t, err)
	rs, err := Resample(tb, from, to)
	require.NoError(t, err)
	require.NoError(t, rs.Validate(16))
	for i := range to {
		assert.Equal(t, tb.Observer.Y[2*i], rs.Observer.Y[i])
		assert.Equal(t, tb.Illuminant.SPD[2*i], rs.Illuminant.SPD[i])
	}

	to, err = EvenGrid(405, 10, 30)
	require.NoError(t, err)
	rs, err = Resample(tb, from, to)
	require.NoError(t, err)
	assert.InDelta(t, (tb.Observer.X[0]+tb.Observer.X[1])/2, rs.Observer.X[0], 1e-12)
	assert.InDelta(t, (tb.Illuminant.SPD[29]+tb.Illuminant.SPD[30])/2, rs.Illuminant.SPD[29], 1e-12)

	to, err = EvenGrid(380, 10, 33)
	require.NoError(t, err)
	_, err = Resample(tb, from, to)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Resample(tb, from, Grid{400, 410, 430})
	assert.ErrorIs(t, err, ErrGrid)
}
