// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/spectral/cie"
	"cogentcore.org/spectral/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, Grid{400, 10, 31}, c.Grid)
	assert.Equal(t, Weights{1, 1, 1}, c.Weights)
	assert.Equal(t, 0, c.Workers)
	require.NoError(t, c.Validate())

	e, err := c.Engine()
	require.NoError(t, err)
	assert.True(t, e.Grid().Equal(spectrum.DefaultGrid()))
	assert.Equal(t, cie.DefaultWeights, e.Weights())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "spectral.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Workers = 4\n\n[Grid]\nStep = 20\nCount = 16\n\n[Weights]\nKL = 2\n"), 0666))

	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, Grid{400, 20, 16}, c.Grid)
	assert.Equal(t, Weights{2, 1, 1}, c.Weights)
	assert.Equal(t, 4, c.Workers)

	e, err := c.Engine()
	require.NoError(t, err)
	assert.Equal(t, 16, e.Grid().Len())
	assert.Equal(t, 2.0, e.Weights().KL)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[Grid]\nStep = 0\n"), 0666))
	_, err = Open(bad)
	assert.ErrorIs(t, err, spectrum.ErrGrid)
}

func TestSave(t *testing.T) {
	c := Default()
	c.Workers = 2
	c.Catalog = "paints.yaml"
	fn := filepath.Join(t.TempDir(), "spectral.toml")
	require.NoError(t, c.Save(fn))

	o, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, o)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Weights.KH = 0
	assert.Error(t, c.Validate())

	c = Default()
	c.Workers = -1
	assert.Error(t, c.Validate())

	// out of the range of the bundled tables
	c = Default()
	c.Grid.Start = 300
	require.NoError(t, c.Validate())
	_, err := c.Engine()
	assert.ErrorIs(t, err, spectrum.ErrOutOfRange)
}

func TestSetFromDefaults(t *testing.T) {
	type inner struct {
		On bool `def:"true"`
	}
	type cfg struct {
		Name  string  `def:"spectral"`
		Scale float32 `def:"0.5"`
		In    inner
		Bad   []int
	}
	c := &cfg{}
	require.NoError(t, SetFromDefaults(c))
	assert.Equal(t, &cfg{Name: "spectral", Scale: 0.5, In: inner{On: true}}, c)

	assert.Error(t, SetFromDefaults(cfg{}))
	type badCfg struct {
		N int `def:"many"`
	}
	assert.Error(t, SetFromDefaults(&badCfg{}))
}
