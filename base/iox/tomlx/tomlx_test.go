// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Step  float64
	Count int
}

func TestSaveOpen(t *testing.T) {
	in := &testStruct{Name: "grid", Step: 10, Count: 31}
	fn := filepath.Join(t.TempDir(), "test.toml")
	require.NoError(t, Save(in, fn))

	out := &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)

	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.toml": {Data: []byte("Name = \"fs\"\nStep = 5.0\nCount = 61\n")},
	}
	out := &testStruct{}
	require.NoError(t, OpenFS(out, fsys, "a.toml"))
	assert.Equal(t, &testStruct{Name: "fs", Step: 5, Count: 61}, out)

	b, err := WriteBytes(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Count = 61")
}
