// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sceneview.toml")
	cf := &Config{}
	cf.Defaults()
	cf.Scene = "scenes/demo.vtkjs"
	cf.Append = true
	cf.Width = 640
	require.NoError(t, cf.Save(fn))

	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, cf, got)
}

func TestOpenDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sceneview.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`scene = "a.vtkjs"`), 0o666))
	cf, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8765", cf.Listen)
	assert.Equal(t, "a.vtkjs", cf.Scene)
	assert.Equal(t, 0, cf.Width)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
