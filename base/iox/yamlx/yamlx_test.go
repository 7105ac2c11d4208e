// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bounds struct {
	Minimum float64 `yaml:"minimum"`
	Maximum float64 `yaml:"maximum"`
	Ticks   []float64
}

func TestSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bounds.yaml")
	want := bounds{Minimum: -5, Maximum: 25, Ticks: []float64{0, 10}}
	require.NoError(t, Save(&want, file))

	var b bounds
	require.NoError(t, Open(&b, file))
	assert.Equal(t, want, b)

	assert.Error(t, Open(&b, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"bounds.yaml": {Data: []byte("minimum: 2\nmaximum: 8\n")},
	}
	var b bounds
	require.NoError(t, OpenFS(&b, fsys, "bounds.yaml"))
	assert.Equal(t, bounds{Minimum: 2, Maximum: 8}, b)
}

func TestBytes(t *testing.T) {
	data, err := WriteBytes(&bounds{Maximum: 100})
	require.NoError(t, err)
	assert.Contains(t, string(data), "maximum: 100\n")

	var b bounds
	require.NoError(t, ReadBytes(&b, data))
	assert.Equal(t, 100.0, b.Maximum)
}
