// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/rangeslider/config"
)

func layout(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"layout", "-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestLayoutCommand(t *testing.T) {
	s := config.New()
	s.Lower, s.Upper = 20, 60
	s.TrackLength = 22
	file := filepath.Join(t.TempDir(), "slider.yaml")
	require.NoError(t, s.Save(file))

	out, err := layout(t, "--config", file)
	require.NoError(t, err)
	assert.Contains(t, out, "lower_thumb_offset = 4.0\n")
	assert.Contains(t, out, "upper_thumb_offset = 13.0\n")
	assert.Contains(t, out, "states = 'Horizontal'\n")

	out, err = layout(t, "--config", file, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "foreground_length: 9\n")
	assert.Contains(t, out, "measure: [2, 1]\n")

	out, err = layout(t, "--config", file, "--format", "yaml", "--vertical")
	require.NoError(t, err)
	assert.Contains(t, out, "states: Vertical\n")
	assert.Contains(t, out, "lower_thumb_offset: 17\n")
	assert.Contains(t, out, "measure: [1, 2]\n")
}

func TestLayoutCommandErrors(t *testing.T) {
	_, err := layout(t, "--format", "json")
	assert.ErrorContains(t, err, `unknown format "json"`)

	_, err = layout(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = layout(t, "--config", "slider.json")
	assert.ErrorContains(t, err, "unsupported settings file extension")
}

func TestKeysCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"keys", "-q"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "| Home       | `Home` |\n")

	out.Reset()
	cmd = newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"keys", "--html", "-q"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "<code>Home</code>")
}
