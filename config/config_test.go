// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/slider"
	"cogentcore.org/rangeslider/track"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priceTOML = `name = "price"
minimum = 0.0
maximum = 200.0
lower = 20.0
upper = 150.0
orientation = "Vertical"
reversed = true
snap = true
ticks = [0.0, 50.0, 100.0, 150.0, 200.0]
flyout = "TopLeft"
track_length = 20.0
`

const priceYAML = `name: price
maximum: 200
lower: 20
upper: 150
orientation: Vertical
reversed: true
snap: true
ticks: [0, 50, 100, 150, 200]
flyout: TopLeft
track_length: 20
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0666))
	return filename
}

func assertPrice(t *testing.T, s *Settings) {
	t.Helper()
	assert.Equal(t, "price", s.Name)
	assert.Equal(t, 0.0, s.Minimum)
	assert.Equal(t, 200.0, s.Maximum)
	assert.Equal(t, 20.0, s.Lower)
	assert.Equal(t, 150.0, s.Upper)
	assert.Equal(t, track.Vertical, s.Orientation)
	assert.True(t, s.IsDirectionReversed)
	assert.True(t, s.IsSnapToTickEnabled)
	assert.Equal(t, []float64{0, 50, 100, 150, 200}, s.Ticks)
	assert.Equal(t, slider.FlyoutTopLeft, s.FlyoutPlacement)
	assert.Equal(t, 20.0, s.TrackLength)
	// defaults are kept for missing keys
	assert.Equal(t, 1.0, s.SmallStep)
	assert.Equal(t, 10.0, s.LargeStep)
	assert.Equal(t, 1.0, s.ThumbLength)
}

func TestOpen(t *testing.T) {
	s, err := Open(writeFile(t, "price.toml", priceTOML))
	require.NoError(t, err)
	assertPrice(t, s)

	s, err = Open(writeFile(t, "price.yaml", priceYAML))
	require.NoError(t, err)
	assertPrice(t, s)

	_, err = Open(writeFile(t, "price.json", "{}"))
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "bad.toml", "maximum = [\n"))
	assert.Error(t, err)
}

func TestOpenHome(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "price.toml"), []byte(priceTOML), 0666))

	s, err := Open("~/price.toml")
	require.NoError(t, err)
	assertPrice(t, s)
}

func TestSave(t *testing.T) {
	s := New()
	s.Orientation = track.Vertical
	s.FlyoutPlacement = slider.FlyoutBottomRight
	s.Ticks = []float64{5, 15}
	for _, name := range []string{"out.toml", "out.yml"} {
		filename := filepath.Join(t.TempDir(), name)
		require.NoError(t, s.Save(filename))
		got, err := Open(filename)
		require.NoError(t, err)
		assert.Equal(t, s, got, name)
	}
	assert.Error(t, s.Save(filepath.Join(t.TempDir(), "out.txt")))
}

func TestApply(t *testing.T) {
	s, err := Open(writeFile(t, "price.toml", priceTOML))
	require.NoError(t, err)
	rs := slider.New()
	require.NoError(t, s.Apply(rs))

	assert.Equal(t, "price", rs.Name)
	assert.Equal(t, track.Vertical, rs.Orientation)
	assert.True(t, rs.IsDirectionReversed)
	assert.True(t, rs.IsSnapToTickEnabled)
	assert.False(t, rs.IsScrollbar())
	assert.Equal(t, 200.0, rs.Maximum)
	assert.Equal(t, 20.0, rs.LowerValue)
	assert.Equal(t, 150.0, rs.UpperValue)
	assert.Equal(t, slider.FlyoutTopLeft, rs.ThumbFlyoutPlacement())
	assert.Equal(t, slider.PlacementLeft, rs.FlyoutPlacement())
	require.NotNil(t, rs.Parts.LowerThumb)
	assert.Equal(t, geom.Vec2(1, 1), rs.Parts.LowerThumb.Size)
	assert.Equal(t, geom.Vec2(1, 20), s.Size())

	// the ticks are copied
	s.Ticks[1] = 60
	assert.Equal(t, 50.0, rs.Ticks[1])

	s.Scrollbar = true
	s.Viewport = 25
	require.NoError(t, s.Apply(rs))
	assert.True(t, rs.IsScrollbar())
	assert.Equal(t, 25.0, rs.Viewport)

	s.Scrollbar = false
	s.FlyoutPlacement = slider.FlyoutPlacements(9)
	assert.Error(t, s.Apply(rs))
	assert.True(t, math.IsNaN(rs.Viewport))
}

func TestNewSlider(t *testing.T) {
	s := New()
	s.Lower, s.Upper = 25, 75
	rs, err := s.NewSlider()
	require.NoError(t, err)
	assert.True(t, rs.PartsVisible())
	g := rs.Geometry()
	assert.Equal(t, 1.0, g.ThumbLength)
	assert.InDelta(t, 9.5, g.LowerThumbOffset, 1e-9)
	assert.InDelta(t, 29.5, g.UpperThumbOffset, 1e-9)
}

func TestWatch(t *testing.T) {
	filename := writeFile(t, "watch.toml", priceTOML)
	w, err := NewWatcher(filename)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *Settings, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(s *Settings) {
			reloaded <- s
		})
	}()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(filename), "other.toml"), []byte("maximum = 5.0\n"), 0666))
	require.NoError(t, os.WriteFile(filename, []byte("maximum = 300.0\n"), 0666))

	timeout := time.After(5 * time.Second)
loop:
	for {
		select {
		case s := <-reloaded:
			// a write can be seen partway through
			if s.Maximum == 300 {
				break loop
			}
			assert.NotEqual(t, 5.0, s.Maximum)
		case <-timeout:
			t.Fatal("settings were not reloaded")
		}
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
