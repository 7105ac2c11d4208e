// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings of a range slider as stored
// in TOML or YAML files, and applies them to a [slider.RangeSlider].
package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/rangeslider/base/errors"
	"cogentcore.org/rangeslider/base/iox/tomlx"
	"cogentcore.org/rangeslider/base/iox/yamlx"
	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/slider"
	"cogentcore.org/rangeslider/track"
)

// Settings are the settings of a range slider.
type Settings struct {

	// the name of the slider, used in log messages
	Name string `toml:"name" yaml:"name" desc:"the name of the slider, used in log messages"`

	// [def: 0] the smallest value that can be selected
	Minimum float64 `toml:"minimum" yaml:"minimum" desc:"the smallest value that can be selected"`

	// [def: 100] the largest value that can be selected
	Maximum float64 `toml:"maximum" yaml:"maximum" desc:"the largest value that can be selected"`

	// the lower bound of the selected range
	Lower float64 `toml:"lower" yaml:"lower" desc:"the lower bound of the selected range"`

	// the upper bound of the selected range
	Upper float64 `toml:"upper" yaml:"upper" desc:"the upper bound of the selected range"`

	// [def: 1] the amount that the arrow keys move a value by
	SmallStep float64 `toml:"small_step" yaml:"small_step" desc:"the amount that the arrow keys move a value by"`

	// [def: 10] the amount that the page keys move a value by
	LargeStep float64 `toml:"large_step" yaml:"large_step" desc:"the amount that the page keys move a value by"`

	// the axis of the slider (Horizontal or Vertical)
	Orientation track.Orientations `toml:"orientation" yaml:"orientation" desc:"the axis of the slider (Horizontal or Vertical)"`

	// whether the direction of increasing value is reversed
	IsDirectionReversed bool `toml:"reversed" yaml:"reversed" desc:"whether the direction of increasing value is reversed"`

	// whether both thumbs may occupy the same space
	IsThumbOverlapAllowed bool `toml:"overlap" yaml:"overlap" desc:"whether both thumbs may occupy the same space"`

	// whether dragging between the thumbs moves the whole range
	MoveWholeRange bool `toml:"move_whole_range" yaml:"move_whole_range" desc:"whether dragging between the thumbs moves the whole range"`

	// whether values snap to ticks
	IsSnapToTickEnabled bool `toml:"snap" yaml:"snap" desc:"whether values snap to ticks"`

	// the interval between ticks, used when there are no explicit ticks
	TickFrequency float64 `toml:"tick_frequency" yaml:"tick_frequency" desc:"the interval between ticks, used when there are no explicit ticks"`

	// explicit tick values
	Ticks []float64 `toml:"ticks" yaml:"ticks" desc:"explicit tick values"`

	// whether the slider is a scrollbar, with a thumb length derived from the viewport
	Scrollbar bool `toml:"scrollbar" yaml:"scrollbar" desc:"whether the slider is a scrollbar, with a thumb length derived from the viewport"`

	// the amount of content visible in scrollbar mode
	Viewport float64 `toml:"viewport" yaml:"viewport" desc:"the amount of content visible in scrollbar mode"`

	// where the value flyouts of the thumbs are shown (None, TopLeft or BottomRight)
	FlyoutPlacement slider.FlyoutPlacements `toml:"flyout" yaml:"flyout" desc:"where the value flyouts of the thumbs are shown (None, TopLeft or BottomRight)"`

	// [def: 1] the length of each thumb along the track
	ThumbLength float64 `toml:"thumb_length" yaml:"thumb_length" desc:"the length of each thumb along the track"`

	// [def: 1] the thickness of the track and thumbs across it
	Thickness float64 `toml:"thickness" yaml:"thickness" desc:"the thickness of the track and thumbs across it"`

	// [def: 40] the length of the track
	TrackLength float64 `toml:"track_length" yaml:"track_length" desc:"the length of the track"`
}

// New returns new settings with default values.
func New() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the default values.
func (s *Settings) Defaults() {
	s.Name = "range"
	s.Maximum = 100
	s.SmallStep = 1
	s.LargeStep = 10
	s.ThumbLength = 1
	s.Thickness = 1
	s.TrackLength = 40
}

// Open reads settings from the given file, starting from the defaults.
// The format is chosen by the file extension: .toml, .yaml or .yml.
// A leading ~ in the filename is expanded to the home directory.
func Open(filename string) (*Settings, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", filename, err)
	}
	s := New()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(s, filename)
	default:
		return nil, errors.Errorf("config: unsupported settings file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", filename, err)
	}
	return s, nil
}

// Save writes the settings to the given file, in the format
// chosen by the file extension.
func (s *Settings) Save(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	default:
		return errors.Errorf("config: unsupported settings file extension %q", ext)
	}
}

// Size returns the size of the slider along and across its axis.
func (s *Settings) Size() geom.Vector2 {
	return s.along(s.TrackLength, s.Thickness)
}

// Parts returns a complete set of slider parts with thumbs
// of the configured length and thickness.
func (s *Settings) Parts() slider.Parts {
	return slider.NewParts(s.along(s.ThumbLength, s.Thickness))
}

// along returns a vector with the given length along the slider axis
// and thickness across it.
func (s *Settings) along(length, thickness float64) geom.Vector2 {
	var v geom.Vector2
	dim := s.Orientation.Dim()
	v.SetDim(dim, length)
	v.SetDim(dim.Other(), thickness)
	return v
}

// Apply applies the settings to the given slider: the options, the
// bounds and steps, the parts, and the flyout placement. It returns an
// error if the options cannot be copied or the flyout placement is not
// valid for the orientation; the rest of the settings are still applied.
func (s *Settings) Apply(rs *slider.RangeSlider) error {
	if err := copier.CopyWithOption(&rs.Options, s, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("config: apply options: %w", err)
	}
	rs.Viewport = math.NaN()
	if s.Scrollbar {
		rs.Viewport = s.Viewport
	}
	rs.Name = s.Name
	rs.Assign(s.Minimum, s.Maximum, s.Lower, s.Upper)
	rs.SetSmallStep(s.SmallStep).SetLargeStep(s.LargeStep)
	rs.SetParts(s.Parts())
	if err := rs.SetThumbFlyoutPlacement(s.FlyoutPlacement); err != nil {
		return fmt.Errorf("config: apply flyout: %w", err)
	}
	return nil
}

// NewSlider returns a new slider with the settings applied,
// arranged within [Settings.Size].
func (s *Settings) NewSlider() (*slider.RangeSlider, error) {
	rs := slider.New()
	err := s.Apply(rs)
	rs.Arrange(s.Size())
	return rs, err
}
