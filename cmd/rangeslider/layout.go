// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cogentcore.org/rangeslider/base/iox/tomlx"
	"cogentcore.org/rangeslider/base/iox/yamlx"
	"cogentcore.org/rangeslider/config"
	"cogentcore.org/rangeslider/geom"
)

// report is the arranged layout of a slider, as printed by the layout command.
type report struct {
	Name             string    `toml:"name" yaml:"name"`
	Lower            float64   `toml:"lower" yaml:"lower"`
	Upper            float64   `toml:"upper" yaml:"upper"`
	States           string    `toml:"states" yaml:"states"`
	Arranged         bool      `toml:"arranged" yaml:"arranged"`
	ThumbLength      float64   `toml:"thumb_length" yaml:"thumb_length"`
	LowerThumbOffset float64   `toml:"lower_thumb_offset" yaml:"lower_thumb_offset"`
	UpperThumbOffset float64   `toml:"upper_thumb_offset" yaml:"upper_thumb_offset"`
	BeforeLength     float64   `toml:"before_length" yaml:"before_length"`
	ForegroundLength float64   `toml:"foreground_length" yaml:"foreground_length"`
	AfterLength      float64   `toml:"after_length" yaml:"after_length"`
	Measure          []float64 `toml:"measure" yaml:"measure,flow"`
}

func newLayoutCommand(f *flags) *cobra.Command {
	format := "toml"
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the arranged layout of the slider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings()
			if err != nil {
				return err
			}
			return writeLayout(cmd.OutOrStdout(), s, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "Output format (toml or yaml)")
	return cmd
}

// writeLayout arranges a slider with the given settings and writes
// its layout to w in the given format.
func writeLayout(w io.Writer, s *config.Settings, format string) error {
	rs, err := s.NewSlider()
	if err != nil {
		return err
	}
	g := rs.Geometry()
	ms := rs.Measure()
	r := &report{
		Name:             rs.Name,
		Lower:            rs.LowerValue,
		Upper:            rs.UpperValue,
		States:           rs.States(false).String(),
		Arranged:         g.Arranged,
		ThumbLength:      g.ThumbLength,
		LowerThumbOffset: g.LowerThumbOffset,
		UpperThumbOffset: g.UpperThumbOffset,
		BeforeLength:     g.BackgroundBeforeLength,
		ForegroundLength: g.ForegroundLength,
		AfterLength:      g.BackgroundAfterLength,
		Measure:          []float64{ms.Dim(geom.X), ms.Dim(geom.Y)},
	}
	switch format {
	case "toml":
		return tomlx.Write(r, w)
	case "yaml":
		return yamlx.Write(r, w)
	}
	return fmt.Errorf("unknown format %q; expected toml or yaml", format)
}
