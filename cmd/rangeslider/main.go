// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rangeslider runs a range slider in the terminal,
// with settings loaded from a TOML or YAML file.
package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cogentcore.org/rangeslider/base/logx"
	"cogentcore.org/rangeslider/config"
	"cogentcore.org/rangeslider/track"
	"cogentcore.org/rangeslider/tui"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the flags shared by all commands.
type flags struct {
	config      string
	vertical    bool
	verbose     bool
	veryVerbose bool
	quiet       bool
}

// settings returns the settings from the config file,
// or the defaults if there is none, with the flags applied.
func (f *flags) settings() (*config.Settings, error) {
	s := config.New()
	if f.config != "" {
		var err error
		s, err = config.Open(f.config)
		if err != nil {
			return nil, err
		}
	}
	if f.vertical {
		s.Orientation = track.Vertical
	}
	return s, nil
}

func newRootCommand() *cobra.Command {
	f := &flags{}
	var watch bool
	cmd := &cobra.Command{
		Use:          "rangeslider",
		Short:        "Select a range of values with a two thumb slider",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(f.veryVerbose, f.verbose, f.quiet)
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings()
			if err != nil {
				return err
			}
			return run(cmd.Context(), f, s, watch)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "Path to a .toml, .yaml or .yml settings file")
	pf.BoolVar(&f.vertical, "vertical", false, "Lay out the slider vertically")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Log informational messages")
	pf.BoolVar(&f.veryVerbose, "vv", false, "Log debug messages")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "Only log errors")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the settings file when it changes")
	cmd.AddCommand(newLayoutCommand(f), newKeysCommand())
	return cmd
}

// run runs the terminal program until it quits.
func run(ctx context.Context, f *flags, s *config.Settings, watch bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m, err := tui.New(s)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if watch && f.config != "" {
		w, err := config.NewWatcher(f.config)
		if err != nil {
			return err
		}
		go w.Run(ctx, func(s *config.Settings) {
			if f.vertical {
				s.Orientation = track.Vertical
			}
			p.Send(tui.SettingsMsg{Settings: s})
		})
	}
	_, err = p.Run()
	return err
}
