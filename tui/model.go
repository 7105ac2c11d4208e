// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui hosts a range slider in a terminal, using bubbletea for
// the event loop and lipgloss for rendering. Each terminal cell is one
// unit of the slider layout.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cogentcore.org/rangeslider/config"
	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/slider"
)

// SettingsMsg is sent to the program when the settings have been reloaded.
type SettingsMsg struct {
	Settings *config.Settings
}

// Model is the bubbletea model hosting one range slider.
type Model struct {
	slider   *slider.RangeSlider
	settings *config.Settings
	keys     keyMap
	help     help.Model
	focused  bool

	// status is a one line message shown below the slider
	status string

	// err is whether the status is an error
	err bool

	// copyText writes text to the clipboard
	copyText func(text string) error
}

// New returns a new model hosting a slider with the given settings.
func New(s *config.Settings) (Model, error) {
	m := Model{
		slider:   slider.New(),
		keys:     newKeyMap(),
		help:     help.New(),
		focused:  true,
		copyText: clipboard.WriteAll,
	}
	err := m.apply(s)
	return m, err
}

// Slider returns the hosted slider.
func (m Model) Slider() *slider.RangeSlider {
	return m.slider
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.FocusMsg:
		m.focused = true
	case tea.BlurMsg:
		m.focused = false
		m.slider.CaptureLost()
	case SettingsMsg:
		if err := m.apply(msg.Settings); err != nil {
			m.setError(err)
		} else {
			m.setStatus("settings reloaded")
		}
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.copy):
		text := fmt.Sprintf("%g..%g", m.slider.LowerValue, m.slider.UpperValue)
		if err := m.copyText(text); err != nil {
			slog.Error("copy to clipboard failed", "err", err)
			m.setError(err)
		} else {
			m.setStatus("copied " + text)
		}
	default:
		if m.slider.KeyDown(chordOf(msg)) {
			m.status = ""
		}
	}
	return m, nil
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	pos := m.toSlider(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.inSlider(pos) {
			m.slider.PointerPressed(pos)
		}
	case tea.MouseActionMotion:
		m.slider.PointerMoved(pos)
	case tea.MouseActionRelease:
		m.slider.PointerReleased()
	}
}

// apply applies the settings and re-arranges the slider.
func (m *Model) apply(s *config.Settings) error {
	m.settings = s
	err := s.Apply(m.slider)
	m.slider.Arrange(s.Size())
	return err
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.err = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.err = true
}

// origin returns the screen cell of the slider's top left corner.
func (m *Model) origin() (x, y int) {
	x = m.flyoutColumns()
	y = 1 // title
	if m.slider.FlyoutPlacement() == slider.PlacementTop {
		y++
	}
	return
}

// toSlider converts a screen cell to the position of its center in the slider.
func (m *Model) toSlider(x, y int) geom.Vector2 {
	ox, oy := m.origin()
	return geom.Vec2(float64(x-ox)+0.5, float64(y-oy)+0.5)
}

// inSlider returns whether the given slider position is within its bounds.
func (m *Model) inSlider(pos geom.Vector2) bool {
	sz := m.settings.Size()
	return geom.B2(0, 0, sz.X, sz.Y).ContainsPoint(pos)
}
