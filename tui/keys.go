// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cogentcore.org/rangeslider/keymap"
)

// keyMap are the key bindings of the host itself; the slider keys
// are only listed here for help, and are handled through [keymap].
type keyMap struct {
	step key.Binding
	page key.Binding
	ends key.Binding
	copy key.Binding
	help key.Binding
	quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		step: key.NewBinding(
			key.WithKeys("left", "right", "up", "down"),
			key.WithHelp("←/→", "step"),
		),
		page: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "page"),
		),
		ends: key.NewBinding(
			key.WithKeys("home", "end"),
			key.WithHelp("home/end", "min/max"),
		),
		copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy range"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.step, k.copy, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.step, k.page, k.ends},
		{k.copy, k.help, k.quit},
	}
}

// keyNames are the chord names of the terminal keys that the slider handles.
var keyNames = map[tea.KeyType]keymap.Chord{
	tea.KeyUp:         "UpArrow",
	tea.KeyDown:       "DownArrow",
	tea.KeyLeft:       "LeftArrow",
	tea.KeyRight:      "RightArrow",
	tea.KeyPgUp:       "PageUp",
	tea.KeyPgDown:     "PageDown",
	tea.KeyHome:       "Home",
	tea.KeyEnd:        "End",
	tea.KeyShiftUp:    "Shift+UpArrow",
	tea.KeyShiftDown:  "Shift+DownArrow",
	tea.KeyShiftLeft:  "Shift+LeftArrow",
	tea.KeyShiftRight: "Shift+RightArrow",
	tea.KeyCtrlUp:     "Control+UpArrow",
	tea.KeyCtrlDown:   "Control+DownArrow",
	tea.KeyCtrlLeft:   "Control+LeftArrow",
	tea.KeyCtrlRight:  "Control+RightArrow",
	tea.KeyCtrlPgUp:   "Control+PageUp",
	tea.KeyCtrlPgDown: "Control+PageDown",
	tea.KeyShiftHome:  "Shift+Home",
	tea.KeyShiftEnd:   "Shift+End",
	tea.KeyCtrlHome:   "Control+Home",
	tea.KeyCtrlEnd:    "Control+End",
}

// chordOf returns the chord for the given key message.
func chordOf(msg tea.KeyMsg) keymap.Chord {
	ch, ok := keyNames[msg.Type]
	if !ok {
		return keymap.Chord(msg.String())
	}
	if msg.Alt {
		ch = "Alt+" + ch
	}
	return ch
}
