// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keymap maps keyboard chords to the functions
// they perform on a range slider.
package keymap

import (
	"slices"
	"strings"
)

// Functions are the functions that keyboard events can perform on a slider.
type Functions int32 //enums:enum

const (
	None Functions = iota
	MoveUp
	MoveDown
	MoveRight
	MoveLeft
	PageUp
	PageDown
	Home // lower value to minimum
	End  // upper value to maximum
)

// Chord represents the key chord associated with a given key function.
// Modifiers come first, joined with +, followed by the key name,
// as in "Control+LeftArrow".
type Chord string

// HasModifiers returns whether the chord includes any modifier keys.
func (ch Chord) HasModifiers() bool {
	return strings.Contains(string(ch), "+")
}

// Map is a map between a key sequence (chord) and a specific key
// function. This mapping must be unique, in that each chord has a unique
// function, but multiple chords can trigger the same function.
type Map map[Chord]Functions

// DefaultMap returns a new copy of the default key map, which
// uses the arrow keys, PageUp, PageDown, Home, and End.
func DefaultMap() Map {
	return Map{
		"UpArrow":    MoveUp,
		"KeypadUp":   MoveUp,
		"DownArrow":  MoveDown,
		"KeypadDown": MoveDown,
		"RightArrow": MoveRight,
		"LeftArrow":  MoveLeft,
		"PageUp":     PageUp,
		"PageDown":   PageDown,
		"Home":       Home,
		"End":        End,
	}
}

// Of translates the given chord into a key function,
// returning [None] when the chord is not mapped.
func (km Map) Of(chord Chord) Functions {
	if chord == "" {
		return None
	}
	return km[chord]
}

// ChordsFor returns all of the chords that trigger the given
// function, in sorted order.
func (km Map) ChordsFor(kf Functions) []Chord {
	var chs []Chord
	for ch, f := range km {
		if f == kf {
			chs = append(chs, ch)
		}
	}
	slices.Sort(chs)
	return chs
}
