// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the visual state flags of a range slider,
// which a host uses to select the styles it renders with.
package states

import "cogentcore.org/rangeslider/enums"

// States are the visual states a range slider can be in.
// Several of them are typically active at once.
type States int64 //enums:bitflag

const (
	// Horizontal is set when the slider is laid out along the X axis.
	Horizontal States = iota

	// Vertical is set when the slider is laid out along the Y axis.
	Vertical

	// Pressed is set while a pointer drag is captured by the slider.
	Pressed

	// Focused is set when the slider receives keyboard input.
	Focused

	// Reversed is set when the direction of increasing value is reversed.
	Reversed

	// Overlapped is set when overlap is allowed and both thumbs
	// occupy the same position.
	Overlapped

	// Snapping is set when values snap to ticks.
	Snapping

	// Collapsed is set when the track could not be arranged,
	// so the thumbs and track segments are hidden.
	Collapsed
)

// Is is a shortcut for HasFlag for States
func (st States) Is(flag enums.BitFlag) bool {
	return st.HasFlag(flag)
}

// IsOrientation returns whether exactly one of [Horizontal]
// and [Vertical] is set, which holds for every computed state.
func (st States) IsOrientation() bool {
	return st.HasFlag(Horizontal) != st.HasFlag(Vertical)
}
