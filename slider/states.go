// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/states"
	"cogentcore.org/rangeslider/track"
)

// VisualState is the input to [ComputeVisualFlags].
type VisualState struct {
	Orientation track.Orientations
	Reversed    bool
	Pressed     bool
	Focused     bool
	Overlapped  bool
	Snapping    bool
	Collapsed   bool
}

// ComputeVisualFlags returns the visual state flags for the given state.
// Exactly one of [states.Horizontal] and [states.Vertical] is always set.
func ComputeVisualFlags(vs VisualState) states.States {
	var st states.States
	st.SetFlag(vs.Orientation == track.Vertical, states.Vertical)
	st.SetFlag(vs.Orientation != track.Vertical, states.Horizontal)
	st.SetFlag(vs.Reversed, states.Reversed)
	st.SetFlag(vs.Pressed, states.Pressed)
	st.SetFlag(vs.Focused, states.Focused)
	st.SetFlag(vs.Overlapped, states.Overlapped)
	st.SetFlag(vs.Snapping, states.Snapping)
	st.SetFlag(vs.Collapsed, states.Collapsed)
	return st
}

// VisualState returns the current visual state of the slider.
// Focus is tracked by the host.
func (rs *RangeSlider) VisualState(focused bool) VisualState {
	g := rs.Geometry()
	return VisualState{
		Orientation: rs.Orientation,
		Reversed:    rs.IsDirectionReversed,
		Pressed:     rs.dragging,
		Focused:     focused,
		Overlapped:  rs.IsThumbOverlapAllowed && g.Arranged && geom.WithinTolerance(g.LowerThumbOffset, g.UpperThumbOffset, Tolerance),
		Snapping:    rs.IsSnapToTickEnabled,
		Collapsed:   rs.arranged && !rs.PartsVisible(),
	}
}

// States returns the visual state flags of the slider.
func (rs *RangeSlider) States(focused bool) states.States {
	return ComputeVisualFlags(rs.VisualState(focused))
}
