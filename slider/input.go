// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"log/slog"
	"math"

	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/keymap"
	"cogentcore.org/rangeslider/track"
)

// Zones are the targets that a pointer drag can capture.
type Zones int32 //enums:enum -trim-prefix Zone

const (
	// ZoneNone is the zone when no drag is in progress.
	ZoneNone Zones = iota

	// ZoneLower is a press on the lower thumb.
	ZoneLower

	// ZoneUpper is a press on the upper thumb.
	ZoneUpper

	// ZoneInnerLower is a press between the thumbs, nearer the lower thumb.
	ZoneInnerLower

	// ZoneInnerUpper is a press between the thumbs, nearer the upper thumb.
	ZoneInnerUpper

	// ZoneOuterLower is a press outside the thumbs, beyond the lower thumb.
	ZoneOuterLower

	// ZoneOuterUpper is a press outside the thumbs, beyond the upper thumb.
	ZoneOuterUpper

	// ZoneOverlapped is a press on two overlapping thumbs,
	// resolved to a thumb by the direction of the first move.
	ZoneOverlapped

	// ZoneBoth is a press between the thumbs that moves the whole range.
	ZoneBoth
)

// IsInner returns whether the zone lies between the thumbs.
func (z Zones) IsInner() bool {
	return z == ZoneInnerLower || z == ZoneInnerUpper
}

// IsLower returns whether dragging in the zone moves the lower value.
func (z Zones) IsLower() bool {
	return z == ZoneLower || z == ZoneInnerLower || z == ZoneOuterLower
}

// IsUpper returns whether dragging in the zone moves the upper value.
func (z Zones) IsUpper() bool {
	return z == ZoneUpper || z == ZoneInnerUpper || z == ZoneOuterUpper
}

// PointerPressed starts a drag at the given position within the slider,
// capturing the zone under it. Unless the press is on overlapping thumbs,
// or between the thumbs with [Options.MoveWholeRange] on, the captured
// thumb moves to the position right away. It returns whether the press
// was handled, which requires the thumbs and an arranged track.
func (rs *RangeSlider) PointerPressed(pos geom.Vector2) bool {
	if !rs.hasThumbs() || !rs.PartsVisible() {
		return false
	}
	g := rs.Geometry()
	p := pos.Dim(rs.Orientation.Dim())
	rs.dragging = true
	rs.previous = g.ValueAt(p, track.AnyThumb)
	rs.zone = rs.zoneAt(&g, p)
	if rs.MoveWholeRange && rs.zone.IsInner() {
		rs.zone = ZoneBoth
	}
	slog.Debug("range slider captured", "slider", rs.Name, "zone", rs.zone, "value", rs.previous)
	if rs.zone != ZoneOverlapped && rs.zone != ZoneBoth {
		rs.moveTo(&g, p)
	}
	return true
}

// PointerMoved continues a drag at the given position.
// It returns whether a drag is in progress.
func (rs *RangeSlider) PointerMoved(pos geom.Vector2) bool {
	if !rs.dragging || !rs.hasThumbs() || !rs.PartsVisible() {
		return false
	}
	g := rs.Geometry()
	p := pos.Dim(rs.Orientation.Dim())
	if rs.zone == ZoneOverlapped {
		rs.resolveOverlap(g.ValueAt(p, track.AnyThumb))
	}
	rs.moveTo(&g, p)
	return true
}

// PointerReleased ends a drag. It returns whether a drag was in progress.
func (rs *RangeSlider) PointerReleased() bool {
	dragging := rs.dragging
	rs.endDrag()
	return dragging
}

// CaptureLost ends a drag when the host loses the pointer capture.
func (rs *RangeSlider) CaptureLost() {
	rs.endDrag()
}

func (rs *RangeSlider) endDrag() {
	rs.dragging = false
	rs.zone = ZoneNone
}

// zoneAt classifies a press at position p along the track.
func (rs *RangeSlider) zoneAt(g *track.Geometry, p float64) Zones {
	lo, up := g.LowerThumbOffset, g.UpperThumbOffset
	half := g.ThumbLength / 2
	if rs.IsThumbOverlapAllowed && geom.WithinTolerance(lo, up, Tolerance) {
		return ZoneOverlapped
	}
	switch {
	case math.Abs(lo+half-p) <= half:
		return ZoneLower
	case math.Abs(up+half-p) <= half:
		return ZoneUpper
	}
	// on an inverted axis the lower thumb is farther from the start
	inv := g.Params.Inverted()
	if math.Abs(lo-p) < math.Abs(up-p) {
		if (p < lo) != inv {
			return ZoneOuterLower
		}
		return ZoneInnerLower
	}
	if (p < up) == inv {
		return ZoneOuterUpper
	}
	return ZoneInnerUpper
}

// resolveOverlap picks the thumb to drag out of an overlapped press,
// once the pointer has moved far enough to tell the direction.
func (rs *RangeSlider) resolveOverlap(value float64) {
	delta := rs.previous - value
	if math.Abs(delta) < Tolerance {
		return
	}
	if delta > 0 {
		rs.zone = ZoneLower
	} else {
		rs.zone = ZoneUpper
	}
	slog.Debug("range slider resolved overlap", "slider", rs.Name, "zone", rs.zone)
}

// moveTo drags the captured zone to position p.
func (rs *RangeSlider) moveTo(g *track.Geometry, p float64) {
	switch {
	case rs.zone.IsLower():
		rs.setLower(rs.SnapToTick(g.ValueAt(p, track.LowerThumb)))
	case rs.zone.IsUpper():
		rs.setUpper(rs.SnapToTick(g.ValueAt(p, track.UpperThumb)))
	case rs.zone == ZoneBoth:
		rs.moveBoth(g.ValueAt(p, track.AnyThumb))
	}
}

// moveBoth moves both values by the change since the previous sample.
// A move that would push either value past its bound is refused,
// keeping the previous sample so that the range follows once the
// pointer comes back.
func (rs *RangeSlider) moveBoth(value float64) {
	delta := value - rs.previous
	step := delta
	if rs.IsSnapToTickEnabled {
		step = rs.SnapToTick(math.Abs(delta) / 2)
		if step <= 0 {
			return
		}
		step *= geom.Sign(delta)
	}
	if step == 0 {
		return
	}
	if geom.LessThan(rs.LowerValue+step, rs.Minimum) || geom.GreaterThan(rs.UpperValue+step, rs.Maximum) {
		slog.Debug("range slider refused move", "slider", rs.Name, "delta", step)
		return
	}
	rs.previous = value
	lower, upper := rs.LowerValue+step, rs.UpperValue+step
	rs.change(func() {
		// move the leading value first so the trailing one is not clamped
		if step > 0 {
			rs.SetUpperValue(upper)
			rs.SetLowerValue(lower)
		} else {
			rs.SetLowerValue(lower)
			rs.SetUpperValue(upper)
		}
	})
}

// KeyDown handles the given key chord, returning whether it was handled.
// Chords with modifiers are never handled.
func (rs *RangeSlider) KeyDown(chord keymap.Chord) bool {
	if chord.HasModifiers() {
		return false
	}
	return rs.KeyFunction(rs.KeyMap.Of(chord))
}

// KeyFunction performs the given key function, returning whether it
// was handled. The arrow keys step by [rangemodel.Model.SmallStep] and
// the page keys by [rangemodel.Model.LargeStep], both moving the lower
// value. Home moves the lower value to the Minimum and End moves the
// upper value to the Maximum.
func (rs *RangeSlider) KeyFunction(kf keymap.Functions) bool {
	sign := 1.0
	if rs.IsDirectionReversed {
		sign = -1
	}
	switch kf {
	case keymap.MoveDown, keymap.MoveLeft:
		rs.MoveToNextTick(-sign * rs.SmallStep)
	case keymap.MoveUp, keymap.MoveRight:
		rs.MoveToNextTick(sign * rs.SmallStep)
	case keymap.PageUp:
		rs.MoveToNextTick(sign * rs.LargeStep)
	case keymap.PageDown:
		rs.MoveToNextTick(-sign * rs.LargeStep)
	case keymap.Home:
		rs.setLower(rs.Minimum)
	case keymap.End:
		rs.setUpper(rs.Maximum)
	default:
		return false
	}
	return true
}
