// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"math"
	"slices"

	"cogentcore.org/rangeslider/geom"
)

// maxTicks is the maximum number of ticks returned by [RangeSlider.TickValues].
const maxTicks = 1000

// SnapToTick returns the tick closest to the given value when
// [Options.IsSnapToTickEnabled] is on, and the value itself otherwise.
// Explicit [Options.Ticks] take precedence over [Options.TickFrequency].
// The Minimum and Maximum always act as ticks, and ties snap upward.
func (rs *RangeSlider) SnapToTick(value float64) float64 {
	if !rs.IsSnapToTickEnabled {
		return value
	}
	prev := rs.Minimum
	next := rs.Maximum
	switch {
	case len(rs.Ticks) > 0:
		for _, tick := range rs.Ticks {
			if geom.AreClose(tick, value) {
				return value
			}
			if geom.LessThan(tick, value) && geom.GreaterThan(tick, prev) {
				prev = tick
			} else if geom.GreaterThan(tick, value) && geom.LessThan(tick, next) {
				next = tick
			}
		}
	case geom.GreaterThan(rs.TickFrequency, 0):
		prev = rs.Minimum + math.Round((value-rs.Minimum)/rs.TickFrequency)*rs.TickFrequency
		next = min(rs.Maximum, prev+rs.TickFrequency)
	}
	if geom.GreaterThanOrClose(value, (prev+next)*0.5) {
		return next
	}
	return prev
}

// MoveToNextTick moves the lower value by the given signed amount,
// snapped to a tick. When snapping would land back on the current
// value, it moves to the next distinct tick in that direction instead.
func (rs *RangeSlider) MoveToNextTick(direction float64) {
	if direction == 0 {
		return
	}
	value := rs.LowerValue
	next := rs.SnapToTick(geom.Clamp(value+direction, rs.Minimum, rs.Maximum))
	up := direction > 0

	same := geom.WithinTolerance(next, value, Tolerance)
	atEnd := (up && geom.WithinTolerance(value, rs.Maximum, Tolerance)) ||
		(!up && geom.WithinTolerance(value, rs.Minimum, Tolerance))
	if same && !atEnd {
		switch {
		case len(rs.Ticks) > 0:
			for _, tick := range rs.Ticks {
				// the nearest tick beyond value, in the direction of travel
				stuck := geom.WithinTolerance(next, value, Tolerance)
				if up && geom.GreaterThan(tick, value) && (geom.LessThan(tick, next) || stuck) ||
					!up && geom.LessThan(tick, value) && (geom.GreaterThan(tick, next) || stuck) {
					next = tick
				}
			}
		case geom.GreaterThan(rs.TickFrequency, 0):
			n := math.Round((value - rs.Minimum) / rs.TickFrequency)
			if up {
				n++
			} else {
				n--
			}
			next = rs.Minimum + n*rs.TickFrequency
		}
	}
	if !geom.WithinTolerance(next, value, Tolerance) {
		rs.setLower(next)
	}
}

// TickValues returns the ticks within the Minimum and Maximum in
// increasing order: the explicit [Options.Ticks] if there are any,
// and otherwise every [Options.TickFrequency] starting at the Minimum.
// It returns at most 1000 ticks.
func (rs *RangeSlider) TickValues() []float64 {
	var ticks []float64
	switch {
	case len(rs.Ticks) > 0:
		for _, tick := range rs.Ticks {
			if geom.GreaterThanOrClose(tick, rs.Minimum) && geom.LessThanOrClose(tick, rs.Maximum) {
				ticks = append(ticks, tick)
			}
		}
		slices.Sort(ticks)
	case geom.GreaterThan(rs.TickFrequency, 0):
		for i := 0; i < maxTicks; i++ {
			tick := rs.Minimum + float64(i)*rs.TickFrequency
			if geom.GreaterThan(tick, rs.Maximum) {
				break
			}
			ticks = append(ticks, tick)
		}
	}
	if len(ticks) > maxTicks {
		ticks = ticks[:maxTicks]
	}
	return ticks
}
