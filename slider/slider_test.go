// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"testing"

	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/keymap"
	"cogentcore.org/rangeslider/states"
	"cogentcore.org/rangeslider/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// newSlider returns an arranged slider with 10 dot thumbs
// on a 110 dot track, selecting lower..upper within 0..100.
func newSlider(t *testing.T, o track.Orientations, overlap bool, lower, upper float64) *RangeSlider {
	t.Helper()
	rs := New()
	rs.Orientation = o
	rs.IsThumbOverlapAllowed = overlap
	rs.Assign(0, 100, lower, upper)
	rs.SetParts(NewParts(geom.Vec2(10, 10)))
	size := geom.Vec2(110, 10)
	if o == track.Vertical {
		size = geom.Vec2(10, 110)
	}
	require.True(t, rs.Arrange(size))
	return rs
}

// at returns the pointer position that maps to the given value.
func at(rs *RangeSlider, value float64, th track.Thumbs) geom.Vector2 {
	g := rs.Geometry()
	pos := geom.Vec2(5, 5)
	pos.SetDim(rs.Orientation.Dim(), g.ThumbCenter(value, th))
	return pos
}

func TestNew(t *testing.T) {
	rs := New()
	assert.True(t, rs.IsInitialized())
	assert.Equal(t, 100.0, rs.Maximum)
	assert.False(t, rs.IsScrollbar())
	assert.Equal(t, ZoneNone, rs.Zone())
	assert.Equal(t, "(lower: 0, upper: 0, minimum: 0, maximum: 100)", rs.Tooltip())

	rs.Assign(0, 100, 20, 60.5)
	assert.Equal(t, "(lower: 20, upper: 60.5, minimum: 0, maximum: 100)", rs.Tooltip())
}

func TestSnapToTick(t *testing.T) {
	rs := New()
	assert.Equal(t, 18.0, rs.SnapToTick(18))

	rs.IsSnapToTickEnabled = true
	rs.Ticks = []float64{50, 0, 25, 10}
	tests := []struct {
		value, expected float64
	}{
		{18, 25},
		{17.5, 25},
		{17, 10},
		{10, 10},
		{5, 10},
		{4, 0},
		{60, 50},
		{80, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, rs.SnapToTick(tt.value), "snap %g", tt.value)
	}

	rs.Ticks = nil
	rs.TickFrequency = 5
	assert.InDelta(t, 10.0, rs.SnapToTick(12), delta)
	assert.InDelta(t, 15.0, rs.SnapToTick(13), delta)
	assert.InDelta(t, 100.0, rs.SnapToTick(98), delta)

	// no ticks: only the bounds
	rs.TickFrequency = 0
	assert.Equal(t, 0.0, rs.SnapToTick(49))
	assert.Equal(t, 100.0, rs.SnapToTick(50))
}

func TestMoveToNextTick(t *testing.T) {
	rs := New()
	rs.Assign(0, 100, 10, 90)
	rs.MoveToNextTick(1)
	assert.Equal(t, 11.0, rs.LowerValue)
	rs.MoveToNextTick(0)
	assert.Equal(t, 11.0, rs.LowerValue)

	rs.IsSnapToTickEnabled = true
	rs.Ticks = []float64{0, 10, 25, 50}
	rs.SetLowerValue(10)
	rs.MoveToNextTick(1)
	assert.Equal(t, 25.0, rs.LowerValue)
	rs.MoveToNextTick(-1)
	assert.Equal(t, 10.0, rs.LowerValue)
	rs.MoveToNextTick(-1)
	assert.Equal(t, 0.0, rs.LowerValue)
	rs.MoveToNextTick(-1)
	assert.Equal(t, 0.0, rs.LowerValue)

	rs.Ticks = nil
	rs.TickFrequency = 5
	rs.SetLowerValue(10)
	rs.MoveToNextTick(-1)
	assert.InDelta(t, 5.0, rs.LowerValue, delta)
	rs.MoveToNextTick(1)
	assert.InDelta(t, 10.0, rs.LowerValue, delta)
	rs.MoveToNextTick(10)
	assert.InDelta(t, 20.0, rs.LowerValue, delta)
}

func TestTickValues(t *testing.T) {
	rs := New()
	rs.Assign(0, 20, 0, 20)
	assert.Empty(t, rs.TickValues())

	rs.TickFrequency = 5
	assert.Equal(t, []float64{0, 5, 10, 15, 20}, rs.TickValues())

	rs.Ticks = []float64{30, 12, -1, 3}
	assert.Equal(t, []float64{3, 12}, rs.TickValues())

	rs.Ticks = nil
	rs.TickFrequency = 1e-9
	assert.Len(t, rs.TickValues(), 1000)
}

func TestKeyboard(t *testing.T) {
	rs := New()
	rs.Assign(0, 100, 20, 60)
	var events []ChangeEvent
	rs.OnChange(func(e ChangeEvent) {
		events = append(events, e)
	})

	tests := []struct {
		chord    keymap.Chord
		reversed bool
		handled  bool
		lower    float64
		upper    float64
	}{
		{"RightArrow", false, true, 21, 60},
		{"UpArrow", false, true, 22, 60},
		{"LeftArrow", false, true, 21, 60},
		{"DownArrow", false, true, 20, 60},
		{"PageUp", false, true, 30, 60},
		{"PageDown", false, true, 20, 60},
		{"RightArrow", true, true, 19, 60},
		{"DownArrow", true, true, 20, 60},
		{"PageUp", true, true, 10, 60},
		{"PageDown", true, true, 20, 60},
		{"Control+RightArrow", false, false, 20, 60},
		{"Tab", false, false, 20, 60},
		{"Home", false, true, 0, 60},
		{"End", false, true, 0, 100},
	}
	for _, tt := range tests {
		rs.IsDirectionReversed = tt.reversed
		assert.Equal(t, tt.handled, rs.KeyDown(tt.chord), "handled %s", tt.chord)
		assert.Equal(t, tt.lower, rs.LowerValue, "lower after %s", tt.chord)
		assert.Equal(t, tt.upper, rs.UpperValue, "upper after %s", tt.chord)
	}
	require.Len(t, events, 12)
	assert.Equal(t, ChangeEvent{OldLower: 20, OldUpper: 60, Lower: 21, Upper: 60}, events[0])
	assert.Equal(t, ChangeEvent{OldLower: 0, OldUpper: 60, Lower: 0, Upper: 100}, events[11])

	// stepping stops at the upper value
	rs.SetLowerValue(95)
	rs.KeyDown("PageUp")
	assert.Equal(t, 100.0, rs.LowerValue)
}

func TestZones(t *testing.T) {
	tests := []struct {
		name     string
		o        track.Orientations
		pos      float64
		expected Zones
	}{
		{"lower thumb", track.Horizontal, 23, ZoneLower},
		{"upper thumb", track.Horizontal, 69, ZoneUpper},
		{"outer lower", track.Horizontal, 2, ZoneOuterLower},
		{"inner lower", track.Horizontal, 40, ZoneInnerLower},
		{"inner upper", track.Horizontal, 45, ZoneInnerUpper},
		{"outer upper", track.Horizontal, 100, ZoneOuterUpper},
		{"vertical lower thumb", track.Vertical, 87, ZoneLower},
		{"vertical upper thumb", track.Vertical, 41, ZoneUpper},
		{"vertical outer lower", track.Vertical, 100, ZoneOuterLower},
		{"vertical inner lower", track.Vertical, 60, ZoneInnerLower},
		{"vertical inner upper", track.Vertical, 50, ZoneInnerUpper},
		{"vertical outer upper", track.Vertical, 10, ZoneOuterUpper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newSlider(t, tt.o, false, 20, 60)
			g := rs.Geometry()
			assert.Equal(t, tt.expected, rs.zoneAt(&g, tt.pos))
		})
	}

	rs := newSlider(t, track.Horizontal, true, 30, 30)
	g := rs.Geometry()
	assert.Equal(t, ZoneOverlapped, rs.zoneAt(&g, 90))
}

func TestPointerDrag(t *testing.T) {
	rs := newSlider(t, track.Horizontal, false, 20, 60)
	var events []ChangeEvent
	rs.OnChange(func(e ChangeEvent) {
		events = append(events, e)
	})

	// press on the lower thumb does not move it
	require.True(t, rs.PointerPressed(at(rs, 20, track.LowerThumb)))
	assert.Equal(t, ZoneLower, rs.Zone())
	assert.True(t, rs.IsDragging())
	assert.InDelta(t, 20.0, rs.LowerValue, delta)
	assert.True(t, rs.PointerMoved(at(rs, 40, track.LowerThumb)))
	assert.InDelta(t, 40.0, rs.LowerValue, delta)
	assert.Equal(t, 60.0, rs.UpperValue)
	// dragging past the upper value stops there
	rs.PointerMoved(at(rs, 80, track.LowerThumb))
	assert.Equal(t, 60.0, rs.LowerValue)
	assert.True(t, rs.PointerReleased())
	assert.Equal(t, ZoneNone, rs.Zone())
	assert.False(t, rs.PointerReleased())
	assert.False(t, rs.PointerMoved(at(rs, 10, track.LowerThumb)))
	assert.Len(t, events, 2)

	// press beyond the upper thumb moves it right away
	rs.SetLowerValue(20)
	rs.Arrange(geom.Vec2(110, 10))
	require.True(t, rs.PointerPressed(at(rs, 80, track.UpperThumb)))
	assert.Equal(t, ZoneOuterUpper, rs.Zone())
	assert.InDelta(t, 80.0, rs.UpperValue, delta)
	rs.CaptureLost()
	assert.Equal(t, ZoneNone, rs.Zone())
	assert.False(t, rs.IsDragging())
}

func TestPointerSnapping(t *testing.T) {
	rs := newSlider(t, track.Horizontal, true, 20, 60)
	rs.IsSnapToTickEnabled = true
	rs.TickFrequency = 10
	rs.PointerPressed(at(rs, 20, track.LowerThumb))
	rs.PointerMoved(at(rs, 33, track.LowerThumb))
	assert.InDelta(t, 30.0, rs.LowerValue, delta)
	rs.PointerMoved(at(rs, 36, track.LowerThumb))
	assert.InDelta(t, 40.0, rs.LowerValue, delta)
	rs.PointerReleased()
}

func TestOverlapDisambiguation(t *testing.T) {
	rs := newSlider(t, track.Horizontal, true, 30, 30)
	require.True(t, rs.PointerPressed(at(rs, 30, track.AnyThumb)))
	assert.Equal(t, ZoneOverlapped, rs.Zone())
	assert.Equal(t, 30.0, rs.LowerValue)
	assert.Equal(t, 30.0, rs.UpperValue)

	// no movement keeps the zone undecided
	rs.PointerMoved(at(rs, 30, track.AnyThumb))
	assert.Equal(t, ZoneOverlapped, rs.Zone())

	rs.PointerMoved(at(rs, 20, track.AnyThumb))
	assert.Equal(t, ZoneLower, rs.Zone())
	assert.InDelta(t, 20.0, rs.LowerValue, delta)
	assert.Equal(t, 30.0, rs.UpperValue)
	rs.PointerReleased()

	rs = newSlider(t, track.Horizontal, true, 30, 30)
	rs.PointerPressed(at(rs, 30, track.AnyThumb))
	rs.PointerMoved(at(rs, 40, track.AnyThumb))
	assert.Equal(t, ZoneUpper, rs.Zone())
	assert.InDelta(t, 40.0, rs.UpperValue, delta)
	assert.Equal(t, 30.0, rs.LowerValue)
}

func TestMoveWholeRange(t *testing.T) {
	rs := newSlider(t, track.Horizontal, true, 10, 90)
	rs.MoveWholeRange = true
	require.True(t, rs.PointerPressed(at(rs, 50, track.AnyThumb)))
	assert.Equal(t, ZoneBoth, rs.Zone())
	assert.Equal(t, 10.0, rs.LowerValue)
	assert.Equal(t, 90.0, rs.UpperValue)

	// +15 would push the upper value past the maximum
	rs.PointerMoved(at(rs, 65, track.AnyThumb))
	assert.Equal(t, 10.0, rs.LowerValue)
	assert.Equal(t, 90.0, rs.UpperValue)

	rs.PointerMoved(at(rs, 60, track.AnyThumb))
	assert.InDelta(t, 20.0, rs.LowerValue, delta)
	assert.InDelta(t, 100.0, rs.UpperValue, delta)
	assert.Equal(t, ZoneBoth, rs.Zone())

	rs.PointerMoved(at(rs, 55, track.AnyThumb))
	assert.InDelta(t, 15.0, rs.LowerValue, delta)
	assert.InDelta(t, 95.0, rs.UpperValue, delta)
	rs.PointerReleased()

	// with snapping, the step is half the change snapped to a tick
	rs = newSlider(t, track.Horizontal, true, 20, 40)
	rs.MoveWholeRange = true
	rs.IsSnapToTickEnabled = true
	rs.TickFrequency = 10
	rs.PointerPressed(at(rs, 30, track.AnyThumb))
	assert.Equal(t, ZoneBoth, rs.Zone())
	rs.PointerMoved(at(rs, 40, track.AnyThumb))
	assert.InDelta(t, 30.0, rs.LowerValue, delta)
	assert.InDelta(t, 50.0, rs.UpperValue, delta)

	// outside the thumbs, whole range mode drags a single thumb
	rs = newSlider(t, track.Horizontal, true, 20, 40)
	rs.MoveWholeRange = true
	rs.PointerPressed(at(rs, 80, track.AnyThumb))
	assert.Equal(t, ZoneOuterUpper, rs.Zone())
	assert.InDelta(t, 80.0, rs.UpperValue, delta)
}

func TestMissingParts(t *testing.T) {
	rs := New()
	rs.Assign(0, 100, 20, 60)
	assert.False(t, rs.Arrange(geom.Vec2(110, 10)))
	assert.False(t, rs.PointerPressed(geom.Vec2(50, 5)))
	assert.False(t, rs.PointerMoved(geom.Vec2(60, 5)))
	assert.Equal(t, geom.Vector2{}, rs.Measure())
	assert.True(t, rs.KeyDown("End"))
	assert.Equal(t, 100.0, rs.UpperValue)

	pt := NewParts(geom.Vec2(10, 10))
	pt.Before = nil
	rs.SetParts(pt)
	assert.True(t, rs.Arrange(geom.Vec2(110, 10)))
	assert.True(t, rs.Parts.After.Visible)
}

func TestArrange(t *testing.T) {
	rs := newSlider(t, track.Horizontal, false, 20, 60)
	pt := rs.Parts
	assert.True(t, pt.LowerThumb.Visible)
	assert.InDelta(t, 18.0, pt.LowerThumb.Bounds.Min.X, delta)
	assert.InDelta(t, 28.0, pt.LowerThumb.Bounds.Max.X, delta)
	assert.InDelta(t, 64.0, pt.UpperThumb.Bounds.Min.X, delta)
	assert.Equal(t, 10.0, pt.UpperThumb.Bounds.Max.Y)
	assert.InDelta(t, 23.0, pt.Foreground.Bounds.Min.X, delta)
	assert.InDelta(t, 69.0, pt.Foreground.Bounds.Max.X, delta)
	assert.Equal(t, geom.B2(5, 0, 105, 10), pt.Background.Bounds)
	assert.Equal(t, pt.LowerThumb.Bounds.MulScalar(2), rs.TemplateSettings.ThumbBounds)
	assert.Equal(t, geom.Vec2(20, 10), rs.Measure())

	rs.IsThumbOverlapAllowed = true
	rs.Arrange(geom.Vec2(110, 10))
	assert.Equal(t, pt.LowerThumb.Bounds, rs.TemplateSettings.ThumbBounds)

	// keyboard input re-arranges
	rs.KeyDown("Home")
	assert.Equal(t, 0.0, rs.Parts.LowerThumb.Bounds.Min.X)
}

func TestScrollbarCollapsed(t *testing.T) {
	rs := newSlider(t, track.Horizontal, true, 20, 60)
	rs.Viewport = 25
	assert.True(t, rs.IsScrollbar())
	require.True(t, rs.Arrange(geom.Vec2(110, 10)))
	assert.InDelta(t, 22.0, rs.Geometry().ThumbLength, delta)
	assert.Equal(t, geom.Vec2(0, 10), rs.Measure())

	rs.Viewport = 100
	assert.False(t, rs.Arrange(geom.Vec2(110, 10)))
	assert.False(t, rs.PartsVisible())
	assert.False(t, rs.Parts.LowerThumb.Visible)
	assert.False(t, rs.Parts.Foreground.Visible)
	assert.True(t, rs.States(false).Is(states.Collapsed))
	assert.False(t, rs.PointerPressed(geom.Vec2(50, 5)))
}

func TestPlacement(t *testing.T) {
	tests := []struct {
		o        track.Orientations
		f        FlyoutPlacements
		expected Placements
	}{
		{track.Horizontal, FlyoutNone, PlacementNone},
		{track.Horizontal, FlyoutTopLeft, PlacementTop},
		{track.Horizontal, FlyoutBottomRight, PlacementBottom},
		{track.Vertical, FlyoutNone, PlacementNone},
		{track.Vertical, FlyoutTopLeft, PlacementLeft},
		{track.Vertical, FlyoutBottomRight, PlacementRight},
	}
	for _, tt := range tests {
		p, err := Placement(tt.o, tt.f)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, p, "%v %v", tt.o, tt.f)
	}

	_, err := Placement(track.Horizontal, FlyoutPlacements(7))
	assert.Error(t, err)
	_, err = Placement(track.Orientations(3), FlyoutTopLeft)
	assert.Error(t, err)

	rs := New()
	assert.NoError(t, rs.SetThumbFlyoutPlacement(FlyoutTopLeft))
	assert.Equal(t, PlacementTop, rs.FlyoutPlacement())
	assert.Error(t, rs.SetThumbFlyoutPlacement(FlyoutPlacements(7)))
	assert.Equal(t, FlyoutTopLeft, rs.ThumbFlyoutPlacement())
	rs.Orientation = track.Vertical
	assert.Equal(t, PlacementLeft, rs.FlyoutPlacement())
}

func TestComputeVisualFlags(t *testing.T) {
	st := ComputeVisualFlags(VisualState{})
	assert.Equal(t, "Horizontal", st.String())

	st = ComputeVisualFlags(VisualState{Orientation: track.Vertical, Pressed: true, Snapping: true})
	assert.True(t, st.Is(states.Vertical))
	assert.False(t, st.Is(states.Horizontal))
	assert.True(t, st.Is(states.Pressed))
	assert.True(t, st.Is(states.Snapping))
	assert.False(t, st.Is(states.Focused))
	assert.True(t, st.IsOrientation())

	rs := newSlider(t, track.Horizontal, true, 30, 30)
	st = rs.States(true)
	assert.Equal(t, "Horizontal|Focused|Overlapped", st.String())
	rs.PointerPressed(at(rs, 30, track.AnyThumb))
	assert.True(t, rs.States(false).Is(states.Pressed))
}
