// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slider provides RangeSlider, a control for selecting a lower
// and upper value along a range by dragging two thumbs on a track,
// with optional snapping to ticks and keyboard support.
// It does not render anything itself: a host supplies the [Parts],
// calls [RangeSlider.Arrange] with the available size, renders the
// arranged parts, and forwards pointer and key events.
package slider

import (
	"fmt"
	"math"

	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/keymap"
	"cogentcore.org/rangeslider/rangemodel"
	"cogentcore.org/rangeslider/track"
)

// Tolerance is the distance below which two thumb offsets or two
// values are considered to be the same.
const Tolerance = 0.0001

// Options are the input properties of a [RangeSlider].
type Options struct {

	// Orientation is the axis of the slider.
	Orientation track.Orientations

	// IsDirectionReversed is whether the direction of increasing value
	// is reversed: right to left for horizontal sliders and top to
	// bottom for vertical ones.
	IsDirectionReversed bool

	// IsThumbOverlapAllowed is whether both thumbs may occupy the same
	// space. When it is false, the thumbs are laid out side by side.
	IsThumbOverlapAllowed bool

	// MoveWholeRange is whether pressing between the thumbs and dragging
	// moves both values together.
	MoveWholeRange bool

	// IsSnapToTickEnabled is whether values snap to the nearest tick.
	IsSnapToTickEnabled bool

	// TickFrequency is the interval between ticks, starting at the Minimum.
	// It is only used when there are no explicit Ticks.
	TickFrequency float64

	// Ticks are explicit tick values, in any order.
	Ticks []float64

	// Viewport is the amount of content visible when the slider is used
	// as a scrollbar, which determines the thumb length.
	// It is NaN for a regular slider.
	Viewport float64 `copier:"-"`
}

// Thumb is a draggable thumb part supplied by the host.
type Thumb struct {

	// Size is the desired size of the thumb.
	Size geom.Vector2

	// Bounds are the arranged bounds within the slider.
	Bounds geom.Box2

	// Visible is whether the thumb should be shown.
	Visible bool
}

// Segment is a track segment part supplied by the host.
type Segment struct {
	Bounds  geom.Box2
	Visible bool
}

// Parts are the template parts of a [RangeSlider]. The thumbs are
// required for arranging and dragging; any segment may be nil.
type Parts struct {
	LowerThumb *Thumb
	UpperThumb *Thumb
	Background *Segment
	Before     *Segment
	Foreground *Segment
	After      *Segment
}

// NewParts returns a complete set of parts with thumbs of the given size.
func NewParts(thumbSize geom.Vector2) Parts {
	return Parts{
		LowerThumb: &Thumb{Size: thumbSize},
		UpperThumb: &Thumb{Size: thumbSize},
		Background: &Segment{},
		Before:     &Segment{},
		Foreground: &Segment{},
		After:      &Segment{},
	}
}

// TemplateSettings are values computed for use by a host's styles.
type TemplateSettings struct {

	// ThumbBounds are the lower thumb bounds, doubled
	// when the thumbs cannot overlap.
	ThumbBounds geom.Box2
}

// ChangeEvent describes a change of the selected range
// caused by pointer or keyboard input.
type ChangeEvent struct {
	OldLower, OldUpper float64
	Lower, Upper       float64
}

// RangeSlider is a control for selecting a range between two values.
// The bounds and steps are in the embedded [rangemodel.Model].
type RangeSlider struct {
	*rangemodel.Model
	Options

	// Parts are the template parts supplied by the host.
	Parts Parts

	// KeyMap maps key chords to the functions they perform.
	// It defaults to [keymap.DefaultMap].
	KeyMap keymap.Map

	// TemplateSettings are updated on every arrange.
	TemplateSettings TemplateSettings

	// Name is an optional name used in log messages.
	Name string

	track track.Track

	// size is the last arranged size, used to re-arrange after input
	size geom.Vector2

	// arranged is whether Arrange has been called with thumbs present
	arranged bool

	// zone is the current drag target
	zone Zones

	// dragging is whether a pointer drag is in progress
	dragging bool

	// previous is the value at the previous pointer sample
	previous float64

	flyout   FlyoutPlacements
	onChange []func(e ChangeEvent)
}

// New returns a new initialized [RangeSlider] with default bounds and options.
func New() *RangeSlider {
	rs := &RangeSlider{}
	rs.Model = rangemodel.New()
	rs.KeyMap = keymap.DefaultMap()
	rs.Viewport = math.NaN()
	rs.Init()
	return rs
}

// Init ends the construction phase of the model. Bounds assigned before
// Init are kept as given and coerced once.
func (rs *RangeSlider) Init() *RangeSlider {
	rs.Model.Init()
	return rs
}

// SetParts sets the template parts and re-arranges with the last size.
func (rs *RangeSlider) SetParts(pt Parts) *RangeSlider {
	rs.Parts = pt
	rs.track.Invalidate()
	rs.update()
	return rs
}

// OnChange adds a function that is called whenever pointer or keyboard
// input changes the selected range.
func (rs *RangeSlider) OnChange(fun func(e ChangeEvent)) *RangeSlider {
	rs.onChange = append(rs.onChange, fun)
	return rs
}

// Zone returns the current drag target, which is [ZoneNone]
// when no drag is in progress.
func (rs *RangeSlider) Zone() Zones {
	return rs.zone
}

// IsDragging returns whether a pointer drag is in progress.
func (rs *RangeSlider) IsDragging() bool {
	return rs.dragging
}

// Geometry returns the geometry of the last arrange.
func (rs *RangeSlider) Geometry() track.Geometry {
	return rs.track.Geometry()
}

// PartsVisible returns whether the parts should be shown,
// which is false when the last arrange was degenerate.
func (rs *RangeSlider) PartsVisible() bool {
	return rs.track.PartsVisible()
}

// Tooltip returns a description of the current values.
func (rs *RangeSlider) Tooltip() string {
	return fmt.Sprintf("(lower: %.4g, upper: %.4g, minimum: %.4g, maximum: %.4g)", rs.LowerValue, rs.UpperValue, rs.Minimum, rs.Maximum)
}

// hasThumbs returns whether both thumb parts are present.
func (rs *RangeSlider) hasThumbs() bool {
	return rs.Parts.LowerThumb != nil && rs.Parts.UpperThumb != nil
}

// setLower assigns the lower value, notifying and re-arranging on change.
func (rs *RangeSlider) setLower(v float64) {
	rs.change(func() { rs.SetLowerValue(v) })
}

// setUpper assigns the upper value, notifying and re-arranging on change.
func (rs *RangeSlider) setUpper(v float64) {
	rs.change(func() { rs.SetUpperValue(v) })
}

// change runs fun and sends a [ChangeEvent] if the selected range changed.
func (rs *RangeSlider) change(fun func()) {
	e := ChangeEvent{OldLower: rs.LowerValue, OldUpper: rs.UpperValue}
	fun()
	e.Lower, e.Upper = rs.LowerValue, rs.UpperValue
	if e.Lower == e.OldLower && e.Upper == e.OldUpper {
		return
	}
	rs.update()
	for _, fun := range rs.onChange {
		fun(e)
	}
}

// update re-arranges with the last size if the slider has been arranged.
func (rs *RangeSlider) update() {
	if rs.arranged {
		rs.Arrange(rs.size)
	}
}
