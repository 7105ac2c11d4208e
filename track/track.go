// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package track computes the layout of a range slider track:
// the thumb length, the thumb offsets, and the lengths of the track
// segments before, between, and after the thumbs. It also maps
// positions along the track back to values.
package track

import (
	"log/slog"
	"math"

	"cogentcore.org/rangeslider/geom"
)

// DefaultMinThumbLength is the smallest thumb length in scrollbar mode
// when [Params.MinThumbLength] is not set.
const DefaultMinThumbLength = 10

// Orientations are the axes a track can be laid out along.
type Orientations int32 //enums:enum

const (
	// Horizontal lays out the track along the X axis,
	// with values increasing to the right.
	Horizontal Orientations = iota

	// Vertical lays out the track along the Y axis,
	// with values increasing upward.
	Vertical
)

// Dim returns the dimension that the track is laid out along.
func (o Orientations) Dim() geom.Dims {
	if o == Vertical {
		return geom.Y
	}
	return geom.X
}

// Thumbs selects which thumb a position is mapped for.
type Thumbs int32 //enums:enum

const (
	// AnyThumb maps positions over the whole track,
	// with a dead zone at each end.
	AnyThumb Thumbs = iota

	// LowerThumb maps positions over the travel of the lower thumb center.
	LowerThumb

	// UpperThumb maps positions over the travel of the upper thumb center.
	UpperThumb
)

// Params are the inputs of a track layout.
type Params struct {

	// Length is the length of the track along its axis.
	Length float64

	// ThumbLength is the desired thumb length in slider mode.
	ThumbLength float64

	// MinThumbLength is the smallest thumb length in scrollbar mode.
	// If it is zero, [DefaultMinThumbLength] is used.
	MinThumbLength float64

	// Minimum and Maximum are the bounds of the value range.
	Minimum, Maximum float64

	// Lower and Upper are the selected values.
	Lower, Upper float64

	// Orientation is the axis of the track.
	Orientation Orientations

	// Reversed is whether the direction of increasing value is reversed.
	Reversed bool

	// Overlap is whether the two thumbs may occupy the same space.
	Overlap bool

	// Viewport is the amount of content visible in scrollbar mode,
	// which determines the thumb length. It is NaN in slider mode.
	Viewport float64
}

// IsScrollbar returns whether the params describe a scrollbar,
// where the thumb length is derived from the viewport.
func (p *Params) IsScrollbar() bool {
	return !math.IsNaN(p.Viewport)
}

// Inverted returns whether fractions are mirrored along the axis:
// horizontal tracks when reversed, vertical tracks when not reversed.
func (p *Params) Inverted() bool {
	if p.Orientation == Vertical {
		return !p.Reversed
	}
	return p.Reversed
}

// Equal returns whether the params are the same as o,
// treating NaN viewports as equal.
func (p *Params) Equal(o *Params) bool {
	if p.IsScrollbar() != o.IsScrollbar() {
		return false
	}
	a, b := *p, *o
	if !a.IsScrollbar() {
		a.Viewport, b.Viewport = 0, 0
	}
	return a == b
}

func (p *Params) minThumbLength() float64 {
	if p.MinThumbLength > 0 {
		return p.MinThumbLength
	}
	return DefaultMinThumbLength
}

// fraction returns the position of v within [Minimum, Maximum] as 0-1.
func (p *Params) fraction(v float64) float64 {
	rng := p.Maximum - p.Minimum
	if rng <= 0 {
		return 0
	}
	return geom.Clamp((v-p.Minimum)/rng, 0, 1)
}

// mirror applies the axis inversion to a 0-1 fraction.
func (p *Params) mirror(f float64) float64 {
	if p.Inverted() {
		return 1 - f
	}
	return f
}

// Geometry is the result of a track layout. All lengths and
// offsets are along the track axis, relative to the track start.
type Geometry struct {

	// ThumbLength is the length of each thumb.
	ThumbLength float64

	// BackgroundLength is the whole travel: the track length minus a thumb.
	BackgroundLength float64

	// BackgroundBeforeLength is the length of the segment before the first thumb.
	BackgroundBeforeLength float64

	// ForegroundLength is the length of the selected segment between the thumbs.
	ForegroundLength float64

	// BackgroundAfterLength is the length of the segment after the second thumb.
	BackgroundAfterLength float64

	// LowerThumbOffset is the start of the lower thumb.
	LowerThumbOffset float64

	// UpperThumbOffset is the start of the upper thumb.
	UpperThumbOffset float64

	// Arranged is whether the layout succeeded. When it is false,
	// all lengths and offsets are zero and the parts should be hidden.
	Arranged bool

	// Params are the params the geometry was computed from.
	Params Params
}

// Layout computes the geometry for the given params. It is a pure function.
// It returns false when the layout is degenerate: the track has no length,
// or in scrollbar mode, when there is nothing to scroll or the thumb does
// not fit in the track.
func Layout(p Params) (Geometry, bool) {
	g := Geometry{Params: p}
	ln := p.Length
	if !(ln > 0) {
		slog.Debug("track layout degenerate", "length", ln)
		return g, false
	}
	var thumb float64
	if p.IsScrollbar() {
		rng := p.Maximum - p.Minimum
		if rng <= 0 || geom.AreClose(rng, 0) || p.Viewport >= rng {
			slog.Debug("track layout degenerate", "range", rng, "viewport", p.Viewport)
			return g, false
		}
		thumb = geom.Clamp(ln*p.Viewport/(rng+p.Viewport), 0, ln)
		thumb = max(p.minThumbLength(), thumb)
		if geom.GreaterThan(thumb, ln) {
			slog.Debug("track layout degenerate", "length", ln, "thumb", thumb)
			return g, false
		}
	} else {
		thumb = geom.Clamp(p.ThumbLength, 0, ln)
	}

	travel := g.travelFor(thumb)
	g.ThumbLength = thumb
	g.LowerThumbOffset = travel*p.mirror(p.fraction(p.Lower)) + g.margin(LowerThumb)
	g.UpperThumbOffset = travel*p.mirror(p.fraction(p.Upper)) + g.margin(UpperThumb)

	first := min(g.LowerThumbOffset, g.UpperThumbOffset)
	second := max(g.LowerThumbOffset, g.UpperThumbOffset)
	g.BackgroundLength = ln - thumb
	g.BackgroundBeforeLength = first
	g.ForegroundLength = geom.Clamp(second-first, 0, g.BackgroundLength)
	g.BackgroundAfterLength = max(0, g.BackgroundLength-second)
	g.Arranged = true
	return g, true
}

// travelFor returns the distance each thumb can move for the given thumb length.
func (g *Geometry) travelFor(thumb float64) float64 {
	travel := g.Params.Length - thumb
	if !g.Params.Overlap {
		travel -= thumb
	}
	return max(0, travel)
}

// Travel returns the distance each thumb can move along the track.
func (g *Geometry) Travel() float64 {
	return g.travelFor(g.ThumbLength)
}

// margin returns the extra offset of the given thumb. Without overlap,
// the thumb farther from the track start is pushed one thumb length
// further so that the thumbs never cover each other.
func (g *Geometry) margin(th Thumbs) float64 {
	if g.Params.Overlap || th == AnyThumb {
		return 0
	}
	far := UpperThumb
	if g.Params.Inverted() {
		far = LowerThumb
	}
	if th == far {
		return g.ThumbLength
	}
	return 0
}

// deadZone returns the length at each end of the track in which
// [AnyThumb] positions map to the end values.
func (g *Geometry) deadZone() float64 {
	if g.Params.Overlap {
		return g.ThumbLength / 2
	}
	return g.ThumbLength
}

// span returns the start and length of the position range
// that maps onto the value range for the given thumb.
func (g *Geometry) span(th Thumbs) (start, length float64) {
	if th == AnyThumb {
		d := g.deadZone()
		return d, max(0, g.Params.Length-2*d)
	}
	return g.ThumbLength/2 + g.margin(th), g.Travel()
}

// ValueAt returns the value under the given position along the track.
// For [LowerThumb] and [UpperThumb] the position is taken as the center
// of that thumb, which makes ValueAt the inverse of [Geometry.ThumbCenter].
// Positions outside of the mapped range clamp to the end values.
func (g *Geometry) ValueAt(pos float64, th Thumbs) float64 {
	p := &g.Params
	if !g.Arranged {
		return p.Minimum
	}
	start, length := g.span(th)
	rel := 0.0
	if length > 0 {
		rel = geom.Clamp((pos-start)/length, 0, 1)
	}
	return p.Minimum + p.mirror(rel)*(p.Maximum-p.Minimum)
}

// ThumbCenter returns the position of the center of the given thumb
// when it shows the given value.
func (g *Geometry) ThumbCenter(value float64, th Thumbs) float64 {
	p := &g.Params
	if !g.Arranged {
		return 0
	}
	start, length := g.span(th)
	return start + p.mirror(p.fraction(value))*length
}

// Parts are the boxes of the track parts in track coordinates.
type Parts struct {
	Background geom.Box2
	Before     geom.Box2
	Foreground geom.Box2
	After      geom.Box2
	LowerThumb geom.Box2
	UpperThumb geom.Box2
}

// Arrange returns the boxes of the track parts for a track with the given
// thickness. The segments start half a thumb into the track, so that they
// run between the thumb centers. All boxes are empty if the geometry
// is not arranged.
func (g *Geometry) Arrange(thickness float64) Parts {
	var pt Parts
	if !g.Arranged {
		return pt
	}
	dim := g.Params.Orientation.Dim()
	start := g.ThumbLength / 2
	pt.Background = geom.B2Along(dim, start, g.BackgroundLength, thickness)
	pt.Before = geom.B2Along(dim, start, g.BackgroundBeforeLength, thickness)
	start += g.BackgroundBeforeLength
	pt.Foreground = geom.B2Along(dim, start, g.ForegroundLength, thickness)
	start += g.ForegroundLength
	pt.After = geom.B2Along(dim, start, g.BackgroundAfterLength, thickness)
	pt.LowerThumb = geom.B2Along(dim, g.LowerThumbOffset, g.ThumbLength, thickness)
	pt.UpperThumb = geom.B2Along(dim, g.UpperThumbOffset, g.ThumbLength, thickness)
	return pt
}

// Measure returns the desired size of a track with thumbs of the given
// sizes: the sum of the thumb lengths along the axis, and the largest
// thumb thickness across it. In scrollbar mode the thumbs take no
// length along the axis.
func Measure(lower, upper geom.Vector2, o Orientations, scrollbar bool) geom.Vector2 {
	dim := o.Dim()
	var sz geom.Vector2
	if !scrollbar {
		sz.SetDim(dim, lower.Dim(dim)+upper.Dim(dim))
	}
	sz.SetDim(dim.Other(), max(lower.Dim(dim.Other()), upper.Dim(dim.Other())))
	return sz
}

// Track caches the last layout, recomputing it only when the params change.
type Track struct {
	params   Params
	geometry Geometry
	valid    bool
}

// Layout returns the geometry for the given params,
// reusing the last result when the params are unchanged.
func (tr *Track) Layout(p Params) (Geometry, bool) {
	if tr.valid && tr.params.Equal(&p) {
		return tr.geometry, tr.geometry.Arranged
	}
	tr.params = p
	tr.geometry, _ = Layout(p)
	tr.valid = true
	return tr.geometry, tr.geometry.Arranged
}

// Geometry returns the last computed geometry.
func (tr *Track) Geometry() Geometry {
	return tr.geometry
}

// PartsVisible returns whether the parts of the track should be shown,
// which is false until a layout succeeds and after a degenerate one.
func (tr *Track) PartsVisible() bool {
	return tr.valid && tr.geometry.Arranged
}

// Invalidate forces the next [Track.Layout] to recompute.
func (tr *Track) Invalidate() {
	tr.valid = false
}
