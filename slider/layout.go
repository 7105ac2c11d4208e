// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"math"

	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/track"
)

// params returns the track layout params for the given size.
func (rs *RangeSlider) params(size geom.Vector2) track.Params {
	dim := rs.Orientation.Dim()
	p := track.Params{
		Length:      size.Dim(dim),
		Minimum:     rs.Minimum,
		Maximum:     rs.Maximum,
		Lower:       rs.LowerValue,
		Upper:       rs.UpperValue,
		Orientation: rs.Orientation,
		Reversed:    rs.IsDirectionReversed,
		Overlap:     rs.IsThumbOverlapAllowed,
		Viewport:    rs.Viewport,
	}
	if rs.Parts.LowerThumb != nil {
		p.ThumbLength = rs.Parts.LowerThumb.Size.Dim(dim)
	}
	return p
}

// IsScrollbar returns whether the thumb length is derived from the Viewport.
func (rs *RangeSlider) IsScrollbar() bool {
	return !math.IsNaN(rs.Viewport)
}

// Measure returns the desired size of the slider,
// based on the sizes of its thumbs.
func (rs *RangeSlider) Measure() geom.Vector2 {
	if !rs.hasThumbs() {
		return geom.Vector2{}
	}
	return track.Measure(rs.Parts.LowerThumb.Size, rs.Parts.UpperThumb.Size, rs.Orientation, rs.IsScrollbar())
}

// Arrange lays out the parts within the given size and updates the
// [TemplateSettings]. It returns false when the layout is degenerate,
// in which case all parts are hidden, or when the thumbs are missing,
// in which case nothing is done.
func (rs *RangeSlider) Arrange(size geom.Vector2) bool {
	if !rs.hasThumbs() {
		return false
	}
	rs.size = size
	rs.arranged = true
	dim := rs.Orientation.Dim()
	g, ok := rs.track.Layout(rs.params(size))
	pt := g.Arrange(size.Dim(dim.Other()))

	rs.Parts.LowerThumb.Bounds, rs.Parts.LowerThumb.Visible = pt.LowerThumb, ok
	rs.Parts.UpperThumb.Bounds, rs.Parts.UpperThumb.Visible = pt.UpperThumb, ok
	setSegment(rs.Parts.Background, pt.Background, ok)
	setSegment(rs.Parts.Before, pt.Before, ok)
	setSegment(rs.Parts.Foreground, pt.Foreground, ok)
	setSegment(rs.Parts.After, pt.After, ok)

	scale := 2.0
	if rs.IsThumbOverlapAllowed {
		scale = 1
	}
	rs.TemplateSettings.ThumbBounds = pt.LowerThumb.MulScalar(scale)
	return ok
}

func setSegment(sg *Segment, bounds geom.Box2, visible bool) {
	if sg == nil {
		return
	}
	sg.Bounds = bounds
	sg.Visible = visible
}
