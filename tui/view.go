// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cogentcore.org/rangeslider/geom"
	"cogentcore.org/rangeslider/slider"
	"cogentcore.org/rangeslider/states"
	"cogentcore.org/rangeslider/track"
)

func (m Model) View() string {
	rs := m.slider
	st := rs.States(m.focused)

	var b strings.Builder
	title := titleStyle
	if st.Is(states.Focused) {
		title = titleFocusedStyle
	}
	b.WriteString(title.Render(rs.Name + " " + rs.Tooltip()))
	b.WriteString("\n")

	if st.Is(states.Collapsed) {
		b.WriteString(errorStyle.Render(collapsedPlaceholder))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewSlider(st))
	}

	if m.status != "" {
		style := statusStyle
		if m.err {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewSlider renders the slider, its ticks, and its flyouts.
func (m *Model) viewSlider(st states.States) string {
	rs := m.slider
	size := m.settings.Size()
	cols := int(math.Ceil(size.X))
	rows := int(math.Ceil(size.Y))
	vertical := st.Is(states.Vertical)
	placement := rs.FlyoutPlacement()
	lower, upper := m.flyoutLabels()

	var b strings.Builder
	if placement == slider.PlacementTop {
		b.WriteString(flyoutStyle.Render(labelRow(cols, lower, upper)))
		b.WriteString("\n")
	}
	ticks := m.tickCells(st)
	width := m.flyoutColumns()
	for y := range rows {
		if placement == slider.PlacementLeft {
			b.WriteString(flyoutStyle.Render(fmt.Sprintf("%*s", width, labelAt(y, lower, upper))))
		}
		for x := range cols {
			b.WriteString(m.cell(geom.Vec2(float64(x)+0.5, float64(y)+0.5), st))
		}
		if vertical && ticks[y] {
			b.WriteString(tickStyle.Render(verticalTick))
		} else if vertical && len(ticks) > 0 {
			b.WriteString(" ")
		}
		if placement == slider.PlacementRight {
			b.WriteString(flyoutStyle.Render(" " + labelAt(y, lower, upper)))
		}
		b.WriteString("\n")
	}
	if !vertical && len(ticks) > 0 {
		var row strings.Builder
		for x := range cols {
			if ticks[x] {
				row.WriteString(horizontalTick)
			} else {
				row.WriteString(" ")
			}
		}
		b.WriteString(tickStyle.Render(row.String()))
		b.WriteString("\n")
	}
	if placement == slider.PlacementBottom {
		b.WriteString(flyoutStyle.Render(labelRow(cols, lower, upper)))
		b.WriteString("\n")
	}
	return b.String()
}

// cell renders the cell whose center is at the given slider position.
func (m *Model) cell(pos geom.Vector2, st states.States) string {
	pt := m.slider.Parts
	vertical := st.Is(states.Vertical)
	switch {
	case onPart(pt.LowerThumb, pos), onPart(pt.UpperThumb, pos):
		if st.Is(states.Pressed) {
			return thumbPressedStyle.Render(thumbChar)
		}
		return thumbStyle.Render(thumbChar)
	case pt.Foreground != nil && pt.Foreground.Visible && pt.Foreground.Bounds.ContainsPoint(pos):
		if vertical {
			return foregroundStyle.Render(verticalForeground)
		}
		return foregroundStyle.Render(foregroundChar)
	}
	if vertical {
		return trackStyle.Render(verticalBackground)
	}
	return trackStyle.Render(backgroundChar)
}

func onPart(th *slider.Thumb, pos geom.Vector2) bool {
	return th != nil && th.Visible && th.Bounds.ContainsPoint(pos)
}

// flyout is a value label shown next to a thumb.
type flyout struct {
	text string

	// cell is the index of the cell at the center of the thumb
	cell int
}

// flyoutLabels returns the labels of the lower and upper thumbs.
func (m *Model) flyoutLabels() (lower, upper flyout) {
	rs := m.slider
	dim := rs.Orientation.Dim()
	center := func(th *slider.Thumb) int {
		if th == nil {
			return -1
		}
		return int(math.Floor((th.Bounds.Min.Dim(dim) + th.Bounds.Max.Dim(dim)) / 2))
	}
	lower = flyout{text: fmt.Sprintf("%.4g", rs.LowerValue), cell: center(rs.Parts.LowerThumb)}
	upper = flyout{text: fmt.Sprintf("%.4g", rs.UpperValue), cell: center(rs.Parts.UpperThumb)}
	return
}

// flyoutColumns returns the number of columns used by flyouts
// to the left of the slider.
func (m *Model) flyoutColumns() int {
	if m.slider.FlyoutPlacement() != slider.PlacementLeft {
		return 0
	}
	lower, upper := m.flyoutLabels()
	return max(lipgloss.Width(lower.text), lipgloss.Width(upper.text), lipgloss.Width(joinLabels(lower, upper))) + 1
}

// labelRow returns a row of the given width with the labels centered
// on their thumbs, shifted so that they do not overlap.
func labelRow(width int, lower, upper flyout) string {
	row := []rune(strings.Repeat(" ", width))
	end := 0
	for _, f := range []flyout{lower, upper} {
		text := []rune(f.text)
		start := max(end, min(f.cell-len(text)/2, width-len(text)))
		start = max(start, 0)
		for i, r := range text {
			if start+i < width {
				row[start+i] = r
			}
		}
		end = start + len(text) + 1
	}
	return strings.TrimRight(string(row), " ")
}

// labelAt returns the label text for the given row of a vertical slider.
func labelAt(row int, lower, upper flyout) string {
	switch {
	case lower.cell == row && upper.cell == row:
		return joinLabels(lower, upper)
	case lower.cell == row:
		return lower.text
	case upper.cell == row:
		return upper.text
	}
	return ""
}

func joinLabels(lower, upper flyout) string {
	return lower.text + "/" + upper.text
}

// tickCells returns which cells along the track have a tick.
func (m *Model) tickCells(st states.States) map[int]bool {
	rs := m.slider
	values := rs.TickValues()
	if len(values) == 0 || st.Is(states.Collapsed) {
		return nil
	}
	g := rs.Geometry()
	cells := make(map[int]bool, len(values))
	for _, v := range values {
		cells[int(math.Floor(g.ThumbCenter(v, track.AnyThumb)))] = true
	}
	return cells
}
