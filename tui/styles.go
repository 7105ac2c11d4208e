// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    = lipgloss.Color("#F8F8F2")
	colorMuted   = lipgloss.Color("#6272A4")
	colorPrimary = lipgloss.Color("#BD93F9")
	colorActive  = lipgloss.Color("#FF79C6")
	colorInfo    = lipgloss.Color("#8BE9FD")
	colorDanger  = lipgloss.Color("#FF5555")
)

var (
	titleStyle        = lipgloss.NewStyle().Foreground(colorText)
	titleFocusedStyle = titleStyle.Bold(true)
	trackStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	foregroundStyle   = lipgloss.NewStyle().Foreground(colorPrimary)
	thumbStyle        = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	thumbPressedStyle = lipgloss.NewStyle().Foreground(colorActive).Bold(true)
	tickStyle         = lipgloss.NewStyle().Foreground(colorMuted)
	flyoutStyle       = lipgloss.NewStyle().Foreground(colorInfo)
	statusStyle       = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	errorStyle        = lipgloss.NewStyle().Foreground(colorDanger)
)

// Characters used to draw the slider parts.
const (
	thumbChar            = "█"
	foregroundChar       = "━"
	backgroundChar       = "─"
	verticalForeground   = "┃"
	verticalBackground   = "│"
	horizontalTick       = "╵"
	verticalTick         = "╴"
	collapsedPlaceholder = "(no room for the slider)"
)
