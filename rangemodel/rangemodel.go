// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rangemodel provides the value model of a range slider:
// a minimum and maximum with a selected lower and upper value between them.
package rangemodel

import (
	"cogentcore.org/rangeslider/geom"
)

// Model holds the four bounds of a range selection along with the
// step sizes used for keyboard stepping. After [Model.Init], every write
// is coerced so that Minimum <= LowerValue <= UpperValue <= Maximum.
// Writes of NaN or an infinity are ignored.
type Model struct {

	// Minimum is the smallest value that can be selected.
	// It defaults to 0.
	Minimum float64 `set:"-"`

	// Maximum is the largest value that can be selected.
	// It is never below Minimum and defaults to 100.
	Maximum float64 `set:"-"`

	// LowerValue is the lower bound of the selected range.
	LowerValue float64 `set:"-"`

	// UpperValue is the upper bound of the selected range.
	UpperValue float64 `set:"-"`

	// SmallStep is the amount that the arrow keys move a value by.
	// It defaults to 1.
	SmallStep float64 `set:"-"`

	// LargeStep is the amount that the PageUp and PageDown keys
	// move a value by. It defaults to 10.
	LargeStep float64 `set:"-"`

	// initialized is whether Init has run; before that writes are stored raw
	initialized bool

	// upperSet is whether UpperValue has ever been set to a positive value.
	// Until it is, LowerValue is only clamped against Maximum so that
	// bounds can be assigned in any order during construction.
	upperSet bool
}

// New returns a new uninitialized [Model] with the default bounds and steps.
func New() *Model {
	m := &Model{}
	m.Defaults()
	return m
}

// Defaults sets the default bounds and steps.
func (m *Model) Defaults() {
	m.Minimum = 0
	m.Maximum = 100
	m.LowerValue = 0
	m.UpperValue = 0
	m.SmallStep = 1
	m.LargeStep = 10
}

// IsInitialized returns whether [Model.Init] has been called,
// after which all writes are coerced.
func (m *Model) IsInitialized() bool {
	return m.initialized
}

// Init ends the construction phase and coerces the bounds once,
// in the order Maximum, LowerValue, UpperValue.
func (m *Model) Init() *Model {
	m.initialized = true
	if m.UpperValue > 0 {
		m.upperSet = true
	}
	m.Maximum = max(m.Maximum, m.Minimum)
	m.coerceValues()
	return m
}

// Assign sets all four bounds at once and coerces them as [Model.Init] does,
// so that the new bounds are never clamped against the previous ones.
// Non-finite arguments leave the corresponding bound unchanged.
func (m *Model) Assign(minimum, maximum, lower, upper float64) *Model {
	if geom.IsFinite(minimum) {
		m.Minimum = minimum
	}
	if geom.IsFinite(maximum) {
		m.Maximum = maximum
	}
	if geom.IsFinite(lower) {
		m.LowerValue = lower
	}
	if geom.IsFinite(upper) {
		m.UpperValue = upper
	}
	m.upperSet = false
	return m.Init()
}

// SetMinimum sets the [Model.Minimum] and then coerces
// Maximum, LowerValue and UpperValue in that order.
func (m *Model) SetMinimum(v float64) *Model {
	if !geom.IsFinite(v) {
		return m
	}
	m.Minimum = v
	if !m.initialized {
		return m
	}
	m.Maximum = max(m.Maximum, m.Minimum)
	m.coerceValues()
	return m
}

// SetMaximum sets the [Model.Maximum], raised to at least Minimum,
// and then coerces LowerValue and UpperValue.
func (m *Model) SetMaximum(v float64) *Model {
	if !geom.IsFinite(v) {
		return m
	}
	if !m.initialized {
		m.Maximum = v
		return m
	}
	m.Maximum = max(v, m.Minimum)
	m.coerceValues()
	return m
}

// SetLowerValue sets the [Model.LowerValue], clamped into
// [Minimum, UpperValue]. While UpperValue has never been set to a
// positive value it is clamped into [Minimum, Maximum] instead, and
// UpperValue is raised to it if needed.
func (m *Model) SetLowerValue(v float64) *Model {
	if !geom.IsFinite(v) {
		return m
	}
	if !m.initialized {
		m.LowerValue = v
		return m
	}
	m.LowerValue = m.coerceLower(v)
	m.UpperValue = max(m.UpperValue, m.LowerValue)
	return m
}

// SetUpperValue sets the [Model.UpperValue], clamped into [LowerValue, Maximum].
func (m *Model) SetUpperValue(v float64) *Model {
	if !geom.IsFinite(v) {
		return m
	}
	if v > 0 {
		m.upperSet = true
	}
	if !m.initialized {
		m.UpperValue = v
		return m
	}
	m.UpperValue = geom.Clamp(v, m.LowerValue, m.Maximum)
	return m
}

// SetSmallStep sets the [Model.SmallStep].
func (m *Model) SetSmallStep(v float64) *Model {
	if geom.IsFinite(v) {
		m.SmallStep = v
	}
	return m
}

// SetLargeStep sets the [Model.LargeStep].
func (m *Model) SetLargeStep(v float64) *Model {
	if geom.IsFinite(v) {
		m.LargeStep = v
	}
	return m
}

// Span returns the size of the selected range.
func (m *Model) Span() float64 {
	return m.UpperValue - m.LowerValue
}

// Range returns the size of the whole range of values.
func (m *Model) Range() float64 {
	return m.Maximum - m.Minimum
}

// Contains returns whether v lies within the selected range.
func (m *Model) Contains(v float64) bool {
	return v >= m.LowerValue && v <= m.UpperValue
}

// coerceLower returns v clamped into the allowed interval for LowerValue.
func (m *Model) coerceLower(v float64) float64 {
	hi := m.Maximum
	if m.upperSet {
		hi = min(m.UpperValue, m.Maximum)
	}
	return geom.Clamp(v, m.Minimum, hi)
}

// coerceValues re-clamps LowerValue and then UpperValue.
func (m *Model) coerceValues() {
	m.LowerValue = m.coerceLower(m.LowerValue)
	m.UpperValue = geom.Clamp(m.UpperValue, m.LowerValue, m.Maximum)
}
