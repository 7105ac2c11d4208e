// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// closeTolerance is the relative and absolute tolerance used by [AreClose].
// It matches ten machine epsilons, the usual tolerance for layout math.
const closeTolerance = 10 * 2.220446049250313e-16

// AreClose returns whether a and b are equal within a tiny tolerance
// that absorbs floating point rounding.
func AreClose(a, b float64) bool {
	if a == b {
		return true
	}
	return scalar.EqualWithinAbsOrRel(a, b, closeTolerance, closeTolerance)
}

// LessThan returns whether a < b and they are not close.
func LessThan(a, b float64) bool {
	return a < b && !AreClose(a, b)
}

// GreaterThan returns whether a > b and they are not close.
func GreaterThan(a, b float64) bool {
	return a > b && !AreClose(a, b)
}

// LessThanOrClose returns whether a < b or they are close.
func LessThanOrClose(a, b float64) bool {
	return a < b || AreClose(a, b)
}

// GreaterThanOrClose returns whether a > b or they are close.
func GreaterThanOrClose(a, b float64) bool {
	return a > b || AreClose(a, b)
}

// WithinTolerance returns whether a and b differ by less than tol.
func WithinTolerance(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// Clamp clamps x to the provided closed interval [lo, hi].
// When lo > hi, the result is lo.
func Clamp(x, lo, hi float64) float64 {
	return max(lo, min(x, hi))
}

// IsFinite returns whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Sign returns -1, 0, or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
