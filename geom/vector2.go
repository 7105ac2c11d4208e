// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the float64 vector, box, and dimension
// types used for laying out range sliders, along with
// tolerance-aware comparison helpers.
package geom

import "fmt"

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
)

// Other returns the other dimension for 2D: X -> Y and Y -> X
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float64
	Y float64
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float64) Vector2 {
	return Vector2{x, y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Dim returns the given vector component.
func (v Vector2) Dim(dim Dims) float64 {
	if dim == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the given vector component value.
func (v *Vector2) SetDim(dim Dims, value float64) {
	if dim == X {
		v.X = value
	} else {
		v.Y = value
	}
}

// Add returns the vector sum of this vector and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns this vector minus other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// MulScalar returns this vector with each component multiplied by s.
func (v Vector2) MulScalar(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Max returns the componentwise maximum of this vector and other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{max(v.X, other.X), max(v.Y, other.Y)}
}
