// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package geom

import "fmt"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float64) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Along returns a new [Box2] that starts at pos and has the given length
// along dimension dim, spanning [0, thickness] in the other dimension.
func B2Along(dim Dims, pos, length, thickness float64) Box2 {
	var b Box2
	b.Min.SetDim(dim, pos)
	b.Max.SetDim(dim, pos+length)
	b.Max.SetDim(dim.Other(), thickness)
	return b
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// Size returns the size of this bounding box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box2) ContainsPoint(point Vector2) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y {
		return false
	}
	return true
}

// ContainsAlong returns whether pos lies within this box along dimension dim.
func (b Box2) ContainsAlong(dim Dims, pos float64) bool {
	return pos >= b.Min.Dim(dim) && pos <= b.Max.Dim(dim)
}

// MulScalar returns the box with both of its corners multiplied by s.
func (b Box2) MulScalar(s float64) Box2 {
	return Box2{b.Min.MulScalar(s), b.Max.MulScalar(s)}
}

// Union returns the union of this box with other.
func (b Box2) Union(other Box2) Box2 {
	return Box2{
		Min: Vec2(min(b.Min.X, other.Min.X), min(b.Min.Y, other.Min.Y)),
		Max: b.Max.Max(other.Max),
	}
}
