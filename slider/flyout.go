// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slider

import (
	"cogentcore.org/rangeslider/base/errors"
	"cogentcore.org/rangeslider/track"
)

// FlyoutPlacements are the sides of the thumbs that value flyouts
// can be shown on, independent of orientation.
type FlyoutPlacements int32 //enums:enum -trim-prefix Flyout

const (
	// FlyoutNone shows no flyouts.
	FlyoutNone FlyoutPlacements = iota

	// FlyoutTopLeft shows flyouts above horizontal thumbs
	// and to the left of vertical ones.
	FlyoutTopLeft

	// FlyoutBottomRight shows flyouts below horizontal thumbs
	// and to the right of vertical ones.
	FlyoutBottomRight
)

// Placements are the concrete sides that a flyout is placed on.
type Placements int32 //enums:enum -trim-prefix Placement

const (
	PlacementNone Placements = iota
	PlacementTop
	PlacementBottom
	PlacementLeft
	PlacementRight
)

// Placement returns the concrete placement of thumb flyouts for the given
// orientation. It returns an error for an invalid orientation or flyout value.
func Placement(o track.Orientations, f FlyoutPlacements) (Placements, error) {
	if f == FlyoutNone {
		return PlacementNone, nil
	}
	switch o {
	case track.Horizontal:
		switch f {
		case FlyoutTopLeft:
			return PlacementTop, nil
		case FlyoutBottomRight:
			return PlacementBottom, nil
		}
	case track.Vertical:
		switch f {
		case FlyoutTopLeft:
			return PlacementLeft, nil
		case FlyoutBottomRight:
			return PlacementRight, nil
		}
	default:
		return PlacementNone, errors.Errorf("slider: unknown orientation %v", o)
	}
	return PlacementNone, errors.Errorf("slider: unexpected flyout placement %v", f)
}

// SetThumbFlyoutPlacement sets where the value flyouts of the thumbs are
// shown. It returns an error, leaving the placement unchanged,
// if the placement is not valid for the current orientation.
func (rs *RangeSlider) SetThumbFlyoutPlacement(f FlyoutPlacements) error {
	if _, err := Placement(rs.Orientation, f); err != nil {
		return err
	}
	rs.flyout = f
	return nil
}

// ThumbFlyoutPlacement returns where the value flyouts of the thumbs are shown.
func (rs *RangeSlider) ThumbFlyoutPlacement() FlyoutPlacements {
	return rs.flyout
}

// FlyoutPlacement returns the concrete placement of the thumb flyouts for
// the current orientation. Errors are logged and result in [PlacementNone].
func (rs *RangeSlider) FlyoutPlacement() Placements {
	return errors.Log1(Placement(rs.Orientation, rs.flyout))
}
