// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStates(t *testing.T) {
	var st States
	assert.False(t, st.IsOrientation())
	st.SetFlag(true, Horizontal, Pressed)
	assert.True(t, st.Is(Horizontal))
	assert.True(t, st.Is(Pressed))
	assert.False(t, st.Is(Focused))
	assert.True(t, st.IsOrientation())
	assert.Equal(t, "Horizontal|Pressed", st.String())

	st.SetFlag(true, Vertical)
	assert.False(t, st.IsOrientation())

	var other States
	assert.NoError(t, other.SetString("Vertical|Collapsed"))
	assert.True(t, other.Is(Collapsed))
	assert.True(t, other.IsOrientation())
}
