// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// BitFlagConstraint is the generic type constraint
// that all bit flag enum types satisfy.
type BitFlagConstraint interface {
	constraints.Integer
	BitFlag
}

// String returns the string representation of the given
// enum value with the given map.
func String[T constraints.Integer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// BitFlagString returns the string representation of the given
// bit flag value with the given values available, joining the
// names of all of the set flags with |.
func BitFlagString[T BitFlagConstraint](i T, values []T) string {
	str := ""
	ip := any(i).(BitFlag)
	for _, ie := range values {
		if ip.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message.
func SetString[T constraints.Integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// SetStringOr sets the given bit flag value from its string representation
// while preserving any bit flags already set. The string may contain
// multiple flags separated by |.
func SetStringOr[T BitFlagConstraint, S BitFlagSetter](i S, s string, valueMap map[string]T, typeName string) error {
	for _, flg := range strings.Split(s, "|") {
		if flg == "" {
			continue
		}
		val, ok := valueMap[flg]
		if !ok {
			return fmt.Errorf("%q is not a valid value for type %s", flg, typeName)
		}
		i.SetFlag(true, val)
	}
	return nil
}

// Desc returns the description of the given enum value
// from the given map, falling back on its string representation.
func Desc[T interface {
	comparable
	Enum
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given enum values as a slice of [Enum].
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// HasFlag returns whether this bit flag value has the given bit flag set.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in these flags to the given value,
// using an atomic compare-and-swap loop.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << v.Int64()
	}
	for {
		cr := atomic.LoadInt64(i)
		var nw int64
		if on {
			nw = cr | mask
		} else {
			nw = cr &^ mask
		}
		if atomic.CompareAndSwapInt64(i, cr, nw) {
			return
		}
	}
}

// UnmarshalText loads the enum from the given text.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		slog.Error(typeName+".UnmarshalText", "err", err)
	}
	return nil
}
