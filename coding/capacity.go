// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sort"
)

// CountLength returns the length in bits of the character count field
// for mode in version v, or 0 if mode is invalid.
func CountLength(mode Mode, v Version) int {
	m := getMode(mode)
	if m == nil {
		return 0
	}
	return int(m.countLength[v.SizeClass()])
}

// Capacity returns the maximum number of characters encodable in mode
// as a single segment in a code of version v at level l.  Characters
// are digits for Numeric, bytes for Byte, and runes for other modes.
// Capacity returns 0 for an invalid version, level or mode.
func Capacity(v Version, l Level, mode Mode) int {
	m := getMode(mode)
	if m == nil || !v.IsValid() || !l.IsValid() {
		return 0
	}
	cl := int(m.countLength[v.SizeClass()])
	n := v.DataBits(l) - 4 - cl
	if n < 0 {
		return 0
	}
	// largest c with encodedLength(c) <= n
	c := sort.Search(n+1, func(c int) bool { return m.encodedLength(c) > n }) - 1
	return min(c, 1<<cl-1)
}

// ChooseVersion returns the smallest version that holds count
// characters in mode at level l.  It returns an error wrapping ErrNoFit
// if count is not positive or exceeds the capacity of MaxVersion.
func ChooseVersion(count int, mode Mode, l Level) (Version, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	}
	if getMode(mode) == nil {
		return 0, ModeError(mode)
	}
	if count > 0 {
		for v := MinVersion; v <= MaxVersion; v++ {
			if Capacity(v, l, mode) >= count {
				return v, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %d %s characters at level %s",
		ErrNoFit, count, mode, l)
}
