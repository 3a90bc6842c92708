// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"testing"
)

func TestCountLength(t *testing.T) {
	for _, tt := range []struct {
		mode Mode
		want [3]int
	}{
		{Numeric, [3]int{10, 12, 14}},
		{Alphanumeric, [3]int{9, 11, 13}},
		{Byte, [3]int{8, 16, 16}},
		{Latin1, [3]int{8, 16, 16}},
		{Kanji, [3]int{8, 10, 12}},
	} {
		for i, v := range []Version{9, 26, 40} {
			if got := CountLength(tt.mode, v); got != tt.want[i] {
				t.Errorf("%s version %d: %d bits, want %d",
					tt.mode, v, got, tt.want[i])
			}
		}
	}
	if got := CountLength(Mode(-1), 1); got != 0 {
		t.Errorf("invalid mode: %d bits, want 0", got)
	}
}

// Published character capacities.
var capacities = []struct {
	v    Version
	l    Level
	mode Mode
	want int
}{
	{1, L, Numeric, 41}, {1, L, Alphanumeric, 25}, {1, L, Byte, 17},
	{1, L, Kanji, 10},
	{1, H, Numeric, 17}, {1, H, Alphanumeric, 10}, {1, H, Byte, 7},
	{1, H, Kanji, 4},
	{2, H, Alphanumeric, 20},
	{7, M, Numeric, 293}, {7, M, Byte, 122},
	{10, Q, Alphanumeric, 221},
	{26, L, Byte, 1367},
	{27, H, Numeric, 1501},
	{40, L, Numeric, 7089}, {40, L, Alphanumeric, 4296},
	{40, L, Byte, 2953}, {40, L, Kanji, 1817},
	{40, M, Numeric, 5596},
	{40, Q, Byte, 1663},
	{40, H, Numeric, 3057}, {40, H, Alphanumeric, 1852},
	{40, H, Byte, 1273}, {40, H, Latin1, 1273},
}

func TestCapacity(t *testing.T) {
	for _, tt := range capacities {
		if got := Capacity(tt.v, tt.l, tt.mode); got != tt.want {
			t.Errorf("%d-%s %s: capacity %d, want %d",
				tt.v, tt.l, tt.mode, got, tt.want)
		}
	}
	for _, tt := range []struct {
		v    Version
		l    Level
		mode Mode
	}{
		{0, L, Numeric}, {41, L, Numeric}, {1, 4, Byte}, {1, L, 17},
	} {
		if got := Capacity(tt.v, tt.l, tt.mode); got != 0 {
			t.Errorf("%d-%s %s: capacity %d, want 0",
				tt.v, tt.l, tt.mode, got)
		}
	}
}

// TestCapacityEncodes checks that a segment of exactly the capacity
// fits the data bits, and one more character does not.
func TestCapacityEncodes(t *testing.T) {
	chars := map[Mode]string{
		Numeric:      "7",
		Alphanumeric: "Q",
		Byte:         "\xff",
	}
	for _, v := range []Version{1, 9, 10, 26, 27, 40} {
		for l := L; l <= H; l++ {
			for mode, c := range chars {
				n := Capacity(v, l, mode)
				for _, k := range []int{n, n + 1} {
					seg := Segment{repeat(c, k), mode}
					bits, err := seg.EncodedLength(v.SizeClass())
					if err != nil {
						t.Fatal(err)
					}
					if fits := bits <= v.DataBits(l); fits != (k == n) {
						t.Errorf("%d-%s %s: %d characters in "+
							"%d bits, %d data bits",
							v, l, mode, k, bits, v.DataBits(l))
					}
				}
			}
		}
	}
}

func repeat(s string, n int) string {
	b := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		b = append(b, s...)
	}
	return string(b)
}

func TestChooseVersion(t *testing.T) {
	v, err := ChooseVersion(11, Alphanumeric, H)
	if err != nil || v != 2 {
		t.Errorf("HELLO WORLD: version %d, %v; want 2", v, err)
	}
	for _, tt := range capacities {
		v, err := ChooseVersion(tt.want, tt.mode, tt.l)
		if err != nil || v > tt.v {
			t.Errorf("%d %s at %s: version %d, %v; want <= %d",
				tt.want, tt.mode, tt.l, v, err, tt.v)
		}
	}
	for v := MinVersion; v < MaxVersion; v++ {
		n := Capacity(v, M, Byte)
		if got, _ := ChooseVersion(n, Byte, M); got != v {
			t.Errorf("%d bytes at M: version %d, want %d", n, got, v)
		}
		if got, _ := ChooseVersion(n+1, Byte, M); got != v+1 {
			t.Errorf("%d bytes at M: version %d, want %d", n+1, got, v+1)
		}
	}
	for _, n := range []int{0, -1, 7090} {
		if _, err := ChooseVersion(n, Numeric, L); !errors.Is(err, ErrNoFit) {
			t.Errorf("%d digits: err = %v, want ErrNoFit", n, err)
		}
	}
	if _, err := ChooseVersion(1, Numeric, 5); !errors.Is(err, ErrLevel) {
		t.Errorf("level 5: err = %v, want ErrLevel", err)
	}
	var me ModeError
	if _, err := ChooseVersion(1, 9, L); !errors.As(err, &me) {
		t.Errorf("mode 9: err = %v, want ModeError", err)
	}
}
