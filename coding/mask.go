// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a QR data mask pattern, 0 to 7.
type Mask int

// NumMasks is the number of mask patterns.
const NumMasks Mask = 8

func (k Mask) String() string { return strconv.Itoa(int(k)) }

// IsValid reports whether k is a mask pattern.
func (k Mask) IsValid() bool { return 0 <= k && k < NumMasks }

// Invert reports whether mask k inverts the data module in row r,
// column c.  It panics if k is invalid.
//
// Mask patterns, inverted modules dark, rows 0-5 by columns 0-11:
//
//	0: ▀▄▀▄▀▄▀▄▀▄▀▄  1: ▀▀▀▀▀▀▀▀▀▀▀▀  2: █  █  █  █    3: ▀ ▄▀ ▄▀ ▄▀ ▄
//	   ▀▄▀▄▀▄▀▄▀▄▀▄     ▀▀▀▀▀▀▀▀▀▀▀▀     █  █  █  █       ▄▀ ▄▀ ▄▀ ▄▀
//	   ▀▄▀▄▀▄▀▄▀▄▀▄     ▀▀▀▀▀▀▀▀▀▀▀▀     █  █  █  █        ▄▀ ▄▀ ▄▀ ▄▀
//
//	4: ███   ███     5: █▀▀▀▀▀█▀▀▀▀▀  6: ███▀▀▀███▀▀▀  7: ▀ ▀▄█▄▀ ▀▄█▄
//	      ███   ███     █ ▄▀▄ █ ▄▀▄      █▀▄▀█ █▀▄▀█      ▀▄ ▄▀█▀▄ ▄▀█
//	   ███   ███        █  ▀  █  ▀       █ ▀▀▄██ ▀▀▄█     ▀██▄  ▀██▄
func (k Mask) Invert(r, c int) bool {
	switch k {
	case 0:
		return (r+c)%2 == 0
	case 1:
		return r%2 == 0
	case 2:
		return c%3 == 0
	case 3:
		return (r+c)%3 == 0
	case 4:
		return (r/2+c/3)%2 == 0
	case 5:
		return r*c%2+r*c%3 == 0
	case 6:
		return (r*c%2+r*c%3)%2 == 0
	case 7:
		return ((r+c)%2+r*c%3)%2 == 0
	}
	panic("qr: invalid mask " + strconv.Itoa(int(k)))
}

// FormatBits returns the 15 bit format information for level l and
// mask k: the level and mask with 10 BCH check bits, XORed with
// 101010000010010.
func FormatBits(l Level, k Mask) (uint16, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	}
	if !k.IsValid() {
		return 0, ErrMask
	}
	return ftab[l][k], nil
}

// VersionBits returns the 18 bit version information for v: the
// version with 12 BCH check bits.  Versions below 7 have none and
// yield 0.
func VersionBits(v Version) (int, error) {
	if !v.IsValid() {
		return 0, ErrVersion
	}
	return vtab[v].pattern, nil
}

// flip inverts a Dark or Light module.
func flip(v Module) Module {
	switch v {
	case Dark:
		return Light
	case Light:
		return Dark
	}
	return v
}

// Mask returns a new matrix holding data, with the data modules in
// the positions selected by mask k inverted and the format information
// for the plan's level and k written.  data is not modified.
func (p *Plan) Mask(data *Matrix, k Mask) (*Matrix, error) {
	if !k.IsValid() {
		return nil, ErrMask
	}
	siz := p.Size
	if data.Size != siz {
		panic("qr: matrix size mismatch")
	}
	m := data.Clone()
	t := p.template.mod
	for y := 0; y < siz; y++ {
		row := m.mod[y*siz : (y+1)*siz]
		for x, v := range row {
			if t[y*siz+x] == Unset && k.Invert(y, x) {
				row[x] = flip(v)
			}
		}
	}
	fb := ftab[p.Level][k]
	for _, pos := range formatPositions(siz) {
		for i, xy := range pos {
			v := Light
			if fb>>i&1 != 0 {
				v = Dark
			}
			m.Set(xy[0], xy[1], v)
		}
	}
	return m, nil
}
