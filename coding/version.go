// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the version
// and level tables, segment encoding, error correction, the symbol
// matrix, data placement, masking and mask evaluation.
package coding // import "github.com/unixdj/qrencode/coding"

import (
	"errors"
	"strconv"

	"github.com/unixdj/qrencode/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
	ErrMask    = errors.New("qr: invalid mask")
	ErrNoFit   = errors.New("qr: data does not fit in any version")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

// Code versions.
const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is between MinVersion and MaxVersion.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a version v code.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes, selecting the character count field length.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	switch {
	case v <= 9:
		return Class0
	case v <= 26:
		return Class1
	}
	return Class2
}

// Alignment returns the row and column coordinates of the alignment
// pattern centres of v, in increasing order.  Every combination of two
// coordinates is a centre except the three that coincide with finder
// patterns.  Version 1 has none.
func (v Version) Alignment() []int {
	a := vtab[v].align
	c := make([]int, len(a))
	for i, x := range a {
		c[i] = int(x)
	}
	return c
}

// Blocks returns the number of error correction blocks and the number
// of check bytes per block for version v at level l.
func (v Version) Blocks(l Level) (nblock, check int) {
	lev := vtab[v].level[l]
	return lev.nblock, lev.check
}

// Codewords returns the total number of data and check bytes.
func (v Version) Codewords() int { return vtab[v].bytes }

// DataModules returns the number of modules available for data and
// check bits, including remainder bits.
func (v Version) DataModules() int {
	vt := &vtab[v]
	return vt.bytes*8 + vt.remainder
}

// dataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) dataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.dataBytes(l) * 8 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 7% of codewords can be restored
	M              // 15%
	Q              // 25%
	H              // 30%
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// A version describes metadata associated with a version.
type version struct {
	align     []uint8  // alignment pattern centre coordinates
	bytes     int      // total data and check bytes
	remainder int      // remainder bits
	pattern   int      // 18 bit version information, versions 7+
	level     [4]level // block structure per level
}

type level struct {
	nblock int // number of blocks
	check  int // check bytes per block
}
