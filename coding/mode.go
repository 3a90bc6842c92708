// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.
const (
	Numeric       Mode = iota // numeric mode, ASCII digits
	Alphanumeric              // alphanumeric mode, ASCII-compatible text
	Byte                      // byte mode, any data
	Kanji                     // kanji mode, UTF-8 text
	Latin1                    // byte mode, UTF-8 text encoded as ISO 8859-1
	ShiftJISKanji             // kanji mode, Shift JIS text
)

// modeEncoder implements a QR segment encoding.
//
// Text is validated with accepts, rune by rune, or byte by byte for
// Numeric and Alphanumeric.  Modes with transform convert valid text
// into a segment of another mode, which is validated again before
// encoding.
type modeEncoder struct {
	name      string
	indicator uint32 // 4 bit mode indicator

	// countLength lists lengths of the character count field
	// in the three version size classes.
	countLength [3]byte

	// encodedLength returns the length in bits of n encoded
	// characters, excluding the header.
	encodedLength func(n int) int

	// accepts reports whether the rune is encodable.
	// If nil, any rune is accepted.
	accepts func(rune) bool

	// cutRune returns the first rune of the string and its width.
	// If nil, utf8.DecodeRuneInString is used.
	cutRune func(string) (rune, int)

	// transform returns the text converted for encoding in mode
	// target and whether the conversion was successful.
	transform func(string) (string, bool)
	target    Mode

	// count returns the character count of the text.
	// If nil, the length of the string in bytes is used.
	count func(string) int

	// encode3, encode2 and encode1 return the encoding of the bytes
	// and its length in bits.  The encoder calls a non-nil encode{N}
	// as long as N source bytes are left, in descending order of N.
	// If all are nil, each byte is written as 8 bits.
	encode3 func([3]byte) (uint32, int)
	encode2 func([2]byte) (uint32, int)
	encode1 func(byte) (uint32, int)
}

// Alphanumeric mode character set, in the order of character values.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// alphaValue maps ASCII to alphanumeric character values.
// Bytes outside the character set map to 0xff.
var alphaValue = func() (t [128]byte) {
	for i := range t {
		t[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return t
}()

// IsAlphanumeric reports whether r belongs to the alphanumeric
// mode character set.
func IsAlphanumeric(r rune) bool {
	return uint32(r) < 0x80 && alphaValue[r] != 0xff
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool { return uint32(r-'0') < 10 }

// cutShiftJIS returns the first Shift JIS character of s as a rune
// holding its one or two bytes, and its width.
func cutShiftJIS(s string) (rune, int) {
	lead := s[0]
	if len(s) > 1 && (0x81 <= lead && lead <= 0x9f || 0xe0 <= lead && lead <= 0xfc) {
		if t := s[1]; 0x40 <= t && t <= 0xfc && t != 0x7f {
			return rune(lead)<<8 | rune(t), 2
		}
	}
	return rune(lead), 1
}

// isShiftJISKanji reports whether the Shift JIS character r falls in
// one of the two ranges encodable in kanji mode.
func isShiftJISKanji(r rune) bool {
	return 0x8140 <= r && r <= 0x9ffc || 0xe040 <= r && r <= 0xebbf
}

var modes = [...]modeEncoder{
	Numeric: {
		name:          "numeric",
		indicator:     1,
		countLength:   [3]byte{10, 12, 14},
		encodedLength: func(n int) int { return (10*n + 2) / 3 },
		accepts:       IsDigit,
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0]-'0')*100 + uint32(b[1]-'0')*10 +
				uint32(b[2]-'0'), 10
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0]-'0')*10 + uint32(b[1]-'0'), 7
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
	},
	Alphanumeric: {
		name:          "alphanumeric",
		indicator:     2,
		countLength:   [3]byte{9, 11, 13},
		encodedLength: func(n int) int { return (11*n + 1) / 2 },
		accepts:       IsAlphanumeric,
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alphaValue[b[0]])*45 +
				uint32(alphaValue[b[1]]), 11
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(alphaValue[b]), 6
		},
	},
	Byte: {
		name:          "byte",
		indicator:     4,
		countLength:   [3]byte{8, 16, 16},
		encodedLength: func(n int) int { return n * 8 },
	},
	Kanji: {
		name:          "kanji",
		indicator:     8,
		countLength:   [3]byte{8, 10, 12},
		encodedLength: func(n int) int { return n * 13 },
		transform: func(s string) (string, bool) {
			t, err := japanese.ShiftJIS.NewEncoder().String(s)
			return t, err == nil
		},
		target: ShiftJISKanji,
	},
	Latin1: {
		name:          "latin-1",
		indicator:     4,
		countLength:   [3]byte{8, 16, 16},
		encodedLength: func(n int) int { return n * 8 },
		accepts:       func(r rune) bool { return uint32(r) < 0x100 },
		transform: func(s string) (string, bool) {
			t, err := charmap.ISO8859_1.NewEncoder().String(s)
			return t, err == nil
		},
		target: Byte,
	},
	ShiftJISKanji: {
		name:          "shift-jis-kanji",
		indicator:     8,
		countLength:   [3]byte{8, 10, 12},
		encodedLength: func(n int) int { return n * 13 },
		accepts:       isShiftJISKanji,
		cutRune:       cutShiftJIS,
		count:         func(s string) int { return len(s) >> 1 },
		encode2: func(b [2]byte) (uint32, int) {
			// subtract 0x8140 or 0xc140, then msb*0xc0 + lsb
			c := uint32(b[0])<<8 | uint32(b[1])
			if c >= 0xe040 {
				c -= 0xc140
			} else {
				c -= 0x8140
			}
			return c>>8*0xc0 + c&0xff, 13
		},
	},
}

func getMode(mode Mode) *modeEncoder {
	if 0 <= mode && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// IsValid reports whether mode is one of the defined modes.
func (mode Mode) IsValid() bool { return getMode(mode) != nil }

// Is reports whether r is encodable in mode.  Kanji mode accepts any
// rune, as only the Shift JIS transformation tells whether it falls in
// the kanji ranges.
func Is(r rune, mode Mode) bool {
	m := getMode(mode)
	return m != nil && (m.accepts == nil || m.accepts(r))
}

// A Segment describes a QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents a Segment with text not encodable in its mode.
type SegmentError Segment

func (e SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
}

// ModeError represents an invalid Mode.
type ModeError Mode

func (e ModeError) Error() string {
	return "qr: invalid mode " + strconv.Itoa(int(e))
}

// isValid reports whether text is encodable in m.
func (m *modeEncoder) isValid(mode Mode, text string) bool {
	is := m.accepts
	switch {
	case is == nil:
	case mode < Byte:
		for i := 0; i < len(text); i++ {
			if !is(rune(text[i])) {
				return false
			}
		}
	case m.cutRune != nil:
		for s := text; s != ""; {
			r, sz := m.cutRune(s)
			s = s[sz:]
			if !is(r) {
				return false
			}
		}
	default:
		for _, r := range text {
			if !is(r) {
				return false
			}
		}
	}
	return true
}

// transform validates seg and converts it for encoding.
func (seg Segment) transform() (Segment, *modeEncoder, error) {
	m := getMode(seg.Mode)
	if m == nil {
		return Segment{}, nil, ModeError(seg.Mode)
	}
	if !m.isValid(seg.Mode, seg.Text) {
		return Segment{}, nil, SegmentError(seg)
	}
	if m.transform == nil {
		return seg, m, nil
	}
	t, ok := m.transform(seg.Text)
	ts := Segment{t, m.target}
	if tm := getMode(ts.Mode); ok && tm.isValid(ts.Mode, t) {
		return ts, tm, nil
	}
	return Segment{}, nil, SegmentError(seg)
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	_, _, err := seg.transform()
	return err == nil
}

// Transform returns seg converted for encoding in one of the modes
// Numeric, Alphanumeric, Byte and ShiftJISKanji.
func (seg Segment) Transform() (Segment, error) {
	ts, _, err := seg.transform()
	return ts, err
}

// Count returns the value of the character count field for seg.
func (seg Segment) Count() (int, error) {
	ts, m, err := seg.transform()
	if err != nil {
		return 0, err
	}
	if m.count != nil {
		return m.count(ts.Text), nil
	}
	return len(ts.Text), nil
}

// EncodedLength returns the encoded length of seg in bits in the
// given version size class, including the header.
func (seg Segment) EncodedLength(class int) (int, error) {
	n, err := seg.Count()
	if err != nil {
		return 0, err
	}
	m := getMode(seg.Mode)
	return 4 + int(m.countLength[class]) + m.encodedLength(n), nil
}

// Encode writes seg encoded for the given version size class to b.
func (seg Segment) Encode(b *Bits, class int) error {
	ts, m, err := seg.transform()
	if err != nil {
		return err
	}
	s := ts.Text
	n := len(s)
	if m.count != nil {
		n = m.count(s)
	}
	cl := int(m.countLength[class])
	if n >= 1<<cl {
		return fmt.Errorf("qr: %d %s characters overflow %d bit count",
			n, m.name, cl)
	}
	b.Write(m.indicator, 4)
	b.Write(uint32(n), cl)

	enc3, enc2, enc1 := m.encode3, m.encode2, m.encode1
	if enc3 == nil && enc2 == nil && enc1 == nil {
		b.WriteBytes([]byte(s))
		return nil
	}
	if enc3 != nil {
		for ; len(s) >= 3; s = s[3:] {
			b.Write(enc3([3]byte{s[0], s[1], s[2]}))
		}
	}
	if enc2 != nil {
		for ; len(s) >= 2; s = s[2:] {
			b.Write(enc2([2]byte{s[0], s[1]}))
		}
	}
	if enc1 != nil {
		for ; len(s) >= 1; s = s[1:] {
			b.Write(enc1(s[0]))
		}
	}
	if s != "" {
		panic("qr: " + m.name + " mode internal error")
	}
	return nil
}
