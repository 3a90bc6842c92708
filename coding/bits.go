// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrencode/gf256"

// Bits is a bit buffer written most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version and level, including the interleaving buffer.
func NewBits(v Version, l Level) *Bits {
	n := vtab[v].bytes
	if nblock, _ := v.Blocks(l); nblock > 1 {
		n *= 2
	}
	return &Bits{b: make([]byte, 0, n)}
}

// Reset empties b, retaining its buffer.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Len returns the number of bits written to b.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the contents of b.  It panics if b does not hold
// a whole number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit&7 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v to b, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	for nbit > 0 {
		free := 8 - b.nbit&7
		if free == 8 {
			b.b = append(b.b, 0)
		}
		n := min(free, nbit)
		nbit -= n
		chunk := byte(v>>nbit) & (1<<n - 1)
		b.b[len(b.b)-1] |= chunk << (free - n)
		b.nbit += n
	}
}

// WriteBytes appends the bytes of p to b, 8 bits each.
func (b *Bits) WriteBytes(p []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, p...)
		b.nbit += len(p) * 8
		return
	}
	for _, c := range p {
		b.Write(uint32(c), 8)
	}
}

// add appends n zero bytes to a whole number of bytes in b
// and returns the added slice.
func (b *Bits) add(n int) []byte {
	start := len(b.Bytes())
	b.b = append(b.b, make([]byte, n)...)
	b.nbit += n * 8
	return b.b[start:]
}

// Pad bytes, alternating after the terminator.
const (
	pad0 = 0xec
	pad1 = 0x11
)

// Pad adds the terminator of up to 4 zero bits, zero bits to a byte
// boundary, and alternating pad bytes to b until it holds n bits.
// n must be a multiple of 8 not smaller than b.Len().
func (b *Bits) Pad(n int) {
	if b.nbit > n {
		panic("qr: too much data")
	}
	b.Write(0, min(4, n-b.nbit))
	b.Write(0, -b.nbit&7)
	for p := uint32(pad0); b.nbit < n; p ^= pad0 ^ pad1 {
		b.Write(p, 8)
	}
}

// AddCheckBytes pads b to the data length of the given version and
// level and adds the check bytes of every error correction block.
// Blocks are laid out one after another: the data blocks, shorter
// first, then the check blocks in the same order.
func (b *Bits) AddCheckBytes(v Version, l Level) {
	b.Pad(v.DataBits(l))
	nblock, check := v.Blocks(l)
	rs, err := NewRSEncoder(check)
	if err != nil {
		panic("qr: internal error: " + err.Error())
	}
	dat := b.Bytes()
	db := len(dat) / nblock
	short := nblock - len(dat)%nblock
	for i := 0; i < nblock; i++ {
		n := db
		if i >= short {
			n++
		}
		// dat keeps the old buffer if add reallocates;
		// its contents are unchanged.
		rs.ECC(dat[:n], b.add(check))
		dat = dat[n:]
	}
	if len(b.b) != vtab[v].bytes {
		panic("qr: internal error")
	}
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  Blocks are of equal length, except that the last
// len(src)%nblock blocks have an extra byte.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	short := nblock - len(src)%nblock
	for i := 0; i < nblock; i++ {
		n := db
		if i >= short {
			n++
		}
		for j, c := range src[:n] {
			if j < db {
				dst[j*nblock+i] = c
			} else {
				dst[db*nblock+i-short] = c
			}
		}
		src = src[n:]
	}
}

// Permute returns a BitStream reading data and check bits in b with
// blocks interleaved for the given version and level, followed by the
// remainder bits.
func (b *Bits) Permute(v Version, l Level) *BitStream {
	vt := &vtab[v]
	src := b.Bytes()
	if len(src) != vt.bytes {
		panic("qr: wrong data length")
	}
	dst := src
	if nblock, _ := v.Blocks(l); nblock != 1 {
		if cap(src) >= len(src)*2 {
			dst = src[len(src) : len(src)*2]
		} else {
			dst = make([]byte, len(src))
		}
		nd := v.dataBytes(l)
		interleave(dst[:nd], src[:nd], nblock)
		interleave(dst[nd:], src[nd:], nblock)
	}
	return &BitStream{b: dst, n: len(dst)*8 + vt.remainder}
}

// BitStream reads bits from the underlying buffer, followed by zero
// bits up to its length.
type BitStream struct {
	b   []byte
	pos int
	n   int
}

// NewBitStream returns a BitStream reading the bits of b.
func NewBitStream(b []byte) *BitStream {
	return &BitStream{b: b, n: len(b) * 8}
}

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Remaining returns the number of bits left to read.
func (s *BitStream) Remaining() int { return s.n - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past the end of the buffer Next returns 0.
func (s *BitStream) Next() byte {
	var c byte
	if i := s.pos >> 3; i < len(s.b) {
		c = s.b[i] >> (7 &^ s.pos) & 1
	}
	s.pos++
	return c
}

// qrDegrees are the block check lengths used by QR codes.
var qrDegrees = func() (d [gf256.MaxDegree + 1]bool) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, lev := range vtab[v].level {
			d[lev.check] = true
		}
	}
	return d
}()

// Generator returns the generator polynomial of the given degree in
// exponent form, as Field.Generator does.  Only the degrees used by QR
// error correction blocks are valid; others yield gf256.ErrDegree.
func Generator(degree int) ([]byte, error) {
	if degree < 0 || degree >= len(qrDegrees) || !qrDegrees[degree] {
		return nil, gf256.ErrDegree
	}
	return Field.Generator(degree)
}

// NewRSEncoder returns a Reed-Solomon encoder over Field producing
// degree check bytes, for a degree accepted by Generator.
func NewRSEncoder(degree int) (*gf256.RSEncoder, error) {
	if _, err := Generator(degree); err != nil {
		return nil, err
	}
	return gf256.NewRSEncoder(Field, degree)
}
