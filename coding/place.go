// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Serialise writes bits from s to the Unset modules of m in zigzag
// scan order: two columns at a time from the right edge, alternately
// upwards and downwards, right column first, skipping the vertical
// timing pattern.  A 1 bit is written as Dark, a 0 bit as Light.
// Serialise stops when s or the matrix is exhausted.
func (p *Plan) Serialise(s *BitStream, m *Matrix) {
	siz := m.Size
	if siz != p.Size {
		panic("qr: matrix size mismatch")
	}
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if m.At(xx, y) != Unset {
					continue
				}
				if s.Remaining() == 0 {
					return
				}
				v := Light
				if s.Next() != 0 {
					v = Dark
				}
				m.Set(xx, y, v)
			}
		}
		up = !up
	}
}
