// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// Half block characters indexed by the top and bottom pixels.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// EncodeUTF8 writes the code to w as text, two rows of modules per
// line, using block characters for light modules, as suits a terminal
// with light text on a dark background.  With c.Reverse, block
// characters draw dark modules instead.  c.Scale is disregarded.
func (c *Code) EncodeUTF8(w io.Writer) error {
	pix, err := c.pixels()
	if err != nil {
		return err
	}
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	bord := c.Border
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := 0
			if !c.Dark(x, y) {
				i |= 2
			}
			if y+1 < c.Size+bord && !c.Dark(x, y+1) {
				i |= 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())
	return err
}

// String returns the code as EncodeUTF8 writes it.
func (c *Code) String() string {
	var b strings.Builder
	if err := c.EncodeUTF8(&b); err != nil {
		return err.Error()
	}
	return b.String()
}

// EncodeASCII writes the code to w as text, one row of modules per
// line, each module two characters wide: "##" for dark and two spaces
// for light.  c.Scale is disregarded.
func (c *Code) EncodeASCII(w io.Writer) error {
	pix, err := c.pixels()
	if err != nil {
		return err
	}
	bord := c.Border
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < c.Size+bord; y++ {
		for x := -bord; x < c.Size+bord; x++ {
			var p byte = ' '
			if c.Dark(x, y) {
				p = '#'
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err = w.Write(b)
	return err
}
