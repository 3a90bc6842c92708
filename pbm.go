// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	length, err := c.imageSide()
	if err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	scale, bord := c.Scale, c.Border
	row := make([]byte, (length+7)/8)
	for y := -bord; y < c.Size+bord; y++ {
		pbmRow(row, length, scale, func(x int) bool { return c.Dark(x-bord, y) })
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow fills row with nbit pixels, scale per module, 1 for dark
// modules as reported by dark, most significant bit first.  Padding
// bits are 0.
func pbmRow(row []byte, nbit, scale int, dark func(x int) bool) {
	clear(row)
	for x, i := 0, 0; i < nbit; x++ {
		v := dark(x)
		for n := 0; n < scale && i < nbit; n++ {
			if v {
				row[i>>3] |= 0x80 >> (i & 7)
			}
			i++
		}
	}
}
