// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	qr "github.com/unixdj/qrencode"
)

// setrgbcolor returns the PostScript command setting colour c.
func setrgbcolor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%.3g %.3g %.3g setrgbcolor",
		float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}

// eps writes c as Encapsulated PostScript centred on a Letter page,
// c.Scale points per module.  Dark runs of each row are stroked as
// lines one module thick.
func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	if c == nil || c.Matrix == nil || c.Border < 0 || c.Scale < 1 {
		return qr.ErrArgs
	}
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: qrencode https://github.com/unixdj/qrencode
%%%%Title: QR Code version %s-%s
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		c.Version, c.Level, xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if c.Reverse || c.Palette != nil {
		var bg, fg color.Color = color.White, color.Black
		if c.Palette != nil {
			bg, fg = c.Palette[0], c.Palette[1]
		}
		if c.Reverse {
			bg, fg = fg, bg
		}
		fmt.Fprintf(b, `gsave
newpath %d %d moveto
%d dup neg scale
%s
1 0 rlineto stroke
grestore
%s
`,
			-bord, siz/2, siz+2*bord, setrgbcolor(bg), setrgbcolor(fg))
	}
	fmt.Fprintln(b, "newpath 0 0 moveto")
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			s := x
			for x < siz && !c.Black(x, y) {
				x++
			}
			if x == siz {
				break
			}
			d := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "%d %d p ", x-d, d-s)
		}
		fmt.Fprintln(b, "r")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	return b.Flush()
}
