// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// palette returns the light and dark colours.
func (c *Code) palette() color.Palette {
	if c.Palette != nil {
		return color.Palette{c.Palette[0], c.Palette[1]}
	}
	return color.Palette{whiteColor, blackColor}
}

// Image returns an Image displaying the code, with c.Scale pixels per
// module and the quiet zone.  The image is empty if the rendering
// parameters are invalid.
func (c *Code) Image() image.Image {
	d, _ := c.imageSide()
	return &codeImage{c, c.palette(), d}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal  color.Palette
	side int
}

func (c *codeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.side, c.side)
}

func (c *codeImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= c.side || y >= c.side {
		return c.pal[0]
	}
	b := c.Border
	if c.Dark(x/c.Scale-b, y/c.Scale-b) {
		return c.pal[1]
	}
	return c.pal[0]
}

func (c *codeImage) ColorModel() color.Model { return c.pal }

// Paletted returns a two colour image displaying the code, as Image
// does, with the colour index 1 for dark pixels.
func (c *Code) Paletted() (*image.Paletted, error) {
	d, err := c.imageSide()
	if err != nil {
		return nil, err
	}
	img := image.NewPaletted(image.Rect(0, 0, d, d), c.palette())
	n, s, b := d/c.Scale, c.Scale, c.Border
	for y := 0; y < n; y++ {
		off := y * s * img.Stride
		row := img.Pix[off : off+d]
		for x := 0; x < n; x++ {
			if c.Dark(x-b, y-b) {
				px := row[x*s : (x+1)*s]
				for i := range px {
					px[i] = 1
				}
			}
		}
		for i := 1; i < s; i++ {
			copy(img.Pix[off+i*img.Stride:], row)
		}
	}
	return img, nil
}

// PNG returns a PNG image displaying the code, or nil if the rendering
// parameters are invalid.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	img, err := c.Paletted()
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
