// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Text is encoded as a single segment, in the mode given by the caller or
inferred by Classify, in the smallest version that holds it unless a
version is given.  The resulting Code holds the module matrix and can
be rendered as an image, PNG, PBM or text.
*/
package qr // import "github.com/unixdj/qrencode"

import (
	"errors"
	"image/color"
	"unicode/utf8"

	"github.com/unixdj/qrencode/coding"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// AutoMode selects the mode with Classify.
const AutoMode coding.Mode = -1

// Options control encoding.  The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	Level   Level          // error correction level
	Version coding.Version // QR version, or 0 for the smallest that fits
	Mode    coding.Mode    // encoding mode, or AutoMode
	Mask    coding.Mask    // mask pattern, or coding.AutoMask

	// Logf, if not nil, receives debugging output.
	Logf func(format string, args ...any)
}

// DefaultOptions returns the options used by Encode: level H,
// automatic version, mode and mask.
func DefaultOptions() Options {
	return Options{Level: H, Mode: AutoMode, Mask: coding.AutoMask}
}

// A Code is a QR code with rendering parameters.
// Modules outside the matrix form the quiet zone.
type Code struct {
	*coding.Matrix                // modules, Dark or Light
	Version        coding.Version // QR version
	Level          Level          // error correction level
	Mask           coding.Mask    // mask pattern
	Mode           coding.Mode    // encoding mode of the data
	Penalty        int            // penalty of the chosen mask

	Border  int             // quiet zone width in modules
	Scale   int             // image pixels per module
	Reverse bool            // swap dark and light
	Palette *[2]color.Color // light and dark colours, nil for white and black
}

// Default rendering parameters.
const (
	DefaultBorder = 4
	DefaultScale  = 8
)

// Classify returns the mode for encoding text: Numeric for digits,
// Alphanumeric for text in the alphanumeric character set, Latin1 for
// text with non-ASCII runes all encodable in ISO 8859-1, and Byte for
// anything else, including invalid UTF-8 and the empty string.
func Classify(text string) coding.Mode {
	if text == "" {
		return coding.Byte
	}
	digits, alpha, ascii := true, true, true
	for _, r := range text {
		if r == utf8.RuneError {
			return coding.Byte
		}
		digits = digits && coding.IsDigit(r)
		alpha = alpha && coding.IsAlphanumeric(r)
		ascii = ascii && r < utf8.RuneSelf
		if r > 0xff {
			return coding.Byte
		}
	}
	switch {
	case digits:
		return coding.Numeric
	case alpha:
		return coding.Alphanumeric
	case !ascii:
		return coding.Latin1
	}
	return coding.Byte
}

// Encode returns an encoding of text at the given error correction
// level, with DefaultOptions otherwise.
func Encode(text string, level Level) (*Code, error) {
	opt := DefaultOptions()
	opt.Level = level
	return EncodeOptions(text, opt)
}

// EncodeOptions returns an encoding of text with the given options.
func EncodeOptions(text string, opt Options) (*Code, error) {
	l := coding.Level(opt.Level)
	if !l.IsValid() {
		return nil, coding.ErrLevel
	}
	seg := coding.Segment{Text: text, Mode: opt.Mode}
	if seg.Mode == AutoMode {
		seg.Mode = Classify(text)
	}
	n, err := seg.Count()
	if err != nil {
		return nil, err
	}
	v := opt.Version
	if v == 0 {
		if v, err = coding.ChooseVersion(n, seg.Mode, l); err != nil {
			return nil, err
		}
	}
	logf(opt.Logf, "qr: %d %s characters, version %s level %s",
		n, seg.Mode, v, l)

	e, err := coding.NewEncoder(v, l)
	if err != nil {
		return nil, err
	}
	e.Logf = opt.Logf
	cc, err := e.Encode(opt.Mask, seg)
	if err != nil {
		return nil, err
	}
	return &Code{
		Matrix:  cc.Matrix,
		Version: cc.Version,
		Level:   opt.Level,
		Mask:    cc.Mask,
		Mode:    seg.Mode,
		Penalty: cc.Penalty.Total(),
		Border:  DefaultBorder,
		Scale:   DefaultScale,
	}, nil
}

func logf(f func(string, ...any), format string, args ...any) {
	if f != nil {
		f(format, args...)
	}
}

// Dark reports whether the module at (x, y) is drawn in the dark
// colour, taking c.Reverse into account.  The quiet zone around the
// matrix counts as light modules.
func (c *Code) Dark(x, y int) bool { return c.Black(x, y) != c.Reverse }

// pixels returns the number of modules on a side including the quiet
// zone, after checking the rendering parameters.
func (c *Code) pixels() (int, error) {
	if c == nil || c.Matrix == nil || c.Border < 0 {
		return 0, ErrArgs
	}
	return c.Size + 2*c.Border, nil
}

// maxSide is the maximum image width in pixels, keeping a paletted
// image under 1 GB.
const maxSide = 1 << 15

// imageSide returns the image width in pixels.
func (c *Code) imageSide() (int, error) {
	n, err := c.pixels()
	if err != nil {
		return 0, err
	}
	if c.Scale < 1 {
		return 0, ErrArgs
	}
	if c.Scale > maxSide/n {
		return 0, ErrLargeImage
	}
	return n * c.Scale, nil
}
