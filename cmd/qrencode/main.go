// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qrencode writes a QR code encoding its arguments or standard
// input as an image or text.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"go.uber.org/zap"

	qr "github.com/unixdj/qrencode"
	"github.com/unixdj/qrencode/coding"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone, -1 for default
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	lev     qr.Level        // error correction level
	ver     coding.Version  // QR version, 0 for automatic
	mask    coding.Mask     // mask pattern
	mode    coding.Mode     // encoding mode
	format  int             // output file format
	cx      int             // randr source X coordinate index in inc
	inc     [2]int          // randr source X,Y coordinate increments
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	kanji   int             // -k count
	latin1  bool            // Latin-1 byte mode
	byte8   bool            // byte mode
	upper   bool            // uppercase
	debug   bool            // debug logging
}{
	inc:  [2]int{1, 1},
	bg:   rgba{0xff, 0xff, 0xff, 0xff},
	fg:   rgba{0x00, 0x00, 0x00, 0xff},
	mode: qr.AutoMode,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  The encoding mode is chosen from the data unless
given by -1, -8 or -k.  Set QRENCODE_LOG_LEVEL=debug or use -d to see
the mask penalties.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	bb := b.Bytes()
	if n := bytes.Index(bb, []byte(" [-1]")); n >= 0 {
		w.Write(bb[:n])
		bb = bb[n+len(" [-1]"):]
	}
	w.Write(bb)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrencode version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

func kanji() {
	g.kanji++
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii", "json", "jsoni",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	(*qr.Code).EncodePNG,
	(*qr.Code).EncodePBM,
	eps,
	(*qr.Code).EncodeUTF8,
	(*qr.Code).EncodeASCII,
	encodeJSON,
}

// formatIndex returns the encoder index for the output type name and
// whether colours are inverted.
func formatIndex(name string) (int, bool, bool) {
	for i, v := range formats {
		if name == v {
			return i >> 1, i&1 != 0, true
		}
	}
	return 0, false, false
}

// inputMode returns the encoding mode selected by the -1, -8 and -k
// flags.
func inputMode(latin1, byte8 bool, kanji int) (coding.Mode, error) {
	mode, n := qr.AutoMode, 0
	if latin1 {
		mode, n = coding.Latin1, n+1
	}
	if byte8 {
		mode, n = coding.Byte, n+1
	}
	switch {
	case kanji == 1:
		mode, n = coding.Kanji, n+1
	case kanji > 1:
		mode, n = coding.ShiftJISKanji, n+1
	}
	if n > 1 {
		return 0, errors.New("-1, -8 and -k are incompatible")
	}
	return mode, nil
}

// margin returns the quiet zone width given by -m, or -1 for the
// default if -m is not set.
func margin(set bool, m int) (int, error) {
	switch {
	case !set:
		return -1, nil
	case m < 0:
		return 0, fmt.Errorf("-m %d: negative margin", m)
	}
	return m, nil
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or SVG colour name; `+
		`only for types png[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(opt(kanji), 'k', "encode in kanji mode; "+
		"-kk: Shift JIS input").SetFlag()
	getopt.Flag(&g.latin1, '1', "encode in byte mode, converted to Latin-1")
	getopt.Flag(&g.byte8, '8', "encode in byte mode without conversion")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.debug, 'd', "log debugging output to standard error")
	getopt.Flag(&g.border, 'm', `quiet zone modules [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version, 0 for the smallest that fits", "ver")
	mask := getopt.Signed('M', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 7},
		"mask pattern, -1 for the lowest penalty", "mask")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "h",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12}),
		`image pixels (type eps[i]: points) per QR module; `+
			`ignored for types utf8[i], ascii[i] and json[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	var err error
	if g.mode, err = inputMode(g.latin1, g.byte8, g.kanji); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}
	g.scale = int(*scale)
	g.ver = coding.Version(*ver)
	g.mask = coding.Mask(*mask)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if g.border, err = margin(getopt.IsSet('m'), g.border); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(os.Stdout.Fd()) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	g.format, g.rev, _ = formatIndex(*ff)
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
}

// readInput returns the joined arguments, or standard input with the
// final newline stripped.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return "", err
	}
	s, _ := strings.CutSuffix(
		strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s, nil
}

func main() {
	parseFlags()
	log, err := newLogger(g.debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qrencode:", err)
		os.Exit(1)
	}
	defer log.Sync()

	s, err := readInput(getopt.Args(), os.Stdin)
	if err != nil {
		log.Fatal("reading input", zap.Error(err))
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	o := qr.DefaultOptions()
	o.Level = g.lev
	o.Version = g.ver
	o.Mode = g.mode
	o.Mask = g.mask
	o.Logf = log.Sugar().Debugf
	c, err := qr.EncodeOptions(s, o)
	if err != nil {
		log.Fatal("encoding", zap.Error(err))
	}
	log.Debug("encoded",
		zap.Stringer("version", c.Version),
		zap.Stringer("level", c.Level),
		zap.Stringer("mode", c.Mode),
		zap.Stringer("mask", c.Mask),
		zap.Int("penalty", c.Penalty))
	if err := write(c); err != nil {
		log.Fatal("writing", zap.String("file", g.fn), zap.Error(err))
	}
}

func write(c *qr.Code) error {
	c.Matrix = randr(c.Matrix, g.cx, g.inc)
	c.Scale = g.scale
	c.Palette = g.palette
	c.Reverse = g.rev
	if g.border >= 0 {
		c.Border = g.border
	}
	if g.fn == "" {
		return encoders[g.format](c, os.Stdout)
	}
	w, err := os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	err = encoders[g.format](c, w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

// randr returns m rotated and reflected.  cx is the index in inc of
// the source X coordinate, inc holds the source X and Y increments.
func randr(m *coding.Matrix, cx int, inc [2]int) *coding.Matrix {
	if cx == 0 && inc == [2]int{1, 1} {
		return m
	}
	siz := m.Size
	r := coding.NewMatrix(siz)
	var coord [2]int
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		for x := 0; x < siz; x++ {
			r.Set(x, y, m.At(coord[0], coord[1]))
			coord[cx] += inc[0]
		}
		coord[cx^1] += inc[1]
	}
	return r
}
