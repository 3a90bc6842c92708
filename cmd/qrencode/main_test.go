// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	jsonv2 "github.com/go-json-experiment/json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	qr "github.com/unixdj/qrencode"
	"github.com/unixdj/qrencode/coding"
)

func hello(t *testing.T) *qr.Code {
	t.Helper()
	c, err := qr.Encode("HELLO WORLD", qr.H)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestColour(t *testing.T) {
	c := qt.New(t)
	for _, tt := range []struct {
		in   string
		want rgba
	}{
		{"fff", rgba{0xff, 0xff, 0xff, 0xff}},
		{"1234", rgba{0x11, 0x22, 0x33, 0x44}},
		{"00ff00", rgba{0x00, 0xff, 0x00, 0xff}},
		{"80808040", rgba{0x80, 0x80, 0x80, 0x40}},
		{"Navy", rgba{0x00, 0x00, 0x80, 0xff}},
		{"light blue", rgba{0xad, 0xd8, 0xe6, 0xff}},
	} {
		var v rgba
		c.Check(v.parse(tt.in), qt.IsNil, qt.Commentf("%q", tt.in))
		c.Check(v, qt.Equals, tt.want, qt.Commentf("%q", tt.in))
	}
	for _, s := range []string{"", "xyz", "12345", "fffffffff"} {
		var v rgba
		c.Check(v.parse(s), qt.ErrorMatches, `".*": bad colour spec`)
	}

	c.Check((&rgba{0, 0, 0, 0xff}).String(), qt.Equals, "black")
	c.Check((&rgba{0xff, 0xff, 0xff, 0xff}).String(), qt.Equals, "white")
	c.Check((&rgba{0x12, 0x34, 0x56, 0xff}).String(), qt.Equals, "123456")
	c.Check((&rgba{0x12, 0x34, 0x56, 0x78}).String(), qt.Equals, "12345678")
}

func TestInputMode(t *testing.T) {
	c := qt.New(t)
	for _, tt := range []struct {
		latin1, byte8 bool
		kanji         int
		want          coding.Mode
	}{
		{false, false, 0, qr.AutoMode},
		{true, false, 0, coding.Latin1},
		{false, true, 0, coding.Byte},
		{false, false, 1, coding.Kanji},
		{false, false, 3, coding.ShiftJISKanji},
	} {
		m, err := inputMode(tt.latin1, tt.byte8, tt.kanji)
		c.Check(err, qt.IsNil)
		c.Check(m, qt.Equals, tt.want)
	}
	_, err := inputMode(true, true, 0)
	c.Check(err, qt.IsNotNil)
	_, err = inputMode(false, true, 1)
	c.Check(err, qt.IsNotNil)
}

func TestMargin(t *testing.T) {
	c := qt.New(t)
	m, err := margin(false, 7)
	c.Check(err, qt.IsNil)
	c.Check(m, qt.Equals, -1)
	m, err = margin(true, 0)
	c.Check(err, qt.IsNil)
	c.Check(m, qt.Equals, 0)
	m, err = margin(true, 2)
	c.Check(err, qt.IsNil)
	c.Check(m, qt.Equals, 2)
	_, err = margin(true, -1)
	c.Check(err, qt.ErrorMatches, "-m -1: negative margin")
}

func TestFormatIndex(t *testing.T) {
	c := qt.New(t)
	c.Assert(formats, qt.HasLen, 2*len(encoders))
	i, rev, ok := formatIndex("pbmi")
	c.Check([]any{i, rev, ok}, qt.DeepEquals, []any{1, true, true})
	i, rev, ok = formatIndex("json")
	c.Check([]any{i, rev, ok}, qt.DeepEquals, []any{5, false, true})
	_, _, ok = formatIndex("gif")
	c.Check(ok, qt.IsFalse)
}

func TestReadInput(t *testing.T) {
	c := qt.New(t)
	s, err := readInput([]string{"HELLO", "WORLD"}, nil)
	c.Check(err, qt.IsNil)
	c.Check(s, qt.Equals, "HELLO WORLD")
	s, err = readInput(nil, strings.NewReader("a\r\nb\n"))
	c.Check(err, qt.IsNil)
	c.Check(s, qt.Equals, "a\nb")
	s, err = readInput(nil, strings.NewReader("x\n\n"))
	c.Check(err, qt.IsNil)
	c.Check(s, qt.Equals, "x\n")
}

func TestRandr(t *testing.T) {
	c := qt.New(t)
	m := hello(t).Matrix
	n := m.Size - 1
	c.Check(randr(m, 0, [2]int{1, 1}), qt.Equals, m)

	f := randr(m, 0, [2]int{-1, 1})
	r := randr(m, 1, [2]int{1, -1})
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			if f.At(x, y) != m.At(n-x, y) {
				t.Fatalf("flip (%d,%d)", x, y)
			}
			if r.At(x, y) != m.At(n-y, x) {
				t.Fatalf("rotate (%d,%d)", x, y)
			}
		}
	}
	c.Check(randr(f, 0, [2]int{-1, 1}).Equal(m), qt.IsTrue)
	r = randr(randr(randr(r, 1, [2]int{1, -1}), 1, [2]int{1, -1}), 1, [2]int{1, -1})
	c.Check(r.Equal(m), qt.IsTrue)
}

func TestJSON(t *testing.T) {
	c := qt.New(t)
	code := hello(t)
	code.Border = 0
	var b bytes.Buffer
	c.Assert(encodeJSON(code, &b), qt.IsNil)
	var j jsonCode
	c.Assert(jsonv2.Unmarshal(b.Bytes(), &j), qt.IsNil)
	c.Check(j.Version, qt.Equals, 2)
	c.Check(j.Level, qt.Equals, "H")
	c.Check(j.Mask, qt.Equals, 5)
	c.Check(j.Mode, qt.Equals, "alphanumeric")
	c.Check(j.Penalty, qt.Equals, 481)
	c.Check(j.Size, qt.Equals, 25)
	c.Assert(j.Rows, qt.HasLen, 25)
	c.Check(j.Rows[0], qt.Equals, "1111111011101101101111111")

	code.Border = 2
	code.Reverse = true
	b.Reset()
	c.Assert(encodeJSON(code, &b), qt.IsNil)
	c.Assert(jsonv2.Unmarshal(b.Bytes(), &j), qt.IsNil)
	c.Assert(j.Rows, qt.HasLen, 29)
	c.Check(j.Rows[0], qt.Equals, strings.Repeat("1", 29))
	c.Check(j.Rows[2], qt.Equals, "11"+"0000000100010010010000000"+"11")

	code.Border = -1
	c.Check(encodeJSON(code, &b), qt.ErrorIs, qr.ErrArgs)
}

func TestEPS(t *testing.T) {
	c := qt.New(t)
	code := hello(t)
	var b bytes.Buffer
	c.Assert(eps(code, &b), qt.IsNil)
	s := b.String()
	c.Check(strings.HasPrefix(s, "%!PS-Adobe-2.0 EPSF-2.0\n"), qt.IsTrue)
	c.Check(s, qt.Contains, "%%Title: QR Code version 2-H\n")
	c.Check(s, qt.Not(qt.Contains), "setrgbcolor")
	c.Check(strings.HasSuffix(s, "%%Trailer\n"), qt.IsTrue)
	c.Check(strings.Count(s, " r\n"), qt.Equals, 25)
	// #######.###.##.##.#######
	c.Check(s, qt.Contains, "\n7 0 p 3 1 p 2 1 p 2 1 p 7 1 p r\n")

	code.Palette = &[2]color.Color{color.White, color.RGBA{0, 0, 0x80, 0xff}}
	b.Reset()
	c.Assert(eps(code, &b), qt.IsNil)
	c.Check(b.String(), qt.Contains, "1 1 1 setrgbcolor\n")
	c.Check(b.String(), qt.Contains, "0 0 0.502 setrgbcolor\n")

	code.Scale = 0
	c.Check(eps(code, &b), qt.ErrorIs, qr.ErrArgs)
}

func TestLogLevel(t *testing.T) {
	c := qt.New(t)
	c.Check(logLevel(true).Level(), qt.Equals, zap.DebugLevel)
	for _, tt := range []struct {
		env  string
		want zapcore.Level
	}{
		{"", zap.WarnLevel},
		{"bogus", zap.WarnLevel},
		{" Info ", zap.InfoLevel},
		{"debug", zap.DebugLevel},
	} {
		t.Setenv("QRENCODE_LOG_LEVEL", tt.env)
		c.Check(logLevel(false).Level(), qt.Equals, tt.want,
			qt.Commentf("%q", tt.env))
	}
}
