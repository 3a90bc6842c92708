// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"strings"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	qr "github.com/unixdj/qrencode"
)

// jsonCode is the JSON form of a code.  Rows hold one character per
// module, '1' for dark and '0' for light, quiet zone included.
type jsonCode struct {
	Version int      `json:"version"`
	Level   string   `json:"level"`
	Mask    int      `json:"mask"`
	Mode    string   `json:"mode"`
	Penalty int      `json:"penalty"`
	Size    int      `json:"size"`
	Rows    []string `json:"rows"`
}

func newJSONCode(c *qr.Code) (*jsonCode, error) {
	if c == nil || c.Matrix == nil || c.Border < 0 {
		return nil, qr.ErrArgs
	}
	bord := c.Border
	j := &jsonCode{
		Version: int(c.Version),
		Level:   c.Level.String(),
		Mask:    int(c.Mask),
		Mode:    c.Mode.String(),
		Penalty: c.Penalty,
		Size:    c.Size,
		Rows:    make([]string, 0, c.Size+2*bord),
	}
	var b strings.Builder
	for y := -bord; y < c.Size+bord; y++ {
		b.Reset()
		for x := -bord; x < c.Size+bord; x++ {
			if c.Dark(x, y) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		j.Rows = append(j.Rows, b.String())
	}
	return j, nil
}

// encodeJSON writes c to w as an indented JSON object.
func encodeJSON(c *qr.Code, w io.Writer) error {
	j, err := newJSONCode(c)
	if err != nil {
		return err
	}
	if err := jsonv2.MarshalWrite(w, j, jsontext.WithIndent("  ")); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
