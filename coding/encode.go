// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AutoMask selects the mask with the lowest penalty.
const AutoMask Mask = -1

// A Code is a finished QR code.
type Code struct {
	*Matrix         // modules, all Dark or Light
	Version Version // QR code version
	Level   Level   // error correction level
	Mask    Mask    // mask pattern
	Penalty Penalty // penalty of the chosen mask
}

// Encoder encodes a QR code.
type Encoder struct {
	p *Plan
	b *Bits

	// Logf, if not nil, receives debugging output.
	Logf func(format string, args ...any)
}

func newEncoder(p *Plan) *Encoder {
	return &Encoder{p: p, b: NewBits(p.Version, p.Level)}
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(v Version, l Level) (*Encoder, error) {
	p, err := NewPlan(v, l)
	if err != nil {
		return nil, err
	}
	return newEncoder(p), nil
}

func (e *Encoder) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}

// Write adds segments to e.
func (e *Encoder) Write(text ...Segment) error {
	class := e.p.Version.SizeClass()
	for _, t := range text {
		if err := t.Encode(e.b, class); err != nil {
			return err
		}
	}
	return nil
}

// Reset discards the segments written to e.
func (e *Encoder) Reset() { e.b.Reset() }

// Data returns the unmasked matrix holding the data written to e with
// padding and check bytes: the function patterns with data modules
// filled in and the format information not yet written.
func (e *Encoder) Data() (*Matrix, error) {
	v, l := e.p.Version, e.p.Level
	if n := e.b.Len(); n > e.p.DataBits {
		return nil, fmt.Errorf("%w: %d bits exceed %d data bits "+
			"of version %s level %s", ErrNoFit, n, e.p.DataBits, v, l)
	}
	e.b.AddCheckBytes(v, l)
	s := e.b.Permute(v, l)
	m := e.p.Template()
	e.p.Serialise(s, m)
	if n := s.Remaining(); n != 0 {
		panic(fmt.Sprintf("qr: internal error: %d bits not placed", n))
	}
	if n := m.Count(Unset); n != 0 {
		panic(fmt.Sprintf("qr: internal error: %d modules unset", n))
	}
	return m, nil
}

// Code returns a QR code containing the data written to e, masked with
// mask k, or with the mask of the lowest penalty if k is AutoMask.
// The segments written to e are consumed.
func (e *Encoder) Code(k Mask) (*Code, error) {
	if k != AutoMask && !k.IsValid() {
		return nil, ErrMask
	}
	data, err := e.Data()
	e.Reset()
	if err != nil {
		return nil, err
	}
	c := &Code{Version: e.p.Version, Level: e.p.Level, Mask: k}
	if k != AutoMask {
		if c.Matrix, err = e.p.Mask(data, k); err != nil {
			return nil, err
		}
		c.Penalty = Evaluate(c.Matrix)
		return c, nil
	}

	// Evaluate the candidates concurrently, each on its own matrix,
	// and choose the lowest penalty, the lowest mask on a tie.
	var (
		cand [NumMasks]*Matrix
		pen  [NumMasks]Penalty
	)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := Mask(0); k < NumMasks; k++ {
		k := k
		g.Go(func() error {
			m, err := e.p.Mask(data, k)
			if err != nil {
				return err
			}
			cand[k], pen[k] = m, Evaluate(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	best := Mask(0)
	for k, p := range pen {
		e.logf("mask %d: penalty %d %+v", k, p.Total(), p)
		if p.Total() < pen[best].Total() {
			best = Mask(k)
		}
	}
	e.logf("version %s level %s: chose mask %d", c.Version, c.Level, best)
	c.Matrix, c.Mask, c.Penalty = cand[best], best, pen[best]
	return c, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(k Mask, text ...Segment) (*Code, error) {
	if err := e.Write(text...); err != nil {
		e.Reset()
		return nil, err
	}
	return e.Code(k)
}

// Encode encodes text using an Encoder with the given version and
// level, choosing the mask.
func Encode(v Version, l Level, text ...Segment) (*Code, error) {
	e, err := NewEncoder(v, l)
	if err != nil {
		return nil, err
	}
	return e.Encode(AutoMask, text...)
}
