// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "errors"

// ErrDegree is returned for a generator polynomial degree
// that has no generator polynomial.
var ErrDegree = errors.New("gf256: invalid generator polynomial degree")

// Generator returns the Reed-Solomon generator polynomial of the given
// degree, (x - α**0)(x - α**1)...(x - α**(degree-1)), in exponent form:
// element i is the base-α logarithm of the coefficient of
// x**(degree-i).  The leading element is always 0.  The result has
// degree+1 elements, is computed once per field and degree, and must
// not be modified.
func (f *Field) Generator(degree int) ([]byte, error) {
	if degree < 1 || degree > MaxDegree {
		return nil, ErrDegree
	}
	g := &f.gen[degree]
	g.once.Do(func() {
		p := make([]byte, 1, degree+1)
		p[0] = 1
		for i := 0; i < degree; i++ {
			// p *= x + α**i
			a := f.exp[i]
			p = append(p, 0)
			for j := len(p) - 1; j > 0; j-- {
				p[j] ^= f.Mul(p[j-1], a)
			}
		}
		// No coefficient of a generator polynomial over GF(256)
		// is zero, so the exponent form is total.
		for i, v := range p {
			p[i] = f.log[v]
		}
		g.lp = p
	})
	return g.lp, nil
}

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a given number of error correction bytes.  An RSEncoder is
// not safe for concurrent use.
type RSEncoder struct {
	f    *Field
	c    int
	lgen []byte // generator polynomial, exponent form
	p    []byte // scratch message polynomial
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given field
// and number of error correction bytes.  It returns ErrDegree if there
// is no generator polynomial with c coefficients.
func NewRSEncoder(f *Field, c int) (*RSEncoder, error) {
	lgen, err := f.Generator(c)
	if err != nil {
		return nil, err
	}
	return &RSEncoder{f: f, c: c, lgen: lgen}, nil
}

// Degree returns the number of error correction bytes.
func (rs *RSEncoder) Degree() int { return rs.c }

// ECC writes to check the error correcting code bytes for data.
// It panics if check is shorter than the degree.
//
// The data is the dividend and the generator the divisor: for every
// data byte the generator is scaled by the leading coefficient of the
// remaining message, by adding its logarithm to each exponent, and
// subtracted from the message, eliminating the leading term.  What is
// left after len(data) steps is the remainder.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	c := rs.c
	if len(check) < c {
		panic("gf256: invalid check byte length")
	}
	n := len(data) + c
	if cap(rs.p) < n {
		rs.p = make([]byte, n)
	}
	p := rs.p[:n]
	copy(p, data)
	clear(p[len(data):])

	exp := &rs.f.exp
	for i := range data {
		lead := p[i]
		if lead == 0 {
			continue
		}
		shift := int(rs.f.log[lead])
		q := p[i+1 : i+1+c]
		for j, e := range rs.lgen[1:] {
			q[j] ^= exp[int(e)+shift]
		}
	}
	copy(check, p[len(data):])
}

// Encode returns the c error correction bytes for data.
func (rs *RSEncoder) Encode(data []byte) []byte {
	check := make([]byte, rs.c)
	rs.ECC(data, check)
	return check
}
