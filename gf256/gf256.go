// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and systematic Reed-Solomon encoding over it.
package gf256 // import "github.com/unixdj/qrencode/gf256"

import (
	"strconv"
	"sync"
)

// MaxDegree is the largest degree of a generator polynomial,
// limited by the length of a GF(256) codeword.
const MaxDegree = 254

// A Field represents an instance of GF(256) defined by a specific
// polynomial and generator.  Its tables are immutable after NewField
// returns, and a Field is safe for concurrent use.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // exp[i] == exp[i+255], so sums of logs need no mod

	gen [MaxDegree + 1]struct {
		once sync.Once
		lp   []byte
	}
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// The choice of generator α only affects the Exp and Log operations.
// NewField panics if poly is not a primitive polynomial of degree 8
// or α does not generate the multiplicative group.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	f := new(Field)
	x := 1
	for i := 0; i < 255; i++ {
		if x == 0 || x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return f
}

// mul returns the product x*y mod poly, a GF(256) multiplication
// done the slow way.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns α**(e mod 255).
func (f *Field) Exp(e int) byte {
	if e %= 255; e < 0 {
		e += 255
	}
	return f.exp[e]
}

// Log returns the base-α logarithm of x in the field.
// Log panics if x == 0, as the logarithm of zero is undefined.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log of zero")
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// Inv panics if x == 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		panic("gf256: division by zero")
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
// A zero operand yields zero.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Div returns the quotient x/y in the field.  Div panics if y == 0.
func (f *Field) Div(x, y byte) byte {
	if y == 0 {
		panic("gf256: division by zero")
	}
	if x == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+255-int(f.log[y])]
}
