// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strings"
)

// A Module is the state of one cell of a QR code.
type Module byte

const (
	Unset Module = iota // not yet placed
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Unset:
		return "unset"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Module(%d)", byte(m))
}

// A Matrix is a square grid of modules, stored row by row.
type Matrix struct {
	Size int      // number of modules on a side
	mod  []Module // Size*Size modules
}

// NewMatrix returns a size×size Matrix with all modules Unset.
func NewMatrix(size int) *Matrix {
	if size <= 0 {
		panic("qr: invalid matrix size")
	}
	return &Matrix{Size: size, mod: make([]Module, size*size)}
}

func (m *Matrix) index(x, y int) int {
	if uint(x) >= uint(m.Size) || uint(y) >= uint(m.Size) {
		panic(fmt.Sprintf("qr: module (%d,%d) out of %d×%d matrix",
			x, y, m.Size, m.Size))
	}
	return y*m.Size + x
}

// At returns the module in column x of row y.
// It panics if (x, y) is outside the matrix.
func (m *Matrix) At(x, y int) Module { return m.mod[m.index(x, y)] }

// Set sets the module in column x of row y.
// It panics if (x, y) is outside the matrix.
func (m *Matrix) Set(x, y int, v Module) { m.mod[m.index(x, y)] = v }

// Black reports whether the module at (x, y) is dark.  Unlike At,
// it accepts any coordinates, reporting modules outside the matrix
// as light, for drawing the quiet zone.
func (m *Matrix) Black(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.mod[y*m.Size+x] == Dark
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{Size: m.Size, mod: append([]Module(nil), m.mod...)}
}

// Equal reports whether m and n hold the same modules.
func (m *Matrix) Equal(n *Matrix) bool {
	if m.Size != n.Size {
		return false
	}
	for i, v := range m.mod {
		if n.mod[i] != v {
			return false
		}
	}
	return true
}

// Count returns the number of modules in state v.
func (m *Matrix) Count(v Module) int {
	n := 0
	for _, w := range m.mod {
		if w == v {
			n++
		}
	}
	return n
}

// String returns the matrix as text, one line per row, with '#' for
// dark, '.' for light and '?' for unset modules.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow((m.Size + 1) * m.Size)
	for i, v := range m.mod {
		b.WriteByte("?.#"[v])
		if i%m.Size == m.Size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
