// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"
)

// Matrix construction stages, in the order they run.
type stage int

const (
	stageAlloc stage = iota
	stageFinder
	stageSeparator
	stageAlignment
	stageTiming
	stageFormat
	stageVersion
	stageDark
)

var stageNames = [...]string{
	"allocation", "finder patterns", "separators", "alignment patterns",
	"timing patterns", "format area", "version information", "dark module",
}

func (s stage) String() string {
	if 0 <= s && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// A builder draws the function patterns of a version into a matrix.
// Each drawing method runs its stage once and in order: a stage that
// has already run is a no-op, and a stage run before its predecessor
// panics.
type builder struct {
	v    Version
	m    *Matrix
	done stage // last completed stage
}

func newBuilder(v Version) *builder {
	return &builder{v: v, m: NewMatrix(v.Size())}
}

func (b *builder) run(s stage, draw func(m *Matrix)) {
	if s <= b.done {
		return
	}
	if s != b.done+1 {
		panic(fmt.Sprintf("qr: %s drawn before %s", s, b.done+1))
	}
	draw(b.m)
	b.done = s
}

// finderCorners returns the upper left corners of the finder patterns.
func finderCorners(size int) [3][2]int {
	return [3][2]int{{0, 0}, {size - 7, 0}, {0, size - 7}}
}

// finders draws the 7×7 finder patterns in three corners.
func (b *builder) finders() {
	b.run(stageFinder, func(m *Matrix) {
		for _, c := range finderCorners(m.Size) {
			for dy := 0; dy < 7; dy++ {
				for dx := 0; dx < 7; dx++ {
					v := Light
					if dx == 0 || dx == 6 || dy == 0 || dy == 6 ||
						2 <= dx && dx <= 4 && 2 <= dy && dy <= 4 {
						v = Dark
					}
					m.Set(c[0]+dx, c[1]+dy, v)
				}
			}
		}
	})
}

// separators draws the light border around each finder pattern.
func (b *builder) separators() {
	b.run(stageSeparator, func(m *Matrix) {
		for _, c := range finderCorners(m.Size) {
			for dy := -1; dy <= 7; dy++ {
				for dx := -1; dx <= 7; dx++ {
					x, y := c[0]+dx, c[1]+dy
					if x < 0 || x >= m.Size || y < 0 || y >= m.Size ||
						0 <= dx && dx < 7 && 0 <= dy && dy < 7 {
						continue
					}
					m.Set(x, y, Light)
				}
			}
		}
	})
}

// alignment draws the 5×5 alignment patterns at every combination of
// centre coordinates, except the three covered by finder patterns.
func (b *builder) alignment() {
	b.run(stageAlignment, func(m *Matrix) {
		a := vtab[b.v].align
		last := len(a) - 1
		for i, cy := range a {
			for j, cx := range a {
				if i == 0 && (j == 0 || j == last) || j == 0 && i == last {
					continue
				}
				for dy := -2; dy <= 2; dy++ {
					for dx := -2; dx <= 2; dx++ {
						v := Dark
						if max(dx, -dx, dy, -dy) == 1 {
							v = Light
						}
						m.Set(int(cx)+dx, int(cy)+dy, v)
					}
				}
			}
		}
	})
}

// timing draws the alternating row 6 and column 6 between the
// finder patterns.  Modules already drawn are kept.
func (b *builder) timing() {
	b.run(stageTiming, func(m *Matrix) {
		for i := 0; i < m.Size; i++ {
			v := Light
			if i&1 == 0 {
				v = Dark
			}
			if m.At(i, 6) == Unset {
				m.Set(i, 6, v)
			}
			if m.At(6, i) == Unset {
				m.Set(6, i, v)
			}
		}
	})
}

// format reserves the two copies of the format information,
// light until the mask is chosen.
func (b *builder) format() {
	b.run(stageFormat, func(m *Matrix) {
		for _, pos := range formatPositions(m.Size) {
			for _, p := range pos {
				m.Set(p[0], p[1], Light)
			}
		}
	})
}

// versionInfo draws the two copies of the version information,
// in versions 7 and up.
func (b *builder) versionInfo() {
	b.run(stageVersion, func(m *Matrix) {
		pat := vtab[b.v].pattern
		if pat == 0 {
			return
		}
		// 6×3 block above the bottom left finder pattern,
		// 3×6 block left of the top right one
		for i := 0; i < 18; i++ {
			v := Light
			if pat>>i&1 != 0 {
				v = Dark
			}
			a, c := m.Size-11+i%3, i/3
			m.Set(a, c, v)
			m.Set(c, a, v)
		}
	})
}

// dark draws the single dark module beside the bottom left
// finder pattern.
func (b *builder) dark() {
	b.run(stageDark, func(m *Matrix) {
		m.Set(8, m.Size-8, Dark)
	})
}

// build draws all function patterns and returns the matrix.
func (b *builder) build() *Matrix {
	b.finders()
	b.separators()
	b.alignment()
	b.timing()
	b.format()
	b.versionInfo()
	b.dark()
	return b.m
}

// formatPositions returns the (x, y) coordinates of the two copies of
// the format information, indexed by bit number, least significant
// first.
func formatPositions(size int) (pos [2][15][2]int) {
	for i := 0; i < 15; i++ {
		switch {
		case i < 6:
			pos[0][i] = [2]int{8, i}
		case i < 8:
			pos[0][i] = [2]int{8, i + 1} // skip timing row
		case i == 8:
			pos[0][i] = [2]int{7, 8}
		default:
			pos[0][i] = [2]int{14 - i, 8}
		}
		if i < 8 {
			pos[1][i] = [2]int{size - 1 - i, 8}
		} else {
			pos[1][i] = [2]int{8, size - 15 + i}
		}
	}
	return pos
}

// A Plan describes how to construct a QR code
// with a specific version and level.
type Plan struct {
	Version Version // QR code version
	Level   Level   // QR error correction Level

	DataBits int // number of data bits
	Size     int // number of modules on a side

	template *Matrix // function patterns, data modules Unset
}

// Matrix templates by version and plans by version and level, created
// the first time they are used and read-only afterwards.
var (
	templates [MaxVersion + 1]struct {
		once sync.Once
		m    *Matrix
	}
	plans [MaxVersion + 1][H + 1]struct {
		once sync.Once
		p    *Plan
	}
)

// template returns the function pattern matrix of version v with data
// modules Unset.  The matrix is shared and must not be modified.
func template(v Version) *Matrix {
	t := &templates[v]
	t.once.Do(func() { t.m = newBuilder(v).build() })
	return t.m
}

// NewPlan returns a Plan for a QR code with the given version and
// level.  Plans are shared and must not be modified.
func NewPlan(v Version, l Level) (*Plan, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	p := &plans[v][l]
	p.once.Do(func() {
		p.p = &Plan{
			Version:  v,
			Level:    l,
			DataBits: v.DataBits(l),
			Size:     v.Size(),
			template: template(v),
		}
	})
	return p.p, nil
}

// Template returns a copy of the function pattern matrix of the plan's
// version, with data modules Unset.
func (p *Plan) Template() *Matrix { return p.template.Clone() }

// IsData reports whether (x, y) is a data module.
func (p *Plan) IsData(x, y int) bool { return p.template.At(x, y) == Unset }
