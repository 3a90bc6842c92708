// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Penalty holds the mask evaluation scores of a QR code.
// Lower is better.
type Penalty struct {
	Runs    int // runs of 5 or more same-colour modules
	Boxes   int // 2×2 blocks of same-colour modules
	Finders int // finder-like patterns
	Balance int // deviation of the dark module ratio from 50%
}

// Total returns the sum of the scores.
func (p Penalty) Total() int { return p.Runs + p.Boxes + p.Finders + p.Balance }

// Evaluate returns the penalty of m, computed over rows and columns:
//
//   - Runs: for each run of n >= 5 modules -> n-2
//   - Boxes: for each possibly overlapping 2×2 box -> 3
//   - Finders: for each 1011101 pattern with 0000 on either side,
//     1 being dark -> 40
//   - Balance: for n% of dark modules, rounded down to a multiple of 5,
//     10 for every 5% of the distance to 50% from the nearer of n and
//     n+5
//
// Modules outside the matrix are not considered.
func Evaluate(m *Matrix) Penalty {
	const (
		minRun   = 5  // minimum penalised run length
		runDelta = -2 // add to run length
		boxPP    = 3  // points per box
		findPP   = 40 // points per finder-like pattern
		balPP    = 10 // points per 5% step

		// finder-like patterns in an 11 bit window
		findB    = 0b0000_1011101 // light before
		findA    = 0b1011101_0000 // light after
		findMask = 1<<11 - 1
	)
	var p Penalty
	siz := m.Size
	col := make([]Module, siz)
	line := func(ln []Module) {
		r := 0
		var pat uint16
		for i, v := range ln {
			if i > 0 && v != ln[i-1] {
				if r >= minRun {
					p.Runs += r + runDelta
				}
				r = 0
			}
			r++
			pat = (pat<<1 | uint16(v>>1)) & findMask // Dark>>1 == 1
			if i >= 10 && (pat == findB || pat == findA) {
				p.Finders += findPP
			}
		}
		if r >= minRun {
			p.Runs += r + runDelta
		}
	}
	for y := 0; y < siz; y++ {
		row := m.mod[y*siz : (y+1)*siz]
		line(row)
		if y == 0 {
			continue
		}
		prev := m.mod[(y-1)*siz : y*siz]
		for x := 1; x < siz; x++ {
			if v := row[x]; v == row[x-1] && v == prev[x] && v == prev[x-1] {
				p.Boxes += boxPP
			}
		}
	}
	for x := 0; x < siz; x++ {
		for y := range col {
			col[y] = m.mod[y*siz+x]
		}
		line(col)
	}

	pct := m.Count(Dark) * 100 / (siz * siz)
	lo := pct / 5 * 5
	p.Balance = min(abs(lo-50), abs(lo+5-50)) / 5 * balPP
	return p
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
