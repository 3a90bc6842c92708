// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unixdj/qrencode/gf256"
)

// HELLO WORLD at 2-H: data codewords after padding.
var helloData = []byte{
	32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17,
}

func helloBits(t *testing.T) *Bits {
	t.Helper()
	b := NewBits(2, H)
	if err := (Segment{"HELLO WORLD", Alphanumeric}).Encode(b, Class0); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBitsWrite(t *testing.T) {
	b := new(Bits)
	b.Write(0b101, 3)
	b.Write(0xff, 8)
	b.Write(0, 1)
	b.Write(0x3c, 6)
	b.WriteBytes([]byte{0xa5})
	b.Write(1, 6)
	if b.Len() != 32 {
		t.Fatalf("%d bits, want 32", b.Len())
	}
	want := []byte{0b10111111, 0b11101111, 0b00101001, 0b01000001}
	if diff := cmp.Diff(want, b.Bytes()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	b.Reset()
	b.WriteBytes([]byte{1, 2})
	if diff := cmp.Diff([]byte{1, 2}, b.Bytes()); diff != "" {
		t.Errorf("after Reset: mismatch (-want +got):\n%s", diff)
	}
}

func TestBitsFractional(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Bytes on 3 bits did not panic")
		}
	}()
	b := new(Bits)
	b.Write(7, 3)
	b.Bytes()
}

func TestPad(t *testing.T) {
	b := helloBits(t)
	b.Pad(128)
	if diff := cmp.Diff(helloData, b.Bytes()); diff != "" {
		t.Errorf("HELLO WORLD: mismatch (-want +got):\n%s", diff)
	}

	// The terminator is cut short when the data nearly fills
	// the capacity.
	b = new(Bits)
	b.Write(0x3fff, 14)
	b.Pad(16)
	if diff := cmp.Diff([]byte{0xff, 0xfc}, b.Bytes()); diff != "" {
		t.Errorf("short terminator: mismatch (-want +got):\n%s", diff)
	}

	// Full data gets no terminator.
	b = new(Bits)
	b.WriteBytes([]byte{1, 2})
	b.Pad(16)
	if b.Len() != 16 {
		t.Errorf("full: %d bits, want 16", b.Len())
	}

	defer func() {
		if recover() == nil {
			t.Error("Pad to fewer bits did not panic")
		}
	}()
	b.Pad(8)
}

func TestAddCheckBytes(t *testing.T) {
	b := helloBits(t)
	b.AddCheckBytes(2, H)
	got := b.Bytes()
	if len(got) != Version(2).Codewords() {
		t.Fatalf("%d codewords, want %d", len(got), Version(2).Codewords())
	}
	rs, err := gf256.NewRSEncoder(Field, 28)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(helloData, got[:16]); diff != "" {
		t.Errorf("data: mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rs.Encode(helloData), got[16:]); diff != "" {
		t.Errorf("check: mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCheckBytesBlocks(t *testing.T) {
	// 5-Q: blocks of 15, 15, 16 and 16 data bytes,
	// 18 check bytes each.
	b := NewBits(5, Q)
	data := make([]byte, 62)
	for i := range data {
		data[i] = byte(i * 7)
	}
	b.WriteBytes(data)
	b.AddCheckBytes(5, Q)
	got := b.Bytes()
	if diff := cmp.Diff(data, got[:62]); diff != "" {
		t.Errorf("data: mismatch (-want +got):\n%s", diff)
	}
	rs, err := NewRSEncoder(18)
	if err != nil {
		t.Fatal(err)
	}
	check := got[62:]
	for i, blk := range [][]byte{
		data[0:15], data[15:30], data[30:46], data[46:62],
	} {
		if diff := cmp.Diff(rs.Encode(blk), check[i*18:(i+1)*18]); diff != "" {
			t.Errorf("block %d: mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestInterleave(t *testing.T) {
	src := make([]byte, 62)
	for i := range src {
		src[i] = byte(i)
	}
	dst := make([]byte, len(src))
	interleave(dst, src, 4)
	if diff := cmp.Diff([]byte{0, 15, 30, 46, 1, 16, 31, 47}, dst[:8]); diff != "" {
		t.Errorf("head: mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte{14, 29, 44, 60, 45, 61}, dst[56:]); diff != "" {
		t.Errorf("tail: mismatch (-want +got):\n%s", diff)
	}
	seen := make(map[byte]bool)
	for _, c := range dst {
		seen[c] = true
	}
	if len(seen) != len(src) {
		t.Errorf("%d distinct bytes, want %d", len(seen), len(src))
	}
}

func TestPermute(t *testing.T) {
	b := helloBits(t)
	b.AddCheckBytes(2, H)
	want := append([]byte(nil), b.Bytes()...)
	s := b.Permute(2, H)
	if n := s.Remaining(); n != 359 {
		t.Errorf("2-H: %d bits, want 359", n)
	}
	if diff := cmp.Diff(want, s.Bytes()); diff != "" {
		t.Errorf("single block: mismatch (-want +got):\n%s", diff)
	}

	b = NewBits(5, Q)
	b.WriteBytes(make([]byte, 62))
	b.AddCheckBytes(5, Q)
	if n := b.Permute(5, Q).Remaining(); n != 134*8+7 {
		t.Errorf("5-Q: %d bits, want %d", n, 134*8+7)
	}
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0b10110000})
	s.n += 3 // remainder bits
	var got []byte
	for s.Remaining() > 0 {
		got = append(got, s.Next())
	}
	want := []byte{1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerator(t *testing.T) {
	for _, d := range []int{7, 10, 13, 17, 22, 28, 30} {
		if _, err := Generator(d); err != nil {
			t.Errorf("degree %d: %v", d, err)
		}
	}
	for _, d := range []int{-1, 0, 1, 9, 31, 68, 255, 1000} {
		if _, err := Generator(d); err != gf256.ErrDegree {
			t.Errorf("degree %d: err = %v, want ErrDegree", d, err)
		}
		if _, err := NewRSEncoder(d); err != gf256.ErrDegree {
			t.Errorf("NewRSEncoder(%d): err = %v, want ErrDegree", d, err)
		}
	}
}
