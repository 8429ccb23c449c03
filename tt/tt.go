// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tt implements an append-only arena of bit-packed truth tables
// over a fixed number of variables, together with the Boolean, cofactor,
// and variable-permutation operations used during synthesis.
package tt

import (
	"fmt"
	"strings"
)

// MaxVars is the largest supported number of input variables.
const MaxVars = 16

// WordNum returns the number of 64-bit words in a truth table
// over n variables.
func WordNum(n int) int {
	if n <= 6 {
		return 1
	}
	return 1 << (n - 6)
}

// Truths6 holds the elementary truth tables of the first six variables
// within a single 64-bit word.
var Truths6 = [6]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// Truths6Neg holds their complements.
var Truths6Neg = [6]uint64{
	0x5555555555555555,
	0x3333333333333333,
	0x0F0F0F0F0F0F0F0F,
	0x00FF00FF00FF00FF,
	0x0000FFFF0000FFFF,
	0x00000000FFFFFFFF,
}

// Vec is an append-only sequence of truth tables, all of the same width.
// Tables are addressed by the id returned when they were appended.
// Removal is only possible from the end, via Resize or Shrink.
type Vec struct {
	words int
	d     []uint64
}

// NewVec creates an empty Vec with the given table width in words and
// room for capHint tables.
func NewVec(capHint, words int) *Vec {
	if capHint < 1 {
		capHint = 1
	}
	return &Vec{words: words, d: make([]uint64, 0, capHint*words)}
}

// NewTruths creates the literal-indexed table arena for a graph over
// nvars inputs: table 0 is constant false, table 1 constant true, and
// tables 2v, 2v+1 hold the positive and negative elementary tables of
// input v for v in 1..nvars.
func NewTruths(nvars int) *Vec {
	words := WordNum(nvars)
	v := &Vec{words: words, d: make([]uint64, 2*(nvars+1)*words, 6*(nvars+1)*words)}
	for k := 0; k < words; k++ {
		v.d[words+k] = ^uint64(0)
	}
	for i := 0; i < 2*nvars; i++ {
		t := v.d[(i+2)*words : (i+3)*words]
		if i/2 < 6 {
			for k := range t {
				t[k] = Truths6[i/2]
			}
		} else {
			for k := range t {
				if k&(1<<(i/2-6)) != 0 {
					t[k] = ^uint64(0)
				}
			}
		}
		if i&1 != 0 {
			for k := range t {
				t[k] = ^t[k]
			}
		}
	}
	return v
}

// Words returns the table width in 64-bit words.
func (v *Vec) Words() int {
	return v.words
}

// Len returns the number of tables.
func (v *Vec) Len() int {
	return len(v.d) / v.words
}

// Read returns the words of table id.  The slice aliases the arena and
// is only valid until the next append.
func (v *Vec) Read(id int) []uint64 {
	return v.d[id*v.words : (id+1)*v.words]
}

// Resize truncates the Vec to n tables.  Growing is not supported.
func (v *Vec) Resize(n int) {
	if n > v.Len() {
		panic("tt: Resize can only shrink")
	}
	v.d = v.d[:n*v.words]
}

// Shrink removes the last n tables.
func (v *Vec) Shrink(n int) {
	v.Resize(v.Len() - n)
}

// extend appends one uninitialized table, growing the backing array by
// a factor of 1.5 when full, and returns its words.
func (v *Vec) extend() []uint64 {
	if len(v.d)+v.words > cap(v.d) {
		tcap := cap(v.d) / v.words
		ncap := 8
		if tcap >= 4 {
			ncap = tcap / 2 * 3
		}
		d := make([]uint64, len(v.d), ncap*v.words)
		copy(d, v.d)
		v.d = d
	}
	n := len(v.d)
	v.d = v.d[:n+v.words]
	t := v.d[n:]
	for k := range t {
		t[k] = 0
	}
	return t
}

// Append copies src into a new table and returns its id.
func (v *Vec) Append(src []uint64) int {
	t := v.extend()
	copy(t, src)
	return v.Len() - 1
}

// Move appends a copy of table id of src.
func (v *Vec) Move(src *Vec, id int) int {
	if v.words != src.words {
		panic("tt: width mismatch")
	}
	return v.Append(src.Read(id))
}

// Dup creates an independent copy of v.
func (v *Vec) Dup() *Vec {
	w := &Vec{words: v.words, d: make([]uint64, len(v.d), cap(v.d))}
	copy(w.d, v.d)
	return w
}

// Set replaces the contents of v with those of src.
func (v *Vec) Set(src *Vec) {
	v.words = src.words
	v.d = append(v.d[:0], src.d...)
}

// And appends the conjunction of tables a and b and returns its id.
func (v *Vec) And(a, b int) int {
	t := v.extend()
	ta, tb := v.Read(a), v.Read(b)
	for k := range t {
		t[k] = ta[k] & tb[k]
	}
	return v.Len() - 1
}

// Xor appends the exclusive or of tables a and b and returns its id.
func (v *Vec) Xor(a, b int) int {
	t := v.extend()
	ta, tb := v.Read(a), v.Read(b)
	for k := range t {
		t[k] = ta[k] ^ tb[k]
	}
	return v.Len() - 1
}

// Inv appends the complement of table a and returns its id.
func (v *Vec) Inv(a int) int {
	t := v.extend()
	ta := v.Read(a)
	for k := range t {
		t[k] = ^ta[k]
	}
	return v.Len() - 1
}

// Equal indicates whether tables a and b are bitwise equal.
func (v *Vec) Equal(a, b int) bool {
	ta, tb := v.Read(a), v.Read(b)
	for k := range ta {
		if ta[k] != tb[k] {
			return false
		}
	}
	return true
}

// Equal2 indicates whether table a of va equals table b of vb.
func Equal2(va *Vec, a int, vb *Vec, b int) bool {
	if va.words != vb.words {
		panic("tt: width mismatch")
	}
	ta, tb := va.Read(a), vb.Read(b)
	for k := range ta {
		if ta[k] != tb[k] {
			return false
		}
	}
	return true
}

// IsConst0 indicates whether table a is constant false.
func (v *Vec) IsConst0(a int) bool {
	for _, w := range v.Read(a) {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsConst1 indicates whether table a is constant true.
func (v *Vec) IsConst1(a int) bool {
	for _, w := range v.Read(a) {
		if ^w != 0 {
			return false
		}
	}
	return true
}

// HasVar indicates whether table id depends on variable i, by comparing
// the two halves along axis i without materializing the cofactors.
func (v *Vec) HasVar(id, i int) bool {
	t := v.Read(id)
	if i < 6 {
		shift := uint(1) << i
		for _, w := range t {
			if (w>>shift)&Truths6Neg[i] != w&Truths6Neg[i] {
				return true
			}
		}
		return false
	}
	step := 1 << (i - 6)
	for base := 0; base < len(t); base += 2 * step {
		for k := 0; k < step; k++ {
			if t[base+k] != t[base+step+k] {
				return true
			}
		}
	}
	return false
}

// Cof0 appends the cofactor of table id with variable i set to 0 and
// returns its id.  The low half along axis i is broadcast into both halves.
func (v *Vec) Cof0(id, i int) int {
	tNew := v.extend()
	t := v.Read(id)
	if i <= 5 {
		shift := uint(1) << i
		for k := range t {
			tNew[k] = (t[k]&Truths6Neg[i])<<shift | t[k]&Truths6Neg[i]
		}
	} else {
		step := WordNum(i)
		for base := 0; base < len(t); base += 2 * step {
			for k := 0; k < step; k++ {
				tNew[base+k] = t[base+k]
				tNew[base+step+k] = t[base+k]
			}
		}
	}
	return v.Len() - 1
}

// Cof1 appends the cofactor of table id with variable i set to 1 and
// returns its id.
func (v *Vec) Cof1(id, i int) int {
	tNew := v.extend()
	t := v.Read(id)
	if i <= 5 {
		shift := uint(1) << i
		for k := range t {
			tNew[k] = t[k]&Truths6[i] | (t[k]&Truths6[i])>>shift
		}
	} else {
		step := WordNum(i)
		for base := 0; base < len(t); base += 2 * step {
			for k := 0; k < step; k++ {
				tNew[base+k] = t[base+step+k]
				tNew[base+step+k] = t[base+step+k]
			}
		}
	}
	return v.Len() - 1
}

// Hex renders table a in hexadecimal, most significant digit first.
func (v *Vec) Hex(a int) string {
	t := v.Read(a)
	var sb strings.Builder
	for k := v.words*16 - 1; k >= 0; k-- {
		d := (t[k/16] >> uint((k%16)*4)) & 15
		fmt.Fprintf(&sb, "%X", d)
	}
	return sb.String()
}

// Bin renders table a in binary, minterm 2^n-1 first.
func (v *Vec) Bin(a int) string {
	t := v.Read(a)
	var sb strings.Builder
	for k := v.words*64 - 1; k >= 0; k-- {
		sb.WriteByte(byte('0' + (t[k/64]>>uint(k%64))&1))
	}
	return sb.String()
}
