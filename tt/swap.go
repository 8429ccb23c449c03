// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

// ppMasks[i][j] holds the keep/shift-up/shift-down masks for exchanging
// variables i < j inside a 64-bit word.  Entries with j <= i are unused.
var ppMasks = [5][6][3]uint64{
	{
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 0 0
		{0x9999999999999999, 0x2222222222222222, 0x4444444444444444}, // 0 1
		{0xA5A5A5A5A5A5A5A5, 0x0A0A0A0A0A0A0A0A, 0x5050505050505050}, // 0 2
		{0xAA55AA55AA55AA55, 0x00AA00AA00AA00AA, 0x5500550055005500}, // 0 3
		{0xAAAA5555AAAA5555, 0x0000AAAA0000AAAA, 0x5555000055550000}, // 0 4
		{0xAAAAAAAA55555555, 0x00000000AAAAAAAA, 0x5555555500000000}, // 0 5
	},
	{
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1 0
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1 1
		{0xC3C3C3C3C3C3C3C3, 0x0C0C0C0C0C0C0C0C, 0x3030303030303030}, // 1 2
		{0xCC33CC33CC33CC33, 0x00CC00CC00CC00CC, 0x3300330033003300}, // 1 3
		{0xCCCC3333CCCC3333, 0x0000CCCC0000CCCC, 0x3333000033330000}, // 1 4
		{0xCCCCCCCC33333333, 0x00000000CCCCCCCC, 0x3333333300000000}, // 1 5
	},
	{
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 2 0
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 2 1
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 2 2
		{0xF00FF00FF00FF00F, 0x00F000F000F000F0, 0x0F000F000F000F00}, // 2 3
		{0xF0F00F0FF0F00F0F, 0x0000F0F00000F0F0, 0x0F0F00000F0F0000}, // 2 4
		{0xF0F0F0F00F0F0F0F, 0x00000000F0F0F0F0, 0x0F0F0F0F00000000}, // 2 5
	},
	{
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 3 0
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 3 1
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 3 2
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 3 3
		{0xFF0000FFFF0000FF, 0x0000FF000000FF00, 0x00FF000000FF0000}, // 3 4
		{0xFF00FF0000FF00FF, 0x00000000FF00FF00, 0x00FF00FF00000000}, // 3 5
	},
	{
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 4 0
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 4 1
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 4 2
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 4 3
		{0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 4 4
		{0xFFFF00000000FFFF, 0x00000000FFFF0000, 0x0000FFFF00000000}, // 4 5
	},
}

// SwapVars exchanges variables i and j of table id in place.  Swapping
// is the only mutation of an existing table; all other operations append.
func (v *Vec) SwapVars(id, i, j int) {
	if i == j {
		return
	}
	if j < i {
		i, j = j, i
	}
	if WordNum(j+1) > v.words {
		panic("tt: variable out of range")
	}
	t := v.Read(id)
	switch {
	case j <= 5:
		m := &ppMasks[i][j]
		shift := uint(1)<<j - uint(1)<<i
		for w := range t {
			t[w] = t[w]&m[0] | (t[w]&m[1])<<shift | (t[w]&m[2])>>shift
		}
	case i <= 5:
		jStep := WordNum(j)
		shift := uint(1) << i
		for base := 0; base < len(t); base += 2 * jStep {
			for k := 0; k < jStep; k++ {
				lo, hi := base+k, base+jStep+k
				low2High := (t[lo] & Truths6[i]) >> shift
				high2Low := t[hi] << shift & Truths6[i]
				t[lo] = t[lo]&^Truths6[i] | high2Low
				t[hi] = t[hi]&Truths6[i] | low2High
			}
		}
	default:
		iStep := WordNum(i)
		jStep := WordNum(j)
		for base := 0; base < len(t); base += 2 * jStep {
			for k := 0; k < jStep; k += 2 * iStep {
				for l := 0; l < iStep; l++ {
					a, b := base+iStep+k+l, base+jStep+k+l
					t[a], t[b] = t[b], t[a]
				}
			}
		}
	}
}
