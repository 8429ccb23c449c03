// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/axig/z"

// Traversal ids give O(1) visited tests without per-pass resets.  Every
// marking pass starts by bumping the generation counter.

const tidMax = 0x7FFFFFFF

func (c *C) tidBump() int32 {
	if c.tid >= tidMax-1 {
		panic("logic: traversal id overflow")
	}
	c.tid++
	return c.tid
}

func (c *C) tidIsCur(v z.Var) bool {
	return c.tids[v] == c.tid
}

// tidUpdate marks v, reporting whether it was unmarked before.
func (c *C) tidUpdate(v z.Var) bool {
	if c.tidIsCur(v) {
		return false
	}
	c.tids[v] = c.tid
	return true
}

func (c *C) countRec(m z.Lit) int {
	v := m.Var()
	if int(v) <= c.nins || !c.tidUpdate(v) {
		return 0
	}
	res := 1
	res += c.countRec(c.fans[m])
	res += c.countRec(c.fans[m.Not()])
	return res
}

// NodeCount1 counts the gate nodes reachable from m, marking them with
// a fresh traversal id.
func (c *C) NodeCount1(m z.Lit) int {
	c.tidBump()
	return c.countRec(m)
}

// NodeCount2 counts the gate nodes reachable from m1 or m2, each node
// counted once.
func (c *C) NodeCount2(m1, m2 z.Lit) int {
	c.tidBump()
	return c.countRec(m1) + c.countRec(m2)
}

// NodeCount counts the gate nodes reachable from the outputs.  The
// traversal marks left behind identify the used part of the graph.
func (c *C) NodeCount() int {
	c.tidBump()
	count := 0
	for _, top := range c.tops {
		count += c.countRec(top)
	}
	return count
}

func (c *C) levelRec(levs []int, m z.Lit) int {
	v := m.Var()
	if int(v) <= c.nins || !c.tidUpdate(v) {
		return levs[v]
	}
	res0 := c.levelRec(levs, c.fans[m])
	res1 := c.levelRec(levs, c.fans[m.Not()])
	if res1 > res0 {
		res0 = res1
	}
	levs[v] = 1 + res0
	return levs[v]
}

// Level returns the maximum gate depth over all outputs.
func (c *C) Level() int {
	levs := make([]int, c.size)
	c.tidBump()
	max := 0
	for _, top := range c.tops {
		if l := c.levelRec(levs, top); l > max {
			max = l
		}
	}
	return max
}
