// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/axig/z"

// Dup reconstructs a graph containing only the nodes reachable from the
// outputs.  With onlyAnd, every XOR gate is expanded into a mux over its
// own fanins, yielding an and-inverter graph suitable for AIGER.
func (c *C) Dup(onlyAnd bool) *C {
	cc := NewC(c.nins, c.outs)
	c.NodeCount()
	copies := make([]z.Lit, 2*c.size)
	for i := 0; i < 2*(1+c.nins); i++ {
		copies[i] = z.Lit(i)
	}
	for i := 1 + c.nins; i < c.size; i++ {
		v := z.Var(i)
		if !c.tidIsCur(v) {
			continue
		}
		m0 := c.Fanin(v, 0)
		m1 := c.Fanin(v, 1)
		var m z.Lit
		switch {
		case !c.IsXor(v):
			m = cc.And(copies[m0], copies[m1])
		case onlyAnd:
			m = cc.Mux(copies[m0], copies[m1].Not(), copies[m1])
		default:
			m = cc.Xor(copies[m0], copies[m1])
		}
		copies[v.Pos()] = m
		copies[v.Neg()] = m.Not()
	}
	for _, top := range c.tops {
		cc.PushTop(copies[top])
	}
	return cc
}
