// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package synth builds and-xor-inverter graphs from truth tables by
// recursive Shannon/Davio decomposition with dynamic-programming reuse
// of previously synthesized functions.
package synth

import (
	"github.com/go-air/axig/logic"
	"github.com/go-air/axig/tt"
	"github.com/go-air/axig/z"
)

// One synthesizes a graph implementing the tables in outs over nins
// inputs under the current variable order.  With andOnly, every
// decomposition is a Shannon expansion and the result is an
// and-inverter graph; otherwise positive and negative Davio expansions
// compete with Shannon on a reachable-node-count heuristic.
func One(nins int, outs *tt.Vec, andOnly bool) *logic.C {
	c := logic.NewC(nins, outs)
	for i := 0; i < c.NumOuts(); i++ {
		c.Funcs().Resize(0)
		c.Funcs().Move(c.Outs(), i)
		var top z.Lit
		if andOnly {
			top = andRec(c, 0, nins-1)
		} else {
			top = xorRec(c, 0, nins-1)
		}
		c.PushTop(top)
	}
	return c
}

// andRec synthesizes scratch table ttID with v the top-most remaining
// variable.  Reuse happens in the functional lookup: any literal already
// implementing the function, constants included, terminates the
// recursion.
func andRec(c *logic.C, ttID int, v int) z.Lit {
	if m := c.HashFunc(ttID); m != z.LitNull {
		return m
	}
	if !c.Funcs().HasVar(ttID, v) {
		return andRec(c, ttID, v-1)
	}
	f0 := c.Funcs().Cof0(ttID, v)
	f1 := c.Funcs().Cof1(ttID, v)
	m0 := andRec(c, f0, v-1)
	m1 := andRec(c, f1, v-1)
	c.Funcs().Shrink(2)
	return c.Mux(z.Var(1+v).Pos(), m1, m0)
}

// xorRec is andRec extended with the two Davio reconstructions.  The
// cheapest of the three is chosen by counting the nodes reachable from
// the operand literals; ties resolve Shannon, then positive Davio.
func xorRec(c *logic.C, ttID int, v int) z.Lit {
	if m := c.HashFunc(ttID); m != z.LitNull {
		return m
	}
	if !c.Funcs().HasVar(ttID, v) {
		return xorRec(c, ttID, v-1)
	}
	f0 := c.Funcs().Cof0(ttID, v)
	f1 := c.Funcs().Cof1(ttID, v)
	f2 := c.Funcs().Xor(f0, f1)
	m0 := xorRec(c, f0, v-1)
	m1 := xorRec(c, f1, v-1)
	m2 := xorRec(c, f2, v-1)
	c.Funcs().Shrink(3)
	nontriv := 0
	if m0 >= 2 && m1 >= 2 {
		nontriv = 1
	}
	n01 := c.NodeCount2(m0, m1) + 1 + 2*nontriv
	n02 := c.NodeCount2(m0, m2) + 1 + 1*nontriv
	n12 := c.NodeCount2(m1, m2) + 1 + 1*nontriv
	min := n01
	if n02 < min {
		min = n02
	}
	if n12 < min {
		min = n12
	}
	switch min {
	case n01: // Shannon
		return c.Mux(z.Var(1+v).Pos(), m1, m0)
	case n02: // positive Davio
		return c.AndXor(z.Var(1+v).Pos(), m2, m0)
	default: // negative Davio
		return c.AndXor(z.Var(1+v).Neg(), m2, m1)
	}
}
