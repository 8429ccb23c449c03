// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic implements and-xor-inverter graphs over truth tables.
//
// A graph is an index arena: node 0 is the constant, nodes 1..nins the
// primary inputs, and every further node a two-input AND or XOR gate.
// Gate type is encoded by fanin order alone: an AND stores its fanins
// in increasing literal order, an XOR in decreasing order.  Every
// literal carries its truth table, so structural hashing is backed by
// functional hashing and equivalent functions always resolve to a
// single literal.
package logic

import (
	"github.com/go-air/axig/tt"
	"github.com/go-air/axig/z"
)

const initialCap = 256

// C is a combinational and-xor-inverter graph.
type C struct {
	nins  int
	size  int
	tid   int32
	tids  []int32
	fans  []z.Lit
	tops  []z.Lit
	funcs *tt.Vec // scratch tables for in-progress decomposition
	tts   *tt.Vec // per-literal truth tables, table l belongs to literal l
	outs  *tt.Vec // the output functions being synthesized
	nodes map[[2]z.Lit]z.Lit
	fun   *funcIndex
}

// NewC creates a graph over nins inputs whose outputs are to implement
// the tables in outs.  The outs arena is copied.
func NewC(nins int, outs *tt.Vec) *C {
	c := &C{
		nins:  nins,
		size:  1 + nins,
		tid:   1,
		tids:  make([]int32, 1+nins, 2*initialCap),
		fans:  make([]z.Lit, 2*(1+nins), 2*initialCap),
		tops:  make([]z.Lit, 0, outs.Len()),
		funcs: tt.NewVec(3*(1+nins), tt.WordNum(nins)),
		tts:   tt.NewTruths(nins),
		outs:  outs.Dup(),
		nodes: make(map[[2]z.Lit]z.Lit, initialCap),
		fun:   newFuncIndex(initialCap),
	}
	for i := range c.fans {
		c.fans[i] = z.LitNull
	}
	for l := 0; l < c.tts.Len(); l++ {
		c.fun.add(c.tts, l, z.Lit(l))
	}
	return c
}

// NumIns returns the number of primary inputs.
func (c *C) NumIns() int {
	return c.nins
}

// NumOuts returns the number of outputs.
func (c *C) NumOuts() int {
	return c.outs.Len()
}

// NumNodes returns the number of internal gate nodes.
func (c *C) NumNodes() int {
	return c.size - 1 - c.nins
}

// Len returns the total number of objects, constant and inputs included.
func (c *C) Len() int {
	return c.size
}

// Fanin returns the n'th fanin literal of node v, n in {0, 1}.
func (c *C) Fanin(v z.Var, n int) z.Lit {
	return c.fans[2*int(v)+n]
}

// IsXor indicates whether node v is an XOR gate.
func (c *C) IsXor(v z.Var) bool {
	return c.Fanin(v, 0) > c.Fanin(v, 1)
}

// IsNode indicates whether v is an internal gate node.
func (c *C) IsNode(v z.Var) bool {
	return int(v) >= 1+c.nins
}

// IsInput indicates whether v is a primary input.
func (c *C) IsInput(v z.Var) bool {
	return int(v) >= 1 && int(v) <= c.nins
}

// Tops returns the output literals recorded so far.
func (c *C) Tops() []z.Lit {
	return c.tops
}

// PushTop records m as the next output literal.
func (c *C) PushTop(m z.Lit) {
	c.tops = append(c.tops, m)
}

// Funcs returns the scratch table arena used during decomposition.
func (c *C) Funcs() *tt.Vec {
	return c.funcs
}

// TTs returns the literal-indexed truth table arena.
func (c *C) TTs() *tt.Vec {
	return c.tts
}

// Outs returns the output specification tables.
func (c *C) Outs() *tt.Vec {
	return c.outs
}

// hashNode looks up a candidate gate with fanins (m1, m2) whose table
// was just appended to tts at ttID.  Structural lookup runs first, then
// functional lookup over every existing literal.  LitNull means no hit.
func (c *C) hashNode(m1, m2 z.Lit, ttID int) z.Lit {
	if m, ok := c.nodes[[2]z.Lit{m1, m2}]; ok {
		return m
	}
	return c.fun.find(c.tts, c.tts, ttID)
}

// appendNode appends a gate with fanins (m1, m2) whose positive-phase
// table is at ttID, appends the negative-phase table, and returns the
// positive literal of the new node.
func (c *C) appendNode(m1, m2 z.Lit, ttID int) z.Lit {
	c.size++
	c.fans = append(c.fans, m1, m2)
	c.tids = append(c.tids, 0)
	c.tts.Inv(ttID)
	if c.tts.Len() != 2*c.size {
		panic("logic: truth table arena out of sync")
	}
	m := z.Var(c.size - 1).Pos()
	c.nodes[[2]z.Lit{m1, m2}] = m
	c.fun.add(c.tts, ttID, m)
	c.fun.add(c.tts, ttID+1, m.Not())
	return m
}

// HashFunc returns an existing literal whose truth table equals scratch
// table ttID of Funcs, or LitNull.
func (c *C) HashFunc(ttID int) z.Lit {
	return c.fun.find(c.tts, c.funcs, ttID)
}

// And returns a literal for the conjunction of m1 and m2, folding
// constants and reusing an existing node when one matches structurally
// or functionally.
func (c *C) And(m1, m2 z.Lit) z.Lit {
	if m1 == z.LitFalse || m2 == z.LitFalse {
		return z.LitFalse
	}
	if m1 == z.LitTrue {
		return m2
	}
	if m2 == z.LitTrue {
		return m1
	}
	if m1 == m2 {
		return m1
	}
	if m1^m2 == 1 {
		return z.LitFalse
	}
	if m1 > m2 {
		m1, m2 = m2, m1
	}
	ttID := c.tts.And(int(m1), int(m2))
	if m := c.hashNode(m1, m2, ttID); m != z.LitNull {
		c.tts.Resize(ttID)
		return m
	}
	return c.appendNode(m1, m2, ttID)
}

// Xor returns a literal for the exclusive or of m1 and m2.  The fanins
// of a fresh XOR node are stored in decreasing order, which is what
// distinguishes it from an AND.
func (c *C) Xor(m1, m2 z.Lit) z.Lit {
	if m1 == z.LitTrue {
		return m2.Not()
	}
	if m2 == z.LitTrue {
		return m1.Not()
	}
	if m1 == z.LitFalse {
		return m2
	}
	if m2 == z.LitFalse {
		return m1
	}
	if m1 == m2 {
		return z.LitFalse
	}
	if m1^m2 == 1 {
		return z.LitTrue
	}
	if m1 < m2 {
		m1, m2 = m2, m1
	}
	ttID := c.tts.Xor(int(m1), int(m2))
	if m := c.hashNode(m1, m2, ttID); m != z.LitNull {
		c.tts.Resize(ttID)
		return m
	}
	return c.appendNode(m1, m2, ttID)
}

// Or returns a literal for the disjunction of m1 and m2.
func (c *C) Or(m1, m2 z.Lit) z.Lit {
	return c.And(m1.Not(), m2.Not()).Not()
}

// Ands returns a literal for the conjunction of ms, LitTrue when ms is
// empty.
func (c *C) Ands(ms ...z.Lit) z.Lit {
	a := z.LitTrue
	for _, m := range ms {
		a = c.And(a, m)
	}
	return a
}

// Ors returns a literal for the disjunction of ms, LitFalse when ms is
// empty.
func (c *C) Ors(ms ...z.Lit) z.Lit {
	d := z.LitFalse
	for _, m := range ms {
		d = c.Or(d, m)
	}
	return d
}

// Mux returns a literal for "if ctrl then m1 else m0".
func (c *C) Mux(ctrl, m1, m0 z.Lit) z.Lit {
	return c.Or(c.And(ctrl, m1), c.And(ctrl.Not(), m0))
}

// AndXor returns a literal for (ctrl and m1) xor m0.
func (c *C) AndXor(ctrl, m1, m0 z.Lit) z.Lit {
	return c.Xor(c.And(ctrl, m1), m0)
}

// Verify compares the truth table of every output literal against the
// output specification and returns the indices of mismatches.
func (c *C) Verify() []int {
	var failed []int
	for i, top := range c.tops {
		if !tt.Equal2(c.outs, i, c.tts, int(top)) {
			failed = append(failed, i)
		}
	}
	return failed
}
