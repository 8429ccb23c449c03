// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/go-air/axig/logic"
	"github.com/go-air/axig/z"
)

// Errors related to IO and formatting
var (
	ErrPrematureEOF = errors.New("premature EOF")
	ErrBadHeader    = errors.New("bad header")
	ErrHasLatches   = errors.New("sequential aiger not supported")
	ErrLitOOB       = errors.New("literal out of bounds")
	ErrBadDelta     = errors.New("bad delta encoding")
)

// T holds a combinational circuit read from a binary aiger file:
// the header counts, the output literals, and the and gates as pairs
// of right-hand-side literals, gate i defining literal 2*(1+ins+i).
type T struct {
	Ins     int
	Outputs []uint
	Ands    [][2]uint
}

// Write serializes c to w in binary aiger format.  The graph is first
// duplicated with XOR gates expanded, so only reachable and gates are
// written and the fanins of every gate satisfy rhs0 <= rhs1 < lhs.
func Write(w io.Writer, c *logic.C) error {
	cc := c.Dup(true)
	bw := bufio.NewWriter(w)
	nIns, nAnds := cc.NumIns(), cc.NumNodes()
	fmt.Fprintf(bw, "aig %d %d 0 %d %d\n", nIns+nAnds, nIns, cc.NumOuts(), nAnds)
	for _, top := range cc.Tops() {
		fmt.Fprintf(bw, "%d\n", uint(top))
	}
	for i := 0; i < nAnds; i++ {
		v := z.Var(1 + nIns + i)
		uLit := uint(v.Pos())
		uLit0 := uint(cc.Fanin(v, 0))
		uLit1 := uint(cc.Fanin(v, 1))
		write7(bw, uLit-uLit1)
		write7(bw, uLit1-uLit0)
	}
	fmt.Fprintf(bw, "c\n")
	return bw.Flush()
}

// ReadBinary parses a combinational binary aiger file.
func ReadBinary(r io.Reader) (*T, error) {
	br := bufio.NewReader(r)
	var m, i, l, o, a int
	line, err := br.ReadString('\n')
	if err != nil {
		return nil, ErrPrematureEOF
	}
	if n, err := fmt.Sscanf(line, "aig %d %d %d %d %d", &m, &i, &l, &o, &a); n != 5 || err != nil {
		return nil, ErrBadHeader
	}
	if l != 0 {
		return nil, ErrHasLatches
	}
	if m != i+a {
		return nil, ErrBadHeader
	}
	t := &T{Ins: i, Outputs: make([]uint, o), Ands: make([][2]uint, a)}
	for k := 0; k < o; k++ {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, ErrPrematureEOF
		}
		var u uint
		if n, err := fmt.Sscanf(line, "%d", &u); n != 1 || err != nil {
			return nil, ErrBadHeader
		}
		if u > uint(2*m+1) {
			return nil, ErrLitOOB
		}
		t.Outputs[k] = u
	}
	for k := 0; k < a; k++ {
		uLit := uint(2 * (1 + i + k))
		delta0, err := read7(br)
		if err != nil {
			return nil, err
		}
		delta1, err := read7(br)
		if err != nil {
			return nil, err
		}
		if delta0 == 0 || delta0 > uLit {
			return nil, ErrBadDelta
		}
		uLit1 := uLit - delta0
		if delta1 > uLit1 {
			return nil, ErrBadDelta
		}
		uLit0 := uLit1 - delta1
		t.Ands[k] = [2]uint{uLit0, uLit1}
	}
	return t, nil
}

// Eval64 simulates the circuit on 64 input patterns in parallel, one per
// bit position.  ins holds one word per input; the result holds one word
// per output.
func (t *T) Eval64(ins []uint64) []uint64 {
	vals := make([]uint64, 1+t.Ins+len(t.Ands))
	copy(vals[1:], ins)
	at := func(u uint) uint64 {
		w := vals[u>>1]
		if u&1 != 0 {
			w = ^w
		}
		return w
	}
	for k, and := range t.Ands {
		vals[1+t.Ins+k] = at(and[0]) & at(and[1])
	}
	outs := make([]uint64, len(t.Outputs))
	for k, u := range t.Outputs {
		outs[k] = at(u)
	}
	return outs
}

// for binary aiger coding of and deltas
func write7(w *bufio.Writer, val uint) error {
	for val&^0x7f != 0 {
		if err := w.WriteByte(byte(val&0x7f) | 0x80); err != nil {
			return err
		}
		val >>= 7
	}
	return w.WriteByte(byte(val))
}

// for binary aiger coding of and deltas
func read7(r *bufio.Reader) (uint, error) {
	var result uint
	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrPrematureEOF
		}
		result |= uint(b&0x7f) << uint(7*i)
		if b&0x80 == 0 {
			break
		}
	}
	return result, nil
}
