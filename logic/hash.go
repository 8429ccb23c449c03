// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/go-air/axig/tt"
	"github.com/go-air/axig/z"
)

// funcIndex maps truth table digests to the literals carrying them.
// Tables of distinct literals are pairwise distinct (a node is only
// appended after a functional miss), so each digest chain holds its
// literals in insertion order and a verified chain hit is the same
// literal a linear first-equal scan would return.
type funcIndex struct {
	m   map[uint64][]z.Lit
	buf []byte
}

func newFuncIndex(capHint int) *funcIndex {
	return &funcIndex{m: make(map[uint64][]z.Lit, capHint)}
}

func (fx *funcIndex) digest(v *tt.Vec, id int) uint64 {
	t := v.Read(id)
	if cap(fx.buf) < 8*len(t) {
		fx.buf = make([]byte, 8*len(t))
	}
	fx.buf = fx.buf[:8*len(t)]
	for i, w := range t {
		binary.LittleEndian.PutUint64(fx.buf[8*i:], w)
	}
	return xxhash.Sum64(fx.buf)
}

// add registers literal m as the carrier of table id of v.
func (fx *funcIndex) add(v *tt.Vec, id int, m z.Lit) {
	d := fx.digest(v, id)
	fx.m[d] = append(fx.m[d], m)
}

// find returns the literal of lits whose table equals table id of v,
// or LitNull.  lits is the arena the index was built over.
func (fx *funcIndex) find(lits *tt.Vec, v *tt.Vec, id int) z.Lit {
	d := fx.digest(v, id)
	for _, m := range fx.m[d] {
		if tt.Equal2(lits, int(m), v, id) {
			return m
		}
	}
	return z.LitNull
}
