// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/axig/tt"
	"github.com/go-air/axig/z"
)

func TestDupCopiesReachable(t *testing.T) {
	outs, nvars, err := tt.ParseHex("8")
	require.NoError(t, err)
	c := NewC(nvars, outs)
	a, b := z.Var(1).Pos(), z.Var(2).Pos()
	// one dead node, one used node
	c.Xor(a, b)
	c.PushTop(c.And(a, b))
	assert.Equal(t, 2, c.NumNodes())

	cc := c.Dup(false)
	assert.Equal(t, 1, cc.NumNodes())
	assert.Empty(t, cc.Verify())
}

func TestDupKeepsXor(t *testing.T) {
	outs, nvars, err := tt.ParseHex("6")
	require.NoError(t, err)
	c := NewC(nvars, outs)
	c.PushTop(c.Xor(z.Var(1).Pos(), z.Var(2).Pos()))

	cc := c.Dup(false)
	assert.Equal(t, 1, cc.NumNodes())
	require.True(t, cc.IsXor(z.Var(cc.Len() - 1)))
	assert.Empty(t, cc.Verify())
}

func TestDupExpandsXor(t *testing.T) {
	outs, nvars, err := tt.ParseHex("6")
	require.NoError(t, err)
	c := NewC(nvars, outs)
	c.PushTop(c.Xor(z.Var(1).Pos(), z.Var(2).Pos()))

	cc := c.Dup(true)
	assert.Equal(t, 3, cc.NumNodes())
	for i := 1 + cc.NumIns(); i < cc.Len(); i++ {
		assert.False(t, cc.IsXor(z.Var(i)), "node %d", i)
	}
	assert.Empty(t, cc.Verify())
}

func TestDupIdempotentCount(t *testing.T) {
	outs, nvars, err := tt.ParseHex("E817")
	require.NoError(t, err)
	c := NewC(nvars, outs)
	a, b, d, e := z.Var(1).Pos(), z.Var(2).Pos(), z.Var(3).Pos(), z.Var(4).Pos()
	c.PushTop(c.Xor(c.And(a, b), c.Mux(d, e, a)))

	c1 := c.Dup(false)
	c2 := c1.Dup(false)
	assert.Equal(t, c1.NumNodes(), c2.NumNodes())
	assert.Equal(t, c1.Tops(), c2.Tops())
}
