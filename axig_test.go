// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package axig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/axig/tt"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("E8", Options{AndOnly: true})
	require.NoError(t, err)
	assert.Empty(t, c.Verify())
	assert.Equal(t, 6, c.NodeCount())

	c, err = FromHex("E8", Options{})
	require.NoError(t, err)
	assert.Empty(t, c.Verify())
	assert.Equal(t, 4, c.NodeCount())

	_, err = FromHex("123", Options{})
	assert.Error(t, err)
}

func TestSynthesizePerm(t *testing.T) {
	outs, nvars, err := tt.ParseHex("F0")
	require.NoError(t, err)
	c := Synthesize(nvars, outs, Options{AndOnly: true, Perm: true})
	assert.Empty(t, c.Verify())
	assert.Equal(t, 0, c.NodeCount())
}
