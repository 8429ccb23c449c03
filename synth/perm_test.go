// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/axig/tt"
)

func TestFactorial(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 6, 4: 24, 8: 40320} {
		assert.Equal(t, want, Factorial(n))
	}
}

func TestNextPermEnumerates(t *testing.T) {
	n := 4
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	seen := map[string]bool{}
	for i := 0; i < Factorial(n); i++ {
		seen[fmt.Sprint(perm)] = true
		NextPerm(perm, nil)
	}
	assert.Len(t, seen, Factorial(n))
	// wrapped around to the identity
	assert.Equal(t, []int{0, 1, 2, 3}, perm)
}

func TestNextPermTablesLockStep(t *testing.T) {
	// the tables of the inputs must track the permutation positions
	n := 4
	outs := tt.NewVec(n, tt.WordNum(n))
	truths := tt.NewTruths(n)
	for i := 0; i < n; i++ {
		outs.Move(truths, 2*(i+1))
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for step := 0; step < Factorial(n); step++ {
		NextPerm(perm, outs)
		for i := 0; i < n; i++ {
			// table i now holds the elementary table of its position
			at := 0
			for j := 0; j < n; j++ {
				if perm[j] == i {
					at = j
				}
			}
			require.True(t, tt.Equal2(outs, i, truths, 2*(at+1)),
				"step %d table %d perm %v", step, i, perm)
		}
	}
	// a full cycle restores the original tables
	for i := 0; i < n; i++ {
		assert.True(t, tt.Equal2(outs, i, truths, 2*(i+1)))
	}
}

func TestBestTrivialAfterReorder(t *testing.T) {
	outs, nvars, err := tt.ParseHex("F0")
	require.NoError(t, err)
	Best(nvars, outs, true, false)
	c := One(nvars, outs, true)
	assert.Equal(t, 0, c.NodeCount())
	assert.Empty(t, c.Verify())
}

func TestBestNoWorseThanIdentity(t *testing.T) {
	for _, hex := range []string{"E8", "E817", "1234ABCD"} {
		for _, andOnly := range []bool{false, true} {
			outs, nvars, err := tt.ParseHex(hex)
			require.NoError(t, err)
			base := One(nvars, outs, andOnly).NodeCount()
			Best(nvars, outs, andOnly, false)
			c := One(nvars, outs, andOnly)
			assert.LessOrEqual(t, c.NodeCount(), base, "%q andOnly=%v", hex, andOnly)
			assert.Empty(t, c.Verify())
		}
	}
}
