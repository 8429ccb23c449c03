// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-air/axig/tt"
)

// NextPerm advances perm to its lexicographic successor, mirroring every
// position exchange in all tables of tts when tts is non-nil.  Because
// both the swap phase and the suffix reversal go through tt.SwapVars,
// the permutation and the tables advance in lock-step.  The successor
// of the last permutation is the first.
func NextPerm(perm []int, tts *tt.Vec) {
	n := len(perm)
	i := n - 1
	for i >= 1 && perm[i-1] >= perm[i] {
		i--
	}
	if i >= 1 {
		j := n
		for j > i && perm[j-1] <= perm[i-1] {
			j--
		}
		swap(perm, tts, i-1, j-1)
	}
	for lo, hi := i, n-1; lo < hi; lo, hi = lo+1, hi-1 {
		swap(perm, tts, lo, hi)
	}
}

func swap(perm []int, tts *tt.Vec, i, j int) {
	perm[i], perm[j] = perm[j], perm[i]
	if tts == nil {
		return
	}
	for t := 0; t < tts.Len(); t++ {
		tts.SwapVars(t, i, j)
	}
}

// Factorial returns n!.
func Factorial(n int) int {
	res := 1
	for i := 1; i <= n; i++ {
		res *= i
	}
	return res
}

// Best tries all n! variable orders and leaves outs holding the tables
// of the order producing the fewest reachable nodes.  The caller then
// synthesizes once more on the retained tables.
func Best(nins int, outs *tt.Vec, andOnly, verbose bool) {
	best := outs.Dup()
	perm := make([]int, nins)
	for i := range perm {
		perm[i] = i
	}
	costBest := int(^uint(0) >> 1)
	fact := Factorial(nins)
	for i := 0; i < fact; i++ {
		c := One(nins, outs, andOnly)
		cost := c.NodeCount()
		if cost < costBest {
			costBest = cost
			best.Set(outs)
		}
		if verbose {
			log.Infof("perm %3d : %v : cost = %3d", i, perm, cost)
		}
		NextPerm(perm, outs)
	}
	outs.Set(best)
}
