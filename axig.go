// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package axig synthesizes small combinational circuits from truth
// tables.  Circuits are and-xor-inverter graphs built by recursive
// Shannon/Davio decomposition with reuse of previously synthesized
// subfunctions, and can be serialized in binary aiger format.
package axig

import (
	"github.com/go-air/axig/logic"
	"github.com/go-air/axig/synth"
	"github.com/go-air/axig/tt"
)

// Options configures a synthesis run.
type Options struct {
	AndOnly bool // use only and gates, no xor gates
	Perm    bool // try all variable permutations, keep the best
	Verbose bool // log per-permutation costs
}

// Synthesize builds a circuit implementing the output tables in outs
// over nins inputs.  With Perm set, outs is permuted in place to the
// best ordering found before the final synthesis.
func Synthesize(nins int, outs *tt.Vec, opts Options) *logic.C {
	if opts.Perm {
		synth.Best(nins, outs, opts.AndOnly, opts.Verbose)
	}
	return synth.One(nins, outs, opts.AndOnly)
}

// FromHex synthesizes a single-output circuit from a hexadecimal truth
// table string.
func FromHex(s string, opts Options) (*logic.C, error) {
	outs, nins, err := tt.ParseHex(s)
	if err != nil {
		return nil, err
	}
	return Synthesize(nins, outs, opts), nil
}
