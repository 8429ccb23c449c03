// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"fmt"
	"io"

	"github.com/go-air/axig/z"
)

func (c *C) litName(m z.Lit) string {
	if m < 2 {
		return fmt.Sprintf("%d", int(m))
	}
	if int(m.Var()) <= c.nins {
		neg := ""
		if !m.IsPos() {
			neg = "~"
		}
		return fmt.Sprintf("%s%c", neg, 'a'+int(m.Var())-1)
	}
	neg := ""
	if !m.IsPos() {
		neg = "~"
	}
	return fmt.Sprintf("%sn%02d", neg, m.Var())
}

// Print writes a summary of the graph to w.  With verbose, every used
// node is listed together with its truth table when the graph has at
// most 8 inputs.
func (c *C) Print(w io.Writer, verbose bool) {
	if !verbose {
		fmt.Fprintf(w, "The graph contains %d nodes and spans %d levels.\n",
			c.NodeCount(), c.Level())
		return
	}
	withTruths := c.nins <= 8
	nLevels := c.Level()
	if withTruths {
		fmt.Fprintf(w, "%s ", c.tts.Hex(0))
	}
	fmt.Fprintf(w, "n%02d = 0\n", 0)
	for i := 1; i <= c.nins; i++ {
		if withTruths {
			fmt.Fprintf(w, "%s ", c.tts.Hex(2*i))
		}
		fmt.Fprintf(w, "n%02d = %c\n", i, 'a'+i-1)
	}
	nCount := [2]int{}
	count := 1
	for i := c.nins + 1; i < c.size; i++ {
		v := z.Var(i)
		if !c.tidIsCur(v) {
			continue
		}
		fmt.Fprintf(w, "%d ", count)
		count++
		if withTruths {
			fmt.Fprintf(w, "%s ", c.tts.Hex(2*i))
		}
		op := '&'
		if c.IsXor(v) {
			op = '^'
		}
		fmt.Fprintf(w, "n%02d = %s %c %s\n", i, c.litName(c.Fanin(v, 0)), op, c.litName(c.Fanin(v, 1)))
		if c.IsXor(v) {
			nCount[1]++
		} else {
			nCount[0]++
		}
	}
	for i, top := range c.tops {
		if withTruths {
			fmt.Fprintf(w, "%s ", c.tts.Hex(int(top)))
		}
		fmt.Fprintf(w, "po%d = %s\n", i, c.litName(top))
	}
	fmt.Fprintf(w, "The graph contains %d nodes (%d ands and %d xors) and spans %d levels.\n",
		nCount[0]+nCount[1], nCount[0], nCount[1], nLevels)
}
