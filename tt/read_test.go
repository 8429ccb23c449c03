// Copyright 2022 The Axig Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		in    string
		nvars int
		word0 uint64
	}{
		{"8", 2, 0x8888888888888888},
		{"6", 2, 0x6666666666666666},
		{"E8", 3, 0xE8E8E8E8E8E8E8E8},
		{"e8", 3, 0xE8E8E8E8E8E8E8E8},
		{"6996", 4, 0x6996699669966996},
		{"F0", 3, 0xF0F0F0F0F0F0F0F0},
		{"0123456789ABCDEF", 6, 0x0123456789ABCDEF},
	} {
		outs, nvars, err := ParseHex(tc.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", tc.in, err)
		}
		if nvars != tc.nvars {
			t.Errorf("ParseHex(%q) nvars = %d, want %d", tc.in, nvars, tc.nvars)
		}
		if outs.Len() != 1 || outs.Read(0)[0] != tc.word0 {
			t.Errorf("ParseHex(%q) word = %x, want %x", tc.in, outs.Read(0)[0], tc.word0)
		}
	}
}

func TestParseHexWide(t *testing.T) {
	// 32 chars: 7 variables, two words, leftmost chars are the high word
	outs, nvars, err := ParseHex("FFFFFFFFFFFFFFFF0000000000000000")
	if err != nil {
		t.Fatal(err)
	}
	if nvars != 7 || outs.Words() != 2 {
		t.Fatalf("nvars %d words %d", nvars, outs.Words())
	}
	tt := outs.Read(0)
	if tt[0] != 0 || tt[1] != ^uint64(0) {
		t.Errorf("words %x %x", tt[0], tt[1])
	}
}

func TestParseHexErrors(t *testing.T) {
	if _, _, err := ParseHex("123"); errors.Cause(err) != ErrBadLength {
		t.Errorf("bad length: %v", err)
	}
	if _, _, err := ParseHex(""); errors.Cause(err) != ErrBadLength {
		t.Errorf("empty: %v", err)
	}
	if _, _, err := ParseHex("8G"); errors.Cause(err) != ErrBadChar {
		t.Errorf("bad char: %v", err)
	}
	if _, _, err := ParseHex(strings.Repeat("F", 1<<15)); errors.Cause(err) != ErrTooManyVars {
		t.Errorf("too many vars: %v", err)
	}
}

func TestReadTables(t *testing.T) {
	outs, nvars, err := ReadTables(strings.NewReader("1000\n0001\n"))
	if err != nil {
		t.Fatal(err)
	}
	if nvars != 2 || outs.Len() != 2 {
		t.Fatalf("nvars %d outputs %d", nvars, outs.Len())
	}
	if outs.Read(0)[0] != 0x8888888888888888 {
		t.Errorf("output 0 = %x", outs.Read(0)[0])
	}
	if outs.Read(1)[0] != 0x1111111111111111 {
		t.Errorf("output 1 = %x", outs.Read(1)[0])
	}
}

func TestReadTablesBlanksAndLastLine(t *testing.T) {
	outs, nvars, err := ReadTables(strings.NewReader("10 00\r\n\n1 110"))
	if err != nil {
		t.Fatal(err)
	}
	if nvars != 2 || outs.Len() != 2 {
		t.Fatalf("nvars %d outputs %d", nvars, outs.Len())
	}
	if outs.Read(1)[0] != 0xEEEEEEEEEEEEEEEE {
		t.Errorf("output 1 = %x", outs.Read(1)[0])
	}
}

func TestReadTablesSingleVar(t *testing.T) {
	outs, nvars, err := ReadTables(strings.NewReader("10\n"))
	if err != nil {
		t.Fatal(err)
	}
	if nvars != 1 || outs.Len() != 1 {
		t.Fatalf("nvars %d outputs %d", nvars, outs.Len())
	}
	if outs.Read(0)[0] != Truths6[0] {
		t.Errorf("table %x", outs.Read(0)[0])
	}
}

func TestReadTablesErrors(t *testing.T) {
	if _, _, err := ReadTables(strings.NewReader("100\n")); errors.Cause(err) != ErrBadLength {
		t.Errorf("bad length: %v", err)
	}
	if _, _, err := ReadTables(strings.NewReader("10\n1000\n")); errors.Cause(err) != ErrMixedWidth {
		t.Errorf("mixed width: %v", err)
	}
	if _, _, err := ReadTables(strings.NewReader("1020\n")); errors.Cause(err) != ErrBadChar {
		t.Errorf("bad char: %v", err)
	}
	if _, _, err := ReadTables(strings.NewReader("\n\n")); errors.Cause(err) != ErrBadLength {
		t.Errorf("empty: %v", err)
	}
}
