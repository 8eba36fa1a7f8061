// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"testing"
)

func TestDecodeBitGen(t *testing.T) {
	vectors := []struct {
		input  string
		output []byte
		ok     bool
	}{{
		input:  ">>>",
		output: nil,
		ok:     true,
	}, {
		input:  ">>> 1",
		output: []byte{0x80},
		ok:     true,
	}, {
		input:  ">>> 1010 H4:f # comment",
		output: []byte{0xaf},
		ok:     true,
	}, {
		input:  ">>> <1000 0001",
		output: []byte{0x11},
		ok:     true,
	}, {
		input:  ">>> < D8:1 > D8:1",
		output: []byte{0x80, 0x01},
		ok:     true,
	}, {
		input:  ">>> X:dead 1*3 0*5 X:beef*2",
		output: []byte{0xde, 0xad, 0xe0, 0xbe, 0xef, 0xbe, 0xef},
		ok:     true,
	}, {
		input:  ">>> H64:7c00000000000000",
		output: []byte{0x7c, 0, 0, 0, 0, 0, 0, 0},
		ok:     true,
	}, {
		input: "<<< 1",
	}, {
		input: "1 >>>",
	}, {
		input: ">>> 1 X:00",
	}, {
		input: ">>> D2:4",
	}, {
		input: ">>> H65:0",
	}, {
		input: ">>> 012",
	}}

	for i, v := range vectors {
		got, err := DecodeBitGen(v.input)
		if ok := err == nil; ok != v.ok {
			t.Errorf("test %d, DecodeBitGen(%q) error = %v, want ok %v", i, v.input, err, v.ok)
			continue
		}
		if !bytes.Equal(got, v.output) {
			t.Errorf("test %d, DecodeBitGen(%q) = %x, want %x", i, v.input, got, v.output)
		}
	}
}

func TestCorpus(t *testing.T) {
	names := map[string]bool{}
	for _, v := range Corpus(1000) {
		if len(v.Data) != 1000 {
			t.Errorf("%s: length mismatch: got %d, want 1000", v.Name, len(v.Data))
		}
		if names[v.Name] {
			t.Errorf("%s: duplicate name", v.Name)
		}
		names[v.Name] = true
	}

	// Corpus is deterministic.
	c1, c2 := Corpus(500), Corpus(500)
	for i := range c1 {
		if !bytes.Equal(c1[i].Data, c2[i].Data) {
			t.Errorf("%s: output differs between calls", c1[i].Name)
		}
	}

	var seen [256]bool
	for _, b := range Corpus(256)[6].Data {
		seen[b] = true
	}
	for b, ok := range seen {
		if !ok {
			t.Errorf("allbytes: missing byte value %d", b)
		}
	}
}

func TestRand(t *testing.T) {
	r1, r2 := NewRand(5), NewRand(5)
	if !bytes.Equal(r1.Bytes(100), r2.Bytes(100)) {
		t.Error("same seed produced different bytes")
	}
	if bytes.Equal(NewRand(1).Bytes(100), NewRand(2).Bytes(100)) {
		t.Error("different seeds produced identical bytes")
	}

	var hist [4]int
	for _, b := range NewRand(0).Skewed(10000, 4) {
		if b >= 4 {
			t.Fatalf("Skewed produced out of range value %d", b)
		}
		hist[b]++
	}
	if !(hist[0] > hist[1] && hist[1] > hist[2]) {
		t.Errorf("Skewed histogram not decreasing: %v", hist)
	}
}

func TestResizeData(t *testing.T) {
	in := []byte("abc")
	if got := ResizeData(in, -1); !bytes.Equal(got, in) {
		t.Errorf("ResizeData(-1) = %q, want %q", got, in)
	}
	if got := ResizeData(in, 2); !bytes.Equal(got, []byte("ab")) {
		t.Errorf("ResizeData(2) = %q, want %q", got, "ab")
	}
	want := []byte{'a', 'b', 'c', 'a' ^ 1, 'b' ^ 1}
	if got := ResizeData(in, 5); !bytes.Equal(got, want) {
		t.Errorf("ResizeData(5) = %q, want %q", got, want)
	}
}
