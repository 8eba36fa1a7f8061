// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package prefix implements bit readers and writers that use prefix encoding.
//
// A prefix code is derived from a Huffman tree built over symbol frequencies
// and is addressed bit by bit, most-significant bit first within each byte.
package prefix

import (
	"github.com/dsnet/huffman/internal"
	"golang.org/x/exp/slices"
)

const (
	// MaxSyms is the number of distinct symbols in the alphabet.
	MaxSyms = 256

	// Internal is the symbol value carried by non-leaf tree nodes.
	Internal = MaxSyms

	// MaxDepth is the longest code the tree may produce.
	MaxDepth = MaxSyms
)

var (
	// ErrEmpty is returned when building a tree without any symbols.
	ErrEmpty = internal.Error("no symbols to encode")

	// ErrInvalid is returned or panicked for invalid prefix codes.
	ErrInvalid = internal.Error("invalid prefix code")
)

// Histogram maps every byte value to the number of times it occurs.
type Histogram [MaxSyms]uint64

// Count returns the histogram of all bytes in data.
func Count(data []byte) (h Histogram) {
	for _, b := range data {
		h[b]++
	}
	return h
}

// Symbols reports the number of distinct values with a non-zero count.
func (h *Histogram) Symbols() (n int) {
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}

// Total reports the sum of all counts.
func (h *Histogram) Total() (n uint64) {
	for _, c := range h {
		n += c
	}
	return n
}

// PrefixCode is a representation of a prefix code, which is conceptually a
// mapping from some arbitrary symbol to some bit-string.
//
// The Bits field holds the code in transmission order, where false
// descends left (a 0 bit) and true descends right (a 1 bit).
type PrefixCode struct {
	Sym  uint32 // The symbol being mapped
	Cnt  uint64 // The number times this symbol is used
	Len  uint32 // Bit-length of the prefix code
	Bits []bool // Value of the prefix code
}

// String renders the code as a string of '0' and '1' characters.
func (c PrefixCode) String() string {
	b := make([]byte, len(c.Bits))
	for i, v := range c.Bits {
		b[i] = '0'
		if v {
			b[i] = '1'
		}
	}
	return string(b)
}

// HasPrefix reports whether p is a prefix of c.
func (c PrefixCode) HasPrefix(p PrefixCode) bool {
	if len(p.Bits) > len(c.Bits) {
		return false
	}
	for i, v := range p.Bits {
		if c.Bits[i] != v {
			return false
		}
	}
	return true
}

type PrefixCodes []PrefixCode

func (c PrefixCodes) Len() int { return len(c) }

// SortBySymbol sorts the codes by ascending symbol value.
func (c PrefixCodes) SortBySymbol() {
	slices.SortFunc(c, func(x, y PrefixCode) bool { return x.Sym < y.Sym })
}

// SortByCount sorts the codes by ascending count, breaking ties by symbol.
func (c PrefixCodes) SortByCount() {
	slices.SortFunc(c, func(x, y PrefixCode) bool {
		if x.Cnt == y.Cnt {
			return x.Sym < y.Sym
		}
		return x.Cnt < y.Cnt
	})
}

// Length computes the total bit-length using the Len and Cnt fields.
func (c PrefixCodes) Length() (nb uint64) {
	for _, v := range c {
		nb += uint64(v.Len) * v.Cnt
	}
	return nb
}

// IsPrefixFree reports whether no code in c is a prefix of another.
func (c PrefixCodes) IsPrefixFree() bool {
	for i := range c {
		for j := range c {
			if i != j && c[i].HasPrefix(c[j]) {
				return false
			}
		}
	}
	return true
}

// Lookup returns a table indexed by symbol. Symbols absent from c map to a
// zero-length code.
func (c PrefixCodes) Lookup() (tbl [MaxSyms]PrefixCode) {
	for _, v := range c {
		tbl[v.Sym] = v
	}
	return tbl
}
