// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "bytes"

// Vector is a named test input.
type Vector struct {
	Name string
	Data []byte
}

// Corpus returns a fixed set of inputs of roughly n bytes each that
// together exercise the interesting shapes of a byte histogram: a single
// symbol, two symbols, text, a skewed alphabet, uniform random bytes, and
// every byte value at once. The last vector only holds every byte value if
// n is at least 256.
func Corpus(n int) []Vector {
	r := NewRand(0)
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}
	text := []byte("The quick brown fox jumps over the lazy dog. " +
		"Pack my box with five dozen liquor jugs! " +
		"How vexingly quick daft zebras jump; 0123456789.\n")
	return []Vector{
		{"zeros", make([]byte, n)},
		{"binary", repeat([]byte("ab"), n)},
		{"repeats", repeat([]byte("aaaaaaab"), n)},
		{"text", repeat(text, n)},
		{"skewed", r.Skewed(n, 24)},
		{"random", r.Bytes(n)},
		{"allbytes", repeat(allBytes, n)},
	}
}

// repeat replicates b verbatim until it is n bytes long.
func repeat(b []byte, n int) []byte {
	return bytes.Repeat(b, n/len(b)+1)[:n]
}
