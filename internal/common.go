// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of common helpers shared by the codec.
//
// For performance reasons, these packages lack strong error checking and
// require that the caller to ensure that strict invariants are kept.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

// ReverseLUT returns the input key with its bits reversed.
var ReverseLUT [256]byte

func init() {
	for i := range ReverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		ReverseLUT[i] = b
	}
}

// ReverseUint64 reverses all bits of v.
func ReverseUint64(v uint64) (x uint64) {
	for i := uint(0); i < 8; i++ {
		x |= uint64(ReverseLUT[byte(v>>(8*i))]) << (56 - 8*i)
	}
	return x
}

// ReverseUint64N reverses the lower n bits of v.
func ReverseUint64N(v uint64, n uint) (x uint64) {
	if n == 0 {
		return 0
	}
	return ReverseUint64(v << (64 - n))
}
