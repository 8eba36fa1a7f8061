// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package huffman

import (
	"bytes"
	"io/ioutil"

	"github.com/dsnet/huffman"
)

func Fuzz(data []byte) int {
	ok := testDecoders(data)
	testEncoders(data)
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoders tests that Decode and the streaming Reader agree on the
// outcome of decoding the input, and that the header agrees with both.
func testDecoders(data []byte) bool {
	db, derr := huffman.Decode(data)

	zr, err := huffman.NewReader(bytes.NewReader(data), nil)
	if err != nil {
		panic(err)
	}
	rb, rerr := ioutil.ReadAll(zr)
	cerr := zr.Close()

	hdr, herr := huffman.ReadHeader(data)
	switch {
	case derr == nil && rerr == nil:
		if !bytes.Equal(db, rb) {
			panic("mismatching bytes")
		}
		if cerr != nil {
			panic(cerr)
		}
		if herr != nil {
			panic(herr)
		}
		if len(db) == 0 && hdr.PayloadBits() != 0 {
			panic("payload bits without output")
		}
		return true
	case derr != nil && rerr != nil:
		if derr != rerr {
			panic("mismatching errors")
		}
		return false
	default:
		panic("decoders disagree")
	}
}

// testEncoders tests that the input survives a round trip through both
// Encode and the streaming Writer and that both produce identical archives.
func testEncoders(data []byte) {
	eb, eerr := huffman.Encode(data, nil)

	bb := new(bytes.Buffer)
	zw, err := huffman.NewWriter(bb, nil)
	if err != nil {
		panic(err)
	}
	n, err := zw.Write(data)
	if n != len(data) || err != nil {
		panic(err)
	}
	werr := zw.Close()

	if len(data) == 0 {
		if eerr != huffman.ErrEmpty || werr != huffman.ErrEmpty {
			panic("empty input not rejected")
		}
		return
	}
	if eerr != nil {
		panic(eerr)
	}
	if werr != nil {
		panic(werr)
	}
	if !bytes.Equal(eb, bb.Bytes()) {
		panic("mismatching archives")
	}

	out, err := huffman.Decode(eb)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(out, data) {
		panic("mismatching bytes")
	}
}
