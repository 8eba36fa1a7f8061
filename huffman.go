// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a self-describing Huffman archive format.
//
// An archive stores the total number of bits it occupies, the prefix code of
// every byte value present in the input, and the input packed through those
// codes. The whole input is analyzed before any output is produced, so the
// codec works on in-memory buffers; Reader and Writer are buffering
// adapters on top of Encode and Decode.
//
// The archive layout is:
//
//	offset 0 : 8 bytes, total archive bit-length (little-endian uint64)
//	offset 8 : 1 byte, number of table entries N (0 means 256)
//	offset 9 : N entries, each made of
//	             1 byte  symbol
//	             1 byte  code bit-length L
//	             ceil(L/8) bytes of code bits, MSB first, zero padded
//	then     : payload bits, MSB first, immediately after the table
//
// Bits are numbered from the most-significant bit of each byte.
package huffman

import "github.com/dsnet/huffman/internal/prefix"

// EncoderConfig configures Encode. A nil config uses the defaults.
type EncoderConfig struct {
	// StrictCount rejects inputs that use all 256 byte values with
	// ErrTableOverflow instead of recording their entry count as zero.
	StrictCount bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Encode compresses src into a new archive.
//
// Empty inputs are rejected with ErrEmpty since they have no symbols from
// which to build a code.
func Encode(src []byte, conf *EncoderConfig) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmpty
	}
	if conf == nil {
		conf = new(EncoderConfig)
	}

	h := prefix.Count(src)
	tree, err := prefix.BuildTree(&h)
	if err != nil {
		return nil, err
	}
	codes := tree.Codes()
	if len(codes) > maxEntries && conf.StrictCount {
		return nil, ErrTableOverflow
	}

	total := archiveBits(codes)
	var pw prefix.Writer
	pw.Init(make([]byte, (total+7)/8), 0)
	pw.WriteUint64(total)
	writeTable(&pw, codes)

	tbl := codes.Lookup()
	for _, b := range src {
		pw.WriteSymbol(&tbl[b])
	}
	if pw.Offset() != total {
		panic("huffman: archive size mismatch") // This should never occur
	}
	return pw.Bytes(), nil
}

// Decode decompresses an archive produced by Encode.
//
// ErrCorrupt is returned if the header is inconsistent with the size of src,
// the table is truncated or not prefix-free, or the payload drives the
// decoder to a code that does not exist.
func Decode(src []byte) (dst []byte, err error) {
	defer errRecover(&err)

	var pr prefix.Reader
	total, codes := readArchive(&pr, src)
	tree, err := prefix.ReconstructTree(codes)
	if err != nil {
		return nil, ErrCorrupt
	}

	dst = make([]byte, 0, 128)
	root := tree.Root()
	n := root
	for pr.Offset() < total {
		next, ok := tree.Step(n, pr.ReadBit())
		if !ok {
			return nil, ErrCorrupt
		}
		sym, ok := tree.Leaf(next)
		if !ok {
			n = next
			continue
		}
		if len(dst) == cap(dst) {
			grown := make([]byte, len(dst), 2*cap(dst))
			copy(grown, dst)
			dst = grown
		}
		dst = append(dst, byte(sym))
		n = root
	}
	if n != root {
		return nil, ErrCorrupt // Payload ends in the middle of a code
	}
	return dst, nil
}
