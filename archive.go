// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"

	"github.com/dsnet/huffman/internal/prefix"
)

// archiveBits computes the exact bit-length of the archive for codes,
// whose Cnt fields must hold the symbol counts of the input.
func archiveBits(codes prefix.PrefixCodes) uint64 {
	nb := uint64(hdrBits + countBits)
	for _, c := range codes {
		nb += symBits + lenBits
		nb += (uint64(c.Len) + 7) &^ 7
		nb += c.Cnt * uint64(c.Len)
	}
	return nb
}

// writeTable writes the entry count followed by every code in order.
// The codes must be sorted by symbol.
func writeTable(pw *prefix.Writer, codes prefix.PrefixCodes) {
	pw.WriteBits(uint64(len(codes)&maxEntries), countBits)
	for i := range codes {
		c := &codes[i]
		pw.WriteBits(uint64(c.Sym), symBits)
		pw.WriteBits(uint64(c.Len), lenBits)
		pw.WriteSymbol(c)
		pw.WritePads()
	}
}

// readArchive reads the header and table of src, leaving pr positioned at
// the start of the payload and limited to the declared total. The declared
// total must account for every byte of src. It panics with ErrCorrupt or
// prefix.ErrInvalid on malformed input.
func readArchive(pr *prefix.Reader, src []byte) (total uint64, codes prefix.PrefixCodes) {
	pr.Init(src, 0, 8*uint64(len(src)))
	total = pr.ReadUint64()
	if (total+7)/8 != uint64(len(src)) {
		panic(ErrCorrupt)
	}
	pr.SetLimit(total)

	n := int(pr.ReadBits(countBits))
	if n == 0 {
		n = prefix.MaxSyms
	}
	codes = make(prefix.PrefixCodes, n)
	for i := range codes {
		c := &codes[i]
		c.Sym = uint32(pr.ReadBits(symBits))
		c.Len = uint32(pr.ReadBits(lenBits))
		if c.Len == 0 {
			panic(ErrCorrupt)
		}
		c.Bits = make([]bool, c.Len)
		for j := range c.Bits {
			c.Bits[j] = pr.ReadBit()
		}
		pr.ReadPads()
	}
	return total, codes
}

// Code is the prefix code assigned to a byte value.
type Code struct {
	Sym  byte
	Bits string // Code bits as '0' and '1' characters
}

// Header describes the table of an archive.
type Header struct {
	TotalBits     uint64 // Bit-length of the whole archive
	PayloadOffset uint64 // Bit offset where the payload starts
	Codes         []Code // Codes in table order

	codes prefix.PrefixCodes
}

// PayloadBits reports the number of bits in the payload.
func (h *Header) PayloadBits() uint64 { return h.TotalBits - h.PayloadOffset }

// String renders the code table one symbol per line.
func (h *Header) String() string {
	return fmt.Sprintf("bits: %d, payload: %d, table: %v", h.TotalBits, h.PayloadBits(), h.codes)
}

// ReadHeader parses the header and code table of an archive without
// decoding the payload.
func ReadHeader(src []byte) (hdr *Header, err error) {
	defer errRecover(&err)

	var pr prefix.Reader
	total, codes := readArchive(&pr, src)
	if _, err := prefix.ReconstructTree(codes); err != nil {
		return nil, ErrCorrupt
	}
	hdr = &Header{TotalBits: total, PayloadOffset: pr.Offset(), codes: codes}
	for _, c := range codes {
		hdr.Codes = append(hdr.Codes, Code{Sym: byte(c.Sym), Bits: c.String()})
	}
	return hdr, nil
}
