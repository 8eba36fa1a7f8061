// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_lib_kp
// +build !no_lib_kp

package bench

import (
	"encoding/binary"
	"errors"

	"github.com/klauspost/compress/huff0"
)

// The huff0 package only compresses single blocks, so inputs are split into
// frames of at most huff0.BlockSizeMax bytes. Each frame is
//
//	mode:1 size:4 payload:size
//
// where size is little-endian. A raw frame holds the input bytes, an RLE
// frame holds the repeated byte followed by the run length in its size
// field, and a Huffman frame holds huff0's table and 1X bitstream.
const (
	frameRaw = iota
	frameRLE
	frameHuff
)

var errHuff0Frame = errors.New("bench: invalid huff0 frame")

func encodeHuff0(b []byte) []byte {
	var out []byte
	for len(b) > 0 {
		blk := b
		if len(blk) > huff0.BlockSizeMax {
			blk = blk[:huff0.BlockSizeMax]
		}
		b = b[len(blk):]

		comp, _, err := huff0.Compress1X(blk, nil)
		switch err {
		case nil:
			out = appendFrame(out, frameHuff, uint32(len(comp)), comp)
		case huff0.ErrUseRLE:
			out = appendFrame(out, frameRLE, uint32(len(blk)), blk[:1])
		default:
			out = appendFrame(out, frameRaw, uint32(len(blk)), blk)
		}
	}
	return out
}

func appendFrame(out []byte, mode byte, size uint32, payload []byte) []byte {
	var hdr [5]byte
	hdr[0] = mode
	binary.LittleEndian.PutUint32(hdr[1:], size)
	out = append(out, hdr[:]...)
	return append(out, payload...)
}

func decodeHuff0(b []byte) ([]byte, error) {
	var out []byte
	for len(b) > 0 {
		if len(b) < 5 {
			return nil, errHuff0Frame
		}
		mode, size := b[0], int(binary.LittleEndian.Uint32(b[1:5]))
		b = b[5:]
		switch mode {
		case frameRaw:
			if len(b) < size {
				return nil, errHuff0Frame
			}
			out, b = append(out, b[:size]...), b[size:]
		case frameRLE:
			if len(b) < 1 || size > huff0.BlockSizeMax {
				return nil, errHuff0Frame
			}
			for i := 0; i < size; i++ {
				out = append(out, b[0])
			}
			b = b[1:]
		case frameHuff:
			if len(b) < size {
				return nil, errHuff0Frame
			}
			s, remain, err := huff0.ReadTable(b[:size], nil)
			if err != nil {
				return nil, err
			}
			blk, err := s.Decompress1X(remain)
			if err != nil {
				return nil, err
			}
			out, b = append(out, blk...), b[size:]
		default:
			return nil, errHuff0Frame
		}
	}
	return out, nil
}
