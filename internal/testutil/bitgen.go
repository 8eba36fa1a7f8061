// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dsnet/huffman/internal"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string.
//
// The BitGen format allows bit-streams to be generated from a series of tokens
// describing bits in the resulting string. It is used to script archives by
// hand, one field per token, with comments stating the intent.
//
// The format consists of a series of tokens separated by white space of any
// kind. The '#' character starts a comment that runs to the end of the line.
//
// The first valid token must be ">>>", declaring that bits are packed
// starting with the most-significant bit of each byte, which is the only
// packing used by the archive format. ("<<<", the LSB-first packing, is
// rejected.)
//
// A token of the form "<" or ">" sets the bit-parsing mode for the tokens
// that follow. In ">" (big-endian) mode the left-most bit of a bit-string,
// or the most-significant bit of a number, is written first. In "<" mode the
// order is reversed. The mode defaults to ">". Either character may also
// prefix a single binary or numeric token to change the mode for that token.
//
// A token of the pattern "[01]{1,64}" forms a bit-string (e.g. 11010).
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// represents either a decimal or a hexadecimal value. The first number is
// the bit-length (0 to 64) and must be long enough to hold the value.
//
// A token of the pattern "X:[0-9a-fA-F]+" represents literal bytes and may
// only be used when the bit-stream is byte-aligned.
//
// A trailing "[*][0-9]+" repeats the token that many times.
//
// If the stream does not end on a byte boundary, it is padded with 0 bits.
//
// Example BitGen string for an archive holding "aaab":
//	>>>
//	> H64:7c00000000000000  # Total bits: 124, little-endian
//	> D8:2                  # Two table entries
//	> X:61 X:01 1 0*7       # 'a': 1-bit code "1"
//	> X:62 X:01 0 0*7       # 'b': 1-bit code "0"
//	> 1 1 1 0               # Payload "aaab"
func DecodeBitGen(str string) ([]byte, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}
	if len(toks) == 0 || toks[0] != ">>>" {
		return nil, errors.New("testutil: stream must start with >>>")
	}
	toks = toks[1:]

	var bb bitBuffer
	parseMode := true // Bit-parsing mode: false is LE, true is BE
	for _, t := range toks {
		pm := parseMode
		if t[0] == '<' || t[0] == '>' {
			pm = t[0] == '>'
			t = t[1:]
			if len(t) == 0 {
				parseMode = pm
				continue
			}
		}

		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			n, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = t[:i], n
		}

		var v uint64
		var n uint
		switch {
		case reBin.MatchString(t):
			for _, b := range t {
				v = v<<1 | uint64(b-'0')
			}
			n = uint(len(t))
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			base := 10
			if t[0] == 'H' {
				base = 16
			}
			nb, err1 := strconv.Atoi(t[1:i])
			val, err2 := strconv.ParseUint(t[i+1:], base, 64)
			if err1 != nil || err2 != nil || nb > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if nb < 64 && val&((1<<uint(nb))-1) != val {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			v, n = val, uint(nb)
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			for i := 0; i < rep; i++ {
				if err := bb.WriteBytes(b); err != nil {
					return nil, err
				}
			}
			continue
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}

		if !pm {
			v = internal.ReverseUint64N(v, n)
		}
		for i := 0; i < rep; i++ {
			bb.WriteBits(v, n)
		}
	}
	return bb.b, nil
}

// bitBuffer is a minimal MSB-first bit writer.
// This is implemented here to avoid a diamond dependency on prefix.
type bitBuffer struct {
	b  []byte
	nb uint // Number of bits used in the last byte
}

func (bb *bitBuffer) WriteBytes(buf []byte) error {
	if bb.nb%8 != 0 {
		return errors.New("testutil: unaligned write")
	}
	bb.b = append(bb.b, buf...)
	return nil
}

func (bb *bitBuffer) WriteBits(v uint64, n uint) {
	for i := n; i > 0; i-- {
		if bb.nb%8 == 0 {
			bb.b = append(bb.b, 0x00)
			bb.nb = 0
		}
		if v&(1<<(i-1)) != 0 {
			bb.b[len(bb.b)-1] |= 0x80 >> bb.nb
		}
		bb.nb++
	}
}
