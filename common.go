// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"runtime"

	"github.com/dsnet/huffman/internal/prefix"
)

const (
	hdrBits   = 64 // Total bit-length header
	countBits = 8  // Table entry count
	symBits   = 8  // Symbol field of a table entry
	lenBits   = 8  // Code length field of a table entry

	// maxEntries is the largest entry count the count field holds as is.
	// A table of prefix.MaxSyms entries is recorded with a count of zero.
	maxEntries = 1<<countBits - 1
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrEmpty is returned when encoding an empty input.
	ErrEmpty error = Error("empty input")

	// ErrCorrupt is returned when an archive is malformed or truncated.
	ErrCorrupt error = Error("archive is corrupted")

	// ErrTableOverflow is returned in strict mode when the input uses all
	// 256 byte values, which the 8-bit entry count cannot represent.
	ErrTableOverflow error = Error("too many table entries")

	// ErrClosed is returned when using a closed Reader or Writer.
	ErrClosed error = Error("stream is closed")
)

// errRecover converts panicked errors into returned errors. Malformed input
// detected by the bit reader or the tree walk is reported as ErrCorrupt.
// Runtime errors are bugs and are re-panicked.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		if ex == prefix.ErrInvalid {
			ex = ErrCorrupt
		}
		*err = ex
	default:
		panic(ex)
	}
}
