// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_lib_ds
// +build !no_lib_ds

package bench

import (
	"io"

	"github.com/dsnet/huffman"
)

func init() {
	RegisterEncoder(FormatHuffman, "ds",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := huffman.NewWriter(w, nil)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatHuffman, "ds",
		func(r io.Reader) io.ReadCloser {
			zr, err := huffman.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		})
}
