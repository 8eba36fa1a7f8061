// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_lib_kp
// +build !no_lib_kp

package bench

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/klauspost/compress/flate"
)

// blockWriter buffers all input and hands it to a block encoder on Close.
type blockWriter struct {
	bytes.Buffer
	w   io.Writer
	enc func([]byte) []byte
}

func (bw *blockWriter) Close() error {
	_, err := bw.w.Write(bw.enc(bw.Bytes()))
	return err
}

func init() {
	RegisterEncoder(FormatFlate, "kp",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := flate.NewWriter(w, lvl)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatFlate, "kp",
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})

	RegisterEncoder(FormatHuff0, "kp",
		func(w io.Writer, lvl int) io.WriteCloser {
			return &blockWriter{w: w, enc: encodeHuff0}
		})
	RegisterDecoder(FormatHuff0, "kp",
		func(r io.Reader) io.ReadCloser {
			b, err := ioutil.ReadAll(r)
			if err == nil {
				b, err = decodeHuff0(b)
			}
			if err != nil {
				return ioutil.NopCloser(errReader{err})
			}
			return ioutil.NopCloser(bytes.NewReader(b))
		})
}
