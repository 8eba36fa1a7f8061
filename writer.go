// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
)

type WriterConfig struct {
	// StrictCount is passed to Encode, see EncoderConfig.
	StrictCount bool

	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Writer collects everything written to it and emits a single archive to
// the underlying io.Writer on Close.
type Writer struct {
	InputOffset  int64 // Total number of bytes issued to Write
	OutputOffset int64 // Total number of bytes written to underlying io.Writer

	wr   io.Writer
	buf  bytes.Buffer
	conf EncoderConfig
	err  error
}

func NewWriter(w io.Writer, conf *WriterConfig) (*Writer, error) {
	zw := new(Writer)
	if conf != nil {
		zw.conf.StrictCount = conf.StrictCount
	}
	zw.Reset(w)
	return zw, nil
}

func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	n, _ := zw.buf.Write(buf)
	zw.InputOffset += int64(n)
	return n, nil
}

// Close encodes the buffered input and writes the archive. Closing a Writer
// that received no data fails with ErrEmpty.
func (zw *Writer) Close() error {
	if zw.err == ErrClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	out, err := Encode(zw.buf.Bytes(), &zw.conf)
	if err != nil {
		zw.err = err
		return err
	}
	n, err := zw.wr.Write(out)
	zw.OutputOffset += int64(n)
	if err != nil {
		zw.err = err
		return err
	}
	zw.buf.Reset()
	zw.err = ErrClosed
	return nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of NewWriter, but writing to w instead. The configuration is kept.
func (zw *Writer) Reset(w io.Writer) error {
	zw.buf.Reset()
	zw.wr, zw.err = w, nil
	zw.InputOffset, zw.OutputOffset = 0, 0
	return nil
}
