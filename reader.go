// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"
	"io/ioutil"
)

type ReaderConfig struct {
	_ struct{} // Blank field to prevent unkeyed struct literals
}

// Reader decodes a single archive read from the underlying io.Reader.
// The whole archive is read and decoded on the first call to Read.
type Reader struct {
	InputOffset  int64 // Total number of bytes read from underlying io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd    io.Reader
	out   []byte
	ready bool
	err   error
}

func NewReader(r io.Reader, conf *ReaderConfig) (*Reader, error) {
	zr := new(Reader)
	zr.Reset(r)
	return zr, nil
}

func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if !zr.ready {
		src, err := ioutil.ReadAll(zr.rd)
		zr.InputOffset += int64(len(src))
		if err != nil {
			zr.err = err
			return 0, err
		}
		if zr.out, err = Decode(src); err != nil {
			zr.err = err
			return 0, err
		}
		zr.ready = true
	}
	if len(zr.out) == 0 {
		return 0, io.EOF
	}
	n := copy(buf, zr.out)
	zr.out = zr.out[n:]
	zr.OutputOffset += int64(n)
	return n, nil
}

func (zr *Reader) Close() error {
	if zr.err == ErrClosed {
		return nil
	}
	err := zr.err
	zr.err = ErrClosed
	return err
}

// Reset discards the Reader's state and makes it equivalent to the result
// of NewReader, but reading from r instead.
func (zr *Reader) Reset(r io.Reader) error {
	*zr = Reader{rd: r}
	return nil
}
