// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
)

func TestWriter(t *testing.T) {
	for _, v := range testutil.Corpus(1e4) {
		var buf bytes.Buffer
		zw, err := NewWriter(&buf, nil)
		if err != nil {
			t.Fatalf("%s, unexpected NewWriter error: %v", v.Name, err)
		}
		cnt, err := io.Copy(zw, bytes.NewReader(v.Data))
		if err != nil {
			t.Errorf("%s, write error: got %v", v.Name, err)
		}
		if cnt != int64(len(v.Data)) {
			t.Errorf("%s, write count mismatch: got %d, want %d", v.Name, cnt, len(v.Data))
		}
		if err := zw.Close(); err != nil {
			t.Errorf("%s, close error: got %v", v.Name, err)
		}
		if zw.InputOffset != int64(len(v.Data)) || zw.OutputOffset != int64(buf.Len()) {
			t.Errorf("%s, offset mismatch: got %d/%d, want %d/%d",
				v.Name, zw.InputOffset, zw.OutputOffset, len(v.Data), buf.Len())
		}

		want, err := Encode(v.Data, nil)
		if err != nil {
			t.Fatalf("%s, unexpected Encode error: %v", v.Name, err)
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Errorf("%s, Writer output differs from Encode", v.Name)
		}
	}
}

func TestWriterErrors(t *testing.T) {
	errBuggy := errors.New("buggy writer")

	// Closing without data cannot produce an archive.
	zw, _ := NewWriter(new(bytes.Buffer), nil)
	if err := zw.Close(); err != ErrEmpty {
		t.Errorf("empty Close error mismatch: got %v, want %v", err, ErrEmpty)
	}
	if _, err := zw.Write([]byte("x")); err != ErrEmpty {
		t.Errorf("Write after failure mismatch: got %v, want %v", err, ErrEmpty)
	}

	// Errors from the underlying writer are returned from Close.
	bw := &testutil.BuggyWriter{W: new(bytes.Buffer), N: 4, Err: errBuggy}
	zw.Reset(bw)
	zw.Write([]byte("some input"))
	if err := zw.Close(); err != errBuggy {
		t.Errorf("Close error mismatch: got %v, want %v", err, errBuggy)
	}
	if zw.OutputOffset != 4 {
		t.Errorf("output offset mismatch: got %d, want 4", zw.OutputOffset)
	}

	// Strict mode is passed through to Encode.
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	zw, _ = NewWriter(new(bytes.Buffer), &WriterConfig{StrictCount: true})
	zw.Write(all)
	if err := zw.Close(); err != ErrTableOverflow {
		t.Errorf("strict Close error mismatch: got %v, want %v", err, ErrTableOverflow)
	}

	// A successful Close makes the Writer unusable until Reset.
	var buf bytes.Buffer
	zw.Reset(&buf)
	zw.Write(all)
	if err := zw.Close(); err != ErrTableOverflow {
		t.Errorf("Reset must keep the configuration: got %v, want %v", err, ErrTableOverflow)
	}
	zw, _ = NewWriter(&buf, nil)
	zw.Write(all)
	if err := zw.Close(); err != nil {
		t.Errorf("unexpected Close error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Errorf("unexpected second Close error: %v", err)
	}
	if _, err := zw.Write(all); err != ErrClosed {
		t.Errorf("Write after Close mismatch: got %v, want %v", err, ErrClosed)
	}
}
