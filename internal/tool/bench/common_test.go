// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"hash/crc32"
	"io"
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
)

func testRoundTrip(t *testing.T, enc Encoder, dec Decoder) {
	type entry struct {
		name  string // Name of the test
		input []byte // The input data
		level int    // The compression level
	}
	var vectors []entry
	for _, v := range testutil.Corpus(1e5) {
		vectors = append(vectors, entry{getName(v.Name, 6, len(v.Data)), v.Data, 6})
	}

	for i, v := range vectors {
		buf := new(bytes.Buffer)
		wr := enc(buf, v.level)
		_, cpErr := io.Copy(wr, bytes.NewReader(v.input))
		if err := wr.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		hash := crc32.NewIEEE()
		rd := dec(buf)
		cnt, cpErr := io.Copy(hash, rd)
		if err := rd.Close(); err != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, err)
			continue
		}
		if cpErr != nil {
			t.Errorf("test %d, %s: unexpected error: %v", i, v.name, cpErr)
			continue
		}

		sum := crc32.ChecksumIEEE(v.input)
		if int(cnt) != len(v.input) {
			t.Errorf("test %d, %s: mismatching count: got %d, want %d", i, v.name, cnt, len(v.input))
		}
		if hash.Sum32() != sum {
			t.Errorf("test %d, %s: mismatching checksum: got 0x%08x, want 0x%08x", i, v.name, hash.Sum32(), sum)
		}
	}
}

func TestHuffmanRoundTrip(t *testing.T) {
	testRoundTrip(t, Encoders[FormatHuffman]["ds"], Decoders[FormatHuffman]["ds"])
}

// TestRatioAgainstFlate checks that the archive stays close to the output of
// a Huffman-only DEFLATE encoder, which also codes each byte independently.
func TestRatioAgainstFlate(t *testing.T) {
	const huffmanOnly = -2
	enc, ok := Encoders[FormatFlate]["kp"]
	if !ok {
		t.Skip("no flate encoder available")
	}
	for _, v := range testutil.Corpus(1e5) {
		if v.Name == "random" || v.Name == "allbytes" {
			continue // Both coders expand incompressible input
		}
		ref, err := compress(enc, v.Data, huffmanOnly)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", v.Name, err)
		}
		got, err := compress(Encoders[FormatHuffman]["ds"], v.Data, 0)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", v.Name, err)
		}
		if limit := len(ref) + len(ref)/10 + 1024; len(got) > limit {
			t.Errorf("%s: archive too large: got %d bytes, want <= %d", v.Name, len(got), limit)
		}
	}
}

func TestLoadInput(t *testing.T) {
	b, err := LoadInput("text", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 1000 {
		t.Errorf("mismatching length: got %d, want 1000", len(b))
	}
	if _, err := LoadInput("does-not-exist.bin", 1000); err == nil {
		t.Error("unexpected success loading missing file")
	}
}

func TestGetName(t *testing.T) {
	vectors := []struct {
		file string
		lvl  int
		n    int
		want string
	}{
		{"text", 6, 1e4, "text:6:1e4"},
		{"/tmp/twain.txt", -2, 1e6, "twain.txt:-2:1e6"},
	}
	for i, v := range vectors {
		if got := getName(v.file, v.lvl, v.n); got != v.want {
			t.Errorf("test %d, getName() = %q, want %q", i, got, v.want)
		}
	}
}

func TestSuiteRatio(t *testing.T) {
	var ticks int
	s := &Suite{
		Format: FormatHuffman,
		Codecs: []string{"ds"},
		Files:  []string{"text", "skewed", "missing.bin"},
		Levels: []int{0},
		Sizes:  []int{1e3, 1 << 12},
		Tick:   func() { ticks++ },
	}
	results, names := s.Run(TestCompressRatio, nil)
	if len(results) != 6 || len(names) != 6 {
		t.Fatalf("mismatching result count: got %d rows and %d names, want 6", len(results), len(names))
	}
	if ticks != s.Len() {
		t.Errorf("mismatching ticks: got %d, want %d", ticks, s.Len())
	}
	for i, row := range results[:4] {
		if row[0].R <= 1 || row[0].D != 1 {
			t.Errorf("row %d (%s): unexpected result %+v", i, names[i], row[0])
		}
	}
	for i, row := range results[4:] {
		if row[0].R != 0 {
			t.Errorf("row %d (%s): missing file produced ratio %v", 4+i, names[4+i], row[0].R)
		}
	}
	if names[0] != "text:0:1e3" {
		t.Errorf("mismatching name: got %q, want %q", names[0], "text:0:1e3")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatHuffman, FormatFlate, FormatHuff0, FormatXZ} {
		got, ok := ParseFormat(f.String())
		if !ok || got != f {
			t.Errorf("ParseFormat(%q) = (%v, %v), want (%v, true)", f.String(), got, ok, f)
		}
	}
	if _, ok := ParseFormat("br"); ok {
		t.Error("ParseFormat(\"br\") unexpectedly succeeded")
	}
}

func TestRates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timed benchmarks in short mode")
	}
	input, err := LoadInput("text", 1e4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enc, dec := Encoders[FormatHuffman]["ds"], Decoders[FormatHuffman]["ds"]
	if r := EncodeRate(input, enc, 0); r <= 0 {
		t.Errorf("EncodeRate() = %v, want > 0", r)
	}
	packed, err := compress(enc, input, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r := DecodeRate(packed, dec); r <= 0 {
		t.Errorf("DecodeRate() = %v, want > 0", r)
	}
	if r := DecodeRate([]byte("garbage"), dec); r != 0 {
		t.Errorf("DecodeRate(garbage) = %v, want 0", r)
	}
}
