// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the Huffman archive codec against other entropy
// coders with respect to encode speed, decode speed, and ratio.
package bench

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/dsnet/golib/unitconv"
	"github.com/dsnet/huffman/internal/testutil"
)

type Format int

const (
	FormatHuffman Format = iota
	FormatFlate
	FormatHuff0
	FormatXZ
)

var formatNames = map[Format]string{
	FormatHuffman: "huff",
	FormatFlate:   "fl",
	FormatHuff0:   "h0",
	FormatXZ:      "xz",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "<unknown>"
}

// ParseFormat returns the Format with the given short name.
func ParseFormat(s string) (Format, bool) {
	for f, name := range formatNames {
		if name == s {
			return f, true
		}
	}
	return 0, false
}

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

type Encoder func(io.Writer, int) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders = make(map[Format]map[string]Encoder)
	Decoders = make(map[Format]map[string]Decoder)

	// List of search paths for input files.
	Paths []string
)

func RegisterEncoder(format Format, name string, enc Encoder) {
	if Encoders[format] == nil {
		Encoders[format] = make(map[string]Encoder)
	}
	Encoders[format][name] = enc
}

func RegisterDecoder(format Format, name string, dec Decoder) {
	if Decoders[format] == nil {
		Decoders[format] = make(map[string]Decoder)
	}
	Decoders[format][name] = dec
}

// errReader returns err on every call to Read. Decoders that fail during
// construction return it so that the failure surfaces on the first Read.
type errReader struct{ err error }

func (er errReader) Read([]byte) (int, error) { return 0, er.err }

// Result is a single cell of a benchmark table.
type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to the first codec
}

// measure repeatedly runs op, which processes and reports some number of
// bytes, and returns the throughput in MB/s. A zero rate means op failed.
func measure(op func() (int64, error)) float64 {
	var failed bool
	res := testing.Benchmark(func(b *testing.B) {
		runtime.GC()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			n, err := op()
			if err != nil {
				failed = true
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(n)
		}
	})
	if failed || res.N == 0 || res.T <= 0 {
		return 0
	}
	us := float64(res.T.Nanoseconds()) / 1e3
	return float64(res.Bytes) * float64(res.N) / us
}

// EncodeRate reports the speed of enc on input in MB/s.
func EncodeRate(input []byte, enc Encoder, lvl int) float64 {
	if enc == nil {
		return 0
	}
	return measure(func() (int64, error) {
		wr := enc(ioutil.Discard, lvl)
		_, err := io.Copy(wr, bytes.NewReader(input))
		if cerr := wr.Close(); err == nil {
			err = cerr
		}
		return int64(len(input)), err
	})
}

// DecodeRate reports the speed of dec on the pre-compressed input in MB/s,
// measured by the number of bytes produced.
func DecodeRate(input []byte, dec Decoder) float64 {
	if dec == nil {
		return 0
	}
	return measure(func() (int64, error) {
		rd := dec(bufio.NewReader(bytes.NewReader(input)))
		n, err := io.Copy(ioutil.Discard, rd)
		if cerr := rd.Close(); err == nil {
			err = cerr
		}
		return n, err
	})
}

// Ratio reports the compression ratio of enc on input.
func Ratio(input []byte, enc Encoder, lvl int) float64 {
	if enc == nil {
		return 0
	}
	output, err := compress(enc, input, lvl)
	if err != nil || len(output) == 0 {
		return 0
	}
	return float64(len(input)) / float64(len(output))
}

func compress(enc Encoder, input []byte, lvl int) ([]byte, error) {
	buf := new(bytes.Buffer)
	wr := enc(buf, lvl)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Suite describes the cross product of inputs to benchmark a set of codecs
// of one format against.
type Suite struct {
	Format Format
	Codecs []string
	Files  []string
	Levels []int
	Sizes  []int

	// Tick, if set, is called before every individual measurement.
	Tick func()
}

// Len reports the number of measurements the suite performs.
func (s *Suite) Len() int {
	return len(s.Codecs) * len(s.Files) * len(s.Levels) * len(s.Sizes)
}

// Run performs the test on every codec, file, level, and size. Decode rate
// tests use ref to produce the compressed input for every decoder.
//
// The values returned have the following structure:
//	results: [len(files)*len(levels)*len(sizes)][len(codecs)]Result
//	names:   [len(files)*len(levels)*len(sizes)]string
func (s *Suite) Run(test int, ref Encoder) (results [][]Result, names []string) {
	for _, f := range s.Files {
		for _, l := range s.Levels {
			for _, n := range s.Sizes {
				input, err := LoadInput(f, n)
				row := make([]Result, len(s.Codecs))
				var packed []byte
				if err == nil && test == TestDecodeRate && ref != nil {
					packed, err = compress(ref, input, l)
				}
				for j, c := range s.Codecs {
					if s.Tick != nil {
						s.Tick()
					}
					if err != nil {
						continue
					}
					switch test {
					case TestEncodeRate:
						row[j].R = EncodeRate(input, Encoders[s.Format][c], l)
					case TestDecodeRate:
						row[j].R = DecodeRate(packed, Decoders[s.Format][c])
					case TestCompressRatio:
						row[j].R = Ratio(input, Encoders[s.Format][c], l)
					}
					row[j].D = row[j].R / row[0].R
				}
				results = append(results, row)
				names = append(names, getName(f, l, len(input)))
			}
		}
	}
	return results, names
}

// LoadInput returns n bytes of the named input. Names of the generated
// test corpus (such as "text" or "skewed") are synthesized; any other name
// is loaded from the search Paths.
func LoadInput(file string, n int) ([]byte, error) {
	for _, v := range testutil.Corpus(n) {
		if v.Name == file {
			return v.Data, nil
		}
	}
	return testutil.LoadFile(getPath(file), n)
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

// getName labels a row of results as file:level:size. Exact powers of ten
// are written in exponent form (1e6), other sizes with a binary prefix.
func getName(f string, l, n int) string {
	sn := unitconv.FormatPrefix(float64(n), unitconv.Base1024, 2)
	sn = strings.Replace(sn, ".00", "", -1)
	if e := powerOfTen(n); e >= 3 {
		sn = fmt.Sprintf("1e%d", e)
	}
	return fmt.Sprintf("%s:%d:%s", path.Base(f), l, sn)
}

func powerOfTen(n int) int {
	if n <= 0 {
		return -1
	}
	var e int
	for ; n%10 == 0; n /= 10 {
		e++
	}
	if n != 1 {
		return -1
	}
	return e
}
