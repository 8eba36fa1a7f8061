// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffbench compares the speed and compression ratio of the Huffman
// archive codec against other entropy coders. Individual implementations
// are referred to as codecs and are grouped by format.
//
// Example usage:
//	$ huffbench \
//		-formats huff,fl        \
//		-tests   encRate,ratio  \
//		-files   text,skewed    \
//		-levels  -2             \
//		-sizes   1e4,1e5,1e6
//
// Files named after the built-in corpus (zeros, binary, repeats, text,
// skewed, random, allbytes) are generated; any other name is searched for
// in the list of paths.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dsnet/golib/unitconv"
	"github.com/dsnet/huffman/internal/testutil"
	"github.com/dsnet/huffman/internal/tool/bench"
)

// encRefs is the priority order of encoders used to produce the input of
// the decoding benchmarks. The same encoder is used for every decoder so
// that their results are comparable.
var encRefs = []string{"ds", "std", "kp", "uk"}

var tests = []struct {
	name   string
	id     int
	title  string
	suffix string
}{
	{"encRate", bench.TestEncodeRate, "MB/s", ""},
	{"decRate", bench.TestDecodeRate, "MB/s", ""},
	{"ratio", bench.TestCompressRatio, "ratio", "x"},
}

var sep = regexp.MustCompile("[,:]")

func main() {
	var names []string
	for _, t := range tests {
		names = append(names, t.name)
	}
	var files []string
	for _, v := range testutil.Corpus(0) {
		files = append(files, v.Name)
	}

	f0 := flag.String("formats", defaultFormats(), "List of formats to benchmark")
	f1 := flag.String("tests", strings.Join(names, ","), "List of different benchmark tests")
	f2 := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f3 := flag.String("paths", ".", "List of paths to search for input files")
	f4 := flag.String("files", strings.Join(files, ","), "List of input files to benchmark")
	f5 := flag.String("levels", "-2", "List of compression levels to benchmark")
	f6 := flag.String("sizes", "1e4,1e5,1e6", "List of input sizes to benchmark")
	flag.Parse()

	var formats []bench.Format
	for _, s := range sep.Split(*f0, -1) {
		ft, ok := bench.ParseFormat(s)
		if !ok {
			fatalf("invalid format: %q", s)
		}
		formats = append(formats, ft)
	}
	var selected []int
	for _, s := range sep.Split(*f1, -1) {
		idx := -1
		for i, t := range tests {
			if t.name == s {
				idx = i
			}
		}
		if idx < 0 {
			fatalf("invalid test: %q", s)
		}
		selected = append(selected, idx)
	}
	levels := parseInts(*f5, "level")
	sizes := parseInts(*f6, "size")

	ts := time.Now()
	bench.Paths = sep.Split(*f3, -1)
	for _, ft := range formats {
		runFormat(ft, sep.Split(*f2, -1), sep.Split(*f4, -1), levels, sizes, selected)
	}
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))
}

func fatalf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "huffbench: "+f+"\n", args...)
	os.Exit(2)
}

// parseInts parses a list of numbers that may carry SI or binary prefixes.
func parseInts(s, what string) (out []int) {
	for _, s := range sep.Split(s, -1) {
		v, err := unitconv.ParsePrefix(s, unitconv.AutoParse)
		if err != nil {
			fatalf("invalid %s: %q", what, s)
		}
		out = append(out, int(v))
	}
	return out
}

func defaultFormats() string {
	var fs []bench.Format
	for f := range bench.Encoders {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	var s []string
	for _, f := range fs {
		s = append(s, f.String())
	}
	return strings.Join(s, ",")
}

// defaultCodecs lists every registered codec, with "ds" first so that it is
// the baseline for the delta columns.
func defaultCodecs() string {
	m := make(map[string]bool)
	for _, v := range bench.Encoders {
		for k := range v {
			m[k] = true
		}
	}
	for _, v := range bench.Decoders {
		for k := range v {
			m[k] = true
		}
	}
	var s []string
	for k := range m {
		if k != "ds" {
			s = append(s, k)
		}
	}
	sort.Strings(s)
	if m["ds"] {
		s = append([]string{"ds"}, s...)
	}
	return strings.Join(s, ",")
}

func runFormat(ft bench.Format, codecs, files []string, levels, sizes, selected []int) {
	var encs, decs []string
	for _, c := range codecs {
		if _, ok := bench.Encoders[ft][c]; ok {
			encs = append(encs, c)
		}
		if _, ok := bench.Decoders[ft][c]; ok {
			decs = append(decs, c)
		}
	}

	for _, i := range selected {
		t := tests[i]
		fmt.Printf("BENCHMARK: %v:%s\n", ft, t.name)
		used := encs
		if t.id == bench.TestDecodeRate {
			used = decs
		}
		if len(encs) == 0 || len(used) == 0 {
			fmt.Print("\tSKIP: There are no codecs available.\n\n")
			continue
		}

		suite := &bench.Suite{Format: ft, Codecs: used, Files: files, Levels: levels, Sizes: sizes}
		var cnt int
		suite.Tick = func() {
			pct := 100.0 * float64(cnt) / float64(suite.Len())
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, suite.Len())
			cnt++
		}
		results, names := suite.Run(t.id, referenceEncoder(ft))
		printResults(results, names, used, t.title, t.suffix)
		fmt.Println()
	}
}

func referenceEncoder(ft bench.Format) bench.Encoder {
	for _, c := range encRefs {
		if enc, ok := bench.Encoders[ft][c]; ok {
			return enc
		}
	}
	return nil
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\tbenchmark\t")
	for _, c := range codecs {
		fmt.Fprintf(tw, "%s %s\tdelta\t", c, title)
	}
	fmt.Fprintln(tw)

	cell := func(v float64, suffix string) string {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		return fmt.Sprintf("%.2f%s", v, suffix)
	}
	for j, row := range results {
		fmt.Fprintf(tw, "\t%s\t", names[j])
		for _, r := range row {
			fmt.Fprintf(tw, "%s\t%s\t", cell(r.R, suffix), cell(r.D, "x"))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
