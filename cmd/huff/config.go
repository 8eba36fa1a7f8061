// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"flag"
	"io"
	"strings"

	"github.com/nuclio/errors"
)

const (
	modeEncode = "encode"
	modeDecode = "decode"
	modeTest   = "test"
	modeList   = "list"

	defaultSuffix = ".archive"
)

type config struct {
	mode    string
	files   []string
	suffix  string
	force   bool
	strict  bool
	verbose bool
	stdout  bool
}

// parseConfig parses the command line arguments that follow the program
// name. Usage messages are printed to w.
func parseConfig(args []string, w io.Writer) (*config, error) {
	conf := new(config)
	fs := flag.NewFlagSet("huff", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.StringVar(&conf.suffix, "suffix", defaultSuffix, "Suffix of archive files")
	fs.BoolVar(&conf.force, "f", false, "Overwrite existing output files")
	fs.BoolVar(&conf.strict, "strict", false, "Reject inputs that use all 256 byte values")
	fs.BoolVar(&conf.verbose, "v", false, "Log debug messages and dump code tables")
	fs.BoolVar(&conf.stdout, "stdout", false, "Write output to standard output")
	fs.Usage = func() {
		io.WriteString(w, "Usage: huff [flags] encode|decode|test|list FILE...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "Failed to parse flags")
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return nil, errors.New("Expected a mode and at least one file")
	}
	conf.mode, conf.files = fs.Arg(0), fs.Args()[1:]
	switch conf.mode {
	case modeEncode, modeDecode, modeTest, modeList:
	default:
		return nil, errors.Errorf("Unknown mode %q", conf.mode)
	}
	if conf.suffix == "" {
		return nil, errors.New("Archive suffix must not be empty")
	}
	if conf.stdout && len(conf.files) > 1 && (conf.mode == modeEncode || conf.mode == modeDecode) {
		return nil, errors.New("Cannot write more than one file to standard output")
	}
	return conf, nil
}

// encodedName returns the archive name for the input file.
func (c *config) encodedName(name string) string {
	return name + c.suffix
}

// decodedName returns the output name for an archive, which must carry
// the archive suffix.
func (c *config) decodedName(name string) (string, error) {
	if !strings.HasSuffix(name, c.suffix) || len(name) == len(c.suffix) {
		return "", errors.Errorf("File %q does not have the %q suffix", name, c.suffix)
	}
	return strings.TrimSuffix(name, c.suffix), nil
}
