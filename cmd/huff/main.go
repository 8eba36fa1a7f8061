// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huff compresses files into Huffman archives and back.
//
// Example usage:
//	$ huff encode twain.txt           # writes twain.txt.archive
//	$ huff decode twain.txt.archive   # writes twain.txt
//	$ huff test *.archive             # verifies archives and prints CRC-32s
//	$ huff list twain.txt.archive     # prints the code table
package main

import (
	"fmt"
	"hash/crc32"
	"io"
	"io/ioutil"
	"os"

	"github.com/dsnet/golib/hashmerge"
	"github.com/dsnet/huffman"
	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
	nucliozap "github.com/nuclio/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		errors.PrintErrorStack(os.Stderr, err, 10)
		os.Exit(1)
	}
}

// run executes the command line args. Archive and report output goes to
// stdout; usage messages and logs go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	conf, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	level := nucliozap.InfoLevel
	switch {
	case conf.stdout:
		level = nucliozap.WarnLevel
	case conf.verbose:
		level = nucliozap.DebugLevel
	}
	loggerInstance, err := nucliozap.NewNuclioZapCmd("huff", level, stderr)
	if err != nil {
		return errors.Wrap(err, "Failed to create logger")
	}
	return newCommand(conf, loggerInstance, stdout).run()
}

type command struct {
	conf   *config
	logger logger.Logger
	stdout io.Writer

	// Running checksum over every archive verified in test mode.
	crc uint32
	cnt int64
}

func newCommand(conf *config, logger logger.Logger, stdout io.Writer) *command {
	return &command{conf: conf, logger: logger, stdout: stdout}
}

func (c *command) run() error {
	var process func(string) error
	switch c.conf.mode {
	case modeEncode:
		process = c.encodeFile
	case modeDecode:
		process = c.decodeFile
	case modeTest:
		process = c.testFile
	case modeList:
		process = c.listFile
	}
	for _, name := range c.conf.files {
		if err := process(name); err != nil {
			return errors.Wrapf(err, "Failed to %s %s", c.conf.mode, name)
		}
	}
	if c.conf.mode == modeTest && len(c.conf.files) > 1 {
		fmt.Fprintf(c.stdout, "%08x  %d bytes total\n", c.crc, c.cnt)
	}
	return nil
}

func (c *command) encodeFile(name string) error {
	src, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}
	out, err := huffman.Encode(src, &huffman.EncoderConfig{StrictCount: c.conf.strict})
	if err != nil {
		return errors.Wrap(err, "Failed to encode")
	}
	if c.conf.verbose {
		if hdr, err := huffman.ReadHeader(out); err == nil {
			c.logger.DebugWith("Built code table", "file", name, "table", hdr.String())
		}
	}

	dst := c.conf.encodedName(name)
	if err := c.writeOutput(dst, out); err != nil {
		return err
	}
	c.logger.InfoWith("Encoded file",
		"input", name,
		"output", dst,
		"inputSize", len(src),
		"outputSize", len(out),
		"ratio", fmt.Sprintf("%.3f", float64(len(src))/float64(len(out))))
	return nil
}

func (c *command) decodeFile(name string) error {
	dst, err := c.conf.decodedName(name)
	if err != nil {
		return err
	}
	src, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}
	out, err := huffman.Decode(src)
	if err != nil {
		return errors.Wrap(err, "Failed to decode")
	}
	if err := c.writeOutput(dst, out); err != nil {
		return err
	}
	c.logger.InfoWith("Decoded file",
		"input", name,
		"output", dst,
		"inputSize", len(src),
		"outputSize", len(out))
	return nil
}

// testFile decodes an archive in memory and prints the CRC-32 of its
// contents. The checksum of every tested file is folded into the total.
func (c *command) testFile(name string) error {
	src, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}
	out, err := huffman.Decode(src)
	if err != nil {
		return errors.Wrap(err, "Failed to decode")
	}
	crc := crc32.ChecksumIEEE(out)
	c.crc = hashmerge.CombineCRC32(crc32.IEEE, c.crc, crc, int64(len(out)))
	c.cnt += int64(len(out))
	fmt.Fprintf(c.stdout, "%08x  %s\n", crc, name)
	c.logger.DebugWith("Tested file", "file", name, "size", len(out), "crc", crc)
	return nil
}

// listFile prints the code table of an archive, one symbol per line.
func (c *command) listFile(name string) error {
	src, err := ioutil.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "Failed to read input")
	}
	hdr, err := huffman.ReadHeader(src)
	if err != nil {
		return errors.Wrap(err, "Failed to read header")
	}
	fmt.Fprintf(c.stdout, "%s: %d symbols, %d bits, %d payload bits\n",
		name, len(hdr.Codes), hdr.TotalBits, hdr.PayloadBits())
	for _, code := range hdr.Codes {
		fmt.Fprintf(c.stdout, "%q: %s\n", string([]byte{code.Sym}), code.Bits)
	}
	if c.conf.verbose {
		fmt.Fprintln(c.stdout, hdr.String())
	}
	return nil
}

func (c *command) writeOutput(name string, b []byte) error {
	if c.conf.stdout {
		if _, err := c.stdout.Write(b); err != nil {
			return errors.Wrap(err, "Failed to write output")
		}
		return nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !c.conf.force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(name, flags, 0644)
	if err != nil {
		return errors.Wrap(err, "Failed to create output")
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return errors.Wrap(err, "Failed to write output")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "Failed to close output")
	}
	return nil
}
