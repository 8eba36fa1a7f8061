// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_lib_uk
// +build !no_lib_uk

package bench

import (
	"io"
	"io/ioutil"

	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder(FormatXZ, "uk",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatXZ, "uk",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				return ioutil.NopCloser(errReader{err})
			}
			return ioutil.NopCloser(zr)
		})
}
