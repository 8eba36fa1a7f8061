// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

// SetBit sets the bit at offset off of buf to v. Bits are numbered from the
// most-significant bit of buf[0].
func SetBit(buf []byte, off uint64, v bool) {
	mask := byte(0x80) >> (off % 8)
	if v {
		buf[off/8] |= mask
	} else {
		buf[off/8] &^= mask
	}
}

// GetBit reports the bit at offset off of buf.
func GetBit(buf []byte, off uint64) bool {
	return buf[off/8]&(byte(0x80)>>(off%8)) != 0
}

// Writer packs bits into a pre-sized byte slice.
//
// Writing past the end of the slice is a programming error and panics.
type Writer struct {
	buf []byte
	off uint64
}

// Init resets the Writer to write into buf starting at bit offset off.
func (pw *Writer) Init(buf []byte, off uint64) {
	*pw = Writer{buf: buf, off: off}
}

// Offset reports the current bit offset.
func (pw *Writer) Offset() uint64 { return pw.off }

// Bytes returns the underlying buffer.
func (pw *Writer) Bytes() []byte { return pw.buf }

func (pw *Writer) WriteBit(v bool) {
	SetBit(pw.buf, pw.off, v)
	pw.off++
}

// WriteBits writes the lower nb bits of v, most-significant first.
func (pw *Writer) WriteBits(v uint64, nb uint) {
	for i := nb; i > 0; i-- {
		pw.WriteBit(v&(1<<(i-1)) != 0)
	}
}

// WriteSymbol writes the code bits of pc.
func (pw *Writer) WriteSymbol(pc *PrefixCode) {
	for _, v := range pc.Bits {
		pw.WriteBit(v)
	}
}

// WriteUint64 writes v as 8 little-endian bytes.
func (pw *Writer) WriteUint64(v uint64) {
	for i := uint(0); i < 8; i++ {
		pw.WriteBits(v>>(8*i), 8)
	}
}

// WritePads skips zero bits up to the next byte boundary.
// The buffer is expected to be zeroed, so padding is left untouched.
func (pw *Writer) WritePads() {
	pw.off = (pw.off + 7) &^ 7
}

// Reader unpacks bits from a byte slice up to a bit limit.
//
// Reading beyond the limit panics with ErrInvalid. Callers that handle
// untrusted input are expected to recover it.
type Reader struct {
	buf []byte
	off uint64
	end uint64
}

// Init resets the Reader to read buf from bit offset off up to, but not
// including, bit offset end. The end is clamped to the size of buf.
func (pr *Reader) Init(buf []byte, off, end uint64) {
	if nb := 8 * uint64(len(buf)); end > nb {
		end = nb
	}
	*pr = Reader{buf: buf, off: off, end: end}
}

// Offset reports the current bit offset.
func (pr *Reader) Offset() uint64 { return pr.off }

// SetLimit lowers or raises the read limit, clamped to the buffer size.
func (pr *Reader) SetLimit(end uint64) {
	if nb := 8 * uint64(len(pr.buf)); end > nb {
		end = nb
	}
	pr.end = end
}

// Remaining reports the number of bits left before the limit.
func (pr *Reader) Remaining() uint64 {
	if pr.off >= pr.end {
		return 0
	}
	return pr.end - pr.off
}

func (pr *Reader) ReadBit() bool {
	if pr.off >= pr.end {
		panic(ErrInvalid)
	}
	v := GetBit(pr.buf, pr.off)
	pr.off++
	return v
}

// ReadBits reads nb bits, most-significant first.
func (pr *Reader) ReadBits(nb uint) (v uint64) {
	for i := uint(0); i < nb; i++ {
		v <<= 1
		if pr.ReadBit() {
			v |= 1
		}
	}
	return v
}

// ReadUint64 reads 8 little-endian bytes.
func (pr *Reader) ReadUint64() (v uint64) {
	for i := uint(0); i < 8; i++ {
		v |= pr.ReadBits(8) << (8 * i)
	}
	return v
}

// ReadPads reads bits up to the next byte boundary and returns their value.
func (pr *Reader) ReadPads() uint {
	nb := uint((8 - pr.off%8) % 8)
	return uint(pr.ReadBits(nb))
}
