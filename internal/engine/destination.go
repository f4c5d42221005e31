package engine

// Utf8Destination is a capability-gated cursor over a mutable byte buffer
// that a decoder writes UTF-8 into. Every write consumes a handle
// obtained from one of the CheckSpace* calls; a handle that ends up
// unused can be Decommit()ed, which yields a fresh Destination value
// without advancing the write position.
type Utf8Destination struct {
	buf []byte
	pos int
}

// NewUtf8Destination wraps buf for writing from the start.
func NewUtf8Destination(buf []byte) Utf8Destination {
	return Utf8Destination{buf: buf}
}

// Written reports how many bytes have been written so far.
func (d *Utf8Destination) Written() int { return d.pos }

// CheckSpaceBMP reports whether up to 3 bytes (the worst case for one
// non-ASCII BMP scalar in UTF-8) are available.
func (d *Utf8Destination) CheckSpaceBMP() (ok bool, written int) {
	if len(d.buf)-d.pos < 3 {
		return false, d.pos
	}
	return true, 0
}

// CheckSpaceAstral reports whether up to 4 bytes are available: the
// worst case for one astral scalar, or for a Big5 combining-pair
// emission of two BMP scalars.
func (d *Utf8Destination) CheckSpaceAstral() (ok bool, written int) {
	if len(d.buf)-d.pos < 4 {
		return false, d.pos
	}
	return true, 0
}

// WriteHandle is returned by a successful CheckSpace* call. Exactly one
// write method must be called on it, or it must be Decommit()ed.
type WriteHandle struct {
	d *Utf8Destination
}

// Decommit abandons this handle without writing, returning a destination
// usable for a fresh CheckSpace* call.
func (h WriteHandle) Decommit() *Utf8Destination { return h.d }

func (h WriteHandle) handle() *Utf8Destination { return h.d }

// WriteASCII writes one ASCII byte.
func (h WriteHandle) WriteASCII(b byte) int {
	d := h.d
	d.buf[d.pos] = b
	d.pos++
	return d.pos
}

// WriteBMPExclASCII writes one non-ASCII BMP scalar (2 or 3 UTF-8 bytes).
func (h WriteHandle) WriteBMPExclASCII(u uint16) int {
	return h.writeRune(rune(u))
}

// WriteUpperBMP writes one BMP scalar known to require 3 UTF-8 bytes
// (code point >= 0x800), such as U+20AC.
func (h WriteHandle) WriteUpperBMP(u uint16) int {
	return h.writeRune(rune(u))
}

// WriteAstral writes one astral scalar (4 UTF-8 bytes).
func (h WriteHandle) WriteAstral(u uint32) int {
	return h.writeRune(rune(u))
}

// WriteCharExclASCII writes any non-ASCII scalar, BMP or astral.
func (h WriteHandle) WriteCharExclASCII(r rune) int {
	return h.writeRune(r)
}

// WriteBig5Combination writes the two BMP scalars of a Big5
// combining-pair decomposition (e.g. U+00CA, U+0304).
func (h WriteHandle) WriteBig5Combination(first, second uint16) int {
	d := h.d
	d.pos += encodeRuneUTF8(d.buf[d.pos:], rune(first))
	d.pos += encodeRuneUTF8(d.buf[d.pos:], rune(second))
	return d.pos
}

func (h WriteHandle) writeRune(r rune) int {
	d := h.d
	d.pos += encodeRuneUTF8(d.buf[d.pos:], r)
	return d.pos
}

// Handle builds a WriteHandle after a successful CheckSpace* call.
func (d *Utf8Destination) Handle() WriteHandle { return WriteHandle{d: d} }

func encodeRuneUTF8(dst []byte, r rune) int {
	switch {
	case r < 0x80:
		dst[0] = byte(r)
		return 1
	case r < 0x800:
		dst[0] = 0xC0 | byte(r>>6)
		dst[1] = 0x80 | byte(r&0x3F)
		return 2
	case r < 0x10000:
		dst[0] = 0xE0 | byte(r>>12)
		dst[1] = 0x80 | byte((r>>6)&0x3F)
		dst[2] = 0x80 | byte(r&0x3F)
		return 3
	default:
		dst[0] = 0xF0 | byte(r>>18)
		dst[1] = 0x80 | byte((r>>12)&0x3F)
		dst[2] = 0x80 | byte((r>>6)&0x3F)
		dst[3] = 0x80 | byte(r&0x3F)
		return 4
	}
}

// Utf16Destination is the UTF-16 analog of Utf8Destination.
type Utf16Destination struct {
	buf []uint16
	pos int
}

// NewUtf16Destination wraps buf for writing from the start.
func NewUtf16Destination(buf []uint16) Utf16Destination {
	return Utf16Destination{buf: buf}
}

// Written reports how many code units have been written so far.
func (d *Utf16Destination) Written() int { return d.pos }

// CheckSpaceBMP reports whether one code unit is available.
func (d *Utf16Destination) CheckSpaceBMP() (ok bool, written int) {
	if len(d.buf)-d.pos < 1 {
		return false, d.pos
	}
	return true, 0
}

// CheckSpaceAstral reports whether two code units are available: a
// surrogate pair, or a Big5 combining pair of two BMP units.
func (d *Utf16Destination) CheckSpaceAstral() (ok bool, written int) {
	if len(d.buf)-d.pos < 2 {
		return false, d.pos
	}
	return true, 0
}

// Handle builds a Utf16WriteHandle after a successful CheckSpace* call.
func (d *Utf16Destination) Handle() Utf16WriteHandle { return Utf16WriteHandle{d: d} }

// Utf16WriteHandle mirrors WriteHandle for UTF-16 output.
type Utf16WriteHandle struct {
	d *Utf16Destination
}

// Decommit abandons this handle without writing.
func (h Utf16WriteHandle) Decommit() *Utf16Destination { return h.d }

// WriteASCII writes one ASCII code unit.
func (h Utf16WriteHandle) WriteASCII(b byte) int {
	d := h.d
	d.buf[d.pos] = uint16(b)
	d.pos++
	return d.pos
}

// WriteBMPExclASCII writes one non-ASCII BMP code unit directly.
func (h Utf16WriteHandle) WriteBMPExclASCII(u uint16) int {
	d := h.d
	d.buf[d.pos] = u
	d.pos++
	return d.pos
}

// WriteUpperBMP writes one BMP code unit known to be >= 0x800.
func (h Utf16WriteHandle) WriteUpperBMP(u uint16) int {
	return h.WriteBMPExclASCII(u)
}

// WriteAstral writes one astral scalar as a surrogate pair.
func (h Utf16WriteHandle) WriteAstral(u uint32) int {
	d := h.d
	v := u - 0x10000
	hi := uint16(0xD800 + (v >> 10))
	lo := uint16(0xDC00 + (v & 0x3FF))
	d.buf[d.pos] = hi
	d.buf[d.pos+1] = lo
	d.pos += 2
	return d.pos
}

// WriteCharExclASCII writes any non-ASCII scalar, BMP or astral.
func (h Utf16WriteHandle) WriteCharExclASCII(r rune) int {
	if r >= 0x10000 {
		return h.WriteAstral(uint32(r))
	}
	return h.WriteBMPExclASCII(uint16(r))
}

// WriteBig5Combination writes the two BMP code units of a Big5
// combining-pair decomposition.
func (h Utf16WriteHandle) WriteBig5Combination(first, second uint16) int {
	d := h.d
	d.buf[d.pos] = first
	d.buf[d.pos+1] = second
	d.pos += 2
	return d.pos
}

// ByteDestination is the output side for encoders: a capability-gated
// cursor over a mutable byte buffer receiving 1, 2 or 4-byte encoded
// sequences.
type ByteDestination struct {
	buf []byte
	pos int
}

// NewByteDestination wraps buf for writing from the start.
func NewByteDestination(buf []byte) ByteDestination {
	return ByteDestination{buf: buf}
}

// Written reports how many bytes have been written so far.
func (d *ByteDestination) Written() int { return d.pos }

// CheckSpaceOne reports whether one byte is available.
func (d *ByteDestination) CheckSpaceOne() (ok bool, written int) {
	if len(d.buf)-d.pos < 1 {
		return false, d.pos
	}
	return true, 0
}

// CheckSpaceTwo reports whether two bytes are available.
func (d *ByteDestination) CheckSpaceTwo() (ok bool, written int) {
	if len(d.buf)-d.pos < 2 {
		return false, d.pos
	}
	return true, 0
}

// CheckSpaceFour reports whether four bytes are available.
func (d *ByteDestination) CheckSpaceFour() (ok bool, written int) {
	if len(d.buf)-d.pos < 4 {
		return false, d.pos
	}
	return true, 0
}

// Handle builds a ByteWriteHandle after a successful CheckSpace* call.
func (d *ByteDestination) Handle() ByteWriteHandle { return ByteWriteHandle{d: d} }

// ByteWriteHandle mirrors WriteHandle for raw-byte encoder output.
type ByteWriteHandle struct {
	d *ByteDestination
}

// Decommit abandons this handle without writing.
func (h ByteWriteHandle) Decommit() *ByteDestination { return h.d }

// WriteOne writes a single byte (e.g. plain ASCII, or GBK's single-byte
// euro sign).
func (h ByteWriteHandle) WriteOne(b byte) int {
	d := h.d
	d.buf[d.pos] = b
	d.pos++
	return d.pos
}

// WriteTwo writes a two-byte sequence (Big5, EUC-JP, or GB18030's
// two-byte range).
func (h ByteWriteHandle) WriteTwo(b0, b1 byte) int {
	d := h.d
	d.buf[d.pos] = b0
	d.buf[d.pos+1] = b1
	d.pos += 2
	return d.pos
}

// WriteFour writes a four-byte sequence (GB18030's extended range).
func (h ByteWriteHandle) WriteFour(b0, b1, b2, b3 byte) int {
	d := h.d
	d.buf[d.pos] = b0
	d.buf[d.pos+1] = b1
	d.buf[d.pos+2] = b2
	d.buf[d.pos+3] = b3
	d.pos += 4
	return d.pos
}
