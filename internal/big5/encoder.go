package big5

import (
	"github.com/gocharset/codec/internal/engine"
	"github.com/gocharset/codec/result"
)

// Encoder is the Big5 encoder. Big5 has no carried state between
// scalars, so the zero value is always ready to use.
type Encoder struct{}

// NewEncoder returns an Encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// MaxBufferLengthFromUTF16WithoutReplacement bounds the bytes a
// u16Length-scalar UTF-16 input can produce: every scalar maps to at
// most 2 Big5 bytes (an astral scalar is 2 UTF-16 units in for 2 Big5
// bytes out; a BMP scalar is 1 unit in for at most 2 bytes out).
func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	return 2 * u16Length
}

// MaxBufferLengthFromUTF8WithoutReplacement bounds the bytes a
// byteLength-byte UTF-8 input can produce: every UTF-8 encoding of a
// mappable scalar is at least as long as its 1-or-2-byte Big5 form.
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	return byteLength
}

// encodeScalar implements spec.md §4.3's transition table for one
// already-decoded scalar: ASCII passthrough, then a BMP/Plane-2 range
// check, then the pointer lookup and lead/trail byte computation. It is
// shared verbatim between EncodeFromUTF8 and EncodeFromUTF16.
func encodeScalar(c rune, dest *engine.ByteDestination) (res result.EncoderResult, ok bool, wrote int) {
	if c <= 0x7F {
		if avail, written := dest.CheckSpaceOne(); !avail {
			return result.EncoderResult{Kind: result.EncOutputFull}, false, written
		}
		dest.Handle().WriteOne(byte(c))
		return result.EncoderResult{}, true, 0
	}

	highBits := uint32(c) & 0xFF0000
	var lowBits uint16
	var astral bool
	switch highBits {
	case 0:
		lowBits = uint16(c)
	case 0x20000:
		lowBits = uint16(uint32(c) & 0xFFFF)
		astral = true
	default:
		// Only BMP and Plane 2 are potentially mappable.
		return result.Unmappable(c), false, 0
	}

	pointer, found := findPointer(runeFromLow(lowBits, astral), astral)
	if !found {
		return result.Unmappable(c), false, 0
	}

	if avail, written := dest.CheckSpaceTwo(); !avail {
		return result.EncoderResult{Kind: result.EncOutputFull}, false, written
	}
	lead := pointer/157 + 0x81
	remainder := pointer % 157
	trail := remainder + 0x40
	if remainder >= 0x3F {
		trail = remainder + 0x62
	}
	dest.Handle().WriteTwo(byte(lead), byte(trail))
	return result.EncoderResult{}, true, 0
}

// runeFromLow reconstructs the scalar findPointer indexes by, mirroring
// scalarLow's inverse.
func runeFromLow(low uint16, astral bool) rune {
	if astral {
		return rune(0x20000 | uint32(low))
	}
	return rune(low)
}

// EncodeFromUTF8 reads scalars from an already-validated UTF-8 buffer
// and writes Big5 bytes, stopping at end of input, end of output, or
// the first unmappable scalar.
func (e *Encoder) EncodeFromUTF8(src []byte, dst []byte) (result.EncoderResult, int, int) {
	source := engine.NewUtf8RuneSource(src)
	dest := engine.NewByteDestination(dst)

	for {
		if avail, consumed := source.CheckAvailable(); !avail {
			return result.EncoderResult{Kind: result.EncInputEmpty}, consumed, dest.Written()
		}
		c, _, rh := source.Read()
		res, ok, written := encodeScalar(c, &dest)
		if !ok {
			if res.Kind == result.EncOutputFull {
				return res, rh.Unread(), written
			}
			return res, rh.Unread(), dest.Written()
		}
		rh.Consumed()
	}
}

// EncodeFromUTF16 reads scalars from a UTF-16 buffer (decoding
// surrogate pairs itself) and writes Big5 bytes.
func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte) (result.EncoderResult, int, int) {
	source := engine.NewUtf16Source(src)
	dest := engine.NewByteDestination(dst)

	for {
		if avail, consumed := source.CheckAvailable(); !avail {
			return result.EncoderResult{Kind: result.EncInputEmpty}, consumed, dest.Written()
		}
		u, rh := source.Read()

		c := rune(u)
		if u >= 0xD800 && u <= 0xDBFF {
			if nextOK, nextLow := peekLowSurrogate(src, rh.Unread()+1); nextOK {
				c = 0x10000 + (rune(u)-0xD800)<<10 + (rune(nextLow) - 0xDC00)
				rh.Consumed()
				_, rh2 := source.Read()
				res, ok, written := encodeScalar(c, &dest)
				if !ok {
					if res.Kind == result.EncOutputFull {
						return res, rh2.Unread() - 1, written
					}
					return res, rh2.Unread() - 1, dest.Written()
				}
				rh2.Consumed()
				continue
			}
			c = 0xFFFD
		}

		res, ok, written := encodeScalar(c, &dest)
		if !ok {
			if res.Kind == result.EncOutputFull {
				return res, rh.Unread(), written
			}
			return res, rh.Unread(), dest.Written()
		}
		rh.Consumed()
	}
}

func peekLowSurrogate(buf []uint16, at int) (bool, uint16) {
	if at >= len(buf) {
		return false, 0
	}
	v := buf[at]
	if v >= 0xDC00 && v <= 0xDFFF {
		return true, v
	}
	return false, 0
}
