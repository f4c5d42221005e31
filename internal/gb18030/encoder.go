package gb18030

import (
	"github.com/gocharset/codec/internal/engine"
	"github.com/gocharset/codec/result"
)

// Encoder is the GB18030/GBK encoder. extended distinguishes GB18030
// (true) from GBK (false), fixed at construction per spec.md §4.7.
type Encoder struct {
	extended bool
}

// NewEncoder returns an Encoder. extended selects GB18030 semantics
// (four-byte range fallback) over plain GBK (no four-byte range, and
// the euro sign is a single byte 0x80).
func NewEncoder(extended bool) *Encoder {
	return &Encoder{extended: extended}
}

// MaxBufferLengthFromUTF16WithoutReplacement bounds the bytes a
// u16Length-scalar UTF-16 input can produce: the worst case is every
// scalar expanding to a 4-byte range sequence.
func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	return 4 * u16Length
}

// MaxBufferLengthFromUTF8WithoutReplacement bounds the bytes a
// byteLength-byte UTF-8 input can produce.
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	return 4 * byteLength
}

// encodeScalar implements spec.md §4.7: the hard-coded U+E5E5
// unmappable, GBK's single-byte euro special case, the two-byte table
// attempt, and the four-byte range fallback (table-driven for BMP,
// pure arithmetic for astral).
func (e *Encoder) encodeScalar(c rune, dest *engine.ByteDestination) (res result.EncoderResult, ok bool, written int) {
	if c == 0xE5E5 {
		return result.Unmappable(c), false, 0
	}
	if !e.extended && c == 0x20AC {
		if avail, w := dest.CheckSpaceOne(); !avail {
			return result.EncoderResult{Kind: result.EncOutputFull}, false, w
		}
		dest.Handle().WriteOne(0x80)
		return result.EncoderResult{}, true, 0
	}

	if c <= 0xFFFF {
		bmp := uint16(c)
		if pointer, found := gb18030Encode(bmp); found {
			if avail, w := dest.CheckSpaceTwo(); !avail {
				return result.EncoderResult{Kind: result.EncOutputFull}, false, w
			}
			lead := pointer/190 + 0x81
			trail := pointer % 190
			offset := 0x40
			if trail >= 0x3F {
				offset = 0x41
			}
			dest.Handle().WriteTwo(byte(lead), byte(trail+offset))
			return result.EncoderResult{}, true, 0
		}
	}
	// GBK has no four-byte form: BMP misses and astral scalars alike
	// are unmappable.
	if !e.extended {
		return result.Unmappable(c), false, 0
	}

	var rangePointer int
	if c >= 0x10000 {
		rangePointer = int(c) + astralRangeBase
	} else {
		p, found := gb18030RangeEncode(uint16(c))
		if !found {
			return result.Unmappable(c), false, 0
		}
		rangePointer = p
	}

	if avail, w := dest.CheckSpaceFour(); !avail {
		return result.EncoderResult{Kind: result.EncOutputFull}, false, w
	}
	first := rangePointer / 12600
	rem := rangePointer % 12600
	second := rem / 1260
	rem = rem % 1260
	third := rem / 10
	fourth := rem % 10
	dest.Handle().WriteFour(byte(first+0x81), byte(second+0x30), byte(third+0x81), byte(fourth+0x30))
	return result.EncoderResult{}, true, 0
}

// EncodeFromUTF8 reads scalars from an already-validated UTF-8 buffer
// and writes GB18030/GBK bytes.
func (e *Encoder) EncodeFromUTF8(src []byte, dst []byte) (result.EncoderResult, int, int) {
	source := engine.NewUtf8RuneSource(src)
	dest := engine.NewByteDestination(dst)

	for {
		if avail, consumed := source.CheckAvailable(); !avail {
			return result.EncoderResult{Kind: result.EncInputEmpty}, consumed, dest.Written()
		}
		c, _, rh := source.Read()
		if c <= 0x7F {
			if avail, w := dest.CheckSpaceOne(); !avail {
				return result.EncoderResult{Kind: result.EncOutputFull}, rh.Unread(), w
			}
			dest.Handle().WriteOne(byte(c))
			rh.Consumed()
			continue
		}
		res, ok, written := e.encodeScalar(c, &dest)
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
// surrogate pairs into astral scalars) and writes GB18030/GBK bytes.
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
			if pos := rh.Unread() + 1; pos < len(src) {
				next := src[pos]
				if next >= 0xDC00 && next <= 0xDFFF {
					c = 0x10000 + (rune(u)-0xD800)<<10 + (rune(next) - 0xDC00)
					rh.Consumed()
					_, rh2 := source.Read()
					res, ok, written := e.encodeScalar(c, &dest)
					if !ok {
						if res.Kind == result.EncOutputFull {
							return res, rh2.Unread() - 1, written
						}
						return res, rh2.Unread() - 1, dest.Written()
					}
					rh2.Consumed()
					continue
				}
			}
			return result.Unmappable(c), rh.Unread(), dest.Written()
		}
		if u >= 0xDC00 && u <= 0xDFFF {
			return result.Unmappable(c), rh.Unread(), dest.Written()
		}
		if c <= 0x7F {
			if avail, w := dest.CheckSpaceOne(); !avail {
				return result.EncoderResult{Kind: result.EncOutputFull}, rh.Unread(), w
			}
			dest.Handle().WriteOne(byte(c))
			rh.Consumed()
			continue
		}
		res, ok, written := e.encodeScalar(c, &dest)
		if !ok {
			if res.Kind == result.EncOutputFull {
				return res, rh.Unread(), written
			}
			return res, rh.Unread(), dest.Written()
		}
		rh.Consumed()
	}
}
