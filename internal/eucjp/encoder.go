package eucjp

import (
	"github.com/gocharset/codec/internal/engine"
	"github.com/gocharset/codec/result"
)

// Encoder is the EUC-JP encoder. EUC-JP encoding carries no state
// between scalars.
type Encoder struct{}

// NewEncoder returns an Encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// MaxBufferLengthFromUTF16WithoutReplacement bounds the bytes a
// u16Length-scalar UTF-16 input can produce: every BMP scalar maps to
// at most 2 EUC-JP bytes (the special-cased half-width kana range and
// the JIS 0208 table both top out at 2 bytes).
func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	return 2 * u16Length
}

// MaxBufferLengthFromUTF8WithoutReplacement bounds the bytes a
// byteLength-byte UTF-8 input can produce.
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	return 2 * byteLength
}

func writeOne(dest *engine.ByteDestination, b byte) (result.EncoderResult, bool, int) {
	if avail, written := dest.CheckSpaceOne(); !avail {
		return result.EncoderResult{Kind: result.EncOutputFull}, false, written
	}
	dest.Handle().WriteOne(b)
	return result.EncoderResult{}, true, 0
}

func writeTwo(dest *engine.ByteDestination, b0, b1 byte) (result.EncoderResult, bool, int) {
	if avail, written := dest.CheckSpaceTwo(); !avail {
		return result.EncoderResult{Kind: result.EncOutputFull}, false, written
	}
	dest.Handle().WriteTwo(b0, b1)
	return result.EncoderResult{}, true, 0
}

// EncodeFromUTF8 reads scalars from an already-validated UTF-8 buffer
// and writes EUC-JP bytes.
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

// EncodeFromUTF16 reads scalars from a UTF-16 buffer and writes EUC-JP
// bytes. Surrogates are not paired: each surrogate code unit, paired or
// lone, is reported as unmappable on its own, with Scalar set to that
// code unit.
func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte) (result.EncoderResult, int, int) {
	source := engine.NewUtf16Source(src)
	dest := engine.NewByteDestination(dst)

	for {
		if avail, consumed := source.CheckAvailable(); !avail {
			return result.EncoderResult{Kind: result.EncInputEmpty}, consumed, dest.Written()
		}
		u, rh := source.Read()
		c := rune(u)
		if u >= 0xD800 && u <= 0xDFFF {
			// Any surrogate, paired or lone, is outside the BMP range
			// EUC-JP can represent; report it as unmappable using just
			// the one code unit, matching this core's policy of never
			// looking past a scalar it already knows is doomed.
			return result.Unmappable(c), rh.Unread(), dest.Written()
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

// encodeScalar implements spec.md §4.5: the half-width-kana range and
// three other special-cased scalars, then a jis0208Encode table
// lookup, then the two-byte lead/trail computation.
func encodeScalar(c rune, dest *engine.ByteDestination) (result.EncoderResult, bool, int) {
	if c >= 0xFF61 && c <= 0xFF9F {
		return writeTwo(dest, 0x8E, byte(c-0xFF61+0xA1))
	}
	switch c {
	case 0x00A5:
		return writeOne(dest, 0x5C)
	case 0x203E:
		return writeOne(dest, 0x7E)
	case 0x2212:
		return writeTwo(dest, 0xA1, 0xDD)
	}
	if c > 0xFFFF || c < 0 {
		return result.Unmappable(c), false, 0
	}
	pointer, found := jis0208Encode(uint16(c))
	if !found {
		return result.Unmappable(c), false, 0
	}
	lead := byte(pointer/94 + 0xA1)
	trail := byte(pointer%94 + 0xA1)
	return writeTwo(dest, lead, trail)
}
