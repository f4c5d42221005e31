package codec

import (
	"github.com/gocharset/codec/internal/big5"
	"github.com/gocharset/codec/internal/eucjp"
	"github.com/gocharset/codec/internal/gb18030"
	"github.com/gocharset/codec/result"
)

// encoderVariant mirrors decoderVariant for the encode side.
type encoderVariant int

const (
	evBig5 encoderVariant = iota
	evEUCJP
	evGB18030
)

// Encoder converts UTF-8 or UTF-16 to Big5, EUC-JP, or GB18030/GBK
// bytes. The zero value is not usable; construct one with
// NewBig5Encoder, NewEUCJPEncoder, or NewGB18030Encoder.
type Encoder struct {
	variant encoderVariant
	big5    *big5.Encoder
	eucjp   *eucjp.Encoder
	gb18030 *gb18030.Encoder
}

// NewBig5Encoder returns an Encoder targeting Big5.
func NewBig5Encoder() *Encoder {
	return &Encoder{variant: evBig5, big5: big5.NewEncoder()}
}

// NewEUCJPEncoder returns an Encoder targeting EUC-JP.
func NewEUCJPEncoder() *Encoder {
	return &Encoder{variant: evEUCJP, eucjp: eucjp.NewEncoder()}
}

// NewGB18030Encoder returns an Encoder targeting GB18030 (extended=true,
// four-byte range fallback available) or GBK (extended=false, U+20AC
// encodes as the single byte 0x80 and unmapped scalars outside the
// two-byte table are unmappable rather than falling back to a
// four-byte sequence).
func NewGB18030Encoder(extended bool) *Encoder {
	return &Encoder{variant: evGB18030, gb18030: gb18030.NewEncoder(extended)}
}

// MaxBufferLengthFromUTF8WithoutReplacement bounds the bytes
// EncodeFromUTF8 could write for byteLength bytes of UTF-8 input.
func (e *Encoder) MaxBufferLengthFromUTF8WithoutReplacement(byteLength int) int {
	switch e.variant {
	case evBig5:
		return e.big5.MaxBufferLengthFromUTF8WithoutReplacement(byteLength)
	case evEUCJP:
		return e.eucjp.MaxBufferLengthFromUTF8WithoutReplacement(byteLength)
	default:
		return e.gb18030.MaxBufferLengthFromUTF8WithoutReplacement(byteLength)
	}
}

// MaxBufferLengthFromUTF16WithoutReplacement bounds the bytes
// EncodeFromUTF16 could write for u16Length UTF-16 code units of input.
func (e *Encoder) MaxBufferLengthFromUTF16WithoutReplacement(u16Length int) int {
	switch e.variant {
	case evBig5:
		return e.big5.MaxBufferLengthFromUTF16WithoutReplacement(u16Length)
	case evEUCJP:
		return e.eucjp.MaxBufferLengthFromUTF16WithoutReplacement(u16Length)
	default:
		return e.gb18030.MaxBufferLengthFromUTF16WithoutReplacement(u16Length)
	}
}

// EncodeFromUTF8 converts as much of a validated UTF-8 src as fits in
// dst. It returns the outcome, the number of input bytes consumed, and
// the number of bytes written. An EncUnmappable outcome's Scalar field
// names the offending scalar; the caller decides what to splice in its
// place (see the replacement subpackage).
func (e *Encoder) EncodeFromUTF8(src []byte, dst []byte) (result.EncoderResult, int, int) {
	switch e.variant {
	case evBig5:
		return e.big5.EncodeFromUTF8(src, dst)
	case evEUCJP:
		return e.eucjp.EncodeFromUTF8(src, dst)
	default:
		return e.gb18030.EncodeFromUTF8(src, dst)
	}
}

// EncodeFromUTF16 is EncodeFromUTF8's UTF-16 counterpart.
func (e *Encoder) EncodeFromUTF16(src []uint16, dst []byte) (result.EncoderResult, int, int) {
	switch e.variant {
	case evBig5:
		return e.big5.EncodeFromUTF16(src, dst)
	case evEUCJP:
		return e.eucjp.EncodeFromUTF16(src, dst)
	default:
		return e.gb18030.EncodeFromUTF16(src, dst)
	}
}
