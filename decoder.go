package codec

import (
	"github.com/gocharset/codec/internal/big5"
	"github.com/gocharset/codec/internal/eucjp"
	"github.com/gocharset/codec/internal/gb18030"
	"github.com/gocharset/codec/result"
)

// decoderVariant tags which concrete decoder a Decoder holds. It is a
// closed set: every Decoder method switches on it rather than
// calling through an interface, so the compiler can inline each
// variant's decode loop instead of dispatching through a vtable.
type decoderVariant int

const (
	variantBig5 decoderVariant = iota
	variantEUCJP
	variantGB18030
)

// Decoder converts Big5, EUC-JP, or GB18030/GBK bytes to UTF-8 or
// UTF-16, one chunk at a time. The zero value is not usable; construct
// one with NewBig5Decoder, NewEUCJPDecoder, or NewGB18030Decoder.
type Decoder struct {
	variant decoderVariant
	big5    *big5.Decoder
	eucjp   *eucjp.Decoder
	gb18030 *gb18030.Decoder
}

// NewBig5Decoder returns a Decoder for Big5 (including its HKSCS
// extensions and combining-pair pseudo-codepoints).
func NewBig5Decoder() *Decoder {
	return &Decoder{variant: variantBig5, big5: big5.NewDecoder()}
}

// NewEUCJPDecoder returns a Decoder for EUC-JP.
func NewEUCJPDecoder() *Decoder {
	return &Decoder{variant: variantEUCJP, eucjp: eucjp.NewDecoder()}
}

// NewGB18030Decoder returns a Decoder for GB18030/GBK. The two share a
// decoder (the four-byte range form is simply never produced by GBK
// input); extended only affects the Encoder's behavior.
func NewGB18030Decoder() *Decoder {
	return &Decoder{variant: variantGB18030, gb18030: gb18030.NewDecoder()}
}

// Reset clears all partial multi-byte state, as if the Decoder had just
// been constructed. Use it to reuse a Decoder across unrelated inputs
// without allocating a new one.
func (d *Decoder) Reset() {
	switch d.variant {
	case variantBig5:
		d.big5.Reset()
	case variantEUCJP:
		d.eucjp.Reset()
	case variantGB18030:
		d.gb18030.Reset()
	}
}

// MaxUTF8BufferLength returns the largest number of UTF-8 bytes
// DecodeToUTF8 could write for byteLen bytes of input, accounting for
// any lead byte already pending from a prior call.
func (d *Decoder) MaxUTF8BufferLength(byteLen int) int {
	switch d.variant {
	case variantBig5:
		return d.big5.MaxUTF8BufferLength(byteLen)
	case variantEUCJP:
		return d.eucjp.MaxUTF8BufferLength(byteLen)
	default:
		return d.gb18030.MaxUTF8BufferLength(byteLen)
	}
}

// MaxUTF8BufferLengthWithReplacement is like MaxUTF8BufferLength but
// sized for a caller that will splice in a 3-byte U+FFFD per malformed
// sequence rather than stopping at the first one.
func (d *Decoder) MaxUTF8BufferLengthWithReplacement(byteLen int) int {
	switch d.variant {
	case variantBig5:
		return d.big5.MaxUTF8BufferLengthWithReplacement(byteLen)
	case variantEUCJP:
		return d.eucjp.MaxUTF8BufferLengthWithReplacement(byteLen)
	default:
		return d.gb18030.MaxUTF8BufferLengthWithReplacement(byteLen)
	}
}

// MaxUTF16BufferLength returns the largest number of UTF-16 code units
// DecodeToUTF16 could write for byteLen bytes of input.
func (d *Decoder) MaxUTF16BufferLength(byteLen int) int {
	switch d.variant {
	case variantBig5:
		return d.big5.MaxUTF16BufferLength(byteLen)
	case variantEUCJP:
		return d.eucjp.MaxUTF16BufferLength(byteLen)
	default:
		return d.gb18030.MaxUTF16BufferLength(byteLen)
	}
}

// DecodeToUTF8 converts as much of src as fits in dst, resuming any
// multi-byte state left over from a previous call. last tells the
// decoder whether src is the final chunk of this logical input, which
// governs whether a trailing lead byte is itself reported as
// Malformed. It returns the outcome, the number of input bytes
// consumed, and the number of UTF-8 bytes written.
func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (result.DecoderResult, int, int) {
	switch d.variant {
	case variantBig5:
		return d.big5.DecodeToUTF8(src, dst, last)
	case variantEUCJP:
		return d.eucjp.DecodeToUTF8(src, dst, last)
	default:
		return d.gb18030.DecodeToUTF8(src, dst, last)
	}
}

// DecodeToUTF16 is DecodeToUTF8's UTF-16 counterpart.
func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (result.DecoderResult, int, int) {
	switch d.variant {
	case variantBig5:
		return d.big5.DecodeToUTF16(src, dst, last)
	case variantEUCJP:
		return d.eucjp.DecodeToUTF16(src, dst, last)
	default:
		return d.gb18030.DecodeToUTF16(src, dst, last)
	}
}
