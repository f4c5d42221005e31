package eucjp

import (
	"github.com/gocharset/codec/internal/engine"
	"github.com/gocharset/codec/result"
)

// Decoder is the EUC-JP decoder state machine: a pending lead byte
// plus a flag recording whether that lead was itself the second byte
// of an 0x8F (JIS X 0212) introducer, per
// original_source/src/euc_jp.rs.
type Decoder struct {
	lead    byte
	jis0212 bool
}

// NewDecoder returns a Decoder in the empty state.
func NewDecoder() *Decoder { return &Decoder{} }

// Reset returns the decoder to the empty state.
func (d *Decoder) Reset() {
	d.lead = 0
	d.jis0212 = false
}

func (d *Decoder) plusOneIfLead(byteLen int) int {
	if d.lead == 0 {
		return byteLen
	}
	return byteLen + 1
}

// MaxUTF16BufferLength bounds the UTF-16 units a decode of byteLen
// input bytes can produce: EUC-JP never expands (every multibyte
// sequence is at least 2 bytes in for 1 unit out).
func (d *Decoder) MaxUTF16BufferLength(byteLen int) int {
	return d.plusOneIfLead(byteLen)
}

// MaxUTF8BufferLength bounds the UTF-8 bytes a decode of byteLen input
// bytes can produce, assuming every byte could expand to a 3-byte
// scalar.
func (d *Decoder) MaxUTF8BufferLength(byteLen int) int {
	return 3 * d.plusOneIfLead(byteLen)
}

// MaxUTF8BufferLengthWithReplacement mirrors MaxUTF8BufferLength: the
// 3-bytes-per-input-byte bound already covers a U+FFFD replacement.
func (d *Decoder) MaxUTF8BufferLengthWithReplacement(byteLen int) int {
	return d.MaxUTF8BufferLength(byteLen)
}

// DecodeToUTF8 decodes src into dst as UTF-8. See big5.Decoder's
// DecodeToUTF8 for the shared control-flow shape (ASCII fast path,
// then a one-byte-at-a-time state machine, then the EOF/pending-lead
// rule).
func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (result.DecoderResult, int, int) {
	source := engine.NewByteSource(src)
	dest := engine.NewUtf8Destination(dst)

	for {
		if d.lead == 0 {
			cr := engine.CopyASCIIToUtf8(&source, &dest)
			if cr.Stopped {
				if cr.OutputFull {
					return result.DecoderResult{Kind: result.OutputFull}, cr.Consumed, cr.Written
				}
				return result.DecoderResult{Kind: result.InputEmpty}, cr.Consumed, cr.Written
			}
		}

		if ok, consumed := source.CheckAvailable(); !ok {
			if last && d.lead != 0 {
				d.lead = 0
				d.jis0212 = false
				return result.Malformed1(), consumed, dest.Written()
			}
			return result.DecoderResult{Kind: result.InputEmpty}, consumed, dest.Written()
		}
		if ok, written := dest.CheckSpaceBMP(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
		}

		b, rh := source.Read()

		if d.lead == 0 {
			if b <= 0x7F {
				rh.Consumed()
				dest.Handle().WriteASCII(b)
				continue
			}
			if (b >= 0xA1 && b <= 0xFE) || b == 0x8E || b == 0x8F {
				d.lead = b
				rh.Consumed()
				continue
			}
			rh.Consumed()
			return result.Malformed1(), source.Consumed(), dest.Written()
		}

		lead := d.lead
		d.lead = 0
		switch {
		case lead == 0x8E && b >= 0xA1 && b <= 0xDF:
			rh.Consumed()
			dest.Handle().WriteUpperBMP(0xFF61 + uint16(b) - 0xA1)
			continue
		case lead == 0x8F && b >= 0xA1 && b <= 0xFE:
			d.lead = b
			d.jis0212 = true
			rh.Consumed()
			continue
		case b >= 0xA1 && b <= 0xFE && lead >= 0xA1 && lead <= 0xFE:
			pointer := (int(lead)-0xA1)*94 + (int(b) - 0xA1)
			var bmp uint16
			if d.jis0212 {
				d.jis0212 = false
				bmp = jis0212Decode(pointer)
			} else {
				bmp = jis0208Decode(pointer)
			}
			if bmp != 0 {
				rh.Consumed()
				dest.Handle().WriteBMPExclASCII(bmp)
				continue
			}
		}
		d.jis0212 = false
		if b < 0xA1 || b == 0xFF {
			rh.Unread()
			return result.Malformed1(), source.Consumed(), dest.Written()
		}
		rh.Consumed()
		return result.Malformed2(), source.Consumed(), dest.Written()
	}
}

// DecodeToUTF16 is the UTF-16 analog of DecodeToUTF8.
func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (result.DecoderResult, int, int) {
	source := engine.NewByteSource(src)
	dest := engine.NewUtf16Destination(dst)

	for {
		if d.lead == 0 {
			cr := engine.CopyASCIIToUtf16(&source, &dest)
			if cr.Stopped {
				if cr.OutputFull {
					return result.DecoderResult{Kind: result.OutputFull}, cr.Consumed, cr.Written
				}
				return result.DecoderResult{Kind: result.InputEmpty}, cr.Consumed, cr.Written
			}
		}

		if ok, consumed := source.CheckAvailable(); !ok {
			if last && d.lead != 0 {
				d.lead = 0
				d.jis0212 = false
				return result.Malformed1(), consumed, dest.Written()
			}
			return result.DecoderResult{Kind: result.InputEmpty}, consumed, dest.Written()
		}
		if ok, written := dest.CheckSpaceBMP(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
		}

		b, rh := source.Read()

		if d.lead == 0 {
			if b <= 0x7F {
				rh.Consumed()
				dest.Handle().WriteASCII(b)
				continue
			}
			if (b >= 0xA1 && b <= 0xFE) || b == 0x8E || b == 0x8F {
				d.lead = b
				rh.Consumed()
				continue
			}
			rh.Consumed()
			return result.Malformed1(), source.Consumed(), dest.Written()
		}

		lead := d.lead
		d.lead = 0
		switch {
		case lead == 0x8E && b >= 0xA1 && b <= 0xDF:
			rh.Consumed()
			dest.Handle().WriteUpperBMP(0xFF61 + uint16(b) - 0xA1)
			continue
		case lead == 0x8F && b >= 0xA1 && b <= 0xFE:
			d.lead = b
			d.jis0212 = true
			rh.Consumed()
			continue
		case b >= 0xA1 && b <= 0xFE && lead >= 0xA1 && lead <= 0xFE:
			pointer := (int(lead)-0xA1)*94 + (int(b) - 0xA1)
			var bmp uint16
			if d.jis0212 {
				d.jis0212 = false
				bmp = jis0212Decode(pointer)
			} else {
				bmp = jis0208Decode(pointer)
			}
			if bmp != 0 {
				rh.Consumed()
				dest.Handle().WriteBMPExclASCII(bmp)
				continue
			}
		}
		d.jis0212 = false
		if b < 0xA1 || b == 0xFF {
			rh.Unread()
			return result.Malformed1(), source.Consumed(), dest.Written()
		}
		rh.Consumed()
		return result.Malformed2(), source.Consumed(), dest.Written()
	}
}
