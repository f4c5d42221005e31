package gb18030

import (
	"github.com/gocharset/codec/internal/engine"
	"github.com/gocharset/codec/result"
)

type pendingKind int

const (
	pendNone pendingKind = iota
	pendOne
	pendTwo
	pendThree
)

// Decoder is the GB18030 decoder state machine: spec.md §4.6's
// normalized offset state (None | One(b1) | Two(b1,b2) | Three(b1,b2,b3))
// plus a pending ASCII byte that must be flushed before any other
// work, grounded on original_source/src/gb18030.rs's Gb18030Pending
// enum and Gb18030Decoder struct.
type Decoder struct {
	pending         pendingKind
	b1, b2, b3      byte
	pendingASCII    byte
	hasPendingASCII bool
}

// NewDecoder returns a Decoder in the empty state.
func NewDecoder() *Decoder { return &Decoder{} }

// Reset returns the decoder to the empty state.
func (d *Decoder) Reset() { *d = Decoder{} }

func (d *Decoder) extraFromState(byteLen int) int {
	extra := byteLen + pendingDepth(d.pending)
	if d.hasPendingASCII {
		extra++
	}
	return extra
}

// MaxUTF16BufferLength bounds the UTF-16 units a decode can produce.
func (d *Decoder) MaxUTF16BufferLength(byteLen int) int {
	return d.extraFromState(byteLen) + 1
}

// MaxUTF8BufferLength bounds the UTF-8 bytes a decode can produce.
func (d *Decoder) MaxUTF8BufferLength(byteLen int) int {
	return d.extraFromState(byteLen)*3 + 1
}

// MaxUTF8BufferLengthWithReplacement mirrors MaxUTF8BufferLength.
func (d *Decoder) MaxUTF8BufferLengthWithReplacement(byteLen int) int {
	return d.MaxUTF8BufferLength(byteLen)
}

func pendingDepth(k pendingKind) int {
	switch k {
	case pendOne:
		return 1
	case pendTwo:
		return 2
	case pendThree:
		return 3
	}
	return 0
}

// DecodeToUTF8 decodes src into dst as UTF-8. Every call first flushes
// a pending ASCII byte left behind by a prior Two/Three-state
// malformed-fallback (spec.md §4.6's "pending-ASCII flushing"
// invariant), then drains any pending multi-byte state, then runs the
// ASCII fast path / lead-byte dispatch loop.
func (d *Decoder) DecodeToUTF8(src []byte, dst []byte, last bool) (result.DecoderResult, int, int) {
	source := engine.NewByteSource(src)
	dest := engine.NewUtf8Destination(dst)

	if d.hasPendingASCII {
		if ok, written := dest.CheckSpaceBMP(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, 0, written
		}
		d.hasPendingASCII = false
		dest.Handle().WriteASCII(d.pendingASCII)
	}

	for {
		for d.pending != pendNone {
			ok, consumed := source.CheckAvailable()
			if !ok {
				if last {
					count := pendingDepth(d.pending)
					d.pending = pendNone
					return result.DecoderResult{Kind: result.Malformed, BadLen: uint8(count)}, consumed, dest.Written()
				}
				return result.DecoderResult{Kind: result.InputEmpty}, consumed, dest.Written()
			}
			if ok, written := dest.CheckSpaceAstral(); !ok {
				return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
			}
			b, rh := source.Read()
			if done, res, consumed, written := d.stepUTF8(b, rh, &dest); done {
				return res, consumed, written
			}
		}

		cr := engine.CopyASCIIToUtf8(&source, &dest)
		if cr.Stopped {
			if cr.OutputFull {
				return result.DecoderResult{Kind: result.OutputFull}, cr.Consumed, cr.Written
			}
			return result.DecoderResult{Kind: result.InputEmpty}, cr.Consumed, cr.Written
		}

		if ok, written := dest.CheckSpaceAstral(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
		}
		b, rh := source.Read()
		offset := b - 0x81
		if offset > 0xFE-0x81 {
			if b == 0x80 {
				rh.Consumed()
				dest.Handle().WriteUpperBMP(0x20AC)
				continue
			}
			rh.Consumed()
			return result.Malformed1(), source.Consumed(), dest.Written()
		}
		rh.Consumed()
		d.pending = pendOne
		d.b1 = offset
	}
}

// stepUTF8 advances the pending state machine by exactly one byte,
// implementing spec.md §4.6's One/Two/Three transitions, writing to a
// UTF-8 destination. done is true when the caller should return
// immediately with res/consumed/written; when done is false the state
// has changed (possibly back to pendNone on a successful emission) and
// the caller's loop continues.
func (d *Decoder) stepUTF8(b byte, rh engine.ByteReadHandle, dest *engine.Utf8Destination) (done bool, res result.DecoderResult, consumed int, written int) {
	switch d.pending {
	case pendOne:
		b1 := d.b1
		d.pending = pendNone
		secondOffset := b - 0x30
		if secondOffset <= 0x39-0x30 {
			d.pending = pendTwo
			d.b2 = secondOffset
			rh.Consumed()
			return false, result.DecoderResult{}, 0, 0
		}
		trailOffset := b - 0x40
		if trailOffset > 0x7E-0x40 {
			trailRange := b - 0x80
			if trailRange > 0xFE-0x80 {
				if b < 0x80 {
					return true, result.Malformed1(), rh.Unread(), dest.Written()
				}
				return true, result.Malformed2(), rh.Consumed(), dest.Written()
			}
			trailOffset = b - 0x41
		}
		pointer := int(b1)*190 + int(trailOffset)
		bmp := gb18030Decode(pointer)
		if bmp == 0 {
			if b < 0x80 {
				return true, result.Malformed1(), rh.Unread(), dest.Written()
			}
			return true, result.Malformed2(), rh.Consumed(), dest.Written()
		}
		rh.Consumed()
		dest.Handle().WriteBMPExclASCII(bmp)
		return false, result.DecoderResult{}, 0, 0

	case pendTwo:
		b2 := d.b2
		d.pending = pendNone
		thirdOffset := b - 0x81
		if thirdOffset > 0xFE-0x81 {
			d.pendingASCII = b2 + 0x30
			d.hasPendingASCII = true
			return true, result.MalformedWithExtra(1, 1), rh.Unread(), dest.Written()
		}
		d.pending = pendThree
		d.b3 = thirdOffset
		rh.Consumed()
		return false, result.DecoderResult{}, 0, 0

	case pendThree:
		b1, b2, b3 := d.b1, d.b2, d.b3
		d.pending = pendNone
		fourthOffset := b - 0x30
		var scalar rune
		if fourthOffset <= 9 {
			pointer := int(b1)*12600 + int(b2)*1260 + int(b3)*10 + int(fourthOffset)
			scalar = gb18030RangeDecode(pointer)
		}
		if scalar == 0 {
			d.pendingASCII = b2 + 0x30
			d.hasPendingASCII = true
			d.pending = pendOne
			d.b1 = b3
			return true, result.MalformedWithExtra(1, 2), rh.Unread(), dest.Written()
		}
		rh.Consumed()
		if scalar >= 0x10000 {
			dest.Handle().WriteAstral(uint32(scalar))
		} else {
			dest.Handle().WriteBMPExclASCII(uint16(scalar))
		}
		return false, result.DecoderResult{}, 0, 0
	}
	return true, result.DecoderResult{Kind: result.InputEmpty}, rh.Consumed(), dest.Written()
}

// DecodeToUTF16 is the UTF-16 analog of DecodeToUTF8.
func (d *Decoder) DecodeToUTF16(src []byte, dst []uint16, last bool) (result.DecoderResult, int, int) {
	source := engine.NewByteSource(src)
	dest := engine.NewUtf16Destination(dst)

	if d.hasPendingASCII {
		if ok, written := dest.CheckSpaceBMP(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, 0, written
		}
		d.hasPendingASCII = false
		dest.Handle().WriteASCII(d.pendingASCII)
	}

	for {
		for d.pending != pendNone {
			ok, consumed := source.CheckAvailable()
			if !ok {
				if last {
					count := pendingDepth(d.pending)
					d.pending = pendNone
					return result.DecoderResult{Kind: result.Malformed, BadLen: uint8(count)}, consumed, dest.Written()
				}
				return result.DecoderResult{Kind: result.InputEmpty}, consumed, dest.Written()
			}
			if ok, written := dest.CheckSpaceAstral(); !ok {
				return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
			}
			b, rh := source.Read()
			if done, res, consumed, written := d.stepUTF16(b, rh, &dest); done {
				return res, consumed, written
			}
		}

		cr := engine.CopyASCIIToUtf16(&source, &dest)
		if cr.Stopped {
			if cr.OutputFull {
				return result.DecoderResult{Kind: result.OutputFull}, cr.Consumed, cr.Written
			}
			return result.DecoderResult{Kind: result.InputEmpty}, cr.Consumed, cr.Written
		}

		if ok, written := dest.CheckSpaceAstral(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
		}
		b, rh := source.Read()
		offset := b - 0x81
		if offset > 0xFE-0x81 {
			if b == 0x80 {
				rh.Consumed()
				dest.Handle().WriteUpperBMP(0x20AC)
				continue
			}
			rh.Consumed()
			return result.Malformed1(), source.Consumed(), dest.Written()
		}
		rh.Consumed()
		d.pending = pendOne
		d.b1 = offset
	}
}

func (d *Decoder) stepUTF16(b byte, rh engine.ByteReadHandle, dest *engine.Utf16Destination) (done bool, res result.DecoderResult, consumed int, written int) {
	switch d.pending {
	case pendOne:
		b1 := d.b1
		d.pending = pendNone
		secondOffset := b - 0x30
		if secondOffset <= 0x39-0x30 {
			d.pending = pendTwo
			d.b2 = secondOffset
			rh.Consumed()
			return false, result.DecoderResult{}, 0, 0
		}
		trailOffset := b - 0x40
		if trailOffset > 0x7E-0x40 {
			trailRange := b - 0x80
			if trailRange > 0xFE-0x80 {
				if b < 0x80 {
					return true, result.Malformed1(), rh.Unread(), dest.Written()
				}
				return true, result.Malformed2(), rh.Consumed(), dest.Written()
			}
			trailOffset = b - 0x41
		}
		pointer := int(b1)*190 + int(trailOffset)
		bmp := gb18030Decode(pointer)
		if bmp == 0 {
			if b < 0x80 {
				return true, result.Malformed1(), rh.Unread(), dest.Written()
			}
			return true, result.Malformed2(), rh.Consumed(), dest.Written()
		}
		rh.Consumed()
		dest.Handle().WriteBMPExclASCII(bmp)
		return false, result.DecoderResult{}, 0, 0

	case pendTwo:
		b2 := d.b2
		d.pending = pendNone
		thirdOffset := b - 0x81
		if thirdOffset > 0xFE-0x81 {
			d.pendingASCII = b2 + 0x30
			d.hasPendingASCII = true
			return true, result.MalformedWithExtra(1, 1), rh.Unread(), dest.Written()
		}
		d.pending = pendThree
		d.b3 = thirdOffset
		rh.Consumed()
		return false, result.DecoderResult{}, 0, 0

	case pendThree:
		b1, b2, b3 := d.b1, d.b2, d.b3
		d.pending = pendNone
		fourthOffset := b - 0x30
		var scalar rune
		if fourthOffset <= 9 {
			pointer := int(b1)*12600 + int(b2)*1260 + int(b3)*10 + int(fourthOffset)
			scalar = gb18030RangeDecode(pointer)
		}
		if scalar == 0 {
			d.pendingASCII = b2 + 0x30
			d.hasPendingASCII = true
			d.pending = pendOne
			d.b1 = b3
			return true, result.MalformedWithExtra(1, 2), rh.Unread(), dest.Written()
		}
		rh.Consumed()
		if scalar >= 0x10000 {
			dest.Handle().WriteAstral(uint32(scalar))
		} else {
			dest.Handle().WriteBMPExclASCII(uint16(scalar))
		}
		return false, result.DecoderResult{}, 0, 0
	}
	return true, result.DecoderResult{Kind: result.InputEmpty}, rh.Consumed(), dest.Written()
}
