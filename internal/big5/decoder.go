// Package big5 implements the Big5 decoder and encoder state machines
// (spec.md §4.2/§4.3), grounded on original_source/src/big5.rs.
package big5

import (
	"github.com/gocharset/codec/internal/engine"
	"github.com/gocharset/codec/result"
)

// Big5 combining-pair pointers: these four pointers decode to a
// precomposed Latin letter followed by a combining diacritic rather than
// a single scalar.
const (
	pointerCaGrave = 1133 // U+00CA U+0304
	pointerCaCaron = 1135 // U+00CA U+030C
	pointerEaGrave = 1164 // U+00EA U+0304
	pointerEaCaron = 1166 // U+00EA U+030C
)

// Decoder is the Big5 decoder state machine. The zero value is the
// empty state (no pending lead byte), matching spec.md §3's invariant
// that a decoder starts empty.
type Decoder struct {
	lead byte
}

// NewDecoder returns a Decoder in the empty state.
func NewDecoder() *Decoder { return &Decoder{} }

// Reset returns the decoder to the empty state.
func (d *Decoder) Reset() { d.lead = 0 }

func (d *Decoder) plusOneIfLead(byteLen int) int {
	if d.lead == 0 {
		return byteLen
	}
	return byteLen + 1
}

// MaxUTF16BufferLength returns an upper bound, inclusive of any pending
// lead byte, on the number of UTF-16 code units a decode of byteLen
// input bytes can produce.
func (d *Decoder) MaxUTF16BufferLength(byteLen int) int {
	return d.plusOneIfLead(byteLen) + 1
}

// MaxUTF8BufferLength returns an upper bound, inclusive of any pending
// lead byte, on the number of UTF-8 bytes a decode of byteLen input
// bytes can produce, covering the worst case of every byte expanding to
// a 3-byte replacement plus a trailing astral/combining-pair emission.
func (d *Decoder) MaxUTF8BufferLength(byteLen int) int {
	return 3*d.plusOneIfLead(byteLen) + 3
}

// MaxUTF8BufferLengthWithReplacement is the bound a caller splicing in
// U+FFFD (3 bytes) for every malformed sequence should size its
// destination to; identical to MaxUTF8BufferLength since that bound
// already assumes a 3-byte worst case per input byte.
func (d *Decoder) MaxUTF8BufferLengthWithReplacement(byteLen int) int {
	return d.MaxUTF8BufferLength(byteLen)
}

type decKind int

const (
	decNeedLead decKind = iota
	decScalar
	decCombining
	// decBadLeadConsumed is an empty-state byte that cannot start a
	// sequence (not ASCII, not a valid lead): it is itself the one-byte
	// malformed sequence and is consumed.
	decBadLeadConsumed
	// decBadLeadUnread is a non-empty-state trail byte in [0x00,0x7F]:
	// the lead byte alone is the malformed sequence, and the trail byte
	// is unread so a subsequent call can reclassify it from empty state.
	decBadLeadUnread
	decBadPair
)

// decision is the outcome of classifying one byte against the current
// lead, decoupled from which destination form (UTF-8 or UTF-16) will
// ultimately receive it, so it is shared verbatim between DecodeToUTF8
// and DecodeToUTF16.
type decision struct {
	kind   decKind
	lead   byte // new lead to store, when kind == decNeedLead
	lo, hi uint16
	astral bool
}

// classify is spec.md §4.2's transition table as a pure function: given
// the lead currently held (0 for empty) and the next byte, it reports
// what the decoder should do. It does not mutate any state itself.
func classify(lead byte, b byte) decision {
	if lead == 0 {
		if b <= 0x7F {
			return decision{kind: decScalar, lo: uint16(b)}
		}
		if b >= 0x81 && b <= 0xFE {
			return decision{kind: decNeedLead, lead: b}
		}
		return decision{kind: decBadLeadConsumed}
	}

	offset := byte(0x40)
	if b >= 0x7F {
		offset = 0x62
	}
	if (b >= 0x40 && b <= 0x7E) || (b >= 0xA1 && b <= 0xFE) {
		pointer := (int(lead)-0x81)*157 + (int(b) - int(offset))
		switch pointer {
		case pointerCaGrave:
			return decision{kind: decCombining, lo: 0x00CA, hi: 0x0304}
		case pointerCaCaron:
			return decision{kind: decCombining, lo: 0x00CA, hi: 0x030C}
		case pointerEaGrave:
			return decision{kind: decCombining, lo: 0x00EA, hi: 0x0304}
		case pointerEaCaron:
			return decision{kind: decCombining, lo: 0x00EA, hi: 0x030C}
		}
		if low := lowBits(pointer); low != 0 {
			return decision{kind: decScalar, lo: low, astral: isAstral(pointer)}
		}
	}
	if b <= 0x7F {
		return decision{kind: decBadLeadUnread}
	}
	return decision{kind: decBadPair}
}

// DecodeToUTF8 decodes src into dst as UTF-8, resuming from and leaving
// behind whatever lead-byte state is pending. last indicates src is the
// final chunk of the logical session: a non-empty lead state at end of
// input is reported as Malformed(1,0), per spec.md §4.2's EOF handling.
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
				return result.Malformed1(), consumed, dest.Written()
			}
			return result.DecoderResult{Kind: result.InputEmpty}, consumed, dest.Written()
		}
		if ok, written := dest.CheckSpaceAstral(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
		}

		b, rh := source.Read()
		dec := classify(d.lead, b)
		switch dec.kind {
		case decNeedLead:
			d.lead = dec.lead
			rh.Consumed()
		case decScalar:
			d.lead = 0
			rh.Consumed()
			h := dest.Handle()
			if dec.astral {
				h.WriteAstral(0x20000 | uint32(dec.lo))
			} else if dec.lo <= 0x7F {
				h.WriteASCII(byte(dec.lo))
			} else {
				h.WriteBMPExclASCII(dec.lo)
			}
		case decCombining:
			d.lead = 0
			rh.Consumed()
			dest.Handle().WriteBig5Combination(dec.lo, dec.hi)
		case decBadLeadConsumed:
			d.lead = 0
			rh.Consumed()
			return result.Malformed1(), source.Consumed(), dest.Written()
		case decBadLeadUnread:
			d.lead = 0
			rh.Unread()
			return result.Malformed1(), source.Consumed(), dest.Written()
		case decBadPair:
			d.lead = 0
			rh.Consumed()
			return result.Malformed2(), source.Consumed(), dest.Written()
		}
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
				return result.Malformed1(), consumed, dest.Written()
			}
			return result.DecoderResult{Kind: result.InputEmpty}, consumed, dest.Written()
		}
		if ok, written := dest.CheckSpaceAstral(); !ok {
			return result.DecoderResult{Kind: result.OutputFull}, source.Consumed(), written
		}

		b, rh := source.Read()
		dec := classify(d.lead, b)
		switch dec.kind {
		case decNeedLead:
			d.lead = dec.lead
			rh.Consumed()
		case decScalar:
			d.lead = 0
			rh.Consumed()
			h := dest.Handle()
			if dec.astral {
				h.WriteAstral(0x20000 | uint32(dec.lo))
			} else if dec.lo <= 0x7F {
				h.WriteASCII(byte(dec.lo))
			} else {
				h.WriteBMPExclASCII(dec.lo)
			}
		case decCombining:
			d.lead = 0
			rh.Consumed()
			dest.Handle().WriteBig5Combination(dec.lo, dec.hi)
		case decBadLeadConsumed:
			d.lead = 0
			rh.Consumed()
			return result.Malformed1(), source.Consumed(), dest.Written()
		case decBadLeadUnread:
			d.lead = 0
			rh.Unread()
			return result.Malformed1(), source.Consumed(), dest.Written()
		case decBadPair:
			d.lead = 0
			rh.Consumed()
			return result.Malformed2(), source.Consumed(), dest.Written()
		}
	}
}
