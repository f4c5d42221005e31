// Package replacement splices replacement output over a codec.Decoder
// or codec.Encoder so callers that just want "best effort" conversion
// don't have to hand-roll the malformed/unmappable resume loop
// themselves.
//
// This is deliberately a layer on top of the core, not part of it: the
// core never decides what to do about malformed input or unmappable
// scalars on its own, it only reports them precisely enough that a
// caller-chosen policy — this one, or a different one in xtext — can
// act on them.
package replacement

import (
	"unicode/utf8"

	"github.com/gocharset/codec"
	"github.com/gocharset/codec/result"
)

// replacementUTF8 is U+FFFD encoded as UTF-8.
var replacementUTF8 = [3]byte{0xEF, 0xBF, 0xBD}

// A Malformed result's bytesConsumed already accounts for every byte
// the decoder has committed a verdict on, including lookahead bytes
// whose content lives on in the decoder's own retained state (GB18030
// stages an already-read ASCII digit and lead byte back into its
// pending state rather than discarding them, so they must not be
// re-presented). ExtraBytesRead describes how much of that lookahead
// belongs conceptually to the *next* unit rather than the malformed
// one; it is for a caller's own byte-offset bookkeeping, not an
// adjustment to where the next DecodeToUTF8/DecodeToUTF16 call should
// resume — resuming is always exactly at bytesConsumed.

// DecodeToUTF8WithReplacement runs dec over src to completion, writing
// dst, splicing the 3-byte UTF-8 U+FFFD sequence in place of every
// malformed byte sequence and resuming input right after it. It
// returns the total bytes consumed and written; a false ok means dst
// ran out of room before src was exhausted.
func DecodeToUTF8WithReplacement(dec *codec.Decoder, src []byte, dst []byte, last bool) (consumed int, written int, ok bool) {
	srcPos, dstPos := 0, 0
	for {
		res, c, w := dec.DecodeToUTF8(src[srcPos:], dst[dstPos:], last)
		srcPos += c
		dstPos += w
		switch res.Kind {
		case result.InputEmpty:
			return srcPos, dstPos, true
		case result.OutputFull:
			return srcPos, dstPos, false
		case result.Malformed:
			if len(dst)-dstPos < 3 {
				return srcPos, dstPos, false
			}
			copy(dst[dstPos:], replacementUTF8[:])
			dstPos += 3
		}
	}
}

// DecodeToUTF16WithReplacement is DecodeToUTF8WithReplacement's UTF-16
// counterpart: malformed sequences splice in the single code unit
// U+FFFD.
func DecodeToUTF16WithReplacement(dec *codec.Decoder, src []byte, dst []uint16, last bool) (consumed int, written int, ok bool) {
	srcPos, dstPos := 0, 0
	for {
		res, c, w := dec.DecodeToUTF16(src[srcPos:], dst[dstPos:], last)
		srcPos += c
		dstPos += w
		switch res.Kind {
		case result.InputEmpty:
			return srcPos, dstPos, true
		case result.OutputFull:
			return srcPos, dstPos, false
		case result.Malformed:
			if len(dst)-dstPos < 1 {
				return srcPos, dstPos, false
			}
			dst[dstPos] = 0xFFFD
			dstPos++
		}
	}
}

// EncodeToUTF8WithNumericCharacterReferences runs enc over a validated
// UTF-8 src to completion, writing dst, and splicing a decimal numeric
// character reference ("&#NNN;", ASCII) in place of every unmappable
// scalar.
func EncodeToUTF8WithNumericCharacterReferences(enc *codec.Encoder, src []byte, dst []byte) (consumed int, written int, ok bool) {
	srcPos, dstPos := 0, 0
	for {
		res, c, w := enc.EncodeFromUTF8(src[srcPos:], dst[dstPos:])
		srcPos += c
		dstPos += w
		switch res.Kind {
		case result.EncInputEmpty:
			return srcPos, dstPos, true
		case result.EncOutputFull:
			return srcPos, dstPos, false
		case result.EncUnmappable:
			ref := numericCharacterReference(res.Scalar)
			if len(dst)-dstPos < len(ref) {
				return srcPos, dstPos, false
			}
			dstPos += copy(dst[dstPos:], ref)
			// The encoder reports the unmappable scalar as not yet
			// consumed; step over it before resuming.
			_, size := utf8.DecodeRune(src[srcPos:])
			srcPos += size
		}
	}
}

// EncodeToUTF16WithNumericCharacterReferences mirrors
// EncodeToUTF8WithNumericCharacterReferences for UTF-16 input.
func EncodeToUTF16WithNumericCharacterReferences(enc *codec.Encoder, src []uint16, dst []byte) (consumed int, written int, ok bool) {
	srcPos, dstPos := 0, 0
	for {
		res, c, w := enc.EncodeFromUTF16(src[srcPos:], dst[dstPos:])
		srcPos += c
		dstPos += w
		switch res.Kind {
		case result.EncInputEmpty:
			return srcPos, dstPos, true
		case result.EncOutputFull:
			return srcPos, dstPos, false
		case result.EncUnmappable:
			ref := numericCharacterReference(res.Scalar)
			if len(dst)-dstPos < len(ref) {
				return srcPos, dstPos, false
			}
			dstPos += copy(dst[dstPos:], ref)
			// Step over the unmappable scalar: a surrogate pair for an
			// astral scalar, otherwise a single code unit.
			if res.Scalar >= 0x10000 {
				srcPos += 2
			} else {
				srcPos++
			}
		}
	}
}

// numericCharacterReference renders r as "&#NNN;" in ASCII decimal, per
// the HTML numeric character reference form this encoding's callers
// expect for unmappable scalars.
func numericCharacterReference(r rune) []byte {
	if r == 0 {
		return []byte("&#0;")
	}
	var digits [10]byte
	n := len(digits)
	v := int(r)
	for v > 0 {
		n--
		digits[n] = byte('0' + v%10)
		v /= 10
	}
	out := make([]byte, 0, 2+(len(digits)-n)+1)
	out = append(out, '&', '#')
	out = append(out, digits[n:]...)
	out = append(out, ';')
	return out
}
