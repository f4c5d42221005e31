package gb18030

import (
	"testing"

	"github.com/gocharset/codec/result"
)

func TestDecodeRangeLow(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(4))
	res, consumed, written := d.DecodeToUTF8([]byte{0x81, 0x30, 0x81, 0x30}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if consumed != 4 {
		t.Fatalf("consumed %d of 4", consumed)
	}
	if string(dst[:written]) != "\u0080" {
		t.Fatalf("got %q, want U+0080", dst[:written])
	}
}

func TestDecodeAstralFourByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(4))
	res, consumed, written := d.DecodeToUTF8([]byte{0x94, 0x39, 0xDA, 0x33}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if consumed != 4 {
		t.Fatalf("consumed %d of 4", consumed)
	}
	if string(dst[:written]) != "\U0001F4A9" {
		t.Fatalf("got %q, want U+1F4A9", dst[:written])
	}
}

func TestDecodeTwoByteTable(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, written := d.DecodeToUTF8([]byte{0x81, 0x40}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if consumed != 2 {
		t.Fatalf("consumed %d of 2", consumed)
	}
	if string(dst[:written]) != "丂" {
		t.Fatalf("got %q, want U+4E02", dst[:written])
	}
}

func TestDecodeEuroSignTwoByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, written := d.DecodeToUTF8([]byte{0xA2, 0xE3}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if consumed != 2 {
		t.Fatalf("consumed %d of 2", consumed)
	}
	if string(dst[:written]) != "€" {
		t.Fatalf("got %q, want U+20AC", dst[:written])
	}
}

func TestDecodeSingleByteEuroSign(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(1))
	res, consumed, written := d.DecodeToUTF8([]byte{0x80}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if consumed != 1 {
		t.Fatalf("consumed %d of 1", consumed)
	}
	if string(dst[:written]) != "€" {
		t.Fatalf("got %q, want U+20AC", dst[:written])
	}
}

// TestDecodeTwoStateMalformedWithExtra exercises the Two-state failure
// path: a valid lead and ASCII-digit second byte put the decoder into
// pendTwo, and a third byte outside [0x81,0xFE] demotes the pending
// digit to a standalone ASCII byte carried forward in pendingASCII.
func TestDecodeTwoStateMalformedWithExtra(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(3))
	res, consumed, written := d.DecodeToUTF8([]byte{0xE3, 0x32, 0x41}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 || res.ExtraBytesRead != 1 {
		t.Fatalf("got %+v, want Malformed(1,1)", res)
	}
	if consumed != 2 || written != 0 {
		t.Fatalf("got consumed=%d written=%d, want 2,0", consumed, written)
	}
	if !d.hasPendingASCII || d.pendingASCII != '2' {
		t.Fatalf("want pendingASCII '2' staged, got %+v", d)
	}
}

// TestDecodeThreeStateMalformedWithExtra exercises the Three-state
// failure path: a valid 3-byte prefix followed by a fourth byte that
// overflows the astral range's 0x10FFFF ceiling.
func TestDecodeThreeStateMalformedWithExtra(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(4))
	res, consumed, written := d.DecodeToUTF8([]byte{0xE3, 0x32, 0x9A, 0x36}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 || res.ExtraBytesRead != 2 {
		t.Fatalf("got %+v, want Malformed(1,2)", res)
	}
	if consumed != 3 || written != 0 {
		t.Fatalf("got consumed=%d written=%d, want 3,0", consumed, written)
	}
}

// TestDecodeMultiCallResumeAtBytesConsumed traces the full six-byte
// sequence E3 32 9A 36 81 40 across the three calls a caller like
// replacement.DecodeToUTF8WithReplacement or session.Session actually
// makes, resuming each call at bytesConsumed alone (never
// bytesConsumed-ExtraBytesRead — see the package comment in
// replacement.DecodeToUTF8WithReplacement for why). This byte sequence
// does not reproduce the event-kind sequence in spec.md's own scenario
// table: both failures here are Three-state (1,2) failures, and a
// (1,1) second failure is not reachable from this lead byte at all.
func TestDecodeMultiCallResumeAtBytesConsumed(t *testing.T) {
	d := NewDecoder()
	src := []byte{0xE3, 0x32, 0x9A, 0x36, 0x81, 0x40}
	dst := make([]byte, d.MaxUTF8BufferLength(len(src)))

	res1, consumed1, written1 := d.DecodeToUTF8(src, dst, true)
	if res1.Kind != result.Malformed || res1.BadLen != 1 || res1.ExtraBytesRead != 2 {
		t.Fatalf("call 1: got %+v, want Malformed(1,2)", res1)
	}
	if consumed1 != 3 || written1 != 0 {
		t.Fatalf("call 1: got consumed=%d written=%d, want 3,0", consumed1, written1)
	}

	res2, consumed2, written2 := d.DecodeToUTF8(src[consumed1:], dst, true)
	if res2.Kind != result.Malformed || res2.BadLen != 1 || res2.ExtraBytesRead != 2 {
		t.Fatalf("call 2: got %+v, want Malformed(1,2)", res2)
	}
	if consumed2 != 2 {
		t.Fatalf("call 2: consumed %d, want 2", consumed2)
	}
	if string(dst[:written2]) != "2" {
		t.Fatalf("call 2: got %q, want the flushed digit \"2\"", dst[:written2])
	}

	res3, consumed3, written3 := d.DecodeToUTF8(src[consumed1+consumed2:], dst, true)
	if res3.Kind != result.InputEmpty {
		t.Fatalf("call 3: got %+v", res3)
	}
	if consumed3 != 1 {
		t.Fatalf("call 3: consumed %d, want 1", consumed3)
	}
	if string(dst[:written3]) != "6丂" {
		t.Fatalf("call 3: got %q, want the flushed digit \"6\" followed by U+4E02", dst[:written3])
	}
}

func TestDecodeASCIIPassthrough(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, 16)
	res, consumed, written := d.DecodeToUTF8([]byte("hi gb18030"), dst, true)
	if res.Kind != result.InputEmpty || consumed != 10 || string(dst[:written]) != "hi gb18030" {
		t.Fatalf("got %+v %q", res, dst[:written])
	}
}

func TestDecodeBadLeadByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, 16)
	res, consumed, _ := d.DecodeToUTF8([]byte{0xFF}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 {
		t.Fatalf("got %+v", res)
	}
	if consumed != 1 {
		t.Fatalf("got consumed=%d, want 1 (invalid lead byte itself is the malformed sequence)", consumed)
	}
}

func TestReset(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, 16)
	d.DecodeToUTF8([]byte{0x81}, dst, false)
	if d.pending == pendNone {
		t.Fatalf("expected pending state before Reset")
	}
	d.Reset()
	if d.pending != pendNone || d.hasPendingASCII {
		t.Fatalf("Reset did not clear decoder state")
	}
}
