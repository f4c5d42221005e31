package big5

import (
	"testing"

	"github.com/gocharset/codec/result"
)

func decodeUTF8(t *testing.T, d *Decoder, src []byte, last bool) (result.DecoderResult, string) {
	t.Helper()
	dst := make([]byte, d.MaxUTF8BufferLength(len(src)))
	res, consumed, written := d.DecodeToUTF8(src, dst, last)
	if consumed != len(src) && res.Kind != result.OutputFull {
		t.Fatalf("DecodeToUTF8(% x) consumed %d of %d bytes, result %+v", src, consumed, len(src), res)
	}
	return res, string(dst[:written])
}

func TestDecodeDuplicatePointer(t *testing.T) {
	d := NewDecoder()
	res, out := decodeUTF8(t, d, []byte{0x87, 0x40}, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("unexpected result %+v", res)
	}
	if out != "䏰" {
		t.Fatalf("got %q, want U+43F0", out)
	}
}

func TestDecodeCombiningPair(t *testing.T) {
	d := NewDecoder()
	res, out := decodeUTF8(t, d, []byte{0x88, 0x62}, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("unexpected result %+v", res)
	}
	if out != "Ê̄" {
		t.Fatalf("got %q, want U+00CA U+0304", out)
	}
}

func TestDecodeLeadByteAcrossCalls(t *testing.T) {
	d := NewDecoder()
	res, out := decodeUTF8(t, d, []byte{0x81}, false)
	if res.Kind != result.InputEmpty || out != "" {
		t.Fatalf("first call: got %+v %q", res, out)
	}
	dst := make([]byte, d.MaxUTF8BufferLength(1))
	res, _, written := d.DecodeToUTF8([]byte{0x40}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("second call result: %+v", res)
	}
	if string(dst[:written]) != "䏰" {
		t.Fatalf("got %q, want U+43F0", dst[:written])
	}
	if d.lead != 0 {
		t.Fatalf("lead state not cleared after full scalar: %v", d.lead)
	}
}

func TestDecodeTrailingLeadIsMalformed(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(1))
	res, consumed, written := d.DecodeToUTF8([]byte{0x81}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 || res.ExtraBytesRead != 0 {
		t.Fatalf("got %+v, want Malformed(1,0)", res)
	}
	if consumed != 1 || written != 0 {
		t.Fatalf("got consumed=%d written=%d, want 1,0", consumed, written)
	}
	if d.lead != 0 {
		t.Fatalf("lead state not cleared on malformed EOF")
	}
}

func TestDecodeBadLeadOnly(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(1))
	res, consumed, _ := d.DecodeToUTF8([]byte{0xFF}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 {
		t.Fatalf("got %+v, want Malformed(1,_)", res)
	}
	if consumed != 1 {
		t.Fatalf("got consumed=%d, want 1 (invalid lead byte itself is the malformed sequence)", consumed)
	}
}

func TestDecodeBadTrailASCIIIsUnread(t *testing.T) {
	// A valid lead followed by an ASCII trail byte reports the lead
	// alone as malformed and leaves the ASCII byte unread so a
	// subsequent call reclassifies it from empty state.
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, _ := d.DecodeToUTF8([]byte{0x81, 0x20}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 {
		t.Fatalf("got %+v, want Malformed(1,_)", res)
	}
	if consumed != 1 {
		t.Fatalf("got consumed=%d, want 1 (lead consumed, trail byte unread)", consumed)
	}
}

func TestDecodeBadPairIsTwoBytes(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, _ := d.DecodeToUTF8([]byte{0x81, 0x81}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 2 {
		t.Fatalf("got %+v, want Malformed(2,_)", res)
	}
	if consumed != 2 {
		t.Fatalf("got consumed=%d, want 2", consumed)
	}
}

func TestDecodeASCIIPassthrough(t *testing.T) {
	d := NewDecoder()
	res, out := decodeUTF8(t, d, []byte("hello, big5"), true)
	if res.Kind != result.InputEmpty || out != "hello, big5" {
		t.Fatalf("got %+v %q", res, out)
	}
}

func TestDecodeToUTF16Astral(t *testing.T) {
	d := NewDecoder()
	dst := make([]uint16, d.MaxUTF16BufferLength(2))
	res, consumed, written := d.DecodeToUTF16([]byte{0xA0, 0xE7}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("unexpected result %+v", res)
	}
	_ = consumed
	if written != 2 {
		t.Fatalf("want a surrogate pair (2 units), got %d", written)
	}
	hi, lo := dst[0], dst[1]
	if hi < 0xD800 || hi > 0xDBFF || lo < 0xDC00 || lo > 0xDFFF {
		t.Fatalf("got %04x %04x, want a valid surrogate pair", hi, lo)
	}
}

func TestReset(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(1))
	d.DecodeToUTF8([]byte{0x81}, dst, false)
	if d.lead == 0 {
		t.Fatalf("expected a pending lead byte before Reset")
	}
	d.Reset()
	if d.lead != 0 {
		t.Fatalf("Reset did not clear lead state")
	}
}
