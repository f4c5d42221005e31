package eucjp

import (
	"testing"

	"github.com/gocharset/codec/result"
)

func TestDecodeHalfWidthKana(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, written := d.DecodeToUTF8([]byte{0x8E, 0xA1}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if consumed != 2 {
		t.Fatalf("consumed %d of 2", consumed)
	}
	if string(dst[:written]) != "｡" {
		t.Fatalf("got %q, want U+FF61", dst[:written])
	}
}

func TestDecodeJIS0212ThirdByte(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(3))
	res, consumed, written := d.DecodeToUTF8([]byte{0x8F, 0xA2, 0xAF}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if consumed != 3 {
		t.Fatalf("consumed %d of 3", consumed)
	}
	if string(dst[:written]) != "˘" {
		t.Fatalf("got %q, want U+02D8", dst[:written])
	}
}

func TestDecodeJIS0208(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, _, written := d.DecodeToUTF8([]byte{0xA1, 0xA1}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("got %+v", res)
	}
	if string(dst[:written]) != "　" {
		t.Fatalf("got %q, want U+3000", dst[:written])
	}
}

func TestDecodeASCIIPassthrough(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, 16)
	res, _, written := d.DecodeToUTF8([]byte("hello"), dst, true)
	if res.Kind != result.InputEmpty || string(dst[:written]) != "hello" {
		t.Fatalf("got %+v %q", res, dst[:written])
	}
}

func TestDecodeTrailingLeadIsMalformed(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, 16)
	res, consumed, written := d.DecodeToUTF8([]byte{0xA1}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 {
		t.Fatalf("got %+v", res)
	}
	if consumed != 1 || written != 0 {
		t.Fatalf("got consumed=%d written=%d, want 1,0", consumed, written)
	}
	if d.lead != 0 || d.jis0212 {
		t.Fatalf("state not cleared after malformed EOF")
	}
}

func TestDecodeLeadByteAcrossCalls(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, 16)
	res, consumed, written := d.DecodeToUTF8([]byte{0x8E}, dst, false)
	if res.Kind != result.InputEmpty || consumed != 1 || written != 0 {
		t.Fatalf("first call: %+v consumed=%d written=%d", res, consumed, written)
	}
	res, _, written = d.DecodeToUTF8([]byte{0xA1}, dst, true)
	if res.Kind != result.InputEmpty {
		t.Fatalf("second call: %+v", res)
	}
	if string(dst[:written]) != "｡" {
		t.Fatalf("got %q", dst[:written])
	}
}

func TestDecodeMalformedBadLeadOnly(t *testing.T) {
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

func TestDecodeMalformedPair(t *testing.T) {
	d := NewDecoder()
	dst := make([]byte, 16)
	res, consumed, _ := d.DecodeToUTF8([]byte{0xA1, 0x20}, dst, true)
	if res.Kind != result.Malformed || res.BadLen != 1 {
		t.Fatalf("got %+v, want Malformed(1,_) for an ASCII second byte", res)
	}
	if consumed != 1 {
		t.Fatalf("got consumed=%d, want 1 (lead consumed, ASCII byte unread)", consumed)
	}
}
