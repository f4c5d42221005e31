package codec

import (
	"testing"

	"github.com/gocharset/codec/result"
)

func TestDecoderVariantDispatchBig5(t *testing.T) {
	d := NewBig5Decoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, written := d.DecodeToUTF8([]byte{0x87, 0x40}, dst, true)
	if res.Kind != result.InputEmpty || consumed != 2 {
		t.Fatalf("got %+v consumed=%d", res, consumed)
	}
	if string(dst[:written]) != "䏰" {
		t.Fatalf("got %q, want U+43F0", dst[:written])
	}
}

func TestDecoderVariantDispatchEUCJP(t *testing.T) {
	d := NewEUCJPDecoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, written := d.DecodeToUTF8([]byte{0x8E, 0xA1}, dst, true)
	if res.Kind != result.InputEmpty || consumed != 2 {
		t.Fatalf("got %+v consumed=%d", res, consumed)
	}
	if string(dst[:written]) != "｡" {
		t.Fatalf("got %q, want U+FF61", dst[:written])
	}
}

func TestDecoderVariantDispatchGB18030(t *testing.T) {
	d := NewGB18030Decoder()
	dst := make([]byte, d.MaxUTF8BufferLength(2))
	res, consumed, written := d.DecodeToUTF8([]byte{0x81, 0x40}, dst, true)
	if res.Kind != result.InputEmpty || consumed != 2 {
		t.Fatalf("got %+v consumed=%d", res, consumed)
	}
	if string(dst[:written]) != "丂" {
		t.Fatalf("got %q, want U+4E02", dst[:written])
	}
}

func TestDecoderResetDispatch(t *testing.T) {
	d := NewGB18030Decoder()
	dst := make([]byte, d.MaxUTF8BufferLength(1))
	d.DecodeToUTF8([]byte{0x81}, dst, false)
	d.Reset()
	res, consumed, _ := d.DecodeToUTF8([]byte("x"), dst, true)
	if res.Kind != result.InputEmpty || consumed != 1 {
		t.Fatalf("Reset did not clear pending lead byte: got %+v", res)
	}
}

func TestDecoderToUTF16Dispatch(t *testing.T) {
	d := NewBig5Decoder()
	dst := make([]uint16, d.MaxUTF16BufferLength(2))
	res, _, written := d.DecodeToUTF16([]byte{0x87, 0x40}, dst, true)
	if res.Kind != result.InputEmpty || written != 1 || dst[0] != 0x43F0 {
		t.Fatalf("got %+v written=%d dst=%v", res, written, dst[:written])
	}
}
