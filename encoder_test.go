package codec

import (
	"testing"

	"github.com/gocharset/codec/result"
)

func TestEncoderVariantDispatchBig5(t *testing.T) {
	e := NewBig5Encoder()
	dst := make([]byte, e.MaxBufferLengthFromUTF8WithoutReplacement(4))
	res, _, written := e.EncodeFromUTF8([]byte(string(rune(0x43F0))), dst)
	if res.Kind != result.EncInputEmpty {
		t.Fatalf("got %+v", res)
	}
	want := []byte{0x87, 0x40}
	if string(dst[:written]) != string(want) {
		t.Fatalf("got % x, want % x", dst[:written], want)
	}
}

func TestEncoderVariantDispatchEUCJP(t *testing.T) {
	e := NewEUCJPEncoder()
	dst := make([]byte, e.MaxBufferLengthFromUTF8WithoutReplacement(4))
	res, _, written := e.EncodeFromUTF8([]byte("｡"), dst)
	if res.Kind != result.EncInputEmpty {
		t.Fatalf("got %+v", res)
	}
	want := []byte{0x8E, 0xA1}
	if string(dst[:written]) != string(want) {
		t.Fatalf("got % x, want % x", dst[:written], want)
	}
}

func TestEncoderVariantDispatchGBK(t *testing.T) {
	e := NewGB18030Encoder(false)
	dst := make([]byte, e.MaxBufferLengthFromUTF8WithoutReplacement(4))
	res, _, written := e.EncodeFromUTF8([]byte("€"), dst)
	if res.Kind != result.EncInputEmpty {
		t.Fatalf("got %+v", res)
	}
	if string(dst[:written]) != string([]byte{0x80}) {
		t.Fatalf("got % x, want 80 (GBK single-byte euro sign)", dst[:written])
	}
}

func TestEncoderVariantDispatchGB18030(t *testing.T) {
	e := NewGB18030Encoder(true)
	dst := make([]byte, e.MaxBufferLengthFromUTF8WithoutReplacement(4))
	res, _, written := e.EncodeFromUTF8([]byte("€"), dst)
	if res.Kind != result.EncInputEmpty {
		t.Fatalf("got %+v", res)
	}
	want := []byte{0xA2, 0xE3}
	if string(dst[:written]) != string(want) {
		t.Fatalf("got % x, want % x (GB18030 two-byte euro sign)", dst[:written], want)
	}
}

func TestEncoderFromUTF16Dispatch(t *testing.T) {
	e := NewBig5Encoder()
	dst := make([]byte, 8)
	res, consumed, written := e.EncodeFromUTF16([]uint16{0xD844, 0xDE34}, dst)
	if res.Kind != result.EncInputEmpty || consumed != 2 {
		t.Fatalf("got %+v consumed=%d", res, consumed)
	}
	want := []byte{0xA0, 0xE7}
	if string(dst[:written]) != string(want) {
		t.Fatalf("got % x, want % x", dst[:written], want)
	}
}
