// Package xtext adapts this module's codec.Decoder/codec.Encoder to
// golang.org/x/text/encoding.Encoding, so this core's Big5/EUC-JP/GBK/
// GB18030 implementations can be dropped into any code already written
// against the x/text ecosystem (transform.Reader, encoding/htmlindex,
// multipart form decoding, and so on) without that caller knowing this
// core exists underneath.
//
// This package is not named in spec.md, whose scope stops at the
// engine's own decode_to_*/encode_from_* calls; it exists because a
// streaming conversion core with no ecosystem adapter is only half
// useful in a codebase that already speaks transform.Transformer.
package xtext

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/gocharset/codec"
	"github.com/gocharset/codec/result"
)

// variant identifies which codec.Decoder/codec.Encoder constructor an
// Encoding value should use.
type variant int

const (
	variantBig5 variant = iota
	variantEUCJP
	variantGBK
	variantGB18030
)

// gocharsetEncoding is an encoding.Encoding backed by this module's
// core. The four package-level values below are its only instances.
type gocharsetEncoding struct {
	name string
	v    variant
}

// Big5 is the Big5 encoding (including its HKSCS extensions).
var Big5 encoding.Encoding = &gocharsetEncoding{name: "Big5", v: variantBig5}

// EUCJP is the EUC-JP encoding.
var EUCJP encoding.Encoding = &gocharsetEncoding{name: "EUC-JP", v: variantEUCJP}

// GBK is the GBK encoding: no four-byte range form, and U+20AC encodes
// as the single byte 0x80.
var GBK encoding.Encoding = &gocharsetEncoding{name: "GBK", v: variantGBK}

// GB18030 is the GB18030 encoding, GBK's superset with the four-byte
// range form enabled.
var GB18030 encoding.Encoding = &gocharsetEncoding{name: "GB18030", v: variantGB18030}

func (e *gocharsetEncoding) String() string { return e.name }

func (e *gocharsetEncoding) newDecoder() *codec.Decoder {
	switch e.v {
	case variantBig5:
		return codec.NewBig5Decoder()
	case variantEUCJP:
		return codec.NewEUCJPDecoder()
	default:
		return codec.NewGB18030Decoder()
	}
}

func (e *gocharsetEncoding) newEncoder() *codec.Encoder {
	switch e.v {
	case variantBig5:
		return codec.NewBig5Encoder()
	case variantEUCJP:
		return codec.NewEUCJPEncoder()
	case variantGBK:
		return codec.NewGB18030Encoder(false)
	default:
		return codec.NewGB18030Encoder(true)
	}
}

// NewDecoder returns a decoder that converts from e's encoding to UTF-8.
func (e *gocharsetEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decodeTransformer{dec: e.newDecoder()}}
}

// NewEncoder returns an encoder that converts from UTF-8 to e's
// encoding.
func (e *gocharsetEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encodeTransformer{enc: e.newEncoder()}}
}

// replacementUTF8 is U+FFFD encoded as UTF-8, spliced in place of every
// malformed sequence — the same policy golang.org/x/text/encoding's own
// legacy-encoding implementations (e.g. simplifiedchinese.GBK) use,
// rather than surfacing a transform.Transformer error for it.
var replacementUTF8 = [3]byte{0xEF, 0xBF, 0xBD}

// decodeTransformer adapts codec.Decoder to transform.Transformer.
type decodeTransformer struct {
	dec *codec.Decoder
}

func (t *decodeTransformer) Reset() { t.dec.Reset() }

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		res, c, w := t.dec.DecodeToUTF8(src[nSrc:], dst[nDst:], atEOF)
		nSrc += c
		nDst += w
		switch res.Kind {
		case result.InputEmpty:
			if !atEOF && nSrc == len(src) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, nil
		case result.OutputFull:
			return nDst, nSrc, transform.ErrShortDst
		case result.Malformed:
			if len(dst)-nDst < len(replacementUTF8) {
				return nDst, nSrc, transform.ErrShortDst
			}
			copy(dst[nDst:], replacementUTF8[:])
			nDst += len(replacementUTF8)
		}
	}
}

// encodeTransformer adapts codec.Encoder to transform.Transformer.
// codec.Encoder carries no internal state, so Reset is a no-op.
type encodeTransformer struct {
	enc *codec.Encoder
}

func (t *encodeTransformer) Reset() {}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		res, c, w := t.enc.EncodeFromUTF8(src[nSrc:], dst[nDst:])
		nSrc += c
		nDst += w
		switch res.Kind {
		case result.EncInputEmpty:
			if !atEOF && nSrc == len(src) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, nil
		case result.EncOutputFull:
			return nDst, nSrc, transform.ErrShortDst
		case result.EncUnmappable:
			// golang.org/x/text/encoding's convention for an
			// encoder hitting an unrepresentable rune is to
			// substitute the ASCII '?' and carry on, matching
			// encoding.Encoder's documented fallback behavior for
			// encoders that don't implement encoding.Replacement.
			if len(dst)-nDst < 1 {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '?'
			nDst++
			_, size := utf8.DecodeRune(src[nSrc:])
			nSrc += size
		}
	}
}
