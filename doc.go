// Package codec provides streaming, chunk-at-a-time conversion between
// legacy multi-byte encodings and Unicode.
//
// # Overview
//
// codec implements the WHATWG Encoding Standard's Big5, EUC-JP, and
// GB18030/GBK decoders and encoders. Each one accepts its input in
// arbitrarily sized chunks, carries whatever partial multi-byte state it
// needs between calls, and reports malformed sequences or unmappable
// scalars as typed results rather than errors — suitable for feeding
// from a network socket or a file one buffer at a time without ever
// holding the whole document in memory.
//
// # When to Use codec
//
// codec is for:
//   - Decoding legacy Chinese/Japanese mail, log, or document archives to
//     Unicode
//   - Encoding Unicode back out to Big5/EUC-JP/GBK/GB18030 for systems
//     that still expect it on the wire
//   - Pipelines that need back-pressure-friendly, bounded-memory
//     conversion rather than an all-at-once []byte-to-[]byte call
//
// # When NOT to Use codec
//
// codec is not suitable for:
//   - UTF-8/UTF-16/UTF-32 transcoding (they need no legacy table lookup;
//     use encoding/utf8, unicode/utf16, or golang.org/x/text/encoding/unicode)
//   - Encodings outside Big5/EUC-JP/GB18030/GBK (see golang.org/x/text/encoding
//     for the broader catalogue, and this module's xtext subpackage for an
//     encoding.Encoding adapter over this core)
//
// # Basic Usage
//
//	dec := codec.NewGB18030Decoder()
//	dst := make([]byte, dec.MaxUTF8BufferLength(len(src)))
//	res, consumed, written := dec.DecodeToUTF8(src, dst, true)
//	switch res.Kind {
//	case result.InputEmpty:
//	    // dst[:written] holds the fully converted output
//	case result.Malformed:
//	    // res.BadLen/res.ExtraBytesRead describe the bad sequence; see
//	    // the replacement subpackage for a ready-made splicing loop
//	}
//
// Callers that want a single blocking io.Reader/io.Writer conversion
// instead of managing chunks and resume offsets themselves should use
// the session subpackage.
//
// # Performance Characteristics
//
// Each variant's decode/encode loop is a closed, monomorphic state
// machine with no interface-typed hot path: Decoder and Encoder
// dispatch once per call via a switch on a small tagged union's
// variant tag, not a virtual call per byte. ASCII runs are copied through a
// word-stride fast path in internal/engine rather than one byte at a
// time.
package codec
