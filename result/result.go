// Package result defines the two outcome types shared by every decoder
// and encoder variant. It exists as its own package (rather than living
// in the root codec package) so that internal/big5, internal/eucjp and
// internal/gb18030 can return these types without the root codec
// package (which imports them for variant dispatch) creating an import
// cycle.
package result

// DecoderResultKind distinguishes the three outcomes a decode call can
// suspend or terminate with.
type DecoderResultKind int

const (
	// InputEmpty means every input byte was classified; resume by
	// presenting more input (or, if last was true, the session is
	// over and the decoder's internal state is empty).
	InputEmpty DecoderResultKind = iota
	// OutputFull means the destination ran out of space before all
	// input could be classified; resume with a larger or fresh
	// destination.
	OutputFull
	// Malformed means a byte sequence starting at the current
	// position could not be decoded. See DecoderResult.BadLen and
	// ExtraBytesRead for the exact byte accounting.
	Malformed
)

// DecoderResult is returned by every decode_to_* call alongside the
// number of units read from the source and written to the destination.
//
// BadLen is the number of bytes belonging to the malformed sequence
// (1-4). ExtraBytesRead counts additional bytes of lookahead that were
// committed to that verdict but conceptually belong to the next unit
// rather than this malformed one — it is caller-facing bookkeeping for
// mapping a malformed event back onto an original byte offset (for
// logging or reporting), not an adjustment to the resume point: the
// next decode_to_* call always resumes at bytesConsumed as reported,
// since any lookahead bytes already folded into the decoder's retained
// state (GB18030's pending-ASCII-digit tracking, for example) must not
// be re-presented as fresh input. Both fields are zero for InputEmpty
// and OutputFull.
type DecoderResult struct {
	Kind           DecoderResultKind
	BadLen         uint8
	ExtraBytesRead uint8
}

// Malformed1 reports a one-byte-long malformed sequence with no extra
// lookahead to return.
func Malformed1() DecoderResult { return DecoderResult{Kind: Malformed, BadLen: 1} }

// Malformed2 reports a two-byte-long malformed sequence with no extra
// lookahead to return.
func Malformed2() DecoderResult { return DecoderResult{Kind: Malformed, BadLen: 2} }

// MalformedWithExtra reports a malformed sequence of badLen bytes with
// extra bytes of committed lookahead that belong to what follows the
// malformed sequence (see DecoderResult: they are still counted in
// bytesConsumed).
func MalformedWithExtra(badLen, extra uint8) DecoderResult {
	return DecoderResult{Kind: Malformed, BadLen: badLen, ExtraBytesRead: extra}
}

// EncoderResultKind distinguishes the three outcomes an encode call can
// suspend or terminate with.
type EncoderResultKind int

const (
	// EncInputEmpty means every input scalar was encoded.
	EncInputEmpty EncoderResultKind = iota
	// EncOutputFull means the destination ran out of space.
	EncOutputFull
	// EncUnmappable means the current input scalar has no
	// representation in the target encoding. See EncoderResult.Scalar.
	EncUnmappable
)

// EncoderResult is returned by every encode_from_* call alongside the
// number of units read from the source and bytes written to the
// destination.
type EncoderResult struct {
	Kind   EncoderResultKind
	Scalar rune
}

// Unmappable reports that scalar r has no representation in the target
// encoding.
func Unmappable(r rune) EncoderResult { return EncoderResult{Kind: EncUnmappable, Scalar: r} }
