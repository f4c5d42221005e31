// Package session provides a convenience layer over codec.Decoder and
// codec.Encoder for callers who just want to pump an io.Reader through
// a conversion into an io.Writer once, rather than manage chunk sizing
// and resume offsets themselves.
//
// Every Session is tagged with a uuid.UUID for log correlation and logs
// each malformed sequence or unmappable scalar it encounters through
// zerolog at Warn level. Those conditions are never promoted to a Go
// error: per the core's contract, they are recoverable conditions the
// caller already opted into handling (by choosing a Session in the
// first place) rather than failures. Session.DecodeToUTF8 and
// Session.EncodeFromUTF8 only return a non-nil error for genuine
// io.Reader/io.Writer failures.
package session

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gocharset/codec"
	"github.com/gocharset/codec/result"
)

const (
	readChunk = 32 * 1024
)

// Session carries a correlation ID and a logger for one logical
// conversion. It holds no codec itself: the codec.Decoder or
// codec.Encoder is passed to each DecodeToUTF8 or EncodeFromUTF8 call.
type Session struct {
	id  uuid.UUID
	log zerolog.Logger
}

// New returns a Session that logs through logger, tagged with a fresh
// UUID.
func New(logger zerolog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:  id,
		log: logger.With().Str("session_id", id.String()).Logger(),
	}
}

// ID returns the session's correlation identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// DecodeToUTF8 reads r to EOF, converts it with dec, and writes the
// resulting UTF-8 to w. Malformed sequences are logged and skipped
// (the offending bytes are simply dropped from the output); callers
// that want them spliced with U+FFFD instead should use the
// replacement package directly.
func (s *Session) DecodeToUTF8(dec *codec.Decoder, r io.Reader, w io.Writer) error {
	br := bufio.NewReaderSize(r, readChunk)
	in := make([]byte, readChunk)
	out := make([]byte, dec.MaxUTF8BufferLength(readChunk))
	var offset int64

	for {
		n, readErr := br.Read(in)
		atEOF := readErr == io.EOF
		if readErr != nil && !atEOF {
			return fmt.Errorf("session %s: read: %w", s.id, readErr)
		}

		chunk := in[:n]
		for {
			res, consumed, written := dec.DecodeToUTF8(chunk, out, atEOF)
			if written > 0 {
				if _, err := w.Write(out[:written]); err != nil {
					return fmt.Errorf("session %s: write: %w", s.id, err)
				}
			}
			offset += int64(consumed)
			chunk = chunk[consumed:]

			switch res.Kind {
			case result.Malformed:
				s.log.Warn().
					Int64("byte_offset", offset).
					Uint8("bad_len", res.BadLen).
					Msg("malformed input sequence, dropped")
				continue
			case result.OutputFull:
				continue
			case result.InputEmpty:
			}
			break
		}

		if atEOF {
			return nil
		}
	}
}

// EncodeFromUTF8 reads validated UTF-8 from r to EOF, converts it with
// enc, and writes the result to w. Unmappable scalars are logged and
// dropped; callers that want a numeric character reference spliced in
// instead should use the replacement package directly.
func (s *Session) EncodeFromUTF8(enc *codec.Encoder, r io.Reader, w io.Writer) error {
	br := bufio.NewReaderSize(r, readChunk)
	in := make([]byte, readChunk)
	out := make([]byte, enc.MaxBufferLengthFromUTF8WithoutReplacement(readChunk))
	var offset int64

	for {
		n, readErr := br.Read(in)
		atEOF := readErr == io.EOF
		if readErr != nil && !atEOF {
			return fmt.Errorf("session %s: read: %w", s.id, readErr)
		}

		chunk := in[:n]
		for {
			res, consumed, written := enc.EncodeFromUTF8(chunk, out)
			if written > 0 {
				if _, err := w.Write(out[:written]); err != nil {
					return fmt.Errorf("session %s: write: %w", s.id, err)
				}
			}
			offset += int64(consumed)
			chunk = chunk[consumed:]

			switch res.Kind {
			case result.EncUnmappable:
				s.log.Warn().
					Int64("byte_offset", offset).
					Int32("scalar", int32(res.Scalar)).
					Msg("unmappable scalar, dropped")
				_, size := utf8.DecodeRune(chunk)
				offset += int64(size)
				chunk = chunk[size:]
				continue
			case result.EncOutputFull:
				continue
			case result.EncInputEmpty:
			}
			break
		}

		if atEOF {
			return nil
		}
	}
}
