package transport

import (
	"encoding/binary"

	"siegefall/internal/core/ecs"
)

// streamResyncLimit bounds how many single-byte resync attempts Stream makes
// after an impossibly-large length prefix before giving up and declaring the
// stream desynchronised (spec §7: StreamDesynchronised -> disconnect).
const streamResyncLimit = 256

// Stream incrementally reassembles length-prefixed wire messages out of a
// byte stream that may arrive in arbitrary chunks (spec §6 framing). It is
// the boundary where MalformedMessage and StreamDesynchronised are actually
// detected and locally recovered, per spec §7.
type Stream struct {
	buf              []byte
	consecutiveBadLen int
}

// NewStream creates an empty Stream.
func NewStream() *Stream { return &Stream{} }

// Feed appends newly received bytes to the stream's internal buffer.
func (s *Stream) Feed(data []byte) {
	s.buf = append(s.buf, data...)
}

// Next attempts to pop one complete message from the buffer.
//
// Returns (0, nil, nil, false) when there is not yet a complete message
// (caller should Feed more bytes and try again). Returns a non-nil
// *ecs.CoreError for MalformedMessage (a frame with no type tag or an
// out-of-range type; just that frame is dropped) and for
// StreamDesynchronised (the caller must disconnect; Stream's buffer is
// cleared so a second call returns no-message rather than re-erroring
// forever). An oversized length prefix returns no error by itself: the
// buffer slides forward one byte at a time to resync, and only after more
// than streamResyncLimit consecutive slides is StreamDesynchronised returned.
func (s *Stream) Next() (MessageType, []byte, *ecs.CoreError, bool) {
	for {
		if len(s.buf) < 4 {
			return MessageUnknown, nil, nil, false
		}
		length := binary.BigEndian.Uint32(s.buf)
		if length > MaxMessageLength {
			s.consecutiveBadLen++
			if s.consecutiveBadLen > streamResyncLimit {
				s.buf = nil
				return MessageUnknown, nil, ecs.NewStreamDesynchronisedError(
					"no valid frame boundary found after repeated resync attempts"), true
			}
			// Slide the window by one byte and try again: classic framing
			// resync, since the declared length cannot be trusted to know
			// how far to skip.
			s.buf = s.buf[1:]
			continue
		}
		total := 4 + int(length)
		if len(s.buf) < total {
			return MessageUnknown, nil, nil, false
		}
		s.consecutiveBadLen = 0
		if length < 1 {
			s.buf = s.buf[total:]
			return MessageUnknown, nil, ecs.NewMalformedMessageError("message has no type tag"), true
		}
		t := MessageType(s.buf[4])
		payload := append([]byte(nil), s.buf[5:total]...)
		s.buf = s.buf[total:]
		if !t.IsRecognised() {
			return MessageUnknown, nil, ecs.NewMalformedMessageError("message type out of range"), true
		}
		// MessageUnknown (tag 0) is itself a recognised type that must be
		// discarded without desynchronising the stream (spec §6); it is
		// returned with a nil error since it is not a framing failure.
		return t, payload, nil, true
	}
}
