// Package transport implements the wire adapter from spec §6: a length-
// prefixed, type-tagged, protobuf-encoded framing over a closed set of
// message types, plus the bounded mailbox that is the sole synchronization
// point between the transport's own thread and the single-threaded
// simulation (spec §5).
package transport

import "siegefall/internal/input"

// MessageType is the closed set of recognised wire message types (spec §6).
// Unknown must be discarded by the caller without desynchronising the
// stream; every other value must route to its own payload decoder.
type MessageType uint8

const (
	MessageUnknown     MessageType = 0
	MessageConnect     MessageType = 1
	MessageFrameData   MessageType = 2
	MessageServerFrame MessageType = 3
	MessageDisconnect  MessageType = 4
	MessageGameStart   MessageType = 5
	MessageFrameLoss   MessageType = 6
	MessageFrameNeed   MessageType = 7
	MessageHeartbeat   MessageType = 8
)

// IsRecognised reports whether t is one of the nine closed-set values.
// Anything outside this range is MalformedMessage, not Unknown.
func (t MessageType) IsRecognised() bool {
	return t <= MessageHeartbeat
}

// MaxMessageLength is the largest length prefix the codec accepts before
// treating the frame as MalformedMessage (spec §7: ">1 MiB").
const MaxMessageLength = 1 << 20

// ConnectPayload is the client's initial handshake.
type ConnectPayload struct {
	RoomID   string
	PlayerID input.PlayerID
}

// FrameDataPayload carries a client's submitted input for one frame
// (submit_input, spec §6).
type FrameDataPayload struct {
	FrameNumber uint64
	Inputs      input.Frame
}

// ServerFramePayload carries the server's authoritative input list for one
// frame (deliver_server_frame, spec §6).
type ServerFramePayload struct {
	FrameNumber uint64
	Inputs      input.Frame
}

// DisconnectPayload is an advisory disconnect notice in either direction.
type DisconnectPayload struct {
	Reason string
}

// GameStartPayload is the one-shot match-start message (deliver_game_start,
// spec §6).
type GameStartPayload struct {
	RoomID     string
	RandomSeed uint64
	PlayerIDs  []input.PlayerID
}

// FrameLossPayload is a request that the peer resend every frame strictly
// after LastConfirmedFrame (request_loss_from, spec §6).
type FrameLossPayload struct {
	LastConfirmedFrame uint64
}

// FrameNeedPayload names a single frame number the sender is missing. Used
// by deliver_late_frames recovery when only specific frames, not a
// contiguous tail, are absent.
type FrameNeedPayload struct {
	FrameNumber uint64
}

// HeartbeatPayload carries no data; its presence on the wire is the signal.
type HeartbeatPayload struct{}
