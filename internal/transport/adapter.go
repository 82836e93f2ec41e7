package transport

import (
	"siegefall/internal/core/ecs"
	"siegefall/internal/input"
)

// Sender is the transport's outbound half: whatever Adapter produces is
// handed to Send as a complete, already-framed wire message.
type Sender interface {
	Send(frame []byte) error
}

// Adapter is the transport adapter from spec §6. It consumes deliver_*
// operations (fed from a raw byte stream via Feed/Pump, or directly via the
// Deliver* methods for tests and for deliver_late_frames' batch form) and
// produces submit_input / request_loss_from / emit_disconnect as framed
// wire messages handed to a Sender.
//
// Nothing here runs the simulation: Adapter only moves bytes and
// typed payloads across the boundary. Pump's ServerFrame deliveries land in
// Mailbox, which the host drains between ticks (spec §5 mailbox contract).
type Adapter struct {
	sender  Sender
	stream  *Stream
	Mailbox *Mailbox

	// OnGameStart, if set, is invoked once when a GameStart message is
	// decoded. deliver_game_start is documented as "one-shot at startup"
	// (spec §6); Adapter does not enforce single-delivery itself, callers
	// that care can make the callback idempotent.
	OnGameStart func(GameStartPayload)

	// OnDisconnect, if set, is invoked when a Disconnect message arrives
	// from the peer.
	OnDisconnect func(DisconnectPayload)

	Disconnected bool
}

// NewAdapter creates an Adapter that sends framed messages through sender
// and buffers confirmed frames into mailbox.
func NewAdapter(sender Sender, mailbox *Mailbox) *Adapter {
	return &Adapter{
		sender:  sender,
		stream:  NewStream(),
		Mailbox: mailbox,
	}
}

// Feed appends newly received bytes to the adapter's internal reassembly
// buffer. Call Pump afterward to dispatch any messages that are now
// complete.
func (a *Adapter) Feed(data []byte) {
	a.stream.Feed(data)
}

// Pump dispatches every complete message currently buffered, returning the
// CoreErrors raised along the way (MalformedMessage entries are non-fatal
// and recovery already happened inside Stream; a StreamDesynchronised entry
// means Pump stopped early and set Disconnected).
func (a *Adapter) Pump() []*ecs.CoreError {
	var errs []*ecs.CoreError
	for {
		t, payload, err, ok := a.stream.Next()
		if !ok {
			return errs
		}
		if err != nil {
			errs = append(errs, err)
			if err.Kind == ecs.ErrStreamDesynchronised {
				a.Disconnected = true
				return errs
			}
			continue
		}
		a.dispatch(t, payload)
	}
}

func (a *Adapter) dispatch(t MessageType, payload []byte) {
	switch t {
	case MessageUnknown:
		// Discarded without desynchronising the stream (spec §6).
	case MessageServerFrame:
		p, err := DecodeServerFrame(payload)
		if err == nil {
			a.DeliverServerFrame(p)
		}
	case MessageGameStart:
		p, err := DecodeGameStart(payload)
		if err == nil && a.OnGameStart != nil {
			a.OnGameStart(p)
		}
	case MessageDisconnect:
		p, err := DecodeDisconnect(payload)
		if err == nil {
			a.Disconnected = true
			if a.OnDisconnect != nil {
				a.OnDisconnect(p)
			}
		}
	case MessageHeartbeat, MessageFrameLoss, MessageFrameNeed, MessageConnect, MessageFrameData:
		// Not part of the core's consume set on this side of the
		// connection; present on the wire for the other peer role.
	}
}

// DeliverServerFrame implements deliver_server_frame: buffers one
// authoritative frame into the mailbox for the simulation to drain between
// ticks.
func (a *Adapter) DeliverServerFrame(p ServerFramePayload) {
	a.Mailbox.Deliver(p)
}

// DeliverLateFrames implements deliver_late_frames: a loss-recovery batch,
// delivered the same way as individual ServerFrame messages since the
// mailbox already tolerates and reorders out-of-order arrivals.
func (a *Adapter) DeliverLateFrames(frames []ServerFramePayload) {
	for _, f := range frames {
		a.Mailbox.Deliver(f)
	}
}

// SubmitInput implements submit_input: frames and sends the local player's
// input for frameNumber.
func (a *Adapter) SubmitInput(frameNumber uint64, inputs input.Frame) error {
	payload := EncodeFrameData(FrameDataPayload{FrameNumber: frameNumber, Inputs: inputs})
	return a.sender.Send(EncodeMessage(MessageFrameData, payload))
}

// RequestLossFrom implements request_loss_from: asks the peer to resend
// every frame strictly after confirmedFrame (spec §6).
func (a *Adapter) RequestLossFrom(confirmedFrame uint64) error {
	payload := EncodeFrameLoss(FrameLossPayload{LastConfirmedFrame: confirmedFrame})
	return a.sender.Send(EncodeMessage(MessageFrameLoss, payload))
}

// EmitDisconnect implements emit_disconnect: an advisory notice to the
// transport (spec §6).
func (a *Adapter) EmitDisconnect(reason string) error {
	a.Disconnected = true
	payload := EncodeDisconnect(DisconnectPayload{Reason: reason})
	return a.sender.Send(EncodeMessage(MessageDisconnect, payload))
}
