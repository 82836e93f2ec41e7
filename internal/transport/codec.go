package transport

import (
	"encoding/binary"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"siegefall/internal/core/ecs"
	"siegefall/internal/input"
)

// Field numbers for the hand-rolled wire schema. There is no .proto source;
// every payload below is encoded directly with protowire's primitives using
// these fixed tags, which is why the numbering is kept here rather than
// scattered across each Encode/Decode pair.
const (
	fieldFrameDataPlayerID  = 1
	fieldFrameDataDirection = 2
	fieldFrameDataIsFire    = 3
	fieldFrameDataFireX     = 4
	fieldFrameDataFireY     = 5
	fieldFrameDataIsToggle  = 6

	fieldFrameEntry = 1 // repeated FrameData inside an encoded Frame

	fieldFrameNumber = 1
	fieldInputs      = 2

	fieldRoomID     = 1
	fieldPlayerID   = 2
	fieldRandomSeed = 2
	fieldPlayerIDs  = 3

	fieldReason = 1

	fieldLastConfirmedFrame = 1
)

func boolToVarint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func encodeFrameData(fd input.FrameData) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldFrameDataPlayerID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(fd.PlayerID))
	b = protowire.AppendTag(b, fieldFrameDataDirection, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(fd.Direction))
	b = protowire.AppendTag(b, fieldFrameDataIsFire, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(fd.IsFire))
	b = protowire.AppendTag(b, fieldFrameDataFireX, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, uint64(fd.FireX))
	b = protowire.AppendTag(b, fieldFrameDataFireY, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, uint64(fd.FireY))
	b = protowire.AppendTag(b, fieldFrameDataIsToggle, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(fd.IsToggle))
	return b
}

func decodeFrameData(b []byte) (input.FrameData, error) {
	var fd input.FrameData
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fd, fmt.Errorf("transport: malformed FrameData tag")
		}
		b = b[n:]
		switch num {
		case fieldFrameDataPlayerID:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 || typ != protowire.VarintType {
				return fd, fmt.Errorf("transport: malformed FrameData.player_id")
			}
			fd.PlayerID = input.PlayerID(v)
			b = b[n:]
		case fieldFrameDataDirection:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 || typ != protowire.VarintType {
				return fd, fmt.Errorf("transport: malformed FrameData.direction")
			}
			fd.Direction = input.Direction(v)
			b = b[n:]
		case fieldFrameDataIsFire:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 || typ != protowire.VarintType {
				return fd, fmt.Errorf("transport: malformed FrameData.is_fire")
			}
			fd.IsFire = v != 0
			b = b[n:]
		case fieldFrameDataFireX:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 || typ != protowire.Fixed64Type {
				return fd, fmt.Errorf("transport: malformed FrameData.fire_x")
			}
			fd.FireX = int64(v)
			b = b[n:]
		case fieldFrameDataFireY:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 || typ != protowire.Fixed64Type {
				return fd, fmt.Errorf("transport: malformed FrameData.fire_y")
			}
			fd.FireY = int64(v)
			b = b[n:]
		case fieldFrameDataIsToggle:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 || typ != protowire.VarintType {
				return fd, fmt.Errorf("transport: malformed FrameData.is_toggle")
			}
			fd.IsToggle = v != 0
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fd, fmt.Errorf("transport: malformed FrameData unknown field")
			}
			b = b[n:]
		}
	}
	return fd, nil
}

func encodeFrame(frame input.Frame) []byte {
	var b []byte
	for _, fd := range frame {
		b = protowire.AppendTag(b, fieldFrameEntry, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeFrameData(fd))
	}
	return b
}

func decodeFrame(b []byte) (input.Frame, error) {
	var frame input.Frame
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("transport: malformed Frame tag")
		}
		b = b[n:]
		if num != fieldFrameEntry || typ != protowire.BytesType {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("transport: malformed Frame unknown field")
			}
			b = b[n:]
			continue
		}
		entry, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("transport: malformed Frame entry")
		}
		b = b[n:]
		fd, err := decodeFrameData(entry)
		if err != nil {
			return nil, err
		}
		frame = append(frame, fd)
	}
	return frame, nil
}

// EncodeFrameData serializes a FrameDataPayload (submit_input, spec §6).
func EncodeFrameData(p FrameDataPayload) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldFrameNumber, protowire.VarintType)
	b = protowire.AppendVarint(b, p.FrameNumber)
	b = protowire.AppendTag(b, fieldInputs, protowire.BytesType)
	b = protowire.AppendBytes(b, encodeFrame(p.Inputs))
	return b
}

// DecodeFrameData parses a FrameDataPayload.
func DecodeFrameData(b []byte) (FrameDataPayload, error) {
	var p FrameDataPayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed FrameDataPayload tag")
		}
		b = b[n:]
		switch num {
		case fieldFrameNumber:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed FrameDataPayload.frame_number")
			}
			p.FrameNumber = v
			b = b[n:]
		case fieldInputs:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed FrameDataPayload.inputs")
			}
			frame, err := decodeFrame(v)
			if err != nil {
				return p, err
			}
			p.Inputs = frame
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed FrameDataPayload unknown field")
			}
			b = b[n:]
		}
	}
	return p, nil
}

// EncodeServerFrame serializes a ServerFramePayload (deliver_server_frame).
func EncodeServerFrame(p ServerFramePayload) []byte {
	return EncodeFrameData(FrameDataPayload{FrameNumber: p.FrameNumber, Inputs: p.Inputs})
}

// DecodeServerFrame parses a ServerFramePayload; the wire shape is identical
// to FrameDataPayload (both are just "frame number + input list"), only the
// type tag on the envelope distinguishes client submission from server
// authority.
func DecodeServerFrame(b []byte) (ServerFramePayload, error) {
	p, err := DecodeFrameData(b)
	return ServerFramePayload{FrameNumber: p.FrameNumber, Inputs: p.Inputs}, err
}

// EncodeConnect serializes a ConnectPayload.
func EncodeConnect(p ConnectPayload) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldRoomID, protowire.BytesType)
	b = protowire.AppendString(b, p.RoomID)
	b = protowire.AppendTag(b, fieldPlayerID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.PlayerID))
	return b
}

// DecodeConnect parses a ConnectPayload.
func DecodeConnect(b []byte) (ConnectPayload, error) {
	var p ConnectPayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed ConnectPayload tag")
		}
		b = b[n:]
		switch num {
		case fieldRoomID:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed ConnectPayload.room_id")
			}
			p.RoomID = v
			b = b[n:]
		case fieldPlayerID:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed ConnectPayload.player_id")
			}
			p.PlayerID = input.PlayerID(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed ConnectPayload unknown field")
			}
			b = b[n:]
		}
	}
	return p, nil
}

// EncodeDisconnect serializes a DisconnectPayload.
func EncodeDisconnect(p DisconnectPayload) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldReason, protowire.BytesType)
	b = protowire.AppendString(b, p.Reason)
	return b
}

// DecodeDisconnect parses a DisconnectPayload.
func DecodeDisconnect(b []byte) (DisconnectPayload, error) {
	var p DisconnectPayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed DisconnectPayload tag")
		}
		b = b[n:]
		if num == fieldReason {
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed DisconnectPayload.reason")
			}
			p.Reason = v
			b = b[n:]
			continue
		}
		n := protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed DisconnectPayload unknown field")
		}
		b = b[n:]
	}
	return p, nil
}

// EncodeGameStart serializes a GameStartPayload.
func EncodeGameStart(p GameStartPayload) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldRoomID, protowire.BytesType)
	b = protowire.AppendString(b, p.RoomID)
	b = protowire.AppendTag(b, fieldRandomSeed, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, p.RandomSeed)
	for _, id := range p.PlayerIDs {
		b = protowire.AppendTag(b, fieldPlayerIDs, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(id))
	}
	return b
}

// DecodeGameStart parses a GameStartPayload.
func DecodeGameStart(b []byte) (GameStartPayload, error) {
	var p GameStartPayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed GameStartPayload tag")
		}
		b = b[n:]
		switch num {
		case fieldRoomID:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed GameStartPayload.room_id")
			}
			p.RoomID = v
			b = b[n:]
		case fieldRandomSeed:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed GameStartPayload.random_seed")
			}
			p.RandomSeed = v
			b = b[n:]
		case fieldPlayerIDs:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed GameStartPayload.player_ids")
			}
			p.PlayerIDs = append(p.PlayerIDs, input.PlayerID(v))
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed GameStartPayload unknown field")
			}
			b = b[n:]
		}
	}
	return p, nil
}

// EncodeFrameLoss serializes a FrameLossPayload (request_loss_from).
func EncodeFrameLoss(p FrameLossPayload) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldLastConfirmedFrame, protowire.VarintType)
	b = protowire.AppendVarint(b, p.LastConfirmedFrame)
	return b
}

// DecodeFrameLoss parses a FrameLossPayload.
func DecodeFrameLoss(b []byte) (FrameLossPayload, error) {
	var p FrameLossPayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed FrameLossPayload tag")
		}
		b = b[n:]
		if num == fieldLastConfirmedFrame {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed FrameLossPayload.last_confirmed_frame")
			}
			p.LastConfirmedFrame = v
			b = b[n:]
			continue
		}
		n := protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed FrameLossPayload unknown field")
		}
		b = b[n:]
	}
	return p, nil
}

// EncodeFrameNeed serializes a FrameNeedPayload.
func EncodeFrameNeed(p FrameNeedPayload) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldFrameNumber, protowire.VarintType)
	b = protowire.AppendVarint(b, p.FrameNumber)
	return b
}

// DecodeFrameNeed parses a FrameNeedPayload.
func DecodeFrameNeed(b []byte) (FrameNeedPayload, error) {
	var p FrameNeedPayload
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed FrameNeedPayload tag")
		}
		b = b[n:]
		if num == fieldFrameNumber {
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return p, fmt.Errorf("transport: malformed FrameNeedPayload.frame_number")
			}
			p.FrameNumber = v
			b = b[n:]
			continue
		}
		n := protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return p, fmt.Errorf("transport: malformed FrameNeedPayload unknown field")
		}
		b = b[n:]
	}
	return p, nil
}

// EncodeMessage frames payload with its type tag and u32 big-endian length
// prefix (spec §6): length covers the type byte plus the payload.
func EncodeMessage(t MessageType, payload []byte) []byte {
	body := make([]byte, 1+len(payload))
	body[0] = byte(t)
	copy(body[1:], payload)

	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out, uint32(len(body)))
	copy(out[4:], body)
	return out
}

// DecodeMessageHeader reads the u32 length prefix and u8 type tag from the
// front of b, returning the message type, the payload slice, and the number
// of bytes consumed (4 + 1 + len(payload)). Returns a MalformedMessage
// *ecs.CoreError if the declared length exceeds MaxMessageLength, and
// (MessageUnknown, nil, 0, nil) if b does not yet hold a complete frame (caller should
// wait for more bytes — not an error, just a short read).
func DecodeMessageHeader(b []byte) (MessageType, []byte, int, *ecs.CoreError) {
	if len(b) < 4 {
		return MessageUnknown, nil, 0, nil
	}
	length := binary.BigEndian.Uint32(b)
	if length > MaxMessageLength {
		return MessageUnknown, nil, 0, ecs.NewMalformedMessageError(
			fmt.Sprintf("length prefix %d exceeds %d byte limit", length, MaxMessageLength))
	}
	total := 4 + int(length)
	if len(b) < total {
		return MessageUnknown, nil, 0, nil
	}
	if length < 1 {
		return MessageUnknown, nil, 0, ecs.NewMalformedMessageError("message has no type tag")
	}
	t := MessageType(b[4])
	if !t.IsRecognised() {
		return MessageUnknown, nil, 0, ecs.NewMalformedMessageError(
			fmt.Sprintf("message type %d out of range", b[4]))
	}
	return t, b[5:total], total, nil
}
