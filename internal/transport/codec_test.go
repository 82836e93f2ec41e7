package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siegefall/internal/fix"
	"siegefall/internal/input"
)

func TestFrameDataRoundTrip(t *testing.T) {
	p := FrameDataPayload{
		FrameNumber: 42,
		Inputs: input.Frame{
			{PlayerID: 1, Direction: input.DirUpLeft, IsFire: true, FireX: int64(fix.FromInt(3)), FireY: int64(fix.FromInt(-2)), IsToggle: false},
			{PlayerID: 2, Direction: input.DirNone},
		},
	}

	encoded := EncodeFrameData(p)
	decoded, err := DecodeFrameData(encoded)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestFrameDataRoundTripEmptyInputs(t *testing.T) {
	p := FrameDataPayload{FrameNumber: 7, Inputs: input.Frame{}}

	decoded, err := DecodeFrameData(EncodeFrameData(p))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), decoded.FrameNumber)
	assert.Empty(t, decoded.Inputs)
}

func TestServerFrameRoundTrip(t *testing.T) {
	p := ServerFramePayload{FrameNumber: 100, Inputs: input.Frame{{PlayerID: 3, Direction: input.DirDown}}}

	decoded, err := DecodeServerFrame(EncodeServerFrame(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestConnectRoundTrip(t *testing.T) {
	p := ConnectPayload{RoomID: "room-9", PlayerID: 5}

	decoded, err := DecodeConnect(EncodeConnect(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestDisconnectRoundTrip(t *testing.T) {
	p := DisconnectPayload{Reason: "peer closed"}

	decoded, err := DecodeDisconnect(EncodeDisconnect(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestGameStartRoundTrip(t *testing.T) {
	p := GameStartPayload{
		RoomID:     "room-1",
		RandomSeed: 123456789,
		PlayerIDs:  []input.PlayerID{0, 1, 2},
	}

	decoded, err := DecodeGameStart(EncodeGameStart(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestFrameLossRoundTrip(t *testing.T) {
	p := FrameLossPayload{LastConfirmedFrame: 4}

	decoded, err := DecodeFrameLoss(EncodeFrameLoss(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestFrameNeedRoundTrip(t *testing.T) {
	p := FrameNeedPayload{FrameNumber: 17}

	decoded, err := DecodeFrameNeed(EncodeFrameNeed(p))
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestEncodeMessageFraming(t *testing.T) {
	payload := EncodeFrameLoss(FrameLossPayload{LastConfirmedFrame: 4})
	msg := EncodeMessage(MessageFrameLoss, payload)

	// 4-byte length prefix + 1-byte type tag + payload.
	assert.Equal(t, 4+1+len(payload), len(msg))

	typ, body, consumed, err := DecodeMessageHeader(msg)
	require.Nil(t, err)
	assert.Equal(t, MessageFrameLoss, typ)
	assert.Equal(t, payload, body)
	assert.Equal(t, len(msg), consumed)
}

func TestDecodeMessageHeaderWaitsForMoreBytes(t *testing.T) {
	full := EncodeMessage(MessageHeartbeat, nil)
	typ, body, consumed, err := DecodeMessageHeader(full[:2])

	assert.Nil(t, err)
	assert.Equal(t, MessageUnknown, typ)
	assert.Nil(t, body)
	assert.Equal(t, 0, consumed)
}

func TestDecodeMessageHeaderRejectsOversizedLength(t *testing.T) {
	raw := make([]byte, 5)
	raw[0] = 0xFF // length prefix far exceeding MaxMessageLength
	raw[1] = 0xFF
	raw[2] = 0xFF
	raw[3] = 0xFF

	_, _, _, err := DecodeMessageHeader(raw)
	require.NotNil(t, err)
	assert.Equal(t, "MalformedMessage", string(err.Kind))
}

func TestDecodeMessageHeaderRejectsUnrecognisedType(t *testing.T) {
	body := []byte{99} // out-of-range type tag, no payload
	raw := make([]byte, 4+len(body))
	raw[3] = byte(len(body))
	copy(raw[4:], body)

	_, _, _, err := DecodeMessageHeader(raw)
	require.NotNil(t, err)
	assert.Equal(t, "MalformedMessage", string(err.Kind))
}
