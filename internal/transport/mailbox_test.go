package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siegefall/internal/input"
)

func frame(n uint64) ServerFramePayload {
	return ServerFramePayload{FrameNumber: n, Inputs: input.Frame{}}
}

func TestMailboxDrainsInOrder(t *testing.T) {
	m := NewMailbox(8, 1)
	m.Deliver(frame(1))
	m.Deliver(frame(2))
	m.Deliver(frame(3))

	got := m.Drain()
	assert.Equal(t, []ServerFramePayload{frame(1), frame(2), frame(3)}, got)
	assert.Equal(t, uint64(4), m.NextWant())
}

func TestMailboxBuffersOutOfOrderArrivals(t *testing.T) {
	m := NewMailbox(8, 1)
	m.Deliver(frame(3))
	m.Deliver(frame(2))

	// frame 1 has not arrived yet: nothing is drainable.
	assert.Empty(t, m.Drain())
	assert.Equal(t, 2, m.Pending())

	m.Deliver(frame(1))
	got := m.Drain()
	assert.Equal(t, []ServerFramePayload{frame(1), frame(2), frame(3)}, got)
}

func TestMailboxDropsDuplicates(t *testing.T) {
	m := NewMailbox(8, 1)
	m.Deliver(frame(1))
	m.Drain()

	m.Deliver(frame(1)) // already drained, below nextWant
	assert.Empty(t, m.Drain())
	assert.Equal(t, 0, m.Pending())
}

func TestMailboxRespectsCapacity(t *testing.T) {
	m := NewMailbox(2, 1)
	m.Deliver(frame(5))
	m.Deliver(frame(6))
	m.Deliver(frame(7)) // over capacity, dropped

	assert.Equal(t, 2, m.Pending())
}

func TestMailboxReset(t *testing.T) {
	m := NewMailbox(8, 1)
	m.Deliver(frame(2))
	m.Reset(5)

	assert.Equal(t, uint64(5), m.NextWant())
	assert.Equal(t, 0, m.Pending())
}
