package transport

// Mailbox is the bounded, ordered inbox ServerFrame messages are delivered
// into before the simulation drains them. Out-of-order arrivals are buffered
// until their predecessor has been drained; Drain never returns a gap.
// Mailbox takes no lock: its methods are not safe for concurrent use.
type Mailbox struct {
	capacity int
	pending  map[uint64]ServerFramePayload
	nextWant uint64 // the lowest frame number not yet drained
}

// NewMailbox creates a Mailbox expecting contiguous frame numbers starting
// at firstFrame, holding at most capacity buffered out-of-order frames.
func NewMailbox(capacity int, firstFrame uint64) *Mailbox {
	return &Mailbox{
		capacity: capacity,
		pending:  make(map[uint64]ServerFramePayload),
		nextWant: firstFrame,
	}
}

// Deliver buffers frame for later draining. Delivering a frame below
// nextWant, or one already buffered, is a silent duplicate no-op (spec §7
// DuplicateFrame: silently drop). When capacity frames are already held,
// the held entries are kept and the new frame is simply not buffered — the
// transport's own FrameLoss recovery is responsible for eventually resending
// it inside the window.
func (m *Mailbox) Deliver(frame ServerFramePayload) {
	if frame.FrameNumber < m.nextWant {
		return
	}
	if _, exists := m.pending[frame.FrameNumber]; exists {
		return
	}
	if len(m.pending) >= m.capacity {
		return
	}
	m.pending[frame.FrameNumber] = frame
}

// Drain returns every contiguous frame starting at nextWant, in ascending
// frame-number order, removing them from the mailbox and advancing
// nextWant past the run. Returns nil if nextWant itself has not arrived yet
// (spec §5: "out-of-order arrivals are buffered until their predecessor has
// been processed").
func (m *Mailbox) Drain() []ServerFramePayload {
	var out []ServerFramePayload
	for {
		frame, ok := m.pending[m.nextWant]
		if !ok {
			break
		}
		delete(m.pending, m.nextWant)
		out = append(out, frame)
		m.nextWant++
	}
	return out
}

// NextWant returns the lowest frame number Drain is still waiting on.
func (m *Mailbox) NextWant() uint64 { return m.nextWant }

// Pending returns the number of buffered frames awaiting their predecessor.
func (m *Mailbox) Pending() int { return len(m.pending) }

// Reset discards every buffered frame and repositions nextWant. Used after a
// FrameLoss recovery installs a fresh confirmed frame out of band.
func (m *Mailbox) Reset(nextWant uint64) {
	m.pending = make(map[uint64]ServerFramePayload)
	m.nextWant = nextWant
}
