package terminal

import (
	"io"
	"time"
)

// escapeTimeout is the duration to wait after ESC to distinguish
// standalone ESC from escape sequence start
const escapeTimeout = 50 * time.Millisecond

// maxReadsPerPoll bounds the drain loop when input keeps arriving
const maxReadsPerPoll = 16

// Input polls a non-blocking reader, decodes what arrived and holds the results:
// a FIFO of key events and the mouse state table.
type Input struct {
	r   io.Reader
	dec Decoder

	keys []Event
	head int

	mouse MouseState

	buf          [256]byte
	pendingSince time.Time
	now          func() time.Time
}

// NewInput creates an input poller over r, whose Read must not block
func NewInput(r io.Reader) *Input {
	return &Input{
		r:    r,
		keys: make([]Event, 0, 64),
		now:  time.Now,
	}
}

// Poll reads every available byte and decodes it.
// Mouse pressed/released edges are reset first, so they describe this poll only.
func (in *Input) Poll() error {
	in.mouse.BeginPoll()

	total := 0
	for range maxReadsPerPoll {
		n, err := in.r.Read(in.buf[:])
		if n > 0 {
			in.dec.Feed(in.buf[:n], in)
			total += n
		}
		if err != nil {
			return err
		}
		if n < len(in.buf) {
			break
		}
	}

	if !in.dec.Pending() {
		in.pendingSince = time.Time{}
		return nil
	}
	now := in.now()
	if total > 0 || in.pendingSince.IsZero() {
		in.pendingSince = now
		return nil
	}
	if now.Sub(in.pendingSince) >= escapeTimeout {
		// Sequence stopped arriving: a lone ESC is the Escape key
		in.dec.Flush(in)
		in.pendingSince = time.Time{}
	}
	return nil
}

// Key queues a decoded key event
func (in *Input) Key(ev Event) {
	in.keys = append(in.keys, ev)
}

// MouseReport applies a decoded SGR mouse report to the state table
func (in *Input) MouseReport(code, x, y int, final byte) {
	in.mouse.applySGR(code, x, y, final)
}

// MouseState returns the pointer position and button table
func (in *Input) MouseState() *MouseState {
	return &in.mouse
}

// KeyPressed reports whether a key event is queued
func (in *Input) KeyPressed() bool {
	return in.head < len(in.keys)
}

// PopKey removes and returns the oldest key event, Event{Key: KeyNone} when empty
func (in *Input) PopKey() Event {
	if in.head >= len(in.keys) {
		return Event{Key: KeyNone}
	}
	ev := in.keys[in.head]
	in.head++
	if in.head == len(in.keys) {
		in.keys = in.keys[:0]
		in.head = 0
	}
	return ev
}

// Discard drops queued keys and any partial sequence
func (in *Input) Discard() {
	in.keys = in.keys[:0]
	in.head = 0
	in.dec.Reset()
	in.pendingSince = time.Time{}
}
