package terminal

// decodeState is the decoder's position inside an escape sequence
type decodeState uint8

const (
	stateIdle    decodeState = iota // no pending bytes
	stateEscape                     // ESC seen
	stateCSI                        // ESC [ seen, accumulating parameters
	stateSS3                        // ESC O seen, waiting for the final byte
	stateMouse                      // ESC [ < seen, accumulating SGR mouse parameters
	stateDiscard                    // malformed or overflowed, skipping to the terminator
)

// seqBufSize bounds the accumulator; longer sequences are discarded
const seqBufSize = 32

// Sink receives decoded input.
// Keys are stream events; mouse reports are state updates.
type Sink interface {
	Key(ev Event)
	MouseReport(code, x, y int, final byte)
}

// Decoder is a byte-level state machine turning raw terminal input into events.
// Split input across Feed calls decodes identically to a single batch.
type Decoder struct {
	state decodeState
	buf   [seqBufSize]byte
	n     int
}

// Pending reports whether a partial sequence is held
func (d *Decoder) Pending() bool {
	return d.state != stateIdle
}

// Reset drops any partial sequence
func (d *Decoder) Reset() {
	d.state = stateIdle
	d.n = 0
}

// Feed decodes p, delivering every completed event to s
func (d *Decoder) Feed(p []byte, s Sink) {
	for _, c := range p {
		d.feedByte(c, s)
	}
}

// Flush resolves a sequence that stopped arriving.
// A lone ESC becomes an Escape key; any other partial sequence is dropped.
func (d *Decoder) Flush(s Sink) {
	if d.state == stateEscape {
		s.Key(Event{Key: KeyEscape, Code: 0x1b})
	}
	d.Reset()
}

func (d *Decoder) feedByte(c byte, s Sink) {
	switch d.state {
	case stateIdle:
		if c == 0x1b {
			d.state = stateEscape
			return
		}
		s.Key(decodeSingle(c))

	case stateEscape:
		switch c {
		case '[':
			d.state = stateCSI
			d.n = 0
		case 'O':
			d.state = stateSS3
		case 0x1b:
			// ESC ESC: first one stands alone, second may start a sequence
			s.Key(Event{Key: KeyEscape, Code: 0x1b})
		default:
			s.Key(Event{Key: KeyEscape, Code: 0x1b})
			d.state = stateIdle
			d.feedByte(c, s)
		}

	case stateSS3:
		d.state = stateIdle
		if c == 0x1b {
			d.state = stateEscape
			return
		}
		if key, mod, ok := lookupSS3([]byte{c}); ok {
			s.Key(Event{Key: key, Modifiers: mod})
		}

	case stateCSI:
		if d.n == 0 && c == '<' {
			d.state = stateMouse
			return
		}
		d.accumulateCSI(c, s)

	case stateMouse:
		d.accumulateMouse(c, s)

	case stateDiscard:
		if c == 0x1b {
			d.state = stateEscape
			d.n = 0
			return
		}
		if isFinalByte(c) {
			d.Reset()
		}
	}
}

func (d *Decoder) accumulateCSI(c byte, s Sink) {
	if c == 0x1b {
		// Interrupted by a new sequence
		d.state = stateEscape
		d.n = 0
		return
	}
	if !d.push(c) {
		d.overflow(c)
		return
	}
	if !isFinalByte(c) {
		return
	}
	if key, mod, ok := lookupCSI(d.buf[:d.n]); ok {
		s.Key(Event{Key: key, Modifiers: mod})
	}
	d.Reset()
}

func (d *Decoder) accumulateMouse(c byte, s Sink) {
	switch {
	case c == 'M' || c == 'm':
		if code, x, y, ok := parseSGRParams(d.buf[:d.n]); ok {
			s.MouseReport(code, x, y, c)
		}
		d.Reset()
	case c == ';' || (c >= '0' && c <= '9'):
		if !d.push(c) {
			d.overflow(c)
		}
	case c == 0x1b:
		d.state = stateEscape
		d.n = 0
	default:
		d.overflow(c)
	}
}

func (d *Decoder) push(c byte) bool {
	if d.n >= len(d.buf) {
		return false
	}
	d.buf[d.n] = c
	d.n++
	return true
}

// overflow abandons the current sequence; c may already be its terminator
func (d *Decoder) overflow(c byte) {
	d.n = 0
	if isFinalByte(c) {
		d.state = stateIdle
		return
	}
	d.state = stateDiscard
}

// isFinalByte reports whether c terminates a CSI sequence
func isFinalByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '~'
}

// decodeSingle classifies a byte received outside any escape sequence
func decodeSingle(c byte) Event {
	switch {
	case c == '\r' || c == '\n':
		return Event{Key: KeyEnter, Code: c}
	case c == '\t':
		return Event{Key: KeyTab, Code: c}
	case c == 0x7f:
		return Event{Key: KeyBackspace, Code: c}
	case c < 0x20:
		return Event{Key: controlKey(c), Code: c}
	case c < 0x80:
		return Event{Key: KeyRune, Rune: rune(c)}
	}
	return Event{Key: KeyRune, Rune: GlyphFromByte(c)}
}

// parseSGRParams extracts btn;x;y from SGR mouse parameter bytes
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0
	digits := 0

	for _, b := range data {
		if b == ';' {
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			digits = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		} else if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 { // Sanity limit
				return 0, 0, 0, false
			}
		} else {
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}
