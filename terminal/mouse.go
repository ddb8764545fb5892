package terminal

// MouseButton is a slot in the button state table
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseScrollUp
	MouseScrollDown
)

// MouseSlots is the size of the button table; slots 5-7 are reserved
const MouseSlots = 8

// SGR button code bits
const (
	mouseButtonMask = 0x03
	mouseBitMotion  = 0x20
	mouseBitScroll  = 0x40
	mouseNoButton   = 0x03
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseMiddle:
		return "Middle"
	case MouseRight:
		return "Right"
	case MouseScrollUp:
		return "ScrollUp"
	case MouseScrollDown:
		return "ScrollDown"
	default:
		return "None"
	}
}

// MouseState is the latest pointer position and per-button state.
// Pressed and Released are edges since the last BeginPoll.
type MouseState struct {
	X, Y int

	down     [MouseSlots]bool
	pressed  [MouseSlots]bool
	released [MouseSlots]bool
}

// BeginPoll clears the per-poll edges; held buttons stay down
func (m *MouseState) BeginPoll() {
	m.pressed = [MouseSlots]bool{}
	m.released = [MouseSlots]bool{}
}

// Down reports whether btn is held
func (m *MouseState) Down(btn MouseButton) bool {
	return btn < MouseSlots && m.down[btn]
}

// Pressed reports whether btn went down during this poll
func (m *MouseState) Pressed(btn MouseButton) bool {
	return btn < MouseSlots && m.pressed[btn]
}

// Released reports whether btn went up during this poll
func (m *MouseState) Released(btn MouseButton) bool {
	return btn < MouseSlots && m.released[btn]
}

// applySGR updates the table from one decoded ESC [ < code ; x ; y final sequence.
// x and y are the 1-based wire coordinates.
func (m *MouseState) applySGR(code, x, y int, final byte) {
	m.X = max(x-1, 0)
	m.Y = max(y-1, 0)

	if code&mouseBitScroll != 0 {
		btn := MouseScrollUp
		if code&1 != 0 {
			btn = MouseScrollDown
		}
		// Wheel notches have no hold phase
		if final == 'M' {
			m.pressed[btn] = true
		}
		m.released[btn] = true
		return
	}

	btn := MouseButton(code & mouseButtonMask)
	if btn == mouseNoButton {
		// Legacy release or buttonless motion
		return
	}

	switch final {
	case 'M':
		if code&mouseBitMotion != 0 {
			// Drag: button already held
			return
		}
		m.pressed[btn] = !m.down[btn]
		m.down[btn] = true
	case 'm':
		m.released[btn] = m.down[btn]
		m.down[btn] = false
	}
}
