package terminal

// Key represents a decoded input key
type Key uint16

// Key constants
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace        // 0x00
	KeyCtrlBackslash    // 0x1C
	KeyCtrlBracketRight // 0x1D
	KeyCtrlCaret        // 0x1E
	KeyCtrlUnderscore   // 0x1F
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is one decoded key press.
// Code carries the raw byte for control keys, 0 otherwise.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
	Code      byte
}

// IsPrintable reports whether the event inserts a character
func (e Event) IsPrintable() bool {
	return e.Key == KeyRune && e.Rune >= 0x20 && e.Rune != 0x7f
}

// controlKey maps a raw C0 byte that has no dedicated key to its Ctrl key
func controlKey(c byte) Key {
	switch {
	case c == 0x00:
		return KeyCtrlSpace
	case c >= 0x01 && c <= 0x1a:
		return KeyCtrlA + Key(c-0x01)
	case c == 0x1c:
		return KeyCtrlBackslash
	case c == 0x1d:
		return KeyCtrlBracketRight
	case c == 0x1e:
		return KeyCtrlCaret
	case c == 0x1f:
		return KeyCtrlUnderscore
	}
	return KeyNone
}

// keyMod is the decoded result of one escape sequence
type keyMod struct {
	key Key
	mod Modifier
}

// csiKeys indexes the bytes after ESC [ up to and including the final byte
var csiKeys = map[string]keyMod{
	// Arrow keys
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"Z": {KeyBacktab, ModShift},

	// Arrow keys with modifiers (xterm style: ESC [ 1 ; mod X)
	"1;2A": {KeyUp, ModShift},
	"1;2B": {KeyDown, ModShift},
	"1;2C": {KeyRight, ModShift},
	"1;2D": {KeyLeft, ModShift},
	"1;3A": {KeyUp, ModAlt},
	"1;3B": {KeyDown, ModAlt},
	"1;3C": {KeyRight, ModAlt},
	"1;3D": {KeyLeft, ModAlt},
	"1;5A": {KeyUp, ModCtrl},
	"1;5B": {KeyDown, ModCtrl},
	"1;5C": {KeyRight, ModCtrl},
	"1;5D": {KeyLeft, ModCtrl},

	// Navigation
	"H":  {KeyHome, ModNone},
	"F":  {KeyEnd, ModNone},
	"1~": {KeyHome, ModNone},
	"2~": {KeyInsert, ModNone},
	"3~": {KeyDelete, ModNone},
	"4~": {KeyEnd, ModNone},
	"5~": {KeyPageUp, ModNone},
	"6~": {KeyPageDown, ModNone},

	// Function keys (xterm)
	"11~": {KeyF1, ModNone},
	"12~": {KeyF2, ModNone},
	"13~": {KeyF3, ModNone},
	"14~": {KeyF4, ModNone},
	"15~": {KeyF5, ModNone},
	"17~": {KeyF6, ModNone},
	"18~": {KeyF7, ModNone},
	"19~": {KeyF8, ModNone},
	"20~": {KeyF9, ModNone},
	"21~": {KeyF10, ModNone},
	"23~": {KeyF11, ModNone},
	"24~": {KeyF12, ModNone},
}

// ss3Keys indexes the byte after ESC O, sent in application cursor mode
var ss3Keys = map[string]keyMod{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"H": {KeyHome, ModNone},
	"F": {KeyEnd, ModNone},
	"P": {KeyF1, ModNone},
	"Q": {KeyF2, ModNone},
	"R": {KeyF3, ModNone},
	"S": {KeyF4, ModNone},
}

// lookupCSI resolves a CSI body; string(seq) in a map index does not allocate
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if km, ok := csiKeys[string(seq)]; ok {
		return km.key, km.mod, true
	}
	return KeyNone, ModNone, false
}

// lookupSS3 resolves an SS3 final byte
func lookupSS3(seq []byte) (Key, Modifier, bool) {
	if km, ok := ss3Keys[string(seq)]; ok {
		return km.key, km.mod, true
	}
	return KeyNone, ModNone, false
}
