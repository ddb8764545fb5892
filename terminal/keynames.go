package terminal

import "strconv"

// keyToName maps keys to the names shown by event viewers
var keyToName = map[Key]string{
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	for i := 0; i < 12; i++ {
		keyToName[KeyF1+Key(i)] = "f" + strconv.Itoa(i+1)
	}
	for c := 'a'; c <= 'z'; c++ {
		keyToName[KeyCtrlA+Key(c-'a')] = "ctrl_" + string(c)
	}

	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["shift_tab"] = KeyBacktab
	nameToKey["esc"] = KeyEscape
}

// String returns the canonical key name, "none" for KeyNone
func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// String describes the event, quoting the rune for printable keys
func (e Event) String() string {
	var s string
	switch e.Key {
	case KeyRune:
		s = strconv.QuoteRune(e.Rune)
	default:
		s = e.Key.String()
	}
	if e.Modifiers&ModCtrl != 0 {
		s = "ctrl+" + s
	}
	if e.Modifiers&ModAlt != 0 {
		s = "alt+" + s
	}
	if e.Modifiers&ModShift != 0 && e.Key != KeyBacktab {
		s = "shift+" + s
	}
	return s
}
