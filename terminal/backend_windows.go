//go:build windows

package terminal

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

var (
	kernel32                          = windows.NewLazySystemDLL("kernel32.dll")
	procReadConsoleInputW             = kernel32.NewProc("ReadConsoleInputW")
	procGetNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")
)

const keyEvent = 0x0001

// inputRecord mirrors INPUT_RECORD with the KEY_EVENT_RECORD arm of the union
type inputRecord struct {
	eventType       uint16
	_               uint16
	keyDown         int32
	repeatCount     uint16
	virtualKeyCode  uint16
	virtualScanCode uint16
	unicodeChar     uint16
	controlKeyState uint32
}

// ConsoleBackend drives a Windows console in virtual terminal mode.
// Input arrives as the same VT sequences a unix terminal sends.
type ConsoleBackend struct {
	in  windows.Handle
	out windows.Handle
	w   *os.File

	// RawSignals disables processed input so Ctrl-C arrives as a key
	RawSignals bool

	savedIn  uint32
	savedOut uint32
	raw      bool

	records [64]inputRecord
}

// NewConsoleBackend creates a backend on the process console handles
func NewConsoleBackend() *ConsoleBackend {
	return &ConsoleBackend{
		in:  windows.Handle(os.Stdin.Fd()),
		out: windows.Handle(os.Stdout.Fd()),
		w:   os.Stdout,
	}
}

func newBackend(cfg backendConfig) Backend {
	b := NewConsoleBackend()
	b.RawSignals = cfg.rawSignals
	return b
}

// Init saves both console modes and enables VT input and output
func (b *ConsoleBackend) Init() error {
	if !term.IsTerminal(int(b.in)) {
		return ErrNotTerminal
	}
	if err := windows.GetConsoleMode(b.in, &b.savedIn); err != nil {
		return fmt.Errorf("read input mode: %w", err)
	}
	if err := windows.GetConsoleMode(b.out, &b.savedOut); err != nil {
		return fmt.Errorf("read output mode: %w", err)
	}

	in := b.savedIn &^ (windows.ENABLE_ECHO_INPUT | windows.ENABLE_LINE_INPUT | windows.ENABLE_QUICK_EDIT_MODE)
	in |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT | windows.ENABLE_EXTENDED_FLAGS | windows.ENABLE_WINDOW_INPUT
	if b.RawSignals {
		in &^= windows.ENABLE_PROCESSED_INPUT
	}
	if err := windows.SetConsoleMode(b.in, in); err != nil {
		return fmt.Errorf("set input mode: %w", err)
	}

	out := b.savedOut | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.ENABLE_PROCESSED_OUTPUT | windows.DISABLE_NEWLINE_AUTO_RETURN
	if err := windows.SetConsoleMode(b.out, out); err != nil {
		_ = windows.SetConsoleMode(b.in, b.savedIn)
		return fmt.Errorf("set output mode: %w", err)
	}
	b.raw = true
	return nil
}

// Fini restores both saved console modes verbatim
func (b *ConsoleBackend) Fini() {
	if !b.raw {
		return
	}
	b.raw = false
	_ = windows.SetConsoleMode(b.in, b.savedIn)
	_ = windows.SetConsoleMode(b.out, b.savedOut)
}

// Size returns the visible window of the screen buffer
func (b *ConsoleBackend) Size() (int, int, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.out, &info); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoSize, err)
	}
	w := int(info.Window.Right-info.Window.Left) + 1
	h := int(info.Window.Bottom-info.Window.Top) + 1
	if w <= 0 || h <= 0 {
		return 0, 0, ErrNoSize
	}
	return w, h, nil
}

// Read drains pending key records without blocking.
// Characters outside ASCII are re-encoded to code page bytes.
func (b *ConsoleBackend) Read(p []byte) (int, error) {
	var pending uint32
	r1, _, e1 := procGetNumberOfConsoleInputEvents.Call(uintptr(b.in), uintptr(unsafe.Pointer(&pending)))
	if r1 == 0 {
		return 0, e1
	}
	if pending == 0 {
		return 0, nil
	}

	want := min(int(pending), len(b.records), len(p))
	var got uint32
	r1, _, e1 = procReadConsoleInputW.Call(
		uintptr(b.in),
		uintptr(unsafe.Pointer(&b.records[0])),
		uintptr(want),
		uintptr(unsafe.Pointer(&got)),
	)
	if r1 == 0 {
		return 0, e1
	}

	n := 0
	for i := 0; i < int(got) && n < len(p); i++ {
		rec := &b.records[i]
		if rec.eventType != keyEvent || rec.keyDown == 0 || rec.unicodeChar == 0 {
			continue
		}
		p[n] = consoleByte(rune(rec.unicodeChar))
		n++
	}
	return n, nil
}

func consoleByte(r rune) byte {
	if r < 0x80 {
		return byte(r)
	}
	if c, ok := codePage.EncodeRune(r); ok {
		return c
	}
	return '?'
}

// Write writes p to the console output
func (b *ConsoleBackend) Write(p []byte) (int, error) {
	return b.w.Write(p)
}

// resetTerminalMode is a no-op; console modes are restored by Fini
func resetTerminalMode() {}
