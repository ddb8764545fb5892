package terminal

import "errors"

var (
	// ErrNotTerminal is returned when the input is not a character device
	ErrNotTerminal = errors.New("terminal: not a terminal")
	// ErrNoSize is returned when the terminal size cannot be determined
	ErrNoSize = errors.New("terminal: size unavailable")
	// ErrUnsupported is returned on platforms without a raw-mode backend
	ErrUnsupported = errors.New("terminal: platform not supported")
)

// Backend abstracts platform-specific terminal operations.
// One implementation per platform is selected by build tags.
type Backend interface {
	// Init saves the original mode and enters raw, non-blocking mode
	Init() error
	// Fini restores the saved mode. It must not allocate or take locks.
	Fini()

	// Size returns the terminal size in columns and rows
	Size() (width, height int, err error)

	// Read returns immediately; 0 bytes means no input is pending
	Read(p []byte) (int, error)
	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)
}

// backendConfig carries the options the default backend honours
type backendConfig struct {
	// rawSignals clears ISIG (or processed input) so Ctrl-C arrives as a key
	rawSignals bool
}
