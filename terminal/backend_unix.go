//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TTYBackend drives a termios terminal
type TTYBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	// RawSignals clears ISIG so Ctrl-C and Ctrl-Z are delivered as keys
	RawSignals bool

	saved unix.Termios
	raw   bool

	pollFds [1]unix.PollFd
}

// NewTTYBackend creates a backend reading from in and writing to out
func NewTTYBackend(in, out *os.File) *TTYBackend {
	return &TTYBackend{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func newBackend(cfg backendConfig) Backend {
	b := NewTTYBackend(os.Stdin, os.Stdout)
	b.RawSignals = cfg.rawSignals
	return b
}

// Init saves the termios state of the input and switches it to raw mode
func (b *TTYBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	saved, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("read termios: %w", err)
	}
	b.saved = *saved

	raw := *saved
	makeRaw(&raw, b.RawSignals)
	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	b.raw = true
	return nil
}

// makeRaw applies the raw-mode flag set to t
// Reads return immediately (VMIN=0, VTIME=0)
func makeRaw(t *unix.Termios, rawSignals bool) {
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON | unix.INPCK
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	if rawSignals {
		t.Lflag &^= unix.ISIG
	}
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 0
}

// Fini writes back the saved termios state
func (b *TTYBackend) Fini() {
	if !b.raw {
		return
	}
	b.raw = false
	_ = unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, &b.saved)
}

// Size queries the output window size
func (b *TTYBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNoSize, err)
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, ErrNoSize
	}
	return int(ws.Col), int(ws.Row), nil
}

// Read polls the input with a zero timeout and reads what is available
func (b *TTYBackend) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.pollFds[0] = unix.PollFd{Fd: int32(b.inFd), Events: unix.POLLIN}
	n, err := unix.Poll(b.pollFds[:], 0)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	rn, err := unix.Read(b.inFd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, nil
		}
		return 0, err
	}
	if rn == 0 && b.pollFds[0].Revents&(unix.POLLHUP|unix.POLLERR) != 0 {
		return 0, os.ErrClosed
	}
	return rn, nil
}

// Write writes p to the output
func (b *TTYBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// resetTerminalMode re-enables cooked mode on the controlling tty
func resetTerminalMode() {
	// /dev/tty works even if stdin is redirected
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	fd := int(tty.Fd())
	if t, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
		t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		t.Iflag |= unix.ICRNL
		t.Oflag |= unix.OPOST
		_ = unix.IoctlSetTermios(fd, ioctlWriteTermios, t)
	}
}
