//go:build linux || darwin

package terminal

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func TestTTYBackendRestoresTermios(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	fd := int(tty.Fd())
	before, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatalf("read termios: %v", err)
	}

	s := NewSession(NewTTYBackend(tty, tty), true, nil)
	if err := s.Acquire(); err != nil {
		t.Fatalf("acquire: %v", err)
	}

	raw, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatal(err)
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON) != 0 {
		t.Error("raw mode still echoes or is canonical")
	}
	if raw.Lflag&unix.ISIG == 0 {
		t.Error("ISIG cleared without RawSignals")
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 0 {
		t.Errorf("VMIN/VTIME = %d/%d, want 0/0", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}

	s.Release()

	after, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatal(err)
	}
	if *after != *before {
		t.Errorf("termios not restored\nbefore: %+v\n after: %+v", *before, *after)
	}
}

func TestTTYBackendRawSignals(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	b := NewTTYBackend(tty, tty)
	b.RawSignals = true
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	defer b.Fini()

	raw, err := unix.IoctlGetTermios(int(tty.Fd()), ioctlReadTermios)
	if err != nil {
		t.Fatal(err)
	}
	if raw.Lflag&unix.ISIG != 0 {
		t.Error("ISIG kept with RawSignals")
	}
}

func TestTTYBackendSizeAndRead(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatal(err)
	}

	b := NewTTYBackend(tty, tty)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	defer b.Fini()

	w, h, err := b.Size()
	if err != nil || w != 80 || h != 24 {
		t.Fatalf("Size() = %d, %d, %v", w, h, err)
	}

	buf := make([]byte, 16)
	if n, err := b.Read(buf); n != 0 || err != nil {
		t.Fatalf("idle read = %d, %v", n, err)
	}

	if _, err := ptmx.Write([]byte("q\r")); err != nil {
		t.Fatal(err)
	}
	var got []byte
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		n, err := b.Read(buf)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, buf[:n]...)
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
	if string(got) != "q\r" {
		t.Errorf("read %q, want %q (ICRNL should be off)", got, "q\r")
	}
}

func TestTTYBackendNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if err := NewTTYBackend(r, w).Init(); err != ErrNotTerminal {
		t.Errorf("Init on a pipe = %v, want ErrNotTerminal", err)
	}
}
