package terminal

import (
	"testing"
	"time"
)

// steppedClock is a manually advanced time source
type steppedClock struct {
	t time.Time
}

func (c *steppedClock) now() time.Time { return c.t }

func (c *steppedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestInput() (*Input, *fakeBackend, *steppedClock) {
	fb := newFakeBackend(80, 24)
	in := NewInput(fb)
	clk := &steppedClock{t: time.Unix(1000, 0)}
	in.now = clk.now
	return in, fb, clk
}

func TestInputPopKeyEmpty(t *testing.T) {
	in, _, _ := newTestInput()
	if in.KeyPressed() {
		t.Error("fresh input reports a key")
	}
	if ev := in.PopKey(); ev.Key != KeyNone {
		t.Errorf("PopKey on empty queue = %+v", ev)
	}
}

func TestInputFIFO(t *testing.T) {
	in, fb, _ := newTestInput()
	fb.feed("ab\x1b[A\r")
	if err := in.Poll(); err != nil {
		t.Fatal(err)
	}

	want := []Key{KeyRune, KeyRune, KeyUp, KeyEnter}
	for i, k := range want {
		ev := in.PopKey()
		if ev.Key != k {
			t.Errorf("event %d = %v, want %v", i, ev.Key, k)
		}
	}
	if in.KeyPressed() {
		t.Error("queue not drained")
	}
}

func TestInputEscapeTimeout(t *testing.T) {
	in, fb, clk := newTestInput()
	fb.feed("\x1b")
	if err := in.Poll(); err != nil {
		t.Fatal(err)
	}
	if in.KeyPressed() {
		t.Fatal("ESC resolved before timeout")
	}

	clk.advance(escapeTimeout / 2)
	_ = in.Poll()
	if in.KeyPressed() {
		t.Fatal("ESC resolved before timeout elapsed")
	}

	clk.advance(escapeTimeout)
	_ = in.Poll()
	if ev := in.PopKey(); ev.Key != KeyEscape {
		t.Errorf("after timeout got %+v, want Escape", ev)
	}
}

func TestInputEscapeCompletedAcrossPolls(t *testing.T) {
	in, fb, _ := newTestInput()
	fb.feed("\x1b[")
	_ = in.Poll()
	fb.feed("B")
	_ = in.Poll()
	if ev := in.PopKey(); ev.Key != KeyDown {
		t.Errorf("got %+v, want Down", ev)
	}
}

func TestInputMouseEdges(t *testing.T) {
	in, fb, _ := newTestInput()
	m := in.MouseState()

	fb.feed("\x1b[<0;5;10M")
	_ = in.Poll()
	if !m.Pressed(MouseLeft) || !m.Down(MouseLeft) {
		t.Fatal("left press not recorded")
	}
	if m.X != 4 || m.Y != 9 {
		t.Errorf("position = (%d,%d), want (4,9)", m.X, m.Y)
	}

	_ = in.Poll()
	if m.Pressed(MouseLeft) || !m.Down(MouseLeft) {
		t.Error("pressed edge should clear on the next poll while the button stays down")
	}

	fb.feed("\x1b[<0;5;10m")
	_ = in.Poll()
	if !m.Released(MouseLeft) || m.Down(MouseLeft) {
		t.Error("left release not recorded")
	}
	if m.X != 4 || m.Y != 9 {
		t.Errorf("release position = (%d,%d), want (4,9)", m.X, m.Y)
	}
	if in.KeyPressed() {
		t.Error("mouse input reached the key queue")
	}
}

func TestInputDiscard(t *testing.T) {
	in, fb, _ := newTestInput()
	fb.feed("abc\x1b[")
	_ = in.Poll()
	in.Discard()
	if in.KeyPressed() || in.dec.Pending() {
		t.Error("Discard kept input")
	}
}
