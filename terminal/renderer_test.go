package terminal

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderHIScenario(t *testing.T) {
	b := NewBuffer(80, 24)
	b.WriteText(0, 0, "HI", NewRGB(255, 255, 255), NewRGB(0, 0, 0))

	var w writeCounter
	r := NewRenderer(ColorModeTrueColor)
	if _, err := r.Render(&w, b); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "\x1b[1;1H\x1b[38;2;255;255;255m\x1b[48;2;0;0;0mH" +
		"\x1b[1;2H\x1b[38;2;255;255;255m\x1b[48;2;0;0;0mI" +
		"\x1b[0m"
	if got := w.String(); got != want {
		t.Errorf("output mismatch\n got: %q\nwant: %q", got, want)
	}
	if w.calls != 1 {
		t.Errorf("Write called %d times, want 1", w.calls)
	}
	if n := strings.Count(w.String(), "\x1b[0m"); n != 1 {
		t.Errorf("%d resets, want 1", n)
	}
}

func TestRenderIdempotent(t *testing.T) {
	b := NewBuffer(10, 3)
	b.WriteText(1, 1, "abc", Index(9), DefaultBg)

	var w writeCounter
	r := NewRenderer(ColorMode256)
	if _, err := r.Render(&w, b); err != nil {
		t.Fatal(err)
	}
	first := w.calls

	n, err := r.Render(&w, b)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || w.calls != first {
		t.Errorf("second render wrote %d bytes in %d extra calls", n, w.calls-first)
	}
}

func TestRenderColorEncoding(t *testing.T) {
	tests := []struct {
		name   string
		mode   ColorMode
		fg, bg Color
		want   string
	}{
		{"truecolor rgb", ColorModeTrueColor, NewRGB(1, 2, 3), NewRGB(4, 5, 6), "\x1b[38;2;1;2;3m\x1b[48;2;4;5;6m"},
		{"quantized rgb", ColorMode256, NewRGB(255, 0, 0), NewRGB(0, 0, 255), "\x1b[38;5;196m\x1b[48;5;21m"},
		{"index", ColorModeTrueColor, Index(42), Index(7), "\x1b[38;5;42m\x1b[48;5;7m"},
		{"defaults", ColorMode256, DefaultFg, DefaultBg, "\x1b[39m\x1b[49m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(2, 2)
			b.Write(1, 1, 'x', tt.fg, tt.bg)
			got := string(NewRenderer(tt.mode).Frame(b))
			want := "\x1b[2;2H" + tt.want + "x\x1b[0m"
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		})
	}
}

func TestRenderAfterResizeRepaintsAll(t *testing.T) {
	b := NewBuffer(3, 2)
	r := NewRenderer(ColorMode256)
	var w writeCounter
	if _, err := r.Render(&w, b); err != nil {
		t.Fatal(err)
	}
	if w.calls != 0 {
		t.Fatalf("fresh buffer rendered %q", w.String())
	}

	b.Resize(4, 2)
	if _, err := r.Render(&w, b); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(w.String(), "\x1b[39m\x1b[49m "); n != 8 {
		t.Errorf("repainted %d cells, want 8", n)
	}
	if !strings.HasPrefix(w.String(), "\x1b[1;1H") || !strings.Contains(w.String(), "\x1b[2;4H") {
		t.Errorf("unexpected positions in %q", w.String())
	}
}

func TestRenderInvalidate(t *testing.T) {
	b := NewBuffer(2, 1)
	b.Invalidate()
	frame := string(NewRenderer(ColorMode256).Frame(b))
	if strings.Count(frame, "H") != 2 {
		t.Errorf("invalidate should repaint both cells, got %q", frame)
	}
}

func TestRenderWriteErrorRetries(t *testing.T) {
	b := NewBuffer(4, 1)
	b.WriteText(0, 0, "ok", DefaultFg, Index(1))
	r := NewRenderer(ColorMode256)

	bad := writeCounter{err: errFakeWrite}
	if _, err := r.Render(&bad, b); !errors.Is(err, errFakeWrite) {
		t.Fatalf("err = %v, want write failure", err)
	}

	var good writeCounter
	if _, err := r.Render(&good, b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(good.String(), "o") || !strings.Contains(good.String(), "k") {
		t.Errorf("failed frame was not retried: %q", good.String())
	}
}

func TestRenderColumnOrder(t *testing.T) {
	b := NewBuffer(3, 2)
	b.Write(2, 1, 'c', Index(1), Index(2))
	b.Write(0, 1, 'a', Index(1), Index(2))
	b.Write(1, 0, 'b', Index(1), Index(2))
	out := string(NewRenderer(ColorMode256).Frame(b))

	ib := strings.Index(out, "\x1b[1;2H")
	ia := strings.Index(out, "\x1b[2;1H")
	ic := strings.Index(out, "\x1b[2;3H")
	if ib < 0 || ia < 0 || ic < 0 || !(ib < ia && ia < ic) {
		t.Errorf("cells out of row-major order: %q", out)
	}
}
