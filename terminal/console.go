package terminal

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// options collects Console settings
type options struct {
	colorMode  ColorMode
	colorSet   bool
	mouse      bool
	signals    bool
	rawSignals bool
	logger     *log.Logger
}

// Option configures a Console
type Option func(*options)

// WithColorMode overrides color capability detection
func WithColorMode(m ColorMode) Option {
	return func(o *options) {
		o.colorMode = m
		o.colorSet = true
	}
}

// WithMouse enables or disables SGR mouse tracking (default on)
func WithMouse(on bool) Option {
	return func(o *options) { o.mouse = on }
}

// WithSignals installs the SIGINT/SIGTERM watcher (default on)
func WithSignals(on bool) Option {
	return func(o *options) { o.signals = on }
}

// WithRawSignals delivers Ctrl-C and Ctrl-Z as keys instead of signals.
// Only honoured by the default backend created in Open.
func WithRawSignals(on bool) Option {
	return func(o *options) { o.rawSignals = on }
}

// WithLogger sets the lifecycle logger; the default discards
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{mouse: true, signals: true}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.colorSet {
		o.colorMode = DetectColorMode()
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}
	return o
}

// Console is the single owner of a raw-mode terminal:
// session, screen buffer, renderer and input.
type Console struct {
	backend  Backend
	session  *Session
	buf      *Buffer
	renderer *Renderer
	input    *Input
	logger   *log.Logger

	scratch []byte
}

// Open takes over the process terminal
func Open(opts ...Option) (*Console, error) {
	o := buildOptions(opts)
	return newConsole(newBackend(backendConfig{rawSignals: o.rawSignals}), o)
}

// NewConsole takes over the terminal behind backend
func NewConsole(backend Backend, opts ...Option) (*Console, error) {
	return newConsole(backend, buildOptions(opts))
}

func newConsole(backend Backend, o options) (*Console, error) {
	session := NewSession(backend, o.mouse, o.logger)
	if err := session.Acquire(); err != nil {
		return nil, fmt.Errorf("acquire terminal: %w", err)
	}

	w, h, err := backend.Size()
	if err != nil {
		session.Release()
		if errors.Is(err, ErrNoSize) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrNoSize, err)
	}

	// A cleared screen matches the fresh buffer's shadow
	if _, err := backend.Write(concat(csiSGR0, csiClear, csiCursorHide)); err != nil {
		session.Release()
		return nil, fmt.Errorf("clear screen: %w", err)
	}

	c := &Console{
		backend:  backend,
		session:  session,
		buf:      NewBuffer(w, h),
		renderer: NewRenderer(o.colorMode),
		input:    NewInput(backend),
		logger:   o.logger,
		scratch:  make([]byte, 0, 32),
	}
	if o.signals {
		session.WatchSignals()
	}
	c.logger.Printf("console opened %dx%d color=%s", w, h, o.colorMode)
	return c, nil
}

// Close releases the terminal; calling it twice is harmless
func (c *Console) Close() error {
	c.session.StopSignals()
	c.session.Release()
	c.logger.Printf("console closed")
	return nil
}

// Buffer exposes the screen buffer for drawing
func (c *Console) Buffer() *Buffer { return c.buf }

// Session exposes the raw-mode session
func (c *Console) Session() *Session { return c.session }

// ColorMode returns the color capability the renderer encodes for
func (c *Console) ColorMode() ColorMode { return c.renderer.ColorMode() }

// Width returns the logical width
func (c *Console) Width() int { return c.buf.Width() }

// Height returns the number of rows
func (c *Console) Height() int { return c.buf.Height() }

// Size returns the logical dimensions
func (c *Console) Size() (width, height int) { return c.buf.Width(), c.buf.Height() }

// syncSize picks up a terminal resize; transient query failures keep the old size
func (c *Console) syncSize() {
	w, h, err := c.backend.Size()
	if err != nil {
		c.logger.Printf("size query failed, keeping %dx%d: %v", c.buf.width, c.buf.height, err)
		return
	}
	if w == c.buf.width && h == c.buf.height {
		return
	}
	c.logger.Printf("resize %dx%d -> %dx%d", c.buf.width, c.buf.height, w, h)
	c.buf.Resize(w, h)
}

// Clear resets the buffer to spaces over bg, following any resize first
func (c *Console) Clear(bg Color) {
	c.syncSize()
	c.buf.Clear(bg)
}

// Write writes one logical cell
func (c *Console) Write(x, y int, r rune, fg, bg Color) { c.buf.Write(x, y, r, fg, bg) }

// WriteText writes s from logical (x, y)
func (c *Console) WriteText(x, y int, s string, fg, bg Color) { c.buf.WriteText(x, y, s, fg, bg) }

// WriteAligned writes s on row y with the given alignment
func (c *Console) WriteAligned(align Alignment, y int, s string, fg, bg Color) {
	c.buf.WriteAligned(align, y, s, fg, bg)
}

// SetPixelMode toggles double-width addressing
func (c *Console) SetPixelMode(on bool) { c.buf.SetPixelMode(on) }

// PixelMode reports whether double-width addressing is active
func (c *Console) PixelMode() bool { return c.buf.PixelMode() }

// Render flushes changed cells to the terminal in one write
func (c *Console) Render() error {
	c.syncSize()
	_, err := c.renderer.Render(c.backend, c.buf)
	return err
}

// ShowCursor toggles cursor visibility
func (c *Console) ShowCursor(visible bool) error {
	seq := csiCursorHide
	if visible {
		seq = csiCursorShow
	}
	_, err := c.backend.Write(seq)
	return err
}

// MoveCursor places the hardware cursor at logical (x, y)
func (c *Console) MoveCursor(x, y int) error {
	if c.buf.pixelMode {
		x *= 2
	}
	c.scratch = appendCursorPos(c.scratch[:0], x, y)
	_, err := c.backend.Write(c.scratch)
	return err
}

// ResetTerminal resets attributes, shows the cursor and clears the screen.
// The next render repaints every cell.
func (c *Console) ResetTerminal() error {
	_, err := c.backend.Write(concat(csiSGR0, csiCursorShow, csiClear))
	c.buf.Invalidate()
	return err
}

// Update polls input once
func (c *Console) Update() error {
	return c.input.Poll()
}

// Input exposes the input poller
func (c *Console) Input() *Input { return c.input }

// KeyPressed reports whether a key event is queued
func (c *Console) KeyPressed() bool { return c.input.KeyPressed() }

// PopKey returns the oldest queued key, Event{Key: KeyNone} when empty
func (c *Console) PopKey() Event { return c.input.PopKey() }

// MouseX returns the pointer column in logical coordinates
func (c *Console) MouseX() int {
	x := c.input.mouse.X
	if c.buf.pixelMode {
		return x / 2
	}
	return x
}

// MouseY returns the pointer row
func (c *Console) MouseY() int { return c.input.mouse.Y }

// MouseDown reports whether btn is held
func (c *Console) MouseDown(btn MouseButton) bool { return c.input.mouse.Down(btn) }

// MousePressed reports whether btn went down during the last Update
func (c *Console) MousePressed(btn MouseButton) bool { return c.input.mouse.Pressed(btn) }

// MouseReleased reports whether btn went up during the last Update
func (c *Console) MouseReleased(btn MouseButton) bool { return c.input.mouse.Released(btn) }

// MouseInArea reports whether the pointer lies in the inclusive logical rectangle
func (c *Console) MouseInArea(x1, y1, x2, y2 int) bool {
	mx, my := c.MouseX(), c.MouseY()
	return mx >= x1 && mx <= x2 && my >= y1 && my <= y2
}

// MouseAt reports whether the pointer is exactly at logical (x, y)
func (c *Console) MouseAt(x, y int) bool {
	return c.MouseX() == x && c.MouseY() == y
}

// EmergencyReset attempts to restore terminal state after a crash
// It writes directly to the provided writer (usually os.Stdout)
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking
	w.Write(mouseOffSeq)

	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort
	resetTerminalMode()
}
