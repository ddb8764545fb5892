package terminal

import (
	"bytes"
	"errors"
)

var errFakeWrite = errors.New("write failed")

// fakeBackend records every call and serves scripted input chunks
type fakeBackend struct {
	initErr error
	inits   int
	finis   int

	width, height int
	sizeErr       error

	input  [][]byte
	writes [][]byte
	out    bytes.Buffer

	writeErr error
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{width: w, height: h}
}

func (f *fakeBackend) Init() error {
	f.inits++
	return f.initErr
}

func (f *fakeBackend) Fini() { f.finis++ }

func (f *fakeBackend) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return f.width, f.height, nil
}

func (f *fakeBackend) Read(p []byte) (int, error) {
	if len(f.input) == 0 {
		return 0, nil
	}
	n := copy(p, f.input[0])
	if n == len(f.input[0]) {
		f.input = f.input[1:]
	} else {
		f.input[0] = f.input[0][n:]
	}
	return n, nil
}

func (f *fakeBackend) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.writes = append(f.writes, bytes.Clone(p))
	f.out.Write(p)
	return len(p), nil
}

// feed queues bytes for the next Read calls
func (f *fakeBackend) feed(s string) {
	f.input = append(f.input, []byte(s))
}

// recordingSink collects decoder output
type recordingSink struct {
	keys  []Event
	mouse []mouseReport
}

type mouseReport struct {
	code, x, y int
	final      byte
}

func (r *recordingSink) Key(ev Event) { r.keys = append(r.keys, ev) }

func (r *recordingSink) MouseReport(code, x, y int, final byte) {
	r.mouse = append(r.mouse, mouseReport{code, x, y, final})
}

// writeCounter counts Write calls
type writeCounter struct {
	bytes.Buffer
	calls int
	err   error
}

func (w *writeCounter) Write(p []byte) (int, error) {
	w.calls++
	if w.err != nil {
		return 0, w.err
	}
	return w.Buffer.Write(p)
}
