package terminal

import (
	"io"
	"log"
	"sync/atomic"
)

// Session lifecycle states
const (
	sessionIdle int32 = iota
	sessionAcquiring
	sessionActive
	sessionReleasing
)

// Session owns the transition between cooked and raw terminal modes.
// Acquire and Release are idempotent; Release is safe from the signal watcher.
type Session struct {
	backend Backend
	mouse   bool
	logger  *log.Logger

	state atomic.Int32

	// exit terminates the process after a signal; replaced in tests
	exit  func(code int)
	watch *signalWatch
}

// NewSession wraps a backend; mouse enables SGR mouse tracking while active
func NewSession(backend Backend, mouse bool, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		backend: backend,
		mouse:   mouse,
		logger:  logger,
		exit:    osExit,
	}
}

// Active reports whether the terminal is in raw mode
func (s *Session) Active() bool {
	return s.state.Load() == sessionActive
}

// Acquire saves the original mode, enters raw mode and enables mouse tracking.
// Calling it while active is a no-op.
func (s *Session) Acquire() error {
	if !s.state.CompareAndSwap(sessionIdle, sessionAcquiring) {
		return nil
	}
	if err := s.backend.Init(); err != nil {
		s.state.Store(sessionIdle)
		return err
	}
	if s.mouse {
		if _, err := s.backend.Write(mouseOnSeq); err != nil {
			s.backend.Fini()
			s.state.Store(sessionIdle)
			return err
		}
	}
	s.state.Store(sessionActive)
	s.logger.Printf("session acquired (mouse=%v)", s.mouse)
	return nil
}

// Release disables mouse tracking, resets attributes, shows the cursor and
// restores the saved mode. It writes only preallocated sequences.
func (s *Session) Release() {
	if !s.state.CompareAndSwap(sessionActive, sessionReleasing) {
		return
	}
	if s.mouse {
		_, _ = s.backend.Write(mouseOffSeq)
	}
	_, _ = s.backend.Write(restoreSeq)
	s.backend.Fini()
	s.state.Store(sessionIdle)
}
