package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

var osExit = os.Exit

// signalWatch hands interrupt delivery to a goroutine that releases the session
type signalWatch struct {
	ch   chan os.Signal
	stop chan struct{}
	done chan struct{}
}

// WatchSignals releases the session and exits with 128+signo on SIGINT or SIGTERM
func (s *Session) WatchSignals() {
	if s.watch != nil {
		return
	}
	w := &signalWatch{
		ch:   make(chan os.Signal, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	signal.Notify(w.ch, os.Interrupt, syscall.SIGTERM)
	s.watch = w

	go func() {
		defer close(w.done)
		select {
		case sig := <-w.ch:
			s.handleSignal(sig)
		case <-w.stop:
		}
	}()
}

// StopSignals unregisters the handlers and waits for the watcher to exit
func (s *Session) StopSignals() {
	w := s.watch
	if w == nil {
		return
	}
	s.watch = nil
	signal.Stop(w.ch)
	close(w.stop)
	<-w.done
}

func (s *Session) handleSignal(sig os.Signal) {
	s.Release()
	s.logger.Printf("received %v, terminal restored", sig)
	s.exit(exitCode(sig))
}

// exitCode follows the shell convention 128+signo
func exitCode(sig os.Signal) int {
	if n, ok := sig.(syscall.Signal); ok {
		return 128 + int(n)
	}
	return 1
}
