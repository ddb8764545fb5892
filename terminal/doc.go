// Package terminal turns a character-cell terminal into a retained-mode display surface.
//
// Features:
//   - True color (24-bit) and 256-color palette output
//   - Two-grid screen buffer with cell-level diffing against the last rendered frame
//   - Raw stdin decoding of keys, CSI/SS3 sequences and SGR mouse reports
//   - Raw-mode session with bit-for-bit restoration on release, Close or SIGINT/SIGTERM
//   - Double-width "pixel" addressing for roughly square cells
//
// The package emits ANSI/VT100 sequences directly and bypasses terminfo.
// Everything is single-owner: a Console is driven from one goroutine running
// poll → mutate → render → sleep. The only asynchronous path is the signal
// watcher, which calls the lock-free Session.Release.
package terminal
