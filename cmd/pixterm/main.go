// Command pixterm exercises the terminal engine: an input and drawing viewer,
// a palette swatch and a line editor prompt.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/pixterm/terminal"
)

var version = "dev"

func main() {
	// Panic Recovery: ensure the terminal is usable again even if a demo crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n in case the tty is still raw
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPIXTERM CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
