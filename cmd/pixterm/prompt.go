package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/pixterm/terminal"
)

var errCancelled = errors.New("prompt cancelled")

func newPromptCmd(a *app) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "prompt [initial text]",
		Short: "Edit one line and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := a.runPrompt(cmd, label, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "Enter text:", "prompt label")
	return cmd
}

func (a *app) runPrompt(cmd *cobra.Command, label, initial string) (string, error) {
	con, err := terminal.Open(a.consoleOptions()...)
	if err != nil {
		return "", fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer con.Close()

	onChange := func(buf []rune, cursor int, _ terminal.Event) {
		drawPrompt(con.Buffer(), label, buf)
		if err := con.Render(); err != nil {
			log.Printf("prompt render: %v", err)
		}
		_ = con.MoveCursor(promptX+cursor, promptY)
		_ = con.ShowCursor(true)
	}

	line, ok := terminal.ReadLine(cmd.Context(), con, initial, onChange)
	if !ok {
		return "", errCancelled
	}
	return line, nil
}

// Edit field origin
const (
	promptX = 2
	promptY = 3
)

func drawPrompt(b *terminal.Buffer, label string, text []rune) {
	b.Clear(terminal.DefaultBg)
	b.WriteBox(0, 0, b.Width()-1, promptY+1, terminal.LineSingle, terminal.Gray.Color(), terminal.Transparent)
	b.WriteText(promptX, 1, label, terminal.Yellow.Color(), terminal.Transparent)
	b.WriteText(promptX, promptY, string(text), terminal.White.Color(), terminal.Transparent)
	b.WriteAligned(terminal.AlignRight, b.Height()-1, "enter accept  esc cancel", terminal.Gray.Color(), terminal.Transparent)
}
