package terminal

import (
	"context"
	"time"
)

// lineIdleSleep is the pause between polls that produced no key
const lineIdleSleep = 16 * time.Millisecond

// LineSource is the input half of a Console
type LineSource interface {
	Update() error
	KeyPressed() bool
	PopKey() Event
}

// LineChangeFunc observes the edit buffer after every key.
// It is called once before the first key with Event{Key: KeyNone}.
type LineChangeFunc func(buf []rune, cursor int, key Event)

// ReadLine edits a single line until Enter (text, true) or Escape (false).
// It returns false as well when ctx is cancelled or input fails.
func ReadLine(ctx context.Context, src LineSource, initial string, onChange LineChangeFunc) (string, bool) {
	buf := []rune(initial)
	cursor := len(buf)

	if onChange != nil {
		onChange(buf, cursor, Event{Key: KeyNone})
	}

	idle := time.NewTimer(lineIdleSleep)
	defer idle.Stop()

	for {
		if ctx.Err() != nil {
			return "", false
		}
		if err := src.Update(); err != nil {
			return "", false
		}

		if !src.KeyPressed() {
			idle.Reset(lineIdleSleep)
			select {
			case <-ctx.Done():
				return "", false
			case <-idle.C:
			}
			continue
		}

		for src.KeyPressed() {
			ev := src.PopKey()
			switch ev.Key {
			case KeyEnter:
				return string(buf), true
			case KeyEscape:
				return "", false
			case KeyBackspace:
				if cursor > 0 {
					buf = append(buf[:cursor-1], buf[cursor:]...)
					cursor--
				}
			case KeyDelete:
				if cursor < len(buf) {
					buf = append(buf[:cursor], buf[cursor+1:]...)
				}
			case KeyLeft:
				if cursor > 0 {
					cursor--
				}
			case KeyRight:
				if cursor < len(buf) {
					cursor++
				}
			case KeyHome:
				cursor = 0
			case KeyEnd:
				cursor = len(buf)
			default:
				if ev.IsPrintable() {
					buf = append(buf, 0)
					copy(buf[cursor+1:], buf[cursor:])
					buf[cursor] = ev.Rune
					cursor++
				}
			}

			if onChange != nil {
				onChange(buf, cursor, ev)
			}
		}
	}
}
