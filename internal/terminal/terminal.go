// Package terminal implements a text terminal host for the interpreter.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"golang.org/x/term"
)

// Minimum terminal size required to show the full display, the renderer
// packs two pixel rows into one text line.
const (
	MinColumns = chip8.DisplayWidth
	MinLines   = chip8.DisplayHeight / 2
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal is an interactive terminal switched to raw mode.
type Terminal struct {
	fd       int
	oldState *term.State
}

// Open checks that the file is a terminal large enough to show the display
// and puts it into raw mode. Close restores the previous mode.
func Open(file *os.File) (*Terminal, error) {
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	if width < MinColumns || height < MinLines {
		return nil, fmt.Errorf("terminal size %dx%d is smaller than the required %dx%d",
			width, height, MinColumns, MinLines)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting raw mode: %w", err)
	}

	return &Terminal{
		fd:       fd,
		oldState: oldState,
	}, nil
}

// Close restores the terminal mode that was active before Open.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.oldState); err != nil {
		return fmt.Errorf("restoring terminal state: %w", err)
	}
	t.oldState = nil
	return nil
}
