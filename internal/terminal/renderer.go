package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// ANSI escape sequences.
const (
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	bell        = "\a"
)

// Renderer draws the display as text, packing two pixel rows into one line
// using half block characters.
type Renderer struct {
	w *bufio.Writer
}

// NewRenderer returns a new renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		w: bufio.NewWriter(w),
	}
}

// Start clears the screen and hides the cursor.
func (r *Renderer) Start() error {
	_, _ = r.w.WriteString(clearScreen + hideCursor)
	return r.flush()
}

// Stop shows the cursor again.
func (r *Renderer) Stop() error {
	_, _ = r.w.WriteString(showCursor)
	return r.flush()
}

// Render draws the display starting at the top left corner of the terminal.
func (r *Renderer) Render(display *chip8.Display) error {
	_, _ = r.w.WriteString(cursorHome)

	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			_, _ = r.w.WriteRune(halfBlock(display[y][x], display[y+1][x]))
		}
		// raw mode does not translate line feeds
		_, _ = r.w.WriteString("\r\n")
	}

	return r.flush()
}

// Buzzer rings the terminal bell when the buzzer becomes active.
func (r *Renderer) Buzzer(active bool) {
	if !active {
		return
	}
	_, _ = r.w.WriteString(bell)
	_ = r.w.Flush()
}

func (r *Renderer) flush() error {
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}

// halfBlock returns the character showing a top and a bottom pixel.
func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
