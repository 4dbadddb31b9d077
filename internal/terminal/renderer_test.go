package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestRenderer_Render(t *testing.T) {
	var display chip8.Display
	display[0][0] = true
	display[1][0] = true
	display[0][1] = true
	display[3][2] = true

	var buf bytes.Buffer
	r := NewRenderer(&buf)
	assert.NoError(t, r.Render(&display))

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, cursorHome))

	lines := strings.Split(strings.TrimPrefix(output, cursorHome), "\r\n")
	assert.Len(t, lines, MinLines+1) // trailing empty element after the last line break
	assert.Equal(t, "", lines[MinLines])

	assert.Equal(t, "█▀"+strings.Repeat(" ", chip8.DisplayWidth-2), lines[0])
	assert.Equal(t, "  ▄"+strings.Repeat(" ", chip8.DisplayWidth-3), lines[1])
	for _, line := range lines[2:MinLines] {
		assert.Equal(t, strings.Repeat(" ", chip8.DisplayWidth), line)
	}
}

func TestRenderer_StartStop(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	assert.NoError(t, r.Start())
	assert.Equal(t, clearScreen+hideCursor, buf.String())

	buf.Reset()
	assert.NoError(t, r.Stop())
	assert.Equal(t, showCursor, buf.String())
}

func TestRenderer_Buzzer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Buzzer(false)
	assert.Equal(t, "", buf.String())

	r.Buzzer(true)
	assert.Equal(t, bell, buf.String())
}

func TestHalfBlock(t *testing.T) {
	tests := []struct {
		top      bool
		bottom   bool
		expected rune
	}{
		{false, false, ' '},
		{true, false, '▀'},
		{false, true, '▄'},
		{true, true, '█'},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, halfBlock(tt.top, tt.bottom))
	}
}
