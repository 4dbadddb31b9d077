package driver

import "github.com/retroenv/retrochip8/internal/chip8"

// Headless is a renderer and key source for runs without a terminal. It
// discards all output and reports no pressed keys.
type Headless struct{}

// Render discards the display.
func (Headless) Render(*chip8.Display) error {
	return nil
}

// Buzzer ignores the buzzer state.
func (Headless) Buzzer(bool) {}

// Keys returns a keypad state without pressed keys.
func (Headless) Keys() chip8.Keys {
	return chip8.Keys{}
}
