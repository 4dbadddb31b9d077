package chip8

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is a monochrome frame buffer addressed [row][column], row 0 is the
// top row. A pixel is on when set to true.
type Display [DisplayHeight][DisplayWidth]bool

// Keys contains the pressed state of the 16 keys of the hexadecimal keypad.
type Keys [KeyCount]bool

// Pixel returns whether the pixel at the given column and row is on.
// Coordinates outside of the display are reported as off.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d[y][x]
}

// PixelsOn returns the number of pixels that are on.
func (d *Display) PixelsOn() int {
	var count int
	for _, row := range d {
		for _, pixel := range row {
			if pixel {
				count++
			}
		}
	}
	return count
}

// String returns the display as text, one line per row using '#' for pixels
// that are on and '.' for pixels that are off.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow(DisplayHeight * (DisplayWidth + 1))
	for _, row := range d {
		for _, pixel := range row {
			if pixel {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
