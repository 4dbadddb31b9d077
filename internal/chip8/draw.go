package chip8

// draw blits a sprite of height rows onto the display. The start position
// wraps onto the screen, the sprite itself is clipped at the right and bottom
// edges. Sprite bits toggle pixels, VF is set if any pixel is turned off.
func (v *VM) draw(ins Drw) {
	startX := int(v.registers[ins.X&0x0F] % DisplayWidth)
	startY := int(v.registers[ins.Y&0x0F] % DisplayHeight)
	v.registers[FlagRegister] = 0

	for row := range int(ins.Height) {
		y := startY + row
		if y >= DisplayHeight {
			break
		}

		address := wrapAddress(v.index + uint16(row))
		sprite := v.memory[address]

		for bit := range 8 {
			x := startX + bit
			if x >= DisplayWidth {
				break
			}
			if sprite&(0x80>>bit) == 0 {
				continue
			}

			if v.display[y][x] {
				v.display[y][x] = false
				v.registers[FlagRegister] = 1
			} else {
				v.display[y][x] = true
			}
		}
	}
}
