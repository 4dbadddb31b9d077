package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewOpcode(t *testing.T) {
	op := NewOpcode(0xD1, 0x25)
	assert.Equal(t, Opcode(0xD125), op)
}

func TestOpcode_Nibbles(t *testing.T) {
	n1, n2, n3, n4 := Opcode(0xABCD).Nibbles()
	assert.Equal(t, byte(0xA), n1)
	assert.Equal(t, byte(0xB), n2)
	assert.Equal(t, byte(0xC), n3)
	assert.Equal(t, byte(0xD), n4)
}

func TestOpcode_String(t *testing.T) {
	assert.Equal(t, "$00E0", Opcode(0x00E0).String())
}

func TestNibbleHelpers(t *testing.T) {
	assert.Equal(t, byte(0xA), highNibble(0xAB))
	assert.Equal(t, byte(0xB), lowNibble(0xAB))
	assert.Equal(t, uint16(0xABC), nibblesToAddress(0xA, 0xB, 0xC))
	assert.Equal(t, byte(0xAB), nibblesToByte(0xA, 0xB))
}
