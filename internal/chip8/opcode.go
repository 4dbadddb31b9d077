package chip8

import "fmt"

// Opcode is a raw 16 bit instruction word as fetched from memory.
type Opcode uint16

// NewOpcode combines the two instruction bytes, most significant byte first.
func NewOpcode(msb, lsb byte) Opcode {
	return Opcode(uint16(msb)<<8 | uint16(lsb))
}

// Nibbles returns the 4 nibbles of the opcode from the most significant to
// the least significant one.
func (o Opcode) Nibbles() (byte, byte, byte, byte) {
	msb := byte(o >> 8)
	lsb := byte(o)
	return highNibble(msb), lowNibble(msb), highNibble(lsb), lowNibble(lsb)
}

// String returns the opcode formatted as 4 digit hex value.
func (o Opcode) String() string {
	return fmt.Sprintf("$%04X", uint16(o))
}

func highNibble(b byte) byte {
	return (b & 0xF0) >> 4
}

func lowNibble(b byte) byte {
	return b & 0x0F
}

// nibblesToAddress assembles a 12 bit address from 3 nibbles, left to right.
func nibblesToAddress(n1, n2, n3 byte) uint16 {
	return uint16(n1)<<8 | uint16(n2)<<4 | uint16(n3)
}

// nibblesToByte assembles an 8 bit immediate value from 2 nibbles.
func nibblesToByte(n1, n2 byte) byte {
	return n1<<4 | n2
}
