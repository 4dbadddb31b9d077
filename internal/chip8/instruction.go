package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// nopName is the mnemonic of the all zero word, which the opcode table
// does not list separately.
const nopName = "nop"

// Instruction is a decoded instruction. The set of implementations is closed,
// every instruction type of this package has to be handled by the VM.
type Instruction interface {
	fmt.Stringer

	instruction()
}

// Compile-time checks to ensure all instructions implement Instruction.
var (
	_ Instruction = Nop{}
	_ Instruction = Cls{}
	_ Instruction = Jp{}
	_ Instruction = Ld{}
	_ Instruction = Add{}
	_ Instruction = Ldi{}
	_ Instruction = Drw{}
)

// Nop does not change any state.
type Nop struct{}

// Cls clears the display.
type Cls struct{}

// Jp sets the program counter to an absolute address.
type Jp struct {
	Address uint16
}

// Ld loads an immediate value into a register.
type Ld struct {
	Register byte
	Value    byte
}

// Add adds an immediate value to a register, wrapping on overflow without
// setting the flag register.
type Add struct {
	Register byte
	Value    byte
}

// Ldi loads an address into the index register.
type Ldi struct {
	Address uint16
}

// Drw draws a sprite of Height rows read from the index register address at
// the position stored in registers X and Y.
type Drw struct {
	X      byte
	Y      byte
	Height byte
}

func (Nop) instruction() {}
func (Cls) instruction() {}
func (Jp) instruction() {}
func (Ld) instruction() {}
func (Add) instruction() {}
func (Ldi) instruction() {}
func (Drw) instruction() {}

func (Nop) String() string {
	return nopName
}

func (Cls) String() string {
	return chip8.Cls.Name
}

func (i Jp) String() string {
	return fmt.Sprintf("%s $%03X", chip8.Jp.Name, i.Address)
}

func (i Ld) String() string {
	return fmt.Sprintf("%s V%X, $%02X", chip8.Ld.Name, i.Register, i.Value)
}

func (i Add) String() string {
	return fmt.Sprintf("%s V%X, $%02X", chip8.Add.Name, i.Register, i.Value)
}

func (i Ldi) String() string {
	return fmt.Sprintf("%s I, $%03X", chip8.Ld.Name, i.Address)
}

func (i Drw) String() string {
	return fmt.Sprintf("%s V%X, V%X, $%X", chip8.Drw.Name, i.X, i.Y, i.Height)
}
