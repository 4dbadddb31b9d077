package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// DecodeError is returned for a word that does not decode to an implemented
// instruction.
type DecodeError struct {
	Opcode  Opcode
	Address uint16 // memory address the opcode was fetched from

	// Mnemonic is set if the word is a valid CHIP-8 instruction that is not
	// implemented by this VM.
	Mnemonic string
}

func (e *DecodeError) Error() string {
	if e.Mnemonic != "" {
		return fmt.Sprintf("unimplemented instruction '%s' (opcode %s) at address $%03X",
			e.Mnemonic, e.Opcode, e.Address)
	}
	return fmt.Sprintf("invalid opcode %s at address $%03X", e.Opcode, e.Address)
}

// Unwrap makes the error match ErrUnknownOpcode.
func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// Decode turns an opcode into an instruction. Patterns are matched in a fixed
// priority order, every word that matches none of them returns a
// *DecodeError.
func Decode(op Opcode) (Instruction, error) {
	switch n1, n2, n3, n4 := op.Nibbles(); {
	case n1 == 0 && n2 == 0 && n3 == 0 && n4 == 0:
		return Nop{}, nil
	case n1 == 0 && n2 == 0 && n3 == 0xE && n4 == 0:
		return Cls{}, nil
	case n1 == 1:
		return Jp{Address: nibblesToAddress(n2, n3, n4)}, nil
	case n1 == 6:
		return Ld{Register: n2, Value: nibblesToByte(n3, n4)}, nil
	case n1 == 7:
		return Add{Register: n2, Value: nibblesToByte(n3, n4)}, nil
	case n1 == 0xA:
		return Ldi{Address: nibblesToAddress(n2, n3, n4)}, nil
	case n1 == 0xD:
		return Drw{X: n2, Y: n3, Height: n4}, nil
	}

	return nil, &DecodeError{
		Opcode:   op,
		Mnemonic: lookupMnemonic(op),
	}
}

// lookupMnemonic returns the name of the CHIP-8 instruction that the opcode
// encodes, or an empty string for words that are not valid instructions.
func lookupMnemonic(op Opcode) string {
	w := uint16(op)
	firstNibble := (w & 0xF000) >> 12
	var opcode chip8.Opcode
	for _, candidate := range chip8.Opcodes[int(firstNibble)] {
		if candidate.Info.Mask&w == candidate.Info.Value {
			opcode = candidate
			break
		}
	}
	if opcode.Instruction == nil {
		return ""
	}
	return opcode.Instruction.Name
}
