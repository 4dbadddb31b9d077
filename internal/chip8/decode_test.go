package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		opcode   Opcode
		expected Instruction
	}{
		{"nop", 0x0000, Nop{}},
		{"cls", 0x00E0, Cls{}},
		{"jump", 0x1ABC, Jp{Address: 0xABC}},
		{"jump zero", 0x1000, Jp{Address: 0x000}},
		{"load register", 0x6342, Ld{Register: 3, Value: 0x42}},
		{"load VF", 0x6FFF, Ld{Register: 0xF, Value: 0xFF}},
		{"add register", 0x7A01, Add{Register: 0xA, Value: 0x01}},
		{"load index", 0xA123, Ldi{Address: 0x123}},
		{"draw", 0xD12F, Drw{X: 1, Y: 2, Height: 0xF}},
		{"draw zero height", 0xDEF0, Drw{X: 0xE, Y: 0xF, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Decode(tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins)
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	tests := []struct {
		name   string
		opcode Opcode
	}{
		{"return", 0x00EE},
		{"cls with extra bit", 0x00E1},
		{"sys call", 0x0123},
		{"call", 0x2ABC},
		{"skip equal", 0x3A12},
		{"alu", 0x8AB4},
		{"jump offset", 0xB200},
		{"random", 0xC0FF},
		{"key skip", 0xE19E},
		{"timers", 0xF015},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Decode(tt.opcode)
			assert.Nil(t, ins)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownOpcode))

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.opcode, decodeErr.Opcode)
		})
	}
}

func TestDecode_UnimplementedMnemonic(t *testing.T) {
	_, err := Decode(0x2ABC)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, chip8.Call.Name, decodeErr.Mnemonic)
	assert.Contains(t, err.Error(), chip8.Call.Name)
}

func TestLookupMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		opcode   Opcode
		expected string
	}{
		{"return", 0x00EE, chip8.Ret.Name},
		{"call", 0x2ABC, chip8.Call.Name},
		{"skip if pressed", 0xE19E, chip8.Skp.Name},
		{"skip if not pressed", 0xE1A1, chip8.Sknp.Name},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lookupMnemonic(tt.opcode))
		})
	}
}

func TestLookupMnemonic_FirstMatch(t *testing.T) {
	for w := range 0x10000 {
		var first chip8.Opcode
		for _, candidate := range chip8.Opcodes[w>>12] {
			if candidate.Info.Mask&uint16(w) == candidate.Info.Value {
				first = candidate
				break
			}
		}

		expected := ""
		if first.Instruction != nil {
			expected = first.Instruction.Name
		}
		assert.Equal(t, expected, lookupMnemonic(Opcode(w)))
	}
}

func TestDecode_Total(t *testing.T) {
	var decoded int
	for w := range 0x10000 {
		op := Opcode(w)
		ins, err := Decode(op)
		if err != nil {
			assert.Nil(t, ins)
			assert.True(t, errors.Is(err, ErrUnknownOpcode))
			continue
		}

		assert.NotNil(t, ins)
		again, err := Decode(op)
		assert.NoError(t, err)
		assert.Equal(t, ins, again)
		decoded++
	}

	// nop and cls plus five instructions with 12 operand bits
	assert.Equal(t, 2+5*0x1000, decoded)
}

func TestDecodeError_Error(t *testing.T) {
	err := &DecodeError{Opcode: 0x5AB1, Address: 0x204}
	assert.Equal(t, "invalid opcode $5AB1 at address $204", err.Error())

	err = &DecodeError{Opcode: 0x2ABC, Address: 0x200, Mnemonic: "call"}
	assert.Equal(t, "unimplemented instruction 'call' (opcode $2ABC) at address $200", err.Error())
}
