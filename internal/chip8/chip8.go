package chip8

import "errors"

// CHIP-8 machine layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where programs are loaded and
	// where execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, which DRW uses as collision flag.
	FlagRegister = 0xF

	// StackLimit is the maximum call stack depth.
	StackLimit = 16

	// KeyCount is the number of keys of the hexadecimal keypad.
	KeyCount = 16

	// MaxFrequency is the highest step frequency, it results in a clock
	// period of one nanosecond.
	MaxFrequency = 1_000_000_000

	// opcodeSize is the size of an instruction in bytes.
	opcodeSize = 2
)

var (
	// ErrProgramTooLarge is returned when a program image does not fit
	// into the program area of memory.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrUnknownOpcode is returned when a fetched word matches no
	// implemented instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrInvalidFrequency is returned when a VM is created with a step
	// frequency of zero or above MaxFrequency.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrStackOverflow is returned when pushing onto a full call stack.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when popping from an empty call stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// wrapAddress wraps an address into the addressable memory range.
func wrapAddress(address uint16) uint16 {
	return address % MemorySize
}
