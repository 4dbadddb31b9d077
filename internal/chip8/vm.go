package chip8

import (
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// VM is a CHIP-8 virtual machine. It owns all emulated state and is not safe
// for concurrent use, a single host goroutine is expected to drive it.
type VM struct {
	logger *log.Logger

	memory    [MemorySize]byte
	registers [RegisterCount]byte
	index     uint16 // I register
	pc        uint16
	stack     stack

	delayTimer byte
	soundTimer byte

	display Display
	speed   time.Duration // clock period
}

// New returns a new VM that executes frequency instructions per second.
// All state is zeroed and the program counter points to ProgramStart.
func New(logger *log.Logger, frequency uint) (*VM, error) {
	if frequency == 0 || frequency > MaxFrequency {
		return nil, fmt.Errorf("%w: frequency %d outside of range 1-%d",
			ErrInvalidFrequency, frequency, MaxFrequency)
	}

	return &VM{
		logger: logger,
		pc:     ProgramStart,
		speed:  time.Second / time.Duration(frequency),
	}, nil
}

// Load copies the program image into memory at ProgramStart, zeroes the
// remaining memory and resets the program counter. A program that does not
// fit leaves the VM unchanged.
func (v *VM) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the available %d bytes",
			ErrProgramTooLarge, len(program), MaxProgramSize)
	}

	v.memory = [MemorySize]byte{}
	copy(v.memory[ProgramStart:], program)
	v.pc = ProgramStart

	v.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Hex("address", ProgramStart))
	return nil
}

// Step fetches, decodes and executes one instruction. It returns a copy of
// the display if the instruction can change it, nil otherwise. The keys are
// not read by any implemented instruction.
// A decode error is returned before any state is modified, the program
// counter keeps pointing at the offending opcode.
func (v *VM) Step(_ Keys) (*Display, error) {
	op := v.fetch()

	ins, err := Decode(op)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Address = v.pc
		}
		return nil, fmt.Errorf("decoding opcode: %w", err)
	}

	v.logger.Debug("Executing",
		log.Hex("pc", v.pc),
		log.Stringer("opcode", op),
		log.Stringer("instruction", ins))

	v.pc = wrapAddress(v.pc + opcodeSize)
	return v.execute(ins)
}

// SkipInstruction advances the program counter past the current instruction
// without executing it.
func (v *VM) SkipInstruction() {
	v.pc = wrapAddress(v.pc + opcodeSize)
}

// TickTimers decrements the delay and sound timers that are not zero. The
// host calls it at 60 Hz, independent of the instruction clock.
func (v *VM) TickTimers() {
	if v.delayTimer > 0 {
		v.delayTimer--
	}
	if v.soundTimer > 0 {
		v.soundTimer--
	}
}

// Speed returns the clock period that the host should call Step with.
func (v *VM) Speed() time.Duration {
	return v.speed
}

// BuzzerActive returns whether the buzzer should sound.
func (v *VM) BuzzerActive() bool {
	return v.soundTimer > 0
}

// PC returns the program counter.
func (v *VM) PC() uint16 {
	return v.pc
}

// Index returns the index register I.
func (v *VM) Index() uint16 {
	return v.index
}

// Register returns the value of register Vx. The index is masked to 4 bits.
func (v *VM) Register(x byte) byte {
	return v.registers[x&0x0F]
}

// Registers returns a copy of all general purpose registers.
func (v *VM) Registers() [RegisterCount]byte {
	return v.registers
}

// DelayTimer returns the delay timer value.
func (v *VM) DelayTimer() byte {
	return v.delayTimer
}

// SoundTimer returns the sound timer value.
func (v *VM) SoundTimer() byte {
	return v.soundTimer
}

// StackDepth returns the number of return addresses on the call stack.
func (v *VM) StackDepth() int {
	return v.stack.depth
}

// Display returns a copy of the current display.
func (v *VM) Display() *Display {
	d := v.display
	return &d
}

// fetch reads the opcode at the program counter.
func (v *VM) fetch() Opcode {
	msb := v.memory[wrapAddress(v.pc)]
	lsb := v.memory[wrapAddress(v.pc+1)]
	return NewOpcode(msb, lsb)
}

func (v *VM) execute(ins Instruction) (*Display, error) {
	switch ins := ins.(type) {
	case Nop:

	case Cls:
		v.display = Display{}
		return v.Display(), nil

	case Jp:
		v.pc = wrapAddress(ins.Address)

	case Ld:
		v.registers[ins.Register&0x0F] = ins.Value

	case Add:
		v.registers[ins.Register&0x0F] += ins.Value

	case Ldi:
		v.index = wrapAddress(ins.Address)

	case Drw:
		v.draw(ins)
		return v.Display(), nil

	default:
		return nil, fmt.Errorf("unsupported instruction type %T", ins)
	}

	return nil, nil
}
