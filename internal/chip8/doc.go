// Package chip8 implements a CHIP-8 virtual machine core.
//
// # Memory Layout
//
// The machine has 4KB of byte addressable memory (0x000-0xFFF):
//   - 0x000-0x1FF: Interpreter area, left zeroed
//   - ProgramStart-0xFFF: Program image and data area
//
// Every memory access wraps modulo MemorySize, so no address computed by an
// instruction can index outside of memory.
//
// # Instruction Set
//
// All instructions are 2 bytes, stored most significant byte first. The
// decoder implements the following subset and reports every other word as an
// error wrapping ErrUnknownOpcode:
//   - 0000: NOP
//   - 00E0: CLS
//   - 1NNN: JP addr
//   - 6XKK: LD Vx, byte
//   - 7XKK: ADD Vx, byte
//   - ANNN: LD I, addr
//   - DXYN: DRW Vx, Vy, nibble
//
// # Stepping
//
// The VM never sleeps or spawns goroutines. A host calls Step once per clock
// period as reported by Speed, and calls TickTimers at 60 Hz between steps:
//
//	vm, err := chip8.New(logger, 700)
//	if err != nil {
//		return err
//	}
//	if err := vm.Load(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//	display, err := vm.Step(keys)
//	if err != nil {
//		return fmt.Errorf("stepping: %w", err)
//	}
//	if display != nil {
//		render(display)
//	}
package chip8
