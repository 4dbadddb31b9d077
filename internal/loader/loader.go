// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Loader handles loading CHIP-8 program files from disk.
type Loader struct {
	maxSize int
}

// New creates a new program loader that accepts programs fitting into the
// program area of the VM memory.
func New() *Loader {
	return &Loader{
		maxSize: chip8.MaxProgramSize,
	}
}

// Load reads the program image from the given file. Files that are larger
// than the program area return an error wrapping chip8.ErrProgramTooLarge.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := l.LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading file %s: %w", path, err)
	}
	return data, nil
}

// LoadFromReader reads the program image from a reader.
// This is useful for testing and programmatic usage where the program does not come from a file.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized input without
	// reading all of it
	data, err := io.ReadAll(io.LimitReader(reader, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) > l.maxSize {
		return nil, fmt.Errorf("%w: program exceeds the available %d bytes",
			chip8.ErrProgramTooLarge, l.maxSize)
	}
	return data, nil
}
