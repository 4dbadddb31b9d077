package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func headlessOptions(input string) options.Program {
	return options.Program{
		Parameters: options.Parameters{Input: input},
		Flags: options.Flags{
			Frequency:   100_000,
			MaxSteps:    8,
			ErrorPolicy: options.Halt,
			Headless:    true,
		},
	}
}

func TestNew(t *testing.T) {
	p := New(log.NewTestLogger(t))

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestExecute(t *testing.T) {
	program := []byte{
		0x00, 0xE0, // cls
		0xA2, 0x0A, // ld I, $20A
		0xD0, 0x11, // drw V0, V1, $1
		0x70, 0x08, // add V0, $08
		0x12, 0x04, // jp $204
		0xF0, // sprite
	}
	path := filepath.Join(t.TempDir(), "program.ch8")
	assert.NoError(t, os.WriteFile(path, program, 0o600))

	res, err := New(log.NewTestLogger(t)).Execute(context.Background(), headlessOptions(path))
	assert.NoError(t, err)
	assert.Equal(t, driver.StepLimit, res.Reason)
	assert.Equal(t, uint64(8), res.Steps)
	assert.Equal(t, uint64(3), res.Frames)
}

func TestExecute_Errors(t *testing.T) {
	p := New(log.NewTestLogger(t))

	_, err := p.Execute(context.Background(), headlessOptions("/nonexistent/program.ch8"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = p.ExecuteWithProgram(context.Background(), headlessOptions(""), []byte{0xF0, 0x0A})
	assert.True(t, errors.Is(err, chip8.ErrUnknownOpcode))

	_, err = p.ExecuteWithProgram(context.Background(), headlessOptions(""), make([]byte, chip8.MaxProgramSize+1))
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
}
