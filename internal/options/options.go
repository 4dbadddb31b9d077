// Package options contains the program options.
package options

import (
	"fmt"
	"strings"
)

// ErrorPolicy defines how the driver handles a failing step.
type ErrorPolicy string

// Supported error policies.
const (
	Halt ErrorPolicy = "halt" // stop running and return the error
	Skip ErrorPolicy = "skip" // log the error and continue after the failing opcode
)

// DefaultFrequency is the default number of instructions executed per second.
const DefaultFrequency = 700

// ParseErrorPolicy returns the error policy for the given name.
func ParseErrorPolicy(name string) (ErrorPolicy, error) {
	switch policy := ErrorPolicy(strings.ToLower(name)); policy {
	case Halt, Skip:
		return policy, nil
	default:
		return "", fmt.Errorf("unsupported error policy '%s'. Valid options: %s, %s", name, Halt, Skip)
	}
}

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	Frequency   uint        `flag:"f" usage:"instructions executed per second" default:"700"`
	Breakpoints []uint16    `flag:"break" usage:"comma separated hex addresses to stop at"`
	MaxSteps    uint64      `flag:"steps" usage:"stop after executing this many instructions (0: unlimited)"`
	ErrorPolicy ErrorPolicy `flag:"on-error" usage:"how to handle unknown opcodes: halt, skip" default:"halt"`
	Headless    bool        `flag:"headless" usage:"run without terminal input and output"`
	Debug       bool        `flag:"debug" usage:"enable debug logging"`
	Quiet       bool        `flag:"q" usage:"quiet mode"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}
