// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateVM creates a virtual machine running at the configured frequency
// and loads the program into it.
func CreateVM(logger *log.Logger, opts options.Program, program []byte) (*chip8.VM, error) {
	vm, err := chip8.New(logger, opts.Frequency)
	if err != nil {
		return nil, fmt.Errorf("creating virtual machine: %w", err)
	}
	if err := vm.Load(program); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return vm, nil
}

// CreateDriverConfig converts the program options to a driver configuration.
func CreateDriverConfig(opts options.Program) driver.Config {
	breakpoints := set.New[uint16]()
	for _, address := range opts.Breakpoints {
		breakpoints.Add(address)
	}

	return driver.Config{
		Breakpoints: breakpoints,
		MaxSteps:    opts.MaxSteps,
		ErrorPolicy: opts.ErrorPolicy,
	}
}
