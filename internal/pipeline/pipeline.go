// Package pipeline orchestrates the interpreter workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/driver"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates loading a program and running it.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new interpreter pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete pipeline: it loads the program file, creates the
// virtual machine and drives it until it stops.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (driver.Result, error) {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return driver.Result{}, fmt.Errorf("loading program: %w", err)
	}

	return p.ExecuteWithProgram(ctx, opts, program)
}

// ExecuteWithProgram runs the pipeline with a program that is already in memory.
// This is useful for testing and programmatic usage. A terminal run, which is
// any run without opts.Headless, leaves its keyboard goroutine reading
// os.Stdin after returning, until stdin is closed or the process exits.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, opts options.Program, program []byte) (driver.Result, error) {
	vm, err := config.CreateVM(p.logger, opts, program)
	if err != nil {
		return driver.Result{}, err
	}

	p.logger.Info("Running CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.Stringer("period", vm.Speed()))

	cfg := config.CreateDriverConfig(opts)

	var res driver.Result
	if opts.Headless {
		res, err = driver.New(p.logger, vm, driver.Headless{}, driver.Headless{}, cfg).Run(ctx)
	} else {
		res, err = p.runTerminal(ctx, vm, cfg)
	}

	p.logger.Info("Program stopped",
		log.String("reason", string(res.Reason)),
		log.Hex("pc", res.PC),
		log.Int("steps", int(res.Steps)))
	if err != nil {
		return res, fmt.Errorf("running program: %w", err)
	}
	return res, nil
}

// runTerminal runs the VM with the terminal as display and keypad. The
// terminal state is restored before returning.
func (p *Pipeline) runTerminal(ctx context.Context, vm *chip8.VM, cfg driver.Config) (driver.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term, err := terminal.Open(os.Stdin)
	if err != nil {
		return driver.Result{}, fmt.Errorf("opening terminal: %w", err)
	}
	defer func() { _ = term.Close() }()

	renderer := terminal.NewRenderer(os.Stdout)
	if err := renderer.Start(); err != nil {
		return driver.Result{}, err
	}
	defer func() { _ = renderer.Stop() }()

	// the reader goroutine stays blocked on stdin until the process exits
	keyboard := terminal.NewKeyboard(cancel)
	go func() {
		if err := keyboard.Listen(os.Stdin); err != nil {
			p.logger.Error("Reading keyboard input failed", log.Err(err))
			cancel()
		}
	}()

	return driver.New(p.logger, vm, renderer, keyboard, cfg).Run(ctx)
}
