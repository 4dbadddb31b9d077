// Package driver implements the host loop that runs an interpreter at its
// clock period.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// TimerFrequency is the rate in Hz at which the delay and sound timers are
// decremented.
const TimerFrequency = 60

// Interpreter is a virtual machine that is driven by the host.
type Interpreter interface {
	Step(keys chip8.Keys) (*chip8.Display, error)
	SkipInstruction()
	TickTimers()
	Speed() time.Duration
	BuzzerActive() bool
	PC() uint16
}

// Renderer presents the interpreter output to the user.
type Renderer interface {
	Render(display *chip8.Display) error
	Buzzer(active bool)
}

// KeySource provides the current state of the keypad.
type KeySource interface {
	Keys() chip8.Keys
}

// Compile-time check to ensure the VM implements Interpreter.
var _ Interpreter = (*chip8.VM)(nil)

// Config defines options to control the driver.
type Config struct {
	Breakpoints set.Set[uint16]     // addresses to stop at before executing them
	MaxSteps    uint64              // stop after this many steps, 0 for no limit
	ErrorPolicy options.ErrorPolicy // handling of failing steps, defaults to halt
}

// StopReason describes why a run ended.
type StopReason string

// Possible stop reasons.
const (
	Cancelled  StopReason = "cancelled"
	Breakpoint StopReason = "breakpoint"
	StepLimit  StopReason = "step limit"
	Failed     StopReason = "error"
)

// Result contains statistics of a run.
type Result struct {
	Reason  StopReason
	Steps   uint64 // successfully executed instructions
	Frames  uint64 // rendered display updates
	Skipped uint64 // failing instructions skipped by the skip policy
	PC      uint16 // program counter when the run ended
}

// Driver runs an interpreter, paces its steps and forwards its output.
type Driver struct {
	logger   *log.Logger
	vm       Interpreter
	renderer Renderer
	keys     KeySource
	cfg      Config

	buzzer bool
}

// New returns a new driver for the given interpreter.
func New(logger *log.Logger, vm Interpreter, renderer Renderer, keys KeySource, cfg Config) *Driver {
	if cfg.ErrorPolicy == "" {
		cfg.ErrorPolicy = options.Halt
	}

	return &Driver{
		logger:   logger,
		vm:       vm,
		renderer: renderer,
		keys:     keys,
		cfg:      cfg,
	}
}

// Run steps the interpreter at its clock period and ticks its timers at
// TimerFrequency until the context is cancelled, a breakpoint or the step
// limit is reached, or a step fails under the halt policy.
// Timer ticks and steps are never interleaved.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	var res Result

	period := d.vm.Speed()
	d.logger.Debug("Starting driver",
		log.Stringer("period", period),
		log.String("error_policy", string(d.cfg.ErrorPolicy)))

	stepTicker := time.NewTicker(period)
	defer stepTicker.Stop()
	timerTicker := time.NewTicker(time.Second / TimerFrequency)
	defer timerTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return d.finish(res, Cancelled), nil

		case <-timerTicker.C:
			d.vm.TickTimers()
			d.updateBuzzer()

		case <-stepTicker.C:
			if reason, stop := d.shouldStop(res); stop {
				return d.finish(res, reason), nil
			}
			if err := d.step(&res); err != nil {
				return d.finish(res, Failed), err
			}
		}
	}
}

// shouldStop checks the stop conditions before the next step.
func (d *Driver) shouldStop(res Result) (StopReason, bool) {
	if d.cfg.MaxSteps > 0 && res.Steps+res.Skipped >= d.cfg.MaxSteps {
		return StepLimit, true
	}

	if d.cfg.Breakpoints.Contains(d.vm.PC()) {
		d.logger.Info("Breakpoint reached", log.Hex("address", d.vm.PC()))
		return Breakpoint, true
	}

	return "", false
}

func (d *Driver) step(res *Result) error {
	pc := d.vm.PC()

	display, err := d.vm.Step(d.keys.Keys())
	if err != nil {
		if d.cfg.ErrorPolicy != options.Skip {
			return fmt.Errorf("executing instruction at $%03X: %w", pc, err)
		}

		d.logger.Warn("Skipping instruction",
			log.Hex("address", pc),
			log.Err(err))
		d.vm.SkipInstruction()
		res.Skipped++
		return nil
	}

	res.Steps++
	if display == nil {
		return nil
	}

	if err := d.renderer.Render(display); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	res.Frames++
	return nil
}

// updateBuzzer forwards buzzer state changes to the renderer.
func (d *Driver) updateBuzzer() {
	active := d.vm.BuzzerActive()
	if active == d.buzzer {
		return
	}
	d.buzzer = active
	d.renderer.Buzzer(active)
}

func (d *Driver) finish(res Result, reason StopReason) Result {
	res.Reason = reason
	res.PC = d.vm.PC()

	d.logger.Debug("Driver stopped",
		log.String("reason", string(reason)),
		log.Int("steps", int(res.Steps)),
		log.Int("frames", int(res.Frames)),
		log.Hex("pc", res.PC))
	return res
}
