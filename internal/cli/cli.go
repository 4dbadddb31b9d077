// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	var errorPolicy string
	readOptionFlags(flags, &opts, &errorPolicy)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts, errorPolicy); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && len(arg) > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program, errorPolicy string) error {
	policy, err := options.ParseErrorPolicy(errorPolicy)
	if err != nil {
		return err
	}
	opts.ErrorPolicy = policy

	if opts.Frequency == 0 || opts.Frequency > chip8.MaxFrequency {
		return fmt.Errorf("frequency must be between 1 and %d", chip8.MaxFrequency)
	}
	return nil
}

// breakpointsValue parses a comma separated list of hex addresses.
type breakpointsValue struct {
	addresses *[]uint16
}

func (b breakpointsValue) String() string {
	if b.addresses == nil {
		return ""
	}
	s := make([]string, 0, len(*b.addresses))
	for _, address := range *b.addresses {
		s = append(s, fmt.Sprintf("%03X", address))
	}
	return strings.Join(s, ",")
}

func (b breakpointsValue) Set(value string) error {
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		item = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(item), "0x"), "$")
		address, err := strconv.ParseUint(item, 16, 16)
		if err != nil {
			return fmt.Errorf("invalid breakpoint address '%s': %w", item, err)
		}
		if address >= chip8.MemorySize {
			return fmt.Errorf("breakpoint address $%X outside of memory", address)
		}
		*b.addresses = append(*b.addresses, uint16(address))
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, errorPolicy *string) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.UintVar(&opts.Frequency, "f", options.DefaultFrequency, "instructions executed per second")
	flags.Var(breakpointsValue{addresses: &opts.Breakpoints}, "break", "comma separated hex addresses to stop at, for example 200,2a4")
	flags.Uint64Var(&opts.MaxSteps, "steps", 0, "stop after executing this many instructions (0: unlimited)")
	flags.StringVar(errorPolicy, "on-error", string(options.Halt), "how to handle unknown opcodes (halt/skip)")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal input and output")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
