// SPDX-License-Identifier: MIT

// Package cli parses command-line arguments for the induct binary, validates
// them and maps failures to process exit codes.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/induction/induct"
)

// Commands understood by the binary.
const (
	CommandCheck   = "check"
	CommandBinary  = "binary"
	CommandDigits  = "digits"
	CommandPermute = "permute"
)

// ExitError carries the exit code the process should terminate with.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated result of Parse.
type Config struct {
	Command string

	// Checks names the self-checks to run; empty means all.
	Checks []string

	// N is the length (binary) or digit count (digits).
	N int

	// K is the digit-sum filter; only meaningful when HasK is set.
	K    int
	HasK bool

	// Zeros switches digits to the zero-permitting enumeration.
	Zeros bool

	// Word is the input of the permute command.
	Word string

	Strategy  induct.Strategy
	MaxSize   int
	LogFormat string
	LogLevel  string
}

// NewConfig validates c and returns a copy of it.
func NewConfig(c Config) (*Config, error) {
	switch c.Command {
	case CommandCheck, CommandBinary, CommandDigits, CommandPermute:
	default:
		return nil, fmt.Errorf("unknown command %q", c.Command)
	}
	if c.N < 0 {
		return nil, errors.New("invalid -n: must be non-negative")
	}
	if c.HasK && c.K < 0 {
		return nil, errors.New("invalid -sum: must be non-negative")
	}
	if c.Command == CommandPermute && c.Word == "" {
		return nil, errors.New("invalid -word: must not be empty")
	}
	if c.MaxSize < 0 {
		return nil, errors.New("invalid -max-size: must be non-negative")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	cfg := c

	return &cfg, nil
}

// Usage writes the top-level help text.
func Usage(output io.Writer) {
	fmt.Fprint(output, `
induct - inductive enumerators over combinatorial spaces.

Usage:
  induct check   [options] [binary|digits|permute]...
  induct binary  [options] -n N
  induct digits  [options] -n N [-sum K] [-zeros]
  induct permute [options] -word WORD

Run "induct <command> -h" for the options of a command.
`)
}

// Parse processes command-line arguments. It returns the validated Config, a
// boolean telling the caller to exit cleanly (help was requested), or an
// *ExitError with code 2 for usage errors.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	if len(args) == 0 {
		Usage(output)
		return nil, true, nil
	}
	command := args[0]
	switch command {
	case "-h", "-help", "--help", "help":
		Usage(output)
		return nil, true, nil
	case CommandCheck, CommandBinary, CommandDigits, CommandPermute:
	default:
		Usage(output)
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", command)}
	}

	flagSet := flag.NewFlagSet("induct "+command, flag.ContinueOnError)
	flagSet.SetOutput(output)

	strategyFlag := flagSet.String("strategy", "iterative", "Walk strategy. Options: 'iterative' or 'recursive'.")
	maxSizeFlag := flagSet.Int("max-size", 0, "Refuse to build results larger than this. 0 is unlimited.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	var nFlag, kFlag *int
	var zerosFlag *bool
	var wordFlag *string
	switch command {
	case CommandBinary:
		nFlag = flagSet.Int("n", 0, "Length of the binary strings.")
	case CommandDigits:
		nFlag = flagSet.Int("n", 1, "Number of digits.")
		kFlag = flagSet.Int("sum", -1, "Keep only numbers whose digits sum to this value. -1 keeps all.")
		zerosFlag = flagSet.Bool("zeros", false, "Allow zero digits.")
	case CommandPermute:
		wordFlag = flagSet.String("word", "", "Word whose permutations are listed.")
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "command", command)

	strategy, err := induct.ParseStrategy(strings.ToLower(*strategyFlag))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid strategy: must be 'iterative' or 'recursive'"}
	}

	c := Config{
		Command:   command,
		Strategy:  strategy,
		MaxSize:   *maxSizeFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	}
	switch command {
	case CommandCheck:
		c.Checks = flagSet.Args()
	case CommandBinary:
		c.N = *nFlag
	case CommandDigits:
		c.N = *nFlag
		c.Zeros = *zerosFlag
		if *kFlag != -1 {
			c.K, c.HasK = *kFlag, true
		}
	case CommandPermute:
		c.Word = *wordFlag
	}
	if command != CommandCheck && flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	config, err := NewConfig(c)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// Options converts the generator-related settings into induct options.
func (c *Config) Options() []induct.Option {
	return []induct.Option{
		induct.WithStrategy(c.Strategy),
		induct.WithMaxSize(c.MaxSize),
	}
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
