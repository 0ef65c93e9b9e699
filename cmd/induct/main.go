// SPDX-License-Identifier: MIT

// Command induct runs the self-checks of the inductive enumerators and lists
// their output.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/induction/binary"
	"github.com/katalvlaran/induction/digits"
	"github.com/katalvlaran/induction/induct"
	"github.com/katalvlaran/induction/internal/cli"
	"github.com/katalvlaran/induction/internal/ctxlog"
	"github.com/katalvlaran/induction/internal/selfcheck"
	"github.com/katalvlaran/induction/permute"
)

// main is the entrypoint for the induct binary.
func main() {
	// Minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command, writing results to outW
// and logs to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(errW, config)
	ctx = ctxlog.WithLogger(ctx, logger)
	opts := append(config.Options(), induct.WithOnLevel(func(level, size int) {
		logger.Debug("Level built.", "command", config.Command, "level", level, "size", size)
	}))

	switch config.Command {
	case cli.CommandCheck:
		if err = selfcheck.Run(ctx, config.Checks, opts...); err != nil {
			return &cli.ExitError{Code: 1, Message: err.Error()}
		}
		fmt.Fprintln(outW, "All checks passed.")
		return nil
	case cli.CommandBinary:
		strs, err := binary.Generate(config.N, opts...)
		if err != nil {
			return err
		}
		return printLines(outW, strs)
	case cli.CommandDigits:
		nums, err := listDigits(config, opts)
		if err != nil {
			return err
		}
		return printLines(outW, itoaAll(nums))
	case cli.CommandPermute:
		perms, err := permute.Strings(config.Word, opts...)
		if err != nil {
			return err
		}
		return printLines(outW, perms)
	}

	return fmt.Errorf("unhandled command %q", config.Command)
}

// listDigits picks the digits enumeration matching the -zeros and -sum flags.
func listDigits(config *cli.Config, opts []induct.Option) ([]int, error) {
	switch {
	case config.Zeros && config.HasK:
		return digits.AllSummingTo(config.N, config.K, opts...)
	case config.Zeros:
		return digits.All(config.N, opts...)
	case config.HasK:
		return digits.SummingTo(config.N, config.K, opts...)
	default:
		return digits.NoZeros(config.N, opts...)
	}
}

// newLogger builds the text or JSON slog logger described by config.
func newLogger(w io.Writer, config *cli.Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: config.SlogLevel()}
	if config.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// printLines writes one item per line followed by a blank line.
func printLines(w io.Writer, items []string) error {
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func itoaAll(nums []int) []string {
	out := make([]string, len(nums))
	for i, n := range nums {
		out[i] = strconv.Itoa(n)
	}
	return out
}
