// SPDX-License-Identifier: MIT

// Package selfcheck asserts the documented properties of each generator
// against its public API at run time. It backs the "induct check" command.
package selfcheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/induction/induct"
	"github.com/katalvlaran/induction/internal/ctxlog"
)

var (
	// ErrCheckFailed wraps the first property violation found by a check.
	ErrCheckFailed = errors.New("selfcheck: check failed")

	// ErrUnknownCheck is returned for a check name that is not registered.
	ErrUnknownCheck = errors.New("selfcheck: unknown check")
)

// Check verifies one generator. opts are forwarded to every generator call.
type Check func(ctx context.Context, opts ...induct.Option) error

// order fixes the run order when no names are given.
var order = []string{"binary", "digits", "permute"}

var registry = map[string]Check{
	"binary":  checkBinary,
	"digits":  checkDigits,
	"permute": checkPermute,
}

// Names returns the registered check names in run order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Run executes the named checks in the given order, or all of them when names
// is empty. It stops at the first failure and returns it.
func Run(ctx context.Context, names []string, opts ...induct.Option) error {
	if len(names) == 0 {
		names = order
	}
	for _, name := range names {
		if _, ok := registry[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCheck, name)
		}
	}

	logger := ctxlog.FromContext(ctx)
	for _, name := range names {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		logger.Debug("Running check.", "check", name)
		if err := registry[name](ctx, opts...); err != nil {
			logger.Error("Check failed.", "check", name, "error", err)
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("All checks passed.", "check", name)
	}

	return nil
}

// expectEqual reports a cmp diff between want and got as ErrCheckFailed.
func expectEqual(what string, want, got any) error {
	if diff := cmp.Diff(want, got); diff != "" {
		return fmt.Errorf("%w: %s (-want +got):\n%s", ErrCheckFailed, what, diff)
	}
	return nil
}

// expect reports ErrCheckFailed with a formatted message when ok is false.
func expect(ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrCheckFailed, fmt.Sprintf(format, args...))
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
