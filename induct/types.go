// SPDX-License-Identifier: MIT
// Package: induction/induct
//
// types.go - strategies, options and sentinel errors for the induction driver.
//
// Contract:
//   - Options are resolved once per call; invalid options are recorded and
//     surfaced as ErrOptionViolation by Resolve, never applied partially.

package induct

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for the induction driver.
var (
	// ErrNilStep is returned when Unfold receives a nil Step.
	ErrNilStep = errors.New("induct: step function is nil")

	// ErrLevelRange is returned when the target level precedes the base level.
	ErrLevelRange = errors.New("induct: target level precedes base level")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("induct: invalid option supplied")

	// ErrSizeLimit is returned when a result would exceed the WithMaxSize bound.
	ErrSizeLimit = errors.New("induct: result exceeds size limit")
)

// Strategy selects how Unfold walks from the base level to the target level.
//
//   - Iterative: loop over levels, keeping only the previous level.
//   - Recursive: recurse down to the base level, build on the way back up.
type Strategy int

const (
	// Iterative builds levels in a loop; recursion depth is constant.
	Iterative Strategy = iota

	// Recursive mirrors the inductive definition; recursion depth is to-from.
	Recursive
)

// String returns the lower-case name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Iterative:
		return "iterative"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "iterative" or "recursive" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "iterative":
		return Iterative, nil
	case "recursive":
		return Recursive, nil
	default:
		return Iterative, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Step builds the collection for level from the collection for level-1.
// It must not retain or mutate prev; the returned slice becomes owned by the driver.
type Step[T any] func(level int, prev []T) []T

// Option configures a single Unfold or generator call.
type Option func(*Options)

// Options holds the resolved configuration of a call.
type Options struct {
	// Strategy picks the Iterative or Recursive walk.
	Strategy Strategy

	// OnLevel is called once per level, in ascending order, with the level
	// number and the size of its collection.
	OnLevel func(level, size int)

	// MaxSize, if > 0, caps the number of results a generator may return.
	// Zero means no limit.
	MaxSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Iterative strategy, a no-op
// OnLevel hook and no size limit.
func DefaultOptions() Options {
	return Options{
		Strategy: Iterative,
		OnLevel:  func(int, int) {},
		MaxSize:  0,
	}
}

// WithStrategy selects the walk strategy.
// Unknown values are recorded as ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Iterative, Recursive:
			o.Strategy = s
		default:
			o.fail(fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s)))
		}
	}
}

// WithOnLevel registers a hook run after each level is built.
func WithOnLevel(fn func(level, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithMaxSize bounds the result size.
//
//	n > 0: results larger than n fail with ErrSizeLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxSize cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxSize = n
	}
}

// fail records err unless an earlier option already failed.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Resolve applies opts over DefaultOptions and reports the first invalid one.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// CheckSize reports ErrSizeLimit when want exceeds the MaxSize bound.
// A nil want is treated as zero.
func (o Options) CheckSize(want *big.Int) error {
	if o.MaxSize == 0 || want == nil {
		return nil
	}
	if want.Cmp(big.NewInt(int64(o.MaxSize))) > 0 {
		return fmt.Errorf("%w: %s results requested, limit is %d", ErrSizeLimit, want.String(), o.MaxSize)
	}

	return nil
}
