// SPDX-License-Identifier: MIT
// Package: induction/induct
//
// unfold.go - the Iterative and Recursive walks from a base level to a target level.

package induct

// Unfold returns the collection at level to, given base as the collection at
// level from and step as the rule building level k from level k-1.
//
// Both strategies call step exactly once per level k in (from, to], in
// ascending k, so the output and its order do not depend on the strategy.
// When to == from the base slice itself is returned.
//
// Errors: ErrNilStep, ErrLevelRange, ErrOptionViolation.
func Unfold[T any](base []T, from, to int, step Step[T], opts ...Option) ([]T, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}

	return Run(o, base, from, to, step)
}

// Run is Unfold with already-resolved Options. Generator packages resolve
// once, check the size bound, then call Run.
func Run[T any](o Options, base []T, from, to int, step Step[T]) ([]T, error) {
	if step == nil {
		return nil, ErrNilStep
	}
	if to < from {
		return nil, ErrLevelRange
	}
	if o.OnLevel == nil {
		o.OnLevel = func(int, int) {}
	}

	if o.Strategy == Recursive {
		return recurse(base, from, to, step, o.OnLevel), nil
	}

	return iterate(base, from, to, step, o.OnLevel), nil
}

// iterate carries the previous level forward in a loop.
func iterate[T any](base []T, from, to int, step Step[T], onLevel func(int, int)) []T {
	cur := base
	onLevel(from, len(cur))
	for k := from + 1; k <= to; k++ {
		cur = step(k, cur)
		onLevel(k, len(cur))
	}

	return cur
}

// recurse builds level to from recurse(to-1).
func recurse[T any](base []T, from, to int, step Step[T], onLevel func(int, int)) []T {
	if to == from {
		onLevel(from, len(base))
		return base
	}
	prev := recurse(base, from, to-1, step, onLevel)
	cur := step(to, prev)
	onLevel(to, len(cur))

	return cur
}
