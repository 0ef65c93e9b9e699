// SPDX-License-Identifier: MIT

// Package induct provides the shared driver behind every enumerator in this
// module: build the answer for level k strictly from the answer for level k-1,
// starting at a fixed base level.
//
// What
//
//   - Unfold takes a base collection (level "from"), a Step function and a
//     target level "to", and returns the collection at level "to".
//   - Two strategies produce byte-for-byte identical output:
//   - Iterative (default): a loop carrying the previous level as explicit
//     state; no call-stack growth.
//   - Recursive: the natural inductive formulation, recursion depth to-from.
//   - A per-level hook (WithOnLevel) reports the size of every level as it is
//     produced, base level included.
//   - A size bound (WithMaxSize) is resolved here and enforced by the
//     generator packages before any allocation happens.
//
// Why
//
//	Binary strings, no-zero numbers and permutations differ only in their base
//	case and their step. Keeping the driver in one place keeps the ordering
//	guarantees in one place too.
//
// Complexity
//
//   - Time:   Σ cost(step(k)) for k in (from, to]
//   - Memory: two adjacent levels at a time (Iterative), the whole chain of
//     pending frames plus two levels (Recursive).
//
// Usage
//
//	double := func(k int, prev []int) []int {
//		out := make([]int, 0, 2*len(prev))
//		for _, v := range prev {
//			out = append(out, 2*v, 2*v+1)
//		}
//		return out
//	}
//	level3, err := induct.Unfold([]int{1}, 0, 3, double,
//		induct.WithStrategy(induct.Recursive),
//		induct.WithOnLevel(func(level, size int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNilStep          if step is nil.
//   - ErrLevelRange       if to < from.
//   - ErrOptionViolation  if an Option is invalid (unknown strategy, negative size bound).
//   - ErrSizeLimit        returned by generators when the predicted result
//     exceeds the WithMaxSize bound.
package induct
