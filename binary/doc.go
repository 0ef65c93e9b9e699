// SPDX-License-Identifier: MIT

// Package binary enumerates every binary string of a given length by induction
// on the length.
//
// What
//
//   - Generate(n) returns all 2ⁿ strings over {'0','1'} of length exactly n,
//     in lexicographic order. Leading zeros are part of the string.
//   - Count(n) returns 2ⁿ exactly, without enumerating.
//
// How
//
//	Base case (n=0): [""].
//	Step: for every string s of length n-1, in order, emit s+"0" then s+"1".
//	Because the previous level is already sorted, the new level is sorted too.
//
// Complexity
//
//   - Time:   O(n·2ⁿ)
//   - Memory: O(n·2ⁿ) for the result plus one previous level.
//
// Errors
//
//   - ErrNegativeLength  if n < 0.
//   - induct.ErrOptionViolation, induct.ErrSizeLimit from options.
package binary
