// SPDX-License-Identifier: MIT

// Package digits enumerates n-digit decimal numbers by induction on the digit
// count and filters them by digit sum.
//
// 🚀 What
//
//   - NoZeros(n): every n-digit number whose digits are all in 1..9 (9ⁿ values),
//     strictly increasing.
//   - FilterByDigitSum(nums, k): keep, in order, the numbers whose digits sum to k.
//   - SummingTo(n, k): NoZeros followed by FilterByDigitSum.
//   - All(n) / AllSummingTo(n, k): the same for every n-digit number, zeros
//     allowed (10^(n-1) ≤ v < 10^n). A zero digit never changes a digit sum.
//
// ⚙️ How NoZeros is built
//
//	Base case (n=1): [1 2 … 9].
//	Step: let P be the (n-1)-digit result. For d = 1..9 (ascending), for p in P
//	(in order), emit d·10^(n-1) + p. d is the leading digit, so iterating it
//	outermost over an already increasing P keeps the level increasing with no
//	sort step.
//
// Edge cases
//
//   - n = 0 yields an empty result; there are no 0-digit numbers.
//   - k = 0 with n ≥ 1 yields an empty NoZeros-based result; so does k > 9n.
//     Both fall out of the filter, neither is special-cased.
//
// Complexity
//
//   - NoZeros: O(9ⁿ) time and memory.
//   - FilterByDigitSum: O(len(nums)·digits) time.
//
// Errors
//
//   - ErrNegativeDigits  if n < 0.
//   - ErrTooManyDigits   if n > MaxDigits (values would overflow int).
//   - ErrNegativeSum     if k < 0 in SummingTo / AllSummingTo.
//   - induct.ErrOptionViolation, induct.ErrSizeLimit from options.
package digits
