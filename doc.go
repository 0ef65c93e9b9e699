// SPDX-License-Identifier: MIT

// Package induction is a small family of combinatorial enumerators built by
// mathematical induction: the answer for size n is constructed strictly from
// the answer for size n-1, starting at a fixed base case.
//
// 🚀 What is in the box?
//
//	A pure-Go, allocation-honest library that brings together:
//		• binary   every binary string of length n (2ⁿ, lexicographic)
//		• digits   every n-digit number without zeros (9ⁿ, increasing),
//		           digit-sum filtering and the zero-permitting variant
//		• permute  every permutation of a word (n!, repeats kept),
//		           plus the single-symbol interpolation helper
//		• induct   the shared driver with iterative or recursive walks,
//		           per-level hooks and exact size bounds
//
// ✨ Why use it?
//
//   - Deterministic: every generator documents and tests its exact order
//   - Side-effect free: each call returns freshly allocated results
//   - Safe at scale: WithMaxSize refuses oversized requests before allocating,
//     the iterative strategy never grows the call stack
//   - Generic: permute works on any symbol type, digits.DigitSum on any integer
//
// Layout:
//
//	induct/    : Unfold, Strategy, Options (WithStrategy, WithOnLevel, WithMaxSize)
//	binary/    : Generate, Count
//	digits/    : NoZeros, SummingTo, FilterByDigitSum, DigitSum, All, AllSummingTo, Count
//	permute/   : Permutations, GenerateAt, Interpolate, Strings, InterpolateString, Count
//	cmd/induct : self-checks ("induct check") and listing commands
//	examples/  : runnable demo programs
//
// Quick example:
//
//	perms, _ := permute.Strings("ABC")
//	// [CBA BCA BAC CAB ACB ABC]
//
//	go get github.com/katalvlaran/induction
package induction
