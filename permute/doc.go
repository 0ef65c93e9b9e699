// SPDX-License-Identifier: MIT

// Package permute enumerates every permutation of a word by induction on its
// length, inserting one more symbol at every position of every shorter
// permutation.
//
// What
//
//   - Interpolate(sym, word): the len(word)+1 words obtained by inserting sym
//     before index 0, 1, …, len(word), in that order.
//   - Permutations(word): all len(word)! orderings of word's symbols.
//   - GenerateAt(word, pos): the same, for callers that track the induction
//     index themselves; pos must be len(word)-1.
//   - Strings / InterpolateString: rune-level conveniences over Go strings.
//   - Count(n): n! as a *big.Int.
//
// How
//
//	Base case (pos=0): a one-symbol word has itself as its only permutation.
//	Step (pos>0): remove the symbol at index pos, permute the rest with pos-1,
//	then interpolate the removed symbol into each of those permutations and
//	concatenate the results in order.
//
// Ordering
//
//	The order is fixed by the step above, e.g.
//	  "AB"  → [BA AB]
//	  "ABC" → [CBA BCA BAC CAB ACB ABC]
//
// Repeated symbols
//
//	Symbols are never compared, so repeats are not collapsed: "aa" yields
//	[aa aa]. The result always has exactly len(word)! entries.
//
// Complexity (L = len(word))
//
//   - Time:   O(L·L!)
//   - Memory: O(L·L!)
//
// Errors
//
//   - ErrEmptyWord    if word has no symbols.
//   - ErrPosMismatch  if GenerateAt receives pos != len(word)-1.
//   - induct.ErrOptionViolation, induct.ErrSizeLimit from options.
package permute
