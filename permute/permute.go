// SPDX-License-Identifier: MIT

package permute

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/induction/induct"
)

// Sentinel errors for permutation generation.
var (
	// ErrEmptyWord is returned when the word has no symbols.
	ErrEmptyWord = errors.New("permute: word must not be empty")

	// ErrPosMismatch is returned when the induction index is not len(word)-1.
	ErrPosMismatch = errors.New("permute: pos must equal len(word)-1")
)

// Interpolate returns the len(word)+1 words made by inserting sym immediately
// before index i, for i = 0..len(word). Every returned slice is freshly
// allocated; word is not modified.
//
//	Interpolate('x', "ab") == ["xab" "axb" "abx"]
func Interpolate[S any](sym S, word []S) [][]S {
	out := make([][]S, len(word)+1)
	for i := range out {
		w := make([]S, len(word)+1)
		copy(w, word[:i])
		w[i] = sym
		copy(w[i+1:], word[i:])
		out[i] = w
	}

	return out
}

// Permutations returns all len(word)! permutations of word.
// The induction index is derived from len(word).
func Permutations[S any](word []S, opts ...induct.Option) ([][]S, error) {
	return GenerateAt(word, len(word)-1, opts...)
}

// GenerateAt returns all permutations of word, given the induction index pos.
// pos must equal len(word)-1; any other value fails with ErrPosMismatch.
func GenerateAt[S any](word []S, pos int, opts ...induct.Option) ([][]S, error) {
	if len(word) == 0 {
		return nil, ErrEmptyWord
	}
	if pos != len(word)-1 {
		return nil, fmt.Errorf("%w: pos=%d, len(word)=%d", ErrPosMismatch, pos, len(word))
	}
	o, err := induct.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err = o.CheckSize(Count(len(word))); err != nil {
		return nil, err
	}

	// Level k holds the permutations of word[:k+1]; removing word[pos] always
	// removes the last symbol, so the step re-inserts word[k].
	base := [][]S{{word[0]}}
	step := func(k int, prev [][]S) [][]S {
		sym := word[k]
		out := make([][]S, 0, (k+1)*len(prev))
		for _, p := range prev {
			out = append(out, Interpolate(sym, p)...)
		}
		return out
	}

	return induct.Run(o, base, 0, pos, step)
}

// Strings returns all permutations of the runes of word.
//
//	Strings("ab") == ["ba" "ab"]
func Strings(word string, opts ...induct.Option) ([]string, error) {
	perms, err := Permutations([]rune(word), opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}

	return out, nil
}

// InterpolateString inserts ch at every rune position of word.
func InterpolateString(ch rune, word string) []string {
	words := Interpolate(ch, []rune(word))
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = string(w)
	}

	return out
}

// Count returns n!, the number of permutations of an n-symbol word counted
// with multiplicity. It returns 0 for negative n.
func Count(n int) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}

	return new(big.Int).MulRange(1, int64(n))
}
