// SPDX-License-Identifier: MIT

package binary

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/induction/induct"
)

// ErrNegativeLength is returned when Generate is asked for a negative length.
var ErrNegativeLength = errors.New("binary: length must be non-negative")

// suffixes are appended in this order; "0" before "1" keeps each level sorted.
var suffixes = [2]string{"0", "1"}

// Generate returns every binary string of length n in lexicographic order.
//
//	Generate(0) == [""]
//	Generate(2) == ["00" "01" "10" "11"]
//
// Options control the walk strategy, the per-level hook and the size bound.
func Generate(n int, opts ...induct.Option) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLength, n)
	}
	o, err := induct.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if err = o.CheckSize(Count(n)); err != nil {
		return nil, err
	}

	return induct.Run(o, []string{""}, 0, n, extend)
}

// extend appends each suffix to every string of the previous level.
func extend(_ int, prev []string) []string {
	out := make([]string, 0, len(suffixes)*len(prev))
	for _, s := range prev {
		for _, suffix := range suffixes {
			out = append(out, s+suffix)
		}
	}

	return out
}

// Count returns the number of binary strings of length n, 2ⁿ.
// It returns 0 for negative n.
func Count(n int) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}

	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}
