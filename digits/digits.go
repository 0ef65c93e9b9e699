// SPDX-License-Identifier: MIT

package digits

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/induction/induct"
)

// NoZeros returns every n-digit number with no zero digit, strictly increasing.
//
//	NoZeros(0) == []
//	NoZeros(1) == [1 2 3 4 5 6 7 8 9]
//	NoZeros(2) == [11 12 … 19 21 … 99]
func NoZeros(n int, opts ...induct.Option) ([]int, error) {
	o, err := resolve(n, Count, opts...)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	return induct.Run(o, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 1, n, prependDigit)
}

// prependDigit places every leading digit 1..9 in front of the previous level.
func prependDigit(level int, prev []int) []int {
	base := pow10[level-1]
	out := make([]int, 0, 9*len(prev))
	for d := 1; d <= 9; d++ {
		lead := d * base
		for _, p := range prev {
			out = append(out, lead+p)
		}
	}

	return out
}

// All returns every n-digit number, zero digits included, in increasing order:
// 10^(n-1) ≤ v < 10^n. All(0) is empty.
func All(n int, opts ...induct.Option) ([]int, error) {
	o, err := resolve(n, CountAll, opts...)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	lo, hi := pow10[n-1], 10*pow10[n-1]
	out := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		out = append(out, v)
	}
	o.OnLevel(n, len(out))

	return out, nil
}

// SummingTo returns the n-digit numbers with no zero digit whose digits sum to k,
// in increasing order.
//
//	SummingTo(2, 9) == [18 27 36 45 54 63 72 81]
func SummingTo(n, k int, opts ...induct.Option) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSum, k)
	}
	nums, err := NoZeros(n, opts...)
	if err != nil {
		return nil, err
	}

	return FilterByDigitSum(nums, k), nil
}

// AllSummingTo returns the n-digit numbers, zeros allowed, whose digits sum to k.
func AllSummingTo(n, k int, opts ...induct.Option) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSum, k)
	}
	nums, err := All(n, opts...)
	if err != nil {
		return nil, err
	}

	return FilterByDigitSum(nums, k), nil
}

// FilterByDigitSum keeps, in their original order, the numbers whose decimal
// digit sum equals k. The result is never nil.
func FilterByDigitSum(numbers []int, k int) []int {
	out := make([]int, 0)
	for _, v := range numbers {
		if DigitSum(v) == k {
			out = append(out, v)
		}
	}

	return out
}

// DigitSum returns the sum of the decimal digits of v by repeated mod-10 /
// div-10. Negative values sum the digits of their magnitude; DigitSum(0) == 0.
func DigitSum[T constraints.Integer](v T) int {
	sum := 0
	for v != 0 {
		d := v % 10
		if d < 0 {
			d = -d
		}
		sum += int(d)
		v /= 10
	}

	return sum
}

// Count returns 9ⁿ, the number of n-digit numbers with no zero digit.
// It returns 0 for n ≤ 0.
func Count(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(0)
	}

	return new(big.Int).Exp(big.NewInt(9), big.NewInt(int64(n)), nil)
}

// CountAll returns 9·10^(n-1), the number of n-digit numbers.
// It returns 0 for n ≤ 0.
func CountAll(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(0)
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n-1)), nil)

	return p.Mul(p, big.NewInt(9))
}

// resolve validates n, applies opts and enforces the size bound via count.
func resolve(n int, count func(int) *big.Int, opts ...induct.Option) (induct.Options, error) {
	if n < 0 {
		return induct.Options{}, fmt.Errorf("%w: got %d", ErrNegativeDigits, n)
	}
	if n > MaxDigits {
		return induct.Options{}, fmt.Errorf("%w: got %d, max %d", ErrTooManyDigits, n, MaxDigits)
	}
	o, err := induct.Resolve(opts...)
	if err != nil {
		return o, err
	}

	return o, o.CheckSize(count(n))
}
