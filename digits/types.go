// SPDX-License-Identifier: MIT

package digits

import (
	"errors"
	"strconv"
)

// MaxDigits is the largest digit count whose values all fit in an int:
// 18 on 64-bit platforms, 9 on 32-bit ones.
const MaxDigits = 18*(strconv.IntSize/64) + 9*(1-strconv.IntSize/64)

// Sentinel errors for digit-number generation.
var (
	// ErrNegativeDigits is returned when the digit count is negative.
	ErrNegativeDigits = errors.New("digits: digit count must be non-negative")

	// ErrTooManyDigits is returned when the digit count exceeds MaxDigits.
	ErrTooManyDigits = errors.New("digits: digit count exceeds MaxDigits")

	// ErrNegativeSum is returned when the digit-sum target is negative.
	ErrNegativeSum = errors.New("digits: digit sum must be non-negative")
)

// pow10 holds 10^i for i in [0, MaxDigits].
var pow10 = func() [MaxDigits + 1]int {
	var p [MaxDigits + 1]int
	p[0] = 1
	for i := 1; i <= MaxDigits; i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()
