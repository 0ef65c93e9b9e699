// SPDX-License-Identifier: MIT

package selfcheck

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/induction/binary"
	"github.com/katalvlaran/induction/digits"
	"github.com/katalvlaran/induction/induct"
	"github.com/katalvlaran/induction/internal/ctxlog"
	"github.com/katalvlaran/induction/permute"
)

func checkBinary(ctx context.Context, opts ...induct.Option) error {
	log := ctxlog.FromContext(ctx)

	known := map[int][]string{
		0: {""},
		1: {"0", "1"},
		2: {"00", "01", "10", "11"},
		3: {"000", "001", "010", "011", "100", "101", "110", "111"},
	}
	for n := 0; n <= 3; n++ {
		got, err := binary.Generate(n, opts...)
		if err != nil {
			return err
		}
		if err = expectEqual("binary.Generate("+strconv.Itoa(n)+")", known[n], got); err != nil {
			return err
		}
	}

	for n := 0; n <= 8; n++ {
		got, err := binary.Generate(n, opts...)
		if err != nil {
			return err
		}
		seen := make(map[string]struct{}, len(got))
		for _, s := range got {
			if err = expect(len(s) == n, "binary.Generate(%d): %q has length %d", n, s, len(s)); err != nil {
				return err
			}
			seen[s] = struct{}{}
		}
		if err = firstErr(
			expect(len(got) == 1<<n, "binary.Generate(%d): %d strings, want %d", n, len(got), 1<<n),
			expect(len(seen) == len(got), "binary.Generate(%d): duplicate strings", n),
		); err != nil {
			return err
		}
		log.Debug("Level verified.", "check", "binary", "n", n, "size", len(got))
	}

	return nil
}

func checkDigits(ctx context.Context, opts ...induct.Option) error {
	log := ctxlog.FromContext(ctx)

	empty, err := digits.NoZeros(0, opts...)
	if err != nil {
		return err
	}
	one, err := digits.NoZeros(1, opts...)
	if err != nil {
		return err
	}
	if err = firstErr(
		expectEqual("digits.NoZeros(0)", []int{}, empty),
		expectEqual("digits.NoZeros(1)", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, one),
	); err != nil {
		return err
	}

	size, lo := 9, 1
	for n := 1; n <= 4; n++ {
		got, err := digits.NoZeros(n, opts...)
		if err != nil {
			return err
		}
		ones, _ := strconv.Atoi(strings.Repeat("1", n))
		nines, _ := strconv.Atoi(strings.Repeat("9", n))
		if err = expect(len(got) == size, "digits.NoZeros(%d): %d values, want %d", n, len(got), size); err != nil {
			return err
		}
		if err = firstErr(
			expect(got[0] == ones, "digits.NoZeros(%d): min %d, want %d", n, got[0], ones),
			expect(got[len(got)-1] == nines, "digits.NoZeros(%d): max %d, want %d", n, got[len(got)-1], nines),
		); err != nil {
			return err
		}
		for i, v := range got {
			if err = firstErr(
				expect(v >= lo && v < 10*lo, "digits.NoZeros(%d): %d is not %d digits long", n, v, n),
				expect(!strings.ContainsRune(strconv.Itoa(v), '0'), "digits.NoZeros(%d): %d contains zero", n, v),
				expect(i == 0 || v > got[i-1], "digits.NoZeros(%d): not increasing at index %d", n, i),
			); err != nil {
				return err
			}
		}
		log.Debug("Level verified.", "check", "digits", "n", n, "size", len(got))
		size, lo = size*9, lo*10
	}

	nine, err := digits.SummingTo(2, 9, opts...)
	if err != nil {
		return err
	}
	if err = expectEqual("digits.SummingTo(2, 9)", []int{18, 27, 36, 45, 54, 63, 72, 81}, nine); err != nil {
		return err
	}

	for n := 1; n <= 3; n++ {
		for _, k := range []int{0, 9*n + 1} {
			got, err := digits.SummingTo(n, k, opts...)
			if err != nil {
				return err
			}
			if err = expect(len(got) == 0, "digits.SummingTo(%d, %d): want empty, got %v", n, k, got); err != nil {
				return err
			}
		}
		for k := 1; k < 15; k++ {
			got, err := digits.SummingTo(n, k, opts...)
			if err != nil {
				return err
			}
			if err = expect(sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }) && unique(got),
				"digits.SummingTo(%d, %d): not sorted and unique: %v", n, k, got); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkPermute(ctx context.Context, opts ...induct.Option) error {
	log := ctxlog.FromContext(ctx)

	if err := expectEqual(`permute.InterpolateString('x', "ab")`,
		[]string{"xab", "axb", "abx"}, permute.InterpolateString('x', "ab")); err != nil {
		return err
	}
	for n := 0; n <= 5; n++ {
		word := strings.Repeat("w", n)
		got := permute.InterpolateString('c', word)
		if err := expect(len(got) == n+1, "permute.InterpolateString on %d symbols: %d results", n, len(got)); err != nil {
			return err
		}
	}

	known := map[string][]string{
		"a":   {"a"},
		"aa":  {"aa", "aa"},
		"AB":  {"BA", "AB"},
		"ABC": {"CBA", "BCA", "BAC", "CAB", "ACB", "ABC"},
	}
	for _, word := range []string{"a", "aa", "AB", "ABC"} {
		got, err := permute.Strings(word, opts...)
		if err != nil {
			return err
		}
		if err = expectEqual("permute.Strings("+strconv.Quote(word)+")", known[word], got); err != nil {
			return err
		}
	}

	for n := 1; n <= 6; n++ {
		word := "abcdef"[:n]
		got, err := permute.Strings(word, opts...)
		if err != nil {
			return err
		}
		want := int(permute.Count(n).Int64())
		seen := make(map[string]struct{}, len(got))
		for _, p := range got {
			if err = expect(sortString(p) == word, "permute.Strings(%q): %q is not a permutation", word, p); err != nil {
				return err
			}
			seen[p] = struct{}{}
		}
		if err = firstErr(
			expect(len(got) == want, "permute.Strings(%q): %d results, want %d", word, len(got), want),
			expect(len(seen) == want, "permute.Strings(%q): %d distinct results, want %d", word, len(seen), want),
		); err != nil {
			return err
		}
		log.Debug("Level verified.", "check", "permute", "n", n, "size", len(got))
	}

	return nil
}

// unique reports whether vs holds no repeated value.
func unique(vs []int) bool {
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// sortString returns the bytes of s in ascending order.
func sortString(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}
