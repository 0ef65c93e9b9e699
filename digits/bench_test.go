package digits_test

import (
	"testing"

	"github.com/katalvlaran/induction/digits"
	"github.com/katalvlaran/induction/induct"
)

// BenchmarkNoZeros_6 measures building all 531441 six-digit numbers without zeros.
func BenchmarkNoZeros_6(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := digits.NoZeros(6); err != nil {
			b.Fatalf("NoZeros failed: %v", err)
		}
	}
}

// BenchmarkNoZeros_6Recursive is the recursive walk over the same output.
func BenchmarkNoZeros_6Recursive(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := digits.NoZeros(6, induct.WithStrategy(induct.Recursive)); err != nil {
			b.Fatalf("NoZeros failed: %v", err)
		}
	}
}

// BenchmarkFilterByDigitSum measures the filter over a prebuilt level.
func BenchmarkFilterByDigitSum(b *testing.B) {
	nums, err := digits.NoZeros(6)
	if err != nil {
		b.Fatalf("NoZeros failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = digits.FilterByDigitSum(nums, 27)
	}
}
