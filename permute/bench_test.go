package permute_test

import (
	"testing"

	"github.com/katalvlaran/induction/induct"
	"github.com/katalvlaran/induction/permute"
)

// benchmarkPermutations permutes an n-symbol word under strategy s.
func benchmarkPermutations(b *testing.B, n int, s induct.Strategy) {
	word := make([]int, n)
	for i := range word {
		word[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := permute.Permutations(word, induct.WithStrategy(s)); err != nil {
			b.Fatalf("Permutations failed: %v", err)
		}
	}
}

// BenchmarkPermutations_8 measures 40320 permutations built in a loop.
func BenchmarkPermutations_8(b *testing.B) { benchmarkPermutations(b, 8, induct.Iterative) }

// BenchmarkPermutations_8Recursive measures the recursive walk.
func BenchmarkPermutations_8Recursive(b *testing.B) { benchmarkPermutations(b, 8, induct.Recursive) }
