package binary_test

import (
	"testing"

	"github.com/katalvlaran/induction/binary"
	"github.com/katalvlaran/induction/induct"
)

// benchmarkGenerate runs Generate(n) under the given strategy.
func benchmarkGenerate(b *testing.B, n int, s induct.Strategy) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := binary.Generate(n, induct.WithStrategy(s)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Iterative16 measures 65536 strings built in a loop.
func BenchmarkGenerate_Iterative16(b *testing.B) { benchmarkGenerate(b, 16, induct.Iterative) }

// BenchmarkGenerate_Recursive16 measures the same output built recursively.
func BenchmarkGenerate_Recursive16(b *testing.B) { benchmarkGenerate(b, 16, induct.Recursive) }
