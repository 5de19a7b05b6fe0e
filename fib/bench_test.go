package fib_test

import (
	"testing"

	"github.com/katalvlaran/probset/fib"
)

// BenchmarkFib_1000 measures big.Int iteration at a four-digit index.
func BenchmarkFib_1000(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = fib.Fib(1000)
	}
}

// BenchmarkFib64_Max measures the fixed-width path at its upper bound.
func BenchmarkFib64_Max(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = fib.Fib64(fib.MaxFib64)
	}
}
