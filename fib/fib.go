package fib

import (
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for Fibonacci computation.
var (
	// ErrNegativeIndex is returned when the requested index is negative.
	ErrNegativeIndex = errors.New("fib: index must be non-negative")

	// ErrFib64Range is returned by Fib64 when the result would overflow uint64.
	ErrFib64Range = errors.New("fib: index out of uint64 range")
)

// MaxFib64 is the largest index n for which fib(n) fits in a uint64.
// fib(93) = 12200160415121876738 < 2⁶⁴; fib(94) overflows.
const MaxFib64 = 93

// Fib returns the nth Fibonacci number as a *big.Int.
// Returns ErrNegativeIndex if n < 0.
//
// Iterates the state pair (a, b) → (b, a+b) n times, so time is linear
// in n and stack depth is constant regardless of n.
func Fib(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeIndex, n)
	}

	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}

	return a, nil
}

// Fib64 returns the nth Fibonacci number as a uint64.
// Returns ErrNegativeIndex if n < 0, or ErrFib64Range if n > MaxFib64.
// Complexity: O(n) time, O(1) memory.
func Fib64(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeIndex, n)
	}
	if n > MaxFib64 {
		return 0, fmt.Errorf("%w: index %d exceeds MaxFib64 (%d)", ErrFib64Range, n, MaxFib64)
	}

	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}

	return a, nil
}
