// Package fib computes Fibonacci numbers, defined by
// fib(0)=0, fib(1)=1, fib(k)=fib(k-1)+fib(k-2).
//
// What:
//
//   - Fib(n): the nth Fibonacci number as a *big.Int. Exact for any
//     non-negative n; comfortable for n in the thousands.
//   - Fib64(n): fixed-width fast path returning uint64. Valid for
//     0 ≤ n ≤ MaxFib64 (93); beyond that uint64 overflows.
//
// Why:
//
//   - The naive doubly-recursive definition is exponential in time and
//     linear in stack depth. Both entry points iterate a state pair
//     (a, b) → (b, a+b) instead: linear time, constant stack.
//   - fib(94) already exceeds 2⁶⁴−1, so a general API must grow its
//     integers; *big.Int is the honest return type.
//
// Complexity (n = index):
//
//   - Fib:   O(n) big-integer additions, O(fib(n)) bits of memory.
//   - Fib64: O(n) time, O(1) memory.
//
// Errors:
//
//   - ErrNegativeIndex — n < 0 (both entry points).
//   - ErrFib64Range    — n > MaxFib64 (Fib64 only).
package fib
