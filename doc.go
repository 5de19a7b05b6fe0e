// Package probset is a hands-on problem set for learning algorithmic Go:
// six independent, pure exercises, each living in its own subpackage and
// graded by its own unit tests.
//
// 🚀 What is probset?
//
//	A small, dependency-light library of classic practice problems:
//		• evensum  — sum of even numbers in [1, n]
//		• anagram  — case- and punctuation-insensitive anagram check
//		• fib      — Fibonacci numbers, big.Int and uint64 flavors
//		• flatten  — arbitrarily nested list flattening
//		• groupby  — order-preserving grouping of records by a field
//		• gridpath — BFS shortest path across a walled 2D grid
//
// ✨ Why probset?
//
//   - Beginner-friendly – one problem per package, minimal API surface
//   - Pure functions – no shared state, no I/O, no goroutines required
//   - Self-grading – every package ships tests, examples and benchmarks
//   - Idiomatic – sentinel errors, functional options, runnable Examples
//
// Each subpackage stands alone; import only what you are practicing:
//
//	evensum/  — O(1) closed-form arithmetic
//	anagram/  — Unicode normalization & multiset comparison
//	fib/      — iteration vs. fixed-width overflow
//	flatten/  — depth-first recursion over []any
//	groupby/  — insertion-ordered multimaps
//	gridpath/ — breadth-first search with options & hooks
//
// Quick ASCII example (gridpath):
//
//	    ·──█──·
//	    │  █  │
//	    ·──·──·
//
//	open cells (·) are traversable, walls (█) are not; the shortest
//	path from top-left to bottom-right goes around the wall column.
//
// The cmd/probset CLI wraps every problem in an interactive demo, and
// examples/ holds runnable scenario programs. See README.md for setup
// and PROBLEMS.md for the full problem statements.
//
//	go get github.com/katalvlaran/probset
package probset
