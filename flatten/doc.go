// Package flatten collapses arbitrarily nested lists into a single level.
//
// What:
//
//   - Flatten(list): walk a []any whose elements may themselves be []any
//     to any depth, and return the leaf elements in depth-first,
//     left-to-right order.
//
// Why:
//
//   - JSON arrays decode into exactly this shape ([]any with nested
//     []any), so the exercise doubles as a practical tree walk.
//   - Empty nested lists vanish; an already-flat list round-trips
//     unchanged, so Flatten is idempotent.
//
// Contract:
//
//	Only elements of dynamic type []any count as nested lists; a []int
//	stored in an any slot is a leaf. Cyclic structures (a list reachable
//	from itself) are outside the contract and will not terminate.
//
// Complexity (n = leaves, d = maximum nesting depth):
//
//   - Time:   O(n + number of nested lists)
//   - Memory: O(n) output + O(d) recursion stack.
//
// Errors: none — Flatten is total over well-formed (acyclic) input.
package flatten
