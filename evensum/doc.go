// Package evensum computes the sum of all even integers in the inclusive
// range [1, n].
//
// What:
//
//   - SumOfEven(n): 2 + 4 + … + 2k for k = ⌊n/2⌋; 0 when n < 1.
//
// Why:
//
//   - Warm-up exercise: turn a loop into a closed form.
//   - With k even values in range, the sum telescopes to k·(k+1).
//
// Complexity:
//
//   - Time:   O(1)
//   - Memory: O(1)
//
// Errors: none — SumOfEven is total over all ints.
package evensum
