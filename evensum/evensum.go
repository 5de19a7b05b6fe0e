package evensum

// SumOfEven returns the sum of all even integers in [1, n].
// If n < 1 the range contains no even value and the result is 0.
//
// The even values in range are 2, 4, …, 2k with k = ⌊n/2⌋, so the
// sum is 2·(1+2+…+k) = k·(k+1).
// Complexity: O(1).
func SumOfEven(n int) int {
	if n < 1 {
		return 0
	}
	k := n / 2

	return k * (k + 1)
}
