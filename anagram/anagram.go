package anagram

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and strips every rune that is not a letter or a
// digit, returning the comparison form used by IsAnagram.
// Complexity: O(len(s)).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsAnagram reports whether s1 and s2 are anagrams: after normalization
// (case folded, non-alphanumeric runes removed) both strings must contain
// the same runes with the same multiplicities. Empty strings are anagrams
// of each other.
// Complexity: O(len(s1)+len(s2)) time and memory.
func IsAnagram(s1, s2 string) bool {
	a, b := Normalize(s1), Normalize(s2)
	// Unequal byte length of normalized forms rules out equal multisets.
	if len(a) != len(b) {
		return false
	}

	counts := make(map[rune]int, len(a))
	for _, r := range a {
		counts[r]++
	}
	for _, r := range b {
		counts[r]--
		if counts[r] < 0 {
			return false
		}
	}

	return true
}
