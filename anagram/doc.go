// Package anagram reports whether two strings are anagrams of each other,
// ignoring case, whitespace, and punctuation.
//
// What:
//
//   - Normalize(s): lowercase s and drop every rune that is not a letter
//     or a digit.
//   - IsAnagram(s1, s2): true when the normalized forms contain the same
//     runes with the same multiplicities.
//
// Why:
//
//   - “Listen” and “Silent” are anagrams; so are “Dormitory” and
//     “Dirty room!!”. Only the letters matter, not their dressing.
//   - Multiset comparison via a rune-count map avoids sorting and stays
//     linear in the input length.
//
// Unicode:
//
//	Normalization uses unicode.IsLetter and unicode.IsDigit, so “héllo”
//	keeps its accented rune and CJK text works unchanged. Case-folding
//	is strings.ToLower; locale-specific foldings (Turkish İ) are out of
//	scope for a practice problem.
//
// Complexity (n = total input length in runes):
//
//   - Time:   O(n)
//   - Memory: O(n) for the normalized copies and the count map.
//
// Errors: none — both functions are total; two empty strings are anagrams.
package anagram
