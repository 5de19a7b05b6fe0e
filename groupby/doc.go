// Package groupby buckets a sequence of records by the value of one field,
// preserving both record order within buckets and first-occurrence order
// of the buckets themselves.
//
// What:
//
//   - Record: a mapping from field name to value (map[string]any).
//   - GroupByKey(items, key): a *Groups multimap from each distinct value
//     of items[i][key] to the records carrying that value, in input order.
//   - Records lacking the field land in the MissingKey (nil) bucket,
//     the analog of a null grouping key.
//
// Why:
//
//   - A plain Go map forgets insertion order; Groups keeps an explicit
//     key slice alongside the bucket map so iteration is deterministic
//     and follows the order key values were first seen.
//
// Contract:
//
//	Grouping values are used as map keys and therefore must be
//	comparable (numbers, strings, bools, …). Grouping by a field holding
//	a slice or map is outside the contract. A record that stores an
//	explicit nil under the field is indistinguishable from a record
//	missing the field; both share the MissingKey bucket.
//
// Complexity (n = len(items)):
//
//   - Time:   O(n)
//   - Memory: O(n)
//
// Errors: none — GroupByKey is total over well-formed input.
package groupby
