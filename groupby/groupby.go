package groupby

// Record is one item to be grouped: a mapping from field name to value.
type Record = map[string]any

// MissingKey is the bucket key used for records that lack the grouping
// field (or store nil under it), mirroring a null grouping key.
var MissingKey any = nil

// Groups is an insertion-ordered multimap produced by GroupByKey.
// Bucket order follows the first occurrence of each key value; records
// within a bucket keep their input order.
type Groups struct {
	order   []any
	buckets map[any][]Record
}

// GroupByKey buckets items by the value each record stores under key.
// Records without the key are grouped under MissingKey.
// Complexity: O(len(items)) time and memory.
func GroupByKey(items []Record, key string) *Groups {
	g := &Groups{buckets: make(map[any][]Record, len(items))}
	for _, item := range items {
		val, ok := item[key]
		if !ok {
			val = MissingKey
		}
		if _, seen := g.buckets[val]; !seen {
			g.order = append(g.order, val)
		}
		g.buckets[val] = append(g.buckets[val], item)
	}

	return g
}

// Len returns the number of distinct buckets.
func (g *Groups) Len() int {
	return len(g.order)
}

// Keys returns the bucket keys in first-occurrence order.
// The returned slice is a copy; mutating it does not affect g.
func (g *Groups) Keys() []any {
	out := make([]any, len(g.order))
	copy(out, g.order)

	return out
}

// Get returns the records bucketed under key and whether the bucket
// exists. Use Get(MissingKey) for records that lacked the field.
func (g *Groups) Get(key any) ([]Record, bool) {
	recs, ok := g.buckets[key]

	return recs, ok
}
