package flatten

// Flatten returns a single-level slice holding every leaf element of list
// in depth-first, left-to-right order. Elements of dynamic type []any are
// descended into; everything else is a leaf. The result is always non-nil,
// and the input is never mutated.
func Flatten(list []any) []any {
	return appendLeaves(make([]any, 0, len(list)), list)
}

// appendLeaves walks list depth-first, appending leaves to out.
func appendLeaves(out, list []any) []any {
	for _, el := range list {
		if nested, ok := el.([]any); ok {
			out = appendLeaves(out, nested)
			continue
		}
		out = append(out, el)
	}

	return out
}
