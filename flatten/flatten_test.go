package flatten_test

import (
	"testing"

	"github.com/katalvlaran/probset/flatten"
	"github.com/stretchr/testify/assert"
)

// TestFlatten_Table exercises the nesting shapes from the problem
// statement plus degenerate inputs.
func TestFlatten_Table(t *testing.T) {
	cases := []struct {
		name string
		in   []any
		want []any
	}{
		{"Empty", []any{}, []any{}},
		{"Nil", nil, []any{}},
		{"AlreadyFlat", []any{1, 2, 3}, []any{1, 2, 3}},
		{
			"Classic",
			[]any{1, []any{2, 3, []any{4}}, 5},
			[]any{1, 2, 3, 4, 5},
		},
		{
			"DeepLeft",
			[]any{[]any{[]any{[]any{1}}}, 2},
			[]any{1, 2},
		},
		{
			"EmptyNestedVanish",
			[]any{[]any{}, 1, []any{[]any{}, 2}},
			[]any{1, 2},
		},
		{
			"MixedLeafTypes",
			[]any{"a", []any{true, 3.5}, nil},
			[]any{"a", true, 3.5, nil},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := flatten.Flatten(tc.in)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestFlatten_Idempotent verifies that flattening an already-flat result
// returns an equal slice.
func TestFlatten_Idempotent(t *testing.T) {
	once := flatten.Flatten([]any{1, []any{2, []any{3}}, 4})
	twice := flatten.Flatten(once)
	assert.Equal(t, once, twice)
}

// TestFlatten_NonAnySliceIsLeaf pins the contract: only []any counts as
// a nested list, typed slices pass through as leaves.
func TestFlatten_NonAnySliceIsLeaf(t *testing.T) {
	leaf := []int{1, 2}
	got := flatten.Flatten([]any{leaf, 3})
	assert.Equal(t, []any{leaf, 3}, got)
}

// TestFlatten_DoesNotMutateInput ensures the input nesting survives.
func TestFlatten_DoesNotMutateInput(t *testing.T) {
	in := []any{1, []any{2, 3}}
	_ = flatten.Flatten(in)
	assert.Equal(t, []any{1, []any{2, 3}}, in)
}
