package flatten_test

import (
	"fmt"

	"github.com/katalvlaran/probset/flatten"
)

// ExampleFlatten flattens a three-level nesting into leaf order.
func ExampleFlatten() {
	nested := []any{1, []any{2, 3, []any{4}}, 5}
	fmt.Println(flatten.Flatten(nested))
	fmt.Println(flatten.Flatten([]any{}))
	// Output:
	// [1 2 3 4 5]
	// []
}
