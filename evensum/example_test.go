package evensum_test

import (
	"fmt"

	"github.com/katalvlaran/probset/evensum"
)

// ExampleSumOfEven demonstrates summing the even numbers up to 10:
// 2 + 4 + 6 + 8 + 10 = 30.
func ExampleSumOfEven() {
	fmt.Println(evensum.SumOfEven(10))
	fmt.Println(evensum.SumOfEven(-5))
	// Output:
	// 30
	// 0
}
