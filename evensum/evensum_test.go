package evensum_test

import (
	"testing"

	"github.com/katalvlaran/probset/evensum"
	"github.com/stretchr/testify/assert"
)

// TestSumOfEven_Table verifies the closed form against known values,
// including the empty-range cases n <= 0.
func TestSumOfEven_Table(t *testing.T) {
	cases := []struct {
		name string
		n    int
		want int
	}{
		{"Negative", -5, 0},
		{"Zero", 0, 0},
		{"One", 1, 0},
		{"Two", 2, 2},
		{"Ten", 10, 30},
		{"Eleven", 11, 30},
		{"Hundred", 100, 2550},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, evensum.SumOfEven(tc.n))
		})
	}
}

// TestSumOfEven_MatchesLoop cross-checks the closed form against a
// straightforward accumulation over a range of inputs.
func TestSumOfEven_MatchesLoop(t *testing.T) {
	for n := -3; n <= 200; n++ {
		want := 0
		for i := 2; i <= n; i += 2 {
			want += i
		}
		if got := evensum.SumOfEven(n); got != want {
			t.Fatalf("SumOfEven(%d) = %d; want %d", n, got, want)
		}
	}
}
