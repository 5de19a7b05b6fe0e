package gridpath_test

import (
	"testing"

	"github.com/katalvlaran/probset/gridpath"
)

// openGrid builds an n×n grid with every cell open.
func openGrid(n int) [][]gridpath.Cell {
	grid := make([][]gridpath.Cell, n)
	for r := range grid {
		grid[r] = make([]gridpath.Cell, n)
	}

	return grid
}

// BenchmarkShortestPath_Open measures BFS over a fully open 100×100 grid,
// where the frontier fans out maximally.
func BenchmarkShortestPath_Open(b *testing.B) {
	grid := openGrid(100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridpath.ShortestPath(grid)
	}
}

// BenchmarkShortestPath_Serpentine measures BFS where walls force the
// longest possible route through a 101×101 grid.
func BenchmarkShortestPath_Serpentine(b *testing.B) {
	const n = 101
	grid := openGrid(n)
	// Alternate wall rows with a single gap, switching sides each time.
	for r := 1; r < n; r += 2 {
		for c := 0; c < n; c++ {
			grid[r][c] = gridpath.Wall
		}
		if (r/2)%2 == 0 {
			grid[r][n-1] = gridpath.Open
		} else {
			grid[r][0] = gridpath.Open
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridpath.ShortestPath(grid)
	}
}
