// Package gridpath computes shortest walks over rectangular grids of
// Open/Wall cells using breadth-first search.
package gridpath

// Neighbor offsets in (dRow, dCol) form.
var (
	conn4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	conn8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// FromInts converts the classic 0/1 grid encoding into cells:
// 0 becomes Open, any other value becomes Wall.
// The input is copied, not aliased.
func FromInts(values [][]int) [][]Cell {
	grid := make([][]Cell, len(values))
	for r, row := range values {
		grid[r] = make([]Cell, len(row))
		for c, v := range row {
			if v != 0 {
				grid[r][c] = Wall
			}
		}
	}

	return grid
}

// frontierItem pairs a cell with its BFS distance from the start.
type frontierItem struct {
	row, col int
	dist     int
}

// ShortestPath returns the length, in steps, of the shortest path from
// (0,0) to (rows-1, cols-1) over Open cells, moving 4-directionally
// (8-directionally with WithDiagonals). Returns NoPath (-1) when the goal
// is unreachable or either endpoint is a Wall, and 0 for a 1×1 open grid.
//
// Returns ErrEmptyGrid or ErrRaggedGrid for malformed input, or the
// context error if a WithContext context is cancelled mid-search.
//
// BFS expands the frontier level by level, so the distance at which the
// goal cell is first dequeued is the shortest path length.
// Complexity: O(rows×cols) time and memory.
func ShortestPath(grid [][]Cell, opts ...Option) (int, error) {
	rows := len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return NoPath, ErrEmptyGrid
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return NoPath, ErrRaggedGrid
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// A walled endpoint blocks every path before the search starts.
	if grid[0][0] == Wall || grid[rows-1][cols-1] == Wall {
		return NoPath, nil
	}

	offsets := conn4
	if o.Diagonals {
		offsets = conn8
	}

	// visited is indexed row-major: row*cols + col.
	visited := make([]bool, rows*cols)
	visited[0] = true
	queue := make([]frontierItem, 0, rows*cols)
	queue = append(queue, frontierItem{row: 0, col: 0, dist: 0})

	for qi := 0; qi < len(queue); qi++ {
		// cancellation check (once per visit)
		select {
		case <-o.Ctx.Done():
			return NoPath, o.Ctx.Err()
		default:
		}

		cur := queue[qi]
		o.OnVisit(cur.row, cur.col, cur.dist)
		if cur.row == rows-1 && cur.col == cols-1 {
			return cur.dist, nil
		}

		for _, d := range offsets {
			nr, nc := cur.row+d[0], cur.col+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if grid[nr][nc] != Open {
				continue
			}
			if idx := nr*cols + nc; !visited[idx] {
				visited[idx] = true
				queue = append(queue, frontierItem{row: nr, col: nc, dist: cur.dist + 1})
			}
		}
	}

	return NoPath, nil
}
