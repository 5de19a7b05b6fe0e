// Package gridpath defines cell states, options, and sentinel errors for
// the grid shortest-path search.
package gridpath

import (
	"context"
	"errors"
)

// Sentinel errors for grid validation.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridpath: grid must have at least one row and one column")

	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("gridpath: all rows must have the same length")
)

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Open permits traversal.
	Open Cell = iota
	// Wall blocks it.
	Wall
)

// NoPath is returned by ShortestPath when the goal is unreachable.
const NoPath = -1

// Option configures ShortestPath via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for the search.
type Options struct {
	// Ctx allows cancellation and deadlines on large grids.
	Ctx context.Context

	// OnVisit is called once for each cell the search visits, with the
	// cell coordinates and its BFS distance from the start.
	OnVisit func(row, col, dist int)

	// Diagonals switches from 4-directional to 8-directional adjacency.
	Diagonals bool
}

// DefaultOptions returns Options with sane defaults:
// background context, no-op OnVisit, 4-directional adjacency.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   func(int, int, int) {},
		Diagonals: false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback fired once per visited cell.
func WithOnVisit(fn func(row, col, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithDiagonals enables 8-directional movement (N, NE, E, SE, S, SW, W, NW).
func WithDiagonals() Option {
	return func(o *Options) {
		o.Diagonals = true
	}
}
