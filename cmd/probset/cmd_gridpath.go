package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/probset/gridpath"
)

var gridpathDiagonals bool

var gridpathCmd = &cobra.Command{
	Use:   "gridpath <row>...",
	Short: "BFS shortest path across a 0/1 grid",
	Long: `Finds the shortest path from the top-left to the bottom-right of
a grid given as rows of 0 (open) and 1 (wall) digits:

  probset gridpath 000 110 000
  -> steps: 4

Prints "no path" when the goal is unreachable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGridpath,
}

func init() {
	gridpathCmd.Flags().BoolVar(&gridpathDiagonals, "diagonals", false,
		"allow 8-directional movement")
	rootCmd.AddCommand(gridpathCmd)
}

func runGridpath(cmd *cobra.Command, args []string) error {
	values := make([][]int, len(args))
	for r, row := range args {
		values[r] = make([]int, len(row))
		for c, ch := range row {
			switch ch {
			case '0':
				values[r][c] = 0
			case '1':
				values[r][c] = 1
			default:
				return fmt.Errorf("gridpath: row %d: %q is not a 0/1 digit", r, ch)
			}
		}
	}

	var opts []gridpath.Option
	if gridpathDiagonals {
		opts = append(opts, gridpath.WithDiagonals())
	}

	steps, err := gridpath.ShortestPath(gridpath.FromInts(values), opts...)
	if err != nil {
		return fmt.Errorf("gridpath: %w", err)
	}
	if steps == gridpath.NoPath {
		cmd.Println("no path")
		return nil
	}
	cmd.Printf("steps: %d\n", steps)

	return nil
}
