package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/probset/evensum"
)

var evensumCmd = &cobra.Command{
	Use:   "evensum <n>",
	Short: "Sum the even numbers from 1 to n",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvensum,
}

func init() {
	rootCmd.AddCommand(evensumCmd)
}

func runEvensum(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("evensum: %q is not an integer", args[0])
	}
	cmd.Printf("sum_of_even(%d) = %d\n", n, evensum.SumOfEven(n))

	return nil
}
