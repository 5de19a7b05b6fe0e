package main

import "github.com/spf13/cobra"

// rootCmd is the entry point; every problem registers a subcommand on it.
var rootCmd = &cobra.Command{
	Use:   "probset",
	Short: "Interactive demos for the probset practice problems",
	Long: `probset exposes each practice problem as a subcommand:

  evensum   sum of even numbers in [1, n]
  anagram   case- and punctuation-insensitive anagram check
  fib       Fibonacci numbers (interactive when run without arguments)
  flatten   flatten a nested JSON array
  groupby   group JSON records by a field
  gridpath  BFS shortest path across a 0/1 grid

Each subcommand calls the matching library package and prints the result;
the library itself stays free of any I/O.`,
	SilenceUsage: true,
}
