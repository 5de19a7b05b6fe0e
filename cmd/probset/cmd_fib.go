package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/probset/fib"
)

var fibCmd = &cobra.Command{
	Use:   "fib [n]",
	Short: "Compute the nth Fibonacci number",
	Long: `Computes the nth Fibonacci number (fib(0)=0, fib(1)=1) using
exact big-integer arithmetic, so n in the thousands is fine.

Run without an argument for an interactive prompt loop; type q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFib,
}

func init() {
	rootCmd.AddCommand(fibCmd)
}

func runFib(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return printFib(cmd, args[0])
	}

	// Interactive mode: prompt until q/quit/exit or EOF.
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print("Enter a non-negative integer n (or 'q' to quit): ")
		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "q", "quit", "exit":
			cmd.Println("Goodbye!")
			return nil
		}
		if err := printFib(cmd, input); err != nil {
			cmd.Printf("error: %v\n", err)
		}
	}
}

// printFib parses raw as an index and prints the Fibonacci number, or
// returns a parse/domain error for the caller to report.
func printFib(cmd *cobra.Command, raw string) error {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("fib: %q is not an integer", raw)
	}

	f, err := fib.Fib(n)
	if err != nil {
		if errors.Is(err, fib.ErrNegativeIndex) {
			return err
		}
		return fmt.Errorf("fib: %w", err)
	}
	cmd.Printf("fibonacci(%d) = %s\n", n, f)

	return nil
}
