package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/probset/flatten"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten <json-array>",
	Short: "Flatten a nested JSON array",
	Long: `Flattens a nested JSON array into a single level, preserving
left-to-right leaf order:

  probset flatten '[1,[2,3,[4]],5]'
  -> [1,2,3,4,5]`,
	Args: cobra.ExactArgs(1),
	RunE: runFlatten,
}

func init() {
	rootCmd.AddCommand(flattenCmd)
}

func runFlatten(cmd *cobra.Command, args []string) error {
	var nested []any
	if err := json.Unmarshal([]byte(args[0]), &nested); err != nil {
		return fmt.Errorf("flatten: input must be a JSON array: %w", err)
	}

	flat, err := json.Marshal(flatten.Flatten(nested))
	if err != nil {
		return fmt.Errorf("flatten: encode result: %w", err)
	}
	cmd.Println(string(flat))

	return nil
}
