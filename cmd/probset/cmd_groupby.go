package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/probset/groupby"
)

var groupbyCmd = &cobra.Command{
	Use:   "groupby <key> [json-records]",
	Short: "Group JSON records by a field",
	Long: `Groups a JSON array of objects by the given field, printing one
bucket per line in first-occurrence order. Records without the field are
bucketed under null. Records come from the second argument, or from stdin:

  probset groupby a '[{"a":1},{"a":2},{"b":3}]'
  cat items.json | probset groupby a`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGroupby,
}

func init() {
	rootCmd.AddCommand(groupbyCmd)
}

func runGroupby(cmd *cobra.Command, args []string) error {
	raw := []byte{}
	if len(args) == 2 {
		raw = []byte(args[1])
	} else {
		var err error
		if raw, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("groupby: read stdin: %w", err)
		}
	}

	var items []groupby.Record
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("groupby: input must be a JSON array of objects: %w", err)
	}

	g := groupby.GroupByKey(items, args[0])
	for _, key := range g.Keys() {
		recs, _ := g.Get(key)
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("groupby: encode key: %w", err)
		}
		recsJSON, err := json.Marshal(recs)
		if err != nil {
			return fmt.Errorf("groupby: encode bucket: %w", err)
		}
		cmd.Printf("%s: %s\n", keyJSON, recsJSON)
	}

	return nil
}
