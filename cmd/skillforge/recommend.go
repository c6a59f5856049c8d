package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <task description>",
	Short: "Recommend catalog entries for a task",
	Long: `Recommend catalog entries for a free-text task description.

Recommendation uses the same lexical ranking as search, plus a boost for
entries whose category is anchored by words in the task (for example a
task mentioning "validate" boosts form and input entries).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}

		hits := eng.RecommendForTask(strings.Join(args, " "))
		printHits(eng, hits, limit)
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("limit", 10, "Maximum number of results to show")
}
