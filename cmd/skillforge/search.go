package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hanchen-dev/skillforge/pkg/engine"
	"github.com/hanchen-dev/skillforge/pkg/presenter"
)

type SearchConfig struct {
	Limit int
}

func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Limit: 10,
	}
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the skill catalog by keywords",
	Long: `Search the skill catalog with a free-text query.

Entries are ranked by lexical overlap: exact keyword matches weigh most,
followed by name and description matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := NewSearchConfig()
		config.Limit, _ = cmd.Flags().GetInt("limit")

		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}

		hits := eng.Search(strings.Join(args, " "))
		printHits(eng, hits, config.Limit)
		return nil
	},
}

func printHits(eng *engine.Engine, hits []engine.SearchHit, limit int) {
	if len(hits) == 0 {
		presenter.Info("No matching catalog entries.")
		return
	}
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCORE\tDIFFICULTY\tMATCHED KEYWORDS")
	for _, hit := range hits {
		difficulty := ""
		if entry, err := eng.Catalog().ByID(hit.EntryID); err == nil {
			difficulty = entry.Difficulty.String()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", hit.EntryID, hit.Score, difficulty, strings.Join(hit.MatchedKeywords, ", "))
	}
	w.Flush()
}

func init() {
	searchCmd.Flags().Int("limit", 10, "Maximum number of results to show")
}
