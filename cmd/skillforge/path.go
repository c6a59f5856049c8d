package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanchen-dev/skillforge/pkg/presenter"
)

var pathCmd = &cobra.Command{
	Use:   "path <level>",
	Short: "Show the learning path for a proficiency level",
	Long: `Show the ordered learning path for beginner, intermediate, or advanced.

Each level's path extends the previous one, so learners never revisit
earlier material when they level up.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}

		ids, err := eng.LearningPath(args[0])
		if err != nil {
			return err
		}

		presenter.Section(fmt.Sprintf("Learning path (%s)", args[0]))
		for i, id := range ids {
			entry, err := eng.Catalog().ByID(id)
			if err != nil {
				return err
			}
			presenter.Info(fmt.Sprintf("%2d. %s - %s (%s)", i+1, id, entry.Name, entry.Difficulty))
		}
		return nil
	},
}
