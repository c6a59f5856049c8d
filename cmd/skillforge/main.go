// Command skillforge is the CLI over the skill catalog search and template
// code generation engine.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanchen-dev/skillforge/pkg/catalog"
	"github.com/hanchen-dev/skillforge/pkg/curriculum"
	"github.com/hanchen-dev/skillforge/pkg/engine"
	"github.com/hanchen-dev/skillforge/pkg/logger"
	"github.com/hanchen-dev/skillforge/pkg/presenter"
	"github.com/hanchen-dev/skillforge/pkg/ranking"
)

func init() {
	viper.SetEnvPrefix("SKILLFORGE")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillforge")
	viper.AddConfigPath(".")

	// Load config file if present; absence is fine.
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillforge",
	Short: "Search the UI skill catalog and generate Slint code",
	Long: `skillforge is a learning-skill catalog and code generator for Slint UIs.

It finds catalog entries relevant to a task, plans learning paths by
proficiency level, and assembles application source from declarative
component specifications.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

// newEngine builds the engine from CLI configuration: the bundled data
// pack by default, or a catalog directory holding skills/*.md plus
// curriculum.yaml and optionally anchors.yaml.
func newEngine(ctx context.Context) (*engine.Engine, error) {
	catalogDir := viper.GetString("catalog_dir")
	if catalogDir == "" {
		return engine.New(ctx)
	}

	logger.G(ctx).WithField("dir", catalogDir).Debug("loading catalog directory")

	dirFS := os.DirFS(catalogDir)
	entries, err := catalog.LoadFS(ctx, dirFS)
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{engine.WithEntries(entries)}

	orderData, err := os.ReadFile(filepath.Join(catalogDir, "curriculum.yaml"))
	if err == nil {
		order, err := curriculum.ParseOrder(orderData)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithCurriculum(order))
	} else {
		// Without an editorial ordering, fall back to load order.
		order := make([]string, len(entries))
		for i, entry := range entries {
			order[i] = entry.ID
		}
		opts = append(opts, engine.WithCurriculum(order))
	}

	if anchorData, err := os.ReadFile(filepath.Join(catalogDir, "anchors.yaml")); err == nil {
		anchors, err := ranking.ParseAnchors(anchorData)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithAnchors(anchors))
	}

	return engine.New(ctx, opts...)
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().String("catalog-dir", "", "Load the catalog from a directory instead of the bundled one")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("catalog_dir", rootCmd.PersistentFlags().Lookup("catalog-dir"))

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
