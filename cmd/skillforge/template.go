package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hanchen-dev/skillforge/pkg/blueprint"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "List and render code templates",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered template categories and variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tVARIANTS")
		for _, category := range blueprint.Categories() {
			variants := eng.Registry().Variants(category)
			if len(variants) == 0 {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\n", category, strings.Join(variants, ", "))
		}
		return w.Flush()
	},
}

var templateRenderCmd = &cobra.Command{
	Use:   "render <category> <variant>",
	Short: "Render a template with parameters",
	Long: `Render one registered template to stdout.

Parameters are supplied as repeated --param name=value flags. Every
placeholder the template declares required must be provided.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawParams, _ := cmd.Flags().GetStringArray("param")
		params, err := parseParams(rawParams)
		if err != nil {
			return err
		}

		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}

		out, err := eng.RenderTemplate(args[0], args[1], params)
		if err != nil {
			return err
		}

		fmt.Print(out)
		return nil
	},
}

func parseParams(raw []string) (map[string]string, error) {
	params := make(map[string]string, len(raw))
	for _, pair := range raw {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, errors.Errorf("invalid --param %q, expected name=value", pair)
		}
		params[name] = value
	}
	return params, nil
}

func init() {
	templateRenderCmd.Flags().StringArray("param", nil, "Template parameter as name=value (repeatable)")
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateRenderCmd)
}
