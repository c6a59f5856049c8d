package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hanchen-dev/skillforge/pkg/presenter"
	"github.com/hanchen-dev/skillforge/pkg/uigen"
)

// AppSpec is the YAML application specification consumed by generate.
type AppSpec struct {
	Name       string                `yaml:"name"`
	Components []uigen.ComponentSpec `yaml:"components"`
	Style      string                `yaml:"style"`
	Bindings   []uigen.Binding       `yaml:"bindings"`
}

func parseAppSpec(data []byte) (*AppSpec, error) {
	var spec AppSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal application spec")
	}
	if spec.Name == "" {
		return nil, errors.New("application spec must set a name")
	}
	return &spec, nil
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate application source from a declarative spec",
	Long: `Generate Slint application source from a YAML specification.

The spec declares an application name, a tree of components, optional
style text, and optional event bindings:

    name: Login
    components:
      - type: VerticalBox
        children:
          - type: LineEdit
            id: email
            properties:
              placeholder-text: Email
          - type: Button
            id: go
            properties:
              text: Sign in
    bindings:
      - trigger: clicked
        action: signin
        description: Attempt sign-in

An empty component list is valid and produces a minimal window skeleton.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		specPath, _ := cmd.Flags().GetString("file")
		outPath, _ := cmd.Flags().GetString("output")

		data, err := os.ReadFile(specPath)
		if err != nil {
			return errors.Wrapf(err, "failed to read spec file %s", specPath)
		}

		spec, err := parseAppSpec(data)
		if err != nil {
			return err
		}

		eng, err := newEngine(cmd.Context())
		if err != nil {
			return err
		}

		artifact, err := eng.GenerateApplication(spec.Name, spec.Components, spec.Style, spec.Bindings)
		if err != nil {
			return err
		}

		if outPath == "" {
			fmt.Print(artifact.Source)
			return nil
		}

		if err := os.WriteFile(outPath, []byte(artifact.Source), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", outPath)
		}
		presenter.Success(fmt.Sprintf("generated %s (%d imports)", outPath, len(artifact.Imports)))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("file", "f", "app.yaml", "Application spec file")
	generateCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}
