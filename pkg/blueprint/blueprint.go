// Package blueprint provides the immutable template registry: named,
// parameterized text patterns filled by literal placeholder substitution.
// Substitution is a two-pass process: a fill pass replaces every known
// {{name}} token, then a verify pass rejects any placeholder-shaped token
// left in the output, which catches both missing parameters that were not
// declared required and typos in blueprint authoring.
package blueprint

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Category names the kind of artifact a blueprint produces.
type Category string

const (
	CategoryApplication      Category = "application"
	CategoryComponent        Category = "component"
	CategoryNavigationScreen Category = "navigation-screen"
	CategoryDialog           Category = "dialog"
	CategoryTestCase         Category = "test-case"
	CategoryStyleSheet       Category = "style-sheet"
	CategoryEventHandler     Category = "event-handler"
	CategoryStateBinding     Category = "state-binding"
)

// Categories lists every valid blueprint category.
func Categories() []Category {
	return []Category{
		CategoryApplication,
		CategoryComponent,
		CategoryNavigationScreen,
		CategoryDialog,
		CategoryTestCase,
		CategoryStyleSheet,
		CategoryEventHandler,
		CategoryStateBinding,
	}
}

// ParseCategory converts a string to a blueprint Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", errors.Errorf("unknown blueprint category %q", s)
}

// Blueprint is one parameterized text pattern. Placeholders take the form
// {{name}}; the ones listed in Required must be supplied at render time, in
// which case missing-parameter errors report them in declaration order.
type Blueprint struct {
	Category Category `yaml:"category"`
	Variant  string   `yaml:"variant"`
	Text     string   `yaml:"text"`
	Required []string `yaml:"required"`
}

// Validate checks the blueprint's shape at registration time.
func (b Blueprint) Validate() error {
	if _, err := ParseCategory(string(b.Category)); err != nil {
		return err
	}
	if b.Variant == "" {
		return errors.Errorf("blueprint in category %q has no variant name", b.Category)
	}
	for _, name := range b.Required {
		if !placeholderName.MatchString(name) {
			return errors.Errorf("blueprint %s/%s: invalid required placeholder name %q", b.Category, b.Variant, name)
		}
	}
	return nil
}

var (
	// placeholder matches well-formed {{name}} tokens during the fill pass.
	placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
	// leftover matches any placeholder-shaped token during the verify pass.
	leftover = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	// placeholderName validates declared required-placeholder names.
	placeholderName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ParseBlueprints reads a YAML sequence of blueprints.
func ParseBlueprints(data []byte) ([]Blueprint, error) {
	var blueprints []Blueprint
	if err := yaml.Unmarshal(data, &blueprints); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal blueprints")
	}
	return blueprints, nil
}
