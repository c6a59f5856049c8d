// Package bundled embeds the default data pack: the skill catalog authored
// as markdown files with YAML frontmatter, the default blueprints, the
// curriculum ordering, and the recommendation anchor table. Callers with
// their own catalogs bypass this package entirely.
package bundled

import (
	"embed"
	"io/fs"

	"github.com/pkg/errors"

	"github.com/hanchen-dev/skillforge/pkg/blueprint"
	"github.com/hanchen-dev/skillforge/pkg/catalog"
	"github.com/hanchen-dev/skillforge/pkg/curriculum"
	"github.com/hanchen-dev/skillforge/pkg/ranking"
)

//go:embed skills/*.md blueprints.yaml curriculum.yaml anchors.yaml
var content embed.FS

// FS returns the embedded data pack. Skill markdown lives under skills/.
func FS() fs.FS {
	return content
}

// Blueprints returns the default blueprint set.
func Blueprints() ([]blueprint.Blueprint, error) {
	data, err := content.ReadFile("blueprints.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bundled blueprints")
	}
	return blueprint.ParseBlueprints(data)
}

// CurriculumOrder returns the default editorial learning-path ordering.
func CurriculumOrder() ([]string, error) {
	data, err := content.ReadFile("curriculum.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bundled curriculum")
	}
	return curriculum.ParseOrder(data)
}

// Anchors returns the default task-anchor table.
func Anchors() (map[string][]catalog.Category, error) {
	data, err := content.ReadFile("anchors.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bundled anchors")
	}
	return ranking.ParseAnchors(data)
}
