package ranking

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hanchen-dev/skillforge/pkg/catalog"
)

// DefaultAnchors returns the built-in anchor-to-category table used by task
// recommendation. The vocabulary is editorial content and deliberately
// small; callers with richer catalogs supply their own table.
func DefaultAnchors() map[string][]catalog.Category {
	return map[string][]catalog.Category{
		"validate":   {catalog.CategoryInput, catalog.CategoryForm},
		"form":       {catalog.CategoryForm, catalog.CategoryInput},
		"input":      {catalog.CategoryInput},
		"type":       {catalog.CategoryInput},
		"navigate":   {catalog.CategoryNavigation},
		"navigation": {catalog.CategoryNavigation},
		"screen":     {catalog.CategoryNavigation},
		"page":       {catalog.CategoryNavigation},
		"style":      {catalog.CategoryTheming},
		"theme":      {catalog.CategoryTheming},
		"color":      {catalog.CategoryTheming},
		"dark":       {catalog.CategoryTheming},
		"animate":    {catalog.CategoryAnimation},
		"animation":  {catalog.CategoryAnimation},
		"transition": {catalog.CategoryAnimation},
		"list":       {catalog.CategoryData},
		"table":      {catalog.CategoryData},
		"model":      {catalog.CategoryData},
		"test":       {catalog.CategoryTesting},
		"testing":    {catalog.CategoryTesting},
		"dialog":     {catalog.CategoryFeedback},
		"popup":      {catalog.CategoryFeedback},
		"alert":      {catalog.CategoryFeedback},
		"notify":     {catalog.CategoryFeedback},
		"layout":     {catalog.CategoryLayout},
		"arrange":    {catalog.CategoryLayout},
		"grid":       {catalog.CategoryLayout},
		"state":      {catalog.CategoryState},
		"bind":       {catalog.CategoryState},
		"binding":    {catalog.CategoryState},
		"display":    {catalog.CategoryDisplay},
		"show":       {catalog.CategoryDisplay},
	}
}

// ParseAnchors reads an anchor table from YAML of the form
//
//	validate: [input, form]
//	navigate: [navigation]
//
// and validates every category name.
func ParseAnchors(data []byte) (map[string][]catalog.Category, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal anchor table")
	}

	anchors := make(map[string][]catalog.Category, len(raw))
	for word, names := range raw {
		for _, name := range names {
			category, err := catalog.ParseCategory(name)
			if err != nil {
				return nil, errors.Wrapf(err, "anchor %q", word)
			}
			anchors[word] = append(anchors[word], category)
		}
	}
	return anchors, nil
}
