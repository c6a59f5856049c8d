// Package catalog provides the immutable skill catalog: learning entries
// loaded once at startup from markdown sources with YAML frontmatter and
// served read-only for the remainder of the process.
package catalog

import (
	"strings"

	"github.com/pkg/errors"
)

// Category classifies a catalog entry by the UI concern it teaches.
type Category string

const (
	CategoryLayout     Category = "layout"
	CategoryInput      Category = "input"
	CategoryForm       Category = "form"
	CategoryDisplay    Category = "display"
	CategoryNavigation Category = "navigation"
	CategoryFeedback   Category = "feedback"
	CategoryData       Category = "data"
	CategoryState      Category = "state"
	CategoryTheming    Category = "theming"
	CategoryAnimation  Category = "animation"
	CategoryTesting    Category = "testing"
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryLayout,
		CategoryInput,
		CategoryForm,
		CategoryDisplay,
		CategoryNavigation,
		CategoryFeedback,
		CategoryData,
		CategoryState,
		CategoryTheming,
		CategoryAnimation,
		CategoryTesting,
	}
}

// ParseCategory converts a string to a Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", errors.Errorf("unknown category %q", s)
}

// Difficulty is the ordered proficiency tier of an entry.
type Difficulty int

const (
	DifficultyBeginner Difficulty = iota + 1
	DifficultyIntermediate
	DifficultyAdvanced
)

// ParseDifficulty converts a string to a Difficulty, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return DifficultyBeginner, nil
	case "intermediate":
		return DifficultyIntermediate, nil
	case "advanced":
		return DifficultyAdvanced, nil
	default:
		return 0, errors.Errorf("unknown difficulty %q", s)
	}
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "beginner"
	case DifficultyIntermediate:
		return "intermediate"
	case DifficultyAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// Entry is one documented learning skill. Entries are immutable once the
// store is constructed.
type Entry struct {
	ID          string
	Name        string
	Category    Category
	Difficulty  Difficulty
	Description string
	Keywords    []string
	// ContentPath locates the entry's markdown body relative to the catalog
	// root. The engine treats it as opaque and never dereferences it.
	ContentPath string
}

// Validate checks that the entry's fields are well-formed.
func (e Entry) Validate() error {
	if e.ID == "" {
		return errors.New("entry id is required")
	}
	if e.Name == "" {
		return errors.Errorf("entry %q: name is required", e.ID)
	}
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return errors.Wrapf(err, "entry %q", e.ID)
	}
	if e.Difficulty < DifficultyBeginner || e.Difficulty > DifficultyAdvanced {
		return errors.Errorf("entry %q: invalid difficulty %d", e.ID, e.Difficulty)
	}
	return nil
}
