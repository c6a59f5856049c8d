// Package curriculum derives ordered learning paths from the catalog. The
// ordering is editorial, declared alongside the catalog content, rather
// than alphabetical or score-based.
package curriculum

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hanchen-dev/skillforge/pkg/catalog"
)

// UnknownLevelError reports a learning-path request for a level outside
// beginner/intermediate/advanced.
type UnknownLevelError struct {
	Level string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("unknown proficiency level %q", e.Level)
}

// Planner assembles learning paths by filtering the store to a proficiency
// tier and ordering entries by curriculum rank.
type Planner struct {
	store *catalog.Store
	rank  map[string]int
}

// NewPlanner creates a planner from the store and the editorial ordering of
// entry identifiers. Every store entry must appear in the ordering exactly
// once, otherwise it could not be placed on any path.
func NewPlanner(store *catalog.Store, order []string) (*Planner, error) {
	rank := make(map[string]int, len(order))
	for i, id := range order {
		if _, dup := rank[id]; dup {
			return nil, errors.Errorf("curriculum lists entry %q twice", id)
		}
		if _, err := store.ByID(id); err != nil {
			return nil, errors.Wrap(err, "curriculum references unknown entry")
		}
		rank[id] = i
	}

	for _, entry := range store.All() {
		if _, ok := rank[entry.ID]; !ok {
			return nil, errors.Errorf("entry %q is missing from the curriculum", entry.ID)
		}
	}

	return &Planner{store: store, rank: rank}, nil
}

// Path returns the ordered entry identifiers making up the learning path
// for the named level. Entries are limited to difficulty tiers at or below
// the level and ordered by tier first, then curriculum rank, so each
// level's path extends the previous level's.
func (p *Planner) Path(level string) ([]string, error) {
	ceiling, err := catalog.ParseDifficulty(level)
	if err != nil {
		return nil, &UnknownLevelError{Level: level}
	}

	var entries []catalog.Entry
	for _, entry := range p.store.All() {
		if entry.Difficulty <= ceiling {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Difficulty != entries[j].Difficulty {
			return entries[i].Difficulty < entries[j].Difficulty
		}
		return p.rank[entries[i].ID] < p.rank[entries[j].ID]
	})

	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = entry.ID
	}
	return ids, nil
}

// ParseOrder reads an editorial ordering from a YAML sequence of entry
// identifiers.
func ParseOrder(data []byte) ([]string, error) {
	var order []string
	if err := yaml.Unmarshal(data, &order); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal curriculum order")
	}
	return order, nil
}
