// Package ranking scores catalog entries against free-text queries using
// lexical overlap. It backs both keyword search and task-based
// recommendation; all scoring is deterministic and purely in-memory.
package ranking

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hanchen-dev/skillforge/pkg/catalog"
)

const (
	// keywordWeight is awarded per query token equal to an entry keyword.
	keywordWeight = 3
	// nameWeight is awarded per query token appearing in the entry name.
	nameWeight = 2
	// descriptionWeight is awarded per query token appearing in the description.
	descriptionWeight = 1
	// anchorBoost is awarded per task anchor word matching the entry category.
	anchorBoost = 5
)

// Result pairs an entry with its relevance score and the keyword matches
// that produced it.
type Result struct {
	Entry           catalog.Entry
	Score           int
	MatchedKeywords []string
}

// Ranker scores entries against queries. The anchor table maps task words
// to the categories they boost; it is configuration data supplied at
// construction, not logic.
type Ranker struct {
	anchors map[string][]catalog.Category
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithAnchors sets a custom anchor-to-category table for task recommendation.
func WithAnchors(anchors map[string][]catalog.Category) Option {
	return func(r *Ranker) error {
		r.anchors = anchors
		return nil
	}
}

// NewRanker creates a ranker, defaulting to the built-in anchor table.
func NewRanker(opts ...Option) (*Ranker, error) {
	r := &Ranker{}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.anchors == nil {
		r.anchors = DefaultAnchors()
	}
	return r, nil
}

// Tokenize splits text into lowercase word tokens on non-alphanumeric
// boundaries, deduplicated in first-seen order.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool, len(fields))
	var tokens []string
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Search scores every entry against the query and returns the non-zero
// matches ordered by descending score. Ties break by ascending difficulty,
// then by identifier, so output is deterministic. An empty query or empty
// catalog yields an empty result, never an error.
func (r *Ranker) Search(query string, entries []catalog.Entry) []Result {
	return r.rank(Tokenize(query), entries, nil)
}

// RecommendForTask applies the search scoring to a free-text task
// description and additionally boosts entries whose category is anchored by
// a word in the task (e.g. "validate" boosts form and input entries).
func (r *Ranker) RecommendForTask(taskDescription string, entries []catalog.Entry) []Result {
	tokens := Tokenize(taskDescription)

	boosts := make(map[catalog.Category]int)
	for _, token := range tokens {
		for _, category := range r.anchors[token] {
			boosts[category] += anchorBoost
		}
	}

	return r.rank(tokens, entries, boosts)
}

func (r *Ranker) rank(tokens []string, entries []catalog.Entry, boosts map[catalog.Category]int) []Result {
	if len(tokens) == 0 {
		return nil
	}

	var results []Result
	for _, entry := range entries {
		score, matched := scoreEntry(tokens, entry)
		score += boosts[entry.Category]
		if score == 0 {
			continue
		}
		results = append(results, Result{
			Entry:           entry,
			Score:           score,
			MatchedKeywords: matched,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Entry.Difficulty != b.Entry.Difficulty {
			return a.Entry.Difficulty < b.Entry.Difficulty
		}
		return a.Entry.ID < b.Entry.ID
	})

	return results
}

// scoreEntry computes the lexical overlap score for one entry and records
// which keywords matched, for explainability.
func scoreEntry(tokens []string, entry catalog.Entry) (int, []string) {
	name := strings.ToLower(entry.Name)
	description := strings.ToLower(entry.Description)

	score := 0
	var matched []string
	for _, token := range tokens {
		for _, keyword := range entry.Keywords {
			if token == strings.ToLower(keyword) {
				score += keywordWeight
				matched = append(matched, keyword)
			}
		}
		if strings.Contains(name, token) {
			score += nameWeight
		}
		if strings.Contains(description, token) {
			score += descriptionWeight
		}
	}
	return score, matched
}
