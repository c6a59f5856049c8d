// Package engine assembles the catalog store, relevance ranker, curriculum
// planner, blueprint registry, and code assembler behind one programmatic
// API. Construction is the single initialization barrier: an Engine is
// immutable once built and safe for concurrent callers.
package engine

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hanchen-dev/skillforge/pkg/blueprint"
	"github.com/hanchen-dev/skillforge/pkg/bundled"
	"github.com/hanchen-dev/skillforge/pkg/catalog"
	"github.com/hanchen-dev/skillforge/pkg/curriculum"
	"github.com/hanchen-dev/skillforge/pkg/ranking"
	"github.com/hanchen-dev/skillforge/pkg/uigen"
)

// SearchHit is one ranked catalog match.
type SearchHit struct {
	EntryID         string
	Score           int
	MatchedKeywords []string
}

// Engine is the facade over the search and generation subsystems.
type Engine struct {
	store     *catalog.Store
	registry  *blueprint.Registry
	ranker    *ranking.Ranker
	planner   *curriculum.Planner
	assembler *uigen.Assembler
}

type config struct {
	entries    []catalog.Entry
	blueprints []blueprint.Blueprint
	order      []string
	anchors    map[string][]catalog.Category
	maxDepth   int
}

// Option configures engine construction.
type Option func(*config) error

// WithEntries supplies the catalog entries, replacing the bundled catalog.
func WithEntries(entries []catalog.Entry) Option {
	return func(c *config) error {
		c.entries = entries
		return nil
	}
}

// WithBlueprints supplies the blueprint set, replacing the bundled one.
func WithBlueprints(blueprints []blueprint.Blueprint) Option {
	return func(c *config) error {
		c.blueprints = blueprints
		return nil
	}
}

// WithCurriculum supplies the editorial learning-path ordering.
func WithCurriculum(order []string) Option {
	return func(c *config) error {
		c.order = order
		return nil
	}
}

// WithAnchors supplies the recommendation anchor table.
func WithAnchors(anchors map[string][]catalog.Category) Option {
	return func(c *config) error {
		c.anchors = anchors
		return nil
	}
}

// WithMaxDepth overrides the component nesting cutoff.
func WithMaxDepth(depth int) Option {
	return func(c *config) error {
		if depth < 1 {
			return errors.Errorf("max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth
		return nil
	}
}

// New builds an engine. Unset pieces fall back to the bundled data pack, so
// New(ctx) yields a fully working engine over the default catalog.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	c := &config{maxDepth: uigen.DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := c.fillDefaults(ctx); err != nil {
		return nil, err
	}

	store, err := catalog.NewStore(c.entries)
	if err != nil {
		return nil, err
	}

	registry, err := blueprint.NewRegistry(c.blueprints...)
	if err != nil {
		return nil, err
	}

	ranker, err := ranking.NewRanker(ranking.WithAnchors(c.anchors))
	if err != nil {
		return nil, err
	}

	planner, err := curriculum.NewPlanner(store, c.order)
	if err != nil {
		return nil, err
	}

	renderer, err := uigen.NewRenderer(uigen.WithMaxDepth(c.maxDepth))
	if err != nil {
		return nil, err
	}

	assembler, err := uigen.NewAssembler(registry, renderer)
	if err != nil {
		return nil, err
	}

	return &Engine{
		store:     store,
		registry:  registry,
		ranker:    ranker,
		planner:   planner,
		assembler: assembler,
	}, nil
}

func (c *config) fillDefaults(ctx context.Context) error {
	if c.entries == nil {
		entries, err := catalog.LoadFS(ctx, bundled.FS())
		if err != nil {
			return errors.Wrap(err, "failed to load bundled catalog")
		}
		c.entries = entries
	}
	if c.blueprints == nil {
		blueprints, err := bundled.Blueprints()
		if err != nil {
			return err
		}
		c.blueprints = blueprints
	}
	if c.order == nil {
		order, err := bundled.CurriculumOrder()
		if err != nil {
			return err
		}
		c.order = order
	}
	if c.anchors == nil {
		anchors, err := bundled.Anchors()
		if err != nil {
			return err
		}
		c.anchors = anchors
	}
	return nil
}

// Catalog exposes the read-only catalog store.
func (e *Engine) Catalog() *catalog.Store {
	return e.store
}

// Registry exposes the read-only blueprint registry.
func (e *Engine) Registry() *blueprint.Registry {
	return e.registry
}

// Search returns ranked catalog matches for a free-text query.
func (e *Engine) Search(query string) []SearchHit {
	return toHits(e.ranker.Search(query, e.store.All()))
}

// RecommendForTask returns ranked catalog matches for a task description,
// with category anchor boosting applied.
func (e *Engine) RecommendForTask(taskDescription string) []SearchHit {
	return toHits(e.ranker.RecommendForTask(taskDescription, e.store.All()))
}

// LearningPath returns the ordered entry identifiers for a proficiency
// level.
func (e *Engine) LearningPath(level string) ([]string, error) {
	return e.planner.Path(level)
}

// RenderTemplate fills one registered blueprint with params.
func (e *Engine) RenderTemplate(category, variant string, params map[string]string) (string, error) {
	parsed, err := blueprint.ParseCategory(category)
	if err != nil {
		return "", err
	}
	return e.registry.Render(parsed, variant, params)
}

// GenerateApplication produces one source artifact from component specs,
// style text, and event bindings.
func (e *Engine) GenerateApplication(name string, roots []uigen.ComponentSpec, styleText string, bindings []uigen.Binding) (*uigen.Artifact, error) {
	return e.assembler.GenerateApplication(name, roots, styleText, bindings)
}

func toHits(results []ranking.Result) []SearchHit {
	hits := make([]SearchHit, 0, len(results))
	for _, result := range results {
		hits = append(hits, SearchHit{
			EntryID:         result.Entry.ID,
			Score:           result.Score,
			MatchedKeywords: result.MatchedKeywords,
		})
	}
	return hits
}
