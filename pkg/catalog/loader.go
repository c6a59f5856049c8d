package catalog

import (
	"bytes"
	"context"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/hanchen-dev/skillforge/pkg/logger"
)

// LoadFS reads every markdown entry file under fsys and returns the parsed
// entries in path order. Each file carries YAML frontmatter (id, name,
// category, difficulty, description, keywords); the body below the
// frontmatter is the human-readable lesson and is not loaded into memory.
// Malformed files are collected into a single aggregated error so authors
// see every problem at once.
func LoadFS(ctx context.Context, fsys fs.FS) ([]Entry, error) {
	paths, err := doublestar.Glob(fsys, "**/*.md")
	if err != nil {
		return nil, errors.Wrap(err, "failed to glob catalog files")
	}
	sort.Strings(paths)

	log := logger.G(ctx)
	var entries []Entry
	var merr *multierror.Error

	for _, path := range paths {
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "failed to read %s", path))
			continue
		}

		entry, err := parseEntry(path, content)
		if err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "failed to parse %s", path))
			continue
		}

		log.WithField("entry", entry.ID).Debug("loaded catalog entry")
		entries = append(entries, entry)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadStoreFS is a convenience wrapper that loads entries from fsys and
// constructs a Store from them.
func LoadStoreFS(ctx context.Context, fsys fs.FS) (*Store, error) {
	entries, err := LoadFS(ctx, fsys)
	if err != nil {
		return nil, err
	}
	return NewStore(entries)
}

// parseEntry extracts an Entry from one markdown file's frontmatter.
func parseEntry(path string, content []byte) (Entry, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return Entry{}, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return Entry{}, errors.New("missing frontmatter")
	}

	id, _ := metaData["id"].(string)
	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)
	categoryRaw, _ := metaData["category"].(string)
	difficultyRaw, _ := metaData["difficulty"].(string)

	category, err := ParseCategory(categoryRaw)
	if err != nil {
		return Entry{}, err
	}
	difficulty, err := ParseDifficulty(difficultyRaw)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:          id,
		Name:        name,
		Category:    category,
		Difficulty:  difficulty,
		Description: description,
		Keywords:    stringList(metaData["keywords"]),
		ContentPath: path,
	}
	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// stringList coerces a frontmatter YAML sequence into a []string.
func stringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
