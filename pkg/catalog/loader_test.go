package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloWindowMD = `---
id: hello-window
name: Hello Window
category: layout
difficulty: beginner
description: A minimal application window
keywords:
  - window
  - hello
---

# Hello Window

Open a window and give it a title.
`

const listViewMD = `---
id: list-view
name: List View
category: data
difficulty: intermediate
description: Rendering collections with a list view
keywords:
  - list
  - model
---

# List View
`

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"skills/hello-window.md": {Data: []byte(helloWindowMD)},
		"skills/list-view.md":    {Data: []byte(listViewMD)},
	}

	entries, err := LoadFS(context.Background(), fsys)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	hello := entries[0]
	assert.Equal(t, "hello-window", hello.ID)
	assert.Equal(t, "Hello Window", hello.Name)
	assert.Equal(t, CategoryLayout, hello.Category)
	assert.Equal(t, DifficultyBeginner, hello.Difficulty)
	assert.Equal(t, []string{"window", "hello"}, hello.Keywords)
	assert.Equal(t, "skills/hello-window.md", hello.ContentPath)

	assert.Equal(t, "list-view", entries[1].ID)
	assert.Equal(t, DifficultyIntermediate, entries[1].Difficulty)
}

func TestLoadFS_DeterministicOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"skills/b.md": {Data: []byte(listViewMD)},
		"skills/a.md": {Data: []byte(helloWindowMD)},
	}

	entries, err := LoadFS(context.Background(), fsys)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "skills/a.md", entries[0].ContentPath)
	assert.Equal(t, "skills/b.md", entries[1].ContentPath)
}

func TestLoadFS_AggregatesFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"skills/good.md":           {Data: []byte(helloWindowMD)},
		"skills/no-frontmatter.md": {Data: []byte("# Just a heading\n")},
		"skills/bad-category.md": {Data: []byte(`---
id: bad
name: Bad
category: widgets
difficulty: beginner
description: nope
---
`)},
	}

	_, err := LoadFS(context.Background(), fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-frontmatter.md")
	assert.Contains(t, err.Error(), "bad-category.md")
}

func TestLoadStoreFS(t *testing.T) {
	fsys := fstest.MapFS{
		"skills/hello-window.md": {Data: []byte(helloWindowMD)},
	}

	store, err := LoadStoreFS(context.Background(), fsys)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestLoadFS_EmptyTree(t *testing.T) {
	entries, err := LoadFS(context.Background(), fstest.MapFS{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}
