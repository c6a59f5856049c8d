package curriculum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanchen-dev/skillforge/pkg/catalog"
)

func curriculumStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore([]catalog.Entry{
		{ID: "hello-window", Name: "Hello Window", Category: catalog.CategoryLayout, Difficulty: catalog.DifficultyBeginner},
		{ID: "button-basics", Name: "Button Basics", Category: catalog.CategoryInput, Difficulty: catalog.DifficultyBeginner},
		{ID: "form-validation", Name: "Form Validation", Category: catalog.CategoryForm, Difficulty: catalog.DifficultyIntermediate},
		{ID: "list-view", Name: "List View", Category: catalog.CategoryData, Difficulty: catalog.DifficultyIntermediate},
		{ID: "theme-switching", Name: "Theme Switching", Category: catalog.CategoryTheming, Difficulty: catalog.DifficultyAdvanced},
	})
	require.NoError(t, err)
	return store
}

// Editorial order deliberately differs from both alphabetical and load order.
var testOrder = []string{
	"hello-window",
	"button-basics",
	"list-view",
	"form-validation",
	"theme-switching",
}

func TestNewPlanner(t *testing.T) {
	store := curriculumStore(t)

	t.Run("valid ordering", func(t *testing.T) {
		planner, err := NewPlanner(store, testOrder)
		require.NoError(t, err)
		assert.NotNil(t, planner)
	})

	t.Run("rejects unknown entry", func(t *testing.T) {
		_, err := NewPlanner(store, append(testOrder, "no-such-entry"))
		require.Error(t, err)
		var notFound *catalog.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("rejects duplicate entry", func(t *testing.T) {
		_, err := NewPlanner(store, append(testOrder, "hello-window"))
		assert.Error(t, err)
	})

	t.Run("rejects incomplete ordering", func(t *testing.T) {
		_, err := NewPlanner(store, testOrder[:3])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing from the curriculum")
	})
}

func TestPath(t *testing.T) {
	planner, err := NewPlanner(curriculumStore(t), testOrder)
	require.NoError(t, err)

	t.Run("beginner", func(t *testing.T) {
		path, err := planner.Path("beginner")
		require.NoError(t, err)
		assert.Equal(t, []string{"hello-window", "button-basics"}, path)
	})

	t.Run("intermediate follows editorial order within tier", func(t *testing.T) {
		path, err := planner.Path("intermediate")
		require.NoError(t, err)
		assert.Equal(t, []string{"hello-window", "button-basics", "list-view", "form-validation"}, path)
	})

	t.Run("advanced", func(t *testing.T) {
		path, err := planner.Path("advanced")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"hello-window", "button-basics", "list-view", "form-validation", "theme-switching",
		}, path)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := planner.Path("wizard")
		var unknown *UnknownLevelError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "wizard", unknown.Level)
	})
}

func TestPath_PrefixProperty(t *testing.T) {
	planner, err := NewPlanner(curriculumStore(t), testOrder)
	require.NoError(t, err)

	beginner, err := planner.Path("beginner")
	require.NoError(t, err)
	intermediate, err := planner.Path("intermediate")
	require.NoError(t, err)
	advanced, err := planner.Path("advanced")
	require.NoError(t, err)

	require.Less(t, len(beginner), len(intermediate))
	require.Less(t, len(intermediate), len(advanced))
	assert.Equal(t, beginner, intermediate[:len(beginner)])
	assert.Equal(t, intermediate, advanced[:len(intermediate)])
}

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder([]byte("- hello-window\n- button-basics\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello-window", "button-basics"}, order)

	_, err = ParseOrder([]byte("not: [a, sequence"))
	assert.Error(t, err)
}
