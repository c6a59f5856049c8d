package uigen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanchen-dev/skillforge/pkg/blueprint"
)

const applicationText = `{{import_block}}export component {{app_name}} inherits Window {
    title: "{{app_name}}";
{{body}}{{binding_block}}}
{{style_block}}`

const callbackStubText = `    {{trigger}} => {
        // {{description}}
        root.{{action}}();
    }
`

func newTestAssembler(t *testing.T, opts ...AssemblerOption) *Assembler {
	t.Helper()

	registry, err := blueprint.NewRegistry(
		blueprint.Blueprint{
			Category: blueprint.CategoryApplication,
			Variant:  DefaultApplicationVariant,
			Text:     applicationText,
			Required: []string{"app_name", "import_block", "body", "style_block", "binding_block"},
		},
		blueprint.Blueprint{
			Category: blueprint.CategoryEventHandler,
			Variant:  DefaultBindingVariant,
			Text:     callbackStubText,
			Required: []string{"trigger", "action", "description"},
		},
	)
	require.NoError(t, err)

	renderer, err := NewRenderer()
	require.NoError(t, err)

	assembler, err := NewAssembler(registry, renderer, opts...)
	require.NoError(t, err)
	return assembler
}

// assertBalanced checks that every opened brace is closed. Fixture inputs
// avoid braces inside string literals so a plain count suffices.
func assertBalanced(t *testing.T, source string) {
	t.Helper()
	depth := 0
	for _, r := range source {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}
		require.GreaterOrEqual(t, depth, 0, "closing brace before opening in:\n%s", source)
	}
	assert.Zero(t, depth, "unbalanced braces in:\n%s", source)
}

func TestGenerateApplication_EmptyRootsProducesSkeleton(t *testing.T) {
	a := newTestAssembler(t)

	artifact, err := a.GenerateApplication("Demo", nil, "", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, artifact.Source)
	assert.Empty(t, artifact.Imports)
	assert.Contains(t, artifact.Source, "export component Demo inherits Window {")
	assert.NotContains(t, artifact.Source, "{{")
	assertBalanced(t, artifact.Source)
}

func TestGenerateApplication_SingleButton(t *testing.T) {
	a := newTestAssembler(t)

	artifact, err := a.GenerateApplication("Demo", []ComponentSpec{
		{
			Type:       "Button",
			ID:         "go",
			Properties: map[string]interface{}{"label": "Go"},
		},
	}, "", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Button"}, artifact.Imports)
	assert.Contains(t, artifact.Source, `import { Button } from "std-widgets.slint";`)
	assert.Equal(t, 1, strings.Count(artifact.Source, "go := Button"))
	assertBalanced(t, artifact.Source)
}

func TestGenerateApplication_MergesAndSortsImports(t *testing.T) {
	a := newTestAssembler(t)

	artifact, err := a.GenerateApplication("Demo", []ComponentSpec{
		{Type: "VerticalBox", Children: []ComponentSpec{{Type: "Button"}}},
		{Type: "Button"},
		{Type: "LineEdit"},
	}, "", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Button", "LineEdit", "VerticalBox"}, artifact.Imports)
	assert.Contains(t, artifact.Source, `import { Button, LineEdit, VerticalBox } from "std-widgets.slint";`)
}

func TestGenerateApplication_RootOrderPreserved(t *testing.T) {
	a := newTestAssembler(t)

	artifact, err := a.GenerateApplication("Demo", []ComponentSpec{
		{Type: "Header"},
		{Type: "Footer"},
	}, "", nil)
	require.NoError(t, err)

	assert.Less(t,
		strings.Index(artifact.Source, "Header {"),
		strings.Index(artifact.Source, "Footer {"),
	)
}

func TestGenerateApplication_StyleTextVerbatim(t *testing.T) {
	a := newTestAssembler(t)

	style := "global Palette {\n    out property <color> accent: #0a84ff;\n}\n"
	artifact, err := a.GenerateApplication("Demo", nil, style, nil)
	require.NoError(t, err)

	assert.Contains(t, artifact.Source, style)
	assertBalanced(t, artifact.Source)
}

func TestGenerateApplication_Bindings(t *testing.T) {
	a := newTestAssembler(t)

	artifact, err := a.GenerateApplication("Demo", nil, "", []Binding{
		{Trigger: "clicked", Action: "submit", Description: "Submit the login form"},
		{Trigger: "edited", Action: "revalidate", Description: "Re-run validation"},
	})
	require.NoError(t, err)

	assert.Contains(t, artifact.Source, "clicked => {")
	assert.Contains(t, artifact.Source, "root.submit();")
	assert.Contains(t, artifact.Source, "// Submit the login form")
	assert.Contains(t, artifact.Source, "edited => {")
	assert.Less(t,
		strings.Index(artifact.Source, "clicked =>"),
		strings.Index(artifact.Source, "edited =>"),
	)
	assertBalanced(t, artifact.Source)
}

func TestGenerateApplication_Deterministic(t *testing.T) {
	a := newTestAssembler(t)

	roots := []ComponentSpec{
		{
			Type:       "VerticalBox",
			Properties: map[string]interface{}{"spacing": 8, "padding": 16},
			Children: []ComponentSpec{
				{Type: "LineEdit", ID: "name"},
				{Type: "Button", ID: "ok", Properties: map[string]interface{}{"text": "OK"}},
			},
		},
	}
	bindings := []Binding{{Trigger: "accepted", Action: "save", Description: "Persist the form"}}

	first, err := a.GenerateApplication("Demo", roots, "", bindings)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := a.GenerateApplication("Demo", roots, "", bindings)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerateApplication_RendererErrorPropagates(t *testing.T) {
	a := newTestAssembler(t)

	_, err := a.GenerateApplication("Demo", []ComponentSpec{
		{Type: "Text", Properties: map[string]interface{}{"bad": map[string]string{}}},
	}, "", nil)

	var unsupported *UnsupportedPropertyTypeError
	require.ErrorAs(t, err, &unsupported)
}

func TestGenerateApplication_MissingBindingBlueprint(t *testing.T) {
	registry, err := blueprint.NewRegistry(blueprint.Blueprint{
		Category: blueprint.CategoryApplication,
		Variant:  DefaultApplicationVariant,
		Text:     applicationText,
		Required: []string{"app_name"},
	})
	require.NoError(t, err)
	renderer, err := NewRenderer()
	require.NoError(t, err)
	a, err := NewAssembler(registry, renderer)
	require.NoError(t, err)

	_, err = a.GenerateApplication("Demo", nil, "", []Binding{{Trigger: "clicked", Action: "go"}})
	var notFound *blueprint.TemplateNotFoundError
	require.ErrorAs(t, err, &notFound)
}
