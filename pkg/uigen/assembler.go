package uigen

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/hanchen-dev/skillforge/pkg/blueprint"
)

// importSource is the module generated imports are drawn from.
const importSource = `"std-widgets.slint"`

const (
	// DefaultApplicationVariant is the application blueprint used unless
	// overridden.
	DefaultApplicationVariant = "window"
	// DefaultBindingVariant is the event-handler blueprint each binding
	// tuple renders through.
	DefaultBindingVariant = "callback-stub"
)

// Assembler orchestrates the component renderer and the blueprint registry
// into one generated application artifact.
type Assembler struct {
	registry       *blueprint.Registry
	renderer       *Renderer
	appVariant     string
	bindingVariant string
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler) error

// WithApplicationVariant selects a non-default application blueprint.
func WithApplicationVariant(variant string) AssemblerOption {
	return func(a *Assembler) error {
		if variant == "" {
			return errors.New("application variant must not be empty")
		}
		a.appVariant = variant
		return nil
	}
}

// WithBindingVariant selects a non-default event-handler blueprint.
func WithBindingVariant(variant string) AssemblerOption {
	return func(a *Assembler) error {
		if variant == "" {
			return errors.New("binding variant must not be empty")
		}
		a.bindingVariant = variant
		return nil
	}
}

// NewAssembler creates an assembler over the given registry and renderer.
func NewAssembler(registry *blueprint.Registry, renderer *Renderer, opts ...AssemblerOption) (*Assembler, error) {
	a := &Assembler{
		registry:       registry,
		renderer:       renderer,
		appVariant:     DefaultApplicationVariant,
		bindingVariant: DefaultBindingVariant,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// GenerateApplication renders every root spec in order, merges their import
// sets, renders each binding through the event-handler blueprint, and fills
// the application blueprint. Empty roots are valid and produce a minimal
// runnable skeleton. Identical inputs always produce byte-identical output.
func (a *Assembler) GenerateApplication(name string, roots []ComponentSpec, styleText string, bindings []Binding) (*Artifact, error) {
	var body strings.Builder
	merged := make(map[string]struct{})

	for i, root := range roots {
		fragment, imports, err := a.renderer.Render(root, 1)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to render root component %d", i)
		}
		body.WriteString(fragment)
		for _, symbol := range imports {
			merged[symbol] = struct{}{}
		}
	}

	bindingBlock, err := a.renderBindings(bindings)
	if err != nil {
		return nil, err
	}

	imports := sortedKeys(merged)
	source, err := a.registry.Render(blueprint.CategoryApplication, a.appVariant, map[string]string{
		"app_name":      name,
		"import_block":  importBlock(imports),
		"body":          body.String(),
		"style_block":   styleText,
		"binding_block": bindingBlock,
	})
	if err != nil {
		return nil, err
	}

	return &Artifact{Source: source, Imports: imports}, nil
}

func (a *Assembler) renderBindings(bindings []Binding) (string, error) {
	var block strings.Builder
	for i, binding := range bindings {
		entry, err := a.registry.Render(blueprint.CategoryEventHandler, a.bindingVariant, map[string]string{
			"trigger":     binding.Trigger,
			"action":      binding.Action,
			"description": binding.Description,
		})
		if err != nil {
			return "", errors.Wrapf(err, "failed to render binding %d", i)
		}
		block.WriteString(entry)
	}
	return block.String(), nil
}

// importBlock renders the import statement heading the artifact, or
// nothing when the artifact references no symbols.
func importBlock(imports []string) string {
	if len(imports) == 0 {
		return ""
	}
	sorted := make([]string, len(imports))
	copy(sorted, imports)
	sort.Strings(sorted)
	return "import { " + strings.Join(sorted, ", ") + " } from " + importSource + ";\n\n"
}
