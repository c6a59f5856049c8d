package uigen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxDepth is the nesting cutoff guarding against cyclic specs.
const DefaultMaxDepth = 64

const indentUnit = "    "

// Renderer turns component specs into indented Slint source fragments.
type Renderer struct {
	maxDepth int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer) error

// WithMaxDepth overrides the nesting depth cutoff.
func WithMaxDepth(depth int) RendererOption {
	return func(r *Renderer) error {
		if depth < 1 {
			return errors.Errorf("max depth must be positive, got %d", depth)
		}
		r.maxDepth = depth
		return nil
	}
}

// NewRenderer creates a renderer with the default depth cutoff unless
// overridden.
func NewRenderer(opts ...RendererOption) (*Renderer, error) {
	r := &Renderer{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render produces the indented source fragment for one spec and its
// descendants, starting at the given indentation depth, together with the
// sorted set of type names the fragment references. Children render in
// spec order; property keys render sorted so identical input yields
// byte-identical output.
func (r *Renderer) Render(spec ComponentSpec, depth int) (string, []string, error) {
	var b strings.Builder
	imports := make(map[string]struct{})

	if err := r.render(&b, imports, spec, depth); err != nil {
		return "", nil, err
	}

	return b.String(), sortedKeys(imports), nil
}

func (r *Renderer) render(b *strings.Builder, imports map[string]struct{}, spec ComponentSpec, depth int) error {
	if depth >= r.maxDepth {
		return &MaxDepthExceededError{Limit: r.maxDepth}
	}
	if spec.Type == "" {
		return errors.New("component spec has no type name")
	}

	imports[spec.Type] = struct{}{}
	indent := strings.Repeat(indentUnit, depth)

	if spec.ID != "" {
		fmt.Fprintf(b, "%s%s := %s {\n", indent, spec.ID, spec.Type)
	} else {
		fmt.Fprintf(b, "%s%s {\n", indent, spec.Type)
	}

	for _, name := range sortedPropertyNames(spec.Properties) {
		literal, err := formatPropertyValue(spec, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "%s%s%s: %s;\n", indent, indentUnit, name, literal)
	}

	for _, child := range spec.Children {
		if err := r.render(b, imports, child, depth+1); err != nil {
			return err
		}
	}

	fmt.Fprintf(b, "%s}\n", indent)
	return nil
}

// formatPropertyValue renders one property value as a Slint literal.
// Strings are quoted, numbers and booleans render bare; anything else is a
// caller error.
func formatPropertyValue(spec ComponentSpec, name string) (string, error) {
	switch v := spec.Properties[name].(type) {
	case string:
		return strconv.Quote(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", &UnsupportedPropertyTypeError{
			Component: spec.Type,
			Property:  name,
			Value:     v,
		}
	}
}

func sortedPropertyNames(properties map[string]interface{}) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
