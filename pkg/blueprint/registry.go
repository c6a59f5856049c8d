package blueprint

import "sort"

type key struct {
	category Category
	variant  string
}

// Registry is the immutable (category, variant) → blueprint mapping. All
// registration happens at construction; afterwards the registry is
// read-only and safe for concurrent use.
type Registry struct {
	blueprints map[key]Blueprint
}

// NewRegistry builds a registry from the given blueprints, failing with
// DuplicateTemplateError on a (category, variant) collision.
func NewRegistry(blueprints ...Blueprint) (*Registry, error) {
	r := &Registry{blueprints: make(map[key]Blueprint, len(blueprints))}
	for _, bp := range blueprints {
		if err := r.register(bp); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(bp Blueprint) error {
	if err := bp.Validate(); err != nil {
		return err
	}
	k := key{category: bp.Category, variant: bp.Variant}
	if _, exists := r.blueprints[k]; exists {
		return &DuplicateTemplateError{Category: bp.Category, Variant: bp.Variant}
	}
	r.blueprints[k] = bp
	return nil
}

// Lookup returns the blueprint for (category, variant), or
// TemplateNotFoundError.
func (r *Registry) Lookup(category Category, variant string) (Blueprint, error) {
	bp, exists := r.blueprints[key{category: category, variant: variant}]
	if !exists {
		return Blueprint{}, &TemplateNotFoundError{Category: category, Variant: variant}
	}
	return bp, nil
}

// Variants lists the registered variant names of one category, sorted.
func (r *Registry) Variants(category Category) []string {
	var variants []string
	for k := range r.blueprints {
		if k.category == category {
			variants = append(variants, k.variant)
		}
	}
	sort.Strings(variants)
	return variants
}

// Render fills the named blueprint with params. Every declared-required
// placeholder must be present in params (MissingParameterError names the
// first omission in declaration order). Substitution is literal text
// replacement with no recursive evaluation; any placeholder-shaped token
// remaining afterwards fails with UnresolvedPlaceholderError.
func (r *Registry) Render(category Category, variant string, params map[string]string) (string, error) {
	bp, err := r.Lookup(category, variant)
	if err != nil {
		return "", err
	}

	for _, name := range bp.Required {
		if _, present := params[name]; !present {
			return "", &MissingParameterError{Category: category, Variant: variant, Placeholder: name}
		}
	}

	// Fill pass: substitute every known placeholder occurrence. Unknown
	// placeholders are left in place for the verify pass to flag.
	filled := placeholder.ReplaceAllStringFunc(bp.Text, func(token string) string {
		name := placeholder.FindStringSubmatch(token)[1]
		if value, present := params[name]; present {
			return value
		}
		return token
	})

	// Verify pass: nothing placeholder-shaped may survive, including tokens
	// introduced by parameter values.
	if token := leftover.FindString(filled); token != "" {
		return "", &UnresolvedPlaceholderError{Category: category, Variant: variant, Token: token}
	}

	return filled, nil
}
