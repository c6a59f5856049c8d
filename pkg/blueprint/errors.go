package blueprint

import "fmt"

// DuplicateTemplateError reports two registered blueprints sharing a
// (category, variant) pair.
type DuplicateTemplateError struct {
	Category Category
	Variant  string
}

func (e *DuplicateTemplateError) Error() string {
	return fmt.Sprintf("blueprint %s/%s is already registered", e.Category, e.Variant)
}

// TemplateNotFoundError reports a render of an unregistered blueprint.
type TemplateNotFoundError struct {
	Category Category
	Variant  string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("blueprint %s/%s not found", e.Category, e.Variant)
}

// MissingParameterError reports a render call omitting a required
// placeholder. Placeholder is the first missing one in declaration order.
type MissingParameterError struct {
	Category    Category
	Variant     string
	Placeholder string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("blueprint %s/%s: missing required parameter %q", e.Category, e.Variant, e.Placeholder)
}

// UnresolvedPlaceholderError reports a placeholder-shaped token surviving
// the fill pass, usually a typo in the blueprint text or a parameter value
// smuggling in a new placeholder.
type UnresolvedPlaceholderError struct {
	Category Category
	Variant  string
	Token    string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("blueprint %s/%s: unresolved placeholder %s", e.Category, e.Variant, e.Token)
}
