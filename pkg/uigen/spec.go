// Package uigen renders declarative component specifications into Slint
// source text. A ComponentSpec is a recursive tagged structure (type name,
// property map, ordered children); the renderer is generic over it and
// never special-cases concrete widget types.
package uigen

// ComponentSpec declaratively describes one UI element and its nested
// children. Specs are caller-supplied and ephemeral; the child sequence
// order is semantically meaningful because it determines on-screen
// stacking order in the generated UI.
type ComponentSpec struct {
	// Type is the widget type name. It is not validated against any
	// whitelist; it becomes an import symbol of the generated artifact.
	Type string `yaml:"type"`
	// ID optionally names the element in the generated source.
	ID string `yaml:"id,omitempty"`
	// Properties maps property names to literal values. Only strings,
	// numbers, and booleans are supported.
	Properties map[string]interface{} `yaml:"properties,omitempty"`
	// Children are rendered in order, nested one level deeper.
	Children []ComponentSpec `yaml:"children,omitempty"`
}

// Binding declares one application-level event binding.
type Binding struct {
	Trigger     string `yaml:"trigger"`
	Action      string `yaml:"action"`
	Description string `yaml:"description,omitempty"`
}

// Artifact is a generated source text plus the deduplicated, sorted set of
// symbols it needs imported to be self-contained.
type Artifact struct {
	Source  string
	Imports []string
}
