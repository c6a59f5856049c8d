package uigen

import "fmt"

// UnsupportedPropertyTypeError reports a component property whose value is
// not a string, number, or boolean.
type UnsupportedPropertyTypeError struct {
	Component string
	Property  string
	Value     interface{}
}

func (e *UnsupportedPropertyTypeError) Error() string {
	return fmt.Sprintf("component %q: property %q has unsupported type %T", e.Component, e.Property, e.Value)
}

// MaxDepthExceededError reports a component tree nested past the
// renderer's depth cutoff, usually a cyclic spec.
type MaxDepthExceededError struct {
	Limit int
}

func (e *MaxDepthExceededError) Error() string {
	return fmt.Sprintf("component tree exceeds maximum nesting depth %d", e.Limit)
}
