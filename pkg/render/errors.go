package render

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by RenderError and ComponentContractError.
var (
	// ErrUnsupportedAttr is returned when an attribute value has no textual form.
	ErrUnsupportedAttr = errors.New("render: unsupported attribute value")

	// ErrUnsupportedChild is returned when a child value cannot be serialized.
	ErrUnsupportedChild = errors.New("render: unsupported child value")

	// ErrCircularReference is returned when a node appears inside its own subtree.
	ErrCircularReference = errors.New("render: circular node reference")

	// ErrMaxDepth is returned when the tree is nested deeper than RendererConfig.MaxDepth.
	ErrMaxDepth = errors.New("render: maximum depth exceeded")

	// ErrVoidChildren is returned in strict mode when a void element has children.
	ErrVoidChildren = errors.New("render: void element has children")

	// ErrNulByte is returned when raw markup contains a NUL byte.
	ErrNulByte = errors.New("render: raw markup contains NUL byte")

	// ErrNilRender is returned when a component renders no node.
	ErrNilRender = errors.New("render: component rendered nil")
)

// RenderError reports a node that could not be serialized.
type RenderError struct {
	Tag  string // Enclosing element tag, empty for fragments or the root
	Attr string // Offending attribute, if any
	Err  error  // Underlying error
}

// Error returns the error message with tag and attribute context.
func (e *RenderError) Error() string {
	switch {
	case e.Tag != "" && e.Attr != "":
		return fmt.Sprintf("render: <%s> attribute %q: %v", e.Tag, e.Attr, e.Err)
	case e.Tag != "":
		return fmt.Sprintf("render: <%s>: %v", e.Tag, e.Err)
	case e.Attr != "":
		return fmt.Sprintf("render: attribute %q: %v", e.Attr, e.Err)
	default:
		return fmt.Sprintf("render: %v", e.Err)
	}
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// ComponentContractError reports a component that broke the rendering
// contract: it failed validation, rendered nil, or panicked.
type ComponentContractError struct {
	Component string // Go type of the component
	Err       error  // Underlying error
}

// Error returns the error message with component context.
func (e *ComponentContractError) Error() string {
	return fmt.Sprintf("render: component %s: %v", e.Component, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ComponentContractError) Unwrap() error {
	return e.Err
}
