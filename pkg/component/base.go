package component

import (
	"errors"
	"fmt"
	"strings"

	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// ErrNotImplemented is returned by Build for a component that renders no node,
// typically a bare Base or a type embedding Base without its own Render.
var ErrNotImplemented = errors.New("component: Render not implemented")

// Props is a loosely typed property bag.
type Props map[string]any

// Base carries a property bag and child list for ad-hoc components.
// Types embedding *Base provide their own Render method.
type Base struct {
	props    Props
	children []any
}

// New creates a Base holding a copy of props.
func New(props Props) *Base {
	b := &Base{props: make(Props, len(props))}
	for k, v := range props {
		b.props[k] = v
	}
	return b
}

// GetProp returns the property stored under key, or def if absent.
func (b *Base) GetProp(key string, def any) any {
	if v, ok := b.props[key]; ok {
		return v
	}
	return def
}

// Props returns the property bag.
func (b *Base) Props() Props {
	return b.props
}

// AddChild appends a child and returns the component for chaining.
func (b *Base) AddChild(child any) *Base {
	b.children = append(b.children, child)
	return b
}

// Children returns the children in insertion order.
func (b *Base) Children() []any {
	return b.children
}

// Render yields no node. Embedding types override it.
func (b *Base) Render() *vdom.Node {
	return nil
}

// Prop returns the property under key converted to T, or def when the key
// is absent or holds another type.
func Prop[T any](b *Base, key string, def T) T {
	if v, ok := b.props[key].(T); ok {
		return v
	}
	return def
}

// Build validates and renders c, reporting ErrNotImplemented when c renders
// no node.
func Build(c vdom.Component) (*vdom.Node, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil component", ErrNotImplemented)
	}
	if v, ok := c.(vdom.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	node := c.Render()
	if node == nil {
		return nil, fmt.Errorf("%w: %T", ErrNotImplemented, c)
	}
	return node, nil
}

// classes splits framework class strings, which may hold several names,
// and skips empty ones.
func classes(names ...string) []string {
	var out []string
	for _, n := range names {
		out = append(out, strings.Fields(n)...)
	}
	return out
}

// args concatenates element arguments.
func args(head []any, tail ...any) []any {
	out := make([]any, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func framework(fw css.Framework) css.Framework {
	return css.OrDefault(fw)
}
