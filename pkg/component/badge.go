package component

import (
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// Badge is a small label.
type Badge struct {
	Text      string        `mapstructure:"text"`
	Variant   string        `mapstructure:"variant"` // Defaults to "primary"
	Pill      bool          `mapstructure:"pill"`
	Classes   []string      `mapstructure:"classes"`
	Framework css.Framework `mapstructure:"-"`

	children []any
}

// AddChild appends a child after the text.
func (b *Badge) AddChild(child any) *Badge {
	b.children = append(b.children, child)
	return b
}

// Render implements vdom.Component.
func (b *Badge) Render() *vdom.Node {
	fw := framework(b.Framework)

	cls := append(fw.Badge(orDefault(b.Variant, "primary")), b.Classes...)
	if b.Pill {
		cls = append(cls, "rounded-pill")
	}
	return vdom.Span(args([]any{vdom.Class(cls...), b.Text}, b.children...)...)
}
