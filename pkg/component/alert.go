package component

import (
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// Alert is a contextual feedback message.
type Alert struct {
	Message     string        `mapstructure:"message"`
	Type        string        `mapstructure:"type"` // info, success, warning, danger. Defaults to "info"
	Dismissible bool          `mapstructure:"dismissible"`
	Classes     []string      `mapstructure:"classes"`
	Framework   css.Framework `mapstructure:"-"`

	children []any
}

// AddChild appends a child after the message.
func (a *Alert) AddChild(child any) *Alert {
	a.children = append(a.children, child)
	return a
}

// Render implements vdom.Component.
func (a *Alert) Render() *vdom.Node {
	fw := framework(a.Framework)

	cls := append(fw.Alert(orDefault(a.Type, "info")), a.Classes...)
	if a.Dismissible {
		cls = append(cls, "alert-dismissible")
	}

	content := []any{vdom.Class(cls...), vdom.Role("alert")}
	if a.Message != "" {
		content = append(content, a.Message)
	}
	content = append(content, a.children...)
	if a.Dismissible {
		content = append(content, vdom.Button(
			vdom.Class(classes(fw.Classes().Close)...),
			vdom.Data("bs-dismiss", "alert"),
			vdom.AriaLabel("Close"),
			vdom.Span(vdom.AriaHidden(true), vdom.Raw("&times;")),
		))
	}
	return vdom.Div(content...)
}
