package component

import (
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// Modal is a dialog. Children form the modal body.
type Modal struct {
	ID        string        `mapstructure:"id"`    // Defaults to "modal"
	Title     string        `mapstructure:"title"` // Defaults to "Modal"
	Size      string        `mapstructure:"size"`  // "", sm, lg, xl; ignored by frameworks without sizes
	Footer    any           `mapstructure:"footer"`
	Framework css.Framework `mapstructure:"-"`

	children []any
}

// AddChild appends a child to the modal body.
func (m *Modal) AddChild(child any) *Modal {
	m.children = append(m.children, child)
	return m
}

// Render implements vdom.Component.
func (m *Modal) Render() *vdom.Node {
	cc := framework(m.Framework).Classes()

	dialog := classes(cc.ModalDialog)
	if m.Size != "" && cc.ModalSize != "" {
		dialog = append(dialog, cc.ModalSize+m.Size)
	}

	content := vdom.Div(vdom.Class(classes(cc.ModalContent)...),
		vdom.Div(vdom.Class(classes(cc.ModalHeader)...),
			vdom.H5(vdom.Class(classes(cc.ModalTitle)...), orDefault(m.Title, "Modal")),
			vdom.Button(vdom.Class(classes(cc.Close)...), vdom.Data("bs-dismiss", "modal"), vdom.AriaLabel("Close"),
				vdom.Span(vdom.Raw("&times;")),
			),
		),
		vdom.Div(args([]any{vdom.Class(classes(cc.ModalBody)...)}, m.children...)...),
	)
	if present(m.Footer) {
		content.AddChild(vdom.Div(vdom.Class(classes(cc.ModalFooter)...), m.Footer))
	}

	return vdom.Div(
		vdom.Class(classes(cc.Modal)...),
		vdom.ID(orDefault(m.ID, "modal")),
		vdom.TabIndex(-1),
		vdom.AriaHidden(true),
		vdom.Div(vdom.Class(dialog...), content),
	)
}
