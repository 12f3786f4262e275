package component

import (
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// Card is a bordered content container with optional header and footer.
//
// Title and Text may be strings, which get the framework's title and text
// styling, or nodes, which are inserted as given. A string Image is used as
// the src of a top image.
type Card struct {
	Header    any           `mapstructure:"header"`
	Image     any           `mapstructure:"image"`
	Title     any           `mapstructure:"title"`
	Text      any           `mapstructure:"text"`
	Content   []any         `mapstructure:"content"`
	Footer    any           `mapstructure:"footer"`
	Classes   []string      `mapstructure:"classes"`
	Framework css.Framework `mapstructure:"-"`

	children []any
}

// AddChild appends a child to the card body.
func (c *Card) AddChild(child any) *Card {
	c.children = append(c.children, child)
	return c
}

// Render implements vdom.Component.
func (c *Card) Render() *vdom.Node {
	cc := framework(c.Framework).Classes()

	card := vdom.Div(vdom.Class(append(classes(cc.Card), c.Classes...)...))

	if present(c.Header) {
		card.AddChild(vdom.Div(vdom.Class(classes(cc.CardHeader)...), c.Header))
	}
	switch img := c.Image.(type) {
	case nil:
	case string:
		if img != "" {
			card.AddChild(vdom.Img(vdom.Class(classes(cc.CardImage)...), vdom.Src(img), vdom.Alt("")))
		}
	default:
		card.AddChild(img)
	}

	var body []any
	switch title := c.Title.(type) {
	case nil:
	case string:
		if title != "" {
			body = append(body, vdom.H5(vdom.Class(classes(cc.CardTitle)...), title))
		}
	default:
		body = append(body, title)
	}
	switch text := c.Text.(type) {
	case nil:
	case string:
		if text != "" {
			body = append(body, vdom.P(vdom.Class(classes(cc.CardText)...), text))
		}
	default:
		body = append(body, text)
	}
	body = append(body, c.Content...)
	body = append(body, c.children...)
	if len(body) > 0 {
		card.AddChild(vdom.Div(args([]any{vdom.Class(classes(cc.CardBody)...)}, body...)...))
	}

	if present(c.Footer) {
		card.AddChild(vdom.Div(vdom.Class(classes(cc.CardFooter)...), c.Footer))
	}
	return card
}

// present reports whether an optional slot holds content.
func present(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case *vdom.Node:
		return v != nil
	}
	return true
}
