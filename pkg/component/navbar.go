package component

import (
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// NavLink is one entry of a NavBar.
type NavLink struct {
	Text string `mapstructure:"text"`
	URL  string `mapstructure:"url"`
}

// NavBar is a responsive navigation header.
type NavBar struct {
	Brand     any           `mapstructure:"brand"` // string or node
	BrandURL  string        `mapstructure:"brand_url"`
	Links     []NavLink     `mapstructure:"links"`
	Theme     string        `mapstructure:"theme"`  // light, dark. Defaults to "light"
	Expand    string        `mapstructure:"expand"` // Breakpoint, defaults to "lg"
	Classes   []string      `mapstructure:"classes"`
	Framework css.Framework `mapstructure:"-"`

	children []any
}

// AddChild appends a child after the links.
func (n *NavBar) AddChild(child any) *NavBar {
	n.children = append(n.children, child)
	return n
}

// Render implements vdom.Component.
func (n *NavBar) Render() *vdom.Node {
	cc := framework(n.Framework).Classes()

	cls := classes(cc.Navbar, "navbar-expand-"+orDefault(n.Expand, "lg"), "navbar-"+orDefault(n.Theme, "light"))
	nav := vdom.Nav(vdom.Class(append(cls, n.Classes...)...))

	switch brand := n.Brand.(type) {
	case nil:
	case string:
		if brand != "" {
			nav.AddChild(vdom.A(
				vdom.Class(classes(cc.NavbarBrand)...),
				vdom.Href(orDefault(n.BrandURL, "/")),
				brand,
			))
		}
	default:
		nav.AddChild(brand)
	}

	if len(n.Links) > 0 {
		items := make([]*vdom.Node, 0, len(n.Links))
		for _, l := range n.Links {
			items = append(items, vdom.Li(vdom.A(vdom.Class(classes(cc.NavLink)...), vdom.Href(l.URL), l.Text)))
		}
		nav.AddChild(vdom.Ul(vdom.Class(append(classes(cc.NavbarNav), "me-auto")...), items))
	}

	for _, child := range n.children {
		nav.AddChild(child)
	}
	return nav
}
