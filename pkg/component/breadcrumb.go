package component

import (
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// Crumb is one breadcrumb step. A crumb without URL renders as plain text.
type Crumb struct {
	Text string `mapstructure:"text"`
	URL  string `mapstructure:"url"`
}

// Breadcrumb shows the location of the current page in a hierarchy.
// The last item is always rendered as the active, unlinked entry.
type Breadcrumb struct {
	Items     []Crumb       `mapstructure:"items"`
	Framework css.Framework `mapstructure:"-"`
}

// Render implements vdom.Component.
func (b *Breadcrumb) Render() *vdom.Node {
	cc := framework(b.Framework).Classes()

	items := make([]*vdom.Node, 0, len(b.Items))
	for i, item := range b.Items {
		last := i == len(b.Items)-1
		if last || item.URL == "" {
			items = append(items, vdom.Li(vdom.Class(classes(cc.BreadcrumbItem, cc.Active)...), item.Text))
			continue
		}
		items = append(items, vdom.Li(vdom.Class(classes(cc.BreadcrumbItem)...), vdom.A(vdom.Href(item.URL), item.Text)))
	}

	return vdom.Nav(vdom.AriaLabel("breadcrumb"),
		vdom.Ul(vdom.Class(classes(cc.Breadcrumb)...), items),
	)
}
