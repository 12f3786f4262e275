package shop

import (
	"strconv"
	"strings"

	"github.com/weblib-dev/weblib/pkg/component"
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// ProductCard shows one product with its discount, rating and price.
type ProductCard struct {
	Product     Product
	ShowActions bool
	Framework   css.Framework
	Format      *Formatter
}

// Render implements vdom.Component.
func (c *ProductCard) Render() *vdom.Node {
	fw := css.OrDefault(c.Framework)
	f := c.Format
	if f == nil {
		f = NewFormatter("en")
	}
	p := c.Product

	var badge any
	if d := p.Discount(); d > 0 {
		badge = &component.Badge{
			Text:      "-" + strconv.Itoa(d) + "%",
			Variant:   "danger",
			Classes:   []string{"position-absolute", "top-0", "end-0", fw.Margin(2, "")},
			Framework: fw,
		}
	}

	price := vdom.H4(cls(fw.Color("primary", "text"), fw.Margin(2, "b")), f.Price(p.Price))
	if p.OriginalPrice > p.Price {
		price.AddChild(" ")
		price.AddChild(vdom.Small(cls(fw.Color("muted", "text")), vdom.Del(f.Price(p.OriginalPrice))))
	}

	var actions *vdom.Node
	if c.ShowActions {
		actions = vdom.Div(cls(fw.Margin(2, "t")),
			vdom.Button(
				cls(strings.Join(fw.Button("primary"), " "), "btn-sm", fw.Margin(2, "e"), "add-to-cart"),
				vdom.Type("button"),
				vdom.Data("product-id", p.ID),
				vdom.Data("product-name", p.Name),
				vdom.DisabledIf(p.Stock == 0),
				"Add to cart",
			),
			vdom.A(
				cls(strings.Join(fw.Button("secondary"), " "), "btn-sm"),
				vdom.Href(ProductURL(p.ID)),
				"Details",
			),
		)
	}

	return vdom.Fragment(&component.Card{
		Image:     vdom.Div(cls("position-relative"), vdom.Img(cls(fw.Classes().CardImage), vdom.Src(p.ImageURL), vdom.Alt(p.Name), vdom.Loading("lazy")), badge),
		Title:     p.Name,
		Text:      vdom.P(cls(fw.Classes().CardText, fw.Color("muted", "text")), p.Summary(100)),
		Content:   []any{rating(p, f, fw), price, actions},
		Classes:   []string{fw.Margin(4, "b"), "product-card"},
		Framework: fw,
	})
}

func rating(p Product, f *Formatter, fw css.Framework) *vdom.Node {
	return vdom.Div(
		vdom.Span(
			cls("small", fw.Color("muted", "text")),
			vdom.AriaLabel(strconv.FormatFloat(p.Rating, 'f', 1, 64)+" out of 5"),
			Stars(p.Rating)+" ("+f.Count(p.Reviews)+")",
		),
	)
}

// ShoppingNavbar is the shop header with category links and the cart button.
type ShoppingNavbar struct {
	CartCount  int
	Categories []Category
	Framework  css.Framework
}

// Render implements vdom.Component.
func (n *ShoppingNavbar) Render() *vdom.Node {
	fw := css.OrDefault(n.Framework)

	links := []component.NavLink{{Text: "Home", URL: "/"}}
	for _, c := range n.Categories {
		links = append(links, component.NavLink{Text: c.Name, URL: CategoryURL(c.ID)})
	}

	nav := &component.NavBar{
		Brand:     "ShopLib",
		Links:     links,
		Theme:     "light",
		Classes:   []string{fw.Color("light", "bg"), fw.Margin(4, "b"), fw.Padding(3, "x")},
		Framework: fw,
	}
	nav.AddChild(vdom.Div(cls("d-flex"),
		vdom.A(
			cls(strings.Join(fw.Button("success"), " ")),
			vdom.Href("/cart"),
			vdom.ID("cart-count"),
			"Cart (", n.CartCount, ")",
		),
	))
	return vdom.Fragment(nav)
}

// grid lays items out in framework columns.
func grid(fw css.Framework, width string, items []*vdom.Node) *vdom.Node {
	cc := fw.Classes()
	row := vdom.Div(cls(cc.Row))
	for _, item := range items {
		row.AddChild(vdom.Div(cls(cc.Col, width, fw.Margin(4, "b")), item))
	}
	return row
}

// cls builds a class attribute from space-separated names, skipping empties.
func cls(names ...string) vdom.Attr {
	var list []string
	for _, n := range names {
		list = append(list, strings.Fields(n)...)
	}
	return vdom.Class(list...)
}

// CategoryURL returns the path of a category page.
func CategoryURL(id int) string {
	return "/category/" + strconv.Itoa(id)
}

// ProductURL returns the path of a product page.
func ProductURL(id int) string {
	return "/product/" + strconv.Itoa(id)
}
