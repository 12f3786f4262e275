package shop

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/weblib-dev/weblib/pkg/component"
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/render"
	"github.com/weblib-dev/weblib/pkg/server"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// DefaultPageSize is the number of products per category page.
const DefaultPageSize = 6

// settings is the part of the shop that can change while serving.
type settings struct {
	framework css.Framework
	format    *Formatter
}

// Option configures a Shop.
type Option func(*Shop)

// WithFramework selects the CSS framework.
func WithFramework(fw css.Framework) Option {
	return func(s *Shop) {
		s.settings.Store(&settings{framework: css.OrDefault(fw), format: s.settings.Load().format})
	}
}

// WithLang sets the document language and price formatting.
func WithLang(lang string) Option {
	return func(s *Shop) {
		s.settings.Store(&settings{framework: s.settings.Load().framework, format: NewFormatter(lang)})
	}
}

// WithPageSize sets the number of products per category page.
func WithPageSize(n int) Option {
	return func(s *Shop) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// Shop is the demo storefront.
type Shop struct {
	catalog  *Catalog
	cart     *Cart
	pageSize int
	settings atomic.Pointer[settings]
	styles   *css.Stylesheet
}

// New creates a shop selling the products of catalog.
func New(catalog *Catalog, opts ...Option) *Shop {
	s := &Shop{
		catalog:  catalog,
		cart:     NewCart(catalog),
		pageSize: DefaultPageSize,
		styles: css.Scope("shop").Add(
			css.Rule(".product-card img", css.Decl("height", "200px"), css.Decl("object-fit", "cover")),
			css.Rule(".hero", css.Decl("background", "linear-gradient(135deg, #0d6efd, #6610f2)")),
			css.Rule("footer", css.Decl("font-size", ".875rem")),
		),
	}
	s.settings.Store(&settings{framework: css.Bootstrap, format: NewFormatter("en")})
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cart returns the shop cart.
func (s *Shop) Cart() *Cart {
	return s.cart
}

// Catalog returns the shop catalogue.
func (s *Shop) Catalog() *Catalog {
	return s.catalog
}

// Framework returns the active CSS framework.
func (s *Shop) Framework() css.Framework {
	return s.settings.Load().framework
}

// SetFramework switches the CSS framework for subsequent requests.
func (s *Shop) SetFramework(fw css.Framework) {
	WithFramework(fw)(s)
}

// Register adds the shop routes to srv.
func (s *Shop) Register(srv *server.Server) {
	srv.Page("/", s.Home)
	srv.Page("/category/{id}", s.CategoryPage)
	srv.Page("/product/{id}", s.ProductPage)
	srv.Page("/cart", s.CartPage)
	srv.Handle(http.MethodPost, "/api/cart/add", http.HandlerFunc(s.AddToCart))
}

// Paths lists every page path, for static export.
func (s *Shop) Paths() []string {
	paths := []string{"/"}
	for _, c := range s.catalog.Categories() {
		paths = append(paths, CategoryURL(c.ID))
	}
	for _, p := range s.catalog.Products() {
		paths = append(paths, ProductURL(p.ID))
	}
	return append(paths, "/cart")
}

// Home shows the hero, the featured products and the categories.
func (s *Shop) Home(r *http.Request) (*render.Page, error) {
	st := s.settings.Load()
	fw := st.framework

	featured := s.catalog.Featured(6)
	var featuredBlock any = &component.Alert{Message: "No featured products right now", Type: "info", Framework: fw}
	if len(featured) > 0 {
		featuredBlock = grid(fw, "col-md-4", vdom.Map(featured, func(p Product, _ int) *vdom.Node {
			return vdom.Fragment(s.productCard(st, p))
		}))
	}

	categories := vdom.Map(s.catalog.Categories(), func(c Category, _ int) *vdom.Node {
		return vdom.Fragment(&component.Card{
			Image:     c.ImageURL,
			Title:     c.Name,
			Text:      c.Description,
			Content:   []any{vdom.A(cls(fw.Button("primary")...), vdom.Href(CategoryURL(c.ID)), "Explore")},
			Framework: fw,
		})
	})

	cc := fw.Classes()
	return s.page(st, "ShopLib - Your online store",
		vdom.Section(cls("hero", fw.Color("white", "text"), fw.Padding(5, "y"), fw.Margin(5, "b")),
			vdom.Div(cls(cc.Container, "text-center"),
				vdom.H1("Welcome to ShopLib"),
				vdom.P(cls("lead"), "The best products at the best prices"),
				vdom.A(cls(fw.Button("light")...), vdom.Href("#featured"), "Browse products"),
			),
		),
		vdom.Div(cls(cc.Container, fw.Margin(5, "b")),
			vdom.H2(vdom.ID("featured"), cls("text-center", fw.Margin(3, "b")), "Featured products"),
			featuredBlock,
		),
		vdom.Div(cls(cc.Container, fw.Margin(5, "b")),
			vdom.H2(vdom.ID("categories"), cls("text-center", fw.Margin(3, "b")), "Categories"),
			grid(fw, "col-md-6", categories),
		),
	), nil
}

// CategoryPage lists the products of one category, paginated with ?page=N.
func (s *Shop) CategoryPage(r *http.Request) (*render.Page, error) {
	st := s.settings.Load()
	fw := st.framework

	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	cat, ok := s.catalog.Category(id)
	if !ok {
		return nil, server.NotFound(s.notFoundPage(st, "Category not found"))
	}

	products := s.catalog.InCategory(id)
	total := max(1, (len(products)+s.pageSize-1)/s.pageSize)
	current := 1
	if q := r.URL.Query().Get("page"); q != "" {
		current, err = strconv.Atoi(q)
		if err != nil || current < 1 || current > total {
			return nil, server.NotFound(s.notFoundPage(st, "Page not found"))
		}
	}
	start := (current - 1) * s.pageSize
	visible := products[start:min(start+s.pageSize, len(products))]

	var listing any = &component.Alert{Message: "No products in this category yet", Type: "info", Framework: fw}
	if len(visible) > 0 {
		listing = grid(fw, "col-md-4", vdom.Map(visible, func(p Product, _ int) *vdom.Node {
			return vdom.Fragment(s.productCard(st, p))
		}))
	}

	var pager any
	if total > 1 {
		pager = &component.Pagination{
			CurrentPage: current,
			TotalPages:  total,
			BaseURL:     CategoryURL(id) + "?page=",
			Framework:   fw,
		}
	}

	return s.page(st, cat.Name+" - ShopLib",
		vdom.Div(cls(fw.Classes().Container),
			&component.Breadcrumb{Items: []component.Crumb{{Text: "Home", URL: "/"}, {Text: cat.Name}}, Framework: fw},
			vdom.H1(cat.Name),
			vdom.P(cls("lead", fw.Color("muted", "text")), cat.Description),
			vdom.H3("Products (", len(products), ")"),
			listing,
			pager,
		),
	), nil
}

// ProductPage shows one product.
func (s *Shop) ProductPage(r *http.Request) (*render.Page, error) {
	st := s.settings.Load()
	fw := st.framework
	f := st.format

	id, err := pathID(r)
	if err != nil {
		return nil, err
	}
	p, ok := s.catalog.Product(id)
	if !ok {
		return nil, server.NotFound(s.notFoundPage(st, "Product not found"))
	}

	crumbs := []component.Crumb{{Text: "Home", URL: "/"}}
	if cat, ok := s.catalog.Category(p.CategoryID); ok {
		crumbs = append(crumbs, component.Crumb{Text: cat.Name, URL: CategoryURL(cat.ID)})
	}
	crumbs = append(crumbs, component.Crumb{Text: p.Name})

	price := vdom.Div(cls(fw.Margin(4, "b")),
		vdom.H2(cls(fw.Color("primary", "text"), "d-inline"), f.Price(p.Price)),
	)
	if d := p.Discount(); d > 0 {
		price.AddChild(" ")
		price.AddChild(vdom.Del(cls(fw.Color("muted", "text")), f.Price(p.OriginalPrice)))
		price.AddChild(" ")
		price.AddChild(&component.Badge{Text: fmt.Sprintf("-%d%%", d), Variant: "danger", Framework: fw})
	}

	tags := vdom.Div(cls(fw.Margin(3, "b")))
	for _, t := range p.Tags {
		tags.AddChild(&component.Badge{Text: f.Tag(t), Variant: "secondary", Classes: []string{fw.Margin(1, "e")}, Framework: fw})
	}

	stock := vdom.IfElse(p.Stock > 0,
		vdom.P(cls(fw.Color("success", "text")), "In stock (", f.Count(p.Stock), ")"),
		vdom.P(cls(fw.Color("danger", "text")), "Out of stock"),
	)

	cc := fw.Classes()
	return s.page(st, p.Name+" - ShopLib",
		vdom.Div(cls(cc.Container),
			&component.Breadcrumb{Items: crumbs, Framework: fw},
			vdom.Div(cls(cc.Row),
				vdom.Div(cls(cc.Col, "col-md-6"),
					vdom.Img(cls("img-fluid", "rounded"), vdom.Src(p.ImageURL), vdom.Alt(p.Name)),
				),
				vdom.Div(cls(cc.Col, "col-md-6"),
					vdom.H1(p.Name),
					vdom.P(cls(fw.Color("muted", "text")),
						vdom.Span(vdom.AriaLabel(strconv.FormatFloat(p.Rating, 'f', 1, 64)+" out of 5"), Stars(p.Rating)),
						" (", f.Count(p.Reviews), " reviews)",
					),
					price,
					vdom.P(cls("lead", fw.Margin(4, "b")), p.Description),
					tags,
					stock,
					vdom.Button(
						cls(fw.Button("primary")...), cls("btn-lg", "add-to-cart"),
						vdom.Type("button"),
						vdom.Data("product-id", p.ID),
						vdom.Data("product-name", p.Name),
						vdom.DisabledIf(p.Stock == 0),
						"Add to cart",
					),
				),
			),
		),
	), nil
}

// CartPage shows the cart contents.
func (s *Shop) CartPage(r *http.Request) (*render.Page, error) {
	st := s.settings.Load()
	fw := st.framework
	f := st.format

	lines := s.cart.Lines()
	var contents any
	if len(lines) == 0 {
		contents = &component.Alert{Message: "Your cart is empty. Start shopping!", Type: "info", Framework: fw}
	} else {
		total := 0.0
		rows := vdom.Map(lines, func(l CartLine, _ int) *vdom.Node {
			total += l.Subtotal()
			return vdom.Tr(
				vdom.Td(vdom.A(vdom.Href(ProductURL(l.Product.ID)), l.Product.Name)),
				vdom.Td(l.Quantity),
				vdom.Td(f.Price(l.Product.Price)),
				vdom.Td(f.Price(l.Subtotal())),
			)
		})
		contents = vdom.Table(cls("table"),
			vdom.Thead(vdom.Tr(
				vdom.Th(vdom.Scope("col"), "Product"),
				vdom.Th(vdom.Scope("col"), "Quantity"),
				vdom.Th(vdom.Scope("col"), "Price"),
				vdom.Th(vdom.Scope("col"), "Subtotal"),
			)),
			vdom.Tbody(rows),
			vdom.Tr(vdom.Th(vdom.Colspan(3), "Total"), vdom.Td(vdom.Strong(f.Price(total)))),
		)
	}

	return s.page(st, "Cart - ShopLib",
		vdom.Div(cls(fw.Classes().Container),
			vdom.H1("Your cart"),
			contents,
			vdom.Div(
				vdom.A(cls(fw.Button("primary")...), cls(fw.Margin(2, "e")), vdom.Href("/"), "Continue shopping"),
			),
		),
	), nil
}

func (s *Shop) notFoundPage(st *settings, message string) *render.Page {
	return s.page(st, message+" - ShopLib",
		vdom.Div(cls(st.framework.Classes().Container),
			&component.Alert{Message: message, Type: "warning", Framework: st.framework},
			vdom.A(vdom.Href("/"), "Back to the home page"),
		),
	)
}

func (s *Shop) productCard(st *settings, p Product) *ProductCard {
	return &ProductCard{Product: p, ShowActions: true, Framework: st.framework, Format: st.format}
}

// page wraps content with the shop navbar and the shared layout.
func (s *Shop) page(st *settings, title string, content ...any) *render.Page {
	nav := &ShoppingNavbar{CartCount: s.cart.Count(), Categories: s.catalog.Categories(), Framework: st.framework}
	return render.NewPage(title).
		Lang(st.format.Lang()).
		Body(nav, vdom.Main(content...)).
		Layout(s.layout(st.framework))
}

// layout adds the framework assets, shop styles, footer and cart script.
func (s *Shop) layout(fw css.Framework) render.LayoutFunc {
	return func(p *render.Page) *render.Page {
		switch fw.Name() {
		case "tailwind":
			p.Script(render.ScriptTag{Src: "https://cdn.tailwindcss.com"})
		case "bulma":
			p.Stylesheet("https://cdn.jsdelivr.net/npm/bulma@0.9.4/css/bulma.min.css")
		default:
			p.Stylesheet("https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css")
			p.Script(render.ScriptTag{Src: "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js", Defer: true})
		}
		p.Meta(render.MetaTag{Name: "description", Content: "ShopLib demo store"})
		p.UseCSS(s.styles)
		p.Body(vdom.Footer(cls(fw.Classes().Container, "text-center", fw.Padding(4, "y"), fw.Color("muted", "text")),
			"ShopLib demo store",
		))
		p.Script(render.ScriptTag{Inline: cartScript})
		return p
	}
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, server.Error(http.StatusBadRequest, fmt.Errorf("invalid id %q", raw))
	}
	return id, nil
}

// isClientError reports whether err is a bad request rather than a fault.
func isClientError(err error) bool {
	return errors.Is(err, ErrUnknownProduct) || errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrOutOfStock)
}

const cartScript = `document.addEventListener('DOMContentLoaded', function () {
  document.querySelectorAll('.add-to-cart').forEach(function (btn) {
    btn.addEventListener('click', function () {
      fetch('/api/cart/add', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({product_id: parseInt(btn.dataset.productId, 10), quantity: 1})
      })
        .then(function (res) { return res.json(); })
        .then(function (data) {
          if (!data.success) { alert(data.message); return; }
          var count = document.getElementById('cart-count');
          if (count) { count.textContent = 'Cart (' + data.count + ')'; }
        })
        .catch(function () { alert('Connection error'); });
    });
  });
});`
