package shop

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/render"
	"github.com/weblib-dev/weblib/pkg/server"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// =============================================================================
// Test Helpers
// =============================================================================

func newShopServer(t *testing.T, opts ...Option) (*Shop, *server.Server) {
	t.Helper()
	s := New(DemoCatalog(), opts...)
	srv, err := server.New(server.Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	s.Register(srv)
	return s, srv
}

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec.Code, rec.Body.String()
}

func postJSON(t *testing.T, h http.Handler, body string) (int, AddResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)

	var resp AddResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response %q is not JSON: %v", rec.Body.String(), err)
	}
	return rec.Code, resp
}

// countClass counts elements in doc carrying class.
func countClass(t *testing.T, doc, class string) int {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			for _, a := range node.Attr {
				if a.Key == "class" && containsField(a.Val, class) {
					n++
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return n
}

func containsField(s, field string) bool {
	for _, f := range strings.Fields(s) {
		if f == field {
			return true
		}
	}
	return false
}

// =============================================================================
// Catalogue and Formatting Tests
// =============================================================================

func TestCatalog(t *testing.T) {
	c := DemoCatalog()

	featured := c.Featured(6)
	var names []string
	for _, p := range featured {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"MacBook Air M3", "iPhone 15 Pro", "Running Sneakers"}, names); diff != "" {
		t.Errorf("featured mismatch (-want +got):\n%s", diff)
	}
	if got := len(c.Featured(1)); got != 1 {
		t.Errorf("Featured(1) returned %d products", got)
	}
	if got := len(c.InCategory(1)); got != 3 {
		t.Errorf("InCategory(1) = %d products, want 3", got)
	}
	if _, ok := c.Product(99); ok {
		t.Error("Product(99) found")
	}
	if cat, ok := c.Category(3); !ok || cat.Name != "Home & Garden" {
		t.Errorf("Category(3) = %+v, %v", cat, ok)
	}
}

func TestProductDiscountAndSummary(t *testing.T) {
	tests := []struct {
		p    Product
		want int
	}{
		{Product{Price: 1199.99, OriginalPrice: 1299.99}, 7},
		{Product{Price: 50, OriginalPrice: 100}, 50},
		{Product{Price: 100, OriginalPrice: 100}, 0},
		{Product{Price: 0, OriginalPrice: 100}, 0},
		{Product{Price: 10}, 0},
	}
	for _, tt := range tests {
		if got := tt.p.Discount(); got != tt.want {
			t.Errorf("Discount(%v -> %v) = %d, want %d", tt.p.OriginalPrice, tt.p.Price, got, tt.want)
		}
	}

	p := Product{Description: strings.Repeat("é", 120)}
	if got := p.Summary(100); got != strings.Repeat("é", 100)+"..." {
		t.Errorf("Summary cut = %q", got)
	}
	p.Description = "short"
	if got := p.Summary(100); got != "short" {
		t.Errorf("Summary(short) = %q", got)
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		lang  string
		price float64
		want  string
	}{
		{"en", 1199.99, "€1,199.99"},
		{"en", 29.9, "€29.90"},
		{"de", 34.99, "€34,99"},
		{"not a tag!", 5, "€5.00"},
	}
	for _, tt := range tests {
		if got := NewFormatter(tt.lang).Price(tt.price); got != tt.want {
			t.Errorf("Price(%s, %v) = %q, want %q", tt.lang, tt.price, got, tt.want)
		}
	}

	f := NewFormatter("en")
	if got := f.Tag("ultra-book"); got != "Ultra Book" {
		t.Errorf("Tag = %q", got)
	}
	if got := f.Count(1234); got != "1,234" {
		t.Errorf("Count = %q", got)
	}
	for rating, want := range map[float64]string{4.8: "★★★★☆", 5: "★★★★★", 0: "☆☆☆☆☆", 7: "★★★★★", -1: "☆☆☆☆☆"} {
		if got := Stars(rating); got != want {
			t.Errorf("Stars(%v) = %q, want %q", rating, got, want)
		}
	}
}

// =============================================================================
// Cart Tests
// =============================================================================

func TestCart(t *testing.T) {
	cart := NewCart(DemoCatalog())

	if _, err := cart.Add(1, 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := cart.Add(8, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	n, err := cart.Add(1, 1)
	if err != nil || n != 4 {
		t.Fatalf("Add = %d, %v; want 4", n, err)
	}

	lines := cart.Lines()
	if len(lines) != 2 || lines[0].Product.ID != 1 || lines[0].Quantity != 3 || lines[1].Product.ID != 8 {
		t.Errorf("lines = %+v", lines)
	}
	if got, want := cart.Total(), 3629.96; math.Abs(got-want) > 1e-6 {
		t.Errorf("Total = %v, want %v", got, want)
	}

	errTests := []struct {
		id, qty int
		want    error
	}{
		{99, 1, ErrUnknownProduct},
		{1, 0, ErrInvalidQuantity},
		{1, -2, ErrInvalidQuantity},
		{6, 26, ErrOutOfStock},
		{1, math.MaxInt, ErrOutOfStock},
	}
	for _, tt := range errTests {
		if _, err := cart.Add(tt.id, tt.qty); !errors.Is(err, tt.want) {
			t.Errorf("Add(%d, %d) error = %v, want %v", tt.id, tt.qty, err, tt.want)
		}
	}

	if n := cart.Count(); n != 4 {
		t.Errorf("Count after rejected adds = %d, want 4", n)
	}

	cart.Clear()
	if cart.Count() != 0 || len(cart.Lines()) != 0 {
		t.Error("Clear left items behind")
	}
}

func TestCartConcurrentAdds(t *testing.T) {
	cart := NewCart(DemoCatalog())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cart.Add(3, 1)
		}()
	}
	wg.Wait()

	if got := cart.Count(); got != 50 {
		t.Errorf("Count = %d, want 50", got)
	}
}

// =============================================================================
// Component Tests
// =============================================================================

func TestProductCard(t *testing.T) {
	p, _ := DemoCatalog().Product(1)
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(vdom.Fragment(&ProductCard{Product: p, ShowActions: true}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		`<div class="card mb-4 product-card">`,
		`<span class="badge bg-danger position-absolute top-0 end-0 m-2">-7%</span>`,
		`<h5 class="card-title">iPhone 15 Pro</h5>`,
		`aria-label="4.8 out of 5">★★★★☆ (245)</span>`,
		`€1,199.99 <small class="text-muted"><del>€1,299.99</del></small>`,
		`data-product-id="1" data-product-name="iPhone 15 Pro"`,
		`<a class="btn btn-secondary btn-sm" href="/product/1">Details</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}

	out, err = render.NewRenderer(render.RendererConfig{}).RenderToString(vdom.Fragment(&ProductCard{Product: Product{ID: 2, Name: "Plain", Price: 5}}))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "badge") || strings.Contains(out, "add-to-cart") || strings.Contains(out, "<del>") {
		t.Errorf("undiscounted card without actions has extras:\n%s", out)
	}
}

func TestShoppingNavbar(t *testing.T) {
	nav := &ShoppingNavbar{CartCount: 2, Categories: DemoCatalog().Categories()[:1]}
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(vdom.Fragment(nav))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<nav class="navbar navbar-expand-lg navbar-light bg-light mb-4 px-3">` +
		`<a class="navbar-brand" href="/">ShopLib</a>` +
		`<ul class="navbar-nav me-auto"><li><a class="nav-link" href="/">Home</a></li>` +
		`<li><a class="nav-link" href="/category/1">Electronics</a></li></ul>` +
		`<div class="d-flex"><a class="btn btn-success" href="/cart" id="cart-count">Cart (2)</a></div></nav>`
	if out != want {
		t.Errorf("got  %s\nwant %s", out, want)
	}
}

// =============================================================================
// Page Tests
// =============================================================================

func TestPages(t *testing.T) {
	_, srv := newShopServer(t, WithPageSize(2))

	tests := []struct {
		name     string
		path     string
		code     int
		cards    int
		contains []string
	}{
		{
			name:  "home",
			path:  "/",
			code:  http.StatusOK,
			cards: 3,
			contains: []string{
				`<html lang="en">`,
				"<title>ShopLib - Your online store</title>",
				`href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"`,
				".product-card img{height:200px;object-fit:cover}",
				`<a class="btn btn-primary" href="/category/4">Explore</a>`,
				"fetch('/api/cart/add'",
			},
		},
		{
			name:  "category first page",
			path:  "/category/1",
			code:  http.StatusOK,
			cards: 2,
			contains: []string{
				`<li class="breadcrumb-item active">Electronics</li>`,
				"<h3>Products (3)</h3>",
				`<a href="/category/1?page=2">Next</a>`,
			},
		},
		{
			name:     "category second page",
			path:     "/category/1?page=2",
			code:     http.StatusOK,
			cards:    1,
			contains: []string{"AirPods Pro", `<li class="page-item active"><span>2</span></li>`},
		},
		{
			name:     "category page out of range",
			path:     "/category/1?page=3",
			code:     http.StatusNotFound,
			contains: []string{"Page not found"},
		},
		{
			name:     "unknown category",
			path:     "/category/9",
			code:     http.StatusNotFound,
			contains: []string{"Category not found", "ShopLib"},
		},
		{
			name: "product",
			path: "/product/1",
			code: http.StatusOK,
			contains: []string{
				`<li class="breadcrumb-item"><a href="/category/1">Electronics</a></li>`,
				`<li class="breadcrumb-item active">iPhone 15 Pro</li>`,
				`<span class="badge bg-danger">-7%</span>`,
				`<span class="badge bg-secondary me-1">Smartphone</span>`,
				"In stock (50)",
				"(245 reviews)",
			},
		},
		{
			name:     "unknown product",
			path:     "/product/99",
			code:     http.StatusNotFound,
			contains: []string{"Product not found"},
		},
		{
			name:     "malformed product id",
			path:     "/product/abc",
			code:     http.StatusBadRequest,
			contains: []string{"400 Bad Request"},
		},
		{
			name:     "empty cart",
			path:     "/cart",
			code:     http.StatusOK,
			contains: []string{"Your cart is empty. Start shopping!", "Cart (0)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, srv, tt.path)
			if code != tt.code {
				t.Fatalf("status = %d, want %d\n%s", code, tt.code, body)
			}
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
			if got := countClass(t, body, "product-card"); got != tt.cards {
				t.Errorf("product cards = %d, want %d", got, tt.cards)
			}
		})
	}
}

func TestAddToCartAPI(t *testing.T) {
	s, srv := newShopServer(t)

	tests := []struct {
		name    string
		body    string
		code    int
		success bool
		count   int
	}{
		{"add default quantity", `{"product_id": 1}`, http.StatusOK, true, 1},
		{"add quantity", `{"product_id": 8, "quantity": 2}`, http.StatusOK, true, 3},
		{"unknown product", `{"product_id": 99}`, http.StatusNotFound, false, 3},
		{"negative quantity", `{"product_id": 1, "quantity": -1}`, http.StatusBadRequest, false, 3},
		{"over stock", `{"product_id": 6, "quantity": 26}`, http.StatusConflict, false, 3},
		{"quantity near max int", `{"product_id": 8, "quantity": 9223372036854775807}`, http.StatusConflict, false, 3},
		{"malformed body", `{"product_id": "one"}`, http.StatusBadRequest, false, 0},
		{"unknown field", `{"product_id": 1, "colour": "red"}`, http.StatusBadRequest, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := postJSON(t, srv, tt.body)
			if code != tt.code {
				t.Fatalf("status = %d, want %d (%+v)", code, tt.code, resp)
			}
			if resp.Success != tt.success || resp.Count != tt.count {
				t.Errorf("response = %+v, want success=%v count=%d", resp, tt.success, tt.count)
			}
			if resp.RequestID == "" {
				t.Error("response has no request id")
			}
		})
	}

	if s.Cart().Count() != 3 {
		t.Fatalf("cart count = %d, want 3", s.Cart().Count())
	}

	_, body := get(t, srv, "/cart")
	for _, want := range []string{
		`<a href="/product/1">iPhone 15 Pro</a>`,
		"<td>2</td>",
		"<strong>€1,259.97</strong>",
		"Cart (3)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("cart page missing %q", want)
		}
	}
}

func TestFrameworkSwitch(t *testing.T) {
	s, srv := newShopServer(t, WithFramework(css.Bulma), WithLang("de"))

	_, body := get(t, srv, "/product/8")
	for _, want := range []string{`<html lang="de">`, "bulma.min.css", `<span class="tag is-danger">-14%</span>`, "€29,99"} {
		if !strings.Contains(body, want) {
			t.Errorf("bulma page missing %q", want)
		}
	}

	s.SetFramework(css.Tailwind)
	if s.Framework().Name() != "tailwind" {
		t.Fatalf("Framework = %s", s.Framework().Name())
	}
	_, body = get(t, srv, "/")
	if !strings.Contains(body, `<script src="https://cdn.tailwindcss.com"></script>`) {
		t.Error("tailwind script missing after switch")
	}
	if !strings.Contains(body, `<html lang="de">`) {
		t.Error("language lost after framework switch")
	}
}

func TestPaths(t *testing.T) {
	s := New(DemoCatalog())
	paths := s.Paths()
	if paths[0] != "/" || paths[len(paths)-1] != "/cart" {
		t.Errorf("paths = %v", paths)
	}
	if len(paths) != 1+4+8+1 {
		t.Errorf("len(paths) = %d, want 14", len(paths))
	}

	_, srv := newShopServer(t)
	for _, p := range paths {
		if code, _ := get(t, srv, p); code != http.StatusOK {
			t.Errorf("GET %s = %d", p, code)
		}
	}
}
