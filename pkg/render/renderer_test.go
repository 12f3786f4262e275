package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/weblib-dev/weblib/pkg/vdom"
)

type celsius float64

func (c celsius) String() string { return "warm" }

func TestRenderToString(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.Node
		want string
	}{
		{
			name: "nested element with class",
			node: vdom.El("div", vdom.El("p", "Hello"), vdom.Cls("container")),
			want: `<div class="container"><p>Hello</p></div>`,
		},
		{
			name: "attributes in insertion order",
			node: vdom.Input(vdom.Type("text"), vdom.Name("email"), vdom.Placeholder("you@example.com")),
			want: `<input type="text" name="email" placeholder="you@example.com">`,
		},
		{
			name: "boolean attributes",
			node: vdom.Input(vdom.Type("checkbox"), vdom.Checked(), vdom.DisabledIf(false)),
			want: `<input type="checkbox" checked>`,
		},
		{
			name: "fragment of list items",
			node: vdom.Fragment(vdom.Li("one"), vdom.Li("two")),
			want: `<li>one</li><li>two</li>`,
		},
		{
			name: "text escaped",
			node: vdom.P(`a < b & "c"`),
			want: `<p>a &lt; b &amp; &quot;c&quot;</p>`,
		},
		{
			name: "raw inserted verbatim",
			node: vdom.Div(vdom.Raw("<b>bold</b>")),
			want: `<div><b>bold</b></div>`,
		},
		{
			name: "attribute escaped",
			node: vdom.A(vdom.Href(`/search?q="x"&y=<1>`), "go"),
			want: `<a href="/search?q=&quot;x&quot;&amp;y=&lt;1&gt;">go</a>`,
		},
		{
			name: "class aggregation keeps duplicates",
			node: vdom.Div(vdom.Class("a"), vdom.ID("x"), vdom.Cls("b", "a")),
			want: `<div class="a b a" id="x"></div>`,
		},
		{
			name: "numbers and stringers",
			node: vdom.Img(vdom.Width(100), vdom.Attribute("data-scale", 0.5), vdom.Attribute("data-temp", celsius(21))),
			want: `<img width="100" data-scale="0.5" data-temp="warm">`,
		},
		{
			name: "nil attribute skipped, empty string kept",
			node: vdom.Img(vdom.Attribute("title", nil), vdom.Alt("")),
			want: `<img alt="">`,
		},
		{
			name: "number children stringified",
			node: vdom.Span(3, " of ", int64(10)),
			want: `<span>3 of 10</span>`,
		},
		{
			name: "every integer kind stringified",
			node: vdom.P(int8(-1), int16(2), int32(3), uint(4), uint8(5), uint16(6), uint32(7), uint64(8), float32(0.5)),
			want: `<p>-123456780.5</p>`,
		},
		{
			name: "void element ignores children",
			node: vdom.Br("ignored"),
			want: `<br>`,
		},
		{
			name: "empty tag renders children only",
			node: &vdom.Node{Kind: vdom.KindElement, Children: []*vdom.Node{vdom.Text("x")}},
			want: `x`,
		},
		{
			name: "El with empty tag matches Fragment",
			node: vdom.El("", vdom.Li("a"), vdom.Li("b")),
			want: `<li>a</li><li>b</li>`,
		},
		{
			name: "alias in struct literal translated",
			node: &vdom.Node{
				Kind:  vdom.KindElement,
				Tag:   "label",
				Attrs: []vdom.Attr{{Key: "for_", Value: "email"}},
			},
			want: `<label for="email"></label>`,
		},
		{
			name: "function component",
			node: vdom.Div(vdom.Func(func() *vdom.Node { return vdom.Em("hi") })),
			want: `<div><em>hi</em></div>`,
		},
		{
			name: "nil node",
			node: nil,
			want: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSharedNodeIsNotACycle(t *testing.T) {
	shared := vdom.Span("x")
	got, err := NewRenderer(RendererConfig{}).RenderToString(vdom.Div(shared, shared))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `<div><span>x</span><span>x</span></div>` {
		t.Errorf("got %q", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	node := vdom.Ul(vdom.Class("list"),
		vdom.Map([]string{"a", "b", "c"}, func(s string, i int) *vdom.Node {
			return vdom.Li(vdom.Data("index", i), s)
		}),
	)

	first, err := renderer.RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := renderer.RenderToString(node)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("render %d differs: %q vs %q", i, again, first)
		}
	}
}

type invalidCard struct{}

func (invalidCard) Render() *vdom.Node { return vdom.Div() }
func (invalidCard) Validate() error    { return errors.New("title is required") }

type panicky struct{}

func (panicky) Render() *vdom.Node { panic("boom") }

func TestRenderErrors(t *testing.T) {
	cyclic := vdom.Div()
	cyclic.Children = append(cyclic.Children, vdom.Span(), cyclic)

	var self vdom.Component
	self = vdom.Func(func() *vdom.Node { return vdom.Div(self) })

	tests := []struct {
		name    string
		config  RendererConfig
		node    *vdom.Node
		wantErr error
	}{
		{
			name:    "unsupported attribute value",
			node:    vdom.Div(vdom.Attribute("data-x", struct{}{})),
			wantErr: ErrUnsupportedAttr,
		},
		{
			name:    "unsupported child value",
			node:    vdom.Div(struct{ N int }{1}),
			wantErr: ErrUnsupportedChild,
		},
		{
			name:    "cycle",
			node:    cyclic,
			wantErr: ErrCircularReference,
		},
		{
			name:    "depth limit",
			config:  RendererConfig{MaxDepth: 3},
			node:    vdom.Div(vdom.Div(vdom.Div(vdom.Div(vdom.Div())))),
			wantErr: ErrMaxDepth,
		},
		{
			name:    "unbounded component recursion",
			node:    vdom.Div(self),
			wantErr: ErrMaxDepth,
		},
		{
			name:    "strict void children",
			config:  RendererConfig{Strict: true},
			node:    vdom.Br("x"),
			wantErr: ErrVoidChildren,
		},
		{
			name:    "nul in raw markup",
			node:    vdom.Div(vdom.Raw("a\x00b")),
			wantErr: ErrNulByte,
		},
		{
			name:    "component rendered nil",
			node:    vdom.Div(vdom.Func(func() *vdom.Node { return nil })),
			wantErr: ErrNilRender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer := NewRenderer(tt.config)

			got, err := renderer.RenderToString(tt.node)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("output = %q, want empty", got)
			}

			var buf bytes.Buffer
			if err := renderer.RenderToWriter(&buf, tt.node); !errors.Is(err, tt.wantErr) {
				t.Fatalf("RenderToWriter err = %v, want %v", err, tt.wantErr)
			}
			if buf.Len() != 0 {
				t.Errorf("writer received %q, want nothing", buf.String())
			}
		})
	}
}

func TestRenderErrorContext(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(
		vdom.Section(vdom.Input(vdom.Attribute("value", []int{1}))),
	)

	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want *RenderError", err)
	}
	if re.Tag != "input" || re.Attr != "value" {
		t.Errorf("context = <%s> %q, want <input> \"value\"", re.Tag, re.Attr)
	}
	if !strings.Contains(err.Error(), `<input> attribute "value"`) {
		t.Errorf("message = %q", err.Error())
	}
}

func TestRenderComponentContract(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		node *vdom.Node
		want string
	}{
		{"validation failure", vdom.Div(invalidCard{}), "title is required"},
		{"panic", vdom.Div(panicky{}), "panic in Render: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := renderer.RenderToString(tt.node)

			var ce *ComponentContractError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ComponentContractError", err)
			}
			if !strings.Contains(ce.Error(), tt.want) {
				t.Errorf("message = %q, want to contain %q", ce.Error(), tt.want)
			}
			if !strings.Contains(ce.Component, "render.") {
				t.Errorf("Component = %q, want the Go type name", ce.Component)
			}
		})
	}
}

func TestNewRendererDefaults(t *testing.T) {
	if got := NewRenderer(RendererConfig{}).Config().MaxDepth; got != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", got, DefaultMaxDepth)
	}
	if got := NewRenderer(RendererConfig{MaxDepth: 8}).Config().MaxDepth; got != 8 {
		t.Errorf("MaxDepth = %d, want 8", got)
	}
}

// TestRenderReparse checks that escaped text survives a round trip through
// an HTML5 parser unchanged.
func TestRenderReparse(t *testing.T) {
	inputs := []string{
		`<script>alert('xss')</script>`,
		`Tom & Jerry's "show"`,
		`</p><p onclick="x">`,
		`plain text`,
	}
	renderer := NewRenderer(RendererConfig{})

	for _, in := range inputs {
		out, err := renderer.RenderToString(vdom.P(vdom.TitleAttr(in), in))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := parseSingle(t, out)
		if p.DataAtom != atom.P {
			t.Fatalf("parsed %q as <%s>", out, p.Data)
		}
		if got := textContent(p); got != in {
			t.Errorf("text = %q, want %q", got, in)
		}
		if len(p.Attr) != 1 || p.Attr[0].Val != in {
			t.Errorf("attr = %+v, want title=%q", p.Attr, in)
		}
	}
}

func parseSingle(t *testing.T, markup string) *html.Node {
	t.Helper()
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		t.Fatalf("parse %q: %v", markup, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("parse %q: got %d top-level nodes, want 1", markup, len(nodes))
	}
	return nodes[0]
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func BenchmarkRenderList(b *testing.B) {
	renderer := NewRenderer(RendererConfig{})
	items := make([]int, 100)
	node := vdom.Ul(vdom.Class("list"), vdom.Map(items, func(_ int, i int) *vdom.Node {
		return vdom.Li(vdom.Class("item"), vdom.Data("i", i), "Item ", i)
	}))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := renderer.RenderToString(node); err != nil {
			b.Fatal(err)
		}
	}
}
