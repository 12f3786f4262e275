package render

import (
	"bytes"
	"io"

	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// ScriptTag represents a script element. Deferred and async scripts go in
// the head; the rest are placed at the end of the body.
type ScriptTag struct {
	Src    string // src attribute
	Type   string // type attribute
	Defer  bool   // defer attribute
	Async  bool   // async attribute
	Module bool   // type="module"
	Inline string // inline script content, inserted verbatim
}

// LayoutFunc decorates a page at build time, e.g. to add shared stylesheets.
type LayoutFunc func(*Page) *Page

// Page assembles a complete HTML document.
//
// Pages are built with chained configuration calls and finalized with
// Build or Renderer.RenderPage. Layouts run on a copy at build time, so
// building the same page twice gives the same document.
type Page struct {
	title       string
	lang        string
	meta        []MetaTag
	links       []LinkTag
	stylesheets []string
	styles      []string
	sheets      []string // names of stylesheets added through UseCSS
	scripts     []ScriptTag
	head        []*vdom.Node
	body        []*vdom.Node
	tail        []*vdom.Node
	layouts     []LayoutFunc
}

// NewPage creates a page with the given title.
func NewPage(title string) *Page {
	return &Page{title: title}
}

// Title sets the document title.
func (p *Page) Title(title string) *Page {
	p.title = title
	return p
}

// TitleText returns the document title.
func (p *Page) TitleText() string {
	return p.title
}

// Lang sets the lang attribute of the html element. Defaults to "en".
func (p *Page) Lang(lang string) *Page {
	p.lang = lang
	return p
}

// Meta adds a meta tag to the head.
func (p *Page) Meta(m MetaTag) *Page {
	p.meta = append(p.meta, m)
	return p
}

// Link adds a link tag to the head.
func (p *Page) Link(l LinkTag) *Page {
	p.links = append(p.links, l)
	return p
}

// Stylesheet adds an external stylesheet.
func (p *Page) Stylesheet(href string) *Page {
	p.stylesheets = append(p.stylesheets, href)
	return p
}

// Style adds an inline style block. The CSS is inserted verbatim.
func (p *Page) Style(css string) *Page {
	p.styles = append(p.styles, css)
	return p
}

// UseCSS adds a stylesheet as an inline style block. A stylesheet name is
// included only once per page.
func (p *Page) UseCSS(sheet *css.Stylesheet) *Page {
	if sheet == nil {
		return p
	}
	for _, name := range p.sheets {
		if name == sheet.Name() {
			return p
		}
	}
	p.sheets = append(p.sheets, sheet.Name())
	return p.Style(sheet.String())
}

// Script adds a script tag.
func (p *Page) Script(s ScriptTag) *Page {
	p.scripts = append(p.scripts, s)
	return p
}

// Head appends nodes to the end of the head.
func (p *Page) Head(nodes ...any) *Page {
	p.head = append(p.head, vdom.Fragment(nodes...))
	return p
}

// Body appends nodes to the body.
func (p *Page) Body(nodes ...any) *Page {
	p.body = append(p.body, vdom.Fragment(nodes...))
	return p
}

// SetBody replaces the body content.
func (p *Page) SetBody(nodes ...any) *Page {
	p.body = nil
	return p.Body(nodes...)
}

// Scripts appends script nodes after the body content.
func (p *Page) Scripts(nodes ...any) *Page {
	p.tail = append(p.tail, vdom.Fragment(nodes...))
	return p
}

// Layout registers a layout applied at build time, in registration order.
func (p *Page) Layout(fn LayoutFunc) *Page {
	if fn != nil {
		p.layouts = append(p.layouts, fn)
	}
	return p
}

// Build renders the page with a default renderer.
func (p *Page) Build() (string, error) {
	return defaultRenderer.RenderPageToString(p)
}

var defaultRenderer = NewRenderer(RendererConfig{})

// clone returns a copy whose slices can be appended to without touching p.
func (p *Page) clone() *Page {
	cp := *p
	cp.meta = append([]MetaTag(nil), p.meta...)
	cp.links = append([]LinkTag(nil), p.links...)
	cp.stylesheets = append([]string(nil), p.stylesheets...)
	cp.styles = append([]string(nil), p.styles...)
	cp.sheets = append([]string(nil), p.sheets...)
	cp.scripts = append([]ScriptTag(nil), p.scripts...)
	cp.head = append([]*vdom.Node(nil), p.head...)
	cp.body = append([]*vdom.Node(nil), p.body...)
	cp.tail = append([]*vdom.Node(nil), p.tail...)
	cp.layouts = nil
	return &cp
}

// resolve applies the layouts to a copy of the page.
func (p *Page) resolve() *Page {
	out := p.clone()
	for _, layout := range p.layouts {
		if next := layout(out); next != nil {
			out = next
		}
	}
	return out
}

// Document returns the html element of the page after applying layouts.
func (p *Page) Document() *vdom.Node {
	page := p.resolve()

	lang := page.lang
	if lang == "" {
		lang = "en"
	}

	head := vdom.Head(
		vdom.Meta(vdom.Charset("utf-8")),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
	)
	if page.title != "" {
		head.AddChild(vdom.Title(page.title))
	}
	for _, m := range page.meta {
		head.AddChild(metaNode(m))
	}
	for _, l := range page.links {
		head.AddChild(linkNode(l))
	}
	for _, href := range page.stylesheets {
		head.AddChild(vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href)))
	}
	for _, style := range page.styles {
		head.AddChild(vdom.Style(vdom.Raw(style)))
	}
	for _, s := range page.scripts {
		if s.Defer || s.Async {
			head.AddChild(scriptNode(s))
		}
	}
	head.AddChild(page.head)

	body := vdom.Body(page.body)
	for _, s := range page.scripts {
		if !s.Defer && !s.Async {
			body.AddChild(scriptNode(s))
		}
	}
	body.AddChild(page.tail)

	return vdom.Html(vdom.Lang(lang), head, body)
}

// RenderPage renders a complete HTML document to the given writer.
// Nothing is written if rendering fails.
func (r *Renderer) RenderPage(w io.Writer, page *Page) error {
	out, err := r.RenderPageToString(page)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderPageToString renders a complete HTML document.
func (r *Renderer) RenderPageToString(page *Page) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>")
	if err := r.render(&buf, page.Document()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func metaNode(m MetaTag) *vdom.Node {
	return vdom.Meta(
		vdom.AttrIf(m.Charset != "", vdom.Charset(m.Charset)),
		vdom.AttrIf(m.Name != "", vdom.Name(m.Name)),
		vdom.AttrIf(m.Property != "", vdom.Attribute("property", m.Property)),
		vdom.AttrIf(m.HTTPEquiv != "", vdom.HttpEquiv(m.HTTPEquiv)),
		vdom.AttrIf(m.Content != "", vdom.Content(m.Content)),
	)
}

func linkNode(l LinkTag) *vdom.Node {
	return vdom.Link(
		vdom.AttrIf(l.Rel != "", vdom.Rel(l.Rel)),
		vdom.AttrIf(l.Href != "", vdom.Href(l.Href)),
		vdom.AttrIf(l.Type != "", vdom.Type(l.Type)),
		vdom.AttrIf(l.Sizes != "", vdom.Attribute("sizes", l.Sizes)),
		vdom.AttrIf(l.CrossOrigin != "", vdom.Crossorigin(l.CrossOrigin)),
		vdom.AttrIf(l.Media != "", vdom.Media(l.Media)),
	)
}

func scriptNode(s ScriptTag) *vdom.Node {
	scriptType := s.Type
	if s.Module {
		scriptType = "module"
	}
	node := vdom.Script(
		vdom.AttrIf(s.Src != "", vdom.Src(s.Src)),
		vdom.AttrIf(scriptType != "", vdom.Type(scriptType)),
		vdom.AttrIf(s.Defer, vdom.Defer_()),
		vdom.AttrIf(s.Async, vdom.Async()),
	)
	if s.Inline != "" {
		node.AddChild(vdom.Raw(s.Inline))
	}
	return node
}
