package vdom

// voidElements are elements that cannot have children or a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element node with the given tag.
//
// Arguments are applied in order and can be: nil, Attr, []Attr, *Node,
// []*Node, Component, string, numbers, fmt.Stringer or bool. nil and false
// are skipped so children can be included conditionally. Values of any
// other type are kept as-is and rejected when the tree is rendered.
//
// An empty tag renders like Fragment: only the children are emitted. Prefer
// Fragment, which states the intent.
func El(tag string, args ...any) *Node {
	node := &Node{
		Kind: KindElement,
		Tag:  tag,
	}
	apply(node, args)
	return node
}

func apply(node *Node, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if !v.IsEmpty() {
				node.setAttr(v.Key, v.Value)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.setAttr(a.Key, a.Value)
				}
			}
		default:
			appendChild(node, arg)
		}
	}
}

// Document structure elements

func Html(args ...any) *Node  { return El("html", args...) }
func Head(args ...any) *Node  { return El("head", args...) }
func Body(args ...any) *Node  { return El("body", args...) }
func Title(args ...any) *Node { return El("title", args...) }
func Meta(args ...any) *Node  { return El("meta", args...) }
func Link(args ...any) *Node  { return El("link", args...) }

// Content sectioning elements

func Header(args ...any) *Node  { return El("header", args...) }
func Footer(args ...any) *Node  { return El("footer", args...) }
func Main(args ...any) *Node    { return El("main", args...) }
func Nav(args ...any) *Node     { return El("nav", args...) }
func Section(args ...any) *Node { return El("section", args...) }
func Article(args ...any) *Node { return El("article", args...) }
func H1(args ...any) *Node      { return El("h1", args...) }
func H2(args ...any) *Node      { return El("h2", args...) }
func H3(args ...any) *Node      { return El("h3", args...) }
func H4(args ...any) *Node      { return El("h4", args...) }
func H5(args ...any) *Node      { return El("h5", args...) }
func H6(args ...any) *Node      { return El("h6", args...) }

// Text content elements

func Div(args ...any) *Node  { return El("div", args...) }
func P(args ...any) *Node    { return El("p", args...) }
func Span(args ...any) *Node { return El("span", args...) }
func Pre(args ...any) *Node  { return El("pre", args...) }
func Ul(args ...any) *Node   { return El("ul", args...) }
func Ol(args ...any) *Node   { return El("ol", args...) }
func Li(args ...any) *Node   { return El("li", args...) }
func Hr(args ...any) *Node   { return El("hr", args...) }

// Inline text semantics

func A(args ...any) *Node      { return El("a", args...) }
func Strong(args ...any) *Node { return El("strong", args...) }
func Em(args ...any) *Node     { return El("em", args...) }
func Small(args ...any) *Node  { return El("small", args...) }
func Code(args ...any) *Node   { return El("code", args...) }
func Del(args ...any) *Node    { return El("del", args...) }
func Br(args ...any) *Node     { return El("br", args...) }

// Form elements

func Form(args ...any) *Node     { return El("form", args...) }
func Input(args ...any) *Node    { return El("input", args...) }
func Textarea(args ...any) *Node { return El("textarea", args...) }
func Select(args ...any) *Node   { return El("select", args...) }
func Option(args ...any) *Node   { return El("option", args...) }
func Button(args ...any) *Node   { return El("button", args...) }
func Label(args ...any) *Node    { return El("label", args...) }

// Table elements

func Table(args ...any) *Node { return El("table", args...) }
func Thead(args ...any) *Node { return El("thead", args...) }
func Tbody(args ...any) *Node { return El("tbody", args...) }
func Tr(args ...any) *Node    { return El("tr", args...) }
func Th(args ...any) *Node    { return El("th", args...) }
func Td(args ...any) *Node    { return El("td", args...) }

// Media elements

func Img(args ...any) *Node { return El("img", args...) }
func Svg(args ...any) *Node { return El("svg", args...) }

// Scripting elements

func Script(args ...any) *Node { return El("script", args...) }
func Style(args ...any) *Node  { return El("style", args...) }
