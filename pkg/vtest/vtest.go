package vtest

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/weblib-dev/weblib/pkg/render"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// Renderable is a *vdom.Node or a vdom.Component.
type Renderable any

var renderer = render.NewRenderer(render.RendererConfig{Strict: true})

// node wraps v in a node the renderer accepts.
func node(v Renderable) (*vdom.Node, error) {
	switch n := v.(type) {
	case *vdom.Node:
		return n, nil
	case vdom.Component:
		return vdom.Fragment(n), nil
	}
	return nil, fmt.Errorf("vtest: cannot render %T", v)
}

// RenderToString renders v, failing the test on error.
//
// Example:
//
//	html := vtest.RenderToString(t, vdom.P("hi"))
func RenderToString(tb testing.TB, v Renderable) string {
	tb.Helper()
	n, err := node(v)
	if err != nil {
		tb.Fatal(err)
	}
	out, err := renderer.RenderToString(n)
	if err != nil {
		tb.Fatalf("render failed: %v", err)
	}
	return out
}

// RenderError renders v and returns the error, failing the test when the
// render succeeds.
func RenderError(tb testing.TB, v Renderable) error {
	tb.Helper()
	n, err := node(v)
	if err != nil {
		tb.Fatal(err)
	}
	out, err := renderer.RenderToString(n)
	if err == nil {
		tb.Fatalf("expected render error, got:\n%s", truncate(out, 500))
	}
	if out != "" {
		tb.Errorf("failed render returned output %q", truncate(out, 100))
	}
	return err
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, alert, "&lt;script&gt;")
func ExpectContains(tb testing.TB, v Renderable, expected string) {
	tb.Helper()
	out := RenderToString(tb, v)
	if !strings.Contains(out, expected) {
		tb.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(out, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(tb testing.TB, v Renderable, unexpected string) {
	tb.Helper()
	out := RenderToString(tb, v)
	if strings.Contains(out, unexpected) {
		tb.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(out, 500))
	}
}

// ExpectElement asserts that the parsed output holds at least one tag
// element.
//
// Example:
//
//	vtest.ExpectElement(t, navbar, "nav")
func ExpectElement(tb testing.TB, v Renderable, tag string) {
	tb.Helper()
	if len(Elements(tb, v, tag)) == 0 {
		tb.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(RenderToString(tb, v), 500))
	}
}

// ExpectAttribute asserts that some tag element carries attr with value.
//
// Example:
//
//	vtest.ExpectAttribute(t, alert, "div", "role", "alert")
func ExpectAttribute(tb testing.TB, v Renderable, tag, attr, value string) {
	tb.Helper()
	for _, el := range Elements(tb, v, tag) {
		for _, a := range el.Attr {
			if a.Key == attr && a.Val == value {
				return
			}
		}
	}
	tb.Errorf("expected <%s %s=%q> not found, got:\n%s", tag, attr, value, truncate(RenderToString(tb, v), 500))
}

// ExpectClasses asserts that the first tag element carries exactly classes,
// in order.
func ExpectClasses(tb testing.TB, v Renderable, tag string, classes ...string) {
	tb.Helper()
	els := Elements(tb, v, tag)
	if len(els) == 0 {
		tb.Errorf("no <%s> element in rendered output", tag)
		return
	}
	var got string
	for _, a := range els[0].Attr {
		if a.Key == "class" {
			got = a.Val
		}
	}
	if want := strings.Join(classes, " "); got != want {
		tb.Errorf("<%s> class = %q, want %q", tag, got, want)
	}
}

// Elements parses the rendered output as a body fragment and returns every
// tag element in document order.
func Elements(tb testing.TB, v Renderable, tag string) []*html.Node {
	tb.Helper()
	out := RenderToString(tb, v)
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(out), body)
	if err != nil {
		tb.Fatalf("parse rendered output: %v", err)
	}

	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return found
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
