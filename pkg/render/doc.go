// Package render provides server-side rendering for weblib node trees.
//
// The render package converts vdom.Node trees into HTML strings, handling
// all aspects of producing valid, secure HTML output including:
//
//   - Attribute output in insertion order, with class lists joined by spaces
//   - Text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attributes (true renders the bare name, false omits it)
//   - Fragments that contribute only their children
//   - Full page rendering with DOCTYPE, head, body and scripts
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// To write HTML to a writer:
//
//	err := renderer.RenderToWriter(w, node)
//
// Output is buffered until the whole tree has rendered, so a failed render
// never leaves partial markup in w.
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := render.NewPage("Home").
//	    Stylesheet("/static/site.css").
//	    Body(vdom.H1("Welcome"))
//	html, err := page.Build()
//
// # Errors
//
// Values the renderer cannot serialise are reported as *RenderError, which
// names the element and attribute involved. Components whose Validate method
// fails, or whose Render returns nil, are reported as *ComponentContractError.
// Both unwrap to the sentinel errors declared in this package.
//
// # Security
//
// All text content is escaped by default. Raw HTML can be inserted with
// vdom.Raw, which should only be used with trusted content; vdom.Sanitized
// cleans untrusted markup first.
package render
