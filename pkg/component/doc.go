// Package component provides reusable UI components built on vdom nodes.
//
// Typed components such as Card, Alert and Pagination are configured with
// struct fields and render deterministic markup styled by a css.Framework
// (Bootstrap when none is set):
//
//	alert := &component.Alert{Message: "Saved", Type: "success"}
//	html, err := renderer.RenderToString(vdom.Div(alert))
//
// Components can also be created by name from a Registry, which decodes a
// loosely typed Props bag into the component fields:
//
//	reg := component.Builtins(css.Bootstrap)
//	pager, err := reg.Build("pagination", component.Props{"current_page": "2", "total_pages": 5})
//
// Base is a starting point for ad-hoc components: embed *Base for its
// property bag and children and supply a Render method.
package component
