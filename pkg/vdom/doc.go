// Package vdom provides the element tree used to describe HTML before it is
// serialized.
//
// # Core Types
//
// Node is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Attr describes one attribute;
// attributes keep their insertion order and the class attribute collects a
// ClassList in the order classes were added, duplicates included.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P("Content"),
//	    If(showFooter, Footer("Bye")),
//	)
//
// Strings become escaped text, numbers are stringified, nil and false are
// dropped. Raw markup must be requested explicitly with Raw or Sanitized.
//
// The attribute names "for_" and "cls" are aliases for "for" and "class".
//
// A tree is rendered to HTML by package render.
package vdom
