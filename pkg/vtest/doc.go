// Package vtest provides testing helpers for element trees and components.
//
// Helpers render with a default renderer and fail the test on render
// errors, so assertions never run against truncated output.
//
// # Render Assertions
//
//	func TestGreeting(t *testing.T) {
//	    card := &component.Card{Title: "Hi"}
//	    vtest.ExpectContains(t, card, "Hi")
//	    vtest.ExpectElement(t, card, "h5")
//	    vtest.ExpectClasses(t, card, "div", "card")
//	}
//
// Every helper accepts a *vdom.Node or a vdom.Component.
package vtest
