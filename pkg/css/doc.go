// Package css provides CSS framework class tables and a small stylesheet
// builder.
//
// A Framework names the classes components use (card, alert, badge...)
// together with spacing and colour helpers:
//
//	css.Bootstrap.Margin(3, "t")  // "mt-3"
//	css.Bulma.Padding(5, "e")     // "pr-5"
//
// Stylesheets are built from ordered rules and attached to a page:
//
//	base := css.Scope("base").Add(
//	    css.Rule("body", css.Decl("font-family", "system-ui"), css.Decl("margin", "0")),
//	)
package css
