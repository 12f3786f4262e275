package vdom

// aliases maps attribute spellings that are awkward as identifiers or
// keyword arguments back to their wire names. It is read-only.
var aliases = map[string]string{
	"for_": "for",
	"cls":  "class",
}

// WireName translates an attribute alias to the name emitted in HTML.
// Keys without an alias are returned unchanged.
func WireName(key string) string {
	if wire, ok := aliases[key]; ok {
		return wire
	}
	return key
}

// Aliases returns a copy of the attribute alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an arbitrary attribute. Aliases such as "for_" and
// "cls" are translated when the attribute is applied to a node.
func Attribute(key string, value any) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class appends classes to the class attribute in the given order.
func Class(classes ...string) Attr { return attr("class", ClassList(classes)) }

// Cls is Class under its short alias.
func Cls(classes ...string) Attr { return attr("cls", ClassList(classes)) }

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return Class(class)
	}
	return Attr{}
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Aria creates an aria-* attribute. ARIA states are enumerated strings, so
// pass "true"/"false" rather than a bool.
func Aria(key, value string) Attr { return attr("aria-"+key, value) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", boolString(hidden)) }

// AriaCurrent sets the aria-current attribute.
func AriaCurrent(value string) Attr { return attr("aria-current", value) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// Action sets the action attribute.
func Action(url string) Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return attr("method", method) }

// Min sets the min attribute.
func Min(value any) Attr { return attr("min", value) }

// Max sets the max attribute.
func Max(value any) Attr { return attr("max", value) }

// Boolean attributes. They render bare when true.

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// DisabledIf sets the disabled attribute when cond is true.
func DisabledIf(cond bool) Attr { return attr("disabled", cond) }

// Readonly sets the readonly attribute.
func Readonly() Attr { return attr("readonly", true) }

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return attr("selected", true) }

// Multiple sets the multiple attribute.
func Multiple() Attr { return attr("multiple", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() Attr { return attr("autofocus", true) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Loading sets the loading attribute.
func Loading(mode string) Attr { return attr("loading", mode) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return attr("colspan", n) }

// Scope sets the scope attribute.
func Scope(scope string) Attr { return attr("scope", scope) }

// Meta/Link/Script attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) Attr { return attr("http-equiv", value) }

// Defer_ sets the defer attribute for script elements.
func Defer_() Attr { return attr("defer", true) }

// Async sets the async attribute for script elements.
func Async() Attr { return attr("async", true) }

// Crossorigin sets the crossorigin attribute.
func Crossorigin(value string) Attr { return attr("crossorigin", value) }

// Integrity sets the integrity attribute for subresource integrity.
func Integrity(value string) Attr { return attr("integrity", value) }

// Media sets the media attribute.
func Media(value string) Attr { return attr("media", value) }

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
