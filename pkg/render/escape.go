package render

import (
	"strings"
	"unicode/utf8"
)

// escapeHTML escapes text for safe inclusion in HTML content.
// Invalid UTF-8 and NUL bytes are replaced with U+FFFD so the output is
// always valid UTF-8 without embedded NULs.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	writeEscaped(&buf, s, false)
	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes
// whitespace characters that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	writeEscaped(&buf, s, true)
	return buf.String()
}

func writeEscaped(buf *strings.Builder, s string, attr bool) {
	// Ranging over s yields utf8.RuneError for undecodable bytes, which
	// WriteRune emits as U+FFFD.
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case 0:
			buf.WriteRune(utf8.RuneError)
		case '\n', '\r', '\t':
			if !attr {
				buf.WriteRune(r)
				continue
			}
			switch r {
			case '\n':
				buf.WriteString("&#10;")
			case '\r':
				buf.WriteString("&#13;")
			default:
				buf.WriteString("&#9;")
			}
		default:
			buf.WriteRune(r)
		}
	}
}
