package shop

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats shop values for one language.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	title   cases.Caser
}

// NewFormatter returns a Formatter for a BCP 47 language tag such as "en"
// or "de". Unparseable tags fall back to English.
func NewFormatter(lang string) *Formatter {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		title:   cases.Title(tag),
	}
}

// Lang returns the language tag as a string.
func (f *Formatter) Lang() string {
	return f.tag.String()
}

// Price formats an amount in euros with two decimals and the language's
// digit grouping, e.g. "€1,199.99" in English.
func (f *Formatter) Price(v float64) string {
	return f.printer.Sprintf("€%.2f", v)
}

// Count formats an integer with digit grouping.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Tag formats a product tag for display.
func (f *Formatter) Tag(tag string) string {
	return f.title.String(strings.ReplaceAll(tag, "-", " "))
}

// Stars returns a five-star rating bar, e.g. "★★★★☆" for 4.8.
func Stars(rating float64) string {
	n := min(max(int(rating), 0), 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
