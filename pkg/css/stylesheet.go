package css

import "strings"

// Declaration is one property: value pair.
type Declaration struct {
	Property string
	Value    string
}

// Decl creates a Declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// RuleSet is a selector with its declarations in order.
type RuleSet struct {
	Selector     string
	Declarations []Declaration
}

// Rule creates a RuleSet.
func Rule(selector string, decls ...Declaration) RuleSet {
	return RuleSet{Selector: selector, Declarations: decls}
}

// Stylesheet is a named, ordered collection of rules. The name identifies
// the sheet so a page includes it at most once.
type Stylesheet struct {
	name  string
	rules []RuleSet
}

// Scope creates an empty stylesheet with the given name.
func Scope(name string) *Stylesheet {
	return &Stylesheet{name: name}
}

// Name returns the stylesheet name.
func (s *Stylesheet) Name() string {
	return s.name
}

// Add appends rules and returns the stylesheet for chaining.
func (s *Stylesheet) Add(rules ...RuleSet) *Stylesheet {
	s.rules = append(s.rules, rules...)
	return s
}

// Rules returns a copy of the rules.
func (s *Stylesheet) Rules() []RuleSet {
	return append([]RuleSet(nil), s.rules...)
}

// String renders the stylesheet as CSS text, one rule per line, with rules
// and declarations in insertion order. "</" is written as "<\/" so the text
// can be embedded in a <style> element.
func (s *Stylesheet) String() string {
	var b strings.Builder
	for i, r := range s.rules {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Selector)
		b.WriteByte('{')
		for j, d := range r.Declarations {
			if j > 0 {
				b.WriteByte(';')
			}
			b.WriteString(d.Property)
			b.WriteByte(':')
			b.WriteString(d.Value)
		}
		b.WriteByte('}')
	}
	return strings.ReplaceAll(b.String(), "</", `<\/`)
}
