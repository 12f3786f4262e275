package vdom

import (
	"fmt"
	"strconv"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text, escaped on render
	KindFragment              // Grouping without wrapper
	KindComponent             // Nested component
	KindRaw                   // Raw HTML, inserted verbatim
	KindValue                 // Child value of a type the renderer cannot serialize
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	case KindValue:
		return "Value"
	default:
		return "Unknown"
	}
}

// Node describes one HTML element, fragment, text run or raw markup block
// before it is serialized.
//
// Nodes are plain values owned by whoever built them. A tree may be built
// incrementally with AddChild, AddClass and SetAttr, but must not be mutated
// while it is being rendered.
type Node struct {
	Kind     Kind      // Node type
	Tag      string    // Element tag name (e.g., "div"); empty for fragments
	Attrs    []Attr    // Attributes in insertion order
	Children []*Node   // Child nodes in insertion order
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	Value    any       // For KindValue
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// ClassList is the ordered value of the class attribute. Duplicates are kept.
type ClassList []string

// Component is anything that can render to a Node.
type Component interface {
	Render() *Node
}

// Validator is implemented by components that check their configuration
// before rendering.
type Validator interface {
	Validate() error
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *Node
}

// Render implements Component.
func (f *FuncComponent) Render() *Node {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return &FuncComponent{render: render}
}

// IsFragment reports whether the node contributes only its children.
func (n *Node) IsFragment() bool {
	return n != nil && n.Kind == KindFragment
}

// AddChild appends a child value and returns the node for chaining.
// It accepts the same values as El.
func (n *Node) AddChild(child any) *Node {
	appendChild(n, child)
	return n
}

// AddClass appends classes to the class attribute and returns the node.
func (n *Node) AddClass(classes ...string) *Node {
	n.addClasses(classes)
	return n
}

// SetAttr sets an attribute and returns the node. Setting an existing key
// replaces its value in place; class values are appended instead.
func (n *Node) SetAttr(key string, value any) *Node {
	n.setAttr(key, value)
	return n
}

// Attr returns the value stored under key after alias translation.
func (n *Node) Attr(key string) (any, bool) {
	key = WireName(key)
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// ClassNames returns a copy of the node's class list.
func (n *Node) ClassNames() []string {
	v, ok := n.Attr("class")
	if !ok {
		return nil
	}
	switch c := v.(type) {
	case ClassList:
		return append([]string(nil), c...)
	case string:
		return []string{c}
	}
	return nil
}

func (n *Node) setAttr(key string, value any) {
	key = WireName(key)
	if key == "" {
		return
	}
	if key == "class" {
		switch v := value.(type) {
		case string:
			n.addClasses([]string{v})
			return
		case []string:
			n.addClasses(v)
			return
		case ClassList:
			n.addClasses(v)
			return
		}
	}
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
}

func (n *Node) addClasses(classes []string) {
	idx := -1
	for i := range n.Attrs {
		if n.Attrs[i].Key == "class" {
			idx = i
			break
		}
	}
	var list ClassList
	if idx >= 0 {
		switch v := n.Attrs[idx].Value.(type) {
		case ClassList:
			list = v
		case string:
			list = ClassList{v}
		}
	}
	added := false
	for _, c := range classes {
		if c == "" {
			continue
		}
		list = append(list, c)
		added = true
	}
	if !added {
		return
	}
	if idx >= 0 {
		n.Attrs[idx].Value = list
		return
	}
	n.Attrs = append(n.Attrs, Attr{Key: "class", Value: list})
}

// appendChild converts a child value to a node and appends it.
func appendChild(n *Node, child any) {
	switch v := child.(type) {
	case nil:
	case *Node:
		if v != nil {
			n.Children = append(n.Children, v)
		}
	case []*Node:
		for _, c := range v {
			if c != nil {
				n.Children = append(n.Children, c)
			}
		}
	case Component:
		n.Children = append(n.Children, &Node{Kind: KindComponent, Comp: v})
	case []Component:
		for _, c := range v {
			if c != nil {
				n.Children = append(n.Children, &Node{Kind: KindComponent, Comp: c})
			}
		}
	case string:
		n.Children = append(n.Children, Text(v))
	case []string:
		for _, s := range v {
			n.Children = append(n.Children, Text(s))
		}
	case bool:
		// false drops the child, which allows cond && "text" style inclusion.
		// true carries no content either.
	case int:
		n.Children = append(n.Children, Text(strconv.Itoa(v)))
	case int8:
		n.Children = append(n.Children, Text(strconv.FormatInt(int64(v), 10)))
	case int16:
		n.Children = append(n.Children, Text(strconv.FormatInt(int64(v), 10)))
	case int32:
		n.Children = append(n.Children, Text(strconv.FormatInt(int64(v), 10)))
	case int64:
		n.Children = append(n.Children, Text(strconv.FormatInt(v, 10)))
	case uint:
		n.Children = append(n.Children, Text(strconv.FormatUint(uint64(v), 10)))
	case uint8:
		n.Children = append(n.Children, Text(strconv.FormatUint(uint64(v), 10)))
	case uint16:
		n.Children = append(n.Children, Text(strconv.FormatUint(uint64(v), 10)))
	case uint32:
		n.Children = append(n.Children, Text(strconv.FormatUint(uint64(v), 10)))
	case uint64:
		n.Children = append(n.Children, Text(strconv.FormatUint(v, 10)))
	case float32:
		n.Children = append(n.Children, Text(strconv.FormatFloat(float64(v), 'g', -1, 32)))
	case float64:
		n.Children = append(n.Children, Text(strconv.FormatFloat(v, 'g', -1, 64)))
	case fmt.Stringer:
		n.Children = append(n.Children, Text(v.String()))
	default:
		n.Children = append(n.Children, &Node{Kind: KindValue, Value: v})
	}
}
