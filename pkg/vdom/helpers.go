package vdom

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Text creates a text node. Its content is escaped on render.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

var (
	sanitizerOnce sync.Once
	sanitizer     *bluemonday.Policy
)

// Sanitized creates a raw HTML node from untrusted markup after removing
// scripts, event handlers and other unsafe content.
func Sanitized(html string) *Node {
	sanitizerOnce.Do(func() {
		sanitizer = bluemonday.UGCPolicy()
	})
	return Raw(strings.TrimSpace(sanitizer.Sanitize(html)))
}

// Fragment groups children without a wrapper element.
// It accepts the same child values as El; attributes are ignored.
func Fragment(children ...any) *Node {
	node := &Node{Kind: KindFragment}
	for _, child := range children {
		switch child.(type) {
		case Attr, []Attr:
			continue
		}
		appendChild(node, child)
	}
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *Node) *Node {
	if !condition {
		return node
	}
	return nil
}

// Map maps a slice to nodes, dropping nil results.
func Map[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}
