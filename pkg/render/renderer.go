package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/weblib-dev/weblib/pkg/vdom"
)

// DefaultMaxDepth is the nesting limit used when RendererConfig.MaxDepth is zero.
const DefaultMaxDepth = 512

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// MaxDepth limits how deeply elements, fragments and components may nest.
	// It bounds runaway component recursion. Defaults to DefaultMaxDepth.
	MaxDepth int

	// Strict rejects children on void elements instead of ignoring them.
	Strict bool
}

// Renderer serializes node trees to HTML.
//
// A Renderer holds only its configuration, so one value may be shared by
// concurrent requests.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Renderer{config: config}
}

// Config returns the effective configuration.
func (r *Renderer) Config() RendererConfig {
	return r.config
}

// RenderToString renders a node tree to an HTML string.
// On error the returned string is empty.
func (r *Renderer) RenderToString(node *vdom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders a node tree and writes it to w with a single
// Write call. Nothing is written if rendering fails.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.Node) error {
	var buf bytes.Buffer
	if err := r.render(&buf, node); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *Renderer) render(buf *bytes.Buffer, node *vdom.Node) error {
	s := &state{
		buf:    buf,
		config: r.config,
		path:   make(map[*vdom.Node]struct{}),
	}
	return s.renderNode(node, "", 0)
}

// state is the per-call walk state. It never outlives a render call.
type state struct {
	buf    *bytes.Buffer
	config RendererConfig
	path   map[*vdom.Node]struct{} // nodes on the current root-to-node path
}

// renderNode dispatches rendering based on node kind. parent is the
// enclosing element tag, used for error context.
func (s *state) renderNode(node *vdom.Node, parent string, depth int) error {
	if node == nil {
		return nil
	}
	if depth > s.config.MaxDepth {
		return &RenderError{Tag: parent, Err: fmt.Errorf("%w (%d)", ErrMaxDepth, s.config.MaxDepth)}
	}
	if _, seen := s.path[node]; seen {
		return &RenderError{Tag: parent, Err: ErrCircularReference}
	}
	s.path[node] = struct{}{}
	defer delete(s.path, node)

	switch node.Kind {
	case vdom.KindElement:
		if node.Tag == "" {
			return s.renderChildren(node, parent, depth)
		}
		return s.renderElement(node, depth)
	case vdom.KindText:
		s.buf.WriteString(escapeHTML(node.Text))
		return nil
	case vdom.KindFragment:
		return s.renderChildren(node, parent, depth)
	case vdom.KindComponent:
		return s.renderComponent(node, parent, depth)
	case vdom.KindRaw:
		if strings.IndexByte(node.Text, 0) >= 0 {
			return &RenderError{Tag: parent, Err: ErrNulByte}
		}
		s.buf.WriteString(node.Text)
		return nil
	case vdom.KindValue:
		return &RenderError{Tag: parent, Err: fmt.Errorf("%w: %T", ErrUnsupportedChild, node.Value)}
	default:
		return &RenderError{Tag: parent, Err: fmt.Errorf("%w: node kind %d", ErrUnsupportedChild, node.Kind)}
	}
}

// renderElement renders an HTML element with its attributes and children.
func (s *state) renderElement(node *vdom.Node, depth int) error {
	tag := node.Tag

	s.buf.WriteByte('<')
	s.buf.WriteString(tag)
	if err := s.renderAttributes(node); err != nil {
		return err
	}
	s.buf.WriteByte('>')

	if vdom.IsVoidElement(tag) {
		if s.config.Strict && len(node.Children) > 0 {
			return &RenderError{Tag: tag, Err: ErrVoidChildren}
		}
		return nil
	}

	if err := s.renderChildren(node, tag, depth); err != nil {
		return err
	}

	s.buf.WriteString("</")
	s.buf.WriteString(tag)
	s.buf.WriteByte('>')
	return nil
}

func (s *state) renderChildren(node *vdom.Node, parent string, depth int) error {
	for _, child := range node.Children {
		if err := s.renderNode(child, parent, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// renderComponent validates and renders a component, then renders its output.
func (s *state) renderComponent(node *vdom.Node, parent string, depth int) error {
	if node.Comp == nil {
		return nil
	}
	name := fmt.Sprintf("%T", node.Comp)

	if v, ok := node.Comp.(vdom.Validator); ok {
		if err := v.Validate(); err != nil {
			return &ComponentContractError{Component: name, Err: err}
		}
	}

	output, err := callRender(node.Comp)
	if err != nil {
		return &ComponentContractError{Component: name, Err: err}
	}
	if output == nil {
		return &ComponentContractError{Component: name, Err: ErrNilRender}
	}
	return s.renderNode(output, parent, depth+1)
}

// callRender converts a panic inside Render into an error.
func callRender(c vdom.Component) (out *vdom.Node, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in Render: %v", p)
		}
	}()
	return c.Render(), nil
}

// renderAttributes renders all attributes for an element in insertion order.
func (s *state) renderAttributes(node *vdom.Node) error {
	for _, a := range node.Attrs {
		key := vdom.WireName(a.Key)
		if key == "" {
			continue
		}

		switch v := a.Value.(type) {
		case nil:
			continue
		case bool:
			// Boolean attributes: present when true, omitted when false.
			if v {
				s.buf.WriteByte(' ')
				s.buf.WriteString(key)
			}
			continue
		case vdom.ClassList:
			if len(v) == 0 {
				continue
			}
		}

		value, ok := attrToString(a.Value)
		if !ok {
			return &RenderError{
				Tag:  node.Tag,
				Attr: key,
				Err:  fmt.Errorf("%w: %T", ErrUnsupportedAttr, a.Value),
			}
		}
		s.buf.WriteByte(' ')
		s.buf.WriteString(key)
		s.buf.WriteString(`="`)
		s.buf.WriteString(escapeAttr(value))
		s.buf.WriteByte('"')
	}
	return nil
}

// attrToString converts an attribute value to its textual form.
func attrToString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case vdom.ClassList:
		return strings.Join(v, " "), true
	case []string:
		return strings.Join(v, " "), true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
