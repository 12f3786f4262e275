package component

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

var (
	// ErrUnknownComponent is returned by Build for an unregistered name.
	ErrUnknownComponent = errors.New("component: unknown component")

	// ErrDuplicateComponent is returned by Register when the name is taken.
	ErrDuplicateComponent = errors.New("component: duplicate component")
)

// Factory builds a component from props and children.
type Factory func(props Props, children ...any) (vdom.Component, error)

// Registry maps component names to factories. It is owned by the application
// and safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Builtins creates a registry holding the built-in components, styled with fw.
// A nil framework selects Bootstrap.
func Builtins(fw css.Framework) *Registry {
	fw = css.OrDefault(fw)
	r := NewRegistry()
	r.mustRegister("alert", func(p Props, children ...any) (vdom.Component, error) {
		c := &Alert{Type: "info", Framework: fw}
		if err := Decode(p, c); err != nil {
			return nil, err
		}
		for _, ch := range children {
			c.AddChild(ch)
		}
		return c, nil
	})
	r.mustRegister("badge", func(p Props, children ...any) (vdom.Component, error) {
		c := &Badge{Variant: "primary", Framework: fw}
		if err := Decode(p, c); err != nil {
			return nil, err
		}
		for _, ch := range children {
			c.AddChild(ch)
		}
		return c, nil
	})
	r.mustRegister("breadcrumb", func(p Props, _ ...any) (vdom.Component, error) {
		c := &Breadcrumb{Framework: fw}
		if err := Decode(p, c); err != nil {
			return nil, err
		}
		return c, nil
	})
	r.mustRegister("card", func(p Props, children ...any) (vdom.Component, error) {
		c := &Card{Framework: fw}
		if err := Decode(p, c); err != nil {
			return nil, err
		}
		for _, ch := range children {
			c.AddChild(ch)
		}
		return c, nil
	})
	r.mustRegister("modal", func(p Props, children ...any) (vdom.Component, error) {
		c := &Modal{ID: "modal", Title: "Modal", Framework: fw}
		if err := Decode(p, c); err != nil {
			return nil, err
		}
		for _, ch := range children {
			c.AddChild(ch)
		}
		return c, nil
	})
	r.mustRegister("navbar", func(p Props, children ...any) (vdom.Component, error) {
		c := &NavBar{BrandURL: "/", Theme: "light", Expand: "lg", Framework: fw}
		if err := Decode(p, c); err != nil {
			return nil, err
		}
		for _, ch := range children {
			c.AddChild(ch)
		}
		return c, nil
	})
	r.mustRegister("pagination", func(p Props, _ ...any) (vdom.Component, error) {
		c := NewPagination(1, 1)
		c.Framework = fw
		if err := Decode(p, c); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	})
	return r
}

func (r *Registry) mustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Register adds a factory under name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return fmt.Errorf("component: register %q: name and factory are required", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateComponent, name)
	}
	r.factories[name] = f
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the component registered under name.
func (r *Registry) Build(name string, props Props, children ...any) (vdom.Component, error) {
	f, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, name)
	}
	return f(props, children...)
}
