package component

import (
	"strconv"

	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// Pagination renders Previous/Next controls around a window of up to five
// page links centred on the current page.
type Pagination struct {
	CurrentPage int           `mapstructure:"current_page"`
	TotalPages  int           `mapstructure:"total_pages"`
	BaseURL     string        `mapstructure:"base_url"` // Page number is appended. Defaults to "?page="
	Framework   css.Framework `mapstructure:"-"`
}

// NewPagination creates a Pagination with the default base URL.
func NewPagination(current, total int) *Pagination {
	return &Pagination{CurrentPage: current, TotalPages: total, BaseURL: "?page="}
}

// Validate implements vdom.Validator.
func (p *Pagination) Validate() error {
	if p.CurrentPage < 1 {
		return &PropError{Prop: "current_page", Value: p.CurrentPage, Reason: "must be at least 1"}
	}
	if p.TotalPages < 1 {
		return &PropError{Prop: "total_pages", Value: p.TotalPages, Reason: "must be at least 1"}
	}
	return nil
}

// Render implements vdom.Component.
func (p *Pagination) Render() *vdom.Node {
	cc := framework(p.Framework).Classes()
	base := orDefault(p.BaseURL, "?page=")
	current, total := p.CurrentPage, p.TotalPages

	link := func(label string, page int) *vdom.Node {
		return vdom.Li(vdom.Class(classes(cc.PageItem)...), vdom.A(vdom.Href(base+strconv.Itoa(page)), label))
	}
	inert := func(label, state string) *vdom.Node {
		return vdom.Li(vdom.Class(classes(cc.PageItem, state)...), vdom.Span(label))
	}

	var items []*vdom.Node
	if current > 1 {
		items = append(items, link("Previous", current-1))
	} else {
		items = append(items, inert("Previous", cc.Disabled))
	}

	start := max(1, current-2)
	end := min(total+1, current+3)
	for page := start; page < end; page++ {
		if page == current {
			items = append(items, inert(strconv.Itoa(page), cc.Active))
		} else {
			items = append(items, link(strconv.Itoa(page), page))
		}
	}

	if current < total {
		items = append(items, link("Next", current+1))
	} else {
		items = append(items, inert("Next", cc.Disabled))
	}

	return vdom.Nav(vdom.Ul(vdom.Class(classes(cc.Pagination)...), items))
}
