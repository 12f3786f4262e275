package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/weblib-dev/weblib/pkg/component"
	"github.com/weblib-dev/weblib/pkg/render"
)

func newMetricsRouter(t *testing.T) (*Metrics, http.Handler) {
	t.Helper()
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "product %s", chi.URLParam(r, "id"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return m, r
}

func TestMetricsHandler_LabelsByRoutePattern(t *testing.T) {
	m, h := newMetricsRouter(t)

	for _, path := range []string{"/products/1", "/products/2", "/boom", "/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	tests := []struct {
		route, status string
		want          float64
	}{
		{"/products/{id}", "200", 2},
		{"/boom", "500", 1},
		{"unmatched", "404", 1},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(tt.route, http.MethodGet, tt.status))
		if got != tt.want {
			t.Errorf("requests_total(%s,%s) = %v, want %v", tt.route, tt.status, got, tt.want)
		}
	}
	if got := testutil.CollectAndCount(m.requestDuration); got != 3 {
		t.Errorf("request_duration series = %d, want 3", got)
	}
	if got := testutil.ToFloat64(m.requestsInFlight); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
}

func TestMetricsObserveRender(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("shop"))

	m.ObserveRender("/", time.Millisecond, nil)
	m.ObserveRender("/", time.Millisecond, &render.RenderError{Tag: "div", Err: render.ErrUnsupportedAttr})

	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("/", "success")); got != 1 {
		t.Errorf("renders_total(success) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("/", "error")); got != 1 {
		t.Errorf("renders_total(error) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("/", "render")); got != 1 {
		t.Errorf("render_errors_total(render) = %v, want 1", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ObserveRender("/", time.Second, nil) // must not panic
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{context.Canceled, "canceled"},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), "canceled"},
		{&render.RenderError{Err: render.ErrMaxDepth}, "render"},
		{&render.ComponentContractError{Component: "x", Err: render.ErrNilRender}, "component"},
		{&render.ComponentContractError{Err: &component.PropError{Prop: "p"}}, "props"},
		{fmt.Errorf("%w: card", component.ErrUnknownComponent), "unknown_component"},
		{errors.New("db down"), "internal"},
	}
	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Errorf("categorizeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
