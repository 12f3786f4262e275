package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// =============================================================================
// Test Helpers
// =============================================================================

// recordingProvider captures started spans.
type recordingProvider struct {
	noop.TracerProvider
	mu    sync.Mutex
	spans []*recordedSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{provider: p}
}

type recordingTracer struct {
	noop.Tracer
	provider *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordedSpan{name: name, kind: cfg.SpanKind(), attrs: cfg.Attributes()}
	t.provider.mu.Lock()
	t.provider.spans = append(t.provider.spans, s)
	t.provider.mu.Unlock()
	return trace.ContextWithSpan(ctx, s), s
}

type recordedSpan struct {
	noop.Span
	name  string
	kind  trace.SpanKind
	attrs []attribute.KeyValue
	code  codes.Code
	ended bool
}

func (s *recordedSpan) IsRecording() bool                      { return true }
func (s *recordedSpan) SetName(name string)                    { s.name = name }
func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) { s.attrs = append(s.attrs, kv...) }
func (s *recordedSpan) SetStatus(code codes.Code, _ string)    { s.code = code }
func (s *recordedSpan) End(...trace.SpanEndOption)             { s.ended = true }

func (s *recordedSpan) attr(key string) (attribute.Value, bool) {
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

// =============================================================================
// Request ID Tests
// =============================================================================

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("request id %q is not a uuid: %v", seen, err)
		}
		if rec.Header().Get(RequestIDHeader) != seen {
			t.Errorf("response header = %q, want %q", rec.Header().Get(RequestIDHeader), seen)
		}
	})

	t.Run("incoming reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		h.ServeHTTP(httptest.NewRecorder(), req)
		if seen != "abc-123" {
			t.Errorf("request id = %q, want abc-123", seen)
		}
	})

	t.Run("malformed incoming replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "bad id\x01")
		h.ServeHTTP(httptest.NewRecorder(), req)
		if seen == "bad id\x01" || seen == "" {
			t.Errorf("request id = %q, want a fresh id", seen)
		}
	})

	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context id = %q", got)
	}
}

// =============================================================================
// Security Header Tests
// =============================================================================

func TestSecurityHeaders(t *testing.T) {
	tests := []struct {
		preset SecurityPreset
		header string
		want   string
	}{
		{"", "X-Content-Type-Options", "nosniff"},
		{PresetBasic, "X-Frame-Options", "SAMEORIGIN"},
		{PresetStrict, "X-Frame-Options", "DENY"},
		{PresetStrict, "Strict-Transport-Security", "max-age=63072000; includeSubDomains"},
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	for _, tt := range tests {
		t.Run(string(tt.preset)+"/"+tt.header, func(t *testing.T) {
			mw, err := SecurityHeaders(tt.preset)
			if err != nil {
				t.Fatalf("SecurityHeaders: %v", err)
			}
			rec := httptest.NewRecorder()
			mw(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if got := rec.Header().Get(tt.header); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
		})
	}

	if _, err := SecurityHeaders("paranoid"); err == nil {
		t.Error("unknown preset accepted")
	}
}

// =============================================================================
// Logging Tests
// =============================================================================

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := RequestID(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	line := buf.String()
	for _, want := range []string{"level=WARN", "msg=request", "method=GET", "path=/nope", "status=404", "request_id="} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

// =============================================================================
// OpenTelemetry Tests
// =============================================================================

func TestOpenTelemetryConfig(t *testing.T) {
	config := defaultOTelConfig()
	if config.TracerName != "weblib" {
		t.Errorf("TracerName = %q, want weblib", config.TracerName)
	}
	if !config.IncludeRoute {
		t.Error("IncludeRoute should default to true")
	}
}

func TestTracing(t *testing.T) {
	tp := &recordingProvider{}

	r := chi.NewRouter()
	r.Use(RequestID, Tracing(
		WithTracerProvider(tp),
		WithTracerName("shop"),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/healthz" }),
	))
	r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !SpanFromRequest(r).IsRecording() {
			t.Error("span not in request context")
		}
	})
	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/products/7", "/fail", "/healthz"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if len(tp.spans) != 2 {
		t.Fatalf("recorded %d spans, want 2 (healthz filtered)", len(tp.spans))
	}

	ok, failed := tp.spans[0], tp.spans[1]
	if ok.name != "GET /products/{id}" {
		t.Errorf("span name = %q, want route pattern", ok.name)
	}
	if ok.kind != trace.SpanKindServer || !ok.ended || ok.code != codes.Ok {
		t.Errorf("span = %+v, want ended server span with Ok status", ok)
	}
	if v, _ := ok.attr("test.attr"); v.AsString() != "ok" {
		t.Errorf("custom attribute = %q", v.AsString())
	}
	if v, _ := ok.attr("weblib.request_id"); v.AsString() == "" {
		t.Error("request id attribute missing")
	}
	if v, _ := failed.attr("http.status_code"); v.AsInt64() != http.StatusBadGateway {
		t.Errorf("status attribute = %d", v.AsInt64())
	}
	if failed.code != codes.Error {
		t.Errorf("5xx span code = %v, want Error", failed.code)
	}
}

func TestStartRenderSpan(t *testing.T) {
	ctx, span := StartRenderSpan(context.Background(), "/")
	if span == nil || ctx == context.Background() {
		t.Fatal("render span not stored in context")
	}
	EndSpan(span, errors.New("render failed"))
}
