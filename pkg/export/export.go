package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Errors returned by Export.
var (
	ErrNoPaths     = errors.New("export: no paths to export")
	ErrInvalidPath = errors.New("export: invalid path")
)

// PageError reports a page that did not render with status 200.
type PageError struct {
	Path   string
	Status int
}

func (e *PageError) Error() string {
	return fmt.Sprintf("export: %s returned status %d", e.Path, e.Status)
}

// Publisher stores one rendered page under key.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte, contentType string) error
}

// Page is one rendered page ready to publish.
type Page struct {
	Path        string
	Key         string
	Body        []byte
	ContentType string
}

// Result summarises a finished export.
type Result struct {
	Pages    []Page
	Bytes    int
	Duration time.Duration
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the exporter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithHost sets the Host header of export requests.
func WithHost(host string) Option {
	return func(e *Exporter) {
		e.host = host
	}
}

// Exporter renders pages through an http.Handler and publishes the results.
type Exporter struct {
	handler http.Handler
	logger  *slog.Logger
	host    string
}

// New creates an Exporter that renders pages with h.
func New(h http.Handler, opts ...Option) *Exporter {
	e := &Exporter{
		handler: h,
		logger:  slog.Default(),
		host:    "localhost",
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "export")
	return e
}

// Render renders every path and returns the pages in order. It stops at the
// first page that fails, so callers never see a partial export.
func (e *Exporter) Render(ctx context.Context, paths []string) ([]Page, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	pages := make([]Page, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key, err := Key(p)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[key]; ok {
			if prev == p {
				continue
			}
			return nil, fmt.Errorf("%w: %q and %q both map to %s", ErrInvalidPath, prev, p, key)
		}
		seen[key] = p

		page, err := e.renderOne(ctx, p, key)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (e *Exporter) renderOne(ctx context.Context, p, key string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+e.host+p, nil)
	if err != nil {
		return Page{}, fmt.Errorf("%w: %q: %v", ErrInvalidPath, p, err)
	}

	rec := newResponseBuffer()
	e.handler.ServeHTTP(rec, req)

	if rec.status != http.StatusOK {
		return Page{}, &PageError{Path: p, Status: rec.status}
	}
	contentType := rec.header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(rec.body.Bytes())
	}
	return Page{Path: p, Key: key, Body: rec.body.Bytes(), ContentType: contentType}, nil
}

// Export renders every path, then publishes all pages with pub. Nothing is
// published when any page fails to render.
func (e *Exporter) Export(ctx context.Context, paths []string, pub Publisher) (*Result, error) {
	start := time.Now()

	pages, err := e.Render(ctx, paths)
	if err != nil {
		return nil, err
	}

	result := &Result{Pages: pages}
	for _, page := range pages {
		if err := pub.Publish(ctx, page.Key, page.Body, page.ContentType); err != nil {
			return nil, fmt.Errorf("export: publish %s: %w", page.Key, err)
		}
		result.Bytes += len(page.Body)
		e.logger.Debug("published", "path", page.Path, "key", page.Key, "bytes", len(page.Body))
	}
	result.Duration = time.Since(start)

	e.logger.Info("export complete", "pages", len(pages), "bytes", result.Bytes, "duration", result.Duration)
	return result, nil
}

// Key maps a URL path to its object key: "/" is "index.html" and
// "/category/1" is "category/1/index.html". Paths with a file extension in
// the last segment keep their name.
func Key(p string) (string, error) {
	u, err := url.Parse(p)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q has a query or fragment", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg == ".." || seg == "." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}

	clean := strings.Trim(path.Clean(u.Path), "/")
	if clean == "" {
		return "index.html", nil
	}
	if path.Ext(clean) != "" {
		return clean, nil
	}
	return clean + "/index.html", nil
}

// responseBuffer captures a handler response in memory.
type responseBuffer struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: make(http.Header), status: http.StatusOK}
}

func (b *responseBuffer) Header() http.Header { return b.header }

func (b *responseBuffer) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.status = code
	b.wroteHeader = true
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	b.wroteHeader = true
	return b.body.Write(p)
}
