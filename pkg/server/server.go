package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weblib-dev/weblib/pkg/middleware"
	"github.com/weblib-dev/weblib/pkg/render"
	"github.com/weblib-dev/weblib/pkg/vdom"
)

// ContentTypeHTML is the Content-Type of every page response.
const ContentTypeHTML = "text/html; charset=utf-8"

// PageFunc builds the page for a request. Returning a *StatusError selects
// the response status; any other error yields a 500 fallback page.
type PageFunc func(r *http.Request) (*render.Page, error)

// Option configures a Server.
type Option func(*Server)

// WithMiddleware adds middleware after the built-in chain.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Server) {
		s.extra = append(s.extra, mw...)
	}
}

// WithTracingOptions enables tracing with the given options.
func WithTracingOptions(opts ...middleware.OTelOption) Option {
	return func(s *Server) {
		s.config.Tracing = true
		s.tracing = append(s.tracing, opts...)
	}
}

// Server serves rendered pages over HTTP.
//
// Every response is fully rendered before the first byte is written, so a
// failing page never produces a partial document.
type Server struct {
	config     Config
	router     chi.Router
	renderer   *render.Renderer
	logger     *slog.Logger
	metrics    *middleware.Metrics
	extra      []func(http.Handler) http.Handler
	tracing    []middleware.OTelOption
	httpServer *http.Server
}

// New creates a Server. Built-in middleware runs in this order: request id,
// panic recovery, security headers, request logging, metrics, tracing, then
// any WithMiddleware additions.
func New(config Config, opts ...Option) (*Server, error) {
	s := &Server{config: config.withDefaults()}
	for _, opt := range opts {
		opt(s)
	}
	s.renderer = s.config.Renderer
	s.logger = s.config.Logger.With("component", "server")
	s.metrics = s.config.Metrics

	security, err := middleware.SecurityHeaders(s.config.SecurityPreset)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.Recoverer, security, middleware.Logging(s.config.Logger))
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}
	if s.config.Tracing {
		r.Use(middleware.Tracing(s.tracing...))
	}
	r.Use(s.extra...)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
	})
	if s.config.Gatherer != nil {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, NotFound(nil))
	})

	s.router = r
	return s, nil
}

// Page registers a GET route that renders the page built by fn.
func (s *Server) Page(pattern string, fn PageFunc) {
	s.router.Get(pattern, s.pageHandler(pattern, fn))
}

// Handle registers a handler for method and pattern, e.g. a JSON endpoint.
func (s *Server) Handle(method, pattern string, h http.Handler) {
	s.router.Method(method, pattern, h)
}

// Router returns the underlying chi router.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Config returns the effective configuration.
func (s *Server) Config() Config {
	return s.config
}

func (s *Server) pageHandler(route string, fn PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := middleware.StartRenderSpan(r.Context(), route)
		start := time.Now()

		body, err := s.buildPage(r.WithContext(ctx), fn)

		s.metrics.ObserveRender(route, time.Since(start), err)
		middleware.EndSpan(span, err)

		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeHTML(w, http.StatusOK, body)
	}
}

func (s *Server) buildPage(r *http.Request, fn PageFunc) (string, error) {
	page, err := fn(r)
	if err != nil {
		return "", err
	}
	if page == nil {
		return "", ErrNilPage
	}
	return s.renderer.RenderPageToString(page)
}

// writeError sends the error page for err. StatusError pages are rendered
// when possible; every other error gets the 500 fallback.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	var page *render.Page

	var se *StatusError
	if errors.As(err, &se) {
		code = se.Code
		page = se.Page
	}

	id := middleware.RequestIDFromContext(r.Context())
	if code >= http.StatusInternalServerError {
		s.logger.Error("page failed", "path", r.URL.Path, "request_id", id, "error", err)
	}

	if page != nil {
		body, renderErr := s.renderer.RenderPageToString(page)
		if renderErr == nil {
			s.writeHTML(w, code, body)
			return
		}
		s.logger.Error("error page failed", "path", r.URL.Path, "request_id", id, "error", renderErr)
	}
	s.writeHTML(w, code, s.fallbackPage(code, id))
}

// fallbackPage renders a minimal page for status code.
func (s *Server) fallbackPage(code int, requestID string) string {
	title := fmt.Sprintf("%d %s", code, http.StatusText(code))
	page := render.NewPage(title).
		Style("body{font-family:system-ui,sans-serif;margin:3rem}").
		Body(
			vdom.H1(title),
			vdom.If(requestID != "", vdom.P(vdom.Small("Request ID: ", vdom.Code(requestID)))),
		)
	body, err := s.renderer.RenderPageToString(page)
	if err != nil {
		return "<!DOCTYPE html><title>" + http.StatusText(code) + "</title>"
	}
	return body
}

func (s *Server) writeHTML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(code)
	io.WriteString(w, body)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.config.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
