// Package middleware provides net/http middleware for weblib servers.
//
// This package includes:
//   - Request ids (X-Request-ID) propagated through the request context
//   - Security response headers in "basic" and "strict" presets
//   - Structured request logging with log/slog
//   - Prometheus request and render metrics
//   - OpenTelemetry request tracing
//
// Every middleware has the func(http.Handler) http.Handler shape, so it can
// be mounted on a chi router or wrapped around any handler:
//
//	security, err := middleware.SecurityHeaders(middleware.PresetBasic)
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID, security, middleware.Logging(logger))
//
// # Prometheus Metrics
//
// NewMetrics registers collectors on a registry. Its Handler records request
// counts, durations and sizes labelled by route pattern; ObserveRender
// records page render outcomes:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
//
// # OpenTelemetry Tracing
//
// Tracing starts a server span per request and stores it in the request
// context, so handlers and outgoing calls inherit the trace:
//
//	r.Use(middleware.Tracing(middleware.WithTracerName("shop")))
package middleware
