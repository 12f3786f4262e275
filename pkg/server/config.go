package server

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/weblib-dev/weblib/pkg/middleware"
	"github.com/weblib-dev/weblib/pkg/render"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the address to listen on (e.g., ":8080" or "localhost:3000").
	// Default: ":8080".
	Address string

	// HTTP timeouts

	// ReadHeaderTimeout is the time allowed to read request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// Default: 30 seconds.
	WriteTimeout time.Duration

	// IdleTimeout is the maximum time to wait for the next keep-alive request.
	// Default: 2 minutes.
	IdleTimeout time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 15 seconds.
	ShutdownTimeout time.Duration

	// Rendering

	// Renderer renders pages. Default: a renderer with default configuration.
	Renderer *render.Renderer

	// Security

	// SecurityPreset selects the security response headers.
	// Default: middleware.PresetBasic.
	SecurityPreset middleware.SecurityPreset

	// Observability

	// Logger receives request and error logs. Default: slog.Default().
	Logger *slog.Logger

	// Metrics records request and render metrics when set.
	Metrics *middleware.Metrics

	// Gatherer is exposed at MetricsPath when set.
	Gatherer prometheus.Gatherer

	// MetricsPath is the metrics endpoint. Default: "/metrics".
	MetricsPath string

	// Tracing enables OpenTelemetry request spans using the global provider.
	Tracing bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ShutdownTimeout:   15 * time.Second,
		SecurityPreset:    middleware.PresetBasic,
		MetricsPath:       "/metrics",
	}
}

// withDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Address == "" {
		c.Address = defaults.Address
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = defaults.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = defaults.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.SecurityPreset == "" {
		c.SecurityPreset = defaults.SecurityPreset
	}
	if c.MetricsPath == "" {
		c.MetricsPath = defaults.MetricsPath
	}
	if c.Renderer == nil {
		c.Renderer = render.NewRenderer(render.RendererConfig{})
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
