package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/weblib-dev/weblib/internal/config"
	"github.com/weblib-dev/weblib/internal/errors"
	"github.com/weblib-dev/weblib/internal/shop"
	"github.com/weblib-dev/weblib/pkg/css"
	"github.com/weblib-dev/weblib/pkg/middleware"
	"github.com/weblib-dev/weblib/pkg/server"
)

// app is the demo shop mounted on a server.
type app struct {
	shop   *shop.Shop
	server *server.Server
}

// newApp builds the demo shop for cfg. withMetrics registers the Prometheus
// collectors on a private registry exposed at cfg.Metrics.Path.
func (c *cli) newApp(cfg *config.Config, withMetrics bool) (*app, error) {
	fw, err := css.Lookup(cfg.Framework)
	if err != nil {
		return nil, errors.New("W403").WithSubject(cfg.Framework)
	}

	sc := server.Config{
		Address: cfg.Addr,
		Logger:  c.logger,
		Tracing: cfg.Tracing.Enabled,
	}
	if withMetrics && cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		sc.Metrics = middleware.NewMetrics(middleware.WithRegistry(reg))
		sc.Gatherer = reg
		sc.MetricsPath = cfg.Metrics.Path
	}

	srv, err := server.New(sc)
	if err != nil {
		return nil, errors.New("W202").Wrap(err)
	}

	s := shop.New(shop.DemoCatalog(), shop.WithFramework(fw), shop.WithLang(cfg.Lang))
	s.Register(srv)
	return &app{shop: s, server: srv}, nil
}
