package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weblib-dev/weblib/internal/config"
	"github.com/weblib-dev/weblib/internal/errors"
	"github.com/weblib-dev/weblib/pkg/css"
)

func (c *cli) serveCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo shop",
		Long: `Serve the demo shop over HTTP.

Pages are rendered per request. /healthz reports liveness and, when
metrics are enabled, Prometheus metrics are exposed at metrics.path.

With --watch, edits to the config file switch the CSS framework
without a restart.

Examples:
  weblib serve
  weblib serve --addr=:3000 --framework=bulma
  weblib serve --config=site.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return c.runServe(ctx, watch)
		},
	}

	cmd.Flags().String("addr", "", "address to listen on (default :8080)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the config file when it changes")

	return cmd
}

func (c *cli) runServe(ctx context.Context, watch bool) error {
	a, err := c.newApp(c.cfg, true)
	if err != nil {
		return err
	}

	if watch && c.v.ConfigFileUsed() == "" {
		c.warn("--watch has no effect without a config file")
	}
	if watch {
		config.Watch(c.v, c.logger, func(cfg *config.Config) {
			fw, err := css.Lookup(cfg.Framework)
			if err != nil {
				return
			}
			a.shop.SetFramework(fw)
			c.logger.Info("framework switched", "framework", fw.Name())
		})
	}

	c.success("Serving the shop on %s", c.cfg.Addr)
	c.info("framework: %s", a.shop.Framework().Name())
	if c.cfg.Metrics.Enabled {
		c.info("metrics:   %s", c.cfg.Metrics.Path)
	}

	if err := a.server.Run(ctx); err != nil {
		return errors.New("W201").WithSubject(c.cfg.Addr).Wrap(err)
	}
	return nil
}
