package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/minidom/internal/config"
	"github.com/vango-dev/minidom/internal/playground"
	"github.com/vango-dev/minidom/pkg/telemetry"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the browser playground",
		Long: `Start an HTTP server hosting the interactive demo application.

Each browser tab gets its own document and engine over a WebSocket. Every
click or keystroke is dispatched on the server and answered with the host
mutations it caused.

Examples:
  minidom serve
  minidom serve --port=8080
  minidom serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := newPlayground(cfg, g)
			w := cmd.OutOrStdout()
			fmt.Fprint(w, banner)
			success(w, "Playground running at http://%s", cfg.Address())
			if cfg.Metrics.Enabled {
				info(w, "Metrics at http://%s%s", cfg.Address(), cfg.Metrics.Path)
			} else {
				warn(w, "Metrics disabled")
			}
			return srv.ListenAndServe(ctx, cfg.Address(), cfg.ReadTimeout())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

// newPlayground wires the playground server to the configured metrics and
// tracing.
func newPlayground(cfg *config.Config, g *globals) *playground.Server {
	opts := playground.Options{
		Title:       cfg.Name,
		Logger:      g.logger,
		MetricsPath: cfg.Metrics.Path,
		Tracer:      telemetry.Tracer(cfg.Tracing.Enabled, cfg.Tracing.TracerName),
	}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts.Collector = telemetry.NewCollector(
			telemetry.WithNamespace(cfg.Metrics.Namespace),
			telemetry.WithRegistry(reg),
		)
		opts.Gatherer = reg
	}
	return playground.New(opts)
}
