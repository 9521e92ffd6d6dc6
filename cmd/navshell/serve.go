package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/navshell/internal/app"
	"github.com/vango-dev/navshell/internal/assets"
	"github.com/vango-dev/navshell/internal/config"
	"github.com/vango-dev/navshell/internal/nav"
	"github.com/vango-dev/navshell/pkg/middleware"
	"github.com/vango-dev/navshell/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port       int
		host       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server.

Configuration is read from navshell.json in the working directory (or
--config), then .env, then NAVSHELL_* environment variables. Flags
override everything.

Examples:
  navshell serve
  navshell serve --port=3000
  navshell serve --config=deploy/navshell.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(".", configPath, func(c *config.Config) {
				if cmd.Flags().Changed("port") {
					c.Server.Port = port
				}
				if host != "" {
					c.Server.Host = host
				}
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from navshell.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from navshell.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a config file")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(os.Stderr, cfg)
	logger.Info("configuration loaded",
		"address", cfg.Address(),
		"config", cfg.Path(),
		"remote_assets", cfg.RemoteAssets(),
	)

	store, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	cache, err := assets.Load(ctx, store, app.StaticPrefix, assets.Names...)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(middleware.WithRegistry(reg))

	r, err := newRouter(metrics)
	if err != nil {
		return err
	}
	if missing := nav.Check(r); len(missing) > 0 {
		logger.Warn("navigation links select no route", "targets", missing)
	}

	srv := server.New(cfg, r, cache,
		server.WithLogger(logger),
		server.WithMetrics(metrics, reg),
	)
	return srv.Run(ctx)
}
