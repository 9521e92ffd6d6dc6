package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/vango-dev/navshell/internal/app"
	"github.com/vango-dev/navshell/internal/assets"
	"github.com/vango-dev/navshell/internal/config"
	"github.com/vango-dev/navshell/pkg/middleware"
	"github.com/vango-dev/navshell/pkg/router"
)

// newLogger builds the process logger from the log settings.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// newStore picks the bucket when one is configured, else the embedded
// assets.
func newStore(ctx context.Context, cfg *config.Config) (assets.Store, error) {
	if cfg.RemoteAssets() {
		return assets.NewS3Store(ctx, assets.S3Config{
			Bucket:   cfg.Assets.Bucket,
			Prefix:   cfg.Assets.Prefix,
			Region:   cfg.Assets.Region,
			Endpoint: cfg.Assets.Endpoint,
		})
	}
	return assets.NewEmbedStore(), nil
}

// newRouter builds the app router with tracing and, when m is non-nil,
// render metrics.
func newRouter(m *middleware.Metrics) (*router.Router, error) {
	r, err := app.NewRouter()
	if err != nil {
		return nil, err
	}
	r.Use(router.Chain(middleware.OpenTelemetry(), m.Middleware()))
	return r, nil
}
