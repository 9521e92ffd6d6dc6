// Package middleware provides observability for navshell renders and
// HTTP requests.
//
// # Prometheus Metrics
//
// NewMetrics registers render and live-session collectors and returns
// router middleware plus hooks for the live endpoint:
//
//	m := middleware.NewMetrics()
//	r.Use(m.Middleware())
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
// OpenTelemetry wraps each render in a span using the global tracer
// provider:
//
//	r.Use(middleware.OpenTelemetry())
//
// # Request Logging
//
// Logger is plain net/http middleware that logs one line per request
// through log/slog:
//
//	mux.Use(middleware.Logger(slog.Default()))
package middleware
