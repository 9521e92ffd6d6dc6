package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/navshell/pkg/router"
)

// Default tracer name for navshell.
const defaultTracerName = "navshell"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "navshell").
	TracerName string

	// Provider supplies the tracer. Defaults to the global provider.
	Provider trace.TracerProvider

	// Filter determines which renders to trace.
	// If nil, all renders are traced.
	Filter func(req *router.Request) bool
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(provider trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.Provider = provider
	}
}

// WithFilter sets a filter function for renders.
func WithFilter(filter func(req *router.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// OpenTelemetry creates middleware that wraps every render in a span.
//
// The span carries the requested path, the canonical path, the selected
// route, the caller, and whether a route matched. The span context is
// passed to the rest of the chain.
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// given. Without a configured provider the spans are no-ops.
func OpenTelemetry(opts ...OTelOption) router.Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	provider := config.Provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	tracer := provider.Tracer(config.TracerName)

	return router.MiddlewareFunc(func(ctx context.Context, req *router.Request, next func(ctx context.Context) error) error {
		if config.Filter != nil && !config.Filter(req) {
			return next(ctx)
		}

		res := req.Resolution
		spanCtx, span := tracer.Start(ctx, "navshell.render",
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("navshell.path", req.Path),
				attribute.String("navshell.canonical_path", res.Path),
				attribute.String("navshell.route", res.Route()),
				attribute.String("navshell.source", req.Source),
				attribute.Bool("navshell.matched", res.Matched()),
			),
		)
		defer span.End()

		err := next(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return err
	})
}
