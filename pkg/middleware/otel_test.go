package middleware

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/navshell/pkg/router"
)

func TestOpenTelemetryPassesSpanContext(t *testing.T) {
	r := testRouter(t)

	type key struct{}
	parent := context.WithValue(context.Background(), key{}, "v")

	r.Use(
		OpenTelemetry(WithTracerProvider(noop.NewTracerProvider())),
		router.MiddlewareFunc(func(ctx context.Context, req *router.Request, next func(ctx context.Context) error) error {
			if ctx.Value(key{}) != "v" {
				t.Error("span context should derive from the caller's context")
			}
			if trace.SpanFromContext(ctx) == nil {
				t.Error("expected a span in the context")
			}
			return next(ctx)
		}),
	)

	req, err := r.Serve(parent, "/about", "http")
	if err != nil {
		t.Fatalf("Serve() error = %v", err)
	}
	if req.Node == nil {
		t.Error("expected a composed node")
	}
}

func TestOpenTelemetryPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	mw := OpenTelemetry(WithTracerName("test"))

	err := mw.Handle(context.Background(), &router.Request{Resolution: testRouter(t).Resolve("/x")}, func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected error %v, got %v", boom, err)
	}
}

func TestOpenTelemetryFilterSkipsTracing(t *testing.T) {
	nextCalled := false
	mw := OpenTelemetry(WithFilter(func(req *router.Request) bool { return req.Source != "cli" }))

	ctx := context.Background()
	err := mw.Handle(ctx, &router.Request{Source: "cli"}, func(got context.Context) error {
		nextCalled = true
		if got != ctx {
			t.Error("filtered render should receive the original context")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called")
	}
}
