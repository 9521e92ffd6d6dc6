package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/navshell/pkg/router"
	"github.com/vango-dev/navshell/pkg/vdom"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func testRouter(t *testing.T) *router.Router {
	t.Helper()
	page := func(ctx router.Ctx) *vdom.VNode { return vdom.H1(ctx.Path) }
	return router.MustNew(router.RouteNode{
		Path:    "/",
		Content: func(ctx router.Ctx) *vdom.VNode { return vdom.Div(ctx.Outlet) },
		Children: []router.RouteNode{
			{Path: "about", Content: page},
		},
	})
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	r := testRouter(t)
	r.Use(m.Middleware())

	for _, path := range []string{"/about", "/about/", "/nowhere", "/"} {
		if _, err := r.Serve(context.Background(), path, "http"); err != nil {
			t.Fatalf("Serve(%q) error = %v", path, err)
		}
	}

	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/about", "http", "true")); got != 2 {
		t.Errorf("renders_total(/about)=%v, want 2", got)
	}
	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/", "http", "true")); got != 1 {
		t.Errorf("renders_total(/)=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues(unmatchedRoute, "http", "false")); got != 1 {
		t.Errorf("renders_total(unmatched)=%v, want 1", got)
	}
	if got := metricHistogramCount(t, m.renderDuration.WithLabelValues("http")); got != 4 {
		t.Errorf("render_duration count=%v, want 4", got)
	}
}

func TestMetricsMiddlewareError(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	r := testRouter(t)
	boom := errors.New("boom")
	r.Use(m.Middleware(), router.MiddlewareFunc(func(ctx context.Context, req *router.Request, next func(ctx context.Context) error) error {
		return boom
	}))

	if _, err := r.Serve(context.Background(), "/about", "live"); !errors.Is(err, boom) {
		t.Fatalf("Serve() error = %v, want boom", err)
	}
	if got := metricCounterValue(t, m.renderErrors.WithLabelValues("live")); got != 1 {
		t.Errorf("render_errors_total=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("/about", "live", "true")); got != 0 {
		t.Errorf("renders_total=%v, want 0 on error", got)
	}
}

func TestMetricsLiveHooks(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.FrameReceived("navigate")
	m.FrameSent("render")
	m.FrameSent("render")

	if got := metricGaugeValue(t, m.liveSessions); got != 1 {
		t.Errorf("live_sessions=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.liveFrames.WithLabelValues("in", "navigate")); got != 1 {
		t.Errorf("live_frames(in,navigate)=%v, want 1", got)
	}
	if got := metricCounterValue(t, m.liveFrames.WithLabelValues("out", "render")); got != 2 {
		t.Errorf("live_frames(out,render)=%v, want 2", got)
	}
}

func TestMetricsNilIsNoop(t *testing.T) {
	var m *Metrics
	m.SessionOpened()
	m.SessionClosed()
	m.FrameReceived("back")
	m.FrameSent("error")

	called := false
	err := m.Middleware().Handle(context.Background(), &router.Request{}, func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Errorf("nil Metrics middleware: err=%v called=%v", err, called)
	}
}

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithConstLabels(prometheus.Labels{"instance": "a"}))
	m.SessionOpened()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "navshell_live_sessions" {
			found = true
		}
	}
	if !found {
		t.Error("navshell_live_sessions not registered")
	}
}
