package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/navshell/pkg/router"
)

// unmatchedRoute labels renders that selected no route, keeping the route
// label bounded no matter what paths clients request.
const unmatchedRoute = "unmatched"

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "navshell").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "navshell",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the navshell Prometheus collectors. The zero of *Metrics
// (nil) is valid and records nothing.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	liveSessions   prometheus.Gauge
	liveFrames     *prometheus.CounterVec
}

// NewMetrics registers the navshell collectors.
//
// Metrics collected:
//   - navshell_renders_total: renders by route, source, and matched
//   - navshell_render_duration_seconds: render duration by source
//   - navshell_render_errors_total: failed renders by source
//   - navshell_live_sessions: open live navigation connections
//   - navshell_live_frames_total: live frames by direction and type
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of shell renders",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "source", "matched"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Shell render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"source"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed shell renders",
			ConstLabels: config.ConstLabels,
		}, []string{"source"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_sessions",
			Help:        "Number of open live navigation connections",
			ConstLabels: config.ConstLabels,
		}),

		liveFrames: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_frames_total",
			Help:        "Total live navigation frames by direction and type",
			ConstLabels: config.ConstLabels,
		}, []string{"direction", "type"}),
	}
}

// Middleware returns router middleware that counts and times renders.
func (m *Metrics) Middleware() router.Middleware {
	return router.MiddlewareFunc(func(ctx context.Context, req *router.Request, next func(ctx context.Context) error) error {
		if m == nil {
			return next(ctx)
		}

		start := time.Now()
		err := next(ctx)
		m.renderDuration.WithLabelValues(req.Source).Observe(time.Since(start).Seconds())

		if err != nil {
			m.renderErrors.WithLabelValues(req.Source).Inc()
			return err
		}

		route := req.Resolution.Route()
		if route == "" {
			route = unmatchedRoute
		}
		m.rendersTotal.WithLabelValues(route, req.Source, strconv.FormatBool(req.Resolution.Matched())).Inc()
		return nil
	})
}

// SessionOpened records a new live connection.
func (m *Metrics) SessionOpened() {
	if m != nil {
		m.liveSessions.Inc()
	}
}

// SessionClosed records a closed live connection.
func (m *Metrics) SessionClosed() {
	if m != nil {
		m.liveSessions.Dec()
	}
}

// FrameReceived records a frame read from a live client.
func (m *Metrics) FrameReceived(frameType string) {
	if m != nil {
		m.liveFrames.WithLabelValues("in", frameType).Inc()
	}
}

// FrameSent records a frame written to a live client.
func (m *Metrics) FrameSent(frameType string) {
	if m != nil {
		m.liveFrames.WithLabelValues("out", frameType).Inc()
	}
}
