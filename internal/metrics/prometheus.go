package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder on top of a Prometheus registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	upstreamRequests   *prometheus.CounterVec
	upstreamDuration   *prometheus.HistogramVec
	breakerTransitions *prometheus.CounterVec
	tokenCacheHits     prometheus.Counter
	tokenRefreshes     *prometheus.CounterVec
	stockSymbols       *prometheus.CounterVec
}

// NewPrometheus registers the gateway collectors on a fresh registry.
// Go runtime and process collectors are included.
func NewPrometheus() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		registry: reg,
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailyhub_upstream_requests_total",
				Help: "Total upstream API calls by upstream and outcome",
			},
			[]string{"upstream", "outcome"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dailyhub_upstream_request_duration_seconds",
				Help:    "Upstream API call latency",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"upstream"},
		),
		breakerTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailyhub_circuit_breaker_transitions_total",
				Help: "Circuit breaker state transitions",
			},
			[]string{"upstream", "from", "to"},
		),
		tokenCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dailyhub_credential_cache_hits_total",
				Help: "Bearer credential lookups served from cache",
			},
		),
		tokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailyhub_credential_refreshes_total",
				Help: "Bearer credential exchanges by outcome",
			},
			[]string{"outcome"},
		),
		stockSymbols: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dailyhub_stock_symbols_total",
				Help: "Stock symbols processed by the top stocks fan-out",
			},
			[]string{"status"},
		),
	}
}

// Handler returns the exposition handler for this recorder's registry.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// ObserveUpstreamRequest records an upstream call.
func (p *PrometheusRecorder) ObserveUpstreamRequest(upstream, outcome string, duration time.Duration) {
	p.upstreamRequests.WithLabelValues(upstream, outcome).Inc()
	p.upstreamDuration.WithLabelValues(upstream).Observe(duration.Seconds())
}

// IncBreakerTransition records a breaker state change.
func (p *PrometheusRecorder) IncBreakerTransition(upstream, from, to string) {
	p.breakerTransitions.WithLabelValues(upstream, from, to).Inc()
}

// IncTokenCacheHit records a credential cache hit.
func (p *PrometheusRecorder) IncTokenCacheHit() {
	p.tokenCacheHits.Inc()
}

// IncTokenRefresh records a credential exchange.
func (p *PrometheusRecorder) IncTokenRefresh(outcome string) {
	p.tokenRefreshes.WithLabelValues(outcome).Inc()
}

// ObserveStockFanout records quoted and skipped symbol counts.
func (p *PrometheusRecorder) ObserveStockFanout(quoted, skipped int) {
	p.stockSymbols.WithLabelValues("quoted").Add(float64(quoted))
	p.stockSymbols.WithLabelValues("skipped").Add(float64(skipped))
}
