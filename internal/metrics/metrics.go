// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Upstream call outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeRejected = "rejected" // circuit breaker open
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Upstream call metrics
	ObserveUpstreamRequest(upstream, outcome string, duration time.Duration)
	IncBreakerTransition(upstream, from, to string)

	// Credential cache metrics
	IncTokenCacheHit()
	IncTokenRefresh(outcome string) // outcome: "success" or "error"

	// Stock fan-out metrics
	ObserveStockFanout(quoted, skipped int)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
