package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// ObserveUpstreamRequest is a no-op.
func (n *NoopRecorder) ObserveUpstreamRequest(upstream, outcome string, duration time.Duration) {}

// IncBreakerTransition is a no-op.
func (n *NoopRecorder) IncBreakerTransition(upstream, from, to string) {}

// IncTokenCacheHit is a no-op.
func (n *NoopRecorder) IncTokenCacheHit() {}

// IncTokenRefresh is a no-op.
func (n *NoopRecorder) IncTokenRefresh(outcome string) {}

// ObserveStockFanout is a no-op.
func (n *NoopRecorder) ObserveStockFanout(quoted, skipped int) {}
