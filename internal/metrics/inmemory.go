package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UpstreamRequests     map[string]uint64 // keyed by "upstream/outcome"
	UpstreamDurationNs   int64
	BreakerTransitions   uint64
	TokenCacheHits       uint64
	TokenRefreshes       uint64
	TokenRefreshFailures uint64
	StockQuoted          uint64
	StockSkipped         uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu               sync.Mutex
	upstreamRequests map[string]uint64

	upstreamDurationNs   int64
	breakerTransitions   uint64
	tokenCacheHits       uint64
	tokenRefreshes       uint64
	tokenRefreshFailures uint64
	stockQuoted          uint64
	stockSkipped         uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{upstreamRequests: make(map[string]uint64)}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	requests := make(map[string]uint64, len(m.upstreamRequests))
	for k, v := range m.upstreamRequests {
		requests[k] = v
	}
	m.mu.Unlock()

	return Snapshot{
		UpstreamRequests:     requests,
		UpstreamDurationNs:   atomic.LoadInt64(&m.upstreamDurationNs),
		BreakerTransitions:   atomic.LoadUint64(&m.breakerTransitions),
		TokenCacheHits:       atomic.LoadUint64(&m.tokenCacheHits),
		TokenRefreshes:       atomic.LoadUint64(&m.tokenRefreshes),
		TokenRefreshFailures: atomic.LoadUint64(&m.tokenRefreshFailures),
		StockQuoted:          atomic.LoadUint64(&m.stockQuoted),
		StockSkipped:         atomic.LoadUint64(&m.stockSkipped),
	}
}

// ObserveUpstreamRequest counts an upstream call by upstream and outcome.
func (m *InMemoryRecorder) ObserveUpstreamRequest(upstream, outcome string, duration time.Duration) {
	m.mu.Lock()
	m.upstreamRequests[upstream+"/"+outcome]++
	m.mu.Unlock()
	atomic.AddInt64(&m.upstreamDurationNs, duration.Nanoseconds())
}

// IncBreakerTransition increments the breaker transition counter.
func (m *InMemoryRecorder) IncBreakerTransition(upstream, from, to string) {
	atomic.AddUint64(&m.breakerTransitions, 1)
}

// IncTokenCacheHit increments the credential cache hit counter.
func (m *InMemoryRecorder) IncTokenCacheHit() {
	atomic.AddUint64(&m.tokenCacheHits, 1)
}

// IncTokenRefresh increments the refresh counter for the given outcome.
func (m *InMemoryRecorder) IncTokenRefresh(outcome string) {
	if outcome == OutcomeSuccess {
		atomic.AddUint64(&m.tokenRefreshes, 1)
		return
	}
	atomic.AddUint64(&m.tokenRefreshFailures, 1)
}

// ObserveStockFanout records how many symbols were quoted and skipped.
func (m *InMemoryRecorder) ObserveStockFanout(quoted, skipped int) {
	atomic.AddUint64(&m.stockQuoted, uint64(quoted))
	atomic.AddUint64(&m.stockSkipped, uint64(skipped))
}
