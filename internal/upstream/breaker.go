package upstream

import (
	"context"
	"errors"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/dailyhub/dailyhub/internal/metrics"
)

// newBreaker configures the circuit breaker guarding one upstream:
// up to 3 probe requests while half-open, counts reset every minute,
// 30s open before probing, trips at >= 60% failures over >= 10 requests.
func newBreaker(name string, recorder metrics.Recorder, logger *slog.Logger) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state transition",
				slog.String("upstream", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			recorder.IncBreakerTransition(name, from.String(), to.String())
		},
	})
}

// isBreakerSuccess counts client-side failures (4xx) and caller
// cancellations as successes: the upstream itself is healthy.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode < 500 && se.StatusCode != 429
	}
	return false
}
