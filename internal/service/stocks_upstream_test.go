package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dailyhub/dailyhub/internal/metrics"
	"github.com/dailyhub/dailyhub/internal/upstream"
)

// newRateLimitedFinnhub serves n symbols and answers every quote with 429.
func newRateLimitedFinnhub(t *testing.T, n int) (*upstream.Finnhub, *atomic.Int32) {
	t.Helper()

	var quoteCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stock/symbol":
			parts := make([]string, 0, n)
			for i := range n {
				parts = append(parts, fmt.Sprintf(`{"symbol":"S%02d"}`, i))
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, "["+strings.Join(parts, ",")+"]")
		case "/quote":
			quoteCalls.Add(1)
			http.Error(w, `{"error":"API limit reached"}`, http.StatusTooManyRequests)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := upstream.NewClient("finnhub", srv.Client(), nil, logger)
	return upstream.NewFinnhub(client, srv.URL, "key"), &quoteCalls
}

func TestTopStocks_RateLimitedQuotesAreSkipped(t *testing.T) {
	t.Parallel()

	finnhub, quoteCalls := newRateLimitedFinnhub(t, 30)
	rec := metrics.NewInMemory()
	g := NewGateway(Upstreams{Stocks: finnhub}, Settings{StockConcurrency: 1}, rec)

	movers, err := g.TopStocks(context.Background())
	if err != nil {
		t.Fatalf("TopStocks: %v", err)
	}
	if len(movers.Gainers) != 0 || len(movers.Losers) != 0 {
		t.Errorf("expected empty movers, got %+v", movers)
	}

	// The breaker opens part way through and rejects the remaining quotes.
	if calls := quoteCalls.Load(); calls >= 30 {
		t.Errorf("expected the breaker to short-circuit some quotes, upstream saw %d", calls)
	}

	snap := rec.Snapshot()
	if snap.StockQuoted != 0 || snap.StockSkipped != 30 {
		t.Errorf("fan-out metrics = %d quoted / %d skipped, want 0 / 30", snap.StockQuoted, snap.StockSkipped)
	}
}

func TestTopStocks_ConcurrentRateLimitedQuotesAreSkipped(t *testing.T) {
	t.Parallel()

	finnhub, _ := newRateLimitedFinnhub(t, 50)
	g := NewGateway(Upstreams{Stocks: finnhub}, Settings{StockConcurrency: 8}, nil)

	movers, err := g.TopStocks(context.Background())
	if err != nil {
		t.Fatalf("TopStocks: %v", err)
	}
	if len(movers.Gainers) != 0 || len(movers.Losers) != 0 {
		t.Errorf("expected empty movers, got %+v", movers)
	}
}

func TestTopStocks_RejectedSymbolListAborts(t *testing.T) {
	t.Parallel()

	finnhub, _ := newRateLimitedFinnhub(t, 30)
	g := NewGateway(Upstreams{Stocks: finnhub}, Settings{StockConcurrency: 1}, nil)

	// Trip the shared breaker.
	if _, err := g.TopStocks(context.Background()); err != nil {
		t.Fatalf("first TopStocks: %v", err)
	}

	_, err := g.TopStocks(context.Background())
	assertKind(t, err, KindUpstream)
}
