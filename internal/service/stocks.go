package service

import (
	"cmp"
	"context"
	"errors"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/dailyhub/dailyhub/internal/upstream"
)

const (
	stockExchange = "US"
	moversPerSide = 5
)

// StockMove is the daily change of one symbol.
type StockMove struct {
	Symbol        string
	Price         float64
	ChangePercent float64
}

// Movers holds the best and worst performers.
type Movers struct {
	Gainers []StockMove
	Losers  []StockMove
}

// TopStocks quotes the first symbols of the exchange and returns the top
// gainers and losers. Quotes answered with a non-2xx status, rejected by the
// circuit breaker, or with no previous close are skipped; any other failure
// aborts the request. A rejected symbol listing aborts too.
func (g *Gateway) TopStocks(ctx context.Context) (*Movers, error) {
	symbols, err := g.up.Stocks.Symbols(ctx, stockExchange)
	if err != nil {
		return nil, upstreamError("Failed to fetch stock data.", err)
	}
	if len(symbols) > g.settings.StockSymbolLimit {
		symbols = symbols[:g.settings.StockSymbolLimit]
	}

	moves := make([]*StockMove, len(symbols))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.settings.StockConcurrency)
	for i, s := range symbols {
		eg.Go(func() error {
			quote, err := g.up.Stocks.Quote(egCtx, s.Symbol)
			if err != nil {
				if skippableQuoteError(err) {
					return nil
				}
				return err
			}
			if quote.PreviousClose == 0 {
				return nil
			}
			moves[i] = &StockMove{
				Symbol:        s.Symbol,
				Price:         quote.Current,
				ChangePercent: round2((quote.Current - quote.PreviousClose) / quote.PreviousClose * 100),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, upstreamError("Failed to fetch stock data.", err)
	}

	quoted := make([]StockMove, 0, len(moves))
	for _, m := range moves {
		if m != nil {
			quoted = append(quoted, *m)
		}
	}
	g.metrics.ObserveStockFanout(len(quoted), len(symbols)-len(quoted))

	return selectMovers(quoted), nil
}

// skippableQuoteError reports whether a failed quote drops only its symbol.
// Breaker rejections count as non-2xx: the upstream already answered with
// 5xx or 429 often enough to trip it.
func skippableQuoteError(err error) bool {
	return upstream.IsStatus(err) || errors.Is(err, upstream.ErrUnavailable)
}

// selectMovers sorts by change descending (ties by symbol). Gainers are the
// head of that order; losers are its tail, most negative first.
func selectMovers(moves []StockMove) *Movers {
	slices.SortFunc(moves, func(a, b StockMove) int {
		if c := cmp.Compare(b.ChangePercent, a.ChangePercent); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})

	n := min(moversPerSide, len(moves))
	gainers := slices.Clone(moves[:n])
	losers := slices.Clone(moves[len(moves)-n:])
	slices.Reverse(losers)

	return &Movers{Gainers: gainers, Losers: losers}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
