package upstream

import (
	"context"
	"net/url"
)

// Symbol is a listed instrument.
type Symbol struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// Quote is a real-time quote.
type Quote struct {
	Current       float64 `json:"c"`
	PreviousClose float64 `json:"pc"`
}

// Finnhub lists symbols and fetches quotes.
type Finnhub struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewFinnhub creates a stock quote client.
func NewFinnhub(client *Client, baseURL, apiKey string) *Finnhub {
	return &Finnhub{client: client, baseURL: baseURL, apiKey: apiKey}
}

// Symbols lists the symbols traded on exchange (e.g. "US").
func (f *Finnhub) Symbols(ctx context.Context, exchange string) ([]Symbol, error) {
	params := url.Values{}
	params.Set("exchange", exchange)
	params.Set("token", f.apiKey)

	var symbols []Symbol
	if err := f.client.getJSON(ctx, buildURL(f.baseURL, "/stock/symbol", params), nil, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

// Quote fetches the current quote for symbol.
func (f *Finnhub) Quote(ctx context.Context, symbol string) (*Quote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("token", f.apiKey)

	var quote Quote
	if err := f.client.getJSON(ctx, buildURL(f.baseURL, "/quote", params), nil, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}
