// Package upstream contains typed clients for the third-party APIs the
// gateway forwards to. All clients share one tuned *http.Client and wrap
// every call in a per-upstream circuit breaker.
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/dailyhub/dailyhub/internal/metrics"
)

const (
	// DialTimeout is the connection timeout.
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the TLS negotiation timeout.
	TLSHandshakeTimeout = 10 * time.Second
	// ResponseHeaderTimeout is time to wait for response headers.
	ResponseHeaderTimeout = 25 * time.Second

	// maxResponseBytes caps how much of an upstream body is read.
	maxResponseBytes = 10 << 20
	// maxErrorBodyBytes caps the upstream body echoed in errors.
	maxErrorBodyBytes = 512

	userAgent = "Dailyhub-Gateway/1.0"
)

// NewHTTPClient creates an HTTP client configured for upstream API calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   TLSHandshakeTimeout,
			ResponseHeaderTimeout: ResponseHeaderTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   16,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// Client performs HTTP calls against a single upstream.
type Client struct {
	name     string
	http     *http.Client
	breaker  *gobreaker.CircuitBreaker[[]byte]
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewClient creates a Client named after its upstream. The name labels
// metrics, logs and errors.
func NewClient(name string, httpClient *http.Client, recorder metrics.Recorder, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		name:     name,
		http:     httpClient,
		breaker:  newBreaker(name, recorder, logger),
		recorder: recorder,
		logger:   logger,
	}
}

// Name returns the upstream name.
func (c *Client) Name() string {
	return c.name
}

// Do sends req through the circuit breaker and returns the response body.
// Non-2xx responses yield a *StatusError.
func (c *Client) Do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s: request failed: %w", c.name, redactURLError(err))
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, fmt.Errorf("%s: read response: %w", c.name, err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StatusError{
				Upstream:   c.name,
				StatusCode: resp.StatusCode,
				Body:       truncate(strings.TrimSpace(string(data)), maxErrorBodyBytes),
			}
		}
		return data, nil
	})
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.recorder.ObserveUpstreamRequest(c.name, metrics.OutcomeRejected, duration)
			return nil, fmt.Errorf("%s: %w: %w", c.name, ErrUnavailable, err)
		}

		c.recorder.ObserveUpstreamRequest(c.name, metrics.OutcomeError, duration)
		// Query strings carry API keys; only the path is logged.
		c.logger.Warn("upstream request failed",
			slog.String("upstream", c.name),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Float64("duration_ms", float64(duration.Microseconds())/1000),
			slog.String("error", redact(err.Error(), req.URL)),
		)
		return nil, err
	}

	c.recorder.ObserveUpstreamRequest(c.name, metrics.OutcomeSuccess, duration)
	return body, nil
}

// getJSON performs a GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, header http.Header, out any) error {
	return c.doJSON(ctx, http.MethodGet, rawURL, header, nil, out)
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, rawURL string, header http.Header, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, rawURL, header, in, out)
}

func (c *Client) doJSON(ctx context.Context, method, rawURL string, header http.Header, in, out any) error {
	var body io.Reader = http.NoBody
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.name, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", c.name, err)
	}
	for key, values := range header {
		req.Header[key] = values
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	data, err := c.Do(req)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %v", c.name, ErrDecode, err)
	}
	return nil
}

// buildURL joins base and path and encodes params.
func buildURL(base, path string, params url.Values) string {
	u := strings.TrimSuffix(base, "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": {"Bearer " + token}}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// redact strips query values (API keys) that net/http echoes into errors.
// redactURLError drops the query string from the URL a transport error
// carries, so callers can log the error as is.
func redactURLError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		uerr.URL = "[redacted]"
		return err
	}
	if u.RawQuery != "" {
		u.RawQuery = "[redacted]"
	}
	u.User = nil
	uerr.URL = u.String()
	return err
}

func redact(msg string, u *url.URL) string {
	if u == nil || u.RawQuery == "" {
		return msg
	}
	return strings.ReplaceAll(msg, u.RawQuery, "[redacted]")
}
