// Package credential caches short-lived bearer credentials for upstream APIs.
//
// A CachedProvider hands out the cached token while it is still valid and
// performs a synchronous exchange when it is absent or expired. Concurrent
// refreshes for the same provider are collapsed into one exchange.
package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dailyhub/dailyhub/internal/metrics"
)

// DefaultExpiryMargin is subtracted from the upstream-reported lifetime.
const DefaultExpiryMargin = 60 * time.Second

// refreshTimeout bounds one shared exchange.
const refreshTimeout = 30 * time.Second

// ErrExchangeFailed is returned when the credential exchange fails.
var ErrExchangeFailed = errors.New("credential exchange failed")

// Provider returns a bearer token that is valid right now.
type Provider interface {
	Token(ctx context.Context) (string, error)
}

// Exchanger obtains a fresh token and its lifetime from the auth endpoint.
type Exchanger interface {
	Exchange(ctx context.Context) (token string, expiresIn time.Duration, err error)
}

// Credential is a cached bearer token.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

// ValidAt reports whether the credential may be used at t.
func (c Credential) ValidAt(t time.Time) bool {
	return c.Token != "" && t.Before(c.ExpiresAt)
}

// Options configure a CachedProvider.
type Options struct {
	// Store holds the cached credential. Defaults to a MemoryStore.
	Store Store
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
	// Margin is subtracted from expires_in. Defaults to DefaultExpiryMargin.
	Margin time.Duration
	// Recorder receives cache hit and refresh events.
	Recorder metrics.Recorder
	// Logger receives refresh diagnostics.
	Logger *slog.Logger
}

func (o *Options) withDefaults() Options {
	if o == nil {
		o = &Options{}
	}
	opts := *o
	if opts.Store == nil {
		opts.Store = NewMemoryStore()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Margin <= 0 {
		opts.Margin = DefaultExpiryMargin
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NewNoop()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

// CachedProvider is an expiry-aware Provider.
type CachedProvider struct {
	name      string
	exchanger Exchanger
	opts      Options
	group     singleflight.Group
}

// NewCachedProvider creates a provider named name (used as the store key).
func NewCachedProvider(name string, exchanger Exchanger, opts *Options) *CachedProvider {
	return &CachedProvider{
		name:      name,
		exchanger: exchanger,
		opts:      opts.withDefaults(),
	}
}

// Token returns the cached token while now < expiresAt, otherwise refreshes it.
func (p *CachedProvider) Token(ctx context.Context) (string, error) {
	if cred, ok := p.cached(ctx); ok {
		p.opts.Recorder.IncTokenCacheHit()
		return cred.Token, nil
	}

	// The flight is shared, so it must not die with the caller that started it.
	flightCtx := context.WithoutCancel(ctx)
	ch := p.group.DoChan(p.name, func() (any, error) {
		ctx, cancel := context.WithTimeout(flightCtx, refreshTimeout)
		defer cancel()

		// Another caller may have refreshed while we waited.
		if cred, ok := p.cached(ctx); ok {
			return cred.Token, nil
		}
		return p.refresh(ctx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (p *CachedProvider) cached(ctx context.Context) (Credential, bool) {
	cred, ok, err := p.opts.Store.Load(ctx, p.name)
	if err != nil {
		p.opts.Logger.Warn("credential store read failed",
			slog.String("credential", p.name),
			slog.String("error", err.Error()),
		)
		return Credential{}, false
	}
	if !ok || !cred.ValidAt(p.opts.Now()) {
		return Credential{}, false
	}
	return cred, true
}

func (p *CachedProvider) refresh(ctx context.Context) (string, error) {
	token, expiresIn, err := p.exchanger.Exchange(ctx)
	if err != nil {
		p.opts.Recorder.IncTokenRefresh(metrics.OutcomeError)
		return "", fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	cred := Credential{
		Token:     token,
		ExpiresAt: p.opts.Now().Add(expiresIn - p.opts.Margin),
	}

	if err := p.opts.Store.Save(ctx, p.name, cred); err != nil {
		p.opts.Logger.Warn("credential store write failed",
			slog.String("credential", p.name),
			slog.String("error", err.Error()),
		)
	}

	p.opts.Recorder.IncTokenRefresh(metrics.OutcomeSuccess)
	p.opts.Logger.Debug("credential refreshed",
		slog.String("credential", p.name),
		slog.Time("expires_at", cred.ExpiresAt),
	)

	return token, nil
}
