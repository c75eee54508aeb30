package credential

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientCredentialsExchanger performs an OAuth2 client-credentials grant.
type ClientCredentialsExchanger struct {
	config     clientcredentials.Config
	httpClient *http.Client
}

// NewClientCredentialsExchanger creates an exchanger for tokenURL.
// Client id and secret are sent with HTTP basic auth. A nil httpClient
// falls back to http.DefaultClient.
func NewClientCredentialsExchanger(tokenURL, clientID, clientSecret string, httpClient *http.Client) *ClientCredentialsExchanger {
	return &ClientCredentialsExchanger{
		config: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		httpClient: httpClient,
	}
}

// Exchange requests a new access token.
func (e *ClientCredentialsExchanger) Exchange(ctx context.Context) (string, time.Duration, error) {
	if e.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
	}

	tok, err := e.config.Token(ctx)
	if err != nil {
		return "", 0, err
	}

	return tok.AccessToken, expiresIn(tok), nil
}

// expiresIn prefers the raw expires_in field over the computed expiry.
func expiresIn(tok *oauth2.Token) time.Duration {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		return time.Duration(v) * time.Second
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	if !tok.Expiry.IsZero() {
		return time.Until(tok.Expiry)
	}
	return 0
}
