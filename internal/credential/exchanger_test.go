package credential

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientCredentialsExchanger_Exchange(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			t.Errorf("expected basic auth id/secret, got %q/%q (ok=%v)", user, pass, ok)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q, want client_credentials", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	ex := NewClientCredentialsExchanger(srv.URL, "id", "secret", srv.Client())

	token, expiresIn, err := ex.Exchange(context.Background())
	if err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if token != "abc" {
		t.Errorf("token = %q, want abc", token)
	}
	if expiresIn != time.Hour {
		t.Errorf("expiresIn = %s, want 1h", expiresIn)
	}
}

func TestClientCredentialsExchanger_RejectedCredentials(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	ex := NewClientCredentialsExchanger(srv.URL, "", "", srv.Client())

	if _, _, err := ex.Exchange(context.Background()); err == nil {
		t.Fatal("expected error for rejected credentials")
	}
}
