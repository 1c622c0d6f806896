package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
)

func TestBuildLoginURL(t *testing.T) {
	client, err := NewClient(
		"https://gitlab.example.com",
		WithCredentials("client-id", "client-secret"),
		WithRedirectURL("https://burnins.example.com/auth/callback"),
		WithLogger(slogx.NewTestLogger(t)),
	)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	loginURL, err := url.Parse(client.BuildLoginURL(""))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "gitlab.example.com", loginURL.Host; e != g {
		t.Errorf("host: expected '%s', got '%s'", e, g)
	}

	if e, g := "/oauth/authorize", loginURL.Path; e != g {
		t.Errorf("path: expected '%s', got '%s'", e, g)
	}

	query := loginURL.Query()

	expected := map[string]string{
		"client_id":     "client-id",
		"redirect_uri":  "https://burnins.example.com/auth/callback",
		"response_type": "code",
		"scope":         "api",
	}

	for key, value := range expected {
		if g := query.Get(key); g != value {
			t.Errorf("%s: expected '%s', got '%s'", key, value, g)
		}
	}

	if query.Has("state") {
		t.Errorf("expected no state parameter, got '%s'", query.Get("state"))
	}

	withState, err := url.Parse(client.BuildLoginURL("xyz"))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "xyz", withState.Query().Get("state"); e != g {
		t.Errorf("state: expected '%s', got '%s'", e, g)
	}
}

func TestFetchAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth/token" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if r.PostForm.Get("grant_type") != "authorization_code" || r.PostForm.Get("client_secret") != "client-secret" {
			http.Error(w, `{"error":"invalid_request"}`, http.StatusBadRequest)
			return
		}

		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "secret-token",
			"token_type":   "Bearer",
		})
	}))
	defer server.Close()

	client, err := NewClient(
		server.URL,
		WithCredentials("client-id", "client-secret"),
		WithHTTPClient(server.Client()),
		WithLogger(slogx.NewTestLogger(t)),
	)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	ctx := context.Background()

	token, err := client.FetchAccessToken(ctx, "good-code")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "secret-token", token; e != g {
		t.Errorf("token: expected '%s', got '%s'", e, g)
	}

	token, err = client.FetchAccessToken(ctx, "bad-code")
	if !errors.Is(err, ErrExchangeFailed) {
		t.Errorf("expected ErrExchangeFailed, got %v", err)
	}

	if token != "" {
		t.Errorf("expected empty token, got '%s'", token)
	}
}

func TestFetchUserDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v4/user" {
			http.NotFound(w, r)
			return
		}

		if r.Header.Get("Authorization") != "Bearer secret-token" {
			http.Error(w, `{"message":"401 Unauthorized"}`, http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":       42,
			"username": "jdoe",
			"name":     "Jane Doe",
			"email":    "jane@example.com",
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, WithHTTPClient(server.Client()), WithLogger(slogx.NewTestLogger(t)))
	if err != nil {
		t.Fatalf("%+v", err)
	}

	ctx := context.Background()

	details, err := client.FetchUserDetails(ctx, "secret-token")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "Jane Doe", details.Name; e != g {
		t.Errorf("name: expected '%s', got '%s'", e, g)
	}

	if e, g := "jane@example.com", details.Email; e != g {
		t.Errorf("email: expected '%s', got '%s'", e, g)
	}

	details, err = client.FetchUserDetails(ctx, "expired-token")
	if !errors.Is(err, ErrUserDetailsUnavailable) {
		t.Errorf("expected ErrUserDetailsUnavailable, got %v", err)
	}

	if details != nil {
		t.Errorf("expected no details, got %+v", details)
	}
}
