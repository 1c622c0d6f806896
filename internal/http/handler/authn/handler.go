// Package authn logs users in through the GitLab OAuth flow and keeps
// their identity in the cookie session.
package authn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/burnin/internal/oauth"
	"github.com/gorilla/sessions"
)

type OAuthClient interface {
	BuildLoginURL(state string) string
	FetchAccessToken(ctx context.Context, code string) (string, error)
	FetchUserDetails(ctx context.Context, accessToken string) (*oauth.UserDetails, error)
}

// Poller is restarted whenever the logged in user changes.
type Poller interface {
	Start() error
}

type Handler struct {
	mux          *http.ServeMux
	client       OAuthClient
	poller       Poller
	sessionStore sessions.Store
	sessionName  string
	logger       *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(client OAuthClient, poller Poller, sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:          http.NewServeMux(),
		client:       client,
		poller:       poller,
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		logger:       opts.Logger.With("component", "authn-handler"),
	}

	h.mux.HandleFunc("GET /login", h.handleLogin)
	h.mux.HandleFunc("GET /callback", h.handleCallback)
	h.mux.HandleFunc("GET /logout", h.handleLogout)
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
