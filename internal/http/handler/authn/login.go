package authn

import (
	"context"
	"log/slog"
	"net/http"

	httpCtx "github.com/bornholm/burnin/internal/http/context"
	httpURL "github.com/bornholm/burnin/internal/http/url"
	"github.com/bornholm/burnin/internal/kv"
	"github.com/bornholm/burnin/internal/session"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

// StateKey is the session key of the state sent with the authorization
// request and checked on callback.
const StateKey = "burninOAuthState"

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess := httpCtx.Session(ctx)
	if sess == nil {
		h.handleError(w, r, errors.New("no session in context"))
		return
	}

	state := xid.New().String()

	if err := sess.Set(StateKey, state); err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	http.Redirect(w, r, h.client.BuildLoginURL(state), http.StatusSeeOther)
}

// handleCallback exchanges the authorization code for an access token and
// stores the user identity. On failure the user is left logged out with
// an alert.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess := httpCtx.Session(ctx)
	if sess == nil {
		h.handleError(w, r, errors.New("no session in context"))
		return
	}

	query := r.URL.Query()

	expectedState, _ := sess.Get(StateKey)
	if err := sess.Remove(StateKey); err != nil {
		h.logger.WarnContext(ctx, "could not remove oauth state", slogx.Error(err))
	}

	if expectedState == "" || query.Get("state") != expectedState {
		h.logger.WarnContext(ctx, "oauth state mismatch")
		h.redirectWithAlert(w, r, sess, "auth.invalid_state")
		return
	}

	if authErr := query.Get("error"); authErr != "" {
		h.logger.WarnContext(ctx, "authorization denied", slog.String("error", authErr), slog.String("description", query.Get("error_description")))
		h.redirectWithAlert(w, r, sess, "auth.exchange_failed")
		return
	}

	code := query.Get("code")
	if code == "" {
		h.redirectWithAlert(w, r, sess, "auth.exchange_failed")
		return
	}

	accessToken, err := h.client.FetchAccessToken(ctx, code)
	if err != nil {
		h.logger.ErrorContext(ctx, "could not exchange authorization code", slogx.Error(err))
		h.redirectWithAlert(w, r, sess, "auth.exchange_failed")
		return
	}

	details, err := h.client.FetchUserDetails(ctx, accessToken)
	if err != nil {
		h.logger.ErrorContext(ctx, "could not fetch user details", slogx.Error(err))
		h.redirectWithAlert(w, r, sess, "auth.exchange_failed")
		return
	}

	user := session.Session{
		Name:        details.Name,
		Email:       details.Email,
		AccessToken: accessToken,
	}

	if err := session.Store(sess, user); err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	h.logger.InfoContext(ctx, "user logged in", slog.String("email", user.Email))

	h.restartPoller(ctx)

	http.Redirect(w, r, indexURL(ctx), http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess := httpCtx.Session(ctx)
	if sess == nil {
		http.Redirect(w, r, indexURL(ctx), http.StatusSeeOther)
		return
	}

	if err := session.Clear(sess); err != nil {
		h.handleError(w, r, errors.WithStack(err))
		return
	}

	h.restartPoller(ctx)

	h.redirectWithAlert(w, r, sess, "auth.logged_out")
}

func (h *Handler) redirectWithAlert(w http.ResponseWriter, r *http.Request, sess *kv.Session, key string) {
	ctx := r.Context()

	if err := sess.AddFlash(i18n.T(ctx, key)); err != nil {
		h.logger.ErrorContext(ctx, "could not add flash message", slogx.Error(err))
	}

	http.Redirect(w, r, indexURL(ctx), http.StatusSeeOther)
}

func (h *Handler) restartPoller(ctx context.Context) {
	if err := h.poller.Start(); err != nil {
		h.logger.ErrorContext(ctx, "could not restart poller", slogx.Error(err))
	}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "authentication error", slogx.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func indexURL(ctx context.Context) string {
	return httpURL.Mutate(httpCtx.BaseURL(ctx), httpURL.WithPath("/")).String()
}
