package authn

import (
	"log/slog"
	"net/http"

	httpCtx "github.com/bornholm/burnin/internal/http/context"
	"github.com/bornholm/burnin/internal/kv"
	"github.com/bornholm/burnin/internal/slogx"
)

// Middleware opens the cookie session of the request and exposes it, and
// the logged in user it holds, to the next handlers.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess, err := kv.OpenSession(h.sessionStore, h.sessionName, w, r)
			if err != nil {
				h.logger.ErrorContext(ctx, "could not open session", slogx.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx = httpCtx.SetSession(ctx, sess)

			if user := httpCtx.User(ctx); user != nil {
				ctx = slogx.WithAttrs(ctx, slog.String("user", user.Email))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
