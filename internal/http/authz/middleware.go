package authz

import (
	"context"
	"log/slog"
	"net/http"

	httpCtx "github.com/bornholm/burnin/internal/http/context"
	"github.com/bornholm/burnin/internal/session"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
)

type AssertFunc func(ctx context.Context, user *session.Session) (bool, error)

func IsAuthenticated(ctx context.Context, user *session.Session) (bool, error) {
	return user != nil, nil
}

// IsAdmin allows users whose email is exactly one of admins.
func IsAdmin(admins []string) AssertFunc {
	return func(ctx context.Context, user *session.Session) (bool, error) {
		if user == nil {
			return false, nil
		}

		store := httpCtx.Session(ctx)
		if store == nil {
			return false, nil
		}

		return session.IsAdmin(store, admins), nil
	}
}

// Assert reports whether every one of funcs allows the user.
func Assert(ctx context.Context, user *session.Session, funcs ...AssertFunc) (bool, error) {
	for _, fn := range funcs {
		allowed, err := fn(ctx, user)
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

// Middleware serves forbidden, or a bare 403 if nil, to the users that
// funcs do not allow.
func Middleware(forbidden http.Handler, funcs ...AssertFunc) func(h http.Handler) http.Handler {
	if forbidden == nil {
		forbidden = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			user := httpCtx.User(ctx)

			allowed, err := Assert(ctx, user, funcs...)
			if err != nil {
				slog.ErrorContext(ctx, "could not assert user authorizations", slogx.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !allowed {
				slog.DebugContext(ctx, "access denied", slog.String("path", r.URL.Path))
				forbidden.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
