package context

import (
	"context"
	"log/slog"

	"github.com/bornholm/burnin/internal/kv"
	"github.com/bornholm/burnin/internal/session"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
)

const keySession contextKey = "session"

// Session returns the cookie session of the current request, or nil when
// the session middleware did not run.
func Session(ctx context.Context) *kv.Session {
	sess, ok := ctx.Value(keySession).(*kv.Session)
	if !ok {
		return nil
	}

	return sess
}

func SetSession(ctx context.Context, sess *kv.Session) context.Context {
	return context.WithValue(ctx, keySession, sess)
}

// User returns the logged-in user of the current request, nil if there is
// none. A corrupted session is logged and treated as logged out.
func User(ctx context.Context) *session.Session {
	sess := Session(ctx)
	if sess == nil {
		return nil
	}

	user, err := session.CurrentUser(sess)
	if err != nil {
		if !errors.Is(err, session.ErrNotLoggedIn) {
			slog.WarnContext(ctx, "could not read session user", slogx.Error(err))
		}

		return nil
	}

	return user
}
