package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/burnin/internal/config"
	"github.com/bornholm/burnin/internal/crypto"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs, generated, err := crypto.SessionKeys(conf.HTTP.Session.Keys)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if generated {
		slog.WarnContext(ctx, "no session keys configured, using a random key pair: users will be logged out on restart")
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	sessionStore.MaxAge(int(conf.HTTP.Session.Cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = conf.HTTP.Session.Cookie.Path
	sessionStore.Options.HttpOnly = conf.HTTP.Session.Cookie.HTTPOnly
	sessionStore.Options.Secure = conf.HTTP.Session.Cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})
