package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/burnin/internal/config"
	"github.com/bornholm/burnin/internal/http/handler/authn"
	"github.com/pkg/errors"
)

var getAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authn.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store")
	}

	client, err := getOAuthClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	controller, err := NewPollControllerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler := authn.NewHandler(
		client,
		controller,
		sessionStore,
		authn.WithSessionName(conf.HTTP.Session.Name),
		authn.WithLogger(slog.Default()),
	)

	return handler, nil
})
