package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/burnin/internal/config"
	"github.com/bornholm/burnin/internal/http"
	"github.com/bornholm/burnin/internal/http/handler/metrics"
	"github.com/bornholm/burnin/internal/http/handler/webui"
	"github.com/bornholm/burnin/internal/http/handler/webui/dashboard"
	"github.com/bornholm/burnin/internal/http/i18n"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	authn, err := getAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	client, err := getGitLabClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure gitlab client from config")
	}

	controller, err := NewPollControllerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure poll controller from config")
	}

	authnMiddleware := authn.Middleware()
	i18nMiddleware := i18n.Middleware(conf.I18n.DefaultLanguage)

	webui := webui.NewHandler(
		client,
		controller,
		controller.State(),
		webui.WithDashboardOptions(
			dashboard.WithAdmins(conf.Admins...),
			dashboard.WithGitHubRepository(conf.UI.GitHubRepository),
			dashboard.WithHealthMaxAge(conf.UI.HealthMaxAge),
			dashboard.WithLogger(slog.Default()),
		),
	)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithShutdownTimeout(conf.HTTP.ShutdownTimeout),
		http.WithMount("/auth/", authnMiddleware(i18nMiddleware(authn))),
		http.WithMount("/metrics/", metrics.NewHandler(metrics.WithToken(conf.HTTP.MetricsToken))),
		http.WithMount("/", authnMiddleware(i18nMiddleware(webui))),
	}

	server := http.NewServer(options...)

	return server, nil
}
