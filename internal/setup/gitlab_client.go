package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/burnin/internal/config"
	"github.com/bornholm/burnin/internal/gitlab"
	"github.com/bornholm/burnin/internal/oauth"
	"github.com/pkg/errors"
)

var getGitLabClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gitlab.Client, error) {
	client, err := gitlab.NewClient(
		conf.GitLab.URL,
		gitlab.WithHTTPClient(&http.Client{Timeout: conf.GitLab.Timeout}),
		gitlab.WithProject(conf.GitLab.Project),
		gitlab.WithBranch(conf.GitLab.Branch),
		gitlab.WithReadOnlyToken(conf.GitLab.ReadOnlyToken),
		gitlab.WithConcurrency(conf.GitLab.Concurrency),
		gitlab.WithLogger(slog.Default().With("component", "gitlab-client")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create gitlab client")
	}

	return client, nil
})

var getOAuthClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*oauth.Client, error) {
	client, err := oauth.NewClient(
		conf.GitLab.URL,
		oauth.WithHTTPClient(&http.Client{Timeout: conf.GitLab.Timeout}),
		oauth.WithCredentials(conf.OAuth.ClientID, conf.OAuth.ClientSecret),
		oauth.WithRedirectURL(conf.OAuth.RedirectURL),
		oauth.WithScopes(conf.OAuth.Scopes...),
		oauth.WithLogger(slog.Default().With("component", "oauth-client")),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create oauth client")
	}

	return client, nil
})
