package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/burnin/internal/config"
	"github.com/bornholm/burnin/internal/poll"
	"github.com/pkg/errors"
)

// NewPollControllerFromConfig returns the process wide poll controller.
// Its loop runs from Run and is restarted by the http handlers.
var NewPollControllerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*poll.Controller, error) {
	client, err := getGitLabClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	controller := poll.NewController(
		poll.NewRepositoryFetcher(client),
		poll.NewState(),
		poll.WithInterval(conf.Poll.Interval),
		poll.WithLogger(slog.Default().With("component", "poll-controller")),
	)

	return controller, nil
})
