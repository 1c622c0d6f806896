package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/burnin/internal/config"
	"github.com/bornholm/burnin/internal/setup"
	"github.com/bornholm/burnin/internal/slogx"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	logger := slog.New(slogx.ContextHandler{
		Handler: conf.Logger.Handler(os.Stderr),
	})

	slog.SetDefault(logger)

	slog.DebugContext(ctx, "using configuration",
		slog.String("gitlab_url", conf.GitLab.URL),
		slog.String("gitlab_project", conf.GitLab.Project),
		slog.String("gitlab_branch", conf.GitLab.Branch),
		slog.Duration("poll_interval", conf.Poll.Interval),
		slog.Int("admins", len(conf.Admins)),
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	controller, err := setup.NewPollControllerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup poll controller", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup http server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := controller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return errors.WithStack(err)
		}

		return nil
	})

	group.Go(func() error {
		slog.InfoContext(ctx, "starting server", slog.String("address", conf.HTTP.Address))

		if err := server.Run(ctx); err != nil {
			return errors.WithStack(err)
		}

		// The poll loop stops with the server
		cancel()

		return nil
	})

	if err := group.Wait(); err != nil {
		slog.Error("could not run server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}
