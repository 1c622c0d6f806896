package dashboard

import (
	"log/slog"
	"time"
)

type Options struct {
	// Admins are the emails allowed to manage manual deployments
	Admins           []string
	GitHubRepository string
	Logger           *slog.Logger
	Now              func() time.Time
	// HealthMaxAge is the age of the last poll result above which the
	// health endpoint reports the dashboard as stale
	HealthMaxAge time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Admins:           []string{},
		GitHubRepository: "paritytech/polkadot",
		Logger:           slog.Default(),
		Now:              time.Now,
		HealthMaxAge:     time.Minute,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithAdmins(admins ...string) OptionFunc {
	return func(opts *Options) {
		opts.Admins = admins
	}
}

func WithGitHubRepository(repository string) OptionFunc {
	return func(opts *Options) {
		opts.GitHubRepository = repository
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithNow(now func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Now = now
	}
}

func WithHealthMaxAge(maxAge time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.HealthMaxAge = maxAge
	}
}
