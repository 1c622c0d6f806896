package gitlab

import (
	"log/slog"
	"net/http"
)

type Options struct {
	HTTPClient    *http.Client
	Logger        *slog.Logger
	Project       string
	Branch        string
	ReadOnlyToken string
	Concurrency   int
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		HTTPClient:  http.DefaultClient,
		Logger:      slog.Default(),
		Project:     "burn-in-tests/deployments",
		Branch:      "master",
		Concurrency: 8,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithHTTPClient(client *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithProject(project string) OptionFunc {
	return func(opts *Options) {
		opts.Project = project
	}
}

func WithBranch(branch string) OptionFunc {
	return func(opts *Options) {
		opts.Branch = branch
	}
}

// WithReadOnlyToken sets the token used when no user token is attached
// to the call context.
func WithReadOnlyToken(token string) OptionFunc {
	return func(opts *Options) {
		opts.ReadOnlyToken = token
	}
}

func WithConcurrency(concurrency int) OptionFunc {
	return func(opts *Options) {
		opts.Concurrency = concurrency
	}
}
