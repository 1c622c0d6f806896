package authn

import "log/slog"

type Options struct {
	SessionName string
	Logger      *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName: "burnin_session",
		Logger:      slog.Default(),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
