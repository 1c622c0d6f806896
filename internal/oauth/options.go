package oauth

import (
	"log/slog"
	"net/http"
)

type Options struct {
	HTTPClient   *http.Client
	Logger       *slog.Logger
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		HTTPClient: http.DefaultClient,
		Logger:     slog.Default(),
		Scopes:     []string{"api"},
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

func WithCredentials(clientID, clientSecret string) OptionFunc {
	return func(opts *Options) {
		opts.ClientID = clientID
		opts.ClientSecret = clientSecret
	}
}

func WithRedirectURL(redirectURL string) OptionFunc {
	return func(opts *Options) {
		opts.RedirectURL = redirectURL
	}
}

func WithScopes(scopes ...string) OptionFunc {
	return func(opts *Options) {
		opts.Scopes = scopes
	}
}
