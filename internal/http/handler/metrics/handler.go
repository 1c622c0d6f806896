// Package metrics exposes the prometheus registry.
package metrics

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type Options struct {
	// Token is the bearer token scrapers must present, no check if empty
	Token    string
	Gatherer prometheus.Gatherer
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Gatherer: prometheus.DefaultGatherer,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithToken(token string) OptionFunc {
	return func(opts *Options) {
		opts.Token = token
	}
}

func WithGatherer(gatherer prometheus.Gatherer) OptionFunc {
	return func(opts *Options) {
		opts.Gatherer = gatherer
	}
}

func NewHandler(funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux: &http.ServeMux{},
	}

	handler := promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})

	if opts.Token != "" {
		handler = requireToken(opts.Token, handler)
	}

	h.mux.Handle("GET /", handler)

	return h
}

func requireToken(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		given, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
			w.Header().Set("WWW-Authenticate", "Bearer")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

var _ http.Handler = &Handler{}
