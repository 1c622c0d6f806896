package poll

import (
	"log/slog"
	"time"

	"github.com/bornholm/burnin/internal/kv"
)

type Options struct {
	Interval  time.Duration
	Store     kv.Store
	NewTicker TickerFunc
	Logger    *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Interval:  5 * time.Second,
		Store:     kv.NewMemory(),
		NewTicker: NewTimeTicker,
		Logger:    slog.Default(),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithInterval(interval time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
	}
}

// WithStore sets the store holding the identifier of the active loop.
func WithStore(store kv.Store) OptionFunc {
	return func(opts *Options) {
		opts.Store = store
	}
}

func WithTicker(fn TickerFunc) OptionFunc {
	return func(opts *Options) {
		opts.NewTicker = fn
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
