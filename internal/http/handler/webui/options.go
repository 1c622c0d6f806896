package webui

import "github.com/bornholm/burnin/internal/http/handler/webui/dashboard"

type Options struct {
	Dashboard []dashboard.OptionFunc
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Dashboard: make([]dashboard.OptionFunc, 0),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithDashboardOptions(funcs ...dashboard.OptionFunc) OptionFunc {
	return func(opts *Options) {
		opts.Dashboard = append(opts.Dashboard, funcs...)
	}
}
