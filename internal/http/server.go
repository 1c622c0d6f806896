package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	sloghttp "github.com/samber/slog-http"

	httpCtx "github.com/bornholm/burnin/internal/http/context"
	"github.com/bornholm/burnin/internal/slogx"
)

type Server struct {
	opts *Options
}

// Run serves until ctx is done, then waits for in-flight requests up to
// the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	server := http.Server{
		Addr:              s.opts.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
	}

	done := make(chan error, 1)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()

		done <- server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	if err := <-done; err != nil {
		slog.ErrorContext(ctx, "could not shutdown server gracefully", slogx.Error(err))
		return errors.WithStack(err)
	}

	return nil
}

// Handler returns the mounted handlers wrapped with recovery, request
// logging and the URL context values.
func (s *Server) Handler() http.Handler {
	mux := &http.ServeMux{}
	for mountpoint, handler := range s.opts.Mounts {
		mount(mux, mountpoint, handler)
	}

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	})(handler)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ctx = httpCtx.SetBaseURL(ctx, s.opts.BaseURL)
			ctx = httpCtx.SetCurrentURL(ctx, r.URL)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}(handler)
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
